package header_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/mxfmeta/internal/header"
	"github.com/vvka-141/mxfmeta/internal/klv"
	"github.com/vvka-141/mxfmeta/internal/klv/klvtest"
	"github.com/vvka-141/mxfmeta/internal/metadata"
	"github.com/vvka-141/mxfmeta/internal/metadata/metadatatest"
	"github.com/vvka-141/mxfmeta/internal/model"
	"github.com/vvka-141/mxfmeta/internal/partition"
	"github.com/vvka-141/mxfmeta/internal/report"
	"github.com/vvka-141/mxfmeta/pkg/mxf"
)

// pictureFile is a small but complete OP1a-like header: one material
// package with two tracks playing one picture source package.
func pictureFile(id ids) *file {
	mp := klvtest.UMID(id.get("mp"))
	sp := klvtest.UMID(id.get("sp"))
	return newFile(
		preface(id, "storage").Refs("Identifications", id.get("ident")).Ref("PrimaryPackage", id.get("mp")),
		metadatatest.New(metadata.IdentificationKey, id.get("ident")).
			Text("CompanyName", "Acme").
			Text("ProductName", "Encoder"),
		storage(id, "storage", "mp", "sp").Refs("EssenceContainerData", id.get("ecd")),
		metadatatest.New(metadata.MaterialPackageKey, id.get("mp")).
			UMID("PackageUID", mp).
			Text("PackageName", "main").
			Refs("Tracks", id.get("mp-track1"), id.get("mp-track2")),
		track(id, "mp-track1", 1, "mp-seq1"),
		track(id, "mp-track2", 2, "mp-seq2"),
		sequence(id, "mp-seq1", "mp-clip1"),
		clip(id, "mp-clip1", 100, sp),
		sequence(id, "mp-seq2", "mp-clip2", "mp-fill"),
		clip(id, "mp-clip2", 200, sp),
		filler(id, "mp-fill", 50),
		metadatatest.New(metadata.SourcePackageKey, id.get("sp")).
			UMID("PackageUID", sp).
			Refs("Tracks", id.get("sp-track")).
			Ref("Descriptor", id.get("desc")),
		track(id, "sp-track", 1, "sp-seq"),
		sequence(id, "sp-seq", "sp-clip"),
		clip(id, "sp-clip", 250, klv.UMID{}),
		metadatatest.New(metadata.CDCIPictureEssenceDescriptorKey, id.get("desc")).
			Rational("SampleRate", 24, 1).
			U32("StoredWidth", 1920).
			U32("StoredHeight", 1080).
			Refs("SubDescriptors", id.get("j2k")),
		metadatatest.New(metadata.JPEG2000PictureSubDescriptorKey, id.get("j2k")).
			Field("Rsiz", klvtest.U16(0x0307)),
		metadatatest.New(metadata.EssenceContainerDataKey, id.get("ecd")).
			UMID("LinkedPackageUID", sp).
			U32("BodySID", 1).
			U32("IndexSID", 2),
	)
}

func TestRead_Minimal(t *testing.T) {
	id := ids{}
	f := newFile(preface(id, "storage"), storage(id, "storage"))

	sink := report.NewCollector()
	hp, err := f.read(header.Options{Sink: sink})
	require.NoError(t, err)
	require.NotNil(t, hp)
	assert.Zero(t, sink.CountAtLeast(mxf.SeverityNonFatal))

	p, ok := hp.Preface()
	require.True(t, ok)
	require.NotNil(t, p.ContentStorage)
	assert.Equal(t, id.get("storage"), p.ContentStorage.InstanceUID)
	assert.Nil(t, p.PrimaryPackage)
	assert.Empty(t, hp.MaterialPackages())
	assert.Zero(t, hp.EssenceDuration())
	assert.Equal(t, []mxf.EssenceType{mxf.EssenceTypeUnsupported}, hp.EssenceTypes())

	pack := hp.PartitionPack()
	assert.Equal(t, partition.KindHeader, pack.Kind)
	assert.Equal(t, len(metadatatest.PrimerEntries()), hp.PrimerPack().Len())
}

func TestRead_PictureFile(t *testing.T) {
	id := ids{}
	hp, err := pictureFile(id).read(header.Options{})
	require.NoError(t, err)

	p, ok := hp.Preface()
	require.True(t, ok)
	require.Len(t, p.Identifications, 1)
	assert.Equal(t, "Acme", p.Identifications[0].CompanyName)
	require.NotNil(t, p.ContentStorage)
	require.Len(t, p.ContentStorage.Packages, 2)
	require.Len(t, p.ContentStorage.EssenceContainerData, 1)

	mps := hp.MaterialPackages()
	sps := hp.SourcePackages()
	require.Len(t, mps, 1)
	require.Len(t, sps, 1)
	mp, sp := mps[0], sps[0]
	assert.Same(t, mp, p.PrimaryPackage)
	assert.Equal(t, "main", mp.Name)

	require.Len(t, mp.Tracks, 2)
	require.NotNil(t, mp.Tracks[1].Sequence)
	components := mp.Tracks[1].Sequence.Components
	require.Len(t, components, 2)
	sc, ok := components[0].(*model.SourceClip)
	require.True(t, ok)
	assert.Same(t, sp, sc.SourcePackage)
	assert.IsType(t, &model.Filler{}, components[1])

	ecd := hp.EssenceContainerDataList()
	require.Len(t, ecd, 1)
	assert.Same(t, sp, ecd[0].LinkedPackage)
	assert.Equal(t, uint32(1), ecd[0].BodySID)

	desc, ok := sp.Descriptor.(*model.CDCIPictureEssenceDescriptor)
	require.True(t, ok)
	assert.Equal(t, uint32(1920), desc.StoredWidth)
	require.Len(t, desc.SubDescriptors, 1)
	assert.Equal(t, metadata.KindJPEG2000PictureSubDescriptor, desc.SubDescriptors[0].SubDescriptorKind())

	assert.Equal(t, int64(250), hp.EssenceDuration())
	assert.Equal(t, []mxf.EssenceType{mxf.EssenceTypeMainImage}, hp.EssenceTypes())
	assert.True(t, hp.HasCDCIPictureDescriptor())
	assert.False(t, hp.HasRGBAPictureDescriptor())
	assert.False(t, hp.HasWaveAudioDescriptor())
	assert.False(t, hp.HasPHDRMetadataTrackSubDescriptor())
	assert.Len(t, hp.EssenceDescriptors(), 1)
	assert.Len(t, hp.SubDescriptors(), 1)
}

func TestRead_QueryHelpers(t *testing.T) {
	id := ids{}
	hp, err := pictureFile(id).read(header.Options{})
	require.NoError(t, err)

	pkg, ok := hp.PackageByUMID(klvtest.UMID(id.get("mp")))
	require.True(t, ok)
	assert.Same(t, hp.MaterialPackages()[0], pkg)
	_, ok = hp.PackageByUMID(klvtest.UMID(id.get("elsewhere")))
	assert.False(t, ok)

	obj, ok := hp.Object(id.get("desc"))
	require.True(t, ok)
	assert.Equal(t, metadata.KindCDCIPictureEssenceDescriptor, obj.Kind())

	assert.Len(t, hp.Sets(), 18)
	assert.Len(t, hp.RawSets(metadata.KindSourceClip), 3)
	assert.Len(t, hp.RawSetsByTypeName("Sequence"), 3)
	assert.Nil(t, hp.RawSetsByTypeName("NoSuchSet"))
	assert.Len(t, hp.ContentStorageList(), 1)
	assert.Len(t, hp.Identifications(), 1)

	tracks := hp.TimelineTracks()
	require.Len(t, tracks, 3)
	assert.Equal(t, id.get("mp-track1"), tracks[0].InstanceUID)
	assert.Equal(t, id.get("mp-track2"), tracks[1].InstanceUID)
	assert.Equal(t, id.get("sp-track"), tracks[2].InstanceUID)

	sets := hp.Sets()
	sets[0] = nil
	assert.NotNil(t, hp.Sets()[0], "Sets must return a copy")
}

func TestRead_Summary(t *testing.T) {
	id := ids{}
	hp, err := pictureFile(id).read(header.Options{})
	require.NoError(t, err)

	s := hp.Summary()
	assert.Equal(t, 3, s.SetCounts["Sequence"])
	assert.Equal(t, int64(250), s.EssenceDuration)
	require.Len(t, s.Packages, 2)
	assert.Equal(t, metadata.KindMaterialPackage, s.Packages[0].Kind)
	assert.Len(t, s.Packages[0].Tracks, 2)
	require.NotNil(t, s.Packages[1].Descriptor)
	assert.Equal(t, []metadata.Kind{metadata.KindJPEG2000PictureSubDescriptor}, s.Packages[1].Descriptor.SubDescriptors)
	require.Len(t, s.Identifications, 1)
	assert.Equal(t, "Encoder", s.Identifications[0].ProductName)
}

func TestRead_Idempotent(t *testing.T) {
	id := ids{}
	data := pictureFile(id).bytes()

	first, err := header.Read(klv.NewBytesSource(data), header.Options{})
	require.NoError(t, err)
	second, err := header.Read(klv.NewBytesSource(data), header.Options{})
	require.NoError(t, err)

	if diff := cmp.Diff(first.Summary(), second.Summary()); diff != "" {
		t.Errorf("summaries differ (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(first.Sets(), second.Sets()); diff != "" {
		t.Errorf("raw sets differ (-first +second):\n%s", diff)
	}
}

func TestRead_DurationIsLongestTrackOfFirstMaterialPackage(t *testing.T) {
	id := ids{}
	f := newFile(
		preface(id, "storage"),
		storage(id, "storage", "mp1", "mp2"),
		metadatatest.New(metadata.MaterialPackageKey, id.get("mp1")).
			UMID("PackageUID", klvtest.UMID(id.get("mp1"))).
			Refs("Tracks", id.get("t1"), id.get("t2")),
		track(id, "t1", 1, "s1"),
		sequence(id, "s1", "c1"),
		filler(id, "c1", 100),
		track(id, "t2", 2, "s2"),
		sequence(id, "s2", "c2", "c3"),
		filler(id, "c2", 200),
		filler(id, "c3", 50),
		metadatatest.New(metadata.MaterialPackageKey, id.get("mp2")).
			UMID("PackageUID", klvtest.UMID(id.get("mp2"))).
			Refs("Tracks", id.get("t3")),
		track(id, "t3", 1, "s3"),
		sequence(id, "s3", "c4"),
		filler(id, "c4", 1000),
	)
	hp, err := f.read(header.Options{})
	require.NoError(t, err)
	assert.Equal(t, int64(250), hp.EssenceDuration())
}

func TestRead_Cycle(t *testing.T) {
	id := ids{}
	f := newFile(
		preface(id, "storage"),
		storage(id, "storage"),
		sequence(id, "a", "b"),
		sequence(id, "b", "a"),
	)

	t.Run("collect", func(t *testing.T) {
		sink := report.NewCollector()
		hp, err := f.read(header.Options{Sink: sink})
		require.Error(t, err)
		assert.Nil(t, hp)
		assert.ErrorIs(t, err, mxf.ErrCycleDetected)
		assert.True(t, header.Error.Has(err))

		fatal := sink.BySeverity(mxf.SeverityFatal)
		require.Len(t, fatal, 1)
		assert.Equal(t, mxf.CodeCycleDetected, fatal[0].Code)
		assert.Contains(t, fatal[0].Message, id.get("a").String())
		assert.Contains(t, fatal[0].Message, id.get("b").String())
	})

	t.Run("strict", func(t *testing.T) {
		hp, err := f.read(header.Options{})
		assert.Nil(t, hp)
		assert.ErrorIs(t, err, mxf.ErrCycleDetected)
	})
}

func TestRead_SelfReference(t *testing.T) {
	id := ids{}
	f := newFile(preface(id, "storage"), storage(id, "storage"), sequence(id, "a", "a"))
	_, err := f.read(header.Options{})
	assert.ErrorIs(t, err, mxf.ErrCycleDetected)
}

func TestRead_PrefaceCount(t *testing.T) {
	tests := []struct {
		name     string
		prefaces int
	}{
		{"none", 0},
		{"two", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := ids{}
			f := newFile(storage(id, "storage"))
			for i := 0; i < tt.prefaces; i++ {
				f.add(metadatatest.New(metadata.PrefaceKey, id.get(tt.name+string(rune('a'+i)))))
			}

			sink := report.NewCollector()
			hp, err := f.read(header.Options{Sink: sink})
			assert.Nil(t, hp)
			assert.ErrorIs(t, err, mxf.ErrInvalidPrefaceCount)
			require.NotEmpty(t, sink.BySeverity(mxf.SeverityFatal))
			assert.Equal(t, mxf.CodeInvalidPrefaceCount, sink.BySeverity(mxf.SeverityFatal)[0].Code)
		})
	}
}

func TestRead_PartitionProblems(t *testing.T) {
	id := ids{}
	tests := []struct {
		name   string
		modify func(f *file)
		want   error
	}{
		{"wrong offset", func(f *file) { f.pack.This = 100 }, mxf.ErrWrongHeaderOffset},
		{"footer at start", func(f *file) { f.kind = footerKind }, mxf.ErrInvalidPartitionKey},
		{"no primer", func(f *file) { f.primer = nil }, mxf.ErrMissingPrimerPack},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFile(preface(id, "storage"), storage(id, "storage"))
			tt.modify(f)

			sink := report.NewCollector()
			hp, err := f.read(header.Options{Sink: sink})
			assert.Nil(t, hp)
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, sink.HasFatal())

			hp, err = f.read(header.Options{})
			assert.Nil(t, hp)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRead_NonZeroPreviousPartition(t *testing.T) {
	id := ids{}
	f := newFile(preface(id, "storage"), storage(id, "storage"))
	f.pack.Previous = 512

	sink := report.NewCollector()
	hp, err := f.read(header.Options{Sink: sink})
	require.NoError(t, err)
	require.NotNil(t, hp)
	nonFatal := sink.BySeverity(mxf.SeverityNonFatal)
	require.Len(t, nonFatal, 1)
	assert.Equal(t, mxf.CodeInvalidPartitionField, nonFatal[0].Code)

	_, err = f.read(header.Options{})
	assert.ErrorIs(t, err, mxf.ErrInvalidPartitionField)
}

func TestRead_SkipsFill(t *testing.T) {
	id := ids{}
	f := newFile(preface(id, "storage"))
	f.prefill = 37
	f.raw(klvtest.Fill(64))
	f.add(storage(id, "storage"))
	f.raw(klvtest.Fill(3))

	hp, err := f.read(header.Options{})
	require.NoError(t, err)
	p, ok := hp.Preface()
	require.True(t, ok)
	assert.NotNil(t, p.ContentStorage)
}

func TestRead_SkipsUnregisteredSets(t *testing.T) {
	id := ids{}
	unknown := metadata.PrefaceKey
	unknown[13] = 0x7f
	f := newFile(preface(id, "storage"), storage(id, "storage"))
	f.raw(klvtest.Packet(unknown, []byte{1, 2, 3}))

	hp, err := f.read(header.Options{})
	require.NoError(t, err)
	assert.Len(t, hp.Sets(), 2)
}

func TestRead_HeaderPastEndOfFile(t *testing.T) {
	id := ids{}
	f := newFile(preface(id, "storage"), storage(id, "storage"))
	f.extra = 1000

	sink := report.NewCollector()
	hp, err := f.read(header.Options{Sink: sink})
	require.NoError(t, err)
	require.NotNil(t, hp)
	nonFatal := sink.BySeverity(mxf.SeverityNonFatal)
	require.Len(t, nonFatal, 1)
	assert.Equal(t, mxf.CodeMalformedKLV, nonFatal[0].Code)
}

func TestRead_PacketCrossesHeaderEnd(t *testing.T) {
	id := ids{}
	f := newFile(preface(id, "storage"), storage(id, "storage"))
	f.extra = -4

	sink := report.NewCollector()
	hp, err := f.read(header.Options{Sink: sink})
	assert.Nil(t, hp)
	assert.ErrorIs(t, err, mxf.ErrMalformedKLV)
}

func TestRead_UnresolvedReference(t *testing.T) {
	id := ids{}
	f := newFile(preface(id, "missing-storage"), storage(id, "storage", "missing-package"))

	sink := report.NewCollector()
	hp, err := f.read(header.Options{Sink: sink})
	require.NoError(t, err)

	warnings := sink.BySeverity(mxf.SeverityWarning)
	require.Len(t, warnings, 2)
	for _, w := range warnings {
		assert.Equal(t, mxf.CodeUnresolvedStrongReference, w.Code)
	}
	p, _ := hp.Preface()
	assert.Nil(t, p.ContentStorage)
	assert.Empty(t, hp.ContentStorageList()[0].Packages)

	_, err = f.read(header.Options{})
	assert.NoError(t, err, "warnings never fail a strict read")
}

func TestRead_ReferenceOfWrongType(t *testing.T) {
	id := ids{}
	f := newFile(
		preface(id, "storage"),
		storage(id, "storage"),
		metadatatest.New(metadata.TimelineTrackKey, id.get("track")).Ref("Sequence", id.get("storage")),
	)

	sink := report.NewCollector()
	hp, err := f.read(header.Options{Sink: sink})
	require.NoError(t, err)
	tracks := hp.TimelineTracks()
	require.Len(t, tracks, 1)
	assert.Nil(t, tracks[0].Sequence)

	warnings := sink.BySeverity(mxf.SeverityWarning)
	require.Len(t, warnings, 1)
	assert.Equal(t, mxf.CodeUnresolvedStrongReference, warnings[0].Code)
}

func audioFile(id ids, sub *metadatatest.Set) *file {
	sp := klvtest.UMID(id.get("sp"))
	return newFile(
		preface(id, "storage"),
		storage(id, "storage", "sp"),
		metadatatest.New(metadata.SourcePackageKey, id.get("sp")).
			UMID("PackageUID", sp).
			Ref("Descriptor", id.get("wave")),
		metadatatest.New(metadata.WaveAudioEssenceDescriptorKey, id.get("wave")).
			Rational("SampleRate", 48000, 1).
			U32("ChannelCount", 2).
			Refs("SubDescriptors", id.get("sub")),
		sub,
	)
}

func TestRead_WaveAudioSubDescriptors(t *testing.T) {
	t.Run("audio label", func(t *testing.T) {
		id := ids{}
		f := audioFile(id, metadatatest.New(metadata.AudioChannelLabelSubDescriptorKey, id.get("sub")).
			Text("MCATagSymbol", "chL"))

		hp, err := f.read(header.Options{})
		require.NoError(t, err)
		assert.True(t, hp.HasWaveAudioDescriptor())
		assert.Equal(t, []mxf.EssenceType{mxf.EssenceTypeMainAudio}, hp.EssenceTypes())

		wave, ok := hp.EssenceDescriptors()[0].(*model.WaveAudioEssenceDescriptor)
		require.True(t, ok)
		require.Len(t, wave.AudioLabels(), 1)
		label, ok := wave.AudioLabels()[0].(*model.AudioChannelLabelSubDescriptor)
		require.True(t, ok)
		assert.Equal(t, "chL", label.MCATagSymbol)
	})

	t.Run("no audio label", func(t *testing.T) {
		id := ids{}
		f := audioFile(id, metadatatest.New(metadata.JPEG2000PictureSubDescriptorKey, id.get("sub")))

		sink := report.NewCollector()
		hp, err := f.read(header.Options{Sink: sink})
		assert.Nil(t, hp)
		assert.ErrorIs(t, err, mxf.ErrMissingSubDescriptor)
		fatal := sink.BySeverity(mxf.SeverityFatal)
		require.Len(t, fatal, 1)
		assert.Equal(t, mxf.CodeMissingSubDescriptor, fatal[0].Code)

		_, err = f.read(header.Options{})
		assert.ErrorIs(t, err, mxf.ErrMissingSubDescriptor)
	})

	t.Run("dangling reference only", func(t *testing.T) {
		id := ids{}
		f := newFile(
			preface(id, "storage"),
			storage(id, "storage", "sp"),
			metadatatest.New(metadata.SourcePackageKey, id.get("sp")).
				UMID("PackageUID", klvtest.UMID(id.get("sp"))).
				Ref("Descriptor", id.get("wave")),
			metadatatest.New(metadata.WaveAudioEssenceDescriptorKey, id.get("wave")).
				Rational("SampleRate", 48000, 1).
				Refs("SubDescriptors", id.get("absent")),
		)

		sink := report.NewCollector()
		hp, err := f.read(header.Options{Sink: sink})
		require.NoError(t, err)
		require.NotNil(t, hp)
		assert.Empty(t, sink.BySeverity(mxf.SeverityFatal))
		warnings := sink.BySeverity(mxf.SeverityWarning)
		require.NotEmpty(t, warnings)
		assert.Equal(t, mxf.CodeUnresolvedStrongReference, warnings[0].Code)

		wave, ok := hp.EssenceDescriptors()[0].(*model.WaveAudioEssenceDescriptor)
		require.True(t, ok)
		assert.Empty(t, wave.AudioLabels())
		assert.True(t, hp.HasWaveAudioDescriptor())

		_, err = f.read(header.Options{})
		assert.NoError(t, err)
	})
}

func TestRead_PHDR(t *testing.T) {
	id := ids{}
	f := newFile(
		preface(id, "storage"),
		storage(id, "storage", "sp"),
		metadatatest.New(metadata.SourcePackageKey, id.get("sp")).
			UMID("PackageUID", klvtest.UMID(id.get("sp"))).
			Ref("Descriptor", id.get("data")),
		metadatatest.New(metadata.GenericDataEssenceDescriptorKey, id.get("data")).
			Refs("SubDescriptors", id.get("phdr")),
		metadatatest.New(metadata.PHDRMetadataTrackSubDescriptorKey, id.get("phdr")).
			U32("PHDRSourceTrackID", 2),
	)

	hp, err := f.read(header.Options{})
	require.NoError(t, err)
	assert.True(t, hp.HasPHDRMetadataTrackSubDescriptor())
	assert.Equal(t, []mxf.EssenceType{mxf.EssenceTypePHDRMeta}, hp.EssenceTypes())
}

func TestRead_DuplicateInstanceUID(t *testing.T) {
	id := ids{}
	f := newFile(
		preface(id, "storage"),
		storage(id, "storage"),
		metadatatest.New(metadata.SequenceKey, id.get("storage")),
	)

	sink := report.NewCollector()
	hp, err := f.read(header.Options{Sink: sink})
	require.NoError(t, err)
	obj, ok := hp.Object(id.get("storage"))
	require.True(t, ok)
	assert.Equal(t, metadata.KindContentStorage, obj.Kind(), "first set wins")
	nonFatal := sink.BySeverity(mxf.SeverityNonFatal)
	require.Len(t, nonFatal, 1)
	assert.Equal(t, mxf.CodeDuplicateInstanceUID, nonFatal[0].Code)

	_, err = f.read(header.Options{})
	assert.ErrorIs(t, err, mxf.ErrDuplicateInstanceUID)
}

func TestRead_MaxSets(t *testing.T) {
	id := ids{}
	f := newFile(preface(id, "storage"), storage(id, "storage"), sequence(id, "seq"))

	_, err := f.read(header.Options{MaxSets: 2})
	assert.ErrorIs(t, err, mxf.ErrMalformedKLV)

	_, err = f.read(header.Options{MaxSets: 3})
	assert.NoError(t, err)
}

func TestRead_CollectsEveryFatal(t *testing.T) {
	id := ids{}
	f := audioFile(id, metadatatest.New(metadata.JPEG2000PictureSubDescriptorKey, id.get("sub")))
	f.add(metadatatest.New(metadata.PrefaceKey, id.get("second-preface")))

	sink := report.NewCollector()
	hp, err := f.read(header.Options{Sink: sink})
	assert.Nil(t, hp)
	assert.ErrorIs(t, err, mxf.ErrInvalidPrefaceCount)
	assert.ErrorIs(t, err, mxf.ErrMissingSubDescriptor)
	assert.Len(t, sink.BySeverity(mxf.SeverityFatal), 2)
}

func TestRead_MetadataRange(t *testing.T) {
	f := pictureFile(ids{})
	f.prefill = 9
	data := f.bytes()
	hp, err := header.Read(klv.NewBytesSource(data), header.Options{})
	require.NoError(t, err)

	start, end := hp.MetadataRange()
	assert.Equal(t, hp.PrimerPack().Offset, start)
	assert.Equal(t, int64(len(data)), end)
	assert.Equal(t, hp.PartitionPack().HeaderByteCount, end-start)
}
