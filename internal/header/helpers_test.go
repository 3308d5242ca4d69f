package header_test

import (
	"github.com/google/uuid"

	"github.com/vvka-141/mxfmeta/internal/header"
	"github.com/vvka-141/mxfmeta/internal/klv"
	"github.com/vvka-141/mxfmeta/internal/klv/klvtest"
	"github.com/vvka-141/mxfmeta/internal/metadata"
	"github.com/vvka-141/mxfmeta/internal/metadata/metadatatest"
)

const (
	headerKind     = 0x02
	footerKind     = 0x04
	closedComplete = 0x04
)

// file assembles a header partition: partition pack, optional fill,
// primer pack and the given sets.
type file struct {
	pack    klvtest.Partition
	kind    byte
	prefill int
	primer  []byte
	sets    [][]byte
	// extra is added to the header byte count.
	extra int64
}

func newFile(sets ...*metadatatest.Set) *file {
	f := &file{kind: headerKind, primer: metadatatest.Primer()}
	for _, s := range sets {
		f.add(s)
	}
	return f
}

func (f *file) add(s *metadatatest.Set) *file {
	f.sets = append(f.sets, s.Packet())
	return f
}

func (f *file) raw(b []byte) *file {
	f.sets = append(f.sets, b)
	return f
}

func (f *file) bytes() []byte {
	var body []byte
	for _, s := range f.sets {
		body = append(body, s...)
	}
	p := f.pack
	p.HeaderByteCount = uint64(int64(len(f.primer)+len(body)) + f.extra)
	out := p.Packet(f.kind, closedComplete)
	if f.prefill > 0 {
		out = append(out, klvtest.Fill(f.prefill)...)
	}
	out = append(out, f.primer...)
	return append(out, body...)
}

func (f *file) read(opts header.Options) (*header.HeaderPartition, error) {
	return header.Read(klv.NewBytesSource(f.bytes()), opts)
}

// ids hands out readable, distinct InstanceUIDs.
type ids map[string]uuid.UUID

func (m ids) get(name string) uuid.UUID {
	if id, ok := m[name]; ok {
		return id
	}
	id := uuid.NewSHA1(uuid.NameSpaceOID, []byte(name))
	m[name] = id
	return id
}

func preface(id ids, storage string) *metadatatest.Set {
	return metadatatest.New(metadata.PrefaceKey, id.get("preface")).
		Field("Version", klvtest.U16(0x0103)).
		Ref("ContentStorage", id.get(storage))
}

func storage(id ids, name string, packages ...string) *metadatatest.Set {
	refs := make([]uuid.UUID, len(packages))
	for i, p := range packages {
		refs[i] = id.get(p)
	}
	return metadatatest.New(metadata.ContentStorageKey, id.get(name)).Refs("Packages", refs...)
}

func track(id ids, name string, trackID uint32, sequence string) *metadatatest.Set {
	return metadatatest.New(metadata.TimelineTrackKey, id.get(name)).
		U32("TrackID", trackID).
		Rational("EditRate", 24, 1).
		Ref("Sequence", id.get(sequence))
}

func sequence(id ids, name string, components ...string) *metadatatest.Set {
	refs := make([]uuid.UUID, len(components))
	for i, c := range components {
		refs[i] = id.get(c)
	}
	return metadatatest.New(metadata.SequenceKey, id.get(name)).Refs("StructuralComponents", refs...)
}

func clip(id ids, name string, duration int64, source klv.UMID) *metadatatest.Set {
	return metadatatest.New(metadata.SourceClipKey, id.get(name)).
		I64("Duration", duration).
		UMID("SourcePackageID", source).
		U32("SourceTrackID", 1)
}

func filler(id ids, name string, duration int64) *metadatatest.Set {
	return metadatatest.New(metadata.FillerKey, id.get(name)).I64("Duration", duration)
}
