package header

import (
	"github.com/google/uuid"

	"github.com/vvka-141/mxfmeta/internal/klv"
	"github.com/vvka-141/mxfmeta/internal/metadata"
	"github.com/vvka-141/mxfmeta/internal/model"
	"github.com/vvka-141/mxfmeta/internal/partition"
	"github.com/vvka-141/mxfmeta/pkg/mxf"
)

// HeaderPartition is the resolved header metadata of one MXF file. It is
// immutable once Read returns and safe to query from several goroutines.
type HeaderPartition struct {
	pack     partition.Pack
	primer   *partition.Primer
	sets     []metadata.Set
	byUID    map[uuid.UUID]metadata.Set
	byKind   map[metadata.Kind][]metadata.Set
	objects  map[uuid.UUID]model.Object
	packages map[klv.UMID]model.GenericPackage
	preface  *model.Preface
	end      int64
}

// Preface returns the single Preface of the header metadata.
func (hp *HeaderPartition) Preface() (*model.Preface, bool) {
	return hp.preface, hp.preface != nil
}

// PartitionPack returns a copy of the header partition pack.
func (hp *HeaderPartition) PartitionPack() partition.Pack {
	p := hp.pack
	p.EssenceContainers = append([]klv.UL(nil), hp.pack.EssenceContainers...)
	return p
}

// PrimerPack returns the local tag registry the sets were decoded with.
func (hp *HeaderPartition) PrimerPack() *partition.Primer {
	return hp.primer
}

// MetadataRange returns the byte range of the header metadata, from the
// primer pack key to the end counted by HeaderByteCount.
func (hp *HeaderPartition) MetadataRange() (start, end int64) {
	return hp.primer.Offset, hp.end
}

// Object returns the resolved object with the given InstanceUID.
func (hp *HeaderPartition) Object(uid uuid.UUID) (model.Object, bool) {
	obj, ok := hp.objects[uid]
	return obj, ok
}

// PackageByUMID returns the package whose PackageUID is umid.
func (hp *HeaderPartition) PackageByUMID(umid klv.UMID) (model.GenericPackage, bool) {
	pkg, ok := hp.packages[umid]
	return pkg, ok
}

// Sets returns every raw set in file order.
func (hp *HeaderPartition) Sets() []metadata.Set {
	return append([]metadata.Set(nil), hp.sets...)
}

// RawSets returns the raw sets of one kind in file order.
func (hp *HeaderPartition) RawSets(kind metadata.Kind) []metadata.Set {
	return append([]metadata.Set(nil), hp.byKind[kind]...)
}

// RawSetsByTypeName is RawSets keyed by the kind's name, such as
// "SourcePackage". An unknown name yields nil.
func (hp *HeaderPartition) RawSetsByTypeName(name string) []metadata.Set {
	kind, ok := metadata.KindByName(name)
	if !ok {
		return nil
	}
	return hp.RawSets(kind)
}

// objectsOf returns the resolved objects of type T in file order.
func objectsOf[T model.Object](hp *HeaderPartition) []T {
	var out []T
	for _, set := range hp.sets {
		if t, ok := hp.objects[set.Common().InstanceUID].(T); ok {
			out = append(out, t)
		}
	}
	return out
}

// MaterialPackages returns the material packages in file order.
func (hp *HeaderPartition) MaterialPackages() []*model.MaterialPackage {
	return objectsOf[*model.MaterialPackage](hp)
}

// SourcePackages returns the source packages in file order.
func (hp *HeaderPartition) SourcePackages() []*model.SourcePackage {
	return objectsOf[*model.SourcePackage](hp)
}

// EssenceContainerDataList returns the essence container data sets in file order.
func (hp *HeaderPartition) EssenceContainerDataList() []*model.EssenceContainerData {
	return objectsOf[*model.EssenceContainerData](hp)
}

// ContentStorageList returns the content storage sets in file order.
func (hp *HeaderPartition) ContentStorageList() []*model.ContentStorage {
	return objectsOf[*model.ContentStorage](hp)
}

// Identifications returns the identification sets in file order.
func (hp *HeaderPartition) Identifications() []*model.Identification {
	return objectsOf[*model.Identification](hp)
}

// TimelineTracks returns every timeline track in file order.
func (hp *HeaderPartition) TimelineTracks() []*model.TimelineTrack {
	return objectsOf[*model.TimelineTrack](hp)
}

// EssenceDescriptors follows each source package to its descriptor. A
// descriptor shared by several packages is listed once.
func (hp *HeaderPartition) EssenceDescriptors() []model.GenericDescriptor {
	var out []model.GenericDescriptor
	seen := make(map[uuid.UUID]bool)
	for _, pkg := range hp.SourcePackages() {
		d := pkg.Descriptor
		if d == nil {
			continue
		}
		uid := d.Common().InstanceUID
		if seen[uid] {
			continue
		}
		seen[uid] = true
		out = append(out, d)
	}
	return out
}

// SubDescriptors returns the sub-descriptors reachable from the essence
// descriptors, in reference order.
func (hp *HeaderPartition) SubDescriptors() []model.SubDescriptor {
	var out []model.SubDescriptor
	seen := make(map[uuid.UUID]bool)
	for _, d := range hp.EssenceDescriptors() {
		for _, s := range d.SubDescriptorList() {
			uid := s.Common().InstanceUID
			if seen[uid] {
				continue
			}
			seen[uid] = true
			out = append(out, s)
		}
	}
	return out
}

func (hp *HeaderPartition) hasDescriptor(kind metadata.Kind) bool {
	for _, d := range hp.EssenceDescriptors() {
		if d.Kind() == kind {
			return true
		}
	}
	return false
}

// HasWaveAudioDescriptor reports whether a source package uses a wave audio descriptor.
func (hp *HeaderPartition) HasWaveAudioDescriptor() bool {
	return hp.hasDescriptor(metadata.KindWaveAudioEssenceDescriptor)
}

// HasCDCIPictureDescriptor reports whether a source package uses a CDCI picture descriptor.
func (hp *HeaderPartition) HasCDCIPictureDescriptor() bool {
	return hp.hasDescriptor(metadata.KindCDCIPictureEssenceDescriptor)
}

// HasRGBAPictureDescriptor reports whether a source package uses an RGBA picture descriptor.
func (hp *HeaderPartition) HasRGBAPictureDescriptor() bool {
	return hp.hasDescriptor(metadata.KindRGBAPictureEssenceDescriptor)
}

// HasPHDRMetadataTrackSubDescriptor reports whether any essence descriptor links a PHDR sub-descriptor.
func (hp *HeaderPartition) HasPHDRMetadataTrackSubDescriptor() bool {
	for _, s := range hp.SubDescriptors() {
		if s.SubDescriptorKind() == metadata.KindPHDRMetadataTrackSubDescriptor {
			return true
		}
	}
	return false
}

// EssenceDuration returns, for the first material package in the file, the
// longest of its tracks measured as the summed duration of the track's
// sequence. It is zero when there is no material package.
func (hp *HeaderPartition) EssenceDuration() int64 {
	packages := hp.MaterialPackages()
	if len(packages) == 0 {
		return 0
	}
	var longest int64
	for _, track := range packages[0].Tracks {
		if d := track.Duration(); d > longest {
			longest = d
		}
	}
	return longest
}

// EssenceTypes classifies the essence by the descriptor kinds present.
func (hp *HeaderPartition) EssenceTypes() []mxf.EssenceType {
	var types []mxf.EssenceType
	if hp.HasCDCIPictureDescriptor() || hp.HasRGBAPictureDescriptor() {
		types = append(types, mxf.EssenceTypeMainImage)
	}
	if hp.HasWaveAudioDescriptor() {
		types = append(types, mxf.EssenceTypeMainAudio)
	}
	if hp.HasPHDRMetadataTrackSubDescriptor() {
		types = append(types, mxf.EssenceTypePHDRMeta)
	}
	if len(types) == 0 {
		types = append(types, mxf.EssenceTypeUnsupported)
	}
	return types
}
