// Package metadatatest builds header metadata sets for tests, addressing
// fields by name instead of by local tag.
package metadatatest

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/vvka-141/mxfmeta/internal/klv"
	"github.com/vvka-141/mxfmeta/internal/klv/klvtest"
	"github.com/vvka-141/mxfmeta/internal/metadata"
)

// Tags holds the local tag used for each field name. Fields without a
// static tag in ST 377-1 get one from the dynamic range.
var Tags = map[string]uint16{
	"InstanceUID":                   0x3c0a,
	"GenerationUID":                 0x0102,
	"LastModifiedDate":              0x3b02,
	"Version":                       0x3b05,
	"ObjectModelVersion":            0x3b07,
	"PrimaryPackage":                0x3b08,
	"Identifications":               0x3b06,
	"ContentStorage":                0x3b03,
	"OperationalPattern":            0x3b09,
	"EssenceContainers":             0x3b0a,
	"DMSchemes":                     0x3b0b,
	"CompanyName":                   0x3c01,
	"ProductName":                   0x3c02,
	"VersionString":                 0x3c04,
	"ProductUID":                    0x3c05,
	"ModificationDate":              0x3c06,
	"Platform":                      0x3c08,
	"ThisGenerationUID":             0x3c09,
	"Packages":                      0x1901,
	"EssenceContainerData":          0x1902,
	"LinkedPackageUID":              0x2701,
	"IndexSID":                      0x3f06,
	"BodySID":                       0x3f07,
	"PackageUID":                    0x4401,
	"PackageName":                   0x4402,
	"PackageCreationDate":           0x4405,
	"PackageModifiedDate":           0x4404,
	"Tracks":                        0x4403,
	"Descriptor":                    0x4701,
	"TrackID":                       0x4801,
	"TrackNumber":                   0x4804,
	"TrackName":                     0x4802,
	"Sequence":                      0x4803,
	"EditRate":                      0x4b01,
	"Origin":                        0x4b02,
	"DataDefinition":                0x0201,
	"Duration":                      0x0202,
	"StructuralComponents":          0x1001,
	"StartPosition":                 0x1201,
	"SourcePackageID":               0x1101,
	"SourceTrackID":                 0x1102,
	"LinkedTrackID":                 0x3006,
	"SampleRate":                    0x3001,
	"ContainerDuration":             0x3002,
	"EssenceContainer":              0x3004,
	"FrameLayout":                   0x320c,
	"StoredWidth":                   0x3203,
	"StoredHeight":                  0x3202,
	"AspectRatio":                   0x320e,
	"PictureEssenceCoding":          0x3201,
	"ComponentDepth":                0x3301,
	"HorizontalSubsampling":         0x3302,
	"VerticalSubsampling":           0x3308,
	"ComponentMaxRef":               0x3406,
	"ComponentMinRef":               0x3407,
	"AudioSamplingRate":             0x3d03,
	"ChannelCount":                  0x3d07,
	"QuantizationBits":              0x3d01,
	"SoundEssenceCoding":            0x3d06,
	"BlockAlign":                    0x3d0a,
	"AvgBps":                        0x3d09,
	"ChannelAssignment":             0x3d32,
	"DataEssenceCoding":             0x3e01,
	"SubDescriptors":                0xff01,
	"MCALabelDictionaryID":          0xff02,
	"MCATagSymbol":                  0xff03,
	"MCATagName":                    0xff04,
	"GroupOfSoundfieldGroupsLinkID": 0xff05,
	"MCALinkID":                     0xff06,
	"SoundfieldGroupLinkID":         0xff07,
	"MCAChannelID":                  0xff08,
	"RFC5646SpokenLanguage":         0xff09,
	"Rsiz":                          0xff0a,
	"Xsiz":                          0xff0b,
	"Ysiz":                          0xff0c,
	"Csiz":                          0xff0d,
	"PHDRSourceTrackID":             0xff0e,
	"PHDRSimplePayloadSID":          0xff0f,
}

// Tag returns the tag for a field name and panics on an unknown name.
func Tag(name string) uint16 {
	tag, ok := Tags[name]
	if !ok {
		panic(fmt.Sprintf("metadatatest: no tag for field %q", name))
	}
	return tag
}

func label(name string) klv.UL {
	ul, ok := metadata.Label(name)
	if !ok {
		panic(fmt.Sprintf("metadatatest: no label for field %q", name))
	}
	return ul
}

// Resolver resolves every tag in Tags, standing in for a primer pack.
type Resolver struct{}

// Lookup implements metadata.TagResolver.
func (Resolver) Lookup(tag uint16) (klv.UL, bool) {
	for name, t := range Tags {
		if t == tag {
			return label(name), true
		}
	}
	return klv.UL{}, false
}

// PrimerEntries returns one primer entry per field name, ordered by tag.
func PrimerEntries() []klvtest.PrimerEntry {
	entries := make([]klvtest.PrimerEntry, 0, len(Tags))
	for name, tag := range Tags {
		entries = append(entries, klvtest.PrimerEntry{Tag: tag, UL: label(name)})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Tag < entries[j].Tag })
	return entries
}

// Primer encodes a primer pack covering every field name.
func Primer() []byte {
	return klvtest.Primer(PrimerEntries()...)
}

// Set accumulates the items of one metadata set.
type Set struct {
	key   klv.UL
	items klvtest.LocalSet
}

// New starts a set with the given key and InstanceUID.
func New(key klv.UL, uid uuid.UUID) *Set {
	s := &Set{key: key}
	return s.Field("InstanceUID", uid[:])
}

// Field adds a raw value for the named field.
func (s *Set) Field(name string, value []byte) *Set {
	s.items.Add(Tag(name), value)
	return s
}

// Tagged adds a raw value under an explicit tag.
func (s *Set) Tagged(tag uint16, value []byte) *Set {
	s.items.Add(tag, value)
	return s
}

// Ref adds a single reference field.
func (s *Set) Ref(name string, id uuid.UUID) *Set {
	return s.Field(name, id[:])
}

// Refs adds a reference batch field.
func (s *Set) Refs(name string, ids ...uuid.UUID) *Set {
	return s.Field(name, klvtest.UUIDs(ids...))
}

// UMID adds a UMID-valued field.
func (s *Set) UMID(name string, u klv.UMID) *Set {
	return s.Field(name, u[:])
}

// U32 adds a four-byte field.
func (s *Set) U32(name string, v uint32) *Set {
	return s.Field(name, klvtest.U32(v))
}

// I64 adds an eight-byte signed field.
func (s *Set) I64(name string, v int64) *Set {
	return s.Field(name, klvtest.I64(v))
}

// Text adds a UTF-16 string field.
func (s *Set) Text(name, v string) *Set {
	return s.Field(name, klvtest.UTF16(v))
}

// UL adds a label-valued field.
func (s *Set) UL(name string, ul klv.UL) *Set {
	return s.Field(name, ul[:])
}

// Rational adds a numerator/denominator field.
func (s *Set) Rational(name string, num, den int32) *Set {
	return s.Field(name, append(klvtest.U32(uint32(num)), klvtest.U32(uint32(den))...))
}

// Value returns the encoded items.
func (s *Set) Value() []byte {
	return s.items.Bytes()
}

// Packet returns the complete KLV packet.
func (s *Set) Packet() []byte {
	return s.items.Packet(s.key)
}
