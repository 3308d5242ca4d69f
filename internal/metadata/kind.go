package metadata

import "fmt"

// Kind identifies a registered set variant.
type Kind int

const (
	KindPreface Kind = iota + 1
	KindIdentification
	KindContentStorage
	KindEssenceContainerData
	KindMaterialPackage
	KindSourcePackage
	KindTimelineTrack
	KindSequence
	KindSourceClip
	KindFiller
	KindCDCIPictureEssenceDescriptor
	KindRGBAPictureEssenceDescriptor
	KindWaveAudioEssenceDescriptor
	KindGenericSoundEssenceDescriptor
	KindGenericDataEssenceDescriptor
	KindAudioChannelLabelSubDescriptor
	KindSoundfieldGroupLabelSubDescriptor
	KindGroupOfSoundfieldGroupsLabelSubDescriptor
	KindJPEG2000PictureSubDescriptor
	KindPHDRMetadataTrackSubDescriptor
)

var kindNames = map[Kind]string{
	KindPreface:                                   "Preface",
	KindIdentification:                            "Identification",
	KindContentStorage:                            "ContentStorage",
	KindEssenceContainerData:                      "EssenceContainerData",
	KindMaterialPackage:                           "MaterialPackage",
	KindSourcePackage:                             "SourcePackage",
	KindTimelineTrack:                             "TimelineTrack",
	KindSequence:                                  "Sequence",
	KindSourceClip:                                "SourceClip",
	KindFiller:                                    "Filler",
	KindCDCIPictureEssenceDescriptor:              "CDCIPictureEssenceDescriptor",
	KindRGBAPictureEssenceDescriptor:              "RGBAPictureEssenceDescriptor",
	KindWaveAudioEssenceDescriptor:                "WaveAudioEssenceDescriptor",
	KindGenericSoundEssenceDescriptor:             "GenericSoundEssenceDescriptor",
	KindGenericDataEssenceDescriptor:              "GenericDataEssenceDescriptor",
	KindAudioChannelLabelSubDescriptor:            "AudioChannelLabelSubDescriptor",
	KindSoundfieldGroupLabelSubDescriptor:         "SoundfieldGroupLabelSubDescriptor",
	KindGroupOfSoundfieldGroupsLabelSubDescriptor: "GroupOfSoundfieldGroupsLabelSubDescriptor",
	KindJPEG2000PictureSubDescriptor:              "JPEG2000PictureSubDescriptor",
	KindPHDRMetadataTrackSubDescriptor:            "PHDRMetadataTrackSubDescriptor",
}

// String returns the type name of the set variant.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// KindByName returns the kind whose type name is name.
func KindByName(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// Kinds returns every registered kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kindNames))
	for k := KindPreface; k <= KindPHDRMetadataTrackSubDescriptor; k++ {
		out = append(out, k)
	}
	return out
}

// IsDescriptor reports whether the kind is an essence descriptor.
func (k Kind) IsDescriptor() bool {
	switch k {
	case KindCDCIPictureEssenceDescriptor, KindRGBAPictureEssenceDescriptor,
		KindWaveAudioEssenceDescriptor, KindGenericSoundEssenceDescriptor,
		KindGenericDataEssenceDescriptor:
		return true
	}
	return false
}

// IsSubDescriptor reports whether the kind is a sub-descriptor.
func (k Kind) IsSubDescriptor() bool {
	return k >= KindAudioChannelLabelSubDescriptor && k <= KindPHDRMetadataTrackSubDescriptor
}

// IsAudioLabel reports whether the kind is one of the multichannel audio
// label sub-descriptors.
func (k Kind) IsAudioLabel() bool {
	switch k {
	case KindAudioChannelLabelSubDescriptor, KindSoundfieldGroupLabelSubDescriptor,
		KindGroupOfSoundfieldGroupsLabelSubDescriptor:
		return true
	}
	return false
}
