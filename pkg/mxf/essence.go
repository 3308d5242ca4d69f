package mxf

// EssenceType names the kind of essence a track file carries, derived purely
// from which descriptor kinds are present in its header partition.
type EssenceType string

const (
	EssenceTypeMainImage   EssenceType = "MainImageSequence"
	EssenceTypeMainAudio   EssenceType = "MainAudioSequence"
	EssenceTypePHDRMeta    EssenceType = "PHDRMetadataTrackSequence"
	EssenceTypeUnsupported EssenceType = "Unsupported"
)
