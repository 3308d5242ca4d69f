package metadata

import (
	"github.com/google/uuid"

	"github.com/vvka-141/mxfmeta/internal/klv"
)

// Descriptor is implemented by the essence descriptor variants.
type Descriptor interface {
	Set
	Descriptor() *GenericDescriptor
}

// GenericDescriptor holds the file descriptor fields shared by every
// essence descriptor variant.
type GenericDescriptor struct {
	Base
	SubDescriptorRefs []uuid.UUID  `json:"sub_descriptors,omitempty" yaml:"sub_descriptors,omitempty"`
	LinkedTrackID     uint32       `json:"linked_track_id,omitempty" yaml:"linked_track_id,omitempty"`
	SampleRate        klv.Rational `json:"sample_rate" yaml:"sample_rate"`
	ContainerDuration int64        `json:"container_duration,omitempty" yaml:"container_duration,omitempty"`
	EssenceContainer  klv.UL       `json:"essence_container" yaml:"essence_container"`
}

// Descriptor returns d.
func (d *GenericDescriptor) Descriptor() *GenericDescriptor { return d }

func (d *GenericDescriptor) References() []uuid.UUID {
	return nonZero(d.SubDescriptorRefs...)
}

func (d *GenericDescriptor) decodeItem(ul klv.UL, v []byte) (bool, error) {
	var err error
	switch ul {
	case propSubDescriptors:
		d.SubDescriptorRefs, err = klv.UUIDBatchValue(v)
	case propLinkedTrackID:
		d.LinkedTrackID, err = klv.Uint32Value(v)
	case propSampleRate:
		d.SampleRate, err = klv.RationalValue(v)
	case propContainerDuration:
		d.ContainerDuration, err = klv.Int64Value(v)
	case propEssenceContainer:
		d.EssenceContainer, err = klv.ULFromBytes(v)
	default:
		return d.Base.decodeItem(ul, v)
	}
	return true, err
}

// PictureDescriptor holds the generic picture essence fields.
type PictureDescriptor struct {
	GenericDescriptor
	FrameLayout          uint8        `json:"frame_layout" yaml:"frame_layout"`
	StoredWidth          uint32       `json:"stored_width" yaml:"stored_width"`
	StoredHeight         uint32       `json:"stored_height" yaml:"stored_height"`
	AspectRatio          klv.Rational `json:"aspect_ratio" yaml:"aspect_ratio"`
	PictureEssenceCoding klv.UL       `json:"picture_essence_coding" yaml:"picture_essence_coding"`
}

func (d *PictureDescriptor) decodeItem(ul klv.UL, v []byte) (bool, error) {
	var err error
	switch ul {
	case propFrameLayout:
		d.FrameLayout, err = klv.Uint8Value(v)
	case propStoredWidth:
		d.StoredWidth, err = klv.Uint32Value(v)
	case propStoredHeight:
		d.StoredHeight, err = klv.Uint32Value(v)
	case propAspectRatio:
		d.AspectRatio, err = klv.RationalValue(v)
	case propPictureEssenceCoding:
		d.PictureEssenceCoding, err = klv.ULFromBytes(v)
	default:
		return d.GenericDescriptor.decodeItem(ul, v)
	}
	return true, err
}

// CDCIPictureEssenceDescriptor describes color-difference component picture essence.
type CDCIPictureEssenceDescriptor struct {
	PictureDescriptor
	ComponentDepth        uint32 `json:"component_depth" yaml:"component_depth"`
	HorizontalSubsampling uint32 `json:"horizontal_subsampling" yaml:"horizontal_subsampling"`
	VerticalSubsampling   uint32 `json:"vertical_subsampling,omitempty" yaml:"vertical_subsampling,omitempty"`
}

func (*CDCIPictureEssenceDescriptor) Kind() Kind { return KindCDCIPictureEssenceDescriptor }

func (d *CDCIPictureEssenceDescriptor) decodeItem(ul klv.UL, v []byte) (bool, error) {
	var err error
	switch ul {
	case propComponentDepth:
		d.ComponentDepth, err = klv.Uint32Value(v)
	case propHorizontalSubsampling:
		d.HorizontalSubsampling, err = klv.Uint32Value(v)
	case propVerticalSubsampling:
		d.VerticalSubsampling, err = klv.Uint32Value(v)
	default:
		return d.PictureDescriptor.decodeItem(ul, v)
	}
	return true, err
}

// RGBAPictureEssenceDescriptor describes RGB(A) picture essence.
type RGBAPictureEssenceDescriptor struct {
	PictureDescriptor
	ComponentMaxRef uint32 `json:"component_max_ref,omitempty" yaml:"component_max_ref,omitempty"`
	ComponentMinRef uint32 `json:"component_min_ref,omitempty" yaml:"component_min_ref,omitempty"`
}

func (*RGBAPictureEssenceDescriptor) Kind() Kind { return KindRGBAPictureEssenceDescriptor }

func (d *RGBAPictureEssenceDescriptor) decodeItem(ul klv.UL, v []byte) (bool, error) {
	var err error
	switch ul {
	case propComponentMaxRef:
		d.ComponentMaxRef, err = klv.Uint32Value(v)
	case propComponentMinRef:
		d.ComponentMinRef, err = klv.Uint32Value(v)
	default:
		return d.PictureDescriptor.decodeItem(ul, v)
	}
	return true, err
}

// SoundDescriptor holds the generic sound essence fields.
type SoundDescriptor struct {
	GenericDescriptor
	AudioSamplingRate  klv.Rational `json:"audio_sampling_rate" yaml:"audio_sampling_rate"`
	ChannelCount       uint32       `json:"channel_count" yaml:"channel_count"`
	QuantizationBits   uint32       `json:"quantization_bits" yaml:"quantization_bits"`
	SoundEssenceCoding klv.UL       `json:"sound_essence_coding" yaml:"sound_essence_coding"`
}

func (d *SoundDescriptor) decodeItem(ul klv.UL, v []byte) (bool, error) {
	var err error
	switch ul {
	case propAudioSamplingRate:
		d.AudioSamplingRate, err = klv.RationalValue(v)
	case propChannelCount:
		d.ChannelCount, err = klv.Uint32Value(v)
	case propQuantizationBits:
		d.QuantizationBits, err = klv.Uint32Value(v)
	case propSoundEssenceCoding:
		d.SoundEssenceCoding, err = klv.ULFromBytes(v)
	default:
		return d.GenericDescriptor.decodeItem(ul, v)
	}
	return true, err
}

// GenericSoundEssenceDescriptor describes sound essence other than wave audio.
type GenericSoundEssenceDescriptor struct {
	SoundDescriptor
}

func (*GenericSoundEssenceDescriptor) Kind() Kind { return KindGenericSoundEssenceDescriptor }

// WaveAudioEssenceDescriptor describes broadcast wave audio essence.
type WaveAudioEssenceDescriptor struct {
	SoundDescriptor
	BlockAlign        uint16 `json:"block_align" yaml:"block_align"`
	AvgBps            uint32 `json:"avg_bps" yaml:"avg_bps"`
	ChannelAssignment klv.UL `json:"channel_assignment" yaml:"channel_assignment"`
}

func (*WaveAudioEssenceDescriptor) Kind() Kind { return KindWaveAudioEssenceDescriptor }

func (d *WaveAudioEssenceDescriptor) decodeItem(ul klv.UL, v []byte) (bool, error) {
	var err error
	switch ul {
	case propBlockAlign:
		d.BlockAlign, err = klv.Uint16Value(v)
	case propAvgBps:
		d.AvgBps, err = klv.Uint32Value(v)
	case propChannelAssignment:
		d.ChannelAssignment, err = klv.ULFromBytes(v)
	default:
		return d.SoundDescriptor.decodeItem(ul, v)
	}
	return true, err
}

// GenericDataEssenceDescriptor describes data essence such as PHDR metadata.
type GenericDataEssenceDescriptor struct {
	GenericDescriptor
	DataEssenceCoding klv.UL `json:"data_essence_coding" yaml:"data_essence_coding"`
}

func (*GenericDataEssenceDescriptor) Kind() Kind { return KindGenericDataEssenceDescriptor }

func (d *GenericDataEssenceDescriptor) decodeItem(ul klv.UL, v []byte) (bool, error) {
	if ul == propDataEssenceCoding {
		var err error
		d.DataEssenceCoding, err = klv.ULFromBytes(v)
		return true, err
	}
	return d.GenericDescriptor.decodeItem(ul, v)
}
