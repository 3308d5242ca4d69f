package model

import "github.com/vvka-141/mxfmeta/internal/metadata"

// descriptorLinks holds the resolved sub-descriptors of a descriptor.
type descriptorLinks struct {
	SubDescriptors []SubDescriptor
}

// SubDescriptorList returns the resolved sub-descriptors in reference order.
func (l *descriptorLinks) SubDescriptorList() []SubDescriptor { return l.SubDescriptors }

// CDCIPictureEssenceDescriptor describes color-difference picture essence.
type CDCIPictureEssenceDescriptor struct {
	metadata.CDCIPictureEssenceDescriptor
	descriptorLinks
}

// RGBAPictureEssenceDescriptor describes RGBA picture essence.
type RGBAPictureEssenceDescriptor struct {
	metadata.RGBAPictureEssenceDescriptor
	descriptorLinks
}

// WaveAudioEssenceDescriptor describes wave (PCM) audio essence.
type WaveAudioEssenceDescriptor struct {
	metadata.WaveAudioEssenceDescriptor
	descriptorLinks
}

// AudioLabels returns the multichannel audio label sub-descriptors.
func (d *WaveAudioEssenceDescriptor) AudioLabels() []SubDescriptor {
	var out []SubDescriptor
	for _, s := range d.SubDescriptors {
		if s.SubDescriptorKind().IsAudioLabel() {
			out = append(out, s)
		}
	}
	return out
}

// GenericSoundEssenceDescriptor describes sound essence other than wave audio.
type GenericSoundEssenceDescriptor struct {
	metadata.GenericSoundEssenceDescriptor
	descriptorLinks
}

// GenericDataEssenceDescriptor describes data essence such as PHDR metadata.
type GenericDataEssenceDescriptor struct {
	metadata.GenericDataEssenceDescriptor
	descriptorLinks
}

// NewDescriptor wraps a raw descriptor and its resolved sub-descriptors.
// It returns nil for a set that is not a descriptor.
func NewDescriptor(raw metadata.Descriptor, subs []SubDescriptor) GenericDescriptor {
	links := descriptorLinks{SubDescriptors: subs}
	switch d := raw.(type) {
	case *metadata.CDCIPictureEssenceDescriptor:
		return &CDCIPictureEssenceDescriptor{*d, links}
	case *metadata.RGBAPictureEssenceDescriptor:
		return &RGBAPictureEssenceDescriptor{*d, links}
	case *metadata.WaveAudioEssenceDescriptor:
		return &WaveAudioEssenceDescriptor{*d, links}
	case *metadata.GenericSoundEssenceDescriptor:
		return &GenericSoundEssenceDescriptor{*d, links}
	case *metadata.GenericDataEssenceDescriptor:
		return &GenericDataEssenceDescriptor{*d, links}
	}
	return nil
}

// AudioChannelLabelSubDescriptor labels one audio channel.
type AudioChannelLabelSubDescriptor struct {
	metadata.AudioChannelLabelSubDescriptor
}

func (d *AudioChannelLabelSubDescriptor) SubDescriptorKind() metadata.Kind { return d.Kind() }

// SoundfieldGroupLabelSubDescriptor labels a group of audio channels.
type SoundfieldGroupLabelSubDescriptor struct {
	metadata.SoundfieldGroupLabelSubDescriptor
}

func (d *SoundfieldGroupLabelSubDescriptor) SubDescriptorKind() metadata.Kind { return d.Kind() }

// GroupOfSoundfieldGroupsLabelSubDescriptor labels a group of soundfield groups.
type GroupOfSoundfieldGroupsLabelSubDescriptor struct {
	metadata.GroupOfSoundfieldGroupsLabelSubDescriptor
}

func (d *GroupOfSoundfieldGroupsLabelSubDescriptor) SubDescriptorKind() metadata.Kind {
	return d.Kind()
}

// JPEG2000PictureSubDescriptor carries JPEG 2000 coding parameters.
type JPEG2000PictureSubDescriptor struct {
	metadata.JPEG2000PictureSubDescriptor
}

func (d *JPEG2000PictureSubDescriptor) SubDescriptorKind() metadata.Kind { return d.Kind() }

// PHDRMetadataTrackSubDescriptor marks a PHDR metadata track.
type PHDRMetadataTrackSubDescriptor struct {
	metadata.PHDRMetadataTrackSubDescriptor
}

func (d *PHDRMetadataTrackSubDescriptor) SubDescriptorKind() metadata.Kind { return d.Kind() }

// NewSubDescriptor wraps a raw sub-descriptor. It returns nil for a set
// that is not a sub-descriptor.
func NewSubDescriptor(raw metadata.SubDescriptor) SubDescriptor {
	switch d := raw.(type) {
	case *metadata.AudioChannelLabelSubDescriptor:
		return &AudioChannelLabelSubDescriptor{*d}
	case *metadata.SoundfieldGroupLabelSubDescriptor:
		return &SoundfieldGroupLabelSubDescriptor{*d}
	case *metadata.GroupOfSoundfieldGroupsLabelSubDescriptor:
		return &GroupOfSoundfieldGroupsLabelSubDescriptor{*d}
	case *metadata.JPEG2000PictureSubDescriptor:
		return &JPEG2000PictureSubDescriptor{*d}
	case *metadata.PHDRMetadataTrackSubDescriptor:
		return &PHDRMetadataTrackSubDescriptor{*d}
	}
	return nil
}
