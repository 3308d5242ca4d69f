package metadata

import (
	"bytes"

	"github.com/google/uuid"

	"github.com/vvka-141/mxfmeta/internal/klv"
)

// SubDescriptor is implemented by the sub-descriptor variants.
type SubDescriptor interface {
	Set
	isSubDescriptor()
}

// MCALabel holds the fields shared by the multichannel audio labels.
type MCALabel struct {
	Base
	MCALabelDictionaryID  klv.UL    `json:"mca_label_dictionary_id" yaml:"mca_label_dictionary_id"`
	MCALinkID             uuid.UUID `json:"mca_link_id" yaml:"mca_link_id"`
	MCATagSymbol          string    `json:"mca_tag_symbol" yaml:"mca_tag_symbol"`
	MCATagName            string    `json:"mca_tag_name,omitempty" yaml:"mca_tag_name,omitempty"`
	MCAChannelID          uint32    `json:"mca_channel_id,omitempty" yaml:"mca_channel_id,omitempty"`
	RFC5646SpokenLanguage string    `json:"rfc5646_spoken_language,omitempty" yaml:"rfc5646_spoken_language,omitempty"`
}

func (*MCALabel) isSubDescriptor() {}

func (l *MCALabel) decodeItem(ul klv.UL, v []byte) (bool, error) {
	var err error
	switch ul {
	case propMCALabelDictionaryID:
		l.MCALabelDictionaryID, err = klv.ULFromBytes(v)
	case propMCALinkID:
		l.MCALinkID, err = klv.UUIDFromBytes(v)
	case propMCATagSymbol:
		l.MCATagSymbol, err = klv.UTF16Value(v)
	case propMCATagName:
		l.MCATagName, err = klv.UTF16Value(v)
	case propMCAChannelID:
		l.MCAChannelID, err = klv.Uint32Value(v)
	case propRFC5646SpokenLanguage:
		l.RFC5646SpokenLanguage = string(bytes.TrimRight(v, "\x00"))
	default:
		return l.Base.decodeItem(ul, v)
	}
	return true, err
}

// AudioChannelLabelSubDescriptor labels one audio channel.
type AudioChannelLabelSubDescriptor struct {
	MCALabel
	SoundfieldGroupLinkID uuid.UUID `json:"soundfield_group_link_id,omitempty" yaml:"soundfield_group_link_id,omitempty"`
}

func (*AudioChannelLabelSubDescriptor) Kind() Kind { return KindAudioChannelLabelSubDescriptor }

func (l *AudioChannelLabelSubDescriptor) decodeItem(ul klv.UL, v []byte) (bool, error) {
	if ul == propSoundfieldGroupLinkID {
		var err error
		l.SoundfieldGroupLinkID, err = klv.UUIDFromBytes(v)
		return true, err
	}
	return l.MCALabel.decodeItem(ul, v)
}

// SoundfieldGroupLabelSubDescriptor labels a group of channels forming one soundfield.
type SoundfieldGroupLabelSubDescriptor struct {
	MCALabel
	GroupOfSoundfieldGroupsLinkID []uuid.UUID `json:"group_of_soundfield_groups_link_id,omitempty" yaml:"group_of_soundfield_groups_link_id,omitempty"`
}

func (*SoundfieldGroupLabelSubDescriptor) Kind() Kind { return KindSoundfieldGroupLabelSubDescriptor }

func (l *SoundfieldGroupLabelSubDescriptor) decodeItem(ul klv.UL, v []byte) (bool, error) {
	if ul == propGroupOfSoundfieldGroupsLinkID {
		var err error
		l.GroupOfSoundfieldGroupsLinkID, err = klv.UUIDBatchValue(v)
		return true, err
	}
	return l.MCALabel.decodeItem(ul, v)
}

// GroupOfSoundfieldGroupsLabelSubDescriptor labels a group of soundfield groups.
type GroupOfSoundfieldGroupsLabelSubDescriptor struct {
	MCALabel
}

func (*GroupOfSoundfieldGroupsLabelSubDescriptor) Kind() Kind {
	return KindGroupOfSoundfieldGroupsLabelSubDescriptor
}

// JPEG2000PictureSubDescriptor carries the JPEG 2000 codestream main header parameters.
type JPEG2000PictureSubDescriptor struct {
	Base
	Rsiz uint16 `json:"rsiz" yaml:"rsiz"`
	Xsiz uint32 `json:"xsiz" yaml:"xsiz"`
	Ysiz uint32 `json:"ysiz" yaml:"ysiz"`
	Csiz uint16 `json:"csiz" yaml:"csiz"`
}

func (*JPEG2000PictureSubDescriptor) Kind() Kind { return KindJPEG2000PictureSubDescriptor }

func (*JPEG2000PictureSubDescriptor) isSubDescriptor() {}

func (d *JPEG2000PictureSubDescriptor) decodeItem(ul klv.UL, v []byte) (bool, error) {
	var err error
	switch ul {
	case propRsiz:
		d.Rsiz, err = klv.Uint16Value(v)
	case propXsiz:
		d.Xsiz, err = klv.Uint32Value(v)
	case propYsiz:
		d.Ysiz, err = klv.Uint32Value(v)
	case propCsiz:
		d.Csiz, err = klv.Uint16Value(v)
	default:
		return d.Base.decodeItem(ul, v)
	}
	return true, err
}

// PHDRMetadataTrackSubDescriptor marks a data track carrying PHDR
// (dynamic HDR) metadata for an image track.
type PHDRMetadataTrackSubDescriptor struct {
	Base
	DataDefinition   klv.UL `json:"data_definition" yaml:"data_definition"`
	SourceTrackID    uint32 `json:"source_track_id" yaml:"source_track_id"`
	SimplePayloadSID uint32 `json:"simple_payload_sid" yaml:"simple_payload_sid"`
}

func (*PHDRMetadataTrackSubDescriptor) Kind() Kind { return KindPHDRMetadataTrackSubDescriptor }

func (*PHDRMetadataTrackSubDescriptor) isSubDescriptor() {}

func (d *PHDRMetadataTrackSubDescriptor) decodeItem(ul klv.UL, v []byte) (bool, error) {
	var err error
	switch ul {
	case propDataDefinition:
		d.DataDefinition, err = klv.ULFromBytes(v)
	case propPHDRSourceTrackID:
		d.SourceTrackID, err = klv.Uint32Value(v)
	case propPHDRSimplePayloadSID:
		d.SimplePayloadSID, err = klv.Uint32Value(v)
	default:
		return d.Base.decodeItem(ul, v)
	}
	return true, err
}
