package metadata

import (
	"time"

	"github.com/google/uuid"

	"github.com/vvka-141/mxfmeta/internal/klv"
)

// Package is implemented by the material and source package variants.
type Package interface {
	Set
	Generic() *GenericPackage
}

// GenericPackage holds the fields shared by every package variant.
// Packages are addressable both by InstanceUID and by PackageUID.
type GenericPackage struct {
	Base
	PackageUID   klv.UMID    `json:"package_uid" yaml:"package_uid"`
	Name         string      `json:"name,omitempty" yaml:"name,omitempty"`
	CreationDate time.Time   `json:"creation_date" yaml:"creation_date"`
	ModifiedDate time.Time   `json:"modified_date" yaml:"modified_date"`
	TrackRefs    []uuid.UUID `json:"tracks" yaml:"tracks"`
}

// Generic returns p.
func (p *GenericPackage) Generic() *GenericPackage { return p }

func (p *GenericPackage) References() []uuid.UUID {
	return nonZero(p.TrackRefs...)
}

func (p *GenericPackage) decodeItem(ul klv.UL, v []byte) (bool, error) {
	var err error
	switch ul {
	case propPackageUID:
		p.PackageUID, err = klv.UMIDFromBytes(v)
	case propPackageName:
		p.Name, err = klv.UTF16Value(v)
	case propCreationDate:
		p.CreationDate, err = klv.TimestampValue(v)
	case propModifiedDate:
		p.ModifiedDate, err = klv.TimestampValue(v)
	case propTracks:
		p.TrackRefs, err = klv.UUIDBatchValue(v)
	default:
		return p.Base.decodeItem(ul, v)
	}
	return true, err
}

// MaterialPackage is the output timeline of the file.
type MaterialPackage struct {
	GenericPackage
}

func (*MaterialPackage) Kind() Kind { return KindMaterialPackage }

// SourcePackage describes stored essence through its descriptor.
type SourcePackage struct {
	GenericPackage
	DescriptorRef uuid.UUID `json:"descriptor,omitempty" yaml:"descriptor,omitempty"`
}

func (*SourcePackage) Kind() Kind { return KindSourcePackage }

// References returns the tracks followed by the descriptor.
func (p *SourcePackage) References() []uuid.UUID {
	return nonZero(append(append([]uuid.UUID(nil), p.TrackRefs...), p.DescriptorRef)...)
}

func (p *SourcePackage) decodeItem(ul klv.UL, v []byte) (bool, error) {
	if ul == propDescriptor {
		var err error
		p.DescriptorRef, err = klv.UUIDFromBytes(v)
		return true, err
	}
	return p.GenericPackage.decodeItem(ul, v)
}

// TimelineTrack is a track whose sequence runs at a fixed edit rate.
type TimelineTrack struct {
	Base
	TrackID     uint32       `json:"track_id" yaml:"track_id"`
	TrackNumber uint32       `json:"track_number" yaml:"track_number"`
	TrackName   string       `json:"track_name,omitempty" yaml:"track_name,omitempty"`
	SequenceRef uuid.UUID    `json:"sequence" yaml:"sequence"`
	EditRate    klv.Rational `json:"edit_rate" yaml:"edit_rate"`
	Origin      int64        `json:"origin" yaml:"origin"`
}

func (*TimelineTrack) Kind() Kind { return KindTimelineTrack }

func (t *TimelineTrack) References() []uuid.UUID {
	return nonZero(t.SequenceRef)
}

func (t *TimelineTrack) decodeItem(ul klv.UL, v []byte) (bool, error) {
	var err error
	switch ul {
	case propTrackID:
		t.TrackID, err = klv.Uint32Value(v)
	case propTrackNumber:
		t.TrackNumber, err = klv.Uint32Value(v)
	case propTrackName:
		t.TrackName, err = klv.UTF16Value(v)
	case propSequence:
		t.SequenceRef, err = klv.UUIDFromBytes(v)
	case propEditRate:
		t.EditRate, err = klv.RationalValue(v)
	case propOrigin:
		t.Origin, err = klv.Int64Value(v)
	default:
		return t.Base.decodeItem(ul, v)
	}
	return true, err
}
