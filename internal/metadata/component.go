package metadata

import (
	"github.com/google/uuid"

	"github.com/vvka-141/mxfmeta/internal/klv"
)

// Component is implemented by the structural component variants.
type Component interface {
	Set
	Component() *StructuralComponent
}

// StructuralComponent holds the fields shared by sequences, source clips
// and fillers.
type StructuralComponent struct {
	Base
	DataDefinition klv.UL `json:"data_definition" yaml:"data_definition"`
	Duration       int64  `json:"duration" yaml:"duration"`
}

// Component returns c.
func (c *StructuralComponent) Component() *StructuralComponent { return c }

func (c *StructuralComponent) decodeItem(ul klv.UL, v []byte) (bool, error) {
	var err error
	switch ul {
	case propDataDefinition:
		c.DataDefinition, err = klv.ULFromBytes(v)
	case propDuration:
		c.Duration, err = klv.Int64Value(v)
	default:
		return c.Base.decodeItem(ul, v)
	}
	return true, err
}

// Sequence is an ordered list of components.
type Sequence struct {
	StructuralComponent
	ComponentRefs []uuid.UUID `json:"structural_components" yaml:"structural_components"`
}

func (*Sequence) Kind() Kind { return KindSequence }

func (s *Sequence) References() []uuid.UUID {
	return nonZero(s.ComponentRefs...)
}

func (s *Sequence) decodeItem(ul klv.UL, v []byte) (bool, error) {
	if ul == propStructuralComponents {
		var err error
		s.ComponentRefs, err = klv.UUIDBatchValue(v)
		return true, err
	}
	return s.StructuralComponent.decodeItem(ul, v)
}

// SourceClip points at a span of a track in another package. A zero
// SourcePackageID ends the reference chain.
type SourceClip struct {
	StructuralComponent
	StartPosition   int64    `json:"start_position" yaml:"start_position"`
	SourcePackageID klv.UMID `json:"source_package_id" yaml:"source_package_id"`
	SourceTrackID   uint32   `json:"source_track_id" yaml:"source_track_id"`
}

func (*SourceClip) Kind() Kind { return KindSourceClip }

// PackageReference returns the UMID of the referenced package.
func (c *SourceClip) PackageReference() klv.UMID { return c.SourcePackageID }

func (c *SourceClip) decodeItem(ul klv.UL, v []byte) (bool, error) {
	var err error
	switch ul {
	case propStartPosition:
		c.StartPosition, err = klv.Int64Value(v)
	case propSourcePackageID:
		c.SourcePackageID, err = klv.UMIDFromBytes(v)
	case propSourceTrackID:
		c.SourceTrackID, err = klv.Uint32Value(v)
	default:
		return c.StructuralComponent.decodeItem(ul, v)
	}
	return true, err
}

// Filler is a gap in a sequence.
type Filler struct {
	StructuralComponent
}

func (*Filler) Kind() Kind { return KindFiller }
