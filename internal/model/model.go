package model

import (
	"github.com/vvka-141/mxfmeta/internal/metadata"
)

// Object is any resolved metadata object.
type Object interface {
	Kind() metadata.Kind
	Common() *metadata.Base
}

// GenericPackage is a resolved material or source package.
type GenericPackage interface {
	Object
	Generic() *metadata.GenericPackage
	TrackList() []*TimelineTrack
}

// StructuralComponent is a resolved sequence, source clip or filler.
type StructuralComponent interface {
	Object
	Component() *metadata.StructuralComponent
}

// GenericDescriptor is a resolved essence descriptor.
type GenericDescriptor interface {
	Object
	Descriptor() *metadata.GenericDescriptor
	SubDescriptorList() []SubDescriptor
}

// SubDescriptor is a resolved sub-descriptor.
type SubDescriptor interface {
	Object
	SubDescriptorKind() metadata.Kind
}

// Preface is the root of the header metadata.
type Preface struct {
	metadata.Preface
	PrimaryPackage  GenericPackage
	ContentStorage  *ContentStorage
	Identifications []*Identification
}

// Identification records an application that wrote or modified the file.
type Identification struct {
	metadata.Identification
}

// ContentStorage holds the packages and essence container data of the file.
type ContentStorage struct {
	metadata.ContentStorage
	Packages             []GenericPackage
	EssenceContainerData []*EssenceContainerData
}

// EssenceContainerData links a source package to the essence stream that carries it.
type EssenceContainerData struct {
	metadata.EssenceContainerData
	// LinkedPackage is nil when the linked package UMID is zero or unresolved.
	LinkedPackage GenericPackage
}

// MaterialPackage describes the output timeline.
type MaterialPackage struct {
	metadata.MaterialPackage
	Tracks []*TimelineTrack
}

// TrackList returns the package's tracks.
func (p *MaterialPackage) TrackList() []*TimelineTrack { return p.Tracks }

// SourcePackage describes stored essence and its descriptor.
type SourcePackage struct {
	metadata.SourcePackage
	Tracks     []*TimelineTrack
	Descriptor GenericDescriptor
}

// TrackList returns the package's tracks.
func (p *SourcePackage) TrackList() []*TimelineTrack { return p.Tracks }

// TimelineTrack is a track with an edit rate and one sequence.
type TimelineTrack struct {
	metadata.TimelineTrack
	Sequence *Sequence
}

// Duration returns the summed duration of the track's sequence, or zero
// when the track has none.
func (t *TimelineTrack) Duration() int64 {
	if t.Sequence == nil {
		return 0
	}
	return t.Sequence.SummedDuration()
}

// Sequence is an ordered list of structural components.
type Sequence struct {
	metadata.Sequence
	Components []StructuralComponent
}

// SummedDuration adds up the durations of the sequence's components.
func (s *Sequence) SummedDuration() int64 {
	var total int64
	for _, c := range s.Components {
		total += c.Component().Duration
	}
	return total
}

// SourceClip plays a section of a source package.
type SourceClip struct {
	metadata.SourceClip
	// SourcePackage is nil when the clip ends the reference chain or the
	// package is not in this file.
	SourcePackage GenericPackage
}

// Filler is an empty span of a sequence.
type Filler struct {
	metadata.Filler
}
