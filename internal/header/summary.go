package header

import (
	"time"

	"github.com/google/uuid"

	"github.com/vvka-141/mxfmeta/internal/klv"
	"github.com/vvka-141/mxfmeta/internal/metadata"
	"github.com/vvka-141/mxfmeta/internal/model"
	"github.com/vvka-141/mxfmeta/internal/partition"
	"github.com/vvka-141/mxfmeta/pkg/mxf"
)

// Summary is a serializable snapshot of a header partition.
type Summary struct {
	Partition       partition.Pack          `json:"partition" yaml:"partition"`
	PrimerEntries   int                     `json:"primer_entries" yaml:"primer_entries"`
	SetCounts       map[string]int          `json:"set_counts" yaml:"set_counts"`
	Identifications []IdentificationSummary `json:"identifications,omitempty" yaml:"identifications,omitempty"`
	Packages        []PackageSummary        `json:"packages" yaml:"packages"`
	EssenceTypes    []mxf.EssenceType       `json:"essence_types" yaml:"essence_types"`
	EssenceDuration int64                   `json:"essence_duration" yaml:"essence_duration"`
}

// IdentificationSummary names the application that wrote the file.
type IdentificationSummary struct {
	CompanyName      string    `json:"company_name" yaml:"company_name"`
	ProductName      string    `json:"product_name" yaml:"product_name"`
	VersionString    string    `json:"version_string" yaml:"version_string"`
	ModificationDate time.Time `json:"modification_date" yaml:"modification_date"`
}

// PackageSummary describes one material or source package.
type PackageSummary struct {
	Kind        metadata.Kind      `json:"kind" yaml:"kind"`
	InstanceUID uuid.UUID          `json:"instance_uid" yaml:"instance_uid"`
	PackageUID  klv.UMID           `json:"package_uid" yaml:"package_uid"`
	Name        string             `json:"name,omitempty" yaml:"name,omitempty"`
	Tracks      []TrackSummary     `json:"tracks,omitempty" yaml:"tracks,omitempty"`
	Descriptor  *DescriptorSummary `json:"descriptor,omitempty" yaml:"descriptor,omitempty"`
}

// TrackSummary describes one timeline track.
type TrackSummary struct {
	TrackID  uint32       `json:"track_id" yaml:"track_id"`
	Name     string       `json:"name,omitempty" yaml:"name,omitempty"`
	EditRate klv.Rational `json:"edit_rate" yaml:"edit_rate"`
	Duration int64        `json:"duration" yaml:"duration"`
}

// DescriptorSummary describes the essence descriptor of a source package.
type DescriptorSummary struct {
	Kind             metadata.Kind   `json:"kind" yaml:"kind"`
	SampleRate       klv.Rational    `json:"sample_rate" yaml:"sample_rate"`
	EssenceContainer klv.UL          `json:"essence_container" yaml:"essence_container"`
	SubDescriptors   []metadata.Kind `json:"sub_descriptors,omitempty" yaml:"sub_descriptors,omitempty"`
}

// Summary builds a snapshot of the partition pack, the packages with their
// tracks and descriptors, and the derived essence facts.
func (hp *HeaderPartition) Summary() Summary {
	s := Summary{
		Partition:       hp.PartitionPack(),
		PrimerEntries:   hp.primer.Len(),
		SetCounts:       make(map[string]int, len(hp.byKind)),
		EssenceTypes:    hp.EssenceTypes(),
		EssenceDuration: hp.EssenceDuration(),
	}
	for kind, sets := range hp.byKind {
		s.SetCounts[kind.String()] = len(sets)
	}
	for _, id := range hp.Identifications() {
		s.Identifications = append(s.Identifications, IdentificationSummary{
			CompanyName:      id.CompanyName,
			ProductName:      id.ProductName,
			VersionString:    id.VersionString,
			ModificationDate: id.ModificationDate,
		})
	}
	for _, pkg := range objectsOf[model.GenericPackage](hp) {
		s.Packages = append(s.Packages, summarizePackage(pkg))
	}
	return s
}

func summarizePackage(pkg model.GenericPackage) PackageSummary {
	g := pkg.Generic()
	ps := PackageSummary{
		Kind:        pkg.Kind(),
		InstanceUID: g.InstanceUID,
		PackageUID:  g.PackageUID,
		Name:        g.Name,
	}
	for _, t := range pkg.TrackList() {
		ps.Tracks = append(ps.Tracks, TrackSummary{
			TrackID:  t.TrackID,
			Name:     t.TrackName,
			EditRate: t.EditRate,
			Duration: t.Duration(),
		})
	}
	if sp, ok := pkg.(*model.SourcePackage); ok && sp.Descriptor != nil {
		d := sp.Descriptor.Descriptor()
		ds := &DescriptorSummary{
			Kind:             sp.Descriptor.Kind(),
			SampleRate:       d.SampleRate,
			EssenceContainer: d.EssenceContainer,
		}
		for _, sub := range sp.Descriptor.SubDescriptorList() {
			ds.SubDescriptors = append(ds.SubDescriptors, sub.SubDescriptorKind())
		}
		ps.Descriptor = ds
	}
	return ps
}
