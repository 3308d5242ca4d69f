package metadata

import (
	"time"

	"github.com/google/uuid"

	"github.com/vvka-141/mxfmeta/internal/klv"
)

// Preface is the root set of the header metadata.
type Preface struct {
	Base
	LastModifiedDate   time.Time   `json:"last_modified_date" yaml:"last_modified_date"`
	Version            uint16      `json:"version" yaml:"version"`
	ObjectModelVersion uint32      `json:"object_model_version,omitempty" yaml:"object_model_version,omitempty"`
	PrimaryPackageRef  uuid.UUID   `json:"primary_package,omitempty" yaml:"primary_package,omitempty"`
	IdentificationRefs []uuid.UUID `json:"identifications" yaml:"identifications"`
	ContentStorageRef  uuid.UUID   `json:"content_storage" yaml:"content_storage"`
	OperationalPattern klv.UL      `json:"operational_pattern" yaml:"operational_pattern"`
	EssenceContainers  []klv.UL    `json:"essence_containers" yaml:"essence_containers"`
	DMSchemes          []klv.UL    `json:"dm_schemes" yaml:"dm_schemes"`
}

func (*Preface) Kind() Kind { return KindPreface }

// References returns the primary package, the identifications and the
// content storage.
func (p *Preface) References() []uuid.UUID {
	refs := append([]uuid.UUID{p.PrimaryPackageRef}, p.IdentificationRefs...)
	return nonZero(append(refs, p.ContentStorageRef)...)
}

func (p *Preface) decodeItem(ul klv.UL, v []byte) (bool, error) {
	var err error
	switch ul {
	case propLastModifiedDate:
		p.LastModifiedDate, err = klv.TimestampValue(v)
	case propVersion:
		p.Version, err = klv.Uint16Value(v)
	case propObjectModelVersion:
		p.ObjectModelVersion, err = klv.Uint32Value(v)
	case propPrimaryPackage:
		p.PrimaryPackageRef, err = klv.UUIDFromBytes(v)
	case propIdentifications:
		p.IdentificationRefs, err = klv.UUIDBatchValue(v)
	case propContentStorage:
		p.ContentStorageRef, err = klv.UUIDFromBytes(v)
	case propOperationalPattern:
		p.OperationalPattern, err = klv.ULFromBytes(v)
	case propEssenceContainers:
		p.EssenceContainers, err = klv.ULBatchValue(v)
	case propDMSchemes:
		p.DMSchemes, err = klv.ULBatchValue(v)
	default:
		return p.Base.decodeItem(ul, v)
	}
	return true, err
}

// Identification records the application that wrote or modified the file.
type Identification struct {
	Base
	CompanyName       string    `json:"company_name" yaml:"company_name"`
	ProductName       string    `json:"product_name" yaml:"product_name"`
	VersionString     string    `json:"version_string" yaml:"version_string"`
	Platform          string    `json:"platform,omitempty" yaml:"platform,omitempty"`
	ProductUID        uuid.UUID `json:"product_uid" yaml:"product_uid"`
	ModificationDate  time.Time `json:"modification_date" yaml:"modification_date"`
	ThisGenerationUID uuid.UUID `json:"this_generation_uid" yaml:"this_generation_uid"`
}

func (*Identification) Kind() Kind { return KindIdentification }

func (i *Identification) decodeItem(ul klv.UL, v []byte) (bool, error) {
	var err error
	switch ul {
	case propCompanyName:
		i.CompanyName, err = klv.UTF16Value(v)
	case propProductName:
		i.ProductName, err = klv.UTF16Value(v)
	case propVersionString:
		i.VersionString, err = klv.UTF16Value(v)
	case propPlatform:
		i.Platform, err = klv.UTF16Value(v)
	case propProductUID:
		i.ProductUID, err = klv.UUIDFromBytes(v)
	case propModificationDate:
		i.ModificationDate, err = klv.TimestampValue(v)
	case propThisGenerationUID:
		i.ThisGenerationUID, err = klv.UUIDFromBytes(v)
	default:
		return i.Base.decodeItem(ul, v)
	}
	return true, err
}

// ContentStorage lists the packages and essence container data of the file.
type ContentStorage struct {
	Base
	PackageRefs              []uuid.UUID `json:"packages" yaml:"packages"`
	EssenceContainerDataRefs []uuid.UUID `json:"essence_container_data" yaml:"essence_container_data"`
}

func (*ContentStorage) Kind() Kind { return KindContentStorage }

func (c *ContentStorage) References() []uuid.UUID {
	return nonZero(append(append([]uuid.UUID(nil), c.PackageRefs...), c.EssenceContainerDataRefs...)...)
}

func (c *ContentStorage) decodeItem(ul klv.UL, v []byte) (bool, error) {
	var err error
	switch ul {
	case propPackages:
		c.PackageRefs, err = klv.UUIDBatchValue(v)
	case propEssenceContainerData:
		c.EssenceContainerDataRefs, err = klv.UUIDBatchValue(v)
	default:
		return c.Base.decodeItem(ul, v)
	}
	return true, err
}

// EssenceContainerData ties a file package to the stream IDs of its essence
// and index.
type EssenceContainerData struct {
	Base
	LinkedPackageUID klv.UMID `json:"linked_package_uid" yaml:"linked_package_uid"`
	IndexSID         uint32   `json:"index_sid" yaml:"index_sid"`
	BodySID          uint32   `json:"body_sid" yaml:"body_sid"`
}

func (*EssenceContainerData) Kind() Kind { return KindEssenceContainerData }

// PackageReference returns the UMID of the linked file package.
func (e *EssenceContainerData) PackageReference() klv.UMID { return e.LinkedPackageUID }

func (e *EssenceContainerData) decodeItem(ul klv.UL, v []byte) (bool, error) {
	var err error
	switch ul {
	case propLinkedPackageUID:
		e.LinkedPackageUID, err = klv.UMIDFromBytes(v)
	case propIndexSID:
		e.IndexSID, err = klv.Uint32Value(v)
	case propBodySID:
		e.BodySID, err = klv.Uint32Value(v)
	default:
		return e.Base.decodeItem(ul, v)
	}
	return true, err
}
