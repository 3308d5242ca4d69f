package metadata

import (
	"github.com/google/uuid"

	"github.com/vvka-141/mxfmeta/internal/klv"
	"github.com/vvka-141/mxfmeta/internal/report"
	"github.com/vvka-141/mxfmeta/pkg/mxf"
)

// Set is a decoded, not yet linked, metadata set. The set of
// implementations is closed: every variant lives in this package.
type Set interface {
	// Kind returns the variant of the set.
	Kind() Kind
	// Common returns the fields every set carries.
	Common() *Base
	// References returns the InstanceUIDs of the sets this one refers to,
	// in field order. Zero UIDs are omitted.
	References() []uuid.UUID

	decodeItem(ul klv.UL, v []byte) (bool, error)
}

// PackageReferrer is implemented by sets that refer to a package by its
// UMID rather than by InstanceUID.
type PackageReferrer interface {
	Set
	PackageReference() klv.UMID
}

// Base holds the fields common to every set.
type Base struct {
	Packet        klv.Header `json:"-" yaml:"-"`
	InstanceUID   uuid.UUID  `json:"instance_uid" yaml:"instance_uid"`
	GenerationUID uuid.UUID  `json:"generation_uid,omitempty" yaml:"generation_uid,omitempty"`
}

// Common returns b.
func (b *Base) Common() *Base { return b }

// References returns nil; sets with reference fields override it.
func (b *Base) References() []uuid.UUID { return nil }

func (b *Base) decodeItem(ul klv.UL, v []byte) (bool, error) {
	var err error
	switch ul {
	case propInstanceUID:
		b.InstanceUID, err = klv.UUIDFromBytes(v)
	case propGenerationUID:
		b.GenerationUID, err = klv.UUIDFromBytes(v)
	default:
		return false, nil
	}
	return true, err
}

// TagResolver maps local tags to property labels. A primer pack is one.
type TagResolver interface {
	Lookup(tag uint16) (klv.UL, bool)
}

type registration struct {
	kind Kind
	new  func() Set
}

// registryKey clears the bytes that vary between encodings of one set
// kind: the item coding (byte 5) and the version (byte 7).
func registryKey(key klv.UL) klv.UL {
	key[5] = 0
	key[klv.VersionByte] = 0
	return key
}

var registry = map[klv.UL]registration{
	registryKey(PrefaceKey):                           {KindPreface, func() Set { return new(Preface) }},
	registryKey(IdentificationKey):                    {KindIdentification, func() Set { return new(Identification) }},
	registryKey(ContentStorageKey):                    {KindContentStorage, func() Set { return new(ContentStorage) }},
	registryKey(EssenceContainerDataKey):              {KindEssenceContainerData, func() Set { return new(EssenceContainerData) }},
	registryKey(MaterialPackageKey):                   {KindMaterialPackage, func() Set { return new(MaterialPackage) }},
	registryKey(SourcePackageKey):                     {KindSourcePackage, func() Set { return new(SourcePackage) }},
	registryKey(TimelineTrackKey):                     {KindTimelineTrack, func() Set { return new(TimelineTrack) }},
	registryKey(SequenceKey):                          {KindSequence, func() Set { return new(Sequence) }},
	registryKey(SourceClipKey):                        {KindSourceClip, func() Set { return new(SourceClip) }},
	registryKey(FillerKey):                            {KindFiller, func() Set { return new(Filler) }},
	registryKey(CDCIPictureEssenceDescriptorKey):      {KindCDCIPictureEssenceDescriptor, func() Set { return new(CDCIPictureEssenceDescriptor) }},
	registryKey(RGBAPictureEssenceDescriptorKey):      {KindRGBAPictureEssenceDescriptor, func() Set { return new(RGBAPictureEssenceDescriptor) }},
	registryKey(WaveAudioEssenceDescriptorKey):        {KindWaveAudioEssenceDescriptor, func() Set { return new(WaveAudioEssenceDescriptor) }},
	registryKey(GenericSoundEssenceDescriptorKey):     {KindGenericSoundEssenceDescriptor, func() Set { return new(GenericSoundEssenceDescriptor) }},
	registryKey(GenericDataEssenceDescriptorKey):      {KindGenericDataEssenceDescriptor, func() Set { return new(GenericDataEssenceDescriptor) }},
	registryKey(AudioChannelLabelSubDescriptorKey):    {KindAudioChannelLabelSubDescriptor, func() Set { return new(AudioChannelLabelSubDescriptor) }},
	registryKey(SoundfieldGroupLabelSubDescriptorKey): {KindSoundfieldGroupLabelSubDescriptor, func() Set { return new(SoundfieldGroupLabelSubDescriptor) }},
	registryKey(GroupOfSoundfieldGroupsLabelKey):      {KindGroupOfSoundfieldGroupsLabelSubDescriptor, func() Set { return new(GroupOfSoundfieldGroupsLabelSubDescriptor) }},
	registryKey(JPEG2000PictureSubDescriptorKey):      {KindJPEG2000PictureSubDescriptor, func() Set { return new(JPEG2000PictureSubDescriptor) }},
	registryKey(PHDRMetadataTrackSubDescriptorKey):    {KindPHDRMetadataTrackSubDescriptor, func() Set { return new(PHDRMetadataTrackSubDescriptor) }},
}

// Lookup returns the kind registered for a packet key.
func Lookup(key klv.UL) (Kind, bool) {
	r, ok := registry[registryKey(key)]
	return r.kind, ok
}

// Decode builds the raw set for one packet. It returns a nil set and a nil
// error when the key is not registered or the set has to be dropped after
// its problems were reported to sink.
//
// Items whose tag the resolver does not know are reported as warnings and
// skipped, as are items whose label no field of the set claims. A field
// value of the wrong size is reported as NonFatal and leaves that field
// unset. Without a sink, NonFatal problems are returned as errors.
func Decode(h klv.Header, value []byte, tags TagResolver, sink mxf.ErrorSink) (Set, error) {
	reg, ok := registry[registryKey(h.Key)]
	if !ok {
		return nil, nil
	}
	coding, ok := klv.LocalSetCoding(h.Key)
	if !ok {
		return nil, Error.Wrap(report.Route(sink, mxf.CodeMalformedKLV, mxf.SeverityWarning,
			"%s at offset %d uses unsupported item coding 0x%02x", reg.kind, h.Offset, h.Key[5]))
	}
	items, err := klv.Items(value, coding)
	if err != nil {
		return nil, Error.Wrap(report.Route(sink, mxf.CodeMalformedKLV, mxf.SeverityNonFatal,
			"%s at offset %d: %v", reg.kind, h.Offset, err))
	}

	set := reg.new()
	set.Common().Packet = h
	for _, item := range items {
		ul, ok := lookupTag(tags, item.Tag)
		if !ok {
			if err := report.Route(sink, mxf.CodeUnknownLocalTag, mxf.SeverityWarning,
				"%s at offset %d: local tag 0x%04x is not in the primer pack", reg.kind, h.Offset, item.Tag); err != nil {
				return nil, Error.Wrap(err)
			}
			continue
		}
		if _, err := set.decodeItem(ul.Normalized(), item.Value); err != nil {
			if err := report.Route(sink, mxf.CodeUnexpectedFieldSize, mxf.SeverityNonFatal,
				"%s at offset %d: tag 0x%04x (%s): %v", reg.kind, h.Offset, item.Tag, ul, err); err != nil {
				return nil, Error.Wrap(err)
			}
		}
	}

	if set.Common().InstanceUID == uuid.Nil {
		return nil, Error.Wrap(report.Route(sink, mxf.CodeUnexpectedFieldSize, mxf.SeverityNonFatal,
			"%s at offset %d has no InstanceUID", reg.kind, h.Offset))
	}
	return set, nil
}

func lookupTag(tags TagResolver, tag uint32) (klv.UL, bool) {
	if tags == nil || tag > 0xffff {
		return klv.UL{}, false
	}
	return tags.Lookup(uint16(tag))
}

// nonZero drops nil UIDs from refs.
func nonZero(refs ...uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(refs))
	for _, r := range refs {
		if r != uuid.Nil {
			out = append(out, r)
		}
	}
	return out
}
