package metadata

import "github.com/vvka-141/mxfmeta/internal/klv"

// setKey builds a structural metadata set key from the byte that
// distinguishes the set within the 0d.01.01.01.01.01 group.
func setKey(b byte) klv.UL {
	k := klv.MustParseUL("06.0e.2b.34.02.53.01.01.0d.01.01.01.01.01.00.00")
	k[14] = b
	return k
}

// Set keys.
var (
	PrefaceKey                           = setKey(0x2f)
	IdentificationKey                    = setKey(0x30)
	ContentStorageKey                    = setKey(0x18)
	EssenceContainerDataKey              = setKey(0x23)
	MaterialPackageKey                   = setKey(0x36)
	SourcePackageKey                     = setKey(0x37)
	TimelineTrackKey                     = setKey(0x3b)
	SequenceKey                          = setKey(0x0f)
	SourceClipKey                        = setKey(0x11)
	FillerKey                            = setKey(0x09)
	CDCIPictureEssenceDescriptorKey      = setKey(0x28)
	RGBAPictureEssenceDescriptorKey      = setKey(0x29)
	GenericSoundEssenceDescriptorKey     = setKey(0x42)
	GenericDataEssenceDescriptorKey      = setKey(0x43)
	WaveAudioEssenceDescriptorKey        = setKey(0x48)
	JPEG2000PictureSubDescriptorKey      = setKey(0x5a)
	AudioChannelLabelSubDescriptorKey    = setKey(0x6b)
	SoundfieldGroupLabelSubDescriptorKey = setKey(0x6c)
	GroupOfSoundfieldGroupsLabelKey      = setKey(0x6d)

	// PHDRMetadataTrackSubDescriptorKey lives in the Dolby private label space.
	PHDRMetadataTrackSubDescriptorKey = klv.MustParseUL("06.0e.2b.34.02.53.01.05.0e.09.06.07.01.01.01.03")
)

func prop(s string) klv.UL {
	return klv.MustParseUL(s).Normalized()
}

// Property labels, normalized. The comment after each gives the static
// local tag assigned by ST 377-1 where there is one.
var (
	propInstanceUID   = prop("06.0e.2b.34.01.01.01.01.01.01.15.02.00.00.00.00") // 3c0a
	propGenerationUID = prop("06.0e.2b.34.01.01.01.02.05.20.07.01.08.00.00.00") // 0102

	propLastModifiedDate   = prop("06.0e.2b.34.01.01.01.02.07.02.01.10.02.04.00.00") // 3b02
	propVersion            = prop("06.0e.2b.34.01.01.01.02.03.01.02.01.05.00.00.00") // 3b05
	propObjectModelVersion = prop("06.0e.2b.34.01.01.01.02.03.01.02.01.04.00.00.00") // 3b07
	propPrimaryPackage     = prop("06.0e.2b.34.01.01.01.04.06.01.01.04.01.08.00.00") // 3b08
	propIdentifications    = prop("06.0e.2b.34.01.01.01.02.06.01.01.04.06.04.00.00") // 3b06
	propContentStorage     = prop("06.0e.2b.34.01.01.01.02.06.01.01.04.02.01.00.00") // 3b03
	propOperationalPattern = prop("06.0e.2b.34.01.01.01.05.01.02.02.03.00.00.00.00") // 3b09
	propEssenceContainers  = prop("06.0e.2b.34.01.01.01.05.01.02.02.10.02.01.00.00") // 3b0a
	propDMSchemes          = prop("06.0e.2b.34.01.01.01.05.01.02.02.10.02.02.00.00") // 3b0b

	propCompanyName       = prop("06.0e.2b.34.01.01.01.02.05.20.07.01.02.01.00.00") // 3c01
	propProductName       = prop("06.0e.2b.34.01.01.01.02.05.20.07.01.03.01.00.00") // 3c02
	propVersionString     = prop("06.0e.2b.34.01.01.01.02.05.20.07.01.05.01.00.00") // 3c04
	propProductUID        = prop("06.0e.2b.34.01.01.01.02.05.20.07.01.07.00.00.00") // 3c05
	propModificationDate  = prop("06.0e.2b.34.01.01.01.02.07.02.01.10.02.03.00.00") // 3c06
	propPlatform          = prop("06.0e.2b.34.01.01.01.02.05.20.07.01.06.01.00.00") // 3c08
	propThisGenerationUID = prop("06.0e.2b.34.01.01.01.02.05.20.07.01.01.00.00.00") // 3c09

	propPackages             = prop("06.0e.2b.34.01.01.01.02.06.01.01.04.05.01.00.00") // 1901
	propEssenceContainerData = prop("06.0e.2b.34.01.01.01.02.06.01.01.04.05.02.00.00") // 1902

	propLinkedPackageUID = prop("06.0e.2b.34.01.01.01.02.06.01.01.06.01.00.00.00") // 2701
	propIndexSID         = prop("06.0e.2b.34.01.01.01.04.01.03.04.05.00.00.00.00") // 3f06
	propBodySID          = prop("06.0e.2b.34.01.01.01.04.01.03.04.04.00.00.00.00") // 3f07

	propPackageUID   = prop("06.0e.2b.34.01.01.01.01.01.01.15.10.00.00.00.00") // 4401
	propPackageName  = prop("06.0e.2b.34.01.01.01.01.01.03.03.02.01.00.00.00") // 4402
	propCreationDate = prop("06.0e.2b.34.01.01.01.02.07.02.01.10.01.03.00.00") // 4405
	propModifiedDate = prop("06.0e.2b.34.01.01.01.02.07.02.01.10.02.05.00.00") // 4404
	propTracks       = prop("06.0e.2b.34.01.01.01.02.06.01.01.04.06.05.00.00") // 4403
	propDescriptor   = prop("06.0e.2b.34.01.01.01.02.06.01.01.04.02.03.00.00") // 4701

	propTrackID     = prop("06.0e.2b.34.01.01.01.02.01.07.01.01.00.00.00.00") // 4801
	propTrackNumber = prop("06.0e.2b.34.01.01.01.02.01.04.01.03.00.00.00.00") // 4804
	propTrackName   = prop("06.0e.2b.34.01.01.01.02.01.07.01.02.01.00.00.00") // 4802
	propSequence    = prop("06.0e.2b.34.01.01.01.02.06.01.01.04.02.04.00.00") // 4803
	propEditRate    = prop("06.0e.2b.34.01.01.01.02.05.30.04.05.00.00.00.00") // 4b01
	propOrigin      = prop("06.0e.2b.34.01.01.01.02.07.02.01.03.01.03.00.00") // 4b02

	propDataDefinition       = prop("06.0e.2b.34.01.01.01.02.04.07.01.00.00.00.00.00") // 0201
	propDuration             = prop("06.0e.2b.34.01.01.01.02.07.02.02.01.01.00.00.00") // 0202
	propStructuralComponents = prop("06.0e.2b.34.01.01.01.02.06.01.01.04.06.09.00.00") // 1001
	propStartPosition        = prop("06.0e.2b.34.01.01.01.02.07.02.01.03.01.04.00.00") // 1201
	propSourcePackageID      = prop("06.0e.2b.34.01.01.01.02.06.01.01.03.01.00.00.00") // 1101
	propSourceTrackID        = prop("06.0e.2b.34.01.01.01.02.06.01.01.03.02.00.00.00") // 1102

	propSubDescriptors    = prop("06.0e.2b.34.01.01.01.09.06.01.01.04.06.10.00.00")
	propLinkedTrackID     = prop("06.0e.2b.34.01.01.01.05.06.01.01.03.05.00.00.00") // 3006
	propSampleRate        = prop("06.0e.2b.34.01.01.01.01.04.06.01.01.00.00.00.00") // 3001
	propContainerDuration = prop("06.0e.2b.34.01.01.01.01.04.06.01.02.00.00.00.00") // 3002
	propEssenceContainer  = prop("06.0e.2b.34.01.01.01.02.06.01.01.04.01.02.00.00") // 3004

	propFrameLayout           = prop("06.0e.2b.34.01.01.01.01.04.01.03.01.04.00.00.00") // 320c
	propStoredWidth           = prop("06.0e.2b.34.01.01.01.01.04.01.05.02.02.00.00.00") // 3203
	propStoredHeight          = prop("06.0e.2b.34.01.01.01.01.04.01.05.02.01.00.00.00") // 3202
	propAspectRatio           = prop("06.0e.2b.34.01.01.01.01.04.01.01.01.01.00.00.00") // 320e
	propPictureEssenceCoding  = prop("06.0e.2b.34.01.01.01.02.04.01.06.01.00.00.00.00") // 3201
	propComponentDepth        = prop("06.0e.2b.34.01.01.01.02.04.01.05.03.0a.00.00.00") // 3301
	propHorizontalSubsampling = prop("06.0e.2b.34.01.01.01.01.04.01.05.01.05.00.00.00") // 3302
	propVerticalSubsampling   = prop("06.0e.2b.34.01.01.01.02.04.01.05.01.10.00.00.00") // 3308
	propComponentMaxRef       = prop("06.0e.2b.34.01.01.01.05.04.01.05.03.0b.00.00.00") // 3406
	propComponentMinRef       = prop("06.0e.2b.34.01.01.01.05.04.01.05.03.0c.00.00.00") // 3407

	propAudioSamplingRate  = prop("06.0e.2b.34.01.01.01.05.04.02.03.01.01.01.00.00") // 3d03
	propChannelCount       = prop("06.0e.2b.34.01.01.01.05.04.02.01.01.04.00.00.00") // 3d07
	propQuantizationBits   = prop("06.0e.2b.34.01.01.01.04.04.02.03.03.04.00.00.00") // 3d01
	propSoundEssenceCoding = prop("06.0e.2b.34.01.01.01.02.04.02.04.02.00.00.00.00") // 3d06
	propBlockAlign         = prop("06.0e.2b.34.01.01.01.05.04.02.03.02.01.00.00.00") // 3d0a
	propAvgBps             = prop("06.0e.2b.34.01.01.01.05.04.02.03.03.05.00.00.00") // 3d09
	propChannelAssignment  = prop("06.0e.2b.34.01.01.01.07.04.02.01.01.05.00.00.00") // 3d32

	propDataEssenceCoding = prop("06.0e.2b.34.01.01.01.03.04.03.03.02.00.00.00.00") // 3e01

	propMCALabelDictionaryID          = prop("06.0e.2b.34.01.01.01.0e.01.03.07.01.01.00.00.00")
	propMCATagSymbol                  = prop("06.0e.2b.34.01.01.01.0e.01.03.07.01.02.00.00.00")
	propMCATagName                    = prop("06.0e.2b.34.01.01.01.0e.01.03.07.01.03.00.00.00")
	propGroupOfSoundfieldGroupsLinkID = prop("06.0e.2b.34.01.01.01.0e.01.03.07.01.04.00.00.00")
	propMCALinkID                     = prop("06.0e.2b.34.01.01.01.0e.01.03.07.01.05.00.00.00")
	propSoundfieldGroupLinkID         = prop("06.0e.2b.34.01.01.01.0e.01.03.07.01.06.00.00.00")
	propMCAChannelID                  = prop("06.0e.2b.34.01.01.01.0e.01.03.04.0a.00.00.00.00")
	propRFC5646SpokenLanguage         = prop("06.0e.2b.34.01.01.01.0d.03.01.01.02.03.15.00.00")

	propRsiz = prop("06.0e.2b.34.01.01.01.0a.04.01.06.03.01.00.00.00")
	propXsiz = prop("06.0e.2b.34.01.01.01.0a.04.01.06.03.02.00.00.00")
	propYsiz = prop("06.0e.2b.34.01.01.01.0a.04.01.06.03.03.00.00.00")
	propCsiz = prop("06.0e.2b.34.01.01.01.0a.04.01.06.03.0a.00.00.00")

	propPHDRSourceTrackID    = prop("06.0e.2b.34.01.01.01.05.0e.09.06.07.01.01.01.04")
	propPHDRSimplePayloadSID = prop("06.0e.2b.34.01.01.01.05.0e.09.06.07.01.01.01.05")
)

// Label returns the normalized property label for a well-known field name,
// as used by Primer builders in tests and tooling.
func Label(name string) (klv.UL, bool) {
	ul, ok := labelsByName[name]
	return ul, ok
}

var labelsByName = map[string]klv.UL{
	"InstanceUID":                   propInstanceUID,
	"GenerationUID":                 propGenerationUID,
	"LastModifiedDate":              propLastModifiedDate,
	"Version":                       propVersion,
	"ObjectModelVersion":            propObjectModelVersion,
	"PrimaryPackage":                propPrimaryPackage,
	"Identifications":               propIdentifications,
	"ContentStorage":                propContentStorage,
	"OperationalPattern":            propOperationalPattern,
	"EssenceContainers":             propEssenceContainers,
	"DMSchemes":                     propDMSchemes,
	"CompanyName":                   propCompanyName,
	"ProductName":                   propProductName,
	"VersionString":                 propVersionString,
	"ProductUID":                    propProductUID,
	"ModificationDate":              propModificationDate,
	"Platform":                      propPlatform,
	"ThisGenerationUID":             propThisGenerationUID,
	"Packages":                      propPackages,
	"EssenceContainerData":          propEssenceContainerData,
	"LinkedPackageUID":              propLinkedPackageUID,
	"IndexSID":                      propIndexSID,
	"BodySID":                       propBodySID,
	"PackageUID":                    propPackageUID,
	"PackageName":                   propPackageName,
	"PackageCreationDate":           propCreationDate,
	"PackageModifiedDate":           propModifiedDate,
	"Tracks":                        propTracks,
	"Descriptor":                    propDescriptor,
	"TrackID":                       propTrackID,
	"TrackNumber":                   propTrackNumber,
	"TrackName":                     propTrackName,
	"Sequence":                      propSequence,
	"EditRate":                      propEditRate,
	"Origin":                        propOrigin,
	"DataDefinition":                propDataDefinition,
	"Duration":                      propDuration,
	"StructuralComponents":          propStructuralComponents,
	"StartPosition":                 propStartPosition,
	"SourcePackageID":               propSourcePackageID,
	"SourceTrackID":                 propSourceTrackID,
	"SubDescriptors":                propSubDescriptors,
	"LinkedTrackID":                 propLinkedTrackID,
	"SampleRate":                    propSampleRate,
	"ContainerDuration":             propContainerDuration,
	"EssenceContainer":              propEssenceContainer,
	"FrameLayout":                   propFrameLayout,
	"StoredWidth":                   propStoredWidth,
	"StoredHeight":                  propStoredHeight,
	"AspectRatio":                   propAspectRatio,
	"PictureEssenceCoding":          propPictureEssenceCoding,
	"ComponentDepth":                propComponentDepth,
	"HorizontalSubsampling":         propHorizontalSubsampling,
	"VerticalSubsampling":           propVerticalSubsampling,
	"ComponentMaxRef":               propComponentMaxRef,
	"ComponentMinRef":               propComponentMinRef,
	"AudioSamplingRate":             propAudioSamplingRate,
	"ChannelCount":                  propChannelCount,
	"QuantizationBits":              propQuantizationBits,
	"SoundEssenceCoding":            propSoundEssenceCoding,
	"BlockAlign":                    propBlockAlign,
	"AvgBps":                        propAvgBps,
	"ChannelAssignment":             propChannelAssignment,
	"DataEssenceCoding":             propDataEssenceCoding,
	"MCALabelDictionaryID":          propMCALabelDictionaryID,
	"MCATagSymbol":                  propMCATagSymbol,
	"MCATagName":                    propMCATagName,
	"GroupOfSoundfieldGroupsLinkID": propGroupOfSoundfieldGroupsLinkID,
	"MCALinkID":                     propMCALinkID,
	"SoundfieldGroupLinkID":         propSoundfieldGroupLinkID,
	"MCAChannelID":                  propMCAChannelID,
	"RFC5646SpokenLanguage":         propRFC5646SpokenLanguage,
	"Rsiz":                          propRsiz,
	"Xsiz":                          propXsiz,
	"Ysiz":                          propYsiz,
	"Csiz":                          propCsiz,
	"PHDRSourceTrackID":             propPHDRSourceTrackID,
	"PHDRSimplePayloadSID":          propPHDRSimplePayloadSID,
}
