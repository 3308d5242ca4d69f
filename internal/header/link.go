package header

import (
	"github.com/google/uuid"

	"github.com/vvka-141/mxfmeta/internal/klv"
	"github.com/vvka-141/mxfmeta/internal/metadata"
	"github.com/vvka-141/mxfmeta/internal/model"
	"github.com/vvka-141/mxfmeta/pkg/mxf"
)

// link builds the typed object for every node in dependency order. Each
// object is registered as soon as it is built so that later nodes can
// point at it.
func (b *builder) link(order []*node) (map[uuid.UUID]model.Object, error) {
	objects := make(map[uuid.UUID]model.Object, len(order))
	for _, n := range order {
		obj, err := b.construct(n.set, objects)
		if err != nil {
			return nil, err
		}
		objects[n.set.Common().InstanceUID] = obj
	}
	return objects, nil
}

func (b *builder) construct(set metadata.Set, objects map[uuid.UUID]model.Object) (model.Object, error) {
	l := linker{b: b, from: set, objects: objects}

	switch s := set.(type) {
	case *metadata.Preface:
		return &model.Preface{
			Preface:         *s,
			PrimaryPackage:  resolve[model.GenericPackage](l, s.PrimaryPackageRef),
			ContentStorage:  resolve[*model.ContentStorage](l, s.ContentStorageRef),
			Identifications: resolveAll[*model.Identification](l, s.IdentificationRefs),
		}, nil

	case *metadata.Identification:
		return &model.Identification{Identification: *s}, nil

	case *metadata.ContentStorage:
		return &model.ContentStorage{
			ContentStorage:       *s,
			Packages:             resolveAll[model.GenericPackage](l, s.PackageRefs),
			EssenceContainerData: resolveAll[*model.EssenceContainerData](l, s.EssenceContainerDataRefs),
		}, nil

	case *metadata.EssenceContainerData:
		return &model.EssenceContainerData{
			EssenceContainerData: *s,
			LinkedPackage:        l.packageByUMID(s.LinkedPackageUID),
		}, nil

	case *metadata.MaterialPackage:
		return &model.MaterialPackage{
			MaterialPackage: *s,
			Tracks:          resolveAll[*model.TimelineTrack](l, s.TrackRefs),
		}, nil

	case *metadata.SourcePackage:
		return &model.SourcePackage{
			SourcePackage: *s,
			Tracks:        resolveAll[*model.TimelineTrack](l, s.TrackRefs),
			Descriptor:    resolve[model.GenericDescriptor](l, s.DescriptorRef),
		}, nil

	case *metadata.TimelineTrack:
		return &model.TimelineTrack{
			TimelineTrack: *s,
			Sequence:      resolve[*model.Sequence](l, s.SequenceRef),
		}, nil

	case *metadata.Sequence:
		return &model.Sequence{
			Sequence:   *s,
			Components: resolveAll[model.StructuralComponent](l, s.ComponentRefs),
		}, nil

	case *metadata.SourceClip:
		return &model.SourceClip{
			SourceClip:    *s,
			SourcePackage: l.packageByUMID(s.SourcePackageID),
		}, nil

	case *metadata.Filler:
		return &model.Filler{Filler: *s}, nil

	case metadata.Descriptor:
		return b.descriptor(l, s)

	case metadata.SubDescriptor:
		if sub := model.NewSubDescriptor(s); sub != nil {
			return sub, nil
		}
	}
	return nil, Error.New("no typed form for %s %s", set.Kind(), set.Common().InstanceUID)
}

// descriptor links a descriptor to its sub-descriptors. A wave audio
// descriptor with resolved sub-descriptors must have at least one audio
// label among them. Dangling references were already reported and do not
// count.
func (b *builder) descriptor(l linker, raw metadata.Descriptor) (model.Object, error) {
	subs := resolveAll[model.SubDescriptor](l, raw.Descriptor().SubDescriptorRefs)
	b.log.Verbose("%s %s links %d of %d sub-descriptors",
		raw.Kind(), raw.Common().InstanceUID, len(subs), len(raw.Descriptor().SubDescriptorRefs))

	if raw.Kind() == metadata.KindWaveAudioEssenceDescriptor && len(subs) > 0 {
		audio := false
		for _, s := range subs {
			if s.SubDescriptorKind().IsAudioLabel() {
				audio = true
				break
			}
		}
		if !audio {
			if err := b.track.route(mxf.CodeMissingSubDescriptor, mxf.SeverityFatal,
				"%s %s links %d sub-descriptors but no audio channel label",
				raw.Kind(), raw.Common().InstanceUID, len(subs)); err != nil {
				return nil, err
			}
		}
	}

	obj := model.NewDescriptor(raw, subs)
	if obj == nil {
		return nil, Error.New("no typed form for %s %s", raw.Kind(), raw.Common().InstanceUID)
	}
	return obj, nil
}

// linker looks up already built objects on behalf of one set.
type linker struct {
	b       *builder
	from    metadata.Set
	objects map[uuid.UUID]model.Object
}

func (l linker) packageByUMID(umid klv.UMID) model.GenericPackage {
	if umid.IsZero() {
		return nil
	}
	uid, ok := l.b.byUMID[umid]
	if !ok {
		return nil
	}
	return resolve[model.GenericPackage](l, uid)
}

// resolve returns the object uid refers to when it has type T. An object
// of another type is reported as an unresolved reference.
func resolve[T model.Object](l linker, uid uuid.UUID) T {
	var zero T
	obj, ok := l.objects[uid]
	if !ok {
		return zero
	}
	t, ok := obj.(T)
	if !ok {
		l.mismatch(obj, uid)
		return zero
	}
	return t
}

// resolveAll resolves a reference batch, keeping only the references
// that resolve to a T.
func resolveAll[T model.Object](l linker, uids []uuid.UUID) []T {
	out := make([]T, 0, len(uids))
	for _, uid := range uids {
		obj, ok := l.objects[uid]
		if !ok {
			continue
		}
		t, ok := obj.(T)
		if !ok {
			l.mismatch(obj, uid)
			continue
		}
		out = append(out, t)
	}
	return out
}

func (l linker) mismatch(obj model.Object, uid uuid.UUID) {
	// Warnings never produce an error.
	_ = l.b.track.route(mxf.CodeUnresolvedStrongReference, mxf.SeverityWarning,
		"%s %s refers to %s %s, which cannot be used there",
		l.from.Kind(), l.from.Common().InstanceUID, obj.Kind(), uid)
}
