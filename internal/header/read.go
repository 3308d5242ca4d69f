package header

import (
	"github.com/google/uuid"

	"github.com/vvka-141/mxfmeta/internal/klv"
	"github.com/vvka-141/mxfmeta/internal/logging"
	"github.com/vvka-141/mxfmeta/internal/metadata"
	"github.com/vvka-141/mxfmeta/internal/model"
	"github.com/vvka-141/mxfmeta/internal/partition"
	"github.com/vvka-141/mxfmeta/pkg/mxf"
)

// Options configures Read.
type Options struct {
	// Sink receives every violation found. When nil, the first NonFatal or
	// Fatal violation stops parsing and is returned.
	Sink mxf.ErrorSink

	// Logger receives progress messages. Defaults to a NullLogger.
	Logger mxf.Logger

	// MaxSets bounds the number of metadata sets collected.
	// Defaults to mxf.DefaultMaxSets.
	MaxSets int
}

// builder accumulates the state of one Read call. It is discarded once the
// HeaderPartition is built.
type builder struct {
	src   mxf.ByteSource
	opts  Options
	log   mxf.Logger
	track *tracker

	pack   *partition.Pack
	primer *partition.Primer
	end    int64

	sets    []metadata.Set
	byUID   map[uuid.UUID]metadata.Set
	byKind  map[metadata.Kind][]metadata.Set
	byUMID  map[klv.UMID]uuid.UUID
	skipped int
}

// Read parses the header partition at the start of src.
//
// With a sink, problems are reported and parsing continues where the
// result stays meaningful; if any Fatal problem was reported, Read returns
// a nil HeaderPartition and an error combining all of them. A cycle in the
// strong references, a missing primer pack or a damaged packet stop
// parsing at once.
func Read(src mxf.ByteSource, opts Options) (*HeaderPartition, error) {
	if opts.Logger == nil {
		opts.Logger = logging.NewNullLogger()
	}
	if opts.MaxSets <= 0 {
		opts.MaxSets = mxf.DefaultMaxSets
	}
	b := &builder{
		src:    src,
		opts:   opts,
		log:    opts.Logger,
		track:  &tracker{sink: opts.Sink},
		byUID:  make(map[uuid.UUID]metadata.Set),
		byKind: make(map[metadata.Kind][]metadata.Set),
		byUMID: make(map[klv.UMID]uuid.UUID),
	}
	return b.build()
}

func (b *builder) build() (*HeaderPartition, error) {
	if err := b.readPartitionPack(); err != nil {
		return nil, err
	}
	if err := b.readPrimer(); err != nil {
		return nil, err
	}
	if err := b.collect(); err != nil {
		return nil, err
	}
	if err := b.checkPreface(); err != nil {
		return nil, err
	}

	nodes, err := b.graph()
	if err != nil {
		return nil, err
	}
	order, cycle := topoSort(nodes)
	if cycle != nil {
		return nil, b.track.abort(mxf.CodeCycleDetected, "strong references form a cycle: %s", describePath(cycle))
	}
	b.log.Verbose("resolved %d sets in dependency order", len(order))

	objects, err := b.link(order)
	if err != nil {
		return nil, err
	}
	if err := b.track.err(); err != nil {
		return nil, err
	}
	return b.freeze(objects), nil
}

func (b *builder) readPartitionPack() error {
	pack, err := partition.ReadPack(b.src, mxf.HeaderPartitionOffset, b.track.target())
	if err != nil {
		return b.track.abortWith(0, err)
	}
	if pack.Kind != partition.KindHeader {
		return b.track.abort(mxf.CodeInvalidPartitionKey,
			"partition at offset %d is a %s partition, not a header partition", pack.Offset, pack.Kind)
	}
	if pack.ThisPartition != mxf.HeaderPartitionOffset {
		return b.track.abort(mxf.CodeWrongHeaderOffset,
			"header partition records its own offset as %d", pack.ThisPartition)
	}
	if pack.PreviousPartition != 0 {
		if err := b.track.route(mxf.CodeInvalidPartitionField, mxf.SeverityNonFatal,
			"header partition has previous partition %d", pack.PreviousPartition); err != nil {
			return err
		}
	}
	if pack.HeaderByteCount <= 0 {
		return b.track.abort(mxf.CodeMissingPrimerPack, "header partition carries no header metadata")
	}
	b.pack = pack
	b.log.Verbose("%s partition (%s), version %d.%d, header byte count %d, operational pattern %s",
		pack.Kind, pack.Status, pack.MajorVersion, pack.MinorVersion, pack.HeaderByteCount, pack.OperationalPattern)
	return nil
}

// readPrimer skips fill after the partition pack and decodes the primer
// pack. The header byte count is measured from the primer pack key.
func (b *builder) readPrimer() error {
	pos := b.pack.End()
	for {
		h, err := klv.ReadHeader(b.src, pos)
		if err != nil {
			return b.track.abort(codeFor(err), "reading packet after partition pack: %v", err)
		}
		if h.IsFill() {
			pos = h.End()
			continue
		}
		if !partition.IsPrimerKey(h.Key) {
			return b.track.abort(mxf.CodeMissingPrimerPack,
				"expected primer pack at offset %d, found key %s", pos, h.Key)
		}
		break
	}

	primer, err := partition.ReadPrimer(b.src, pos, b.track.target())
	if err != nil {
		return b.track.abortWith(0, err)
	}
	b.primer = primer
	b.end = pos + b.pack.HeaderByteCount
	if size := b.src.Size(); b.end > size {
		if err := b.track.route(mxf.CodeMalformedKLV, mxf.SeverityNonFatal,
			"header metadata ends at %d, past the end of the file at %d", b.end, size); err != nil {
			return err
		}
		b.end = size
	}
	b.log.Verbose("primer pack at offset %d maps %d local tags", pos, primer.Len())
	return nil
}

// collect decodes every registered set between the primer pack and the
// end of the header metadata.
func (b *builder) collect() error {
	for pos := b.primer.End(); pos < b.end; {
		h, err := klv.ReadHeader(b.src, pos)
		if err != nil {
			return b.track.abort(codeFor(err), "reading header metadata at offset %d: %v", pos, err)
		}
		if h.End() > b.end {
			return b.track.abort(mxf.CodeMalformedKLV,
				"packet at offset %d ends at %d, past the end of the header metadata at %d", pos, h.End(), b.end)
		}
		pos = h.End()

		if h.IsFill() {
			continue
		}
		if _, ok := metadata.Lookup(h.Key); !ok {
			b.skipped++
			continue
		}
		value, err := klv.ReadValue(b.src, h)
		if err != nil {
			return b.track.abort(codeFor(err), "reading set at offset %d: %v", h.Offset, err)
		}
		mark := b.track.mark()
		set, err := metadata.Decode(h, value, b.primer, b.track.target())
		if err != nil {
			return b.track.abortWith(mark, err)
		}
		if set == nil {
			continue
		}
		if err := b.add(set); err != nil {
			return err
		}
	}

	b.log.Verbose("collected %d metadata sets, skipped %d unregistered packets", len(b.sets), b.skipped)
	for _, kind := range metadata.Kinds() {
		if n := len(b.byKind[kind]); n > 0 {
			b.log.Verbose("  %s: %d", kind, n)
		}
	}
	return nil
}

func (b *builder) add(set metadata.Set) error {
	common := set.Common()
	if len(b.sets) >= b.opts.MaxSets {
		return b.track.abort(mxf.CodeMalformedKLV,
			"header metadata holds more than %d sets", b.opts.MaxSets)
	}
	if prev, dup := b.byUID[common.InstanceUID]; dup {
		return b.track.route(mxf.CodeDuplicateInstanceUID, mxf.SeverityNonFatal,
			"%s at offset %d reuses InstanceUID %s of the %s at offset %d; keeping the first",
			set.Kind(), common.Packet.Offset, common.InstanceUID, prev.Kind(), prev.Common().Packet.Offset)
	}

	b.sets = append(b.sets, set)
	b.byUID[common.InstanceUID] = set
	b.byKind[set.Kind()] = append(b.byKind[set.Kind()], set)

	if pkg, ok := set.(metadata.Package); ok {
		umid := pkg.Generic().PackageUID
		if umid.IsZero() {
			return nil
		}
		if other, dup := b.byUMID[umid]; dup {
			return b.track.route(mxf.CodeDuplicateInstanceUID, mxf.SeverityNonFatal,
				"%s %s reuses package UID %s of package %s", set.Kind(), common.InstanceUID, umid, other)
		}
		b.byUMID[umid] = common.InstanceUID
	}
	return nil
}

func (b *builder) checkPreface() error {
	if n := len(b.byKind[metadata.KindPreface]); n != 1 {
		return b.track.route(mxf.CodeInvalidPrefaceCount, mxf.SeverityFatal,
			"header metadata holds %d Preface sets, expected exactly 1", n)
	}
	return nil
}

// freeze hands the collected state over to an immutable HeaderPartition.
func (b *builder) freeze(objects map[uuid.UUID]model.Object) *HeaderPartition {
	hp := &HeaderPartition{
		pack:     *b.pack,
		primer:   b.primer,
		sets:     b.sets,
		byUID:    b.byUID,
		byKind:   b.byKind,
		objects:  objects,
		packages: make(map[klv.UMID]model.GenericPackage, len(b.byUMID)),
		end:      b.end,
	}
	hp.pack.EssenceContainers = append([]klv.UL(nil), b.pack.EssenceContainers...)
	for umid, uid := range b.byUMID {
		if pkg, ok := objects[uid].(model.GenericPackage); ok {
			hp.packages[umid] = pkg
		}
	}
	if prefaces := b.byKind[metadata.KindPreface]; len(prefaces) == 1 {
		hp.preface, _ = objects[prefaces[0].Common().InstanceUID].(*model.Preface)
	}
	return hp
}
