package header

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/vvka-141/mxfmeta/internal/metadata"
	"github.com/vvka-141/mxfmeta/pkg/mxf"
)

type mark uint8

const (
	unmarked mark = iota
	temporary
	permanent
)

// node is one set in the dependency graph. deps are the sets it must be
// built after, in reference order.
type node struct {
	set  metadata.Set
	deps []*node
	mark mark
}

// graph creates one node per collected set, in file order, with an edge to
// every set it references. References to sets that are not present are
// reported and dropped.
func (b *builder) graph() ([]*node, error) {
	nodes := make([]*node, len(b.sets))
	index := make(map[uuid.UUID]*node, len(b.sets))
	for i, set := range b.sets {
		nodes[i] = &node{set: set}
		index[set.Common().InstanceUID] = nodes[i]
	}

	edges := 0
	for _, n := range nodes {
		for _, ref := range b.references(n.set) {
			dep, ok := index[ref]
			if !ok {
				if err := b.track.route(mxf.CodeUnresolvedStrongReference, mxf.SeverityWarning,
					"%s %s refers to %s, which is not in the header metadata",
					n.set.Kind(), n.set.Common().InstanceUID, ref); err != nil {
					return nil, err
				}
				continue
			}
			n.deps = append(n.deps, dep)
			edges++
		}
	}
	b.log.Verbose("dependency graph has %d nodes and %d edges", len(nodes), edges)
	return nodes, nil
}

// references returns the InstanceUIDs a set depends on: its own reference
// fields, then the package it names by UMID when that package is in this
// file. A UMID naming a package elsewhere is not a dependency.
func (b *builder) references(set metadata.Set) []uuid.UUID {
	refs := set.References()
	if pr, ok := set.(metadata.PackageReferrer); ok {
		if umid := pr.PackageReference(); !umid.IsZero() {
			if uid, ok := b.byUMID[umid]; ok {
				refs = append(refs, uid)
			}
		}
	}
	return refs
}

type frame struct {
	n    *node
	next int
}

// topoSort orders nodes so that every node follows all of its
// dependencies, visiting roots in the given order. The traversal is a
// depth-first search with an explicit stack. If a dependency leads back
// to a node still on the stack, topoSort returns the nodes of that cycle
// instead, starting and ending with the same node.
func topoSort(nodes []*node) (order []*node, cycle []*node) {
	order = make([]*node, 0, len(nodes))
	var stack []frame
	for _, root := range nodes {
		if root.mark != unmarked {
			continue
		}
		root.mark = temporary
		stack = append(stack[:0], frame{n: root})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next == len(top.n.deps) {
				top.n.mark = permanent
				order = append(order, top.n)
				stack = stack[:len(stack)-1]
				continue
			}
			dep := top.n.deps[top.next]
			top.next++

			switch dep.mark {
			case temporary:
				return nil, cyclePath(stack, dep)
			case unmarked:
				dep.mark = temporary
				stack = append(stack, frame{n: dep})
			}
		}
	}
	return order, nil
}

func cyclePath(stack []frame, back *node) []*node {
	start := 0
	for i, f := range stack {
		if f.n == back {
			start = i
			break
		}
	}
	path := make([]*node, 0, len(stack)-start+1)
	for _, f := range stack[start:] {
		path = append(path, f.n)
	}
	return append(path, back)
}

func describePath(path []*node) string {
	parts := make([]string, len(path))
	for i, n := range path {
		parts[i] = fmt.Sprintf("%s %s", n.set.Kind(), n.set.Common().InstanceUID)
	}
	return strings.Join(parts, " -> ")
}
