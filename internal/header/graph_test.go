package header

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/mxfmeta/internal/metadata"
)

func testNodes(names ...string) map[string]*node {
	nodes := make(map[string]*node, len(names))
	for _, name := range names {
		seq := &metadata.Sequence{}
		seq.InstanceUID = uuid.NewSHA1(uuid.NameSpaceOID, []byte(name))
		nodes[name] = &node{set: seq}
	}
	return nodes
}

func link(nodes map[string]*node, from string, to ...string) {
	for _, name := range to {
		nodes[from].deps = append(nodes[from].deps, nodes[name])
	}
}

func names(nodes map[string]*node, list []*node) []string {
	byNode := make(map[*node]string, len(nodes))
	for name, n := range nodes {
		byNode[n] = name
	}
	out := make([]string, len(list))
	for i, n := range list {
		out[i] = byNode[n]
	}
	return out
}

func TestTopoSort_DependenciesFirst(t *testing.T) {
	nodes := testNodes("preface", "storage", "package", "track", "sequence")
	link(nodes, "preface", "storage", "package")
	link(nodes, "storage", "package")
	link(nodes, "package", "track")
	link(nodes, "track", "sequence")

	roots := []*node{nodes["preface"], nodes["storage"], nodes["package"], nodes["track"], nodes["sequence"]}
	order, cycle := topoSort(roots)
	require.Nil(t, cycle)
	assert.Equal(t, []string{"sequence", "track", "package", "storage", "preface"}, names(nodes, order))
}

func TestTopoSort_RootsInGivenOrder(t *testing.T) {
	nodes := testNodes("a", "b", "c")
	order, cycle := topoSort([]*node{nodes["b"], nodes["c"], nodes["a"]})
	require.Nil(t, cycle)
	assert.Equal(t, []string{"b", "c", "a"}, names(nodes, order))
}

func TestTopoSort_SharedDependencyVisitedOnce(t *testing.T) {
	nodes := testNodes("a", "b", "shared")
	link(nodes, "a", "shared")
	link(nodes, "b", "shared")

	order, cycle := topoSort([]*node{nodes["a"], nodes["b"], nodes["shared"]})
	require.Nil(t, cycle)
	assert.Equal(t, []string{"shared", "a", "b"}, names(nodes, order))
}

func TestTopoSort_Cycle(t *testing.T) {
	nodes := testNodes("root", "a", "b", "c")
	link(nodes, "root", "a")
	link(nodes, "a", "b")
	link(nodes, "b", "c")
	link(nodes, "c", "a")

	order, cycle := topoSort([]*node{nodes["root"], nodes["a"], nodes["b"], nodes["c"]})
	assert.Nil(t, order)
	assert.Equal(t, []string{"a", "b", "c", "a"}, names(nodes, cycle))
	assert.Contains(t, describePath(cycle), "Sequence")
}

func TestTopoSort_DeepChain(t *testing.T) {
	const depth = 100000
	list := make([]*node, depth)
	for i := range list {
		list[i] = &node{set: &metadata.Sequence{}}
		if i > 0 {
			list[i-1].deps = []*node{list[i]}
		}
	}
	order, cycle := topoSort(list)
	require.Nil(t, cycle)
	require.Len(t, order, depth)
	assert.Same(t, list[depth-1], order[0])
	assert.Same(t, list[0], order[depth-1])
}
