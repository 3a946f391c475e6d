package graph

import (
	"testing"

	"github.com/maplab/go-pathfind/geo"
	"github.com/maplab/go-pathfind/structs"
	. "github.com/maplab/go-pathfind/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func _TestNodes(t *testing.T) []structs.INode {
	t.Helper()
	return []structs.INode{
		structs.NewNode(1, geo.Position{X: 0, Y: 0}, false),
		structs.NewNode(2, geo.Position{X: 3, Y: 4}, true),
		structs.NewNode(3, geo.Position{X: 3, Y: 4}, false),
	}
}

func _TestEdge(t *testing.T, origin, destination structs.INode, length Optional[int64], oneway bool) structs.Edge {
	t.Helper()
	edge, err := structs.NewEdge(origin, destination, length, oneway)
	require.NoError(t, err)
	return edge
}

func TestDistanceIndex(t *testing.T) {
	nodes := _TestNodes(t)
	edges := []structs.Edge{
		_TestEdge(t, nodes[0], nodes[1], None[int64](), false),
	}

	g, err := NewGraph(nodes, edges)
	require.NoError(t, err)

	// derived length 5, mirrored because the edge is two-way
	d, ok := g.Distance(1, 2)
	assert.True(t, ok)
	assert.Equal(t, int64(5), d)

	d, ok = g.Distance(2, 1)
	assert.True(t, ok)
	assert.Equal(t, int64(5), d)

	_, ok = g.Distance(1, 3)
	assert.False(t, ok)
}

func TestOnewayIndex(t *testing.T) {
	nodes := _TestNodes(t)
	edges := []structs.Edge{
		_TestEdge(t, nodes[0], nodes[1], Some(int64(7)), true),
	}

	g, err := NewGraph(nodes, edges)
	require.NoError(t, err)

	d, ok := g.Distance(1, 2)
	assert.True(t, ok)
	assert.Equal(t, int64(7), d)

	_, ok = g.Distance(2, 1)
	assert.False(t, ok, "oneway edges must not be mirrored")
}

func TestDuplicateEdgeOverwrites(t *testing.T) {
	nodes := _TestNodes(t)
	edges := []structs.Edge{
		_TestEdge(t, nodes[0], nodes[1], Some(int64(10)), false),
		_TestEdge(t, nodes[0], nodes[1], Some(int64(3)), false),
	}

	g, err := NewGraph(nodes, edges)
	require.NoError(t, err)

	// the later edge wins
	d, _ := g.Distance(1, 2)
	assert.Equal(t, int64(3), d)
}

func TestEdgeWithUnknownNodes(t *testing.T) {
	// edges may reference ids outside the node collection
	a := structs.NewNode(90, geo.Position{X: 0, Y: 0}, false)
	b := structs.NewNode(91, geo.Position{X: 1, Y: 1}, false)
	edges := []structs.Edge{
		_TestEdge(t, a, b, Some(int64(2)), false),
	}

	g, err := NewGraph(_TestNodes(t), edges)
	require.NoError(t, err)

	d, ok := g.Distance(90, 91)
	assert.True(t, ok)
	assert.Equal(t, int64(2), d)
	assert.Contains(t, g.NodeIDs(), int64(90))
	assert.Contains(t, g.NodeIDs(), int64(91))
}

func TestMixedVariantsRejected(t *testing.T) {
	nodes := []structs.INode{
		structs.NewNode(1, geo.Position{X: 0, Y: 0}, false),
		structs.NewGeoNode(2, geo.Geoposition{Lat: 44, Lon: 10}, false),
	}

	_, err := NewGraph(nodes, nil)
	assert.ErrorIs(t, err, structs.ErrVariantMismatch)
}

func TestRebuildAfterAddEdge(t *testing.T) {
	nodes := _TestNodes(t)
	g, err := NewGraph(nodes, nil)
	require.NoError(t, err)

	_, ok := g.Distance(1, 2)
	assert.False(t, ok)

	err = g.AddEdge(_TestEdge(t, nodes[0], nodes[1], Some(int64(9)), false))
	require.NoError(t, err)

	d, ok := g.Distance(1, 2)
	assert.True(t, ok)
	assert.Equal(t, int64(9), d)
	d, ok = g.Distance(2, 1)
	assert.True(t, ok)
	assert.Equal(t, int64(9), d)
}

func TestNeighborOrder(t *testing.T) {
	nodes := []structs.INode{
		structs.NewNode(1, geo.Position{X: 0, Y: 0}, false),
		structs.NewNode(5, geo.Position{X: 1, Y: 0}, false),
		structs.NewNode(3, geo.Position{X: 0, Y: 1}, false),
		structs.NewNode(9, geo.Position{X: 1, Y: 1}, false),
	}
	edges := []structs.Edge{
		_TestEdge(t, nodes[0], nodes[3], Some(int64(1)), false),
		_TestEdge(t, nodes[0], nodes[1], Some(int64(1)), false),
		_TestEdge(t, nodes[0], nodes[2], Some(int64(1)), false),
	}
	g, err := NewGraph(nodes, edges)
	require.NoError(t, err)

	order := []int64{}
	g.ForNeighbors(1, func(neighbor int64, length int64) {
		order = append(order, neighbor)
	})
	assert.Equal(t, []int64{3, 5, 9}, order)
}

func TestClosestNode(t *testing.T) {
	nodes := _TestNodes(t)
	g, err := NewGraph(nodes, nil)
	require.NoError(t, err)

	probe := structs.NewNode(0, geo.Position{X: 4, Y: 4}, false)
	id, ok := g.ClosestNode(probe)
	assert.True(t, ok)
	// ties resolve to the lowest id: nodes 2 and 3 share a position
	assert.Equal(t, int64(2), id)
}

func TestRandomNodes(t *testing.T) {
	g, err := NewGraph(_TestNodes(t), nil)
	require.NoError(t, err)

	sample := g.RandomNodes(2)
	assert.Len(t, sample, 2)
	assert.NotEqual(t, sample[0], sample[1])

	all := g.RandomNodes(10)
	assert.Len(t, all, 3)
}
