package parser

import (
	"testing"

	"github.com/maplab/go-pathfind/structs"
	"github.com/maplab/go-pathfind/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPlanarGraphCSV(t *testing.T) {
	g, err := LoadPlanarGraphCSV("testdata/nodes.csv", "testdata/edges.csv", ';')
	require.NoError(t, err)

	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, structs.PLANAR, g.Variant())

	// empty length cell derives the euclidean distance
	d, ok := g.Distance(1, 2)
	require.True(t, ok)
	assert.Equal(t, int64(5), d)

	// an explicit 0 is kept, not rederived
	d, ok = g.Distance(2, 3)
	require.True(t, ok)
	assert.Equal(t, int64(0), d)

	// oneway edges are not mirrored
	d, ok = g.Distance(1, 3)
	require.True(t, ok)
	assert.Equal(t, int64(42), d)
	_, ok = g.Distance(3, 1)
	assert.False(t, ok)

	node, ok := g.GetNode(3)
	require.True(t, ok)
	assert.False(t, node.IsActive())
}

func TestLoadGeoGraphJSON(t *testing.T) {
	g, err := LoadGeoGraphJSON("testdata/geo_graph.json")
	require.NoError(t, err)

	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, structs.GEOGRAPHIC, g.Variant())

	// missing length derives the geodesic distance (berlin - hamburg)
	d, ok := g.Distance(1, 2)
	require.True(t, ok)
	assert.Greater(t, d, int64(200_000))
	assert.Less(t, d, int64(300_000))

	// json length 0 is explicit, not missing
	d, ok = g.Distance(1, 3)
	require.True(t, ok)
	assert.Equal(t, int64(0), d)

	d, ok = g.Distance(2, 3)
	require.True(t, ok)
	assert.Equal(t, int64(777000), d)
	_, ok = g.Distance(3, 2)
	assert.False(t, ok)
}

func TestBuildGraphUnknownNode(t *testing.T) {
	nodes := []PlanarNodeRecord{
		{ID: 1, X: 0, Y: 0, Active: true},
	}
	edges := []EdgeRecord{
		{Origin: 1, Destination: 99, Length: util.None[int64](), Oneway: false},
	}
	_, err := BuildPlanarGraph(nodes, edges)
	assert.ErrorContains(t, err, "unknown node")
}

func TestBuildGraphMixedRows(t *testing.T) {
	row := _EdgeRow{Origin: 1, Destination: 2, Length: "", Oneway: false}
	record, err := row.Record()
	require.NoError(t, err)
	assert.False(t, record.Length.HasValue())

	row.Length = "0"
	record, err = row.Record()
	require.NoError(t, err)
	require.True(t, record.Length.HasValue())
	assert.Equal(t, int64(0), record.Length.Value)

	row.Length = "12m"
	_, err = row.Record()
	assert.Error(t, err)
}
