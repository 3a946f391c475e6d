package routing

import (
	"fmt"
	"math"

	"github.com/maplab/go-pathfind/graph"
	. "github.com/maplab/go-pathfind/util"
)

//*******************************************
// floyd-warshall
//*******************************************

// _UNREACHED is the all-pairs "no path" sentinel. Half of MaxInt64 so a
// relaxation sum cannot overflow.
const _UNREACHED = int64(math.MaxInt64 / 2)

// AllPairs holds the Floyd-Warshall distance matrix and next-hop table
// over the graph's sorted id universe.
type AllPairs struct {
	ids   []int64
	index Dict[int64, int]
	dist  [][]int64
	next  [][]int
}

// CalcFloydWarshall computes all-pairs shortest paths by dynamic
// programming over intermediate nodes. Cost is O(V³) in node count: it
// is meant as a verification oracle for the single-pair algorithms, not
// for interactive queries on large graphs.
func CalcFloydWarshall(g *graph.Graph) *AllPairs {
	ids := g.NodeIDs()
	n := len(ids)

	index := NewDict[int64, int](n)
	for i, id := range ids {
		index.Set(id, i)
	}

	dist := make([][]int64, n)
	next := make([][]int, n)
	for i := 0; i < n; i++ {
		dist[i] = make([]int64, n)
		next[i] = make([]int, n)
		for j := 0; j < n; j++ {
			dist[i][j] = _UNREACHED
			next[i][j] = -1
		}
	}
	for i, id := range ids {
		g.ForNeighbors(id, func(neighbor, length int64) {
			j := index.Get(neighbor)
			dist[i][j] = length
			next[i][j] = j
		})
		// the diagonal is zero, also for nodes with self-loops
		dist[i][i] = 0
		next[i][i] = i
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if dist[i][k] == _UNREACHED {
				continue
			}
			for j := 0; j < n; j++ {
				if dist[k][j] == _UNREACHED {
					continue
				}
				if dist[i][k]+dist[k][j] < dist[i][j] {
					dist[i][j] = dist[i][k] + dist[k][j]
					next[i][j] = next[i][k]
				}
			}
		}
	}

	return &AllPairs{
		ids:   ids,
		index: index,
		dist:  dist,
		next:  next,
	}
}

// IDs returns the matrix row/column ordering.
func (self *AllPairs) IDs() []int64 {
	return self.ids
}

// Distance returns the shortest-path length origin -> destination.
func (self *AllPairs) Distance(origin, destination int64) (int64, bool) {
	i, ok := self.index[origin]
	if !ok {
		return 0, false
	}
	j, ok := self.index[destination]
	if !ok {
		return 0, false
	}
	if self.dist[i][j] == _UNREACHED {
		return 0, false
	}
	return self.dist[i][j], true
}

// GetPath reconstructs the node sequence origin -> destination from the
// next-hop table.
func (self *AllPairs) GetPath(origin, destination int64) ([]int64, bool) {
	i, ok := self.index[origin]
	if !ok {
		return nil, false
	}
	j, ok := self.index[destination]
	if !ok {
		return nil, false
	}
	if self.next[i][j] == -1 {
		return nil, false
	}
	nodes := []int64{origin}
	for i != j {
		i = self.next[i][j]
		nodes = append(nodes, self.ids[i])
	}
	return nodes, true
}

func _CalcFloydWarshallPath(g *graph.Graph, origin, target int64) ([]int64, error) {
	pairs := CalcFloydWarshall(g)
	for i := range pairs.ids {
		if pairs.dist[i][i] < 0 {
			return nil, fmt.Errorf("%w: node %v", ErrNegativeCycle, pairs.ids[i])
		}
	}
	nodes, ok := pairs.GetPath(origin, target)
	if !ok {
		return nil, fmt.Errorf("%w: %v -> %v", ErrNoPath, origin, target)
	}
	return nodes, nil
}
