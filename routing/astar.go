package routing

import (
	"fmt"

	"github.com/maplab/go-pathfind/graph"
	"github.com/maplab/go-pathfind/structs"
	. "github.com/maplab/go-pathfind/util"
)

//*******************************************
// a-star
//*******************************************

// CalcAStar runs A* from origin to target. The heuristic is the
// straight-line distance to the target (euclidean for planar graphs,
// geodesic for geographic ones). Edge lengths must be non-negative.
//
// Because both edge lengths and the heuristic are rounded down to whole
// units, the heuristic can overestimate the remaining cost by the
// rounding slack of the edges ahead. The search therefore neither
// settles nodes on first pop nor stops when the target first surfaces:
// it keeps going until no queued route can still undercut the best
// distance found for the target. Candidates are pruned on their g-score
// alone, which stays sound regardless of the heuristic, so the result
// length always matches Dijkstra's.
func CalcAStar(g *graph.Graph, origin, target int64) ([]int64, error) {
	heap := NewPriorityQueue[_PQItem, int64](100)
	g_score := NewDict[int64, int64](g.NodeCount())
	prev := NewDict[int64, int64](g.NodeCount())

	g_score.Set(origin, 0)
	heap.Enqueue(_PQItem{origin, 0}, _Heuristic(g, origin, target))

	for {
		item, ok := heap.Dequeue()
		if !ok {
			break
		}
		curr := item.node
		if !g_score.ContainsKey(curr) || item.dist > g_score.Get(curr) {
			continue
		}
		if g_score.ContainsKey(target) && item.dist >= g_score.Get(target) {
			continue
		}
		if curr == target {
			continue
		}
		curr_dist := item.dist
		g.ForNeighbors(curr, func(neighbor, length int64) {
			new_dist := curr_dist + length
			if g_score.ContainsKey(target) && new_dist >= g_score.Get(target) {
				return
			}
			if !g_score.ContainsKey(neighbor) || new_dist < g_score.Get(neighbor) {
				g_score.Set(neighbor, new_dist)
				prev.Set(neighbor, curr)
				f_score := new_dist + _Heuristic(g, neighbor, target)
				heap.Enqueue(_PQItem{neighbor, new_dist}, f_score)
			}
		})
	}

	if !g_score.ContainsKey(target) {
		return nil, fmt.Errorf("%w: %v -> %v", ErrNoPath, origin, target)
	}
	return _UnwindPath(prev, origin, target), nil
}

// _Heuristic estimates the remaining cost from a node to the target.
// Nodes without a known position (ids only referenced by edges) fall
// back to zero.
func _Heuristic(g *graph.Graph, from, to int64) int64 {
	a, ok := g.GetNode(from)
	if !ok {
		return 0
	}
	b, ok := g.GetNode(to)
	if !ok {
		return 0
	}
	d, err := structs.Distance(a, b)
	if err != nil {
		return 0
	}
	return d
}
