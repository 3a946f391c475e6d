package routing

import (
	"fmt"

	"github.com/maplab/go-pathfind/graph"
	. "github.com/maplab/go-pathfind/util"
)

//*******************************************
// dijkstra
//*******************************************

// CalcDijkstra runs Dijkstra's algorithm from origin until the target is
// settled. Edge lengths must be non-negative. Stale heap entries are
// skipped instead of decreased (lazy decrease-key); ties resolve in
// insertion order, so results are reproducible.
func CalcDijkstra(g *graph.Graph, origin, target int64) ([]int64, error) {
	heap := NewPriorityQueue[_PQItem, int64](100)
	dist := NewDict[int64, int64](g.NodeCount())
	prev := NewDict[int64, int64](g.NodeCount())
	visited := NewDict[int64, bool](g.NodeCount())

	dist.Set(origin, 0)
	heap.Enqueue(_PQItem{origin, 0}, 0)

	for {
		item, ok := heap.Dequeue()
		if !ok {
			break
		}
		curr := item.node
		if visited.ContainsKey(curr) {
			continue
		}
		visited.Set(curr, true)
		if curr == target {
			break
		}
		curr_dist := dist.Get(curr)
		g.ForNeighbors(curr, func(neighbor, length int64) {
			if visited.ContainsKey(neighbor) {
				return
			}
			new_dist := curr_dist + length
			if !dist.ContainsKey(neighbor) || new_dist < dist.Get(neighbor) {
				dist.Set(neighbor, new_dist)
				prev.Set(neighbor, curr)
				heap.Enqueue(_PQItem{neighbor, new_dist}, new_dist)
			}
		})
	}

	if !visited.ContainsKey(target) {
		return nil, fmt.Errorf("%w: %v -> %v", ErrNoPath, origin, target)
	}
	return _UnwindPath(prev, origin, target), nil
}
