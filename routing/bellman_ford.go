package routing

import (
	"fmt"

	"github.com/maplab/go-pathfind/graph"
	. "github.com/maplab/go-pathfind/util"
)

//*******************************************
// bellman-ford
//*******************************************

// CalcBellmanFord relaxes every edge for |V|-1 rounds. It is the only
// algorithm that tolerates negative edge lengths; a final detection
// round reports ErrNegativeCycle when any edge can still be relaxed.
func CalcBellmanFord(g *graph.Graph, origin, target int64) ([]int64, error) {
	ids := g.NodeIDs()
	dist := NewDict[int64, int64](len(ids))
	prev := NewDict[int64, int64](len(ids))

	dist.Set(origin, 0)
	for round := 1; round < len(ids); round++ {
		changed := false
		for _, a := range ids {
			if !dist.ContainsKey(a) {
				continue
			}
			g.ForNeighbors(a, func(b, length int64) {
				new_dist := dist.Get(a) + length
				if !dist.ContainsKey(b) || new_dist < dist.Get(b) {
					dist.Set(b, new_dist)
					prev.Set(b, a)
					changed = true
				}
			})
		}
		if !changed {
			break
		}
	}

	// detection round: anything still relaxable sits on a negative cycle
	negative := false
	for _, a := range ids {
		if !dist.ContainsKey(a) {
			continue
		}
		g.ForNeighbors(a, func(b, length int64) {
			if !dist.ContainsKey(b) || dist.Get(a)+length < dist.Get(b) {
				negative = true
			}
		})
	}
	if negative {
		return nil, fmt.Errorf("%w: reachable from %v", ErrNegativeCycle, origin)
	}

	if !dist.ContainsKey(target) {
		return nil, fmt.Errorf("%w: %v -> %v", ErrNoPath, origin, target)
	}
	return _UnwindPath(prev, origin, target), nil
}
