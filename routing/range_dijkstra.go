package routing

import (
	"github.com/maplab/go-pathfind/graph"
	. "github.com/maplab/go-pathfind/util"
)

//*******************************************
// range dijkstra
//*******************************************

type _DistFlag struct {
	dist    int64
	reached bool
}

// ReachableNodes returns every node whose shortest-path distance from
// origin is at most max_range, in ascending id order.
func ReachableNodes(g *graph.Graph, origin int64, max_range int64) []int64 {
	starts := NewArray[Tuple[int64, int64]](1)
	starts.Set(0, MakeTuple(origin, int64(0)))
	return ReachableFrom(g, starts, max_range)
}

// ReachableFrom runs one range-limited search seeded from several nodes
// at once, each with an initial distance offset. Edge lengths must be
// non-negative. Returns the reached node ids in ascending order.
func ReachableFrom(g *graph.Graph, starts Array[Tuple[int64, int64]], max_range int64) []int64 {
	ids := g.NodeIDs()
	index := NewDict[int64, int32](len(ids))
	for i, id := range ids {
		index.Set(id, int32(i))
	}

	flags := NewFlags[_DistFlag](int32(len(ids)), _DistFlag{})
	heap := NewPriorityQueue[_PQItem, int64](100)

	for _, start := range starts {
		if !index.ContainsKey(start.A) || start.B > max_range {
			continue
		}
		flag := flags.Get(index.Get(start.A))
		if !flag.reached || flag.dist > start.B {
			flag.reached = true
			flag.dist = start.B
			heap.Enqueue(_PQItem{start.A, start.B}, start.B)
		}
	}

	for {
		item, ok := heap.Dequeue()
		if !ok {
			break
		}
		curr_flag := flags.Get(index.Get(item.node))
		if curr_flag.dist < item.dist {
			continue
		}
		g.ForNeighbors(item.node, func(neighbor, length int64) {
			if !index.ContainsKey(neighbor) {
				return
			}
			new_dist := item.dist + length
			if new_dist > max_range {
				return
			}
			flag := flags.Get(index.Get(neighbor))
			if !flag.reached || flag.dist > new_dist {
				flag.reached = true
				flag.dist = new_dist
				heap.Enqueue(_PQItem{neighbor, new_dist}, new_dist)
			}
		})
	}

	reachable := make([]int64, 0)
	for _, id := range ids {
		if flags.Get(index.Get(id)).reached {
			reachable = append(reachable, id)
		}
	}
	return reachable
}
