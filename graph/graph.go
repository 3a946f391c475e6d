package graph

import (
	"fmt"
	"math/rand"

	"github.com/maplab/go-pathfind/structs"
	. "github.com/maplab/go-pathfind/util"
	"golang.org/x/exp/slices"
)

//*******************************************
// graph
//*******************************************

// Graph aggregates nodes and edges and derives a distance index from
// them: distances[origin][destination] = length for every edge, mirrored
// for two-way edges. The index encodes direct adjacency only.
//
// A Graph is read-only after construction. AddNode and AddEdge rebuild
// the derived state, they never patch it in place. Concurrent queries
// against a finished Graph need no locking.
type Graph struct {
	nodes     Dict[int64, structs.INode]
	edges     List[structs.Edge]
	variant   structs.Variant
	distances Dict[int64, Dict[int64, int64]]
	neighbors Dict[int64, []int64]
	ids       Array[int64]
}

// NewGraph builds a graph from finished node and edge collections. All
// nodes must share one variant. Edges may reference ids that are not in
// the node collection, the index is keyed by id regardless.
//
// If two edges declare different lengths between the same ordered pair,
// the later edge wins. Callers must not supply contradictory duplicates.
func NewGraph(nodes []structs.INode, edges []structs.Edge) (*Graph, error) {
	g := &Graph{
		nodes: NewDict[int64, structs.INode](len(nodes)),
		edges: NewList[structs.Edge](len(edges)),
	}
	for i, node := range nodes {
		if i == 0 {
			g.variant = node.NodeVariant()
		} else if node.NodeVariant() != g.variant {
			return nil, fmt.Errorf("%w: node %v in a %v graph", structs.ErrVariantMismatch, node.NodeID(), g.variant)
		}
		g.nodes.Set(node.NodeID(), node)
	}
	for _, edge := range edges {
		g.edges.Add(edge)
	}
	g._BuildIndex()
	return g, nil
}

func (self *Graph) _BuildIndex() {
	distances := NewDict[int64, Dict[int64, int64]](self.nodes.Length())
	insert := func(a, b, length int64) {
		if !distances.ContainsKey(a) {
			distances.Set(a, NewDict[int64, int64](2))
		}
		distances.Get(a).Set(b, length)
	}
	for _, edge := range self.edges {
		a := edge.Origin.NodeID()
		b := edge.Destination.NodeID()
		insert(a, b, edge.Length)
		if !edge.Oneway {
			insert(b, a, edge.Length)
		}
	}
	self.distances = distances

	// sorted neighbor lists and a sorted id universe keep every
	// traversal deterministic
	neighbors := NewDict[int64, []int64](distances.Length())
	ids := NewDict[int64, bool](self.nodes.Length())
	for id := range self.nodes {
		ids.Set(id, true)
	}
	for origin, targets := range distances {
		ids.Set(origin, true)
		adj := make([]int64, 0, targets.Length())
		for target := range targets {
			adj = append(adj, target)
			ids.Set(target, true)
		}
		slices.Sort(adj)
		neighbors.Set(origin, adj)
	}
	self.neighbors = neighbors

	universe := NewArray[int64](ids.Length())
	i := 0
	for id := range ids {
		universe.Set(i, id)
		i += 1
	}
	slices.Sort(universe)
	self.ids = universe
}

//*******************************************
// accessors
//*******************************************

func (self *Graph) NodeCount() int {
	return self.nodes.Length()
}
func (self *Graph) EdgeCount() int {
	return self.edges.Length()
}
func (self *Graph) Variant() structs.Variant {
	return self.variant
}
func (self *Graph) GetNode(id int64) (structs.INode, bool) {
	node, ok := self.nodes[id]
	return node, ok
}

// NodeIDs returns every id known to the graph (declared nodes plus ids
// referenced by edges), ascending.
func (self *Graph) NodeIDs() []int64 {
	return self.ids
}

// Distance returns the direct edge length origin -> destination, if any.
func (self *Graph) Distance(origin, destination int64) (int64, bool) {
	targets, ok := self.distances[origin]
	if !ok {
		return 0, false
	}
	length, ok := targets[destination]
	return length, ok
}

// ForNeighbors calls the callback for every direct neighbor of the node,
// in ascending id order.
func (self *Graph) ForNeighbors(id int64, callback func(neighbor int64, length int64)) {
	targets, ok := self.distances[id]
	if !ok {
		return
	}
	for _, neighbor := range self.neighbors[id] {
		callback(neighbor, targets[neighbor])
	}
}

//*******************************************
// modification
//*******************************************

// AddNode registers another node and rebuilds the derived state.
func (self *Graph) AddNode(node structs.INode) error {
	if self.nodes.Length() > 0 && node.NodeVariant() != self.variant {
		return fmt.Errorf("%w: node %v in a %v graph", structs.ErrVariantMismatch, node.NodeID(), self.variant)
	}
	if self.nodes.Length() == 0 {
		self.variant = node.NodeVariant()
	}
	self.nodes.Set(node.NodeID(), node)
	self._BuildIndex()
	return nil
}

// AddEdge registers another edge and rebuilds the distance index.
func (self *Graph) AddEdge(edge structs.Edge) error {
	if self.nodes.Length() > 0 && edge.Origin.NodeVariant() != self.variant {
		return fmt.Errorf("%w: edge %v -> %v in a %v graph", structs.ErrVariantMismatch,
			edge.Origin.NodeID(), edge.Destination.NodeID(), self.variant)
	}
	self.edges.Add(edge)
	self._BuildIndex()
	return nil
}

//*******************************************
// lookup helpers
//*******************************************

// ClosestNode returns the graph node nearest to the given probe node by
// straight-line distance. The probe must match the graph variant.
func (self *Graph) ClosestNode(probe structs.INode) (int64, bool) {
	best_id := int64(-1)
	best_dist := int64(-1)
	for _, id := range self.ids {
		node, ok := self.nodes[id]
		if !ok {
			continue
		}
		d, err := structs.Distance(probe, node)
		if err != nil {
			return -1, false
		}
		if best_dist < 0 || d < best_dist {
			best_dist = d
			best_id = id
		}
	}
	if best_id < 0 {
		return -1, false
	}
	return best_id, true
}

// RandomNodes samples n distinct node ids from the graph.
func (self *Graph) RandomNodes(n int) []int64 {
	ids := make([]int64, 0, self.nodes.Length())
	for id := range self.nodes {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	rand.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})
	if n > len(ids) {
		n = len(ids)
	}
	return ids[:n]
}
