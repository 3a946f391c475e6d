package structs

import (
	"fmt"

	. "github.com/maplab/go-pathfind/util"
)

//*******************************************
// edge
//*******************************************

// Edge connects an origin node to a destination node of the same variant.
// A oneway edge is traversable only origin -> destination.
type Edge struct {
	Origin      INode
	Destination INode
	Length      int64
	Oneway      bool
}

// NewEdge builds an edge between two nodes of the same variant. When no
// explicit length is given it is derived from the node positions
// (geodesic meters for geographic nodes, euclidean otherwise). An
// explicit length of zero is kept as zero, it is not recomputed.
func NewEdge(origin, destination INode, length Optional[int64], oneway bool) (Edge, error) {
	if origin.NodeVariant() != destination.NodeVariant() {
		return Edge{}, fmt.Errorf("%w: edge %v -> %v", ErrVariantMismatch, origin.NodeID(), destination.NodeID())
	}
	var l int64
	if length.HasValue() {
		l = length.Value
	} else {
		d, err := Distance(origin, destination)
		if err != nil {
			return Edge{}, err
		}
		l = d
	}
	return Edge{
		Origin:      origin,
		Destination: destination,
		Length:      l,
		Oneway:      oneway,
	}, nil
}

// Nodes returns origin and destination in declaration order, also for
// two-way edges.
func (self Edge) Nodes() (INode, INode) {
	return self.Origin, self.Destination
}
