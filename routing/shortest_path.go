package routing

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/maplab/go-pathfind/graph"
	"gopkg.in/yaml.v3"
)

//*******************************************
// errors
//*******************************************

var (
	// ErrInvalidQuery indicates origin and target are the same node.
	ErrInvalidQuery = errors.New("routing: origin and target must differ")

	// ErrUnknownAlgorithm indicates an unrecognized algorithm selector.
	ErrUnknownAlgorithm = errors.New("routing: unknown algorithm")

	// ErrNoPath indicates the target is unreachable from the origin.
	ErrNoPath = errors.New("routing: no path between origin and target")

	// ErrNegativeCycle indicates Bellman-Ford found a cycle of negative
	// total length, making shortest paths unbounded.
	ErrNegativeCycle = errors.New("routing: negative cycle detected")
)

//*******************************************
// algorithm enum
//*******************************************

type Algorithm byte

const (
	DIJKSTRA       Algorithm = 0
	BELLMAN_FORD   Algorithm = 1
	ASTAR          Algorithm = 2
	FLOYD_WARSHALL Algorithm = 3
)

func (self Algorithm) String() string {
	switch self {
	case DIJKSTRA:
		return "dijkstra"
	case BELLMAN_FORD:
		return "bellman-ford"
	case ASTAR:
		return "astar"
	case FLOYD_WARSHALL:
		return "floyd-warshall"
	default:
		panic("unknown algorithm")
	}
}
func (self Algorithm) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.String())
}
func (self *Algorithm) UnmarshalJSON(data []byte) error {
	var typ string
	if err := json.Unmarshal(data, &typ); err != nil {
		return err
	}
	alg, err := AlgorithmFromString(typ)
	*self = alg
	return err
}
func (self Algorithm) MarshalYAML() (any, error) {
	return self.String(), nil
}
func (self *Algorithm) UnmarshalYAML(value *yaml.Node) error {
	alg, err := AlgorithmFromString(value.Value)
	if err != nil {
		return err
	}
	*self = alg
	return nil
}

func AlgorithmFromString(s string) (Algorithm, error) {
	switch s {
	case "dijkstra":
		return DIJKSTRA, nil
	case "bellman-ford":
		return BELLMAN_FORD, nil
	case "astar":
		return ASTAR, nil
	case "floyd-warshall":
		return FLOYD_WARSHALL, nil
	default:
		return DIJKSTRA, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

//*******************************************
// find path
//*******************************************

// Path is an ordered node-id sequence and its total length. The unit of
// Length matches the graph variant (meters for geographic graphs).
type Path struct {
	Nodes  []int64 `json:"path"`
	Length int64   `json:"length"`
}

// FindPath computes the shortest path from origin to target with the
// selected algorithm. All algorithms operate purely on the graph's
// distance index, geometry is only consulted for the A* heuristic.
//
// The returned length is recomputed by walking the node sequence against
// the distance index, so it always equals the sum of the traversed edge
// lengths.
func FindPath(g *graph.Graph, origin, target int64, algorithm Algorithm) (Path, error) {
	if origin == target {
		return Path{}, fmt.Errorf("%w: node %v", ErrInvalidQuery, origin)
	}

	var nodes []int64
	var err error
	switch algorithm {
	case DIJKSTRA:
		nodes, err = CalcDijkstra(g, origin, target)
	case BELLMAN_FORD:
		nodes, err = CalcBellmanFord(g, origin, target)
	case ASTAR:
		nodes, err = CalcAStar(g, origin, target)
	case FLOYD_WARSHALL:
		nodes, err = _CalcFloydWarshallPath(g, origin, target)
	default:
		return Path{}, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, byte(algorithm))
	}
	if err != nil {
		return Path{}, err
	}

	length, err := _WalkLength(g, nodes)
	if err != nil {
		return Path{}, err
	}
	return Path{
		Nodes:  nodes,
		Length: length,
	}, nil
}

// FindPathByName resolves the algorithm selector before running the
// query, so unrecognized names surface as ErrUnknownAlgorithm.
func FindPathByName(g *graph.Graph, origin, target int64, algorithm string) (Path, error) {
	alg, err := AlgorithmFromString(algorithm)
	if err != nil {
		return Path{}, err
	}
	return FindPath(g, origin, target, alg)
}

//*******************************************
// shared pieces
//*******************************************

type _PQItem struct {
	node int64
	dist int64
}

// _UnwindPath walks the predecessor map back from target to origin.
func _UnwindPath(prev map[int64]int64, origin, target int64) []int64 {
	reversed := []int64{target}
	curr := target
	for curr != origin {
		curr = prev[curr]
		reversed = append(reversed, curr)
	}
	nodes := make([]int64, 0, len(reversed))
	for i := len(reversed) - 1; i >= 0; i-- {
		nodes = append(nodes, reversed[i])
	}
	return nodes
}

// _WalkLength re-derives the total length of a node sequence from the
// distance index. Every consecutive pair must be a direct edge.
func _WalkLength(g *graph.Graph, nodes []int64) (int64, error) {
	length := int64(0)
	for i := 0; i < len(nodes)-1; i++ {
		d, ok := g.Distance(nodes[i], nodes[i+1])
		if !ok {
			return 0, fmt.Errorf("%w: broken path at %v -> %v", ErrNoPath, nodes[i], nodes[i+1])
		}
		length += d
	}
	return length, nil
}
