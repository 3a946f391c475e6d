package parser

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/maplab/go-pathfind/geo"
	"github.com/maplab/go-pathfind/graph"
	"github.com/maplab/go-pathfind/structs"
	. "github.com/maplab/go-pathfind/util"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"golang.org/x/exp/slog"
)

//*******************************************
// osm parser
//*******************************************

// ParseOSMGraph reads an osm pbf extract and builds a geographic graph
// from its road network. Ways are split at junction nodes (nodes shared
// by more than one way segment), so every edge connects two decision
// points and carries the summed geodesic length of the segments between
// them. Node ids are the original osm ids.
func ParseOSMGraph(pbf_file string) (*graph.Graph, error) {
	temp_nodes := NewDict[int64, _TempNode](10000)
	junctions := NewDict[int64, structs.GeoNode](1000)
	edges := NewList[structs.Edge](10000)

	file, err := os.Open(pbf_file)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := osmpbf.New(context.Background(), file, runtime.GOMAXPROCS(-1))
	_InitWayHandler(scanner, &temp_nodes)
	scanner.Close()
	file.Seek(0, 0)
	scanner = osmpbf.New(context.Background(), file, runtime.GOMAXPROCS(-1))
	_NodeHandler(scanner, &temp_nodes, &junctions)
	scanner.Close()
	file.Seek(0, 0)
	scanner = osmpbf.New(context.Background(), file, runtime.GOMAXPROCS(-1))
	err = _WayHandler(scanner, &temp_nodes, &junctions, &edges)
	scanner.Close()
	if err != nil {
		return nil, err
	}
	slog.Info(fmt.Sprintf("parsed osm extract: %v nodes, %v edges", junctions.Length(), edges.Length()))

	nodes := make([]structs.INode, 0, junctions.Length())
	for _, node := range junctions {
		nodes = append(nodes, node)
	}
	return graph.NewGraph(nodes, edges)
}

type _TempNode struct {
	Point geo.Geoposition
	Count int32
}

// _InitWayHandler counts how many way segments touch every node, so the
// node pass can tell junctions from intermediate geometry.
func _InitWayHandler(scanner *osmpbf.Scanner, temp_nodes *Dict[int64, _TempNode]) {
	scanner.SkipNodes = true
	scanner.SkipRelations = true
	for scanner.Scan() {
		switch object := scanner.Object().(type) {
		case *osm.Way:
			tags := Dict[string, string](object.TagMap())
			if !_IsValidHighway(tags) {
				continue
			}
			nodes := object.Nodes.NodeIDs()
			l := len(nodes)
			for i := 0; i < l; i++ {
				ndref := nodes[i].FeatureID().Ref()
				if !temp_nodes.ContainsKey(ndref) {
					(*temp_nodes)[ndref] = _TempNode{geo.Geoposition{}, 1}
				} else {
					node := (*temp_nodes)[ndref]
					node.Count += 1
					(*temp_nodes)[ndref] = node
				}
			}
			// way endpoints are always junctions
			node_a := (*temp_nodes)[nodes[0].FeatureID().Ref()]
			node_b := (*temp_nodes)[nodes[l-1].FeatureID().Ref()]
			node_a.Count += 1
			node_b.Count += 1
			(*temp_nodes)[nodes[0].FeatureID().Ref()] = node_a
			(*temp_nodes)[nodes[l-1].FeatureID().Ref()] = node_b
		default:
			continue
		}
	}
}

// _NodeHandler fills node coordinates and creates graph nodes for the
// junctions. A node blocked by a barrier tag is kept but marked
// inactive.
func _NodeHandler(scanner *osmpbf.Scanner, temp_nodes *Dict[int64, _TempNode], junctions *Dict[int64, structs.GeoNode]) {
	c := 0
	scanner.SkipWays = true
	scanner.SkipRelations = true
	for scanner.Scan() {
		switch object := scanner.Object().(type) {
		case *osm.Node:
			id := object.FeatureID().Ref()
			if !temp_nodes.ContainsKey(id) {
				continue
			}
			c += 1
			if c%1000 == 0 {
				slog.Debug(fmt.Sprintf("scanned %v nodes", c))
			}
			tn := temp_nodes.Get(id)
			tn.Point = geo.Geoposition{Lat: object.Lat, Lon: object.Lon}
			temp_nodes.Set(id, tn)
			if tn.Count > 1 {
				tags := object.TagMap()
				active := tags["barrier"] == ""
				junctions.Set(id, structs.NewGeoNode(id, tn.Point, active))
			}
		default:
			continue
		}
	}
}

// _WayHandler walks every valid way a second time and emits one edge per
// junction-to-junction stretch, accumulating the geodesic length of the
// intermediate segments.
func _WayHandler(scanner *osmpbf.Scanner, temp_nodes *Dict[int64, _TempNode], junctions *Dict[int64, structs.GeoNode], edges *List[structs.Edge]) error {
	c := 0
	scanner.SkipNodes = true
	scanner.SkipRelations = true
	for scanner.Scan() {
		switch object := scanner.Object().(type) {
		case *osm.Way:
			tags := Dict[string, string](object.TagMap())
			if !_IsValidHighway(tags) {
				continue
			}
			c += 1
			if c%1000 == 0 {
				slog.Debug(fmt.Sprintf("scanned %v ways", c))
			}
			oneway := _IsOneway(tags)

			nodes := object.Nodes.NodeIDs()
			l := len(nodes)
			start := nodes[0].FeatureID().Ref()
			length := int64(0)
			prev := temp_nodes.Get(start).Point
			for i := 1; i < l; i++ {
				curr := nodes[i].FeatureID().Ref()
				tn := temp_nodes.Get(curr)
				length += geo.Geodesic(prev, tn.Point)
				prev = tn.Point
				if tn.Count > 1 {
					edge, err := structs.NewEdge(junctions.Get(start), junctions.Get(curr), Some(length), oneway)
					if err != nil {
						return err
					}
					edges.Add(edge)
					start = curr
					length = 0
				}
			}
		default:
			continue
		}
	}
	return nil
}

//*******************************************
// tag decoding
//*******************************************

var _HighwayTypes = Dict[string, bool]{"motorway": true, "motorway_link": true, "trunk": true, "trunk_link": true,
	"primary": true, "primary_link": true, "secondary": true, "secondary_link": true, "tertiary": true, "tertiary_link": true,
	"residential": true, "living_street": true, "service": true, "track": true, "unclassified": true, "road": true}

func _IsValidHighway(tags Dict[string, string]) bool {
	if !tags.ContainsKey("highway") {
		return false
	}
	if !_HighwayTypes.ContainsKey(tags.Get("highway")) {
		return false
	}
	return true
}

func _IsOneway(tags Dict[string, string]) bool {
	switch tags.Get("highway") {
	case "motorway", "motorway_link", "trunk", "trunk_link":
		return true
	}
	return tags.Get("oneway") == "yes"
}
