package main

import (
	"fmt"

	"github.com/maplab/go-pathfind/geo"
	"github.com/maplab/go-pathfind/graph"
	"github.com/maplab/go-pathfind/routing"
	"github.com/maplab/go-pathfind/structs"
	"github.com/paulmach/orb/geojson"
)

//**********************************************************
// routing requests
//**********************************************************

// RoutingRequest selects endpoints either by node id (origin/target) or
// by coordinate (start/end, snapped to the closest node). Coordinates
// are [x, y] for planar graphs and [lon, lat] for geographic ones.
type RoutingRequest struct {
	Graph     string    `json:"graph"`
	Origin    int64     `json:"origin"`
	Target    int64     `json:"target"`
	Start     []float64 `json:"start"`
	End       []float64 `json:"end"`
	Algorithm string    `json:"algorithm"`
}

type NearestRequest struct {
	Graph    string    `json:"graph"`
	Location []float64 `json:"location"`
}

type RandomRequest struct {
	Graph string `json:"graph"`
	Count int    `json:"count"`
}

type ReachabilityRequest struct {
	Graph    string `json:"graph"`
	Origin   int64  `json:"origin"`
	MaxRange int64  `json:"max_range"`
}

//**********************************************************
// handlers
//**********************************************************

func HandleRoutingRequest(req RoutingRequest) Result {
	g_opt := MANAGER.GetGraph(req.Graph)
	if !g_opt.HasValue() {
		return NotFound("unknown graph: " + req.Graph)
	}
	g := g_opt.Value

	origin := req.Origin
	if len(req.Start) == 2 {
		id, ok := _SnapToNode(g, req.Start)
		if !ok {
			return BadRequest(fmt.Sprintf("no node near start %v", req.Start))
		}
		origin = id
	}
	target := req.Target
	if len(req.End) == 2 {
		id, ok := _SnapToNode(g, req.End)
		if !ok {
			return BadRequest(fmt.Sprintf("no node near end %v", req.End))
		}
		target = id
	}

	algorithm := req.Algorithm
	if algorithm == "" {
		algorithm = "dijkstra"
	}
	path, err := routing.FindPathByName(g, origin, target, algorithm)
	if err != nil {
		return BadRequest(err.Error())
	}

	resp := RoutingResponse{
		Path:   path.Nodes,
		Length: path.Length,
	}
	if g.Variant() == structs.GEOGRAPHIC {
		resp.Feature = _PathFeature(g, path.Nodes)
	}
	return OK(resp)
}

func HandleNearestRequest(req NearestRequest) Result {
	g_opt := MANAGER.GetGraph(req.Graph)
	if !g_opt.HasValue() {
		return NotFound("unknown graph: " + req.Graph)
	}
	if len(req.Location) != 2 {
		return BadRequest("location must be a coordinate pair")
	}
	id, ok := _SnapToNode(g_opt.Value, req.Location)
	if !ok {
		return BadRequest(fmt.Sprintf("no node near %v", req.Location))
	}
	return OK(NearestResponse{Node: id})
}

func HandleRandomRequest(req RandomRequest) Result {
	g_opt := MANAGER.GetGraph(req.Graph)
	if !g_opt.HasValue() {
		return NotFound("unknown graph: " + req.Graph)
	}
	count := req.Count
	if count <= 0 {
		count = 1
	}
	return OK(RandomResponse{Nodes: g_opt.Value.RandomNodes(count)})
}

func HandleReachabilityRequest(req ReachabilityRequest) Result {
	g_opt := MANAGER.GetGraph(req.Graph)
	if !g_opt.HasValue() {
		return NotFound("unknown graph: " + req.Graph)
	}
	if req.MaxRange < 0 {
		return BadRequest("max_range must not be negative")
	}
	nodes := routing.ReachableNodes(g_opt.Value, req.Origin, req.MaxRange)
	return OK(ReachabilityResponse{Nodes: nodes})
}

//**********************************************************
// helpers
//**********************************************************

func _SnapToNode(g *graph.Graph, coord []float64) (int64, bool) {
	var probe structs.INode
	if g.Variant() == structs.GEOGRAPHIC {
		probe = structs.NewGeoNode(-1, geo.Geoposition{Lat: coord[1], Lon: coord[0]}, false)
	} else {
		probe = structs.NewNode(-1, geo.Position{X: int64(coord[0]), Y: int64(coord[1])}, false)
	}
	return g.ClosestNode(probe)
}

func _PathFeature(g *graph.Graph, nodes []int64) *geojson.Feature {
	positions := make([]geo.Geoposition, 0, len(nodes))
	for _, id := range nodes {
		node, ok := g.GetNode(id)
		if !ok {
			continue
		}
		positions = append(positions, node.(structs.GeoNode).Pos)
	}
	return geo.PathFeature(positions)
}
