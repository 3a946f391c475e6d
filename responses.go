package main

import (
	"github.com/maplab/go-pathfind/structs"
	"github.com/paulmach/orb/geojson"
)

type ErrorResponse struct {
	Request string `json:"request"`
	Error   any    `json:"error"`
}

func NewErrorResponse(request string, error any) ErrorResponse {
	return ErrorResponse{
		Request: request,
		Error:   error,
	}
}

type RoutingResponse struct {
	Path    []int64          `json:"path"`
	Length  int64            `json:"length"`
	Feature *geojson.Feature `json:"feature,omitempty"`
}

type NearestResponse struct {
	Node int64 `json:"node"`
}

type RandomResponse struct {
	Nodes []int64 `json:"nodes"`
}

type ReachabilityResponse struct {
	Nodes []int64 `json:"nodes"`
}

type GraphInfoResponse struct {
	Name    string          `json:"name"`
	Variant structs.Variant `json:"variant"`
	Nodes   int             `json:"nodes"`
	Edges   int             `json:"edges"`
}
