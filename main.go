package main

import (
	"net/http"
	"os"

	"golang.org/x/exp/slog"
)

var MANAGER *GraphManager

func main() {
	logger := slog.New(NewLogHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	config := ReadConfig("./config.yaml")
	manager, err := NewGraphManager(config)
	if err != nil {
		slog.Error("failed to load graphs: " + err.Error())
		os.Exit(1)
	}
	MANAGER = manager

	app := http.NewServeMux()
	MapPost(app, "/v0/routing", HandleRoutingRequest)
	MapPost(app, "/v0/nearest", HandleNearestRequest)
	MapPost(app, "/v0/random", HandleRandomRequest)
	MapPost(app, "/v0/reachability", HandleReachabilityRequest)
	MapGet(app, "/v0/graph", func(req struct {
		Name string `json:"name"`
	}) Result {
		g_opt := MANAGER.GetGraph(req.Name)
		if !g_opt.HasValue() {
			return NotFound("unknown graph: " + req.Name)
		}
		g := g_opt.Value
		return OK(GraphInfoResponse{
			Name:    req.Name,
			Variant: g.Variant(),
			Nodes:   g.NodeCount(),
			Edges:   g.EdgeCount(),
		})
	})
	MapGet(app, "/v0/graphs", func(none struct{}) Result {
		names := MANAGER.GraphNames()
		infos := make([]GraphInfoResponse, 0, len(names))
		for _, name := range names {
			g := MANAGER.GetGraph(name).Value
			infos = append(infos, GraphInfoResponse{
				Name:    name,
				Variant: g.Variant(),
				Nodes:   g.NodeCount(),
				Edges:   g.EdgeCount(),
			})
		}
		return OK(infos)
	})

	address := config.Server.Address
	if address == "" {
		address = ":5002"
	}
	slog.Info("starting server on " + address)
	http.ListenAndServe(address, app)
}
