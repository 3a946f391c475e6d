package main

import (
	"errors"
	"fmt"

	"github.com/maplab/go-pathfind/graph"
	"github.com/maplab/go-pathfind/parser"
	"github.com/maplab/go-pathfind/structs"
	. "github.com/maplab/go-pathfind/util"
	"golang.org/x/exp/slog"
)

//**********************************************************
// graph manager
//**********************************************************

// NewGraphManager loads every graph named in the config. Graphs are
// immutable once loaded, so handlers can query them concurrently.
func NewGraphManager(config Config) (*GraphManager, error) {
	graphs := NewDict[string, *graph.Graph](config.Graphs.Length())
	for name, options := range config.Graphs {
		slog.Info("loading graph " + name + " (" + options.Format.String() + ")")
		g, err := _LoadGraph(options)
		if err != nil {
			return nil, fmt.Errorf("graph %q: %w", name, err)
		}
		slog.Info(fmt.Sprintf("loaded graph %v: %v nodes, %v edges", name, g.NodeCount(), g.EdgeCount()))
		graphs.Set(name, g)
	}
	return &GraphManager{graphs: graphs}, nil
}

func _LoadGraph(options GraphOptions) (*graph.Graph, error) {
	delimiter := ';'
	if options.Delimiter != "" {
		delimiter = rune(options.Delimiter[0])
	}
	switch options.Format {
	case CSV:
		if options.Variant == structs.PLANAR {
			return parser.LoadPlanarGraphCSV(options.Nodes, options.Edges, delimiter)
		}
		return parser.LoadGeoGraphCSV(options.Nodes, options.Edges, delimiter)
	case JSON:
		if options.Variant == structs.PLANAR {
			return parser.LoadPlanarGraphJSON(options.File)
		}
		return parser.LoadGeoGraphJSON(options.File)
	case OSM:
		if options.Variant != structs.GEOGRAPHIC {
			return nil, errors.New("osm sources are always geographic")
		}
		return parser.ParseOSMGraph(options.File)
	default:
		return nil, errors.New("unknown source format")
	}
}

type GraphManager struct {
	graphs Dict[string, *graph.Graph]
}

func (self *GraphManager) GetGraph(name string) Optional[*graph.Graph] {
	if self.graphs.ContainsKey(name) {
		return Some(self.graphs.Get(name))
	}
	return None[*graph.Graph]()
}

func (self *GraphManager) GraphNames() []string {
	names := make([]string, 0, self.graphs.Length())
	for name := range self.graphs {
		names = append(names, name)
	}
	return names
}
