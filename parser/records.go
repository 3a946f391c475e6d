package parser

import (
	"fmt"
	"strconv"

	"github.com/maplab/go-pathfind/geo"
	"github.com/maplab/go-pathfind/graph"
	"github.com/maplab/go-pathfind/structs"
	. "github.com/maplab/go-pathfind/util"
)

//*******************************************
// tabular records
//*******************************************

// PlanarNodeRecord is one row of a planar node table.
type PlanarNodeRecord struct {
	ID     int64 `json:"id" csv:"id"`
	X      int64 `json:"x" csv:"x"`
	Y      int64 `json:"y" csv:"y"`
	Active bool  `json:"active" csv:"active"`
}

// GeoNodeRecord is one row of a geographic node table.
type GeoNodeRecord struct {
	ID     int64   `json:"id" csv:"id"`
	Lat    float64 `json:"lat" csv:"lat"`
	Lon    float64 `json:"lon" csv:"lon"`
	Active bool    `json:"active" csv:"active"`
}

// EdgeRecord is one row of an edge table. Length carries no value when
// the source cell was empty, which is different from an explicit 0.
type EdgeRecord struct {
	Origin      int64
	Destination int64
	Length      Optional[int64]
	Oneway      bool
}

// _EdgeRow keeps the length column as raw text so an empty cell can be
// told apart from "0".
type _EdgeRow struct {
	Origin      int64  `csv:"origin"`
	Destination int64  `csv:"destination"`
	Length      string `csv:"length"`
	Oneway      bool   `csv:"oneway"`
}

type _JSONEdgeRow struct {
	Origin      int64  `json:"origin"`
	Destination int64  `json:"destination"`
	Length      *int64 `json:"length"`
	Oneway      bool   `json:"oneway"`
}

type _PlanarGraphDoc struct {
	Nodes []PlanarNodeRecord `json:"nodes"`
	Edges []_JSONEdgeRow     `json:"edges"`
}

type _GeoGraphDoc struct {
	Nodes []GeoNodeRecord `json:"nodes"`
	Edges []_JSONEdgeRow  `json:"edges"`
}

func (self _EdgeRow) Record() (EdgeRecord, error) {
	length := None[int64]()
	if self.Length != "" {
		value, err := strconv.ParseInt(self.Length, 10, 64)
		if err != nil {
			return EdgeRecord{}, fmt.Errorf("parser: invalid length %q: %w", self.Length, err)
		}
		length = Some(value)
	}
	return EdgeRecord{
		Origin:      self.Origin,
		Destination: self.Destination,
		Length:      length,
		Oneway:      self.Oneway,
	}, nil
}

func (self _JSONEdgeRow) Record() EdgeRecord {
	length := None[int64]()
	if self.Length != nil {
		length = Some(*self.Length)
	}
	return EdgeRecord{
		Origin:      self.Origin,
		Destination: self.Destination,
		Length:      length,
		Oneway:      self.Oneway,
	}
}

//*******************************************
// graph builders
//*******************************************

// BuildPlanarGraph assembles a graph from node and edge tables. Edges
// must reference node ids present in the node table.
func BuildPlanarGraph(node_records []PlanarNodeRecord, edge_records []EdgeRecord) (*graph.Graph, error) {
	nodes := NewDict[int64, structs.Node](len(node_records))
	node_list := make([]structs.INode, 0, len(node_records))
	for _, record := range node_records {
		node := structs.NewNode(record.ID, geo.Position{X: record.X, Y: record.Y}, record.Active)
		nodes.Set(record.ID, node)
		node_list = append(node_list, node)
	}
	edge_list := make([]structs.Edge, 0, len(edge_records))
	for _, record := range edge_records {
		if !nodes.ContainsKey(record.Origin) {
			return nil, fmt.Errorf("parser: edge references unknown node %v", record.Origin)
		}
		if !nodes.ContainsKey(record.Destination) {
			return nil, fmt.Errorf("parser: edge references unknown node %v", record.Destination)
		}
		edge, err := structs.NewEdge(nodes.Get(record.Origin), nodes.Get(record.Destination), record.Length, record.Oneway)
		if err != nil {
			return nil, err
		}
		edge_list = append(edge_list, edge)
	}
	return graph.NewGraph(node_list, edge_list)
}

// BuildGeoGraph is the geographic counterpart of BuildPlanarGraph.
func BuildGeoGraph(node_records []GeoNodeRecord, edge_records []EdgeRecord) (*graph.Graph, error) {
	nodes := NewDict[int64, structs.GeoNode](len(node_records))
	node_list := make([]structs.INode, 0, len(node_records))
	for _, record := range node_records {
		node := structs.NewGeoNode(record.ID, geo.Geoposition{Lat: record.Lat, Lon: record.Lon}, record.Active)
		nodes.Set(record.ID, node)
		node_list = append(node_list, node)
	}
	edge_list := make([]structs.Edge, 0, len(edge_records))
	for _, record := range edge_records {
		if !nodes.ContainsKey(record.Origin) {
			return nil, fmt.Errorf("parser: edge references unknown node %v", record.Origin)
		}
		if !nodes.ContainsKey(record.Destination) {
			return nil, fmt.Errorf("parser: edge references unknown node %v", record.Destination)
		}
		edge, err := structs.NewEdge(nodes.Get(record.Origin), nodes.Get(record.Destination), record.Length, record.Oneway)
		if err != nil {
			return nil, err
		}
		edge_list = append(edge_list, edge)
	}
	return graph.NewGraph(node_list, edge_list)
}

//*******************************************
// file loaders
//*******************************************

func _ReadEdgesCSV(filename string, delimiter rune) ([]EdgeRecord, error) {
	records := make([]EdgeRecord, 0)
	var row_err error
	ReadCSVFromFile[_EdgeRow](filename, delimiter)(func(row _EdgeRow) bool {
		record, err := row.Record()
		if err != nil {
			row_err = err
			return false
		}
		records = append(records, record)
		return true
	})
	if row_err != nil {
		return nil, row_err
	}
	return records, nil
}

// LoadPlanarGraphCSV reads a planar graph from two csv tables.
func LoadPlanarGraphCSV(nodes_file, edges_file string, delimiter rune) (*graph.Graph, error) {
	node_records := make([]PlanarNodeRecord, 0)
	ReadCSVFromFile[PlanarNodeRecord](nodes_file, delimiter)(func(record PlanarNodeRecord) bool {
		node_records = append(node_records, record)
		return true
	})
	edge_records, err := _ReadEdgesCSV(edges_file, delimiter)
	if err != nil {
		return nil, err
	}
	return BuildPlanarGraph(node_records, edge_records)
}

// LoadGeoGraphCSV reads a geographic graph from two csv tables.
func LoadGeoGraphCSV(nodes_file, edges_file string, delimiter rune) (*graph.Graph, error) {
	node_records := make([]GeoNodeRecord, 0)
	ReadCSVFromFile[GeoNodeRecord](nodes_file, delimiter)(func(record GeoNodeRecord) bool {
		node_records = append(node_records, record)
		return true
	})
	edge_records, err := _ReadEdgesCSV(edges_file, delimiter)
	if err != nil {
		return nil, err
	}
	return BuildGeoGraph(node_records, edge_records)
}

// LoadPlanarGraphJSON reads a planar graph from a single json document
// with "nodes" and "edges" arrays.
func LoadPlanarGraphJSON(filename string) (*graph.Graph, error) {
	doc, err := ReadJSONFromFile[_PlanarGraphDoc](filename)
	if err != nil {
		return nil, err
	}
	edge_records := make([]EdgeRecord, 0, len(doc.Edges))
	for _, row := range doc.Edges {
		edge_records = append(edge_records, row.Record())
	}
	return BuildPlanarGraph(doc.Nodes, edge_records)
}

// LoadGeoGraphJSON reads a geographic graph from a single json document.
func LoadGeoGraphJSON(filename string) (*graph.Graph, error) {
	doc, err := ReadJSONFromFile[_GeoGraphDoc](filename)
	if err != nil {
		return nil, err
	}
	edge_records := make([]EdgeRecord, 0, len(doc.Edges))
	for _, row := range doc.Edges {
		edge_records = append(edge_records, row.Record())
	}
	return BuildGeoGraph(doc.Nodes, edge_records)
}
