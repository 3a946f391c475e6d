package main

import (
	"errors"
	"os"

	"github.com/maplab/go-pathfind/structs"
	. "github.com/maplab/go-pathfind/util"
	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"
)

//**********************************************************
// config
//**********************************************************

func ReadConfig(file string) Config {
	slog.Info("Reading config file")
	data, err := os.ReadFile(file)
	if err != nil {
		slog.Error("failed to read config file: " + err.Error())
		panic(err)
	}
	var config Config
	yaml.Unmarshal(data, &config)
	return config
}

type Config struct {
	Server struct {
		Address string `yaml:"address"`
	} `yaml:"server"`
	Graphs Dict[string, GraphOptions] `yaml:"graphs"`
}

// GraphOptions describes one named graph source. Csv sources need the
// nodes and edges tables, json and osm sources a single file.
type GraphOptions struct {
	Format    SourceFormat    `yaml:"format"`
	Variant   structs.Variant `yaml:"variant"`
	File      string          `yaml:"file"`
	Nodes     string          `yaml:"nodes"`
	Edges     string          `yaml:"edges"`
	Delimiter string          `yaml:"delimiter"`
}

//**********************************************************
// enums
//**********************************************************

type SourceFormat byte

const (
	CSV  SourceFormat = 0
	JSON SourceFormat = 1
	OSM  SourceFormat = 2
)

func (self SourceFormat) String() string {
	switch self {
	case CSV:
		return "csv"
	case JSON:
		return "json"
	case OSM:
		return "osm"
	default:
		panic("unknown source format")
	}
}
func (self SourceFormat) MarshalYAML() (any, error) {
	return self.String(), nil
}
func (self *SourceFormat) UnmarshalYAML(value *yaml.Node) error {
	format, err := SourceFormatFromString(value.Value)
	if err != nil {
		return err
	}
	*self = format
	return nil
}

func SourceFormatFromString(s string) (SourceFormat, error) {
	switch s {
	case "csv":
		return CSV, nil
	case "json":
		return JSON, nil
	case "osm":
		return OSM, nil
	default:
		return CSV, errors.New("unknown source format: " + s)
	}
}
