package structs

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/maplab/go-pathfind/geo"
	"gopkg.in/yaml.v3"
)

//*******************************************
// node variants
//*******************************************

// ErrVariantMismatch indicates a planar node met a geographic node where
// both sides must share a variant. It is never downgraded to a plain false.
var ErrVariantMismatch = errors.New("structs: mixed planar and geographic nodes")

type Variant byte

const (
	PLANAR     Variant = 0
	GEOGRAPHIC Variant = 1
)

func (self Variant) String() string {
	switch self {
	case PLANAR:
		return "planar"
	case GEOGRAPHIC:
		return "geographic"
	default:
		panic("unknown node variant")
	}
}
func (self Variant) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.String())
}
func (self *Variant) UnmarshalJSON(data []byte) error {
	var typ string
	if err := json.Unmarshal(data, &typ); err != nil {
		return err
	}
	variant, err := VariantFromString(typ)
	*self = variant
	return err
}
func (self Variant) MarshalYAML() (any, error) {
	return self.String(), nil
}
func (self *Variant) UnmarshalYAML(value *yaml.Node) error {
	variant, err := VariantFromString(value.Value)
	if err != nil {
		return err
	}
	*self = variant
	return nil
}

func VariantFromString(s string) (Variant, error) {
	switch s {
	case "planar":
		return PLANAR, nil
	case "geographic":
		return GEOGRAPHIC, nil
	default:
		return PLANAR, fmt.Errorf("unknown node variant: %q", s)
	}
}

// INode is the closed set of node variants. Only Node and GeoNode
// implement it.
type INode interface {
	NodeID() int64
	NodeVariant() Variant
	IsActive() bool
}

//*******************************************
// planar node
//*******************************************

// Node is positioned by planar coordinates.
//
// Active marks a position of interest (building, shop, monument) as
// opposed to a structural waypoint. It has no effect on routing.
type Node struct {
	ID     int64
	Pos    geo.Position
	Active bool
}

func NewNode(id int64, pos geo.Position, active bool) Node {
	return Node{
		ID:     id,
		Pos:    pos,
		Active: active,
	}
}

func (self Node) NodeID() int64 {
	return self.ID
}
func (self Node) NodeVariant() Variant {
	return PLANAR
}
func (self Node) IsActive() bool {
	return self.Active
}

//*******************************************
// geographic node
//*******************************************

// GeoNode is positioned by latitude and longitude.
type GeoNode struct {
	ID     int64
	Pos    geo.Geoposition
	Active bool
}

func NewGeoNode(id int64, pos geo.Geoposition, active bool) GeoNode {
	return GeoNode{
		ID:     id,
		Pos:    pos,
		Active: active,
	}
}

func (self GeoNode) NodeID() int64 {
	return self.ID
}
func (self GeoNode) NodeVariant() Variant {
	return GEOGRAPHIC
}
func (self GeoNode) IsActive() bool {
	return self.Active
}

//*******************************************
// node operations
//*******************************************

// Equal reports whether two nodes of the same variant occupy the same
// position. Node identity is positional: two nodes with different ids but
// identical coordinates are equal. Mixing variants returns
// ErrVariantMismatch.
func Equal(a, b INode) (bool, error) {
	if a.NodeVariant() != b.NodeVariant() {
		return false, fmt.Errorf("%w: %v == %v", ErrVariantMismatch, a.NodeVariant(), b.NodeVariant())
	}
	switch a.NodeVariant() {
	case PLANAR:
		return a.(Node).Pos == b.(Node).Pos, nil
	default:
		return a.(GeoNode).Pos == b.(GeoNode).Pos, nil
	}
}

// Distance returns the straight-line distance between two nodes of the
// same variant: euclidean for planar nodes, geodesic meters for
// geographic ones.
func Distance(a, b INode) (int64, error) {
	if a.NodeVariant() != b.NodeVariant() {
		return 0, fmt.Errorf("%w: distance %v -> %v", ErrVariantMismatch, a.NodeVariant(), b.NodeVariant())
	}
	switch a.NodeVariant() {
	case PLANAR:
		return geo.Euclidean(a.(Node).Pos, b.(Node).Pos), nil
	default:
		return geo.Geodesic(a.(GeoNode).Pos, b.(GeoNode).Pos), nil
	}
}
