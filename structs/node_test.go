package structs

import (
	"errors"
	"testing"

	"github.com/maplab/go-pathfind/geo"
	"github.com/stretchr/testify/assert"
)

func TestNodeEquality(t *testing.T) {
	a := NewNode(1, geo.Position{X: 0, Y: 0}, false)
	b := NewNode(2, geo.Position{X: 3, Y: 4}, true)
	// same position as b, different id
	c := NewNode(3, geo.Position{X: 3, Y: 4}, false)

	eq, err := Equal(b, c)
	assert.NoError(t, err)
	assert.True(t, eq, "nodes with identical positions compare equal regardless of id")

	eq, err = Equal(a, b)
	assert.NoError(t, err)
	assert.False(t, eq)

	eq, err = Equal(a, a)
	assert.NoError(t, err)
	assert.True(t, eq)
}

func TestGeoNodeEquality(t *testing.T) {
	a := NewGeoNode(1, geo.Geoposition{Lat: 44.6471, Lon: 10.9252}, false)
	b := NewGeoNode(9, geo.Geoposition{Lat: 44.6471, Lon: 10.9252}, true)

	eq, err := Equal(a, b)
	assert.NoError(t, err)
	assert.True(t, eq)
}

func TestVariantMismatch(t *testing.T) {
	planar := NewNode(1, geo.Position{X: 10, Y: 44}, false)
	geographic := NewGeoNode(2, geo.Geoposition{Lat: 44, Lon: 10}, false)

	// either order fails loudly, never a silent false
	_, err := Equal(planar, geographic)
	assert.ErrorIs(t, err, ErrVariantMismatch)

	_, err = Equal(geographic, planar)
	assert.ErrorIs(t, err, ErrVariantMismatch)

	_, err = Distance(planar, geographic)
	assert.ErrorIs(t, err, ErrVariantMismatch)
}

func TestNodeDistance(t *testing.T) {
	a := NewNode(1, geo.Position{X: 0, Y: 0}, false)
	b := NewNode(2, geo.Position{X: 3, Y: 4}, false)

	d, err := Distance(a, b)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), d)

	d2, err := Distance(b, a)
	assert.NoError(t, err)
	assert.Equal(t, d, d2)
}

func TestActiveFlag(t *testing.T) {
	shop := NewGeoNode(7, geo.Geoposition{Lat: 44.7, Lon: 10.6}, true)
	waypoint := NewGeoNode(8, geo.Geoposition{Lat: 44.7, Lon: 10.6}, false)

	assert.True(t, shop.IsActive())
	assert.False(t, waypoint.IsActive())

	// active has no bearing on equality
	eq, err := Equal(shop, waypoint)
	assert.NoError(t, err)
	assert.True(t, eq)

	if errors.Is(err, ErrVariantMismatch) {
		t.Fatal("unexpected variant mismatch")
	}
}
