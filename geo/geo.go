package geo

import (
	"math"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

//*******************************************
// positions
//*******************************************

// Position is a planar coordinate pair.
type Position struct {
	X int64
	Y int64
}

// Geoposition is a geographic coordinate pair in degrees.
type Geoposition struct {
	Lat float64
	Lon float64
}

func (self Geoposition) Point() orb.Point {
	return orb.Point{self.Lon, self.Lat}
}

//*******************************************
// distances
//*******************************************

// Euclidean returns the straight-line distance between two planar
// positions, rounded down to an integer.
func Euclidean(a, b Position) int64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return int64(math.Sqrt(dx*dx + dy*dy))
}

// Geodesic returns the great-circle surface distance between two
// geographic positions in meters, rounded down to an integer.
func Geodesic(a, b Geoposition) int64 {
	if a == b {
		return 0
	}
	return int64(orbgeo.Distance(a.Point(), b.Point()))
}
