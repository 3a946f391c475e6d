package geo

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

//*******************************************
// geojson helpers
//*******************************************

// PathFeature renders an ordered sequence of geographic positions as a
// GeoJSON LineString feature.
func PathFeature(path []Geoposition) *geojson.Feature {
	line := make(orb.LineString, 0, len(path))
	for _, pos := range path {
		line = append(line, pos.Point())
	}
	feature := geojson.NewFeature(line)
	feature.Properties["nodes"] = len(path)
	return feature
}
