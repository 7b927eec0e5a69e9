package georef

import (
	"math"

	"github.com/twpayne/go-geom"

	"github.com/siga-angola/envrisk-cli/internal/model"
)

// kmPerDegreeLat is the approximate great-circle distance of one degree
// of latitude. Good enough for the coarse query boxes used here.
const kmPerDegreeLat = 111.32

// Point returns the region's reference point as an XY geometry with
// SRID 4326 (longitude first).
func Point(p *model.LocationProfile) *geom.Point {
	return geom.NewPointFlat(geom.XY, []float64{p.Coordinates.Longitude, p.Coordinates.Latitude}).SetSRID(4326)
}

// BoundingBox returns a square bounding box of radiusKM around the
// region's reference point. Longitude spread widens with latitude so
// the box stays roughly square on the ground.
func BoundingBox(p *model.LocationProfile, radiusKM float64) *geom.Bounds {
	if radiusKM < 0 {
		radiusKM = 0
	}
	lat := p.Coordinates.Latitude
	lon := p.Coordinates.Longitude

	dLat := radiusKM / kmPerDegreeLat
	cos := math.Cos(lat * math.Pi / 180)
	if cos < 0.01 {
		cos = 0.01
	}
	dLon := radiusKM / (kmPerDegreeLat * cos)

	return geom.NewBounds(geom.XY).Set(lon-dLon, lat-dLat, lon+dLon, lat+dLat)
}
