package geo

import "github.com/paulmach/orb"

// Bounds is an axis-aligned lat/lng rectangle. Edges are inclusive.
type Bounds struct {
	MinLat float64 `json:"min_lat" yaml:"min_lat"`
	MinLng float64 `json:"min_lng" yaml:"min_lng"`
	MaxLat float64 `json:"max_lat" yaml:"max_lat"`
	MaxLng float64 `json:"max_lng" yaml:"max_lng"`
}

func (b Bounds) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{b.MinLng, b.MinLat},
		Max: orb.Point{b.MaxLng, b.MaxLat},
	}
}

func (b Bounds) Contains(c Coordinate) bool {
	return b.Bound().Contains(c.Point())
}

func (b Bounds) Valid() bool {
	return b.MinLat <= b.MaxLat && b.MinLng <= b.MaxLng &&
		Coordinate{b.MinLat, b.MinLng}.Valid() && Coordinate{b.MaxLat, b.MaxLng}.Valid()
}

// Point converts c to an orb point, which is ordered lng, lat.
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}
