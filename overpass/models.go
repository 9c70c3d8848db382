package overpass

import "github.com/hospice/hospital-locator-api/geo"

type Center struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Element is one node, way or relation of a query response. Ways and
// relations carry their coordinate in Center.
type Element struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    float64           `json:"lat"`
	Lon    float64           `json:"lon"`
	Center *Center           `json:"center,omitempty"`
	Tags   map[string]string `json:"tags,omitempty"`
}

type Response struct {
	Elements []Element `json:"elements"`
}

func (e Element) Name() string {
	return e.Tags["name"]
}

// Coordinate returns the element position and false when it has none.
func (e Element) Coordinate() (geo.Coordinate, bool) {
	if e.Lat != 0 && e.Lon != 0 {
		return geo.Coordinate{Latitude: e.Lat, Longitude: e.Lon}, true
	}
	if e.Center != nil && e.Center.Lat != 0 && e.Center.Lon != 0 {
		return geo.Coordinate{Latitude: e.Center.Lat, Longitude: e.Center.Lon}, true
	}
	return geo.Coordinate{}, false
}
