package facilities

import "github.com/hospice/hospital-locator-api/geo"

const (
	AddressNotAvailable = "Address not available"
	PhoneNotAvailable   = "N/A"
)

const (
	DistanceEstimate = "estimate"
	DistanceRoute    = "route"
)

// Facility is built fresh for every location query and never persisted.
type Facility struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Address            string   `json:"address"`
	Phone              string   `json:"phone"`
	Website            string   `json:"website,omitempty"`
	Latitude           float64  `json:"latitude"`
	Longitude          float64  `json:"longitude"`
	Distance           float64  `json:"distance"`
	DistanceSource     string   `json:"distance_source"`
	Beds               int      `json:"beds"`
	HasEmergency       bool     `json:"has_emergency"`
	Category           string   `json:"category"`
	Specialties        []string `json:"specialties"`
	Ownership          string   `json:"ownership"`
	DestinationAddress string   `json:"destination_address,omitempty"`
	Override           bool     `json:"override,omitempty"`
	DirectionsURL      string   `json:"directions_url,omitempty"`
}

func (f *Facility) Coordinate() geo.Coordinate {
	return geo.Coordinate{Latitude: f.Latitude, Longitude: f.Longitude}
}

type Response struct {
	Status  string      `json:"status"`
	Error   string      `json:"error,omitempty"`
	Count   int         `json:"count"`
	Results []*Facility `json:"results"`
}

type Taxonomy struct {
	Categories  []string `json:"categories"`
	Specialties []string `json:"specialties"`
	Ownership   []string `json:"ownership"`
}

func Labels() Taxonomy {
	return Taxonomy{
		Categories:  append([]string(nil), Categories...),
		Specialties: append([]string(nil), Specialties...),
		Ownership:   append([]string(nil), OwnershipTypes...),
	}
}
