package hospitals

import (
	"sort"
	"time"

	"github.com/hospice/hospital-locator-api/geo"
)

const DefaultRadius = 10000

type Hospital struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Address       string    `json:"address"`
	Phone         string    `json:"phone,omitempty"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	AvailableBeds int       `json:"availableBeds"`
	HasEmergency  bool      `json:"hasEmergency"`
	IsOpen        bool      `json:"isOpen"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (h *Hospital) Coordinate() geo.Coordinate {
	return geo.Coordinate{Latitude: h.Latitude, Longitude: h.Longitude}
}

type CreateHospitalRequest struct {
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	Phone         string  `json:"phone"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	AvailableBeds *int    `json:"availableBeds" validate:"omitempty,gte=0"`
	HasEmergency  *bool   `json:"hasEmergency"`
	IsOpen        *bool   `json:"isOpen"`
}

// Complete reports whether the mandatory fields are set. A zero coordinate
// counts as missing.
func (r CreateHospitalRequest) Complete() bool {
	return r.Name != "" && r.Address != "" && r.Latitude != 0 && r.Longitude != 0
}

func (r CreateHospitalRequest) Hospital() *Hospital {
	h := &Hospital{
		Name:         r.Name,
		Address:      r.Address,
		Phone:        r.Phone,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
		HasEmergency: true,
		IsOpen:       true,
	}
	if r.AvailableBeds != nil {
		h.AvailableBeds = *r.AvailableBeds
	}
	if r.HasEmergency != nil {
		h.HasEmergency = *r.HasEmergency
	}
	if r.IsOpen != nil {
		h.IsOpen = *r.IsOpen
	}
	return h
}

// UpdateHospitalRequest changes only the fields that are present.
type UpdateHospitalRequest struct {
	AvailableBeds *int  `json:"availableBeds" validate:"omitempty,gte=0"`
	IsOpen        *bool `json:"isOpen"`
	HasEmergency  *bool `json:"hasEmergency"`
}

func (r UpdateHospitalRequest) Empty() bool {
	return r.AvailableBeds == nil && r.IsOpen == nil && r.HasEmergency == nil
}

type NearbyRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Radius    float64 `json:"radius"`
}

type NearbyHospital struct {
	Hospital
	Distance float64 `json:"distance"`
}

type Response struct {
	Success   bool        `json:"success"`
	Count     int         `json:"count"`
	Hospitals []*Hospital `json:"hospitals"`
}

type NearbyResponse struct {
	Success   bool              `json:"success"`
	Count     int               `json:"count"`
	Hospitals []*NearbyHospital `json:"hospitals"`
}

type SingleResponse struct {
	Success  bool      `json:"success"`
	Hospital *Hospital `json:"hospital"`
}

// Nearby returns the hospitals within radiusMeters of origin, closest first,
// with distances in kilometers rounded to one decimal.
func Nearby(origin geo.Coordinate, radiusMeters float64, list []*Hospital) []*NearbyHospital {
	if radiusMeters <= 0 {
		radiusMeters = DefaultRadius
	}
	radiusKm := radiusMeters / 1000

	out := make([]*NearbyHospital, 0, len(list))
	for _, h := range list {
		distance := geo.Round(geo.Haversine(origin, h.Coordinate()), 1)
		if distance > radiusKm {
			continue
		}
		out = append(out, &NearbyHospital{Hospital: *h, Distance: distance})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Distance < out[j].Distance
	})

	return out
}
