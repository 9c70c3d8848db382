package search

// Common Models

type Total struct {
	Value int `json:"value"`
}

type Result[T any] struct {
	Hits Hits[T] `json:"hits"`
}

type Hits[T any] struct {
	Total Total     `json:"total"`
	Hits  []Item[T] `json:"hits"`
}

type Item[T any] struct {
	Index  string `json:"_index"`
	Id     string `json:"_id"`
	Source T      `json:"_source"`
}

type BulkResponse struct {
	Took   int                      `json:"took"`
	Errors bool                     `json:"errors"`
	Items  []map[string]interface{} `json:"items"`
}

// Hospital Index Specific Models

type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type HospitalDocument struct {
	Name          string   `json:"name"`
	Address       string   `json:"address"`
	Location      GeoPoint `json:"location"`
	AvailableBeds int      `json:"available_beds"`
	HasEmergency  bool     `json:"has_emergency"`
	IsOpen        bool     `json:"is_open"`
}
