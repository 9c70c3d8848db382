package search

import (
	"context"
	"fmt"

	"github.com/hospice/hospital-locator-api/geo"
	"github.com/hospice/hospital-locator-api/hospitals"
)

const maxNearbyHits = 10000

// HospitalIndex mirrors the hospital directory for geo_distance lookups.
type HospitalIndex struct {
	index     *index[HospitalDocument]
	indexName string
}

func NewHospitalIndex(connStr, indexName string) *HospitalIndex {
	if indexName == "" {
		indexName = "hospitals"
	}
	return &HospitalIndex{
		index:     NewIndex[HospitalDocument](connStr, indexName),
		indexName: indexName,
	}
}

func (l *HospitalIndex) Index(ctx context.Context, hs ...*hospitals.Hospital) error {
	items := make([]Item[HospitalDocument], 0, len(hs))
	for _, h := range hs {
		items = append(items, Item[HospitalDocument]{
			Index: l.indexName,
			Id:    h.ID,
			Source: HospitalDocument{
				Name:          h.Name,
				Address:       h.Address,
				Location:      GeoPoint{Lat: h.Latitude, Lon: h.Longitude},
				AvailableBeds: h.AvailableBeds,
				HasEmergency:  h.HasEmergency,
				IsOpen:        h.IsOpen,
			},
		})
	}
	if len(items) == 0 {
		return nil
	}
	return l.index.Bulk(ctx, items)
}

// nearbySlackMeters covers hospitals that hospitals.Nearby keeps after rounding
// their distance down to the radius.
const nearbySlackMeters = 50

func nearbyQuery(origin geo.Coordinate, radiusMeters float64) map[string]interface{} {
	return map[string]interface{}{
		"size":    maxNearbyHits,
		"_source": false,
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"filter": []map[string]interface{}{
					{
						"geo_distance": map[string]interface{}{
							"distance": fmt.Sprintf("%.0fm", radiusMeters+nearbySlackMeters),
							"location": map[string]float64{
								"lat": origin.Latitude,
								"lon": origin.Longitude,
							},
						},
					},
				},
			},
		},
	}
}

// NearbyIDs returns the ids of indexed hospitals within radiusMeters of origin.
func (l *HospitalIndex) NearbyIDs(ctx context.Context, origin geo.Coordinate, radiusMeters float64) ([]string, error) {
	res, err := l.index.Search(ctx, nearbyQuery(origin, radiusMeters))
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		ids = append(ids, hit.Id)
	}

	return ids, nil
}
