package overrides

import (
	"strconv"
	"strings"

	"github.com/hospice/hospital-locator-api/facilities"
	"github.com/hospice/hospital-locator-api/geo"
)

// Merge prepends the records of every region containing origin and drops
// list entries that share a name with one of them. Outside every region
// list is returned as is.
func (t *Table) Merge(origin geo.Coordinate, list []*facilities.Facility) []*facilities.Facility {
	if t == nil {
		return list
	}

	var injected []*facilities.Facility
	names := make(map[string]struct{})

	for _, region := range t.Regions {
		if !region.Bounds.Contains(origin) {
			continue
		}
		for i, record := range region.Records {
			key := nameKey(record.Name)
			if _, ok := names[key]; ok {
				continue
			}
			names[key] = struct{}{}
			injected = append(injected, record.facility(region.Name, i, origin))
		}
	}

	if len(injected) == 0 {
		return list
	}

	merged := make([]*facilities.Facility, 0, len(injected)+len(list))
	merged = append(merged, injected...)
	for _, f := range list {
		if _, ok := names[nameKey(f.Name)]; ok {
			continue
		}
		merged = append(merged, f)
	}

	return merged
}

func (r Record) facility(region string, index int, origin geo.Coordinate) *facilities.Facility {
	f := &facilities.Facility{
		ID:                 "override/" + strings.ReplaceAll(nameKey(region), " ", "-") + "/" + strconv.Itoa(index),
		Name:               r.Name,
		Address:            r.Address,
		Phone:              r.Phone,
		Website:            r.Website,
		Latitude:           r.Latitude,
		Longitude:          r.Longitude,
		DistanceSource:     facilities.DistanceEstimate,
		Beds:               r.Beds,
		HasEmergency:       r.HasEmergency,
		Category:           r.Category,
		Specialties:        append([]string(nil), r.Specialties...),
		Ownership:          r.Ownership,
		DestinationAddress: r.DestinationAddress,
		Override:           true,
	}
	f.Distance = geo.Round(geo.Haversine(origin, f.Coordinate()), 2)
	return f
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
