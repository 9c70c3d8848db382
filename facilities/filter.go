package facilities

import "sort"

// Filter holds the presentation-side predicates. Zero values match everything.
type Filter struct {
	Category    string
	Specialties []string
	Ownership   string
}

func (f Filter) Empty() bool {
	return f.Category == "" && len(f.Specialties) == 0 && f.Ownership == ""
}

func (f Filter) Match(facility *Facility) bool {
	if f.Category != "" && facility.Category != f.Category {
		return false
	}
	if len(f.Specialties) > 0 && !hasAnySpecialty(facility, f.Specialties) {
		return false
	}
	if f.Ownership != "" && facility.Ownership != f.Ownership {
		return false
	}
	return true
}

// Apply returns the matching facilities in their original order.
func (f Filter) Apply(list []*Facility) []*Facility {
	out := make([]*Facility, 0, len(list))
	for _, facility := range list {
		if f.Match(facility) {
			out = append(out, facility)
		}
	}
	return out
}

func hasAnySpecialty(facility *Facility, wanted []string) bool {
	for _, w := range wanted {
		if contains(facility.Specialties, w) {
			return true
		}
	}
	return false
}

// SortByDistance orders ascending by distance, keeping the relative order of ties.
func SortByDistance(list []*Facility) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Distance < list[j].Distance
	})
}

// SortByBeds orders by bed count, largest first.
func SortByBeds(list []*Facility) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Beds > list[j].Beds
	})
}
