package facilities

import (
	"net/url"
	"strings"
	"testing"

	"github.com/hospice/hospital-locator-api/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() []*Facility {
	return []*Facility{
		{Name: "A", Distance: 3, Beds: 10, Category: CategoryGeneral, Ownership: OwnershipGovernment, Specialties: []string{SpecialtyGeneralMedicine}},
		{Name: "B", Distance: 1, Beds: 40, Category: CategoryChildren, Ownership: OwnershipPrivate, Specialties: []string{SpecialtyPediatrics}},
		{Name: "C", Distance: 2, Beds: 25, Category: CategoryGeneral, Ownership: OwnershipPrivate, Specialties: []string{SpecialtyCardiology, SpecialtyNephrology}},
	}
}

func names(list []*Facility) []string {
	out := make([]string, 0, len(list))
	for _, f := range list {
		out = append(out, f.Name)
	}
	return out
}

func TestFilterApply(t *testing.T) {
	list := sample()

	assert.Equal(t, []string{"A", "B", "C"}, names(Filter{}.Apply(list)))
	assert.Equal(t, []string{"A", "C"}, names(Filter{Category: CategoryGeneral}.Apply(list)))
	assert.Equal(t, []string{"C"}, names(Filter{Category: CategoryGeneral, Ownership: OwnershipPrivate}.Apply(list)))
	assert.Equal(t, []string{"B", "C"}, names(Filter{Specialties: []string{SpecialtyPediatrics, SpecialtyNephrology}}.Apply(list)))
	assert.Empty(t, Filter{Ownership: OwnershipTeaching}.Apply(list))
	assert.True(t, Filter{}.Empty())
}

func TestSorts(t *testing.T) {
	list := sample()

	SortByDistance(list)
	assert.Equal(t, []string{"B", "C", "A"}, names(list))

	SortByBeds(list)
	assert.Equal(t, []string{"B", "C", "A"}, names(list))
}

func TestDirectionsURL(t *testing.T) {
	origin := geo.Coordinate{Latitude: 31.3, Longitude: 75.7}

	u, err := url.Parse(DirectionsURL(origin, &Facility{Latitude: 31.25, Longitude: 75.7}))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(u.String(), "https://www.google.com/maps/dir/"))
	assert.Equal(t, "1", u.Query().Get("api"))
	assert.Equal(t, "31.300000,75.700000", u.Query().Get("origin"))
	assert.Equal(t, "31.250000,75.700000", u.Query().Get("destination"))

	u, err = url.Parse(DirectionsURL(origin, &Facility{DestinationAddress: "Uni Hospital, Phagwara"}))
	require.NoError(t, err)
	assert.Equal(t, "Uni Hospital, Phagwara", u.Query().Get("destination"))
}
