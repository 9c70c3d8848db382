package handler

import (
	"context"
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/hospice/hospital-locator-api/facilities"
	"github.com/hospice/hospital-locator-api/geo"
	"github.com/hospice/hospital-locator-api/locator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFinder struct {
	result  locator.Result
	origins []geo.Coordinate
}

func (s *stubFinder) FindNearbyFacilities(_ context.Context, origin geo.Coordinate) locator.Result {
	s.origins = append(s.origins, origin)
	return s.result
}

func readyResult() locator.Result {
	return locator.Result{
		Status: locator.StatusReady,
		Facilities: []*facilities.Facility{
			{ID: "node/1", Name: "City Clinic", Distance: 0.8, Beds: 12, Category: facilities.CategoryClinic,
				Specialties: []string{facilities.SpecialtyGeneralMedicine}, Ownership: facilities.OwnershipPrivate},
			{ID: "node/2", Name: "Heart Care", Distance: 1.5, Beds: 40, Category: facilities.CategorySpecialty,
				Specialties: []string{facilities.SpecialtyCardiology}, Ownership: facilities.OwnershipPrivate},
			{ID: "way/3", Name: "Civil Hospital", Distance: 3.2, Beds: 55, Category: facilities.CategoryGeneral,
				Specialties: []string{facilities.SpecialtyGeneralMedicine, facilities.SpecialtyENT}, Ownership: facilities.OwnershipGovernment},
		},
	}
}

func facilitiesApp(finder locator.Finder) (*fiber.App, *locator.SessionStore) {
	sessions := locator.NewSessionStore(0)
	h := NewFacilitiesHandler(finder, sessions)

	app := fiber.New()
	app.Get("/api/facilities/nearby", h.HandleNearby)
	app.Post("/api/facilities/locate", h.HandleLocate)
	app.Get("/api/facilities/session", h.HandleSession)
	app.Get("/api/facilities/taxonomy", HandleTaxonomy)
	return app, sessions
}

func names(list []*facilities.Facility) []string {
	out := make([]string, 0, len(list))
	for _, f := range list {
		out = append(out, f.Name)
	}
	return out
}

func TestNearbyRequiresCoordinates(t *testing.T) {
	finder := &stubFinder{result: readyResult()}
	app, _ := facilitiesApp(finder)

	res := call(t, app, "GET", "/api/facilities/nearby?latitude=31.25", nil, nil)
	assert.Equal(t, fiber.StatusBadRequest, res.status)

	res = call(t, app, "GET", "/api/facilities/nearby?latitude=95&longitude=75", nil, nil)
	assert.Equal(t, fiber.StatusBadRequest, res.status)
	assert.Empty(t, finder.origins)
}

func TestNearbyReturnsPipelineOrder(t *testing.T) {
	finder := &stubFinder{result: readyResult()}
	app, _ := facilitiesApp(finder)

	res := call(t, app, "GET", "/api/facilities/nearby?latitude=31.25&longitude=75.7", nil, nil)
	require.Equal(t, fiber.StatusOK, res.status)

	var out facilities.Response
	res.decode(t, &out)
	assert.Equal(t, "ready", out.Status)
	assert.Equal(t, 3, out.Count)
	assert.Equal(t, []string{"City Clinic", "Heart Care", "Civil Hospital"}, names(out.Results))
	assert.Equal(t, []geo.Coordinate{{Latitude: 31.25, Longitude: 75.7}}, finder.origins)
}

func TestNearbyFiltersAndSorts(t *testing.T) {
	finder := &stubFinder{result: readyResult()}
	app, _ := facilitiesApp(finder)

	q := url.Values{}
	q.Set("latitude", "31.25")
	q.Set("longitude", "75.7")
	q.Set("ownership", facilities.OwnershipPrivate)
	q.Set("sort", "beds")

	var out facilities.Response
	call(t, app, "GET", "/api/facilities/nearby?"+q.Encode(), nil, nil).decode(t, &out)
	assert.Equal(t, []string{"Heart Care", "City Clinic"}, names(out.Results))

	q = url.Values{}
	q.Set("latitude", "31.25")
	q.Set("longitude", "75.7")
	q.Add("specialty", facilities.SpecialtyENT)
	q.Add("specialty", facilities.SpecialtyCardiology)

	call(t, app, "GET", "/api/facilities/nearby?"+q.Encode(), nil, nil).decode(t, &out)
	assert.Equal(t, []string{"Heart Care", "Civil Hospital"}, names(out.Results))
}

func TestNearbyRejectsUnknownLabels(t *testing.T) {
	app, _ := facilitiesApp(&stubFinder{result: readyResult()})

	res := call(t, app, "GET", "/api/facilities/nearby?latitude=1&longitude=2&category=Spa", nil, nil)
	assert.Equal(t, fiber.StatusBadRequest, res.status)

	res = call(t, app, "GET", "/api/facilities/nearby?latitude=1&longitude=2&sort=name", nil, nil)
	assert.Equal(t, fiber.StatusBadRequest, res.status)
}

func TestNearbyUpstreamFailure(t *testing.T) {
	finder := &stubFinder{result: locator.Result{Status: locator.StatusError, Error: locator.MessageUpstreamFailed}}
	app, _ := facilitiesApp(finder)

	res := call(t, app, "GET", "/api/facilities/nearby?latitude=31.25&longitude=75.7", nil, nil)
	assert.Equal(t, fiber.StatusBadGateway, res.status)

	var out facilities.Response
	res.decode(t, &out)
	assert.Equal(t, "error", out.Status)
	assert.Equal(t, locator.MessageUpstreamFailed, out.Error)
	assert.Empty(t, out.Results)
}

func TestLocateDeniedPosition(t *testing.T) {
	finder := &stubFinder{result: readyResult()}
	app, _ := facilitiesApp(finder)

	res := call(t, app, "POST", "/api/facilities/locate", LocateRequest{Error: "denied"}, nil)
	require.Equal(t, fiber.StatusOK, res.status)

	var snapshot locator.Snapshot
	res.decode(t, &snapshot)
	assert.Equal(t, locator.StatusError, snapshot.Status)
	assert.Equal(t, locator.MessageLocationDenied, snapshot.Error)
	assert.Empty(t, snapshot.Facilities)
	assert.NotEmpty(t, res.header(SessionHeaderName))
	assert.Empty(t, finder.origins)
}

func TestLocatePositionErrors(t *testing.T) {
	lat := 31.25
	cases := map[string]struct {
		req  LocateRequest
		want error
	}{
		"unsupported":       {LocateRequest{Error: "unsupported"}, locator.ErrGeolocationUnsupported},
		"timeout":           {LocateRequest{Error: "timeout"}, locator.ErrPositionUnavailable},
		"missing longitude": {LocateRequest{Latitude: &lat}, locator.ErrPositionUnavailable},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, tc.req.Position().Err, tc.want)
		})
	}
}

func TestLocateThenFilterSession(t *testing.T) {
	finder := &stubFinder{result: readyResult()}
	app, sessions := facilitiesApp(finder)

	lat, lng := 31.25, 75.7
	res := call(t, app, "POST", "/api/facilities/locate", LocateRequest{Latitude: &lat, Longitude: &lng}, nil)
	require.Equal(t, fiber.StatusOK, res.status)

	id := res.header(SessionHeaderName)
	require.NotEmpty(t, id)
	assert.Equal(t, 1, sessions.Len())

	var snapshot locator.Snapshot
	res.decode(t, &snapshot)
	assert.Equal(t, locator.StatusReady, snapshot.Status)
	assert.Len(t, snapshot.Facilities, 3)

	q := url.Values{}
	q.Set("category", facilities.CategoryGeneral)
	res = call(t, app, "GET", "/api/facilities/session?"+q.Encode(), nil, map[string]string{SessionHeaderName: id})
	require.Equal(t, fiber.StatusOK, res.status)
	res.decode(t, &snapshot)
	assert.Equal(t, []string{"Civil Hospital"}, names(snapshot.Facilities))

	// same session id reuses the session
	call(t, app, "POST", "/api/facilities/locate", LocateRequest{Error: "denied"}, map[string]string{SessionHeaderName: id})
	assert.Equal(t, 1, sessions.Len())
	session, ok := sessions.Lookup(id)
	require.True(t, ok)
	assert.Equal(t, locator.StatusError, session.Status())
}

func TestSessionNotFound(t *testing.T) {
	app, _ := facilitiesApp(&stubFinder{})

	res := call(t, app, "GET", "/api/facilities/session", nil, map[string]string{SessionHeaderName: "missing"})
	assert.Equal(t, fiber.StatusNotFound, res.status)
}

func TestTaxonomy(t *testing.T) {
	app, _ := facilitiesApp(&stubFinder{})

	var out facilities.Taxonomy
	call(t, app, "GET", "/api/facilities/taxonomy", nil, nil).decode(t, &out)
	assert.Len(t, out.Categories, 8)
	assert.Len(t, out.Specialties, 16)
	assert.Len(t, out.Ownership, 4)
}
