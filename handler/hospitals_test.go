package handler

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/hospice/hospital-locator-api/geo"
	"github.com/hospice/hospital-locator-api/hospitals"
	"github.com/hospice/hospital-locator-api/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryHospitals struct {
	list  []*hospitals.Hospital
	asked [][]string
}

func (m *memoryHospitals) CreateHospital(h *hospitals.Hospital) error {
	h.ID = fmt.Sprintf("h-%d", len(m.list)+1)
	m.list = append(m.list, h)
	return nil
}

func (m *memoryHospitals) GetHospitals(ids []string) ([]*hospitals.Hospital, error) {
	m.asked = append(m.asked, ids)
	if ids == nil {
		return append([]*hospitals.Hospital{}, m.list...), nil
	}
	out := []*hospitals.Hospital{}
	for _, h := range m.list {
		for _, id := range ids {
			if h.ID == id {
				out = append(out, h)
			}
		}
	}
	return out, nil
}

func (m *memoryHospitals) UpdateHospital(id string, req hospitals.UpdateHospitalRequest) (*hospitals.Hospital, error) {
	for _, h := range m.list {
		if h.ID != id {
			continue
		}
		if req.AvailableBeds != nil {
			h.AvailableBeds = *req.AvailableBeds
		}
		if req.IsOpen != nil {
			h.IsOpen = *req.IsOpen
		}
		if req.HasEmergency != nil {
			h.HasEmergency = *req.HasEmergency
		}
		return h, nil
	}
	return nil, repository.ErrNotFound
}

type fakeIndex struct {
	indexed []string
	ids     []string
	err     error
}

func (f *fakeIndex) Index(_ context.Context, hs ...*hospitals.Hospital) error {
	for _, h := range hs {
		f.indexed = append(f.indexed, h.ID)
	}
	return nil
}

func (f *fakeIndex) NearbyIDs(context.Context, geo.Coordinate, float64) ([]string, error) {
	return f.ids, f.err
}

func hospitalsApp(store HospitalStore, index HospitalIndex) *fiber.App {
	h := NewHospitalsHandler(store, index)
	app := fiber.New()
	app.Get("/api/hospitals", h.HandleList)
	app.Post("/api/hospitals", h.HandleCreate)
	app.Post("/api/hospitals/nearby", h.HandleNearby)
	app.Put("/api/hospitals/:id", h.HandleUpdate)
	return app
}

func seedHospitals() *memoryHospitals {
	store := &memoryHospitals{}
	_ = store.CreateHospital(&hospitals.Hospital{Name: "Civil Hospital Phagwara", Latitude: 31.2240, Longitude: 75.7708, IsOpen: true})
	_ = store.CreateHospital(&hospitals.Hospital{Name: "Uni Hospital", Latitude: 31.2560, Longitude: 75.7051, IsOpen: true})
	_ = store.CreateHospital(&hospitals.Hospital{Name: "Jalandhar Care", Latitude: 31.3260, Longitude: 75.5762, IsOpen: true})
	return store
}

func TestCreateHospital(t *testing.T) {
	store := &memoryHospitals{}
	index := &fakeIndex{}
	app := hospitalsApp(store, index)

	res := call(t, app, "POST", "/api/hospitals", hospitals.CreateHospitalRequest{
		Name: "Uni Hospital", Address: "LPU, Phagwara", Latitude: 31.2560, Longitude: 75.7051,
	}, nil)
	require.Equal(t, fiber.StatusCreated, res.status, string(res.body))

	var out hospitals.SingleResponse
	res.decode(t, &out)
	assert.True(t, out.Hospital.HasEmergency)
	assert.True(t, out.Hospital.IsOpen)
	assert.Zero(t, out.Hospital.AvailableBeds)
	assert.Equal(t, []string{"h-1"}, index.indexed)
}

func TestCreateHospitalMissingFields(t *testing.T) {
	store := &memoryHospitals{}
	app := hospitalsApp(store, nil)

	res := call(t, app, "POST", "/api/hospitals", hospitals.CreateHospitalRequest{Name: "Uni Hospital", Latitude: 31.2560, Longitude: 75.7051}, nil)
	assert.Equal(t, fiber.StatusBadRequest, res.status)
	assert.Equal(t, MessageMissingFields, res.message(t))

	beds := -3
	res = call(t, app, "POST", "/api/hospitals", hospitals.CreateHospitalRequest{
		Name: "Uni Hospital", Address: "LPU", Latitude: 31.2560, Longitude: 75.7051, AvailableBeds: &beds,
	}, nil)
	assert.Equal(t, fiber.StatusBadRequest, res.status)
	assert.Empty(t, store.list)
}

func TestUpdateHospital(t *testing.T) {
	store := seedHospitals()
	index := &fakeIndex{}
	app := hospitalsApp(store, index)

	beds, open := 7, false
	res := call(t, app, "PUT", "/api/hospitals/h-2", hospitals.UpdateHospitalRequest{AvailableBeds: &beds, IsOpen: &open}, nil)
	require.Equal(t, fiber.StatusOK, res.status, string(res.body))

	var out hospitals.SingleResponse
	res.decode(t, &out)
	assert.Equal(t, 7, out.Hospital.AvailableBeds)
	assert.False(t, out.Hospital.IsOpen)
	assert.Equal(t, []string{"h-2"}, index.indexed)

	res = call(t, app, "PUT", "/api/hospitals/h-9", hospitals.UpdateHospitalRequest{AvailableBeds: &beds}, nil)
	assert.Equal(t, fiber.StatusNotFound, res.status)

	res = call(t, app, "PUT", "/api/hospitals/h-2", hospitals.UpdateHospitalRequest{}, nil)
	assert.Equal(t, fiber.StatusBadRequest, res.status)
}

func TestListHospitals(t *testing.T) {
	app := hospitalsApp(seedHospitals(), nil)

	var out hospitals.Response
	call(t, app, "GET", "/api/hospitals", nil, nil).decode(t, &out)
	assert.Equal(t, 3, out.Count)
}

func hospitalNames(list []*hospitals.NearbyHospital) []string {
	out := make([]string, 0, len(list))
	for _, h := range list {
		out = append(out, h.Name)
	}
	return out
}

func TestNearbyHospitalsScan(t *testing.T) {
	store := seedHospitals()
	app := hospitalsApp(store, nil)

	res := call(t, app, "POST", "/api/hospitals/nearby", hospitals.NearbyRequest{Latitude: 31.2500, Longitude: 75.7000}, nil)
	require.Equal(t, fiber.StatusOK, res.status, string(res.body))

	var out hospitals.NearbyResponse
	res.decode(t, &out)
	assert.Equal(t, []string{"Uni Hospital", "Civil Hospital Phagwara"}, hospitalNames(out.Hospitals))
	assert.Equal(t, 0.8, out.Hospitals[0].Distance)
	assert.Equal(t, [][]string{nil}, store.asked)
}

func TestNearbyHospitalsUsesIndex(t *testing.T) {
	store := seedHospitals()
	app := hospitalsApp(store, &fakeIndex{ids: []string{"h-1"}})

	var out hospitals.NearbyResponse
	call(t, app, "POST", "/api/hospitals/nearby", hospitals.NearbyRequest{Latitude: 31.25, Longitude: 75.70}, nil).decode(t, &out)
	assert.Equal(t, []string{"Civil Hospital Phagwara"}, hospitalNames(out.Hospitals))
	assert.Equal(t, [][]string{{"h-1"}}, store.asked)

	empty := seedHospitals()
	app = hospitalsApp(empty, &fakeIndex{ids: []string{}})
	call(t, app, "POST", "/api/hospitals/nearby", hospitals.NearbyRequest{Latitude: 31.25, Longitude: 75.70}, nil).decode(t, &out)
	assert.Empty(t, out.Hospitals)
	assert.Empty(t, empty.asked)
}

func TestNearbyHospitalsIndexFallback(t *testing.T) {
	store := seedHospitals()
	app := hospitalsApp(store, &fakeIndex{err: errors.New("connection refused")})

	var out hospitals.NearbyResponse
	call(t, app, "POST", "/api/hospitals/nearby", hospitals.NearbyRequest{Latitude: 31.25, Longitude: 75.70, Radius: 50000}, nil).decode(t, &out)
	assert.Equal(t, 3, out.Count)
	assert.Equal(t, [][]string{nil}, store.asked)
}

func TestNearbyHospitalsRequiresCoordinates(t *testing.T) {
	app := hospitalsApp(seedHospitals(), nil)

	res := call(t, app, "POST", "/api/hospitals/nearby", hospitals.NearbyRequest{}, nil)
	assert.Equal(t, fiber.StatusBadRequest, res.status)
}
