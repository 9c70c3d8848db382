package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/hospice/hospital-locator-api/facilities"
	"github.com/hospice/hospital-locator-api/geo"
	"github.com/hospice/hospital-locator-api/locator"
)

const SessionHeaderName = "X-Session-Id"

const (
	sortDistance = "distance"
	sortBeds     = "beds"
)

// LocateRequest carries the outcome of the client's geolocation attempt.
// Error is one of "denied", "unavailable" or "unsupported" when the client
// could not obtain a position.
type LocateRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Error     string   `json:"error"`
}

func (r LocateRequest) Position() locator.Position {
	switch r.Error {
	case "":
	case "denied":
		return locator.Position{Err: locator.ErrPermissionDenied}
	case "unsupported":
		return locator.Position{Err: locator.ErrGeolocationUnsupported}
	default:
		return locator.Position{Err: locator.ErrPositionUnavailable}
	}

	if r.Latitude == nil || r.Longitude == nil {
		return locator.Position{Err: locator.ErrPositionUnavailable}
	}
	return locator.Position{Coordinate: geo.Coordinate{Latitude: *r.Latitude, Longitude: *r.Longitude}}
}

type FacilitiesHandler struct {
	finder   locator.Finder
	sessions *locator.SessionStore
}

func NewFacilitiesHandler(finder locator.Finder, sessions *locator.SessionStore) *FacilitiesHandler {
	return &FacilitiesHandler{finder: finder, sessions: sessions}
}

// nearbyFacilities godoc
// @Summary            Rank medical facilities around a coordinate
// @Tags               Facilities
// @Produce            json
// @Success            200 {object} facilities.Response
// @Failure            400 {object} handler.ErrorResponse
// @Failure            502 {object} facilities.Response
// @Param              latitude query number true "Latitude"
// @Param              longitude query number true "Longitude"
// @Param              category query string false "Category"
// @Param              specialty query []string false "Specialty" collectionFormat(multi)
// @Param              ownership query string false "Ownership"
// @Param              sort query string false "distance or beds"
// @Router             /api/facilities/nearby [GET]
func (h *FacilitiesHandler) HandleNearby(ctx *fiber.Ctx) error {
	lat, errLat := strconv.ParseFloat(ctx.Query("latitude"), 64)
	lng, errLng := strconv.ParseFloat(ctx.Query("longitude"), 64)
	origin := geo.Coordinate{Latitude: lat, Longitude: lng}
	if errLat != nil || errLng != nil || !origin.Valid() {
		return fail(ctx, fiber.StatusBadRequest, "latitude and longitude are required")
	}

	filter, sortBy, ok := parseFilter(ctx)
	if !ok {
		return fail(ctx, fiber.StatusBadRequest, "Unknown filter value")
	}

	result := h.finder.FindNearbyFacilities(ctx.UserContext(), origin)
	list := present(filter.Apply(result.Facilities), sortBy)

	status := fiber.StatusOK
	if result.Status == locator.StatusError {
		status = fiber.StatusBadGateway
	}

	return ctx.Status(status).JSON(&facilities.Response{
		Status:  string(result.Status),
		Error:   result.Error,
		Count:   len(list),
		Results: list,
	})
}

// locateFacilities godoc
// @Summary            Run a locate for the client session
// @Description        Moves the session through loading to ready or error and returns its state.
// @Tags               Facilities
// @Accept             json
// @Produce            json
// @Success            200 {object} locator.Snapshot
// @Param              X-Session-Id header string false "Session id"
// @Param              body body handler.LocateRequest true "RequestBody"
// @Router             /api/facilities/locate [POST]
func (h *FacilitiesHandler) HandleLocate(ctx *fiber.Ctx) error {
	var req LocateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fail(ctx, fiber.StatusBadRequest, MessageInvalidBody)
	}

	session := h.sessions.Get(ctx.Get(SessionHeaderName))
	ctx.Set(SessionHeaderName, session.ID())

	snapshot := session.Locate(ctx.UserContext(), h.finder, req.Position())
	return ctx.JSON(snapshot)
}

// sessionFacilities godoc
// @Summary            Filter the last result of a client session
// @Tags               Facilities
// @Produce            json
// @Success            200 {object} locator.Snapshot
// @Failure            404 {object} handler.ErrorResponse
// @Param              X-Session-Id header string true "Session id"
// @Param              category query string false "Category"
// @Param              specialty query []string false "Specialty" collectionFormat(multi)
// @Param              ownership query string false "Ownership"
// @Param              sort query string false "distance or beds"
// @Router             /api/facilities/session [GET]
func (h *FacilitiesHandler) HandleSession(ctx *fiber.Ctx) error {
	session, ok := h.sessions.Lookup(ctx.Get(SessionHeaderName))
	if !ok {
		return fail(ctx, fiber.StatusNotFound, "Session not found")
	}

	filter, sortBy, ok := parseFilter(ctx)
	if !ok {
		return fail(ctx, fiber.StatusBadRequest, "Unknown filter value")
	}

	snapshot := session.Snapshot(filter)
	snapshot.Facilities = present(snapshot.Facilities, sortBy)
	return ctx.JSON(snapshot)
}

// taxonomy godoc
// @Summary            List the category, specialty and ownership labels
// @Tags               Facilities
// @Produce            json
// @Success            200 {object} facilities.Taxonomy
// @Router             /api/facilities/taxonomy [GET]
func HandleTaxonomy(ctx *fiber.Ctx) error {
	return ctx.JSON(facilities.Labels())
}

func parseFilter(ctx *fiber.Ctx) (facilities.Filter, string, bool) {
	filter := facilities.Filter{
		Category:  ctx.Query("category"),
		Ownership: ctx.Query("ownership"),
	}
	// specialty labels contain commas, so they come as repeated parameters
	for _, v := range ctx.Context().QueryArgs().PeekMulti("specialty") {
		filter.Specialties = append(filter.Specialties, string(v))
	}

	if filter.Category != "" && !facilities.IsCategory(filter.Category) {
		return filter, "", false
	}
	if filter.Ownership != "" && !facilities.IsOwnership(filter.Ownership) {
		return filter, "", false
	}
	for _, s := range filter.Specialties {
		if !facilities.IsSpecialty(s) {
			return filter, "", false
		}
	}

	sortBy := ctx.Query("sort", sortDistance)
	if sortBy != sortDistance && sortBy != sortBeds {
		return filter, "", false
	}
	return filter, sortBy, true
}

// present orders an already filtered list. Distance order is the pipeline's
// own order, so only the bed sort touches it.
func present(list []*facilities.Facility, sortBy string) []*facilities.Facility {
	if sortBy == sortBeds {
		facilities.SortByBeds(list)
	}
	return list
}
