package handler

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/hospice/hospital-locator-api/geo"
	"github.com/hospice/hospital-locator-api/hospitals"
	log "github.com/hospice/hospital-locator-api/pkg/logger"
	"github.com/hospice/hospital-locator-api/repository"
	"go.uber.org/zap"
)

type HospitalStore interface {
	CreateHospital(h *hospitals.Hospital) error
	GetHospitals(ids []string) ([]*hospitals.Hospital, error)
	UpdateHospital(id string, req hospitals.UpdateHospitalRequest) (*hospitals.Hospital, error)
}

// HospitalIndex is the optional geo index in front of the store.
type HospitalIndex interface {
	Index(ctx context.Context, hs ...*hospitals.Hospital) error
	NearbyIDs(ctx context.Context, origin geo.Coordinate, radiusMeters float64) ([]string, error)
}

type HospitalsHandler struct {
	repo  HospitalStore
	index HospitalIndex
}

// NewHospitalsHandler scans the store for nearby queries when index is nil.
func NewHospitalsHandler(repo HospitalStore, index HospitalIndex) *HospitalsHandler {
	return &HospitalsHandler{repo: repo, index: index}
}

// createHospital godoc
// @Summary            Create a hospital
// @Tags               Hospital
// @Accept             json
// @Produce            json
// @Success            201 {object} hospitals.SingleResponse
// @Failure            400 {object} handler.ErrorResponse
// @Param              body body hospitals.CreateHospitalRequest true "RequestBody"
// @Security           ApiKeyAuth
// @Router             /api/hospitals [POST]
func (h *HospitalsHandler) HandleCreate(ctx *fiber.Ctx) error {
	var req hospitals.CreateHospitalRequest
	if ok, err := parseBody(ctx, &req); !ok {
		return err
	}
	if !req.Complete() {
		return fail(ctx, fiber.StatusBadRequest, MessageMissingFields)
	}

	hospital := req.Hospital()
	if err := h.repo.CreateHospital(hospital); err != nil {
		log.Logger().Error("hospital creation failed", zap.Error(err))
		return fail(ctx, fiber.StatusInternalServerError, MessageServerError)
	}

	if h.index != nil {
		if err := h.index.Index(ctx.UserContext(), hospital); err != nil {
			log.Logger().Warn("hospital could not be indexed", zap.String("id", hospital.ID), zap.Error(err))
		}
	}

	return ctx.Status(fiber.StatusCreated).JSON(&hospitals.SingleResponse{Success: true, Hospital: hospital})
}

// getHospitals godoc
// @Summary            List hospitals
// @Tags               Hospital
// @Produce            json
// @Success            200 {object} hospitals.Response
// @Router             /api/hospitals [GET]
func (h *HospitalsHandler) HandleList(ctx *fiber.Ctx) error {
	data, err := h.repo.GetHospitals(nil)
	if err != nil {
		log.Logger().Error("hospital listing failed", zap.Error(err))
		return fail(ctx, fiber.StatusInternalServerError, MessageServerError)
	}

	return ctx.JSON(&hospitals.Response{
		Success:   true,
		Count:     len(data),
		Hospitals: data,
	})
}

// updateHospital godoc
// @Summary            Update bed count, open or emergency status
// @Tags               Hospital
// @Accept             json
// @Produce            json
// @Success            200 {object} hospitals.SingleResponse
// @Failure            400 {object} handler.ErrorResponse
// @Failure            404 {object} handler.ErrorResponse
// @Param              id path string true "Hospital id"
// @Param              body body hospitals.UpdateHospitalRequest true "RequestBody"
// @Security           ApiKeyAuth
// @Router             /api/hospitals/{id} [PUT]
func (h *HospitalsHandler) HandleUpdate(ctx *fiber.Ctx) error {
	var req hospitals.UpdateHospitalRequest
	if ok, err := parseBody(ctx, &req); !ok {
		return err
	}
	if req.Empty() {
		return fail(ctx, fiber.StatusBadRequest, "Nothing to update")
	}

	hospital, err := h.repo.UpdateHospital(ctx.Params("id"), req)
	if errors.Is(err, repository.ErrNotFound) {
		return fail(ctx, fiber.StatusNotFound, "Hospital not found")
	}
	if err != nil {
		log.Logger().Error("hospital update failed", zap.Error(err))
		return fail(ctx, fiber.StatusInternalServerError, MessageServerError)
	}

	if h.index != nil {
		if err := h.index.Index(ctx.UserContext(), hospital); err != nil {
			log.Logger().Warn("hospital could not be reindexed", zap.String("id", hospital.ID), zap.Error(err))
		}
	}

	return ctx.JSON(&hospitals.SingleResponse{Success: true, Hospital: hospital})
}

// nearbyHospitals godoc
// @Summary            Hospitals within a radius, closest first
// @Tags               Hospital
// @Accept             json
// @Produce            json
// @Success            200 {object} hospitals.NearbyResponse
// @Failure            400 {object} handler.ErrorResponse
// @Param              body body hospitals.NearbyRequest true "RequestBody"
// @Router             /api/hospitals/nearby [POST]
func (h *HospitalsHandler) HandleNearby(ctx *fiber.Ctx) error {
	var req hospitals.NearbyRequest
	if ok, err := parseBody(ctx, &req); !ok {
		return err
	}

	origin := geo.Coordinate{Latitude: req.Latitude, Longitude: req.Longitude}
	if !origin.Valid() || (req.Latitude == 0 && req.Longitude == 0) {
		return fail(ctx, fiber.StatusBadRequest, "latitude and longitude are required")
	}
	radius := req.Radius
	if radius <= 0 {
		radius = hospitals.DefaultRadius
	}

	candidates, err := h.candidates(ctx.UserContext(), origin, radius)
	if err != nil {
		log.Logger().Error("nearby hospital query failed", zap.Error(err))
		return fail(ctx, fiber.StatusInternalServerError, MessageServerError)
	}

	data := hospitals.Nearby(origin, radius, candidates)
	return ctx.JSON(&hospitals.NearbyResponse{
		Success:   true,
		Count:     len(data),
		Hospitals: data,
	})
}

// candidates narrows the store scan with the index when one is available.
// Index failures fall back to a full scan.
func (h *HospitalsHandler) candidates(ctx context.Context, origin geo.Coordinate, radius float64) ([]*hospitals.Hospital, error) {
	if h.index == nil {
		return h.repo.GetHospitals(nil)
	}

	ids, err := h.index.NearbyIDs(ctx, origin, radius)
	if err != nil {
		log.Logger().Warn("hospital index unavailable, scanning store", zap.Error(err))
		return h.repo.GetHospitals(nil)
	}
	if len(ids) == 0 {
		return []*hospitals.Hospital{}, nil
	}
	return h.repo.GetHospitals(ids)
}
