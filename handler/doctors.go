package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/hospice/hospital-locator-api/doctors"
	log "github.com/hospice/hospital-locator-api/pkg/logger"
	"github.com/hospice/hospital-locator-api/repository"
	"go.uber.org/zap"
)

type DoctorStore interface {
	CreateDoctor(d *doctors.Doctor) error
	GetDoctors() ([]*doctors.Doctor, error)
	GetDoctor(id string) (*doctors.Doctor, error)
}

type DoctorsHandler struct {
	repo DoctorStore
}

func NewDoctorsHandler(repo DoctorStore) *DoctorsHandler {
	return &DoctorsHandler{repo: repo}
}

// getDoctors godoc
// @Summary            List doctors
// @Tags               Doctor
// @Produce            json
// @Success            200 {object} doctors.Response
// @Router             /api/doctors [GET]
func (h *DoctorsHandler) HandleList(ctx *fiber.Ctx) error {
	data, err := h.repo.GetDoctors()
	if err != nil {
		log.Logger().Error("doctor listing failed", zap.Error(err))
		return fail(ctx, fiber.StatusInternalServerError, MessageServerError)
	}

	return ctx.JSON(&doctors.Response{
		Success: true,
		Count:   len(data),
		Doctors: data,
	})
}

// getDoctor godoc
// @Summary            Get a doctor
// @Tags               Doctor
// @Produce            json
// @Success            200 {object} doctors.SingleResponse
// @Failure            404 {object} handler.ErrorResponse
// @Param              id path string true "Doctor id"
// @Router             /api/doctors/{id} [GET]
func (h *DoctorsHandler) HandleGet(ctx *fiber.Ctx) error {
	d, err := h.repo.GetDoctor(ctx.Params("id"))
	if errors.Is(err, repository.ErrNotFound) {
		return fail(ctx, fiber.StatusNotFound, "Doctor not found")
	}
	if err != nil {
		log.Logger().Error("doctor lookup failed", zap.Error(err))
		return fail(ctx, fiber.StatusInternalServerError, MessageServerError)
	}

	return ctx.JSON(&doctors.SingleResponse{Success: true, Doctor: d})
}

// createDoctor godoc
// @Summary            Create a doctor
// @Tags               Doctor
// @Accept             json
// @Produce            json
// @Success            201 {object} doctors.SingleResponse
// @Failure            400 {object} handler.ErrorResponse
// @Param              body body doctors.CreateDoctorRequest true "RequestBody"
// @Security           ApiKeyAuth
// @Router             /api/doctors [POST]
func (h *DoctorsHandler) HandleCreate(ctx *fiber.Ctx) error {
	var req doctors.CreateDoctorRequest
	if ok, err := parseBody(ctx, &req); !ok {
		return err
	}

	d := req.Doctor()
	if err := h.repo.CreateDoctor(d); err != nil {
		log.Logger().Error("doctor creation failed", zap.Error(err))
		return fail(ctx, fiber.StatusInternalServerError, MessageServerError)
	}

	return ctx.Status(fiber.StatusCreated).JSON(&doctors.SingleResponse{Success: true, Doctor: d})
}
