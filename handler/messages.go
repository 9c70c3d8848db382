package handler

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/hospice/hospital-locator-api/doctors"
	"github.com/hospice/hospital-locator-api/messages"
	"github.com/hospice/hospital-locator-api/messaging"
	log "github.com/hospice/hospital-locator-api/pkg/logger"
	"github.com/hospice/hospital-locator-api/repository"
	"go.uber.org/zap"
)

type MessageStore interface {
	GetDoctor(id string) (*doctors.Doctor, error)
	CreateMessage(m *messages.Message) error
	GetMessages(doctorID string) ([]*messages.Message, error)
}

// Receiver records inbound gateway messages and picks the auto-reply.
type Receiver interface {
	Receive(ctx context.Context, from, body string) (string, error)
}

type MessagesHandler struct {
	repo    MessageStore
	gateway messaging.Gateway
	relay   Receiver
}

// NewMessagesHandler answers send requests with 503 when gateway is nil.
func NewMessagesHandler(repo MessageStore, gateway messaging.Gateway, relay Receiver) *MessagesHandler {
	return &MessagesHandler{repo: repo, gateway: gateway, relay: relay}
}

// sendMessage godoc
// @Summary            Send a WhatsApp message to a doctor
// @Tags               Message
// @Accept             json
// @Produce            json
// @Success            201 {object} messages.SingleResponse
// @Failure            400 {object} handler.ErrorResponse
// @Failure            404 {object} handler.ErrorResponse
// @Failure            502 {object} handler.ErrorResponse
// @Param              body body messages.SendRequest true "RequestBody"
// @Router             /api/whatsapp/send [POST]
func (h *MessagesHandler) HandleSend(ctx *fiber.Ctx) error {
	var req messages.SendRequest
	if ok, err := parseBody(ctx, &req); !ok {
		return err
	}

	if h.gateway == nil {
		return fail(ctx, fiber.StatusServiceUnavailable, "Messaging is not configured")
	}

	doctor, err := h.repo.GetDoctor(req.DoctorID)
	if errors.Is(err, repository.ErrNotFound) {
		return fail(ctx, fiber.StatusNotFound, "Doctor not found")
	}
	if err != nil {
		log.Logger().Error("doctor lookup failed", zap.Error(err))
		return fail(ctx, fiber.StatusInternalServerError, MessageServerError)
	}
	if doctor.Phone == "" {
		return fail(ctx, fiber.StatusBadRequest, "Doctor has no phone number")
	}

	sid, err := h.gateway.Send(ctx.UserContext(), doctor.Phone, req.Message)
	if err != nil {
		log.Logger().Error("message delivery failed",
			zap.String("doctor_id", doctor.ID),
			log.Phone("to", doctor.Phone),
			zap.Error(err),
		)
		return fail(ctx, fiber.StatusBadGateway, "Failed to send message")
	}

	m := &messages.Message{DoctorID: doctor.ID, Body: req.Message, Sender: messages.SenderPatient}
	if err := h.repo.CreateMessage(m); err != nil {
		log.Logger().Error("sent message could not be stored", zap.String("sid", sid), zap.Error(err))
		return fail(ctx, fiber.StatusInternalServerError, MessageServerError)
	}

	return ctx.Status(fiber.StatusCreated).JSON(&messages.SingleResponse{Success: true, Message: m})
}

// saveMessage godoc
// @Summary            Store a message without sending it
// @Tags               Message
// @Accept             json
// @Produce            json
// @Success            201 {object} messages.SingleResponse
// @Failure            400 {object} handler.ErrorResponse
// @Failure            404 {object} handler.ErrorResponse
// @Param              body body messages.SaveRequest true "RequestBody"
// @Router             /api/whatsapp/save [POST]
func (h *MessagesHandler) HandleSave(ctx *fiber.Ctx) error {
	var req messages.SaveRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fail(ctx, fiber.StatusBadRequest, MessageInvalidBody)
	}
	if !req.Complete() {
		return fail(ctx, fiber.StatusBadRequest, MessageMissingFields)
	}

	m := &messages.Message{DoctorID: req.DoctorID, Body: req.Message, Sender: req.Sender}
	err := h.repo.CreateMessage(m)
	if errors.Is(err, repository.ErrNotFound) {
		return fail(ctx, fiber.StatusNotFound, "Doctor not found")
	}
	if err != nil {
		log.Logger().Error("message save failed", zap.Error(err))
		return fail(ctx, fiber.StatusInternalServerError, MessageServerError)
	}

	return ctx.Status(fiber.StatusCreated).JSON(&messages.SingleResponse{Success: true, Message: m})
}

// getMessages godoc
// @Summary            List the conversation with a doctor
// @Tags               Message
// @Produce            json
// @Success            200 {object} messages.Response
// @Param              doctorId path string true "Doctor id"
// @Router             /api/whatsapp/{doctorId} [GET]
func (h *MessagesHandler) HandleList(ctx *fiber.Ctx) error {
	data, err := h.repo.GetMessages(ctx.Params("doctorId"))
	if err != nil {
		log.Logger().Error("message listing failed", zap.Error(err))
		return fail(ctx, fiber.StatusInternalServerError, MessageServerError)
	}

	return ctx.JSON(&messages.Response{Success: true, Messages: data})
}

// inboundMessage godoc
// @Summary            Gateway webhook for doctor replies
// @Tags               Message
// @Accept             x-www-form-urlencoded
// @Produce            xml
// @Success            200 {string} string "TwiML"
// @Param              From formData string true "Sender address"
// @Param              Body formData string false "Message text"
// @Router             /api/whatsapp/inbound [POST]
func (h *MessagesHandler) HandleInbound(ctx *fiber.Ctx) error {
	from := ctx.FormValue("From")
	if from == "" {
		return ctx.SendStatus(fiber.StatusBadRequest)
	}

	reply, err := h.relay.Receive(ctx.UserContext(), from, ctx.FormValue("Body"))
	if err != nil {
		log.Logger().Error("inbound message could not be recorded", zap.Error(err))
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}

	body, err := messaging.TwiML(reply)
	if err != nil {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}

	ctx.Set(fiber.HeaderContentType, messaging.ContentTypeXML)
	return ctx.Send(body)
}
