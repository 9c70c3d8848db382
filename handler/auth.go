package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/hospice/hospital-locator-api/middleware/auth"
	log "github.com/hospice/hospital-locator-api/pkg/logger"
	"github.com/hospice/hospital-locator-api/repository"
	"github.com/hospice/hospital-locator-api/users"
	"go.uber.org/zap"
)

type UserStore interface {
	CreateUser(user *users.User) error
	GetUserByEmail(email string) (*users.User, error)
}

type AuthHandler struct {
	repo   UserStore
	tokens *auth.Tokens
}

func NewAuthHandler(repo UserStore, tokens *auth.Tokens) *AuthHandler {
	return &AuthHandler{repo: repo, tokens: tokens}
}

// register godoc
// @Summary            Register a user
// @Tags               Auth
// @Accept             json
// @Produce            json
// @Success            201 {object} users.LoginResponse
// @Failure            400 {object} handler.ErrorResponse
// @Param              body body users.RegisterRequest true "RequestBody"
// @Router             /api/auth/register [POST]
func (h *AuthHandler) HandleRegister(ctx *fiber.Ctx) error {
	var req users.RegisterRequest
	if ok, err := parseBody(ctx, &req); !ok {
		return err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Logger().Error("password hashing failed", zap.Error(err))
		return fail(ctx, fiber.StatusInternalServerError, MessageServerError)
	}

	user := &users.User{Name: req.Name, Email: req.Email, PasswordHash: hash}
	if err := h.repo.CreateUser(user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return fail(ctx, fiber.StatusBadRequest, "User already exists")
		}
		log.Logger().Error("user registration failed", zap.Error(err))
		return fail(ctx, fiber.StatusInternalServerError, MessageServerError)
	}

	return h.signIn(ctx.Status(fiber.StatusCreated), user)
}

// login godoc
// @Summary            Log in and receive a session token
// @Tags               Auth
// @Accept             json
// @Produce            json
// @Success            200 {object} users.LoginResponse
// @Failure            400 {object} handler.ErrorResponse
// @Param              body body users.LoginRequest true "RequestBody"
// @Router             /api/auth/login [POST]
func (h *AuthHandler) HandleLogin(ctx *fiber.Ctx) error {
	var req users.LoginRequest
	if ok, err := parseBody(ctx, &req); !ok {
		return err
	}

	user, err := h.repo.GetUserByEmail(req.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return fail(ctx, fiber.StatusBadRequest, "User not found")
	}
	if err != nil {
		log.Logger().Error("user lookup failed", zap.Error(err))
		return fail(ctx, fiber.StatusInternalServerError, MessageServerError)
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return fail(ctx, fiber.StatusBadRequest, "Invalid credentials")
	}

	return h.signIn(ctx, user)
}

// me godoc
// @Summary            Show the signed-in user
// @Tags               Auth
// @Produce            json
// @Success            200 {object} auth.Session
// @Failure            401 {object} handler.ErrorResponse
// @Router             /api/auth/me [GET]
func HandleMe(ctx *fiber.Ctx) error {
	session, ok := auth.SessionFrom(ctx)
	if !ok {
		return fail(ctx, fiber.StatusUnauthorized, "Please log in to continue")
	}
	return ctx.JSON(session)
}

func (h *AuthHandler) signIn(ctx *fiber.Ctx, user *users.User) error {
	token, err := h.tokens.Issue(user.ID, user.Name, user.Email)
	if err != nil {
		log.Logger().Error("token issue failed", zap.Error(err))
		return fail(ctx, fiber.StatusInternalServerError, MessageServerError)
	}

	return ctx.JSON(&users.LoginResponse{Success: true, Token: token, User: user})
}
