package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/api/dto"
	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/auth"
	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/domain"
	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/service"
	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/pkg/util"
)

// UsersHandler exposes account endpoints.
type UsersHandler struct {
	auth *service.AuthService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(authService *service.AuthService) *UsersHandler {
	return &UsersHandler{auth: authService}
}

// Login handles POST /auth/login.
func (h *UsersHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewDomainError("INVALID_PAYLOAD", "invalid request body", http.StatusBadRequest, nil)
	}
	if req.Username == "" || req.Password == "" {
		return util.NewUnauthorized("username and password required")
	}

	user, token, exp, err := h.auth.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"user": dto.NewUserResponse(*user),
			"auth": dto.AuthResponse{
				Token:     token,
				ExpiresAt: exp.Format(time.RFC3339),
				FullName:  user.FullName,
				IsAdmin:   user.IsAdmin,
			},
		},
	})
}

// Register handles POST /auth/register.
func (h *UsersHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewDomainError("INVALID_PAYLOAD", "invalid request body", http.StatusBadRequest, nil)
	}

	id, err := h.auth.Register(c.UserContext(), req.FullName, req.Username, req.Password, req.Confirm)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"id":       id,
			"username": req.Username,
		},
	})
}

// List handles GET /users, admin only.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	session := currentSession(c)
	users, err := h.auth.ListUsers(c.UserContext(), session)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserList(users)})
}

// currentSession returns the authenticated session, or the guest session
// when the route ran without the auth middleware.
func currentSession(c *fiber.Ctx) domain.Session {
	if session, ok := auth.SessionFromContext(c); ok {
		return session
	}
	return domain.Guest()
}
