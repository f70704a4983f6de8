// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "medportal/internal/delivery/context"
	"medportal/internal/delivery/http/response"
	"medportal/internal/domain/entity"
	"medportal/internal/domain/service"
	"medportal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PortalHandler holds dependencies for registration and login handlers.
type PortalHandler struct {
	registration usecase.RegistrationUsecase
	auth         usecase.AuthUsecase
	logger       *slog.Logger
}

// NewPortalHandler is the constructor for PortalHandler, injected by Fx.
func NewPortalHandler(registration usecase.RegistrationUsecase, auth usecase.AuthUsecase, logger *slog.Logger) *PortalHandler {
	return &PortalHandler{
		registration: registration,
		auth:         auth,
		logger:       logger,
	}
}

// RegisterPatient handles a patient registration request.
func (h *PortalHandler) RegisterPatient(c echo.Context) error {
	return h.register(c, entity.RolePatient)
}

// RegisterProvider handles a provider registration request.
func (h *PortalHandler) RegisterProvider(c echo.Context) error {
	return h.register(c, entity.RoleProvider)
}

func (h *PortalHandler) register(c echo.Context, role entity.Role) error {
	input := new(usecase.RegisterInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	input.Role = role

	account, err := h.registration.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	// PasswordDigest is excluded from serialization at the entity level.
	return response.Success(c, http.StatusCreated, account, "Account registered successfully")
}

// Login handles the login request.
func (h *PortalHandler) Login(c echo.Context) error {
	input := new(usecase.LoginInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Role, email and password are required")
	}

	output, err := h.auth.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// GetProfile handles the request for the authenticated account's profile.
func (h *PortalHandler) GetProfile(c echo.Context) error {
	claimsVal := c.Get(string(deliverycontext.KeyClaims))
	claims, ok := claimsVal.(*service.Claims)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid claims in token")
	}

	account, err := h.auth.GetAccount(c.Request().Context(), entity.Role(claims.Role), claims.AccountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, account, "Profile retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
