package handler

import (
	"log/slog"
	"net/http"

	"medportal/internal/delivery/http/response"
	"medportal/internal/domain/entity"
	"medportal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler exposes the reporting and maintenance endpoints.
type AdminHandler struct {
	directory usecase.DirectoryUsecase
	logger    *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(directory usecase.DirectoryUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		directory: directory,
		logger:    logger,
	}
}

// ListAccounts returns every account registered under the requested role.
func (h *AdminHandler) ListAccounts(c echo.Context) error {
	role := entity.Role(c.QueryParam("role"))

	accounts, err := h.directory.ListAccounts(c.Request().Context(), role)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"role":     role,
		"accounts": accounts,
	}, "Accounts retrieved successfully")
}

// CountAccounts returns per-role and total account counts.
func (h *AdminHandler) CountAccounts(c echo.Context) error {
	ctx := c.Request().Context()

	if roleParam := c.QueryParam("role"); roleParam != "" {
		role := entity.Role(roleParam)
		count, err := h.directory.CountAccounts(ctx, role)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, map[string]any{
			"role":  role,
			"count": count,
		}, "Account count retrieved successfully")
	}

	counts := make(map[string]int, len(entity.AllRoles()))
	for _, role := range entity.AllRoles() {
		count, err := h.directory.CountAccounts(ctx, role)
		if err != nil {
			return errors.WithStack(err)
		}
		counts[role.String()] = count
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"counts": counts,
		"total":  h.directory.CountAll(ctx),
	}, "Account counts retrieved successfully")
}

// ClearAccounts resets every partition. Demo maintenance only.
func (h *AdminHandler) ClearAccounts(c echo.Context) error {
	h.directory.ClearAccounts(c.Request().Context())

	return response.Success(c, http.StatusOK, map[string]string{"status": "cleared"}, "Accounts cleared successfully")
}
