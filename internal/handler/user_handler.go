package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "cyberguard/internal/errors"
	"cyberguard/internal/model"
	"cyberguard/internal/service"
)

// UserHandler exposes profile endpoints.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// SetRoleRequest represents a role assignment request. An empty role means user.
type SetRoleRequest struct {
	Role model.Role `json:"role" validate:"omitempty,oneof=user admin"`
}

// SetRoleResponse is returned after a role assignment.
type SetRoleResponse struct {
	Success bool       `json:"success"`
	Role    model.Role `json:"role"`
}

// SetRole godoc
// @Summary Set the caller's role
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SetRoleRequest false "Role"
// @Success 200 {object} SetRoleResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /users/role [post]
func (h *UserHandler) SetRole(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	var req SetRoleRequest
	if err := bindAndValidate(c, &req, apperrors.ErrInvalidRole); err != nil {
		return err
	}

	role, err := h.svc.SetRole(c.Request().Context(), caller, req.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, SetRoleResponse{Success: true, Role: role})
}

// GetProfile godoc
// @Summary Get the caller's profile
// @Description Creates a user-role profile on first access.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.UserProfile
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /users/me [get]
func (h *UserHandler) GetProfile(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	profile, err := h.svc.GetProfile(c.Request().Context(), caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}
