package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "cyberguard/internal/errors"
	"cyberguard/internal/service"
)

// PasswordHandler serves the password strength checker.
type PasswordHandler struct {
	svc service.PasswordService
}

// NewPasswordHandler creates a new password handler.
func NewPasswordHandler(svc service.PasswordService) *PasswordHandler {
	return &PasswordHandler{svc: svc}
}

// PasswordCheckRequest carries the password to score. It is never stored.
type PasswordCheckRequest struct {
	Password string `json:"password" validate:"required"`
}

// Check godoc
// @Summary Score a password
// @Tags password
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PasswordCheckRequest true "Password"
// @Success 200 {object} scoring.StrengthResult
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /password/check [post]
func (h *PasswordHandler) Check(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	var req PasswordCheckRequest
	if err := bindAndValidate(c, &req, apperrors.ErrPasswordRequired); err != nil {
		return err
	}

	result, err := h.svc.CheckStrength(c.Request().Context(), caller.UID, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}
