package handler

import (
	"github.com/labstack/echo/v4"

	"cyberguard/internal/auth"
	apperrors "cyberguard/internal/errors"
)

// ClaimsKey is the echo context key holding the verified *auth.Claims.
const ClaimsKey = "claims"

// callerFrom returns the authenticated caller placed on the request by the auth middleware.
func callerFrom(c echo.Context) (auth.Caller, error) {
	caller, ok := auth.CallerFromContext(c.Request().Context())
	if !ok {
		return auth.Caller{}, apperrors.ErrUnauthenticated
	}
	return caller, nil
}

// bindAndValidate decodes the body into req and reports a failed validation as invalid.
func bindAndValidate(c echo.Context, req interface{}, invalid error) error {
	if err := c.Bind(req); err != nil {
		return apperrors.ErrInvalidBody
	}
	if err := c.Validate(req); err != nil {
		return invalid
	}
	return nil
}
