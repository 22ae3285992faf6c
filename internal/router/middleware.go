package router

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"cyberguard/internal/auth"
	apperrors "cyberguard/internal/errors"
	"cyberguard/internal/handler"
	"cyberguard/internal/service"
)

// Authenticate verifies the bearer ID token and puts the caller on the request context.
func Authenticate(authService service.AuthService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey: handler.ClaimsKey,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			claims, err := authService.Authenticate(c.Request().Context(), token)
			if err != nil {
				return nil, err
			}
			return claims, nil
		},
		SuccessHandler: func(c echo.Context) {
			claims, ok := c.Get(handler.ClaimsKey).(*auth.Claims)
			if !ok {
				return
			}
			ctx := auth.WithCaller(c.Request().Context(), auth.CallerFromClaims(claims))
			c.SetRequest(c.Request().WithContext(ctx))
		},
		ErrorHandler: func(c echo.Context, err error) error {
			slog.DebugContext(c.Request().Context(), "authentication failed", "path", c.Path(), "error", err)
			return apperrors.ErrUnauthenticated
		},
	})
}

// RequireAdmin re-reads the caller's profile on every request and rejects non-admins.
func RequireAdmin(userService service.UserService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller, ok := auth.CallerFromContext(c.Request().Context())
			if !ok {
				return apperrors.ErrUnauthenticated
			}

			isAdmin, err := userService.IsAdmin(c.Request().Context(), caller.UID)
			if err != nil {
				return err
			}
			if !isAdmin {
				slog.WarnContext(c.Request().Context(), "admin access denied", "uid", caller.UID, "path", c.Path())
				return apperrors.ErrAdminRequired
			}
			return next(c)
		}
	}
}

// RequestLogger logs one line per request through slog.
func RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.RequestID != "" {
				attrs = append(attrs, "request_id", v.RequestID)
			}

			ctx := c.Request().Context()
			switch {
			case v.Status >= http.StatusInternalServerError:
				slog.ErrorContext(ctx, "request", append(attrs, "error", v.Error)...)
			case v.Status >= http.StatusBadRequest:
				slog.WarnContext(ctx, "request", attrs...)
			default:
				slog.InfoContext(ctx, "request", attrs...)
			}
			return nil
		},
	})
}

// HTTPErrorHandler writes every failure as an ErrorResponse. Errors without a
// known kind are logged and reported as internal with a generic message.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, body := errorResponse(err)
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, body)
	}
	if err != nil {
		slog.ErrorContext(c.Request().Context(), "write error response", "error", err)
	}
}

func errorResponse(err error) (int, apperrors.ErrorResponse) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		kind := apperrors.KindForStatus(he.Code)
		if kind == apperrors.KindInternal {
			return http.StatusInternalServerError, apperrors.ErrorResponse{Error: "internal server error", Code: string(kind)}
		}
		return he.Code, apperrors.ErrorResponse{Error: fmt.Sprint(he.Message), Code: string(kind)}
	}

	httpErr := apperrors.MapErrorToHTTP(err)
	return httpErr.StatusCode, httpErr.ToErrorResponse()
}
