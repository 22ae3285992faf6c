package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"cyberguard/internal/handler"
	"cyberguard/internal/metrics"
	"cyberguard/internal/service"
)

// Handlers groups the endpoint handlers mounted by Register.
type Handlers struct {
	User     *handler.UserHandler
	Auth     *handler.AuthHandler
	Password *handler.PasswordHandler
	Phishing *handler.PhishingHandler
	Malware  *handler.MalwareHandler
	Admin    *handler.AdminHandler
}

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	h Handlers,
	authService service.AuthService,
	userService service.UserService,
	recorder *metrics.Recorder,
) {
	e.HTTPErrorHandler = HTTPErrorHandler
	e.Use(RequestLogger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(recorder.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Every API route requires a verified ID token.
	api := e.Group("/api", Authenticate(authService))

	api.POST("/auth/logout", h.Auth.Logout)

	api.POST("/users/role", h.User.SetRole)
	api.GET("/users/me", h.User.GetProfile)

	api.POST("/password/check", h.Password.Check)

	api.POST("/phishing/submissions", h.Phishing.Submit)
	api.GET("/phishing/submissions", h.Phishing.List)
	api.POST("/phishing/check", h.Phishing.Check)
	api.POST("/phishing/analyze", h.Phishing.Analyze)

	api.POST("/malware/submissions", h.Malware.Submit)
	api.GET("/malware/submissions", h.Malware.List)

	admin := api.Group("/admin", RequireAdmin(userService))
	admin.GET("/phishing/submissions", h.Admin.ListPhishing)
	admin.POST("/phishing/verdict", h.Admin.UpdatePhishingVerdict)
	admin.GET("/malware/submissions", h.Admin.ListMalware)
	admin.POST("/malware/verdict", h.Admin.UpdateMalwareVerdict)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
