package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"userbase/internal/auth"
	"userbase/internal/cache"
	"userbase/internal/config"
	"userbase/internal/handler"
	"userbase/internal/service"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	userService service.UserService,
	cacheClient *cache.Client,
	userHandler *handler.UserHandler,
	authHandler *handler.AuthHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status": "ok",
			"cache":  cacheClient.Ping(c.Request().Context()),
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1")

	// Public routes
	api.POST("/users/", userHandler.CreateUser)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Secured routes: echo-jwt verifies signature and expiry, the guard then
	// resolves the token subject to a stored user.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		ErrorHandler: func(c echo.Context, err error) error {
			// Missing and malformed tokens are both authentication failures.
			return unauthorized()
		},
	}))
	secured.Use(CurrentUser(jwtService, userService))

	secured.GET("/users/", userHandler.ListUsers)
	secured.GET("/users/:id", userHandler.GetUser)

	secured.GET("/me", func(c echo.Context) error {
		user, err := CurrentUserFrom(c)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, handler.NewUserResponse(user))
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
