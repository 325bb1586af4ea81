package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"investpro/internal/config"
	"investpro/internal/errors"
	"investpro/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	healthHandler *handler.HealthHandler,
	authHandler *handler.AuthHandler,
	accountHandler *handler.AccountHandler,
	i18nHandler *handler.I18nHandler,
	exchangeHandler *handler.ExchangeHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/health", healthHandler.Health)

	// Public routes
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// Account routes (require JWT authentication)
	accounts := e.Group("/accounts", echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(cfg.JWTSecret),
		// Absent, malformed and expired tokens are rejected uniformly.
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: "unauthorized",
				Code:  "UNAUTHORIZED",
			})
		},
	}))
	accounts.GET("", accountHandler.ListAccounts)

	owned := requireOwnership(cfg.AuthPolicy)
	accounts.GET("/:id", accountHandler.GetAccount, owned)
	accounts.PUT("/:id", accountHandler.UpdateAccount, owned)
	accounts.DELETE("/:id", accountHandler.DeleteAccount, owned)

	// Translation and exchange-rate routes
	api := e.Group("/api")
	api.GET("/translations/:lang", i18nHandler.GetTranslations)
	api.PUT("/translations/:lang", i18nHandler.UpdateTranslations)
	api.POST("/translations", i18nHandler.AddLanguage)
	api.DELETE("/translations/:lang", i18nHandler.DeleteLanguage)
	api.GET("/languages", i18nHandler.ListLanguages)
	api.GET("/exchange-rate", exchangeHandler.CurrentRate)
	api.GET("/exchange-rate/cached", exchangeHandler.CachedRate)
}

// requireOwnership enforces the configured authorization policy on
// per-account routes. Under PolicyAnyToken any authenticated caller passes;
// under PolicyOwner the token subject must match the target account id.
func requireOwnership(policy string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if policy != config.PolicyOwner {
				return next(c)
			}
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: "invalid token",
					Code:  "UNAUTHORIZED",
				})
			}
			subject, err := token.Claims.GetSubject()
			if err != nil || subject != c.Param("id") {
				return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
					Error: "account does not belong to the authenticated user",
					Code:  "FORBIDDEN",
				})
			}
			return next(c)
		}
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
