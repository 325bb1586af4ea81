package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"investpro/internal/errors"
	"investpro/internal/service"
	"investpro/internal/validation"
)

// AuthHandler handles registration and login endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// AddressRequest is the embedded address payload.
type AddressRequest struct {
	Street string `json:"street"`
	CEP    string `json:"cep"`
	City   string `json:"city"`
	State  string `json:"state"`
}

// RegisterRequest represents a user registration request. Field checks run
// through the validation pipeline so clients get per-field messages.
type RegisterRequest struct {
	Name     string         `json:"name"`
	Email    string         `json:"email"`
	Phone    string         `json:"phone"`
	CPF      string         `json:"cpf"`
	RG       string         `json:"rg"`
	Income   string         `json:"income"`
	Password string         `json:"password"`
	Address  AddressRequest `json:"address"`
}

// LoginRequest represents a login request by email or phone.
type LoginRequest struct {
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" validate:"required,min=6"`
}

// RegisterResponse carries the new user id.
type RegisterResponse struct {
	ID uuid.UUID `json:"id"`
}

// TokenResponse carries the signed bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// Register creates a new user with its address.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	id, err := h.authService.Register(c.Request().Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		CPF:      req.CPF,
		RG:       req.RG,
		Income:   req.Income,
		Password: req.Password,
		Address: service.AddressInput{
			Street: req.Address.Street,
			CEP:    req.Address.CEP,
			City:   req.Address.City,
			State:  req.Address.State,
		},
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, RegisterResponse{ID: id})
}

// Login authenticates a user and returns a bearer token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Email == "" && req.Phone == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "email or phone is required",
			Code:  "VALIDATION_ERROR",
		})
	}

	token, err := h.authService.Login(c.Request().Context(), req.Email, req.Phone, req.Password)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, TokenResponse{Token: token})
}

// writeError translates service errors into HTTP responses. Validation
// failures keep their per-field details; anything unclassified becomes a
// generic 500 and is logged server-side.
func writeError(c echo.Context, err error) error {
	if ferrs, ok := err.(validation.FieldErrors); ok {
		return echo.NewHTTPError(http.StatusBadRequest, errors.NewValidationErrorResponse(ferrs))
	}
	httpErr := errors.MapErrorToHTTP(err)
	if httpErr.StatusCode == http.StatusInternalServerError {
		c.Logger().Error(err)
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
