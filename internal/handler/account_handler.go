package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"investpro/internal/errors"
	"investpro/internal/model"
	"investpro/internal/service"
)

// AccountHandler handles account CRUD endpoints.
type AccountHandler struct {
	accountService service.AccountService
}

// NewAccountHandler creates a new account handler.
func NewAccountHandler(accountService service.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// AccountDetailResponse is a user with its address, null when the user has
// no address row.
type AccountDetailResponse struct {
	model.User
	Address *model.Address `json:"address"`
}

// UpdateAccountRequest is a partial update; absent fields keep their stored
// values, a present address replaces the stored one.
type UpdateAccountRequest struct {
	Name    *string         `json:"name"`
	CPF     *string         `json:"cpf"`
	RG      *string         `json:"rg"`
	Income  *string         `json:"income"`
	Address *AddressRequest `json:"address"`
}

// OKResponse acknowledges a mutation.
type OKResponse struct {
	OK bool `json:"ok"`
}

// ListAccounts returns all users, newest first.
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	users, err := h.accountService.ListAccounts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	if users == nil {
		users = []model.User{}
	}
	return c.JSON(http.StatusOK, users)
}

// GetAccount returns a single user with its address.
func (h *AccountHandler) GetAccount(c echo.Context) error {
	id, err := parseAccountID(c)
	if err != nil {
		return err
	}

	user, err := h.accountService.GetAccount(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, AccountDetailResponse{User: *user, Address: user.Address})
}

// UpdateAccount merges the provided fields into the user.
func (h *AccountHandler) UpdateAccount(c echo.Context) error {
	id, err := parseAccountID(c)
	if err != nil {
		return err
	}

	var req UpdateAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	in := service.UpdateAccountInput{
		Name:   req.Name,
		CPF:    req.CPF,
		RG:     req.RG,
		Income: req.Income,
	}
	if req.Address != nil {
		in.Address = &service.AddressInput{
			Street: req.Address.Street,
			CEP:    req.Address.CEP,
			City:   req.Address.City,
			State:  req.Address.State,
		}
	}

	if err := h.accountService.UpdateAccount(c.Request().Context(), id, in); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, OKResponse{OK: true})
}

// DeleteAccount removes a user and its address. Deleting an unknown id still
// succeeds.
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	id, err := parseAccountID(c)
	if err != nil {
		return err
	}

	if err := h.accountService.DeleteAccount(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, OKResponse{OK: true})
}

func parseAccountID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid account ID",
			Code:  "INVALID_UUID",
		})
	}
	return id, nil
}
