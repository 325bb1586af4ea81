package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"investpro/internal/auth"
	"investpro/internal/errors"
	"investpro/internal/model"
	"investpro/internal/repository"
	"investpro/internal/validation"
)

const bcryptCost = 10

// registrationValidator is the full registration pipeline: every field rule
// plus the email-or-phone record check.
var registrationValidator = validation.NewRecord().
	Field(validation.NameRule("name")).
	Field(validation.EmailRule("email")).
	Field(validation.PhoneRule("phone")).
	Field(validation.CPFRule("cpf")).
	Field(validation.RGRule("rg")).
	Field(validation.IncomeRule("income")).
	Field(validation.PasswordRule("password")).
	Field(validation.StreetRule("address.street")).
	Field(validation.CEPRule("address.cep")).
	Field(validation.CityRule("address.city")).
	Field(validation.StateRule("address.state")).
	Check(validation.RequireEmailOrPhone)

// AddressInput carries the raw address fields of a request.
type AddressInput struct {
	Street string
	CEP    string
	City   string
	State  string
}

// RegisterInput carries the raw registration fields of a request.
type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	CPF      string
	RG       string
	Income   string
	Password string
	Address  AddressInput
}

// AuthService handles registration and login.
type AuthService interface {
	// Register validates, hashes the password and creates the user together
	// with its address. Returns the new user id.
	Register(ctx context.Context, in RegisterInput) (uuid.UUID, error)
	// Login authenticates by email or phone (email wins when both are
	// given) and returns a signed bearer token.
	Login(ctx context.Context, email, phone, password string) (string, error)
}

type authService struct {
	users repository.UserRepository
	jwt   *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, jwt *auth.JWTService) AuthService {
	return &authService{users: users, jwt: jwt}
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (uuid.UUID, error) {
	values := map[string]string{
		"name":           in.Name,
		"email":          in.Email,
		"phone":          in.Phone,
		"cpf":            in.CPF,
		"rg":             in.RG,
		"income":         in.Income,
		"password":       in.Password,
		"address.street": in.Address.Street,
		"address.cep":    in.Address.CEP,
		"address.city":   in.Address.City,
		"address.state":  in.Address.State,
	}
	normalized, ferrs := registrationValidator.Validate(values)
	if ferrs != nil {
		return uuid.Nil, ferrs
	}

	income, err := decimal.NewFromString(normalized["income"])
	if err != nil {
		return uuid.Nil, fmt.Errorf("parse normalized income: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return uuid.Nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.New(),
		Name:         normalized["name"],
		Email:        nullable(normalized["email"]),
		Phone:        nullable(normalized["phone"]),
		CPF:          normalized["cpf"],
		RG:           normalized["rg"],
		Income:       income,
		PasswordHash: string(hashed),
	}
	address := &model.Address{
		Street: normalized["address.street"],
		CEP:    normalized["address.cep"],
		City:   normalized["address.city"],
		State:  normalized["address.state"],
	}

	if err := s.users.CreateWithAddress(ctx, user, address); err != nil {
		if errors.IsDuplicateEntry(err) {
			return uuid.Nil, errors.ErrUserAlreadyExists
		}
		if errors.IsUnavailable(err) {
			return uuid.Nil, errors.ErrStoreUnavailable
		}
		return uuid.Nil, fmt.Errorf("create user: %w", err)
	}
	return user.ID, nil
}

func (s *authService) Login(ctx context.Context, email, phone, password string) (string, error) {
	var (
		user *model.User
		err  error
	)
	switch {
	case email != "":
		user, err = s.users.FindByEmail(ctx, email)
	case phone != "":
		user, err = s.users.FindByPhone(ctx, phone)
	default:
		return "", errors.ErrInvalidCredentials
	}
	if err != nil {
		if errors.IsUnavailable(err) {
			return "", errors.ErrStoreUnavailable
		}
		// unknown identifier is indistinguishable from a wrong password
		return "", errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", errors.ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return token, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
