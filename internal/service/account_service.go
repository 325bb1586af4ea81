package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"investpro/internal/errors"
	"investpro/internal/model"
	"investpro/internal/repository"
	"investpro/internal/validation"
)

// UpdateAccountInput carries the optional fields of a partial update. Nil
// means "leave unchanged"; a non-nil address replaces the stored one
// entirely.
type UpdateAccountInput struct {
	Name    *string
	CPF     *string
	RG      *string
	Income  *string
	Address *AddressInput
}

// Empty reports whether the payload carries nothing to apply.
func (in UpdateAccountInput) Empty() bool {
	return in.Name == nil && in.CPF == nil && in.RG == nil && in.Income == nil && in.Address == nil
}

// AccountService handles account read and mutation operations.
type AccountService interface {
	ListAccounts(ctx context.Context) ([]model.User, error)
	GetAccount(ctx context.Context, id uuid.UUID) (*model.User, error)
	// UpdateAccount merges the provided fields into the user row and
	// upserts the address when one is given.
	UpdateAccount(ctx context.Context, id uuid.UUID, in UpdateAccountInput) error
	// DeleteAccount removes the user and its address. Idempotent.
	DeleteAccount(ctx context.Context, id uuid.UUID) error
}

type accountService struct {
	users repository.UserRepository
}

// NewAccountService creates a new account service.
func NewAccountService(users repository.UserRepository) AccountService {
	return &accountService{users: users}
}

func (s *accountService) ListAccounts(ctx context.Context) ([]model.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		if errors.IsUnavailable(err) {
			return nil, errors.ErrStoreUnavailable
		}
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *accountService) GetAccount(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		if errors.IsUnavailable(err) {
			return nil, errors.ErrStoreUnavailable
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, id uuid.UUID, in UpdateAccountInput) error {
	if in.Empty() {
		return errors.ErrNothingToUpdate
	}

	var ferrs validation.FieldErrors
	fields := make(map[string]interface{})

	apply := func(rule validation.Rule, value string) string {
		out, ferr := rule.Apply(value)
		if ferr != nil {
			ferrs = append(ferrs, *ferr)
		}
		return out
	}

	if in.Name != nil {
		fields["name"] = apply(validation.NameRule("name"), *in.Name)
	}
	if in.CPF != nil {
		fields["cpf"] = apply(validation.CPFRule("cpf"), *in.CPF)
	}
	if in.RG != nil {
		fields["rg"] = apply(validation.RGRule("rg"), *in.RG)
	}
	if in.Income != nil {
		normalized := apply(validation.IncomeRule("income"), *in.Income)
		if income, err := decimal.NewFromString(normalized); err == nil {
			fields["income"] = income
		}
	}

	var address *model.Address
	if in.Address != nil {
		address = &model.Address{
			UserID: id,
			Street: apply(validation.StreetRule("address.street"), in.Address.Street),
			CEP:    apply(validation.CEPRule("address.cep"), in.Address.CEP),
			City:   apply(validation.CityRule("address.city"), in.Address.City),
			State:  apply(validation.StateRule("address.state"), in.Address.State),
		}
	}

	if ferrs != nil {
		return ferrs
	}

	if len(fields) > 0 {
		if err := s.users.UpdatePartial(ctx, id, fields); err != nil {
			if errors.IsDuplicateEntry(err) {
				return errors.ErrUserAlreadyExists
			}
			if errors.IsUnavailable(err) {
				return errors.ErrStoreUnavailable
			}
			return fmt.Errorf("update user: %w", err)
		}
	}
	if address != nil {
		if err := s.users.UpsertAddress(ctx, address); err != nil {
			if errors.IsUnavailable(err) {
				return errors.ErrStoreUnavailable
			}
			return fmt.Errorf("upsert address: %w", err)
		}
	}
	return nil
}

func (s *accountService) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.IsUnavailable(err) {
			return errors.ErrStoreUnavailable
		}
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
