package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"investpro/internal/model"
)

// UserRepository defines user and address persistence operations.
type UserRepository interface {
	// CreateWithAddress inserts the user and its address in one transaction
	// so a failed address insert never leaves an orphaned user.
	CreateWithAddress(ctx context.Context, user *model.User, address *model.Address) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByPhone(ctx context.Context, phone string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	// UpdatePartial applies only the given columns, leaving the rest at
	// their stored values.
	UpdatePartial(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	// UpsertAddress replaces the user's address row, inserting one when the
	// user has none yet.
	UpsertAddress(ctx context.Context, address *model.Address) error
	// Delete removes the user; the address goes with it via the cascading
	// foreign key. Deleting an unknown id is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateWithAddress(ctx context.Context, user *model.User, address *model.Address) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		address.UserID = user.ID
		return tx.Create(address).Error
	})
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Preload("Address").Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByPhone(ctx context.Context, phone string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) UpdatePartial(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *userRepository) UpsertAddress(ctx context.Context, address *model.Address) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Address
		err := tx.Where("user_id = ?", address.UserID).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			return tx.Create(address).Error
		}
		if err != nil {
			return err
		}
		return tx.Model(&existing).Updates(map[string]interface{}{
			"street": address.Street,
			"cep":    address.CEP,
			"city":   address.City,
			"state":  address.State,
		}).Error
	})
}

func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.User{}).Error
}
