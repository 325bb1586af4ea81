package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// User represents a registered platform user. Email and phone are nullable
// because registration requires only one of them; uniqueness is enforced per
// column, with NULLs exempt.
type User struct {
	ID           uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	Name         string          `json:"name" gorm:"size:255;not null"`
	Email        *string         `json:"email" gorm:"uniqueIndex;size:255"`
	Phone        *string         `json:"phone" gorm:"uniqueIndex;size:32"`
	CPF          string          `json:"cpf" gorm:"uniqueIndex;size:14;not null"`
	RG           string          `json:"rg" gorm:"size:20;not null"`
	Income       decimal.Decimal `json:"income" gorm:"type:decimal(12,2);not null"`
	PasswordHash string          `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	CreatedAt    time.Time       `json:"created_at"`

	// Relations
	Address *Address `json:"address,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
