package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Address is the single address owned by a user. It is removed together with
// the owning user through the cascading foreign key.
type Address struct {
	ID        uuid.UUID `json:"-" gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID `json:"-" gorm:"type:char(36);index;not null"`
	Street    string    `json:"street" gorm:"size:255"`
	CEP       string    `json:"cep" gorm:"column:cep;size:9"`
	City      string    `json:"city" gorm:"size:128"`
	State     string    `json:"state" gorm:"size:2"`
	CreatedAt time.Time `json:"-"`
}

// BeforeCreate sets UUID before creating the record.
func (a *Address) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
