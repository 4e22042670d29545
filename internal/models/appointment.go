package models

import (
	"time"

	"github.com/google/uuid"
)

type Appointment struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`

	Service  string    `gorm:"size:20;not null" json:"service"`
	StartsAt time.Time `gorm:"index" json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`

	Status string `gorm:"size:10;default:'pending';index" json:"status"`
	Notes  string `gorm:"type:text" json:"notes"`

	ContactName  string `gorm:"size:150" json:"contact_name"`
	ContactPhone string `gorm:"size:20" json:"contact_phone"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
