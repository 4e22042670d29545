package models

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile holds the salon-side details of a hosted-auth user.
type UserProfile struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`

	FullName          string `gorm:"size:150" json:"full_name"`
	Email             string `gorm:"size:150" json:"email"`
	Phone             string `gorm:"size:20" json:"phone"`
	ProfilePictureURL string `gorm:"size:500" json:"profile_picture_url"`
	PreferredStylist  string `gorm:"size:100" json:"preferred_stylist"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
