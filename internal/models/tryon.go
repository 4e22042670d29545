package models

import (
	"time"

	"github.com/google/uuid"
)

type TryOnSession struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`

	OriginalPhotoURL string `gorm:"size:500;not null" json:"original_photo_url"`
	ResultPhotoURL   string `gorm:"size:500" json:"result_photo_url"`

	HairstyleID *uuid.UUID `gorm:"type:uuid" json:"hairstyle_id"`
	Hairstyle   *Hairstyle `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"hairstyle,omitempty"`

	Step    string `gorm:"size:20;default:'uploaded'" json:"step"`
	IsSaved bool   `gorm:"default:false" json:"is_saved"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SavedHairstyle struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_saved_user_hairstyle" json:"user_id"`

	HairstyleID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_saved_user_hairstyle" json:"hairstyle_id"`
	Hairstyle   Hairstyle `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"hairstyle"`

	TryOnSessionID *uuid.UUID    `gorm:"type:uuid" json:"tryon_session_id"`
	TryOnSession   *TryOnSession `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"tryon_session,omitempty"`

	SavedAt time.Time `gorm:"autoCreateTime" json:"saved_at"`
}
