package models

import (
	"time"

	"github.com/google/uuid"
)

type HairstyleCategory struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`

	CreatedAt time.Time `json:"created_at"`
}

type Hairstyle struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Name        string `gorm:"size:200;uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	ImageURL    string `gorm:"size:500" json:"image_url"`

	CategoryID uuid.UUID         `gorm:"type:uuid;index;not null" json:"category_id"`
	Category   HairstyleCategory `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"category"`

	Gender string `gorm:"size:1;default:'U';index" json:"gender"`
	Length string `gorm:"size:10;index" json:"length"`
	Likes  int    `gorm:"default:0" json:"likes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
