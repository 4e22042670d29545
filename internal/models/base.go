package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// assignID gives a row its UUID before insert when the caller left it empty.
func assignID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

func (m *HairstyleCategory) BeforeCreate(*gorm.DB) error { assignID(&m.ID); return nil }
func (m *Hairstyle) BeforeCreate(*gorm.DB) error         { assignID(&m.ID); return nil }
func (m *UserProfile) BeforeCreate(*gorm.DB) error       { assignID(&m.ID); return nil }
func (m *TryOnSession) BeforeCreate(*gorm.DB) error      { assignID(&m.ID); return nil }
func (m *SavedHairstyle) BeforeCreate(*gorm.DB) error    { assignID(&m.ID); return nil }
func (m *Appointment) BeforeCreate(*gorm.DB) error       { assignID(&m.ID); return nil }
func (m *AuditLog) BeforeCreate(*gorm.DB) error          { assignID(&m.ID); return nil }
