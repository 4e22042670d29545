package tryon

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/headz-api/internal/models"
)

type Repository interface {
	// -------- Sessions --------
	CreateSession(ctx context.Context, s *models.TryOnSession) error

	// GetSession returns the session only when it belongs to userID.
	GetSession(ctx context.Context, userID, id uuid.UUID) (*models.TryOnSession, error)

	UpdateSession(ctx context.Context, s *models.TryOnSession) error

	DeleteSession(ctx context.Context, userID, id uuid.UUID) error

	ListSessions(ctx context.Context, userID uuid.UUID) ([]models.TryOnSession, error)

	// -------- Saved hairstyles --------

	// UpsertSaved inserts or refreshes the (user, hairstyle) pair.
	UpsertSaved(ctx context.Context, s *models.SavedHairstyle) error

	ListSaved(ctx context.Context, userID uuid.UUID) ([]models.SavedHairstyle, error)

	// DeleteSaved reports whether a row was removed.
	DeleteSaved(ctx context.Context, userID, hairstyleID uuid.UUID) (bool, error)
}
