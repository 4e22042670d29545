package profile

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/headz-api/internal/models"
)

type Repository interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)

	// SaveProfile inserts or updates the profile keyed by user.
	SaveProfile(ctx context.Context, p *models.UserProfile) error

	ListProfiles(ctx context.Context) ([]models.UserProfile, error)
}
