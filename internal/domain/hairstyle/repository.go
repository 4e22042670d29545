package hairstyle

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/headz-api/internal/models"
)

type Repository interface {
	// -------- Categories --------
	ListCategories(ctx context.Context) ([]models.HairstyleCategory, error)

	GetCategory(ctx context.Context, id uuid.UUID) (*models.HairstyleCategory, error)

	CreateCategory(ctx context.Context, c *models.HairstyleCategory) error

	// -------- Hairstyles --------
	ListHairstyles(ctx context.Context, f Filter) ([]models.Hairstyle, error)

	GetHairstyle(ctx context.Context, id uuid.UUID) (*models.Hairstyle, error)

	CreateHairstyle(ctx context.Context, h *models.Hairstyle) error

	// IncrementLikes bumps the counter atomically and returns the new value.
	IncrementLikes(ctx context.Context, id uuid.UUID) (int, error)
}
