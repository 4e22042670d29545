package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/headz-api/internal/domain/profile"
	"github.com/BruksfildServices01/headz-api/internal/httperr"
	"github.com/BruksfildServices01/headz-api/internal/models"
)

type ProfileGormRepository struct {
	db *gorm.DB
}

func NewProfileGormRepository(db *gorm.DB) *ProfileGormRepository {
	return &ProfileGormRepository{db: db}
}

func (r *ProfileGormRepository) GetProfile(
	ctx context.Context,
	userID uuid.UUID,
) (*models.UserProfile, error) {

	var p models.UserProfile
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrBusiness("profile_not_found")
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileGormRepository) SaveProfile(
	ctx context.Context,
	p *models.UserProfile,
) error {

	db := r.db.WithContext(ctx)
	if err := db.
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"full_name",
				"email",
				"phone",
				"profile_picture_url",
				"preferred_stylist",
				"updated_at",
			}),
		}).
		Create(p).Error; err != nil {
		return err
	}

	var row models.UserProfile
	if err := db.Where("user_id = ?", p.UserID).First(&row).Error; err != nil {
		return err
	}

	*p = row
	return nil
}

func (r *ProfileGormRepository) ListProfiles(
	ctx context.Context,
) ([]models.UserProfile, error) {

	var list []models.UserProfile
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// Compile-time check
var _ domain.Repository = (*ProfileGormRepository)(nil)
