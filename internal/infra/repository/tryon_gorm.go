package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/headz-api/internal/domain/tryon"
	"github.com/BruksfildServices01/headz-api/internal/httperr"
	"github.com/BruksfildServices01/headz-api/internal/models"
)

type TryOnGormRepository struct {
	db *gorm.DB
}

func NewTryOnGormRepository(db *gorm.DB) *TryOnGormRepository {
	return &TryOnGormRepository{db: db}
}

// --------------------------------------------------
// Sessions
// --------------------------------------------------

func (r *TryOnGormRepository) CreateSession(
	ctx context.Context,
	s *models.TryOnSession,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(s).Error
}

func (r *TryOnGormRepository) GetSession(
	ctx context.Context,
	userID uuid.UUID,
	id uuid.UUID,
) (*models.TryOnSession, error) {

	var s models.TryOnSession
	err := r.db.WithContext(ctx).
		Preload("Hairstyle").
		Where("id = ? AND user_id = ?", id, userID).
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrBusiness("session_not_found")
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *TryOnGormRepository) UpdateSession(
	ctx context.Context,
	s *models.TryOnSession,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(s).Error
}

func (r *TryOnGormRepository) DeleteSession(
	ctx context.Context,
	userID uuid.UUID,
	id uuid.UUID,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.TryOnSession{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("session_not_found")
	}
	return nil
}

func (r *TryOnGormRepository) ListSessions(
	ctx context.Context,
	userID uuid.UUID,
) ([]models.TryOnSession, error) {

	var list []models.TryOnSession
	if err := r.db.WithContext(ctx).
		Preload("Hairstyle").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// --------------------------------------------------
// Saved hairstyles
// --------------------------------------------------

func (r *TryOnGormRepository) UpsertSaved(
	ctx context.Context,
	s *models.SavedHairstyle,
) error {

	now := time.Now()
	s.SavedAt = now

	db := r.db.WithContext(ctx)
	if err := db.
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "hairstyle_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"try_on_session_id": s.TryOnSessionID,
				"saved_at":          now,
			}),
		}).
		Create(s).Error; err != nil {
		return err
	}

	// on conflict the row keeps its original id
	var row models.SavedHairstyle
	if err := db.
		Preload("Hairstyle").
		Preload("TryOnSession").
		Where("user_id = ? AND hairstyle_id = ?", s.UserID, s.HairstyleID).
		First(&row).Error; err != nil {
		return err
	}

	*s = row
	return nil
}

func (r *TryOnGormRepository) ListSaved(
	ctx context.Context,
	userID uuid.UUID,
) ([]models.SavedHairstyle, error) {

	var list []models.SavedHairstyle
	if err := r.db.WithContext(ctx).
		Preload("Hairstyle.Category").
		Preload("TryOnSession").
		Where("user_id = ?", userID).
		Order("saved_at DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *TryOnGormRepository) DeleteSaved(
	ctx context.Context,
	userID uuid.UUID,
	hairstyleID uuid.UUID,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Where("user_id = ? AND hairstyle_id = ?", userID, hairstyleID).
		Delete(&models.SavedHairstyle{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Compile-time check
var _ domain.Repository = (*TryOnGormRepository)(nil)
