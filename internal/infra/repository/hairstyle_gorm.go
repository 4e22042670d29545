package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/headz-api/internal/domain/hairstyle"
	"github.com/BruksfildServices01/headz-api/internal/httperr"
	"github.com/BruksfildServices01/headz-api/internal/models"
)

type HairstyleGormRepository struct {
	db *gorm.DB
}

func NewHairstyleGormRepository(db *gorm.DB) *HairstyleGormRepository {
	return &HairstyleGormRepository{db: db}
}

// --------------------------------------------------
// Categories
// --------------------------------------------------

func (r *HairstyleGormRepository) ListCategories(
	ctx context.Context,
) ([]models.HairstyleCategory, error) {

	var cats []models.HairstyleCategory
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}

func (r *HairstyleGormRepository) GetCategory(
	ctx context.Context,
	id uuid.UUID,
) (*models.HairstyleCategory, error) {

	var cat models.HairstyleCategory
	err := r.db.WithContext(ctx).First(&cat, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrBusiness("category_not_found")
	}
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *HairstyleGormRepository) CreateCategory(
	ctx context.Context,
	c *models.HairstyleCategory,
) error {

	err := r.db.WithContext(ctx).Create(c).Error
	if httperr.IsUniqueViolation(err) {
		return httperr.ErrBusiness("category_exists")
	}
	return err
}

// --------------------------------------------------
// Hairstyles
// --------------------------------------------------

func (r *HairstyleGormRepository) ListHairstyles(
	ctx context.Context,
	f domain.Filter,
) ([]models.Hairstyle, error) {

	q := r.db.WithContext(ctx).
		Joins("Category")

	if f.CategoryID != nil {
		q = q.Where("hairstyles.category_id = ?", *f.CategoryID)
	}
	if f.CategoryName != "" {
		q = q.Where(`LOWER("Category"."name") = LOWER(?)`, f.CategoryName)
	}
	if f.Gender != "" {
		q = q.Where("hairstyles.gender = ?", string(f.Gender))
	}
	if f.Length != "" {
		q = q.Where("hairstyles.length = ?", string(f.Length))
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		pattern := "%" + escapeLike(s) + "%"
		q = q.Where("hairstyles.name ILIKE ? OR hairstyles.description ILIKE ?", pattern, pattern)
	}

	var list []models.Hairstyle
	if err := q.
		Order(f.Ordering.String()).
		Order("hairstyles.id ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *HairstyleGormRepository) GetHairstyle(
	ctx context.Context,
	id uuid.UUID,
) (*models.Hairstyle, error) {

	var h models.Hairstyle
	err := r.db.WithContext(ctx).
		Joins("Category").
		First(&h, "hairstyles.id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrBusiness("hairstyle_not_found")
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *HairstyleGormRepository) CreateHairstyle(
	ctx context.Context,
	h *models.Hairstyle,
) error {

	err := r.db.WithContext(ctx).
		Omit("Category").
		Create(h).Error
	if httperr.IsUniqueViolation(err) {
		return httperr.ErrBusiness("hairstyle_exists")
	}
	return err
}

func (r *HairstyleGormRepository) IncrementLikes(
	ctx context.Context,
	id uuid.UUID,
) (int, error) {

	var h models.Hairstyle
	res := r.db.WithContext(ctx).
		Model(&h).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "likes"}}}).
		Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + 1"))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, httperr.ErrBusiness("hairstyle_not_found")
	}
	return h.Likes, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// Compile-time check
var _ domain.Repository = (*HairstyleGormRepository)(nil)
