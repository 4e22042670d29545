// Package gallery serves the hairstyle catalog.
package gallery

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/headz-api/internal/audit"
	"github.com/BruksfildServices01/headz-api/internal/cache"
	domain "github.com/BruksfildServices01/headz-api/internal/domain/hairstyle"
	"github.com/BruksfildServices01/headz-api/internal/httperr"
	"github.com/BruksfildServices01/headz-api/internal/identity"
	"github.com/BruksfildServices01/headz-api/internal/models"
	"github.com/BruksfildServices01/headz-api/internal/storage"
	"github.com/BruksfildServices01/headz-api/internal/validators"
)

const (
	cachePrefix   = "gallery:"
	categoriesKey = cachePrefix + "categories"
	hairstylesKey = cachePrefix + "hairstyles:"
)

// PhotoSaver stores an uploaded image and returns its public URL. Remove
// discards a stored image by that URL.
type PhotoSaver interface {
	Save(ctx context.Context, prefix string, r io.Reader) (string, error)
	Remove(ctx context.Context, url string)
}

type Gallery struct {
	repo   domain.Repository
	cache  cache.Cache
	photos PhotoSaver
	audit  audit.Recorder
}

func NewGallery(
	repo domain.Repository,
	c cache.Cache,
	photos PhotoSaver,
	audit audit.Recorder,
) *Gallery {
	return &Gallery{
		repo:   repo,
		cache:  c,
		photos: photos,
		audit:  audit,
	}
}

// ======================================================
// Categories
// ======================================================

func (g *Gallery) ListCategories(ctx context.Context) ([]models.HairstyleCategory, error) {
	var cats []models.HairstyleCategory
	if g.cacheGet(ctx, categoriesKey, &cats) {
		return cats, nil
	}

	cats, err := g.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	g.cacheSet(ctx, categoriesKey, cats)
	return cats, nil
}

func (g *Gallery) CreateCategory(
	ctx context.Context,
	actor identity.Identity,
	name string,
	description string,
) (*models.HairstyleCategory, error) {

	if !actor.IsStaff() {
		return nil, httperr.ErrBusiness("forbidden")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, httperr.ErrBusiness("missing_fields")
	}
	if !validators.FitsColumn(name, validators.MaxCategoryLength) {
		return nil, httperr.ErrBusiness("field_too_long")
	}

	cat := &models.HairstyleCategory{
		Name:        name,
		Description: strings.TrimSpace(description),
	}
	if err := g.repo.CreateCategory(ctx, cat); err != nil {
		return nil, err
	}

	g.invalidate(ctx)
	g.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   "category_created",
		Entity:   "hairstyle_category",
		EntityID: &cat.ID,
	})

	return cat, nil
}

// ======================================================
// Hairstyles
// ======================================================

func (g *Gallery) ListHairstyles(ctx context.Context, f domain.Filter) ([]models.Hairstyle, error) {
	key := hairstylesKey + f.CacheKey()

	var list []models.Hairstyle
	if g.cacheGet(ctx, key, &list) {
		return list, nil
	}

	list, err := g.repo.ListHairstyles(ctx, f)
	if err != nil {
		return nil, err
	}

	g.cacheSet(ctx, key, list)
	return list, nil
}

func (g *Gallery) GetHairstyle(ctx context.Context, id uuid.UUID) (*models.Hairstyle, error) {
	return g.repo.GetHairstyle(ctx, id)
}

type CreateHairstyleInput struct {
	Actor identity.Identity

	Name        string
	Description string
	CategoryID  uuid.UUID
	Gender      string
	Length      string

	// Image wins over ImageURL when both are present.
	Image    io.Reader
	ImageURL string
}

func (g *Gallery) CreateHairstyle(
	ctx context.Context,
	in CreateHairstyleInput,
) (*models.Hairstyle, error) {

	name := strings.TrimSpace(in.Name)
	description := strings.TrimSpace(in.Description)
	if name == "" || description == "" || in.CategoryID == uuid.Nil ||
		strings.TrimSpace(in.Gender) == "" || strings.TrimSpace(in.Length) == "" {
		return nil, httperr.ErrBusiness("missing_fields")
	}

	if !validators.FitsColumn(name, validators.MaxHairstyleName) {
		return nil, httperr.ErrBusiness("field_too_long")
	}

	gender, err := domain.ParseGender(in.Gender)
	if err != nil {
		return nil, err
	}
	length, err := domain.ParseLength(in.Length)
	if err != nil {
		return nil, err
	}

	cat, err := g.repo.GetCategory(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}

	imageURL := strings.TrimSpace(in.ImageURL)
	uploaded := false
	if in.Image != nil {
		if imageURL, err = g.photos.Save(ctx, storage.PrefixHairstyles, in.Image); err != nil {
			return nil, err
		}
		uploaded = true
	}
	if imageURL == "" {
		return nil, httperr.ErrBusiness("missing_image")
	}
	if !validators.FitsColumn(imageURL, validators.MaxURLLength) {
		return nil, httperr.ErrBusiness("field_too_long")
	}

	h := &models.Hairstyle{
		Name:        name,
		Description: description,
		ImageURL:    imageURL,
		CategoryID:  cat.ID,
		Gender:      string(gender),
		Length:      string(length),
	}
	if err := g.repo.CreateHairstyle(ctx, h); err != nil {
		if uploaded {
			g.photos.Remove(ctx, imageURL)
		}
		return nil, err
	}
	h.Category = *cat

	g.invalidate(ctx)
	g.audit.Dispatch(audit.Event{
		UserID:   &in.Actor.UserID,
		Action:   "hairstyle_created",
		Entity:   "hairstyle",
		EntityID: &h.ID,
		Metadata: map[string]string{"name": h.Name},
	})

	return h, nil
}

// LikeHairstyle returns the new like count.
func (g *Gallery) LikeHairstyle(ctx context.Context, id uuid.UUID) (int, error) {
	likes, err := g.repo.IncrementLikes(ctx, id)
	if err != nil {
		return 0, err
	}

	g.invalidate(ctx)
	return likes, nil
}

// ======================================================
// Cache helpers
// ======================================================

func (g *Gallery) cacheGet(ctx context.Context, key string, dst any) bool {
	err := g.cache.GetJSON(ctx, key, dst)
	if err == nil {
		return true
	}
	if !errors.Is(err, cache.ErrMiss) {
		slog.WarnContext(ctx, "gallery cache read failed", "key", key, "error", err)
	}
	return false
}

func (g *Gallery) cacheSet(ctx context.Context, key string, v any) {
	if err := g.cache.SetJSON(ctx, key, v); err != nil {
		slog.WarnContext(ctx, "gallery cache write failed", "key", key, "error", err)
	}
}

func (g *Gallery) invalidate(ctx context.Context) {
	if err := g.cache.DeletePrefix(ctx, cachePrefix); err != nil {
		slog.WarnContext(ctx, "gallery cache invalidation failed", "error", err)
	}
}
