// Package saved keeps a user's bookmarked hairstyles.
package saved

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/headz-api/internal/audit"
	"github.com/BruksfildServices01/headz-api/internal/domain/hairstyle"
	"github.com/BruksfildServices01/headz-api/internal/domain/tryon"
	"github.com/BruksfildServices01/headz-api/internal/httperr"
	"github.com/BruksfildServices01/headz-api/internal/identity"
	"github.com/BruksfildServices01/headz-api/internal/models"
)

type SavedHairstyles struct {
	repo       tryon.Repository
	hairstyles hairstyle.Repository
	audit      audit.Recorder
}

func NewSavedHairstyles(
	repo tryon.Repository,
	hairstyles hairstyle.Repository,
	audit audit.Recorder,
) *SavedHairstyles {
	return &SavedHairstyles{
		repo:       repo,
		hairstyles: hairstyles,
		audit:      audit,
	}
}

// Save bookmarks a hairstyle, optionally pointing at the try-on session
// that produced it. Saving twice refreshes the existing bookmark.
func (uc *SavedHairstyles) Save(
	ctx context.Context,
	actor identity.Identity,
	hairstyleID uuid.UUID,
	sessionID *uuid.UUID,
) (*models.SavedHairstyle, error) {

	if _, err := uc.hairstyles.GetHairstyle(ctx, hairstyleID); err != nil {
		return nil, err
	}

	if sessionID != nil {
		if _, err := uc.repo.GetSession(ctx, actor.UserID, *sessionID); err != nil {
			return nil, err
		}
	}

	s := &models.SavedHairstyle{
		UserID:         actor.UserID,
		HairstyleID:    hairstyleID,
		TryOnSessionID: sessionID,
	}
	if err := uc.repo.UpsertSaved(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   "hairstyle_saved",
		Entity:   "hairstyle",
		EntityID: &hairstyleID,
	})

	return s, nil
}

func (uc *SavedHairstyles) List(ctx context.Context, actor identity.Identity) ([]models.SavedHairstyle, error) {
	return uc.repo.ListSaved(ctx, actor.UserID)
}

func (uc *SavedHairstyles) Remove(
	ctx context.Context,
	actor identity.Identity,
	hairstyleID uuid.UUID,
) error {

	removed, err := uc.repo.DeleteSaved(ctx, actor.UserID, hairstyleID)
	if err != nil {
		return err
	}
	if !removed {
		return httperr.ErrBusiness("saved_hairstyle_not_found")
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   "hairstyle_unsaved",
		Entity:   "hairstyle",
		EntityID: &hairstyleID,
	})

	return nil
}
