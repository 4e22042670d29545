// Package tryon drives the virtual try-on wizard: upload a photo, pick a
// hairstyle, preview it and save the result.
package tryon

import (
	"context"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/headz-api/internal/audit"
	"github.com/BruksfildServices01/headz-api/internal/domain/hairstyle"
	domain "github.com/BruksfildServices01/headz-api/internal/domain/tryon"
	"github.com/BruksfildServices01/headz-api/internal/httperr"
	"github.com/BruksfildServices01/headz-api/internal/identity"
	"github.com/BruksfildServices01/headz-api/internal/models"
	"github.com/BruksfildServices01/headz-api/internal/storage"
)

type Photos interface {
	Save(ctx context.Context, prefix string, r io.Reader) (string, error)
	SaveDataURL(ctx context.Context, prefix, dataURL string) (string, error)
	Remove(ctx context.Context, url string)
}

type TryOn struct {
	repo       domain.Repository
	hairstyles hairstyle.Repository
	photos     Photos
	audit      audit.Recorder
}

func NewTryOn(
	repo domain.Repository,
	hairstyles hairstyle.Repository,
	photos Photos,
	audit audit.Recorder,
) *TryOn {
	return &TryOn{
		repo:       repo,
		hairstyles: hairstyles,
		photos:     photos,
		audit:      audit,
	}
}

// ======================================================
// Start
// ======================================================

// StartInput takes either an uploaded file or a camera capture. When a
// hairstyle is given the wizard jumps straight to the preview, and Save
// finishes it in the same call.
type StartInput struct {
	Photo        io.Reader
	PhotoDataURL string
	HairstyleID  *uuid.UUID
	Save         bool
}

func (uc *TryOn) Start(
	ctx context.Context,
	actor identity.Identity,
	in StartInput,
) (*models.TryOnSession, error) {

	var style *models.Hairstyle
	if in.HairstyleID != nil {
		h, err := uc.hairstyles.GetHairstyle(ctx, *in.HairstyleID)
		if err != nil {
			return nil, err
		}
		style = h
	} else if in.Save {
		return nil, httperr.ErrBusiness("invalid_step")
	}

	url, err := uc.storePhoto(ctx, in)
	if err != nil {
		return nil, err
	}

	s := &models.TryOnSession{
		UserID:           actor.UserID,
		OriginalPhotoURL: url,
		Step:             string(domain.InitialStep()),
	}

	if style != nil {
		if err := domain.SelectStyle(s, style.ID); err != nil {
			return nil, err
		}
		if err := domain.Preview(s); err != nil {
			return nil, err
		}
		if in.Save {
			if err := domain.Save(s); err != nil {
				return nil, err
			}
		}
	}

	if err := uc.repo.CreateSession(ctx, s); err != nil {
		uc.photos.Remove(ctx, url)
		return nil, err
	}
	s.Hairstyle = style

	if s.IsSaved {
		if err := uc.saveHairstyle(ctx, s); err != nil {
			return nil, err
		}
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   "tryon_started",
		Entity:   "tryon_session",
		EntityID: &s.ID,
		Metadata: map[string]string{"step": s.Step},
	})

	return s, nil
}

func (uc *TryOn) storePhoto(ctx context.Context, in StartInput) (string, error) {
	switch {
	case in.Photo != nil:
		return uc.photos.Save(ctx, storage.PrefixTryOnOriginals, in.Photo)
	case strings.TrimSpace(in.PhotoDataURL) != "":
		return uc.photos.SaveDataURL(ctx, storage.PrefixTryOnOriginals, in.PhotoDataURL)
	}
	return "", httperr.ErrBusiness("missing_photo")
}

// ======================================================
// Wizard steps
// ======================================================

func (uc *TryOn) SelectStyle(
	ctx context.Context,
	actor identity.Identity,
	sessionID uuid.UUID,
	hairstyleID uuid.UUID,
) (*models.TryOnSession, error) {

	s, err := uc.repo.GetSession(ctx, actor.UserID, sessionID)
	if err != nil {
		return nil, err
	}

	h, err := uc.hairstyles.GetHairstyle(ctx, hairstyleID)
	if err != nil {
		return nil, err
	}

	if err := domain.SelectStyle(s, h.ID); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateSession(ctx, s); err != nil {
		return nil, err
	}

	s.Hairstyle = h
	return s, nil
}

// Preview is what the client renders on the preview step: the original
// photo with the chosen hairstyle drawn over it.
type Preview struct {
	Session           *models.TryOnSession `json:"session"`
	PhotoURL          string               `json:"photo_url"`
	HairstyleImageURL string               `json:"hairstyle_image_url"`
	OverlayLabel      string               `json:"overlay_label"`
}

func (uc *TryOn) Preview(
	ctx context.Context,
	actor identity.Identity,
	sessionID uuid.UUID,
) (*Preview, error) {

	s, err := uc.repo.GetSession(ctx, actor.UserID, sessionID)
	if err != nil {
		return nil, err
	}

	if err := domain.Preview(s); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateSession(ctx, s); err != nil {
		return nil, err
	}

	return newPreview(s), nil
}

func newPreview(s *models.TryOnSession) *Preview {
	p := &Preview{Session: s, PhotoURL: s.OriginalPhotoURL}
	if s.Hairstyle != nil {
		p.HairstyleImageURL = s.Hairstyle.ImageURL
		p.OverlayLabel = s.Hairstyle.Name
	}
	return p
}

func (uc *TryOn) Back(
	ctx context.Context,
	actor identity.Identity,
	sessionID uuid.UUID,
) (*models.TryOnSession, error) {

	s, err := uc.repo.GetSession(ctx, actor.UserID, sessionID)
	if err != nil {
		return nil, err
	}

	if err := domain.Back(s); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateSession(ctx, s); err != nil {
		return nil, err
	}

	return s, nil
}

// Save finishes the wizard and bookmarks the hairstyle with this session
// as its result.
func (uc *TryOn) Save(
	ctx context.Context,
	actor identity.Identity,
	sessionID uuid.UUID,
) (*models.TryOnSession, error) {

	s, err := uc.repo.GetSession(ctx, actor.UserID, sessionID)
	if err != nil {
		return nil, err
	}

	if err := domain.Save(s); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateSession(ctx, s); err != nil {
		return nil, err
	}

	if err := uc.saveHairstyle(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   "tryon_saved",
		Entity:   "tryon_session",
		EntityID: &s.ID,
	})

	return s, nil
}

func (uc *TryOn) saveHairstyle(ctx context.Context, s *models.TryOnSession) error {
	return uc.repo.UpsertSaved(ctx, &models.SavedHairstyle{
		UserID:         s.UserID,
		HairstyleID:    *s.HairstyleID,
		TryOnSessionID: &s.ID,
	})
}

// ======================================================
// Reads and reset
// ======================================================

func (uc *TryOn) List(ctx context.Context, actor identity.Identity) ([]models.TryOnSession, error) {
	return uc.repo.ListSessions(ctx, actor.UserID)
}

func (uc *TryOn) Get(
	ctx context.Context,
	actor identity.Identity,
	sessionID uuid.UUID,
) (*models.TryOnSession, error) {
	return uc.repo.GetSession(ctx, actor.UserID, sessionID)
}

// Delete resets the wizard by dropping the session and its photo.
func (uc *TryOn) Delete(
	ctx context.Context,
	actor identity.Identity,
	sessionID uuid.UUID,
) error {

	s, err := uc.repo.GetSession(ctx, actor.UserID, sessionID)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteSession(ctx, actor.UserID, s.ID); err != nil {
		return err
	}

	uc.photos.Remove(ctx, s.OriginalPhotoURL)
	return nil
}
