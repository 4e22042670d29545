// Package profile manages the salon-side profile of a signed-in user.
package profile

import (
	"context"
	"io"
	"strings"

	"github.com/BruksfildServices01/headz-api/internal/audit"
	domain "github.com/BruksfildServices01/headz-api/internal/domain/profile"
	"github.com/BruksfildServices01/headz-api/internal/httperr"
	"github.com/BruksfildServices01/headz-api/internal/identity"
	"github.com/BruksfildServices01/headz-api/internal/models"
	"github.com/BruksfildServices01/headz-api/internal/storage"
	"github.com/BruksfildServices01/headz-api/internal/validators"
)

type Photos interface {
	Save(ctx context.Context, prefix string, r io.Reader) (string, error)
	Remove(ctx context.Context, url string)
}

// EmailCheck reports whether an address's domain can receive mail.
type EmailCheck func(ctx context.Context, email string) bool

type Profiles struct {
	repo       domain.Repository
	photos     Photos
	audit      audit.Recorder
	checkEmail EmailCheck
}

// NewProfiles wires the use case. A nil checkEmail skips domain checks.
func NewProfiles(
	repo domain.Repository,
	photos Photos,
	audit audit.Recorder,
	checkEmail EmailCheck,
) *Profiles {
	return &Profiles{
		repo:       repo,
		photos:     photos,
		audit:      audit,
		checkEmail: checkEmail,
	}
}

func (uc *Profiles) Get(ctx context.Context, actor identity.Identity) (*models.UserProfile, error) {
	return uc.repo.GetProfile(ctx, actor.UserID)
}

// UpsertInput carries the editable fields; nil leaves a field unchanged.
type UpsertInput struct {
	FullName         *string
	Email            *string
	Phone            *string
	PreferredStylist *string
}

func (uc *Profiles) Upsert(
	ctx context.Context,
	actor identity.Identity,
	in UpsertInput,
) (*models.UserProfile, error) {

	p, err := uc.loadOrNew(ctx, actor)
	if err != nil {
		return nil, err
	}

	if in.Phone != nil {
		phone := strings.TrimSpace(*in.Phone)
		if phone != "" && !validators.IsPhoneValid(phone) {
			return nil, httperr.ErrBusiness("invalid_phone")
		}
		p.Phone = phone
	}

	if in.Email != nil {
		email := strings.TrimSpace(*in.Email)
		if !validators.FitsColumn(email, validators.MaxEmailLength) {
			return nil, httperr.ErrBusiness("field_too_long")
		}
		if email != "" && uc.checkEmail != nil && !uc.checkEmail(ctx, email) {
			return nil, httperr.ErrBusiness("invalid_email_domain")
		}
		p.Email = email
	}

	if in.FullName != nil {
		name := strings.TrimSpace(*in.FullName)
		if !validators.FitsColumn(name, validators.MaxNameLength) {
			return nil, httperr.ErrBusiness("field_too_long")
		}
		p.FullName = name
	}
	if in.PreferredStylist != nil {
		stylist := strings.TrimSpace(*in.PreferredStylist)
		if !validators.FitsColumn(stylist, validators.MaxStylistLength) {
			return nil, httperr.ErrBusiness("field_too_long")
		}
		p.PreferredStylist = stylist
	}

	if err := uc.repo.SaveProfile(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   "profile_updated",
		Entity:   "user_profile",
		EntityID: &p.ID,
	})

	return p, nil
}

// UploadPicture stores a new profile picture and removes the previous one.
func (uc *Profiles) UploadPicture(
	ctx context.Context,
	actor identity.Identity,
	r io.Reader,
) (*models.UserProfile, error) {

	p, err := uc.loadOrNew(ctx, actor)
	if err != nil {
		return nil, err
	}

	url, err := uc.photos.Save(ctx, storage.PrefixProfiles, r)
	if err != nil {
		return nil, err
	}

	previous := p.ProfilePictureURL
	p.ProfilePictureURL = url

	if err := uc.repo.SaveProfile(ctx, p); err != nil {
		uc.photos.Remove(ctx, url)
		return nil, err
	}

	if previous != "" {
		uc.photos.Remove(ctx, previous)
	}

	return p, nil
}

// List returns every profile. Staff only.
func (uc *Profiles) List(ctx context.Context, actor identity.Identity) ([]models.UserProfile, error) {
	if !actor.IsStaff() {
		return nil, httperr.ErrBusiness("forbidden")
	}
	return uc.repo.ListProfiles(ctx)
}

func (uc *Profiles) loadOrNew(ctx context.Context, actor identity.Identity) (*models.UserProfile, error) {
	p, err := uc.repo.GetProfile(ctx, actor.UserID)
	if err == nil {
		return p, nil
	}
	if !httperr.IsBusiness(err, "profile_not_found") {
		return nil, err
	}

	return &models.UserProfile{
		UserID: actor.UserID,
		Email:  actor.Email,
	}, nil
}
