package appointment

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/headz-api/internal/audit"
	domain "github.com/BruksfildServices01/headz-api/internal/domain/appointment"
	"github.com/BruksfildServices01/headz-api/internal/httperr"
	"github.com/BruksfildServices01/headz-api/internal/identity"
	"github.com/BruksfildServices01/headz-api/internal/models"
	"github.com/BruksfildServices01/headz-api/internal/timezone"
)

// UpdateAppointmentInput carries a partial edit; nil fields are unchanged.
type UpdateAppointmentInput struct {
	Actor identity.Identity
	ID    uuid.UUID

	Service *string
	Date    *string
	Time    *string
	Notes   *string
}

type UpdateAppointment struct {
	repo  domain.Repository
	salon Salon
	audit audit.Recorder
}

func NewUpdateAppointment(
	repo domain.Repository,
	salon Salon,
	audit audit.Recorder,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		salon: salon,
		audit: audit,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if !in.Actor.Owns(ap.UserID) {
		return nil, httperr.ErrBusiness("forbidden")
	}

	if err := domain.CanReschedule(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	service := domain.Service(ap.Service)
	if in.Service != nil {
		if service, err = domain.ParseService(*in.Service); err != nil {
			return nil, err
		}
	}

	current := ap.StartsAt.In(uc.salon.Location())
	date := current.Format(timezone.DateLayout)
	hm := current.Format(timezone.TimeLayout)
	if in.Date != nil {
		date = *in.Date
	}
	if in.Time != nil {
		hm = *in.Time
	}

	start, err := uc.salon.parseStart(date, hm)
	if err != nil {
		return nil, err
	}
	end := start.Add(service.Duration())

	if !start.Equal(ap.StartsAt) || !end.Equal(ap.EndsAt) {
		if err := uc.salon.checkSlot(ctx, uc.repo, start, end, &ap.ID); err != nil {
			return nil, err
		}
	}

	ap.Service = string(service)
	ap.StartsAt = start
	ap.EndsAt = end
	if in.Notes != nil {
		ap.Notes = strings.TrimSpace(*in.Notes)
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.Actor.UserID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
