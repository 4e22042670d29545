package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/headz-api/internal/audit"
	domain "github.com/BruksfildServices01/headz-api/internal/domain/appointment"
	"github.com/BruksfildServices01/headz-api/internal/httperr"
	"github.com/BruksfildServices01/headz-api/internal/identity"
	"github.com/BruksfildServices01/headz-api/internal/models"
)

type CancelAppointment struct {
	repo  domain.Repository
	salon Salon
	audit audit.Recorder
}

func NewCancelAppointment(
	repo domain.Repository,
	salon Salon,
	audit audit.Recorder,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		salon: salon,
		audit: audit,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	actor identity.Identity,
	appointmentID uuid.UUID,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if !actor.Owns(ap.UserID) {
		return nil, httperr.ErrBusiness("forbidden")
	}

	if err := domain.Cancel(ap, uc.salon.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
