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

type CompleteAppointment struct {
	repo  domain.Repository
	salon Salon
	audit audit.Recorder
}

func NewCompleteAppointment(
	repo domain.Repository,
	salon Salon,
	audit audit.Recorder,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:  repo,
		salon: salon,
		audit: audit,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	actor identity.Identity,
	appointmentID uuid.UUID,
) (*models.Appointment, error) {

	if !actor.IsStaff() {
		return nil, httperr.ErrBusiness("forbidden")
	}

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := domain.Complete(ap, uc.salon.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   "appointment_completed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
