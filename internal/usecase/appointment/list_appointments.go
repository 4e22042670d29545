package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/headz-api/internal/domain/appointment"
	"github.com/BruksfildServices01/headz-api/internal/dto"
	"github.com/BruksfildServices01/headz-api/internal/httperr"
	"github.com/BruksfildServices01/headz-api/internal/identity"
	"github.com/BruksfildServices01/headz-api/internal/timezone"
)

// ListAppointmentsInput narrows the listing. Date (YYYY-MM-DD) wins over
// Month (YYYY-MM); both are read in the salon's zone.
type ListAppointmentsInput struct {
	Actor  identity.Identity
	Date   string
	Month  string
	Status string
}

type ListAppointments struct {
	repo  domain.Repository
	salon Salon
}

func NewListAppointments(
	repo domain.Repository,
	salon Salon,
) *ListAppointments {
	return &ListAppointments{
		repo:  repo,
		salon: salon,
	}
}

// Execute returns the caller's own bookings, or every booking for staff.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	in ListAppointmentsInput,
) ([]dto.AppointmentDTO, error) {

	loc := uc.salon.Location()

	var f domain.ListFilter
	if !in.Actor.IsStaff() {
		f.UserID = &in.Actor.UserID
	}

	if in.Status != "" {
		st, err := domain.ParseStatus(in.Status)
		if err != nil {
			return nil, err
		}
		f.Status = string(st)
	}

	switch {
	case in.Date != "":
		day, err := timezone.ParseDate(loc, in.Date)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
		start, end := timezone.DayBounds(day)
		f.From, f.To = &start, &end

	case in.Month != "":
		month, err := time.ParseInLocation("2006-01", in.Month, loc)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
		end := month.AddDate(0, 1, 0)
		f.From, f.To = &month, &end
	}

	appointments, err := uc.repo.ListAppointments(ctx, f)
	if err != nil {
		return nil, err
	}

	return dto.NewAppointmentDTOs(appointments, loc), nil
}
