package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/headz-api/internal/domain/appointment"
	"github.com/BruksfildServices01/headz-api/internal/httperr"
	"github.com/BruksfildServices01/headz-api/internal/timezone"
)

type GetAvailability struct {
	repo  domain.Repository
	salon Salon
}

func NewGetAvailability(repo domain.Repository, salon Salon) *GetAvailability {
	return &GetAvailability{repo: repo, salon: salon}
}

// Execute lists the free slots of the service's length on date, which is
// read as YYYY-MM-DD in the salon's zone.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	date string,
	service string,
) ([]domain.TimeSlot, error) {

	svc, err := domain.ParseService(service)
	if err != nil {
		return nil, err
	}

	day, err := timezone.ParseDate(uc.salon.Location(), date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	in := domain.AvailabilityInput{Date: day, Service: svc}

	dayStart, dayEnd := timezone.DayBounds(in.Date)
	busy, err := uc.repo.ListBusyIntervals(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	return uc.salon.Hours.FreeSlots(in.Date, in.Service.Duration(), busy, uc.salon.earliest())
}
