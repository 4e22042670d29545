package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/headz-api/internal/config"
	domain "github.com/BruksfildServices01/headz-api/internal/domain/appointment"
	"github.com/BruksfildServices01/headz-api/internal/httperr"
	"github.com/BruksfildServices01/headz-api/internal/timezone"
)

// Salon bundles the booking rules every appointment use case applies.
type Salon struct {
	Hours      domain.SalonHours
	MinAdvance time.Duration
	Now        func() time.Time
}

func NewSalon(cfg config.SalonConfig) Salon {
	return Salon{
		Hours: domain.SalonHours{
			Open:       cfg.Open,
			Close:      cfg.Close,
			ClosedDays: cfg.ClosedDays,
			Location:   timezone.Location(cfg.Timezone),
		},
		MinAdvance: time.Duration(cfg.MinAdvanceMinutes) * time.Minute,
		Now:        time.Now,
	}
}

func (s Salon) Location() *time.Location {
	if s.Hours.Location == nil {
		return timezone.Location(timezone.DefaultTimezone)
	}
	return s.Hours.Location
}

func (s Salon) now() time.Time {
	if s.Now == nil {
		return time.Now().In(s.Location())
	}
	return s.Now().In(s.Location())
}

// earliest is the first instant a new booking may start.
func (s Salon) earliest() time.Time {
	return s.now().Add(s.MinAdvance)
}

func (s Salon) parseStart(date, hm string) (time.Time, error) {
	start, err := timezone.ParseDateTime(s.Location(), date, hm)
	if err != nil {
		return time.Time{}, httperr.ErrBusiness("invalid_date_or_time")
	}
	return start, nil
}

// checkSlot applies lead time, opening hours and overlap rules to
// [start, end). exclude skips the booking being rescheduled.
func (s Salon) checkSlot(
	ctx context.Context,
	repo domain.Repository,
	start time.Time,
	end time.Time,
	exclude *uuid.UUID,
) error {

	if start.Before(s.earliest()) {
		return httperr.ErrBusiness("too_soon")
	}

	ok, err := s.Hours.Contains(start, end)
	if err != nil {
		return err
	}
	if !ok {
		return httperr.ErrBusiness("outside_salon_hours")
	}

	return repo.AssertNoTimeConflict(ctx, start, end, exclude)
}
