package appointment

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/headz-api/internal/audit"
	domain "github.com/BruksfildServices01/headz-api/internal/domain/appointment"
	"github.com/BruksfildServices01/headz-api/internal/httperr"
	"github.com/BruksfildServices01/headz-api/internal/models"
)

type fakeRepo struct {
	apps map[uuid.UUID]*models.Appointment

	createErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{apps: map[uuid.UUID]*models.Appointment{}}
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if r.createErr != nil {
		return r.createErr
	}
	if ap.ID == uuid.Nil {
		ap.ID = uuid.New()
	}
	cp := *ap
	r.apps[ap.ID] = &cp
	return nil
}

func (r *fakeRepo) AssertNoTimeConflict(_ context.Context, start, end time.Time, exclude *uuid.UUID) error {
	for id, ap := range r.apps {
		if exclude != nil && *exclude == id {
			continue
		}
		if !domain.Status(ap.Status).Active() {
			continue
		}
		if ap.StartsAt.Before(end) && ap.EndsAt.After(start) {
			return httperr.ErrBusiness("time_conflict")
		}
	}
	return nil
}

func (r *fakeRepo) GetAppointment(_ context.Context, id uuid.UUID) (*models.Appointment, error) {
	ap, ok := r.apps[id]
	if !ok {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	cp := *ap
	return &cp, nil
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	cp := *ap
	r.apps[ap.ID] = &cp
	return nil
}

func (r *fakeRepo) DeleteAppointment(_ context.Context, id uuid.UUID) error {
	if _, ok := r.apps[id]; !ok {
		return httperr.ErrBusiness("appointment_not_found")
	}
	delete(r.apps, id)
	return nil
}

func (r *fakeRepo) ListAppointments(_ context.Context, f domain.ListFilter) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.apps {
		if f.UserID != nil && ap.UserID != *f.UserID {
			continue
		}
		if f.From != nil && ap.StartsAt.Before(*f.From) {
			continue
		}
		if f.To != nil && !ap.StartsAt.Before(*f.To) {
			continue
		}
		if f.Status != "" && ap.Status != f.Status {
			continue
		}
		out = append(out, *ap)
	}
	return out, nil
}

func (r *fakeRepo) ListBusyIntervals(_ context.Context, start, end time.Time) ([]domain.Interval, error) {
	var out []domain.Interval
	for _, ap := range r.apps {
		if domain.Status(ap.Status).Active() && ap.StartsAt.Before(end) && ap.EndsAt.After(start) {
			out = append(out, domain.Interval{Start: ap.StartsAt, End: ap.EndsAt})
		}
	}
	return out, nil
}

type fakeProfiles struct {
	byUser map[uuid.UUID]*models.UserProfile

	saveErr error
}

func (p *fakeProfiles) GetProfile(_ context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	if pr, ok := p.byUser[userID]; ok {
		return pr, nil
	}
	return nil, httperr.ErrBusiness("profile_not_found")
}

func (p *fakeProfiles) SaveProfile(_ context.Context, pr *models.UserProfile) error {
	if p.saveErr != nil {
		return p.saveErr
	}
	p.byUser[pr.UserID] = pr
	return nil
}

func (p *fakeProfiles) ListProfiles(context.Context) ([]models.UserProfile, error) {
	return nil, nil
}

type recorder struct {
	mu     sync.Mutex
	events []audit.Event
}

func (r *recorder) Dispatch(ev audit.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Action)
	}
	return out
}
