package handlers

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/headz-api/internal/audit"
	apDomain "github.com/BruksfildServices01/headz-api/internal/domain/appointment"
	hsDomain "github.com/BruksfildServices01/headz-api/internal/domain/hairstyle"
	"github.com/BruksfildServices01/headz-api/internal/httperr"
	"github.com/BruksfildServices01/headz-api/internal/models"
)

type nopRecorder struct{}

func (nopRecorder) Dispatch(audit.Event) {}

// ------------------------------------------------------
// hairstyles
// ------------------------------------------------------

type fakeHairstyles struct {
	styles []models.Hairstyle
	likes  map[uuid.UUID]int
	last   hsDomain.Filter
}

func (f *fakeHairstyles) ListCategories(context.Context) ([]models.HairstyleCategory, error) {
	return []models.HairstyleCategory{}, nil
}

func (f *fakeHairstyles) GetCategory(_ context.Context, id uuid.UUID) (*models.HairstyleCategory, error) {
	return nil, httperr.ErrBusiness("category_not_found")
}

func (f *fakeHairstyles) CreateCategory(_ context.Context, c *models.HairstyleCategory) error {
	c.ID = uuid.New()
	return nil
}

func (f *fakeHairstyles) ListHairstyles(_ context.Context, filter hsDomain.Filter) ([]models.Hairstyle, error) {
	f.last = filter
	return f.styles, nil
}

func (f *fakeHairstyles) GetHairstyle(_ context.Context, id uuid.UUID) (*models.Hairstyle, error) {
	for i := range f.styles {
		if f.styles[i].ID == id {
			return &f.styles[i], nil
		}
	}
	return nil, httperr.ErrBusiness("hairstyle_not_found")
}

func (f *fakeHairstyles) CreateHairstyle(_ context.Context, h *models.Hairstyle) error {
	h.ID = uuid.New()
	f.styles = append(f.styles, *h)
	return nil
}

func (f *fakeHairstyles) IncrementLikes(_ context.Context, id uuid.UUID) (int, error) {
	if _, err := f.GetHairstyle(context.Background(), id); err != nil {
		return 0, err
	}
	if f.likes == nil {
		f.likes = map[uuid.UUID]int{}
	}
	f.likes[id]++
	return f.likes[id], nil
}

// ------------------------------------------------------
// appointments
// ------------------------------------------------------

type fakeAppointments struct {
	byID map[uuid.UUID]*models.Appointment
	busy []apDomain.Interval
}

func newFakeAppointments() *fakeAppointments {
	return &fakeAppointments{byID: map[uuid.UUID]*models.Appointment{}}
}

func (f *fakeAppointments) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	ap.ID = uuid.New()
	f.byID[ap.ID] = ap
	return nil
}

func (f *fakeAppointments) AssertNoTimeConflict(_ context.Context, start, end time.Time, exclude *uuid.UUID) error {
	for _, ap := range f.byID {
		if exclude != nil && ap.ID == *exclude {
			continue
		}
		if ap.StartsAt.Before(end) && ap.EndsAt.After(start) {
			return httperr.ErrBusiness("time_conflict")
		}
	}
	return nil
}

func (f *fakeAppointments) GetAppointment(_ context.Context, id uuid.UUID) (*models.Appointment, error) {
	ap, ok := f.byID[id]
	if !ok {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	return ap, nil
}

func (f *fakeAppointments) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	f.byID[ap.ID] = ap
	return nil
}

func (f *fakeAppointments) DeleteAppointment(_ context.Context, id uuid.UUID) error {
	delete(f.byID, id)
	return nil
}

func (f *fakeAppointments) ListAppointments(_ context.Context, filter apDomain.ListFilter) ([]models.Appointment, error) {
	out := []models.Appointment{}
	for _, ap := range f.byID {
		if filter.UserID != nil && ap.UserID != *filter.UserID {
			continue
		}
		out = append(out, *ap)
	}
	return out, nil
}

func (f *fakeAppointments) ListBusyIntervals(context.Context, time.Time, time.Time) ([]apDomain.Interval, error) {
	return f.busy, nil
}

// ------------------------------------------------------
// profiles
// ------------------------------------------------------

type fakeProfiles struct {
	byUser map[uuid.UUID]*models.UserProfile
}

func newFakeProfiles() *fakeProfiles {
	return &fakeProfiles{byUser: map[uuid.UUID]*models.UserProfile{}}
}

func (f *fakeProfiles) GetProfile(_ context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	p, ok := f.byUser[userID]
	if !ok {
		return nil, httperr.ErrBusiness("profile_not_found")
	}
	return p, nil
}

func (f *fakeProfiles) SaveProfile(_ context.Context, p *models.UserProfile) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	f.byUser[p.UserID] = p
	return nil
}

func (f *fakeProfiles) ListProfiles(context.Context) ([]models.UserProfile, error) {
	out := []models.UserProfile{}
	for _, p := range f.byUser {
		out = append(out, *p)
	}
	return out, nil
}

// ------------------------------------------------------
// try-on sessions
// ------------------------------------------------------

type fakeTryOns struct {
	sessions map[uuid.UUID]*models.TryOnSession
}

func newFakeTryOns() *fakeTryOns {
	return &fakeTryOns{sessions: map[uuid.UUID]*models.TryOnSession{}}
}

func (f *fakeTryOns) CreateSession(_ context.Context, s *models.TryOnSession) error {
	s.ID = uuid.New()
	f.sessions[s.ID] = s
	return nil
}

func (f *fakeTryOns) GetSession(_ context.Context, userID, id uuid.UUID) (*models.TryOnSession, error) {
	s, ok := f.sessions[id]
	if !ok || s.UserID != userID {
		return nil, httperr.ErrBusiness("session_not_found")
	}
	return s, nil
}

func (f *fakeTryOns) UpdateSession(_ context.Context, s *models.TryOnSession) error {
	f.sessions[s.ID] = s
	return nil
}

func (f *fakeTryOns) DeleteSession(_ context.Context, userID, id uuid.UUID) error {
	delete(f.sessions, id)
	return nil
}

func (f *fakeTryOns) ListSessions(_ context.Context, userID uuid.UUID) ([]models.TryOnSession, error) {
	out := []models.TryOnSession{}
	for _, s := range f.sessions {
		if s.UserID == userID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeTryOns) UpsertSaved(context.Context, *models.SavedHairstyle) error { return nil }

func (f *fakeTryOns) ListSaved(context.Context, uuid.UUID) ([]models.SavedHairstyle, error) {
	return []models.SavedHairstyle{}, nil
}

func (f *fakeTryOns) DeleteSaved(context.Context, uuid.UUID, uuid.UUID) (bool, error) {
	return false, nil
}
