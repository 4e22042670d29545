package appointment

import (
	"context"
	"log/slog"
	"strings"

	"github.com/BruksfildServices01/headz-api/internal/audit"
	domain "github.com/BruksfildServices01/headz-api/internal/domain/appointment"
	"github.com/BruksfildServices01/headz-api/internal/domain/profile"
	"github.com/BruksfildServices01/headz-api/internal/httperr"
	"github.com/BruksfildServices01/headz-api/internal/identity"
	"github.com/BruksfildServices01/headz-api/internal/models"
	"github.com/BruksfildServices01/headz-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	Actor identity.Identity

	Service string
	Date    string
	Time    string
	Notes   string

	ContactName  string
	ContactPhone string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo     domain.Repository
	profiles profile.Repository
	salon    Salon
	audit    audit.Recorder
}

func NewCreateAppointment(
	repo domain.Repository,
	profiles profile.Repository,
	salon Salon,
	audit audit.Recorder,
) *CreateAppointment {
	return &CreateAppointment{
		repo:     repo,
		profiles: profiles,
		salon:    salon,
		audit:    audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Service and date / time in the salon's zone
	// --------------------------------------------------
	service, err := domain.ParseService(in.Service)
	if err != nil {
		return nil, err
	}

	start, err := uc.salon.parseStart(in.Date, in.Time)
	if err != nil {
		return nil, err
	}
	end := start.Add(service.Duration())

	// --------------------------------------------------
	// Contact
	// --------------------------------------------------
	phone := strings.TrimSpace(in.ContactPhone)
	if phone != "" && !validators.IsPhoneValid(phone) {
		return nil, httperr.ErrBusiness("invalid_phone")
	}
	contactName := strings.TrimSpace(in.ContactName)
	if !validators.FitsColumn(contactName, validators.MaxNameLength) {
		return nil, httperr.ErrBusiness("field_too_long")
	}

	// --------------------------------------------------
	// Lead time, opening hours, overlap
	// --------------------------------------------------
	if err := uc.salon.checkSlot(ctx, uc.repo, start, end, nil); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Create (status centralised in the domain)
	// --------------------------------------------------
	ap := &models.Appointment{
		UserID:       in.Actor.UserID,
		Service:      string(service),
		StartsAt:     start,
		EndsAt:       end,
		Status:       string(domain.InitialStatus()),
		Notes:        strings.TrimSpace(in.Notes),
		ContactName:  contactName,
		ContactPhone: phone,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// the booking stands even when the profile cannot be written
	if phone != "" {
		if err := uc.ensureProfile(ctx, in.Actor, contactName, phone); err != nil {
			slog.WarnContext(ctx, "booking profile not created",
				"user_id", in.Actor.UserID, "appointment_id", ap.ID, "error", err)
		}
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.Actor.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{"service": ap.Service},
	})

	return ap, nil
}

// ensureProfile gives a first-time booker a profile carrying the phone
// they booked with. Existing profiles are left untouched.
func (uc *CreateAppointment) ensureProfile(
	ctx context.Context,
	actor identity.Identity,
	name string,
	phone string,
) error {

	_, err := uc.profiles.GetProfile(ctx, actor.UserID)
	if err == nil {
		return nil
	}
	if !httperr.IsBusiness(err, "profile_not_found") {
		return err
	}

	return uc.profiles.SaveProfile(ctx, &models.UserProfile{
		UserID:   actor.UserID,
		FullName: name,
		Email:    actor.Email,
		Phone:    phone,
	})
}
