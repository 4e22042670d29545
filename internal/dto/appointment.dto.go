package dto

import (
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/headz-api/internal/domain/appointment"
	"github.com/BruksfildServices01/headz-api/internal/models"
	"github.com/BruksfildServices01/headz-api/internal/timezone"
)

// AppointmentDTO exposes the booking with wall-clock date and times in the
// salon's zone, the way the booking form entered them.
type AppointmentDTO struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`

	Service      string `json:"service"`
	ServiceLabel string `json:"service_label"`

	Date      string    `json:"date"`
	Time      string    `json:"time"`
	EndTime   string    `json:"end_time"`
	StartsAt  time.Time `json:"starts_at"`
	EndsAt    time.Time `json:"ends_at"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`

	ContactName  string `json:"contact_name,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`

	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func NewAppointmentDTO(ap *models.Appointment, loc *time.Location) AppointmentDTO {
	start := ap.StartsAt.In(loc)
	end := ap.EndsAt.In(loc)

	return AppointmentDTO{
		ID:           ap.ID,
		UserID:       ap.UserID,
		Service:      ap.Service,
		ServiceLabel: domain.Service(ap.Service).Label(),
		Date:         start.Format(timezone.DateLayout),
		Time:         start.Format(timezone.TimeLayout),
		EndTime:      end.Format(timezone.TimeLayout),
		StartsAt:     start,
		EndsAt:       end,
		Status:       ap.Status,
		Notes:        ap.Notes,
		CreatedAt:    ap.CreatedAt,
		ContactName:  ap.ContactName,
		ContactPhone: ap.ContactPhone,
		CancelledAt:  ap.CancelledAt,
		CompletedAt:  ap.CompletedAt,
	}
}

func NewAppointmentDTOs(list []models.Appointment, loc *time.Location) []AppointmentDTO {
	out := make([]AppointmentDTO, 0, len(list))
	for i := range list {
		out = append(out, NewAppointmentDTO(&list[i], loc))
	}
	return out
}
