package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/headz-api/internal/models"
)

type ListFilter struct {
	UserID *uuid.UUID
	From   *time.Time
	To     *time.Time
	Status string
}

type Repository interface {
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// AssertNoTimeConflict fails with time_conflict when an active booking
	// other than exclude overlaps [start, end).
	AssertNoTimeConflict(
		ctx context.Context,
		start time.Time,
		end time.Time,
		exclude *uuid.UUID,
	) error

	GetAppointment(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uuid.UUID,
	) error

	ListAppointments(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Appointment, error)

	ListBusyIntervals(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]Interval, error)
}
