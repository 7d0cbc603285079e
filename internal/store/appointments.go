package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"agenda/backend/internal/domain"
)

type SellerLookup interface {
	SellerExists(ctx context.Context, sellerID string) (bool, error)
}

type AppointmentRepository interface {
	SellerLookup

	// InSellerScope runs fn while no other scope for sellerID can run, and
	// commits fn's writes when it returns nil.
	InSellerScope(ctx context.Context, sellerID string, fn func(ctx context.Context, tx SellerTx) error) error

	Get(ctx context.Context, appointmentID uuid.UUID) (domain.Appointment, error)
	List(ctx context.Context, sellerID string, windowStart, windowEnd time.Time) ([]domain.Appointment, error)
	Delete(ctx context.Context, appointmentID uuid.UUID) (domain.Appointment, error)
}

// SellerTx is the unit of work handed out by InSellerScope.
type SellerTx interface {
	SellerLookup

	// FindBySeller returns every appointment of sellerID except excludeID.
	// uuid.Nil excludes nothing.
	FindBySeller(ctx context.Context, sellerID string, excludeID uuid.UUID) ([]domain.Appointment, error)
	GetAppointment(ctx context.Context, appointmentID uuid.UUID) (domain.Appointment, error)
	CreateAppointment(ctx context.Context, appt domain.Appointment) (domain.Appointment, error)
	UpdateAppointment(ctx context.Context, appt domain.Appointment) (domain.Appointment, error)
}
