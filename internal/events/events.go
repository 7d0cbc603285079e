package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"agenda/backend/internal/domain"
)

type Type string

const (
	TypeAppointmentCreated Type = "appointment.created"
	TypeAppointmentUpdated Type = "appointment.updated"
	TypeAppointmentDeleted Type = "appointment.deleted"
)

// Event describes a committed change to a seller's appointment set.
type Event struct {
	ID          uuid.UUID
	Type        Type
	OccurredAt  time.Time
	Appointment domain.Appointment
}

func New(t Type, appt domain.Appointment, now time.Time) (Event, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return Event{}, err
	}
	return Event{
		ID:          id,
		Type:        t,
		OccurredAt:  now.UTC(),
		Appointment: appt,
	}, nil
}

type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
