package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Appointment books the half-open interval [StartTime, EndTime) of a seller
// for one client.
type Appointment struct {
	bun.BaseModel `bun:"table:appointments"`

	ID         uuid.UUID `bun:"id,pk,type:uuid"`
	SellerID   string    `bun:"seller_id,notnull"`
	ClientName string    `bun:"client_name,notnull"`
	Notes      string    `bun:"notes"`
	StartTime  time.Time `bun:"start_time,notnull"`
	EndTime    time.Time `bun:"end_time,notnull"`
	CreatedAt  time.Time `bun:"created_at,notnull"`
	UpdatedAt  time.Time `bun:"updated_at,notnull"`
}

func (a *Appointment) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	now := time.Now().UTC()
	switch query.(type) {
	case *bun.InsertQuery:
		if err := a.assignID(); err != nil {
			return err
		}
		if a.CreatedAt.IsZero() {
			a.CreatedAt = now
		}
		if a.UpdatedAt.IsZero() {
			a.UpdatedAt = now
		}
	case *bun.UpdateQuery:
		a.UpdatedAt = now
	}
	return nil
}

func (a *Appointment) assignID() error {
	if a.ID != uuid.Nil {
		return nil
	}
	id, err := uuid.NewV7()
	if err != nil {
		return err
	}
	a.ID = id
	return nil
}

// PrepareInsert fills the identity and timestamps the storage hook would set.
// Stores that do not go through bun call it before persisting.
func (a *Appointment) PrepareInsert(now time.Time) error {
	if err := a.assignID(); err != nil {
		return err
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}
	return nil
}

// Overlaps reports whether a and other share any instant.
func (a Appointment) Overlaps(other Appointment) bool {
	return Overlaps(a.StartTime, a.EndTime, other.StartTime, other.EndTime)
}

// SameBooking reports whether b carries the same booking data as a,
// ignoring identity and bookkeeping timestamps.
func (a Appointment) SameBooking(b Appointment) bool {
	return a.SellerID == b.SellerID &&
		a.ClientName == b.ClientName &&
		a.Notes == b.Notes &&
		a.StartTime.Equal(b.StartTime) &&
		a.EndTime.Equal(b.EndTime)
}
