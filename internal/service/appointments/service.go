package appointments

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"agenda/backend/internal/domain"
	"agenda/backend/internal/events"
	"agenda/backend/internal/store"
)

const (
	maxIdempotencyKeyLen  = 256
	defaultPublishTimeout = 2 * time.Second
)

type WriteRecorder interface {
	RecordWrite(op, outcome string)
}

type nopRecorder struct{}

func (nopRecorder) RecordWrite(string, string) {}

type Service struct {
	repo      store.AppointmentRepository
	sellers   store.SellerLookup
	publisher events.Publisher
	recorder  WriteRecorder
	log       *slog.Logger
	now       func() time.Time

	publishTimeout time.Duration
}

type Option func(*Service)

// WithSellerLookup replaces the repository as the source for seller
// existence checks, typically with a cached directory.
func WithSellerLookup(lookup store.SellerLookup) Option {
	return func(s *Service) {
		if lookup != nil {
			s.sellers = lookup
		}
	}
}

func WithPublisher(p events.Publisher) Option {
	return func(s *Service) {
		if p != nil {
			s.publisher = p
		}
	}
}

func WithRecorder(rec WriteRecorder) Option {
	return func(s *Service) {
		if rec != nil {
			s.recorder = rec
		}
	}
}

// WithPublishTimeout bounds how long a committed write waits on its change
// event before returning.
func WithPublishTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.publishTimeout = d
		}
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

func NewService(repo store.AppointmentRepository, opts ...Option) *Service {
	s := &Service{
		repo:      repo,
		sellers:   repo,
		publisher: events.NopPublisher{},
		recorder:  nopRecorder{},
		log:       slog.New(slog.DiscardHandler),
		now:       func() time.Time { return time.Now().UTC() },

		publishTimeout: defaultPublishTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type CreateInput struct {
	SellerID       string
	ClientName     string
	Notes          string
	StartTime      time.Time
	EndTime        time.Time
	IdempotencyKey string
}

// Create validates and stores a new appointment. Validation and the write run
// inside the seller's scope, so no concurrent writer for the same seller can
// slip an overlapping appointment in between.
func (s *Service) Create(ctx context.Context, in CreateInput) (domain.Appointment, error) {
	appt := domain.Appointment{
		SellerID:   strings.TrimSpace(in.SellerID),
		ClientName: strings.TrimSpace(in.ClientName),
		Notes:      in.Notes,
		StartTime:  domain.CanonicalTime(in.StartTime),
		EndTime:    domain.CanonicalTime(in.EndTime),
	}

	key := strings.TrimSpace(in.IdempotencyKey)
	if key != "" {
		if len(key) > maxIdempotencyKeyLen {
			s.recorder.RecordWrite("create", string(KindInvalidArgument))
			return domain.Appointment{}, validationError("idempotency_key too long")
		}
		appt.ID = uuid.NewSHA1(uuid.NameSpaceOID, []byte("agenda:create_appointment:"+appt.SellerID+":"+key))
	}

	var (
		created  domain.Appointment
		replayed bool
	)
	err := s.inScope(ctx, appt.SellerID, func(ctx context.Context, tx store.SellerTx) error {
		if appt.ID != uuid.Nil {
			existing, err := tx.GetAppointment(ctx, appt.ID)
			switch {
			case err == nil:
				if !existing.SameBooking(appt) {
					return store.ErrIdempotencyConflict
				}
				created, replayed = existing, true
				return nil
			case !errors.Is(err, store.ErrNotFound):
				return fmt.Errorf("load idempotent appointment: %w", err)
			}
		}

		if err := Validate(ctx, appt, scopedSource{sellers: s.sellers, tx: tx}); err != nil {
			return err
		}
		out, err := tx.CreateAppointment(ctx, appt)
		if err != nil {
			return err
		}
		created = out
		return nil
	})
	err = fromStore(err, appt.SellerID)
	s.recordWrite(ctx, "create", err)
	if err != nil {
		return domain.Appointment{}, err
	}

	if !replayed {
		s.publish(ctx, events.TypeAppointmentCreated, created)
	}
	return created, nil
}

type UpdateInput struct {
	AppointmentID uuid.UUID
	SellerID      string
	ClientName    string
	Notes         string
	StartTime     time.Time
	EndTime       time.Time
}

// Update replaces the booking data of an existing appointment. The candidate
// is validated against the target seller's other appointments, never against
// its own prior version.
func (s *Service) Update(ctx context.Context, in UpdateInput) (domain.Appointment, error) {
	if in.AppointmentID == uuid.Nil {
		s.recorder.RecordWrite("update", string(KindInvalidArgument))
		return domain.Appointment{}, validationError("appointment_id is required")
	}

	sellerID := strings.TrimSpace(in.SellerID)

	var updated domain.Appointment
	err := s.inScope(ctx, sellerID, func(ctx context.Context, tx store.SellerTx) error {
		prior, err := tx.GetAppointment(ctx, in.AppointmentID)
		if err != nil {
			return err
		}

		candidate := prior
		candidate.SellerID = sellerID
		candidate.ClientName = strings.TrimSpace(in.ClientName)
		candidate.Notes = in.Notes
		candidate.StartTime = domain.CanonicalTime(in.StartTime)
		candidate.EndTime = domain.CanonicalTime(in.EndTime)

		if err := Validate(ctx, candidate, scopedSource{sellers: s.sellers, tx: tx}); err != nil {
			return err
		}
		out, err := tx.UpdateAppointment(ctx, candidate)
		if err != nil {
			return err
		}
		updated = out
		return nil
	})
	err = fromStore(err, sellerID)
	s.recordWrite(ctx, "update", err)
	if err != nil {
		return domain.Appointment{}, err
	}

	s.publish(ctx, events.TypeAppointmentUpdated, updated)
	return updated, nil
}

// Delete removes an appointment. Removing an interval cannot create an
// overlap, so it is never validated.
func (s *Service) Delete(ctx context.Context, appointmentID uuid.UUID) error {
	if appointmentID == uuid.Nil {
		s.recorder.RecordWrite("delete", string(KindInvalidArgument))
		return validationError("appointment_id is required")
	}

	deleted, err := s.repo.Delete(ctx, appointmentID)
	s.recordWrite(ctx, "delete", err)
	if err != nil {
		return err
	}

	s.publish(ctx, events.TypeAppointmentDeleted, deleted)
	return nil
}

func (s *Service) Get(ctx context.Context, appointmentID uuid.UUID) (domain.Appointment, error) {
	if appointmentID == uuid.Nil {
		return domain.Appointment{}, validationError("appointment_id is required")
	}
	return s.repo.Get(ctx, appointmentID)
}

func (s *Service) List(ctx context.Context, sellerID string, windowStart, windowEnd time.Time) ([]domain.Appointment, error) {
	sellerID = strings.TrimSpace(sellerID)
	if sellerID == "" {
		return nil, validationError("seller_id is required")
	}

	start := domain.CanonicalTime(windowStart)
	end := domain.CanonicalTime(windowEnd)
	if end.Equal(start) || end.Before(start) {
		return nil, validationError("window_end must be after window_start")
	}

	return s.repo.List(ctx, sellerID, start, end)
}

// inScope rejects an empty seller before any scope is opened; there is
// nothing to serialize on.
func (s *Service) inScope(ctx context.Context, sellerID string, fn func(ctx context.Context, tx store.SellerTx) error) error {
	if sellerID == "" {
		return missingSeller("")
	}
	return s.repo.InSellerScope(ctx, sellerID, fn)
}

func (s *Service) recordWrite(ctx context.Context, op string, err error) {
	outcome := Outcome(err)
	s.recorder.RecordWrite(op, outcome)
	if outcome == "error" {
		s.log.ErrorContext(ctx, "appointment write failed", "op", op, "error", err)
	}
}

// publish runs after commit. It is detached from the caller's cancellation
// and bounded by publishTimeout so a slow broker never eats the request
// deadline of a write that already succeeded.
func (s *Service) publish(ctx context.Context, t events.Type, appt domain.Appointment) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.publishTimeout)
	defer cancel()

	ev, err := events.New(t, appt, s.now())
	if err == nil {
		err = s.publisher.Publish(ctx, ev)
	}
	if err != nil {
		s.log.WarnContext(ctx, "publish appointment event",
			"event_type", string(t),
			"appointment_id", appt.ID.String(),
			"error", err,
		)
		if fr, ok := s.recorder.(interface{ RecordPublishFailure() }); ok {
			fr.RecordPublishFailure()
		}
	}
}
