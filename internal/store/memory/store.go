package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"agenda/backend/internal/domain"
	"agenda/backend/internal/store"
)

// Store keeps sellers and appointments in process memory. Writers are
// serialized per seller by InSellerScope, and every commit re-checks the
// per-seller no-overlap rule the way the postgres exclusion constraint does.
// Each stored appointment carries a revision; a commit fails when a record
// it read was deleted or rewritten by someone else in the meantime.
type Store struct {
	mu           sync.RWMutex
	sellers      map[string]domain.Seller
	appointments map[uuid.UUID]domain.Appointment
	revs         map[uuid.UUID]uint64
	lastRev      uint64

	locks keyedMutex
	now   func() time.Time
}

func New() *Store {
	return &Store{
		sellers:      make(map[string]domain.Seller),
		appointments: make(map[uuid.UUID]domain.Appointment),
		revs:         make(map[uuid.UUID]uint64),
		locks:        keyedMutex{locks: make(map[string]*refMutex)},
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) AddSeller(seller domain.Seller) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seller.CreatedAt.IsZero() {
		seller.CreatedAt = s.now()
	}
	s.sellers[seller.ID] = seller
}

func (s *Store) SellerExists(ctx context.Context, sellerID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.sellers[sellerID]
	return ok, nil
}

func (s *Store) InSellerScope(ctx context.Context, sellerID string, fn func(ctx context.Context, tx store.SellerTx) error) error {
	unlock := s.locks.Lock(sellerID)
	defer unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	tx := &sellerTx{
		store:   s,
		pending: make(map[uuid.UUID]domain.Appointment),
		reads:   make(map[uuid.UUID]uint64),
	}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	return s.commit(tx)
}

func (s *Store) Get(ctx context.Context, appointmentID uuid.UUID) (domain.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.appointments[appointmentID]
	if !ok {
		return domain.Appointment{}, store.ErrNotFound
	}
	return a, nil
}

func (s *Store) List(ctx context.Context, sellerID string, windowStart, windowEnd time.Time) ([]domain.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Appointment
	for _, a := range s.appointments {
		if a.SellerID != sellerID {
			continue
		}
		if domain.Overlaps(a.StartTime, a.EndTime, windowStart, windowEnd) {
			out = append(out, a)
		}
	}
	sortByStart(out)
	return out, nil
}

func (s *Store) Delete(ctx context.Context, appointmentID uuid.UUID) (domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.appointments[appointmentID]
	if !ok {
		return domain.Appointment{}, store.ErrNotFound
	}
	delete(s.appointments, appointmentID)
	delete(s.revs, appointmentID)
	return a, nil
}

// Len reports the number of stored appointments.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.appointments)
}

func (s *Store) getWithRev(appointmentID uuid.UUID) (domain.Appointment, uint64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.appointments[appointmentID]
	return a, s.revs[appointmentID], ok
}

func (s *Store) commit(tx *sellerTx) error {
	pending := tx.pending
	if len(pending) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for id := range pending {
		want, seen := tx.reads[id]
		if !seen {
			continue
		}
		cur, exists := s.revs[id]
		switch {
		case want == 0 && exists:
			return store.ErrConflict
		case want != 0 && !exists:
			return store.ErrNotFound
		case cur != want:
			return store.ErrConflict
		}
	}

	for id, a := range pending {
		if _, ok := s.sellers[a.SellerID]; !ok {
			return store.ErrSellerNotFound
		}
		for otherID, other := range s.appointments {
			if otherID == id {
				continue
			}
			if p, ok := pending[otherID]; ok {
				other = p
			}
			if other.SellerID == a.SellerID && a.Overlaps(other) {
				return store.ErrConflict
			}
		}
		for otherID, other := range pending {
			if otherID != id && other.SellerID == a.SellerID && a.Overlaps(other) {
				return store.ErrConflict
			}
		}
	}

	for id, a := range pending {
		s.lastRev++
		s.appointments[id] = a
		s.revs[id] = s.lastRev
	}
	return nil
}

type sellerTx struct {
	store   *Store
	pending map[uuid.UUID]domain.Appointment
	// reads holds the revision of each record as first seen by this tx;
	// zero means it did not exist.
	reads map[uuid.UUID]uint64
}

func (tx *sellerTx) SellerExists(ctx context.Context, sellerID string) (bool, error) {
	return tx.store.SellerExists(ctx, sellerID)
}

func (tx *sellerTx) FindBySeller(ctx context.Context, sellerID string, excludeID uuid.UUID) ([]domain.Appointment, error) {
	tx.store.mu.RLock()
	defer tx.store.mu.RUnlock()

	var out []domain.Appointment
	for id, a := range tx.store.appointments {
		if _, ok := tx.pending[id]; ok {
			continue
		}
		if a.SellerID == sellerID && (excludeID == uuid.Nil || id != excludeID) {
			out = append(out, a)
		}
	}
	for id, a := range tx.pending {
		if a.SellerID == sellerID && (excludeID == uuid.Nil || id != excludeID) {
			out = append(out, a)
		}
	}
	sortByStart(out)
	return out, nil
}

func (tx *sellerTx) GetAppointment(ctx context.Context, appointmentID uuid.UUID) (domain.Appointment, error) {
	if a, ok := tx.pending[appointmentID]; ok {
		return a, nil
	}
	a, rev, ok := tx.store.getWithRev(appointmentID)
	if _, seen := tx.reads[appointmentID]; !seen {
		tx.reads[appointmentID] = rev
	}
	if !ok {
		return domain.Appointment{}, store.ErrNotFound
	}
	return a, nil
}

func (tx *sellerTx) CreateAppointment(ctx context.Context, appt domain.Appointment) (domain.Appointment, error) {
	if appt.ID != uuid.Nil {
		if existing, err := tx.GetAppointment(ctx, appt.ID); err == nil {
			if !existing.SameBooking(appt) {
				return domain.Appointment{}, store.ErrIdempotencyConflict
			}
			return existing, nil
		}
	}

	if err := appt.PrepareInsert(tx.store.now()); err != nil {
		return domain.Appointment{}, err
	}
	tx.pending[appt.ID] = appt
	return appt, nil
}

func (tx *sellerTx) UpdateAppointment(ctx context.Context, appt domain.Appointment) (domain.Appointment, error) {
	prior, err := tx.GetAppointment(ctx, appt.ID)
	if err != nil {
		return domain.Appointment{}, err
	}
	appt.CreatedAt = prior.CreatedAt
	appt.UpdatedAt = tx.store.now()
	tx.pending[appt.ID] = appt
	return appt, nil
}

func sortByStart(appts []domain.Appointment) {
	sort.Slice(appts, func(i, j int) bool {
		if appts[i].StartTime.Equal(appts[j].StartTime) {
			return appts[i].ID.String() < appts[j].ID.String()
		}
		return appts[i].StartTime.Before(appts[j].StartTime)
	})
}

type refMutex struct {
	sync.Mutex
	refs int
}

// keyedMutex hands out one mutex per key and forgets it once no goroutine
// holds or waits for it.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*refMutex
}

func (k *keyedMutex) Lock(key string) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &refMutex{}
		k.locks[key] = m
	}
	m.refs++
	k.mu.Unlock()

	m.Lock()
	return func() {
		m.Unlock()
		k.mu.Lock()
		m.refs--
		if m.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
