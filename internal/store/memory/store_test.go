package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"agenda/backend/internal/domain"
	"agenda/backend/internal/store"
)

var base = time.Date(2025, 2, 20, 10, 0, 0, 0, time.UTC)

func newStore(t *testing.T, sellers ...string) *Store {
	t.Helper()
	s := New()
	for _, id := range sellers {
		s.AddSeller(domain.Seller{ID: id, DisplayName: id})
	}
	return s
}

func create(t *testing.T, s *Store, appt domain.Appointment) (domain.Appointment, error) {
	t.Helper()
	var out domain.Appointment
	err := s.InSellerScope(context.Background(), appt.SellerID, func(ctx context.Context, tx store.SellerTx) error {
		a, err := tx.CreateAppointment(ctx, appt)
		if err != nil {
			return err
		}
		out = a
		return nil
	})
	return out, err
}

func TestStore_CreateAssignsIdentityAndCommits(t *testing.T) {
	s := newStore(t, "s1")

	a, err := create(t, s, domain.Appointment{SellerID: "s1", ClientName: "A", StartTime: base, EndTime: base.Add(time.Hour)})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if a.ID == uuid.Nil {
		t.Fatalf("expected id")
	}
	if a.CreatedAt.IsZero() || a.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps, got %v/%v", a.CreatedAt, a.UpdatedAt)
	}

	got, err := s.Get(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !got.SameBooking(a) {
		t.Fatalf("stored = %+v, want %+v", got, a)
	}
}

func TestStore_ScopeErrorDiscardsWrites(t *testing.T) {
	s := newStore(t, "s1")
	wantErr := errors.New("rejected")

	err := s.InSellerScope(context.Background(), "s1", func(ctx context.Context, tx store.SellerTx) error {
		if _, err := tx.CreateAppointment(ctx, domain.Appointment{SellerID: "s1", ClientName: "A", StartTime: base, EndTime: base.Add(time.Hour)}); err != nil {
			return err
		}
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
	if s.Len() != 0 {
		t.Fatalf("Len = %d, want 0", s.Len())
	}
}

func TestStore_CommitRejectsOverlapAsBackstop(t *testing.T) {
	s := newStore(t, "s1")
	if _, err := create(t, s, domain.Appointment{SellerID: "s1", ClientName: "A", StartTime: base, EndTime: base.Add(time.Hour)}); err != nil {
		t.Fatalf("create error: %v", err)
	}

	_, err := create(t, s, domain.Appointment{SellerID: "s1", ClientName: "B", StartTime: base.Add(30 * time.Minute), EndTime: base.Add(90 * time.Minute)})
	if !errors.Is(err, store.ErrConflict) {
		t.Fatalf("err = %v, want %v", err, store.ErrConflict)
	}
	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}
}

func TestStore_CommitRejectsUnknownSeller(t *testing.T) {
	s := newStore(t)
	_, err := create(t, s, domain.Appointment{SellerID: "ghost", ClientName: "A", StartTime: base, EndTime: base.Add(time.Hour)})
	if !errors.Is(err, store.ErrSellerNotFound) {
		t.Fatalf("err = %v, want %v", err, store.ErrSellerNotFound)
	}
}

func TestStore_CreateWithExistingID(t *testing.T) {
	s := newStore(t, "s1")
	id := uuid.MustParse("00000000-0000-0000-0000-000000000901")
	appt := domain.Appointment{ID: id, SellerID: "s1", ClientName: "A", StartTime: base, EndTime: base.Add(time.Hour)}

	first, err := create(t, s, appt)
	if err != nil {
		t.Fatalf("create error: %v", err)
	}

	again, err := create(t, s, appt)
	if err != nil {
		t.Fatalf("replay error: %v", err)
	}
	if again.ID != first.ID || !again.CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("replay returned %+v, want %+v", again, first)
	}

	changed := appt
	changed.ClientName = "different"
	if _, err := create(t, s, changed); !errors.Is(err, store.ErrIdempotencyConflict) {
		t.Fatalf("err = %v, want %v", err, store.ErrIdempotencyConflict)
	}
}

func TestStore_FindBySellerExcludesByID(t *testing.T) {
	s := newStore(t, "s1", "s2")
	a, _ := create(t, s, domain.Appointment{SellerID: "s1", ClientName: "A", StartTime: base, EndTime: base.Add(time.Hour)})
	b, _ := create(t, s, domain.Appointment{SellerID: "s1", ClientName: "B", StartTime: base.Add(time.Hour), EndTime: base.Add(2 * time.Hour)})
	if _, err := create(t, s, domain.Appointment{SellerID: "s2", ClientName: "C", StartTime: base, EndTime: base.Add(time.Hour)}); err != nil {
		t.Fatalf("create error: %v", err)
	}

	err := s.InSellerScope(context.Background(), "s1", func(ctx context.Context, tx store.SellerTx) error {
		all, err := tx.FindBySeller(ctx, "s1", uuid.Nil)
		if err != nil {
			return err
		}
		if len(all) != 2 {
			t.Errorf("len(all) = %d, want 2", len(all))
		}
		rest, err := tx.FindBySeller(ctx, "s1", a.ID)
		if err != nil {
			return err
		}
		if len(rest) != 1 || rest[0].ID != b.ID {
			t.Errorf("rest = %+v, want only %s", rest, b.ID)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("scope error: %v", err)
	}
}

func TestStore_UpdateKeepsCreatedAt(t *testing.T) {
	s := newStore(t, "s1")
	a, err := create(t, s, domain.Appointment{SellerID: "s1", ClientName: "A", StartTime: base, EndTime: base.Add(time.Hour)})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}

	moved := a
	moved.StartTime = base.Add(30 * time.Minute)
	moved.EndTime = base.Add(90 * time.Minute)
	moved.CreatedAt = time.Time{}

	err = s.InSellerScope(context.Background(), "s1", func(ctx context.Context, tx store.SellerTx) error {
		_, err := tx.UpdateAppointment(ctx, moved)
		return err
	})
	if err != nil {
		t.Fatalf("update error: %v", err)
	}

	got, _ := s.Get(context.Background(), a.ID)
	if !got.StartTime.Equal(moved.StartTime) {
		t.Fatalf("start = %v, want %v", got.StartTime, moved.StartTime)
	}
	if !got.CreatedAt.Equal(a.CreatedAt) {
		t.Fatalf("created_at = %v, want %v", got.CreatedAt, a.CreatedAt)
	}
}

func TestStore_UpdateMissingAppointment(t *testing.T) {
	s := newStore(t, "s1")
	err := s.InSellerScope(context.Background(), "s1", func(ctx context.Context, tx store.SellerTx) error {
		_, err := tx.UpdateAppointment(ctx, domain.Appointment{ID: uuid.New(), SellerID: "s1"})
		return err
	})
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want %v", err, store.ErrNotFound)
	}
}

func TestStore_UpdateOfRecordDeletedMidScopeFails(t *testing.T) {
	s := newStore(t, "s1", "s2")
	x, err := create(t, s, domain.Appointment{SellerID: "s1", ClientName: "A", StartTime: base, EndTime: base.Add(time.Hour)})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}

	err = s.InSellerScope(context.Background(), "s2", func(ctx context.Context, tx store.SellerTx) error {
		prior, err := tx.GetAppointment(ctx, x.ID)
		if err != nil {
			return err
		}
		prior.SellerID = "s2"
		if _, err := tx.UpdateAppointment(ctx, prior); err != nil {
			return err
		}
		if _, err := s.Delete(ctx, x.ID); err != nil {
			t.Fatalf("Delete error: %v", err)
		}
		return nil
	})
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want %v", err, store.ErrNotFound)
	}
	if _, err := s.Get(context.Background(), x.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("deleted appointment came back: err = %v", err)
	}
}

func TestStore_ConcurrentUpdateOfSameRecordConflicts(t *testing.T) {
	s := newStore(t, "s1", "s2", "s3")
	x, err := create(t, s, domain.Appointment{SellerID: "s1", ClientName: "A", StartTime: base, EndTime: base.Add(time.Hour)})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}

	err = s.InSellerScope(context.Background(), "s2", func(ctx context.Context, tx store.SellerTx) error {
		prior, err := tx.GetAppointment(ctx, x.ID)
		if err != nil {
			return err
		}

		innerErr := s.InSellerScope(ctx, "s3", func(ctx context.Context, inner store.SellerTx) error {
			other, err := inner.GetAppointment(ctx, x.ID)
			if err != nil {
				return err
			}
			other.SellerID = "s3"
			_, err = inner.UpdateAppointment(ctx, other)
			return err
		})
		if innerErr != nil {
			t.Fatalf("inner update error: %v", innerErr)
		}

		prior.SellerID = "s2"
		_, err = tx.UpdateAppointment(ctx, prior)
		return err
	})
	if !errors.Is(err, store.ErrConflict) {
		t.Fatalf("err = %v, want %v", err, store.ErrConflict)
	}

	got, _ := s.Get(context.Background(), x.ID)
	if got.SellerID != "s3" {
		t.Fatalf("seller = %q, want s3", got.SellerID)
	}
}

func TestStore_DeleteAndList(t *testing.T) {
	s := newStore(t, "s1")
	late, _ := create(t, s, domain.Appointment{SellerID: "s1", ClientName: "late", StartTime: base.Add(2 * time.Hour), EndTime: base.Add(3 * time.Hour)})
	early, _ := create(t, s, domain.Appointment{SellerID: "s1", ClientName: "early", StartTime: base, EndTime: base.Add(time.Hour)})

	got, err := s.List(context.Background(), "s1", base, base.Add(24*time.Hour))
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 2 || got[0].ID != early.ID || got[1].ID != late.ID {
		t.Fatalf("List = %+v, want early then late", got)
	}

	window, _ := s.List(context.Background(), "s1", base.Add(time.Hour), base.Add(2*time.Hour))
	if len(window) != 0 {
		t.Fatalf("touching window returned %d appointments, want 0", len(window))
	}

	deleted, err := s.Delete(context.Background(), early.ID)
	if err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if deleted.ID != early.ID {
		t.Fatalf("deleted id = %s, want %s", deleted.ID, early.ID)
	}
	if _, err := s.Delete(context.Background(), early.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("second delete err = %v, want %v", err, store.ErrNotFound)
	}
}

func TestKeyedMutex_SerializesSameKeyAndForgetsIdleKeys(t *testing.T) {
	k := keyedMutex{locks: make(map[string]*refMutex)}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		inside  int
		maxSeen int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := k.Lock("s1")
			mu.Lock()
			inside++
			if inside > maxSeen {
				maxSeen = inside
			}
			mu.Unlock()
			time.Sleep(time.Millisecond)
			mu.Lock()
			inside--
			mu.Unlock()
			unlock()
		}()
	}
	wg.Wait()

	if maxSeen != 1 {
		t.Fatalf("max concurrent holders = %d, want 1", maxSeen)
	}
	if len(k.locks) != 0 {
		t.Fatalf("idle locks retained: %d", len(k.locks))
	}
}
