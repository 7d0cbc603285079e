package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"agenda/backend/internal/domain"
)

type snapshotSource struct {
	sellers      map[string]bool
	appointments []domain.Appointment
	findErr      error
	findCalls    int
}

func (s *snapshotSource) SellerExists(ctx context.Context, sellerID string) (bool, error) {
	return s.sellers[sellerID], nil
}

func (s *snapshotSource) FindBySeller(ctx context.Context, sellerID string, excludeID uuid.UUID) ([]domain.Appointment, error) {
	s.findCalls++
	if s.findErr != nil {
		return nil, s.findErr
	}
	var out []domain.Appointment
	for _, a := range s.appointments {
		if a.SellerID == sellerID && (excludeID == uuid.Nil || a.ID != excludeID) {
			out = append(out, a)
		}
	}
	return out, nil
}

func appt(id, seller string, start, end time.Time) domain.Appointment {
	return domain.Appointment{ID: uuid.MustParse(id), SellerID: seller, ClientName: "client", StartTime: start, EndTime: end}
}

const (
	idA = "00000000-0000-0000-0000-00000000000a"
	idB = "00000000-0000-0000-0000-00000000000b"
)

func TestValidate(t *testing.T) {
	existing := appt(idA, "s1", at(10, 0), at(11, 0))

	tests := []struct {
		name      string
		candidate domain.Appointment
		wantKind  Kind
		wantID    uuid.UUID
		wantFinds int
	}{
		{
			name:      "overlap",
			candidate: domain.Appointment{SellerID: "s1", ClientName: "B", StartTime: at(10, 30), EndTime: at(11, 30)},
			wantKind:  KindSchedulingConflict,
			wantID:    existing.ID,
			wantFinds: 1,
		},
		{
			name:      "touching end",
			candidate: domain.Appointment{SellerID: "s1", ClientName: "B", StartTime: at(11, 0), EndTime: at(12, 0)},
			wantFinds: 1,
		},
		{
			name:      "touching start",
			candidate: domain.Appointment{SellerID: "s1", ClientName: "B", StartTime: at(9, 0), EndTime: at(10, 0)},
			wantFinds: 1,
		},
		{
			name:      "other seller",
			candidate: domain.Appointment{SellerID: "s2", ClientName: "B", StartTime: at(10, 0), EndTime: at(11, 0)},
			wantFinds: 1,
		},
		{
			name:      "self excluded by id",
			candidate: appt(idA, "s1", at(10, 15), at(11, 15)),
			wantFinds: 1,
		},
		{
			name:      "unknown seller",
			candidate: domain.Appointment{SellerID: "nobody", ClientName: "B", StartTime: at(10, 0), EndTime: at(11, 0)},
			wantKind:  KindMissingSeller,
		},
		{
			name:      "empty seller",
			candidate: domain.Appointment{ClientName: "B", StartTime: at(10, 0), EndTime: at(11, 0)},
			wantKind:  KindMissingSeller,
		},
		{
			name:      "inverted range",
			candidate: domain.Appointment{SellerID: "s1", ClientName: "B", StartTime: at(11, 0), EndTime: at(10, 0)},
			wantKind:  KindInvalidRange,
		},
		{
			name:      "blank client",
			candidate: domain.Appointment{SellerID: "s1", ClientName: "   ", StartTime: at(12, 0), EndTime: at(13, 0)},
			wantKind:  KindMissingClientName,
		},
		{
			name:      "seller checked before range",
			candidate: domain.Appointment{SellerID: "nobody", StartTime: at(11, 0), EndTime: at(10, 0)},
			wantKind:  KindMissingSeller,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &snapshotSource{
				sellers:      map[string]bool{"s1": true, "s2": true},
				appointments: []domain.Appointment{existing},
			}

			err := Validate(context.Background(), tt.candidate, src)
			if tt.wantKind == "" {
				if err != nil {
					t.Fatalf("Validate error: %v", err)
				}
			} else {
				var vErr *ValidationError
				if !errors.As(err, &vErr) {
					t.Fatalf("error = %v, want *ValidationError", err)
				}
				if vErr.Kind != tt.wantKind {
					t.Fatalf("kind = %q, want %q", vErr.Kind, tt.wantKind)
				}
				if vErr.ConflictingID != tt.wantID {
					t.Fatalf("conflicting id = %s, want %s", vErr.ConflictingID, tt.wantID)
				}
			}
			if src.findCalls != tt.wantFinds {
				t.Fatalf("FindBySeller calls = %d, want %d", src.findCalls, tt.wantFinds)
			}
		})
	}
}

func TestValidate_LookupFailureIsNotValidationError(t *testing.T) {
	wantErr := errors.New("db down")
	src := &snapshotSource{sellers: map[string]bool{"s1": true}, findErr: wantErr}

	err := Validate(context.Background(), domain.Appointment{SellerID: "s1", ClientName: "A", StartTime: at(10, 0), EndTime: at(11, 0)}, src)
	if !errors.Is(err, wantErr) {
		t.Fatalf("error = %v, want %v", err, wantErr)
	}
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		t.Fatalf("lookup failure surfaced as validation error: %v", vErr)
	}
}

func TestCheckConflicts_ReportsFirstOverlap(t *testing.T) {
	candidate := domain.Appointment{SellerID: "s1", StartTime: at(9, 0), EndTime: at(13, 0)}
	existing := []domain.Appointment{
		appt(idA, "s2", at(9, 0), at(10, 0)),
		appt(idB, "s1", at(12, 0), at(12, 30)),
	}

	err := CheckConflicts(candidate, existing)
	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.ConflictingID != uuid.MustParse(idB) {
		t.Fatalf("error = %v, want conflict with %s", err, idB)
	}
	if CheckConflicts(candidate, nil) != nil {
		t.Fatalf("empty snapshot must not conflict")
	}
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: nil, want: "ok"},
		{err: schedulingConflict(uuid.Nil), want: "scheduling_conflict"},
		{err: invalidRange(), want: "invalid_range"},
		{err: errors.New("boom"), want: "error"},
	}
	for _, tt := range tests {
		if got := Outcome(tt.err); got != tt.want {
			t.Errorf("Outcome(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
