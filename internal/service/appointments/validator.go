package appointments

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"agenda/backend/internal/domain"
	"agenda/backend/internal/store"
)

// ConflictSource is what Validate reads from. Implementations must return a
// snapshot that no concurrent writer can change before the candidate commits.
type ConflictSource interface {
	store.SellerLookup
	FindBySeller(ctx context.Context, sellerID string, excludeID uuid.UUID) ([]domain.Appointment, error)
}

// Validate decides whether candidate may be written. It returns a
// *ValidationError for rejections and a wrapped lookup error when src fails.
// It never writes.
func Validate(ctx context.Context, candidate domain.Appointment, src ConflictSource) error {
	if candidate.SellerID == "" {
		return missingSeller("")
	}
	ok, err := src.SellerExists(ctx, candidate.SellerID)
	if err != nil {
		return fmt.Errorf("lookup seller: %w", err)
	}
	if !ok {
		return missingSeller(candidate.SellerID)
	}

	if !domain.ValidRange(candidate.StartTime, candidate.EndTime) {
		return invalidRange()
	}

	if strings.TrimSpace(candidate.ClientName) == "" {
		return missingClientName()
	}

	existing, err := src.FindBySeller(ctx, candidate.SellerID, candidate.ID)
	if err != nil {
		return fmt.Errorf("find seller appointments: %w", err)
	}
	return CheckConflicts(candidate, existing)
}

// CheckConflicts scans existing for the first appointment of the candidate's
// seller whose interval overlaps the candidate.
func CheckConflicts(candidate domain.Appointment, existing []domain.Appointment) error {
	for _, other := range existing {
		if other.SellerID != candidate.SellerID {
			continue
		}
		if candidate.ID != uuid.Nil && other.ID == candidate.ID {
			continue
		}
		if candidate.Overlaps(other) {
			return schedulingConflict(other.ID)
		}
	}
	return nil
}

type scopedSource struct {
	sellers store.SellerLookup
	tx      store.SellerTx
}

func (s scopedSource) SellerExists(ctx context.Context, sellerID string) (bool, error) {
	return s.sellers.SellerExists(ctx, sellerID)
}

func (s scopedSource) FindBySeller(ctx context.Context, sellerID string, excludeID uuid.UUID) ([]domain.Appointment, error) {
	return s.tx.FindBySeller(ctx, sellerID, excludeID)
}
