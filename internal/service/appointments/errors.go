package appointments

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"agenda/backend/internal/store"
)

// Kind classifies why a write was rejected.
type Kind string

const (
	KindMissingSeller      Kind = "missing_seller"
	KindInvalidRange       Kind = "invalid_range"
	KindMissingClientName  Kind = "missing_client_name"
	KindSchedulingConflict Kind = "scheduling_conflict"
	KindInvalidArgument    Kind = "invalid_argument"
)

// ValidationError is returned for every rejected create or update. Callers
// surface it to the user as is.
type ValidationError struct {
	Kind Kind
	// ConflictingID identifies the appointment that blocked the write. It is
	// uuid.Nil when the conflict was reported by the storage constraint.
	ConflictingID uuid.UUID

	msg   string
	cause error
}

func (e *ValidationError) Error() string {
	return e.msg
}

func (e *ValidationError) Unwrap() error {
	return e.cause
}

// Is matches any ValidationError of the same kind, so the Err* values below
// work with errors.Is.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrMissingSeller      = &ValidationError{Kind: KindMissingSeller, msg: "seller is required"}
	ErrInvalidRange       = &ValidationError{Kind: KindInvalidRange, msg: "end_time must be after start_time"}
	ErrMissingClientName  = &ValidationError{Kind: KindMissingClientName, msg: "client_name is required"}
	ErrSchedulingConflict = &ValidationError{Kind: KindSchedulingConflict, msg: "scheduling conflict"}
)

func validationError(msg string) error {
	return &ValidationError{Kind: KindInvalidArgument, msg: msg}
}

func missingSeller(sellerID string) error {
	if sellerID == "" {
		return &ValidationError{Kind: KindMissingSeller, msg: "seller is required"}
	}
	return &ValidationError{Kind: KindMissingSeller, msg: fmt.Sprintf("seller %q does not exist", sellerID)}
}

func invalidRange() error {
	return &ValidationError{Kind: KindInvalidRange, msg: "end_time must be after start_time"}
}

func missingClientName() error {
	return &ValidationError{Kind: KindMissingClientName, msg: "client_name is required"}
}

func schedulingConflict(conflictingID uuid.UUID) error {
	return &ValidationError{
		Kind:          KindSchedulingConflict,
		ConflictingID: conflictingID,
		msg:           fmt.Sprintf("appointment overlaps existing appointment %s", conflictingID),
	}
}

// fromStore maps storage-level rejections onto the validation taxonomy. A
// lost race reported by the storage constraint becomes the same
// SchedulingConflict an in-memory scan would produce.
func fromStore(err error, sellerID string) error {
	if err == nil {
		return nil
	}
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return err
	}
	switch {
	case errors.Is(err, store.ErrConflict):
		return &ValidationError{
			Kind:  KindSchedulingConflict,
			msg:   "appointment overlaps an existing appointment",
			cause: err,
		}
	case errors.Is(err, store.ErrSellerNotFound):
		vErr := missingSeller(sellerID).(*ValidationError)
		vErr.cause = err
		return vErr
	}
	return err
}

// Outcome labels the result of a write for metrics.
func Outcome(err error) string {
	if err == nil {
		return "ok"
	}
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return string(vErr.Kind)
	}
	switch {
	case errors.Is(err, store.ErrNotFound):
		return "not_found"
	case errors.Is(err, store.ErrIdempotencyConflict):
		return "idempotency_conflict"
	}
	return "error"
}
