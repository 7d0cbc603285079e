package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/uptrace/bun"

	"agenda/backend/internal/domain"
	"agenda/backend/internal/store"
)

const (
	noOverlapConstraint = "appointments_no_overlap"
	sellerFKConstraint  = "appointments_seller_id_fkey"
)

type AppointmentRepo struct {
	db *bun.DB
}

func NewAppointmentRepo(db *bun.DB) *AppointmentRepo {
	return &AppointmentRepo{db: db}
}

type sellerTx struct {
	tx bun.Tx
}

func (r *AppointmentRepo) SellerExists(ctx context.Context, sellerID string) (bool, error) {
	return sellerExists(ctx, r.db, sellerID)
}

// CreateSeller registers a seller. Registering an existing id is a no-op.
func (r *AppointmentRepo) CreateSeller(ctx context.Context, seller domain.Seller) error {
	_, err := r.db.NewInsert().
		Model(&seller).
		On("CONFLICT (id) DO NOTHING").
		Exec(ctx)
	return err
}

func (r *AppointmentRepo) Get(ctx context.Context, appointmentID uuid.UUID) (domain.Appointment, error) {
	return getAppointment(ctx, r.db, appointmentID, false)
}

func (r *AppointmentRepo) List(ctx context.Context, sellerID string, windowStart, windowEnd time.Time) ([]domain.Appointment, error) {
	var rows []domain.Appointment
	err := r.db.NewSelect().
		Model(&rows).
		Where("seller_id = ?", sellerID).
		Where("start_time < ?", windowEnd).
		Where("end_time > ?", windowStart).
		OrderExpr("start_time ASC, id ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *AppointmentRepo) Delete(ctx context.Context, appointmentID uuid.UUID) (domain.Appointment, error) {
	var out domain.Appointment
	err := r.db.NewDelete().
		Model(&out).
		Where("id = ?", appointmentID).
		Returning("*").
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Appointment{}, store.ErrNotFound
	}
	if err != nil {
		return domain.Appointment{}, err
	}
	return out, nil
}

// InSellerScope runs fn in a transaction holding the seller's advisory lock.
// The lock is released on commit or rollback. The exclusion constraint on
// appointments still rejects overlaps written by anything that skips the lock.
func (r *AppointmentRepo) InSellerScope(ctx context.Context, sellerID string, fn func(ctx context.Context, tx store.SellerTx) error) error {
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if err := lockSeller(ctx, tx, sellerID); err != nil {
			return err
		}
		return fn(ctx, sellerTx{tx: tx})
	})
	return mapError(err)
}

func lockSeller(ctx context.Context, tx bun.Tx, sellerID string) error {
	_, err := tx.NewRaw("SELECT pg_advisory_xact_lock(hashtext(?))", sellerID).Exec(ctx)
	return err
}

func (r sellerTx) SellerExists(ctx context.Context, sellerID string) (bool, error) {
	return sellerExists(ctx, r.tx, sellerID)
}

func (r sellerTx) FindBySeller(ctx context.Context, sellerID string, excludeID uuid.UUID) ([]domain.Appointment, error) {
	var rows []domain.Appointment
	q := r.tx.NewSelect().
		Model(&rows).
		Where("seller_id = ?", sellerID)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.OrderExpr("start_time ASC, id ASC").Scan(ctx); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r sellerTx) GetAppointment(ctx context.Context, appointmentID uuid.UUID) (domain.Appointment, error) {
	return getAppointment(ctx, r.tx, appointmentID, true)
}

func (r sellerTx) CreateAppointment(ctx context.Context, appt domain.Appointment) (domain.Appointment, error) {
	m := domain.Appointment{
		ID:         appt.ID,
		SellerID:   appt.SellerID,
		ClientName: appt.ClientName,
		Notes:      appt.Notes,
		StartTime:  appt.StartTime,
		EndTime:    appt.EndTime,
		CreatedAt:  appt.CreatedAt,
		UpdatedAt:  appt.UpdatedAt,
	}

	res, err := r.tx.NewInsert().
		Model(&m).
		On("CONFLICT (id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return domain.Appointment{}, mapError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return domain.Appointment{}, err
	}
	if affected == 0 {
		// The id was already taken, so this is a replay of an idempotent create.
		existing, err := getAppointment(ctx, r.tx, m.ID, false)
		if err != nil {
			return domain.Appointment{}, err
		}
		if !existing.SameBooking(appt) {
			return domain.Appointment{}, store.ErrIdempotencyConflict
		}
		return existing, nil
	}

	return m, nil
}

func (r sellerTx) UpdateAppointment(ctx context.Context, appt domain.Appointment) (domain.Appointment, error) {
	m := appt
	res, err := r.tx.NewUpdate().
		Model(&m).
		Column("seller_id", "client_name", "notes", "start_time", "end_time", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return domain.Appointment{}, mapError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return domain.Appointment{}, err
	}
	if affected == 0 {
		return domain.Appointment{}, store.ErrNotFound
	}
	return m, nil
}

func sellerExists(ctx context.Context, db bun.IDB, sellerID string) (bool, error) {
	return db.NewSelect().
		Model((*domain.Seller)(nil)).
		Where("id = ?", sellerID).
		Exists(ctx)
}

func getAppointment(ctx context.Context, db bun.IDB, appointmentID uuid.UUID, forUpdate bool) (domain.Appointment, error) {
	var out domain.Appointment
	q := db.NewSelect().
		Model(&out).
		Where("id = ?", appointmentID).
		Limit(1)
	if forUpdate {
		q = q.For("UPDATE")
	}
	err := q.Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Appointment{}, store.ErrNotFound
	}
	if err != nil {
		return domain.Appointment{}, err
	}
	return out, nil
}

// mapError translates constraint violations into store errors. Anything else
// is returned unchanged.
func mapError(err error) error {
	if err == nil || errors.Is(err, store.ErrConflict) || errors.Is(err, store.ErrSellerNotFound) {
		return err
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch {
	case pgErr.Code == "23P01" && pgErr.ConstraintName == noOverlapConstraint:
		return errors.Join(store.ErrConflict, err)
	case pgErr.Code == "23503" && pgErr.ConstraintName == sellerFKConstraint:
		return errors.Join(store.ErrSellerNotFound, err)
	}
	return err
}
