package postgres

import (
	"context"
	"database/sql"
	"errors"

	"sportshare-backend/internal/domain"
	"sportshare-backend/internal/logger"
	"sportshare-backend/internal/repository"

	"github.com/lib/pq"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

const bookingColumns = `id, equipment_id, renter_id, start_date::text, end_date::text, status, deposit_amount, created_at::text, updated_at::text`

func scanBooking(row interface{ Scan(...any) error }) (*domain.Booking, error) {
	b := &domain.Booking{}
	var deposit sql.NullFloat64
	err := row.Scan(&b.ID, &b.EquipmentID, &b.RenterID, &b.StartDate, &b.EndDate, &b.Status, &deposit, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if deposit.Valid {
		b.DepositAmount = &deposit.Float64
	}
	return b, nil
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	b.Status = domain.BookingStatusPending
	query := `INSERT INTO equipment_bookings (equipment_id, renter_id, start_date, end_date, status, deposit_amount)
	          VALUES ($1, $2, $3::date, $4::date, $5, $6)
	          RETURNING id, created_at::text, updated_at::text`
	var deposit sql.NullFloat64
	if b.DepositAmount != nil {
		deposit = sql.NullFloat64{Float64: *b.DepositAmount, Valid: true}
	}
	return r.db.QueryRowContext(ctx, query,
		b.EquipmentID, b.RenterID, b.StartDate, b.EndDate, b.Status, deposit).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func (r *bookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM equipment_bookings WHERE id = $1`
	b, err := scanBooking(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) ListPendingByOwner(ctx context.Context, ownerID int64) ([]domain.OwnerRequest, error) {
	query := `SELECT b.id, b.equipment_id, e.title, b.start_date::text, b.end_date::text, b.status,
	                 COALESCE(u.full_name, ''), COALESCE(u.email, '')
	          FROM equipment_bookings b
	          JOIN equipment e ON e.id = b.equipment_id
	          LEFT JOIN users u ON u.id = b.renter_id
	          WHERE e.owner_id = $1 AND b.status = $2
	          ORDER BY b.start_date ASC`
	rows, err := r.db.QueryContext(ctx, query, ownerID, domain.BookingStatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := []domain.OwnerRequest{}
	for rows.Next() {
		var req domain.OwnerRequest
		if err := rows.Scan(&req.BookingID, &req.EquipmentID, &req.EquipmentTitle,
			&req.StartDate, &req.EndDate, &req.Status, &req.RenterName, &req.RenterEmail); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *bookingRepository) ListForCalendar(ctx context.Context, equipmentID int64, startDate, endDate string) ([]domain.Booking, error) {
	statuses := append([]string{string(domain.BookingStatusPending)}, domain.BlockingStatuses...)
	query := `SELECT ` + bookingColumns + `
	          FROM equipment_bookings
	          WHERE equipment_id = $1
	            AND status = ANY($2)
	            AND start_date < $3::date
	            AND end_date > $4::date
	          ORDER BY start_date ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, query, equipmentID, pq.Array(statuses), endDate, startDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

// Half-open intersection: existing.start < requested.end AND
// existing.end > requested.start. excludeID 0 matches no row.
func (r *bookingRepository) OverlapsBlocking(ctx context.Context, equipmentID int64, startDate, endDate string, excludeID int64) (bool, error) {
	query := `SELECT EXISTS (
	            SELECT 1 FROM equipment_bookings
	            WHERE equipment_id = $1
	              AND id <> $2
	              AND status = ANY($3)
	              AND start_date < $4::date
	              AND end_date > $5::date
	          )`
	var overlaps bool
	err := r.db.QueryRowContext(ctx, query,
		equipmentID, excludeID, pq.Array(domain.BlockingStatuses), endDate, startDate).
		Scan(&overlaps)
	return overlaps, err
}

func (r *bookingRepository) SetStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	query := `UPDATE equipment_bookings SET status = $1, updated_at = now() WHERE id = $2`
	res, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

// ApproveExclusive serializes competing approvals: the row lock taken by
// FOR UPDATE holds until commit, so between the overlap re-check and the
// status write no concurrent transaction can promote a competing booking
// for the same equipment undetected.
func (r *bookingRepository) ApproveExclusive(ctx context.Context, id int64) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			logger.Error("rollback failed", "booking_id", id, "error", err)
		}
	}()

	query := `SELECT ` + bookingColumns + ` FROM equipment_bookings WHERE id = $1 FOR UPDATE`
	b, err := scanBooking(tx.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}

	var overlaps bool
	check := `SELECT EXISTS (
	            SELECT 1 FROM equipment_bookings
	            WHERE equipment_id = $1
	              AND id <> $2
	              AND status = ANY($3)
	              AND start_date < $4::date
	              AND end_date > $5::date
	          )`
	err = tx.QueryRowContext(ctx, check,
		b.EquipmentID, b.ID, pq.Array(domain.BlockingStatuses), b.EndDate, b.StartDate).
		Scan(&overlaps)
	if err != nil {
		return nil, err
	}
	if overlaps {
		return nil, domain.ErrBookingConflict
	}

	update := `UPDATE equipment_bookings SET status = $1, updated_at = now() WHERE id = $2 RETURNING updated_at::text`
	if err := tx.QueryRowContext(ctx, update, domain.BookingStatusApproved, b.ID).Scan(&b.UpdatedAt); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	b.Status = domain.BookingStatusApproved
	return b, nil
}

var _ repository.BookingRepository = (*bookingRepository)(nil)
