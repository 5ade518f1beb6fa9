package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"sportshare-backend/internal/domain"
)

func bookingRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "equipment_id", "renter_id", "start_date", "end_date",
		"status", "deposit_amount", "created_at", "updated_at",
	})
}

func TestBookingRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewBookingRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		b := &domain.Booking{
			EquipmentID: 5,
			RenterID:    1,
			StartDate:   "2026-09-10",
			EndDate:     "2026-09-15",
		}

		mock.ExpectQuery("INSERT INTO equipment_bookings").
			WithArgs(b.EquipmentID, b.RenterID, b.StartDate, b.EndDate, domain.BookingStatusPending, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
				AddRow(42, "2026-08-29T10:00:00Z", "2026-08-29T10:00:00Z"))

		err := repo.Create(ctx, b)
		assert.NoError(t, err)
		assert.Equal(t, int64(42), b.ID)
		assert.Equal(t, domain.BookingStatusPending, b.Status)
	})
}

func TestBookingRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewBookingRepository(db)
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM equipment_bookings WHERE id").
			WithArgs(int64(42)).
			WillReturnRows(bookingRows().
				AddRow(42, 5, 1, "2026-09-10", "2026-09-15", "pending", nil, "2026-08-29T10:00:00Z", "2026-08-29T10:00:00Z"))

		b, err := repo.GetByID(ctx, 42)
		assert.NoError(t, err)
		assert.Equal(t, int64(5), b.EquipmentID)
		assert.Equal(t, domain.BookingStatusPending, b.Status)
		assert.Nil(t, b.DepositAmount)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM equipment_bookings WHERE id").
			WithArgs(int64(7)).
			WillReturnRows(bookingRows())

		_, err := repo.GetByID(ctx, 7)
		assert.ErrorIs(t, err, domain.ErrBookingNotFound)
	})
}

func TestBookingRepository_OverlapsBlocking(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewBookingRepository(db)
	ctx := context.Background()

	t.Run("Overlap", func(t *testing.T) {
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(int64(5), int64(0), sqlmock.AnyArg(), "2026-09-15", "2026-09-10").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		overlaps, err := repo.OverlapsBlocking(ctx, 5, "2026-09-10", "2026-09-15", 0)
		assert.NoError(t, err)
		assert.True(t, overlaps)
	})

	t.Run("NoOverlap", func(t *testing.T) {
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(int64(5), int64(0), sqlmock.AnyArg(), "2026-09-15", "2026-09-10").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		overlaps, err := repo.OverlapsBlocking(ctx, 5, "2026-09-10", "2026-09-15", 0)
		assert.NoError(t, err)
		assert.False(t, overlaps)
	})
}

func TestBookingRepository_SetStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewBookingRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE equipment_bookings SET status").
			WithArgs(domain.BookingStatusRejected, int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.SetStatus(ctx, 42, domain.BookingStatusRejected)
		assert.NoError(t, err)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("UPDATE equipment_bookings SET status").
			WithArgs(domain.BookingStatusRejected, int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.SetStatus(ctx, 7, domain.BookingStatusRejected)
		assert.ErrorIs(t, err, domain.ErrBookingNotFound)
	})
}

func TestBookingRepository_ApproveExclusive(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewBookingRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT (.+) FROM equipment_bookings WHERE id (.+) FOR UPDATE").
			WithArgs(int64(42)).
			WillReturnRows(bookingRows().
				AddRow(42, 5, 1, "2026-09-10", "2026-09-15", "pending", nil, "2026-08-29T10:00:00Z", "2026-08-29T10:00:00Z"))
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(int64(5), int64(42), sqlmock.AnyArg(), "2026-09-15", "2026-09-10").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectQuery("UPDATE equipment_bookings SET status").
			WithArgs(domain.BookingStatusApproved, int64(42)).
			WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow("2026-08-29T11:00:00Z"))
		mock.ExpectCommit()

		b, err := repo.ApproveExclusive(ctx, 42)
		assert.NoError(t, err)
		assert.Equal(t, domain.BookingStatusApproved, b.Status)
		assert.Equal(t, "2026-08-29T11:00:00Z", b.UpdatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Conflict", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT (.+) FROM equipment_bookings WHERE id (.+) FOR UPDATE").
			WithArgs(int64(42)).
			WillReturnRows(bookingRows().
				AddRow(42, 5, 1, "2026-09-10", "2026-09-15", "pending", nil, "2026-08-29T10:00:00Z", "2026-08-29T10:00:00Z"))
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(int64(5), int64(42), sqlmock.AnyArg(), "2026-09-15", "2026-09-10").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectRollback()

		_, err := repo.ApproveExclusive(ctx, 42)
		assert.ErrorIs(t, err, domain.ErrBookingConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT (.+) FROM equipment_bookings WHERE id (.+) FOR UPDATE").
			WithArgs(int64(7)).
			WillReturnRows(bookingRows())
		mock.ExpectRollback()

		_, err := repo.ApproveExclusive(ctx, 7)
		assert.ErrorIs(t, err, domain.ErrBookingNotFound)
	})
}

func TestBookingRepository_ListPendingByOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewBookingRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM equipment_bookings b").
		WithArgs(int64(2), domain.BookingStatusPending).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "equipment_id", "title", "start_date", "end_date", "status", "full_name", "email",
		}).AddRow(42, 5, "Kayak", "2026-09-10", "2026-09-15", "pending", "Renter", "renter@test.com"))

	requests, err := repo.ListPendingByOwner(ctx, 2)
	assert.NoError(t, err)
	assert.Len(t, requests, 1)
	assert.Equal(t, "Kayak", requests[0].EquipmentTitle)
	assert.Equal(t, "renter@test.com", requests[0].RenterEmail)
}
