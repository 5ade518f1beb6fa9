package repository

import (
	"context"
	"time"

	"sportshare-backend/internal/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ListDeviceTokens(ctx context.Context, userID int64) ([]string, error)
}

type EquipmentRepository interface {
	Create(ctx context.Context, eq *domain.Equipment, imageURLs []string) error
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
	GetDetail(ctx context.Context, id int64) (*domain.EquipmentDetail, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.EquipmentSummary, error)
	Search(ctx context.Context, filter domain.EquipmentFilter) ([]domain.EquipmentSummary, error)
	SportExists(ctx context.Context, sportID int64) (bool, error)
}

// AvailabilityRepository is the interval store: owner-declared windows
// during which equipment is nominally rentable.
type AvailabilityRepository interface {
	Declare(ctx context.Context, interval *domain.AvailabilityInterval) error
	// Covers reports whether one single declared 'available' interval
	// wholly contains [startDate, endDate). A request straddling two
	// adjacent intervals is not covered.
	Covers(ctx context.Context, equipmentID int64, startDate, endDate string) (bool, error)
	ListForEquipment(ctx context.Context, equipmentID int64) ([]domain.AvailabilityInterval, error)
}

// BookingRepository is the booking ledger. It stores rows and overlap
// facts; which transitions are legal is the lifecycle service's job.
type BookingRepository interface {
	// Create inserts the booking with status forced to pending.
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListPendingByOwner(ctx context.Context, ownerID int64) ([]domain.OwnerRequest, error)
	// ListForCalendar returns non-terminal bookings intersecting the
	// half-open window [startDate, endDate).
	ListForCalendar(ctx context.Context, equipmentID int64, startDate, endDate string) ([]domain.Booking, error)
	// OverlapsBlocking reports whether any blocking-status booking on the
	// equipment intersects [startDate, endDate), excluding excludeID
	// (pass 0 to exclude nothing).
	OverlapsBlocking(ctx context.Context, equipmentID int64, startDate, endDate string, excludeID int64) (bool, error)
	// SetStatus writes the status unconditionally.
	SetStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	// ApproveExclusive locks the booking row, re-checks blocking overlap
	// against its peers and writes status approved, all in one
	// transaction. Returns domain.ErrBookingConflict without writing when
	// the re-check fails.
	ApproveExclusive(ctx context.Context, id int64) (*domain.Booking, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	List(ctx context.Context, userID int64, onlyUnread bool) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id, userID int64) error

	// Outbox queue drained by the scheduler.
	Enqueue(ctx context.Context, ev *domain.OutboxEvent) error
	ListUndispatched(ctx context.Context, limit int) ([]domain.OutboxEvent, error)
	MarkDispatched(ctx context.Context, id string) error
	RecordAttempt(ctx context.Context, id string) error
	PurgeDispatchedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
