package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"sportshare-backend/internal/domain"
)

type MockBookingRepo struct{ mock.Mock }

func (m *MockBookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) ListPendingByOwner(ctx context.Context, ownerID int64) ([]domain.OwnerRequest, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OwnerRequest), args.Error(1)
}

func (m *MockBookingRepo) ListForCalendar(ctx context.Context, equipmentID int64, startDate, endDate string) ([]domain.Booking, error) {
	args := m.Called(ctx, equipmentID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) OverlapsBlocking(ctx context.Context, equipmentID int64, startDate, endDate string, excludeID int64) (bool, error) {
	args := m.Called(ctx, equipmentID, startDate, endDate, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepo) SetStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockBookingRepo) ApproveExclusive(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type MockEquipmentRepo struct{ mock.Mock }

func (m *MockEquipmentRepo) Create(ctx context.Context, eq *domain.Equipment, imageURLs []string) error {
	args := m.Called(ctx, eq, imageURLs)
	return args.Error(0)
}

func (m *MockEquipmentRepo) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}

func (m *MockEquipmentRepo) GetDetail(ctx context.Context, id int64) (*domain.EquipmentDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EquipmentDetail), args.Error(1)
}

func (m *MockEquipmentRepo) ListByOwner(ctx context.Context, ownerID int64) ([]domain.EquipmentSummary, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EquipmentSummary), args.Error(1)
}

func (m *MockEquipmentRepo) Search(ctx context.Context, filter domain.EquipmentFilter) ([]domain.EquipmentSummary, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EquipmentSummary), args.Error(1)
}

func (m *MockEquipmentRepo) SportExists(ctx context.Context, sportID int64) (bool, error) {
	args := m.Called(ctx, sportID)
	return args.Bool(0), args.Error(1)
}

type MockAvailabilityRepo struct{ mock.Mock }

func (m *MockAvailabilityRepo) Declare(ctx context.Context, iv *domain.AvailabilityInterval) error {
	args := m.Called(ctx, iv)
	return args.Error(0)
}

func (m *MockAvailabilityRepo) Covers(ctx context.Context, equipmentID int64, startDate, endDate string) (bool, error) {
	args := m.Called(ctx, equipmentID, startDate, endDate)
	return args.Bool(0), args.Error(1)
}

func (m *MockAvailabilityRepo) ListForEquipment(ctx context.Context, equipmentID int64) ([]domain.AvailabilityInterval, error) {
	args := m.Called(ctx, equipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AvailabilityInterval), args.Error(1)
}

type MockUserRepo struct{ mock.Mock }

func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) ListDeviceTokens(ctx context.Context, userID int64) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockNotificationRepo struct{ mock.Mock }

func (m *MockNotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepo) List(ctx context.Context, userID int64, onlyUnread bool) ([]domain.Notification, error) {
	args := m.Called(ctx, userID, onlyUnread)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationRepo) MarkRead(ctx context.Context, id, userID int64) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *MockNotificationRepo) Enqueue(ctx context.Context, ev *domain.OutboxEvent) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}

func (m *MockNotificationRepo) ListUndispatched(ctx context.Context, limit int) ([]domain.OutboxEvent, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OutboxEvent), args.Error(1)
}

func (m *MockNotificationRepo) MarkDispatched(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNotificationRepo) RecordAttempt(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNotificationRepo) PurgeDispatchedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockNotificationSvc struct{ mock.Mock }

func (m *MockNotificationSvc) Notify(ctx context.Context, userID int64, eventType, title, body string, data map[string]string) error {
	args := m.Called(ctx, userID, eventType, title, body, data)
	return args.Error(0)
}

func (m *MockNotificationSvc) ListNotifications(ctx context.Context, userID int64, onlyUnread bool) ([]domain.Notification, error) {
	args := m.Called(ctx, userID, onlyUnread)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationSvc) MarkAsRead(ctx context.Context, userID, notificationID int64) error {
	args := m.Called(ctx, userID, notificationID)
	return args.Error(0)
}
