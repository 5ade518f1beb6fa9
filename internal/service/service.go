package service

import (
	"context"

	"sportshare-backend/internal/domain"
)

type BookingService interface {
	CreateBooking(ctx context.Context, renterID int64, equipmentID int64, startDate, endDate string, depositAmount *float64) (*domain.Booking, error)
	SetBookingStatus(ctx context.Context, ownerID, bookingID int64, status string) (*domain.Booking, error)
	ListOwnerRequests(ctx context.Context, ownerID int64) ([]domain.OwnerRequest, error)
}

type CalendarService interface {
	GetCalendar(ctx context.Context, equipmentID int64, startDate, endDate string, debug bool) (*domain.Calendar, error)
}

type EquipmentService interface {
	CreateEquipment(ctx context.Context, eq *domain.Equipment, imageURLs []string, intervals []domain.AvailabilityInterval) (*domain.Equipment, error)
	GetEquipment(ctx context.Context, id int64) (*domain.EquipmentDetail, error)
	ListMyEquipment(ctx context.Context, ownerID int64) ([]domain.EquipmentSummary, error)
	SearchEquipment(ctx context.Context, filter domain.EquipmentFilter) ([]domain.EquipmentSummary, error)
}

type NotificationService interface {
	Notify(ctx context.Context, userID int64, eventType, title, body string, data map[string]string) error
	ListNotifications(ctx context.Context, userID int64, onlyUnread bool) ([]domain.Notification, error)
	MarkAsRead(ctx context.Context, userID, notificationID int64) error
}

type EmailService interface {
	SendBookingDecisionNotification(ctx context.Context, renterEmail, renterName, equipmentTitle, status, startDate, endDate string) error
}

// PushSender delivers a push message to a single device token.
type PushSender interface {
	Send(ctx context.Context, deviceToken, title, body string, data map[string]string) error
}
