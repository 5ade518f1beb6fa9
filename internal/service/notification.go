package service

import (
	"context"

	"github.com/google/uuid"

	"sportshare-backend/internal/domain"
	"sportshare-backend/internal/logger"
	"sportshare-backend/internal/repository"
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationService(notificationRepo repository.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

// Notify persists the in-app notification row and enqueues an outbox
// event for the delivery job. The outbox enqueue is best-effort; the
// in-app row is the durable record.
func (s *notificationService) Notify(ctx context.Context, userID int64, eventType, title, body string, data map[string]string) error {
	n := &domain.Notification{
		UserID: userID,
		Type:   eventType,
		Title:  title,
		Body:   body,
		Data:   data,
	}
	if err := s.notificationRepo.Create(ctx, n); err != nil {
		return err
	}

	ev := &domain.OutboxEvent{
		ID:        uuid.NewString(),
		UserID:    userID,
		EventType: eventType,
		Title:     title,
		Body:      body,
		Data:      data,
	}
	if err := s.notificationRepo.Enqueue(ctx, ev); err != nil {
		logger.Warn("outbox enqueue failed", "user_id", userID, "event_type", eventType, "error", err)
	}
	return nil
}

func (s *notificationService) ListNotifications(ctx context.Context, userID int64, onlyUnread bool) ([]domain.Notification, error) {
	return s.notificationRepo.List(ctx, userID, onlyUnread)
}

func (s *notificationService) MarkAsRead(ctx context.Context, userID, notificationID int64) error {
	return s.notificationRepo.MarkRead(ctx, notificationID, userID)
}
