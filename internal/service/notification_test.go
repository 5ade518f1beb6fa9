package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"sportshare-backend/internal/domain"
)

func TestNotificationService_Notify(t *testing.T) {
	ctx := context.Background()

	t.Run("PersistsAndEnqueues", func(t *testing.T) {
		repo := new(MockNotificationRepo)
		svc := NewNotificationService(repo)

		repo.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.UserID == 1 && n.Type == "booking_approved" && n.Title == "Booking approved"
		})).Return(nil).Once()
		repo.On("Enqueue", ctx, mock.MatchedBy(func(ev *domain.OutboxEvent) bool {
			return ev.ID != "" && ev.UserID == 1 && ev.EventType == "booking_approved"
		})).Return(nil).Once()

		err := svc.Notify(ctx, 1, "booking_approved", "Booking approved", "body", map[string]string{"booking_id": "42"})
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("EnqueueFailureIsBestEffort", func(t *testing.T) {
		repo := new(MockNotificationRepo)
		svc := NewNotificationService(repo)

		repo.On("Create", ctx, mock.Anything).Return(nil).Once()
		repo.On("Enqueue", ctx, mock.Anything).Return(assert.AnError).Once()

		err := svc.Notify(ctx, 1, "booking_rejected", "Booking rejected", "body", nil)
		assert.NoError(t, err)
	})

	t.Run("CreateFailurePropagates", func(t *testing.T) {
		repo := new(MockNotificationRepo)
		svc := NewNotificationService(repo)

		repo.On("Create", ctx, mock.Anything).Return(assert.AnError).Once()

		err := svc.Notify(ctx, 1, "booking_approved", "t", "b", nil)
		assert.Error(t, err)
		repo.AssertNotCalled(t, "Enqueue", mock.Anything, mock.Anything)
	})
}

func TestNotificationService_MarkAsRead(t *testing.T) {
	ctx := context.Background()
	repo := new(MockNotificationRepo)
	svc := NewNotificationService(repo)

	repo.On("MarkRead", ctx, int64(7), int64(1)).Return(nil).Once()

	err := svc.MarkAsRead(ctx, 1, 7)
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
