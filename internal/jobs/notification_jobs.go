package jobs

import (
	"context"
	"time"

	"sportshare-backend/internal/logger"
)

const (
	outboxBatchSize = 50
	outboxRetention = 30 * 24 * time.Hour
)

// DispatchNotificationOutbox drains undispatched outbox events to the
// configured delivery channels: one email per event plus one push per
// registered device. An event is marked dispatched only when every
// channel attempt succeeded; otherwise its attempt counter is bumped
// and the next run retries it.
func (jr *JobRunner) DispatchNotificationOutbox() {
	jr.runWithRecovery("DispatchNotificationOutbox", func() {
		ctx := context.Background()

		events, err := jr.store.ListUndispatched(ctx, outboxBatchSize)
		if err != nil {
			logger.Error("Failed to list undispatched outbox events", "error", err)
			return
		}

		dispatched := 0
		for _, ev := range events {
			user, err := jr.store.UserRepository.GetByID(ctx, ev.UserID)
			if err != nil {
				logger.Error("Failed to load outbox recipient",
					"event_id", ev.ID,
					"user_id", ev.UserID,
					"error", err)
				if err := jr.store.RecordAttempt(ctx, ev.ID); err != nil {
					logger.Error("Failed to record outbox attempt", "event_id", ev.ID, "error", err)
				}
				continue
			}

			delivered := true

			if jr.services.Email != nil && user.Email != "" {
				err := jr.services.Email.SendBookingDecisionNotification(ctx,
					user.Email, user.FullName,
					ev.Data["equipment_title"], ev.Data["status"],
					ev.Data["start_date"], ev.Data["end_date"])
				if err != nil {
					logger.Error("Failed to send outbox email",
						"event_id", ev.ID,
						"user_id", ev.UserID,
						"error", err)
					delivered = false
				}
			}

			if jr.services.Push != nil {
				tokens, err := jr.store.ListDeviceTokens(ctx, ev.UserID)
				if err != nil {
					logger.Error("Failed to list device tokens",
						"event_id", ev.ID,
						"user_id", ev.UserID,
						"error", err)
					delivered = false
				}
				for _, token := range tokens {
					if err := jr.services.Push.Send(ctx, token, ev.Title, ev.Body, ev.Data); err != nil {
						logger.Error("Failed to send push",
							"event_id", ev.ID,
							"user_id", ev.UserID,
							"error", err)
						delivered = false
					}
				}
			}

			if !delivered {
				if err := jr.store.RecordAttempt(ctx, ev.ID); err != nil {
					logger.Error("Failed to record outbox attempt", "event_id", ev.ID, "error", err)
				}
				continue
			}

			if err := jr.store.MarkDispatched(ctx, ev.ID); err != nil {
				logger.Error("Failed to mark outbox event dispatched", "event_id", ev.ID, "error", err)
				continue
			}
			dispatched++
			logger.Debug("Dispatched outbox event",
				"event_id", ev.ID,
				"user_id", ev.UserID,
				"event_type", ev.EventType)
		}

		logger.Info("Notification outbox dispatched", "count", dispatched, "batch", len(events))
	})
}

// PurgeNotificationOutbox removes dispatched events older than the
// retention window.
func (jr *JobRunner) PurgeNotificationOutbox() {
	jr.runWithRecovery("PurgeNotificationOutbox", func() {
		ctx := context.Background()

		cutoff := time.Now().Add(-outboxRetention)
		purged, err := jr.store.PurgeDispatchedBefore(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to purge dispatched outbox events", "error", err)
			return
		}
		logger.Info("Notification outbox purged", "count", purged, "cutoff", cutoff.Format(time.RFC3339))
	})
}
