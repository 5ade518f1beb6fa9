package domain

type Notification struct {
	ID        int64             `json:"id"`
	UserID    int64             `json:"user_id"`
	Type      string            `json:"type"`
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	Data      map[string]string `json:"data"`
	CreatedAt string            `json:"created_at"`
	ReadAt    *string           `json:"read_at,omitempty"`
}

// OutboxEvent is a queued outbound delivery (email/push) written alongside
// the notification row and drained by the scheduler after commit.
type OutboxEvent struct {
	ID        string            `json:"id"`
	UserID    int64             `json:"user_id"`
	EventType string            `json:"event_type"`
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	Data      map[string]string `json:"data"`
	Attempts  int               `json:"attempts"`
	CreatedAt string            `json:"created_at"`
}
