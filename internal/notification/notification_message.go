package notification

import "context"

// Message addresses profiles directly, by role, or both. The fan-out consumer
// resolves roles to active profiles and de-duplicates recipients.
type Message struct {
	RecipientIDs   []string       `json:"recipient_ids,omitempty"`
	RecipientRoles []string       `json:"recipient_roles,omitempty"`
	Title          string         `json:"title"`
	Body           string         `json:"body"`
	Data           map[string]any `json:"data,omitempty"`
}

// Sink accepts notifications for asynchronous delivery. Callers treat a
// returned error as non-fatal.
//
//go:generate mockgen -source=notification_message.go -destination=mock/notification_sink_mock.go -package=mock
type Sink interface {
	Notify(ctx context.Context, msg Message) error
}
