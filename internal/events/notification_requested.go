package events

import "time"

const (
	NotificationRequestedTopic     = "aakb.notification.requested.v1"
	NotificationRequestedEventType = "notification_requested"
)

// NotificationRequestedEvent carries one notification from a service to the
// fan-out consumer. Roles are resolved to active profiles at delivery time.
type NotificationRequestedEvent struct {
	EventType      string         `json:"event_type"`
	RequestID      string         `json:"request_id,omitempty"`
	RecipientIDs   []string       `json:"recipient_ids,omitempty"`
	RecipientRoles []string       `json:"recipient_roles,omitempty"`
	Title          string         `json:"title"`
	Body           string         `json:"body"`
	Data           map[string]any `json:"data,omitempty"`
	OccurredAt     time.Time      `json:"occurred_at"`
}
