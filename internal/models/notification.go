package models

import "time"

// NotificationKind classifies a notification for display purposes.
type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
	NotifyInfo    NotificationKind = "info"
)

// Notification is a transient user-facing message describing the outcome
// of a store action. IDs are time-derived and strictly monotonic so the
// queue stays ordered even when two notifications land in the same
// millisecond. Each notification is removed automatically five seconds
// after creation unless dismissed earlier.
type Notification struct {
	ID        int64            `json:"id"`
	Message   string           `json:"message"`
	Kind      NotificationKind `json:"kind"`
	Timestamp time.Time        `json:"timestamp"`
}
