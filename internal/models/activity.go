package models

import "time"

// Activity is one entry of the dashboard's recent-activity feed,
// describing a successful CRUD action on a resource.
type Activity struct {
	Type      string    `json:"type"`    // e.g. "user_added", "product_deleted"
	Message   string    `json:"message"` // human-readable summary
	Resource  string    `json:"resource"`
	EntityID  int       `json:"entity_id"`
	Timestamp time.Time `json:"timestamp"`
}
