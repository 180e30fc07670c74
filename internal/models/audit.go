package models

import "time"

// AuditLog is an append-only record of a security-relevant event.
// UserID is nil when the event could not be tied to an account
// (failed login for an unknown email, missing credentials).
type AuditLog struct {
	ID          int64     `json:"id"`
	EventType   string    `json:"event_type"`
	UserID      *int64    `json:"user_id,omitempty"`
	Description string    `json:"description"`
	IP          string    `json:"ip_address"`
	Timestamp   time.Time `json:"timestamp"`
}
