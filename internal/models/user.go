package models

import "time"

// User is an admin account. Accounts are created at bootstrap or via the
// CLI and are never exposed through the public API.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
