package models

import "time"

const BookingStatusPending = "pending"

type Booking struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone,omitempty"`
	Date            string    `json:"date"`
	GroupSize       int       `json:"group_size"`
	ExperienceLevel string    `json:"experience_level,omitempty"`
	Message         string    `json:"message,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}
