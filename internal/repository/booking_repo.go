package repository

import (
	"time"

	"github.com/Roopkumar213/KNG/internal/database"
	"github.com/Roopkumar213/KNG/internal/models"
)

type BookingRepository struct {
	db *database.DB
}

func NewBookingRepository(db *database.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(b *models.Booking) error {
	if b.Status == "" {
		b.Status = models.BookingStatusPending
	}
	b.CreatedAt = time.Now()
	result, err := r.db.Exec(`
		INSERT INTO bookings (name, email, phone, date, group_size, experience_level, message, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, b.Name, b.Email, b.Phone, b.Date, b.GroupSize, b.ExperienceLevel, b.Message, b.Status, b.CreatedAt)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = id
	return nil
}

func (r *BookingRepository) List() ([]*models.Booking, error) {
	rows, err := r.db.Query(`
		SELECT id, name, email, phone, date, group_size, experience_level, message, status, created_at
		FROM bookings
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*models.Booking
	for rows.Next() {
		b := &models.Booking{}
		err := rows.Scan(&b.ID, &b.Name, &b.Email, &b.Phone, &b.Date,
			&b.GroupSize, &b.ExperienceLevel, &b.Message, &b.Status, &b.CreatedAt)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
