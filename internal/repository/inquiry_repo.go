package repository

import (
	"time"

	"github.com/Roopkumar213/KNG/internal/database"
	"github.com/Roopkumar213/KNG/internal/models"
)

type InquiryRepository struct {
	db *database.DB
}

func NewInquiryRepository(db *database.DB) *InquiryRepository {
	return &InquiryRepository{db: db}
}

func (r *InquiryRepository) Create(inq *models.Inquiry) error {
	inq.CreatedAt = time.Now()
	result, err := r.db.Exec(`
		INSERT INTO inquiries (name, email, message, created_at)
		VALUES (?, ?, ?, ?)
	`, inq.Name, inq.Email, inq.Message, inq.CreatedAt)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	inq.ID = id
	return nil
}

func (r *InquiryRepository) List() ([]*models.Inquiry, error) {
	rows, err := r.db.Query(`
		SELECT id, name, email, message, created_at
		FROM inquiries
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var inquiries []*models.Inquiry
	for rows.Next() {
		inq := &models.Inquiry{}
		if err := rows.Scan(&inq.ID, &inq.Name, &inq.Email, &inq.Message, &inq.CreatedAt); err != nil {
			return nil, err
		}
		inquiries = append(inquiries, inq)
	}
	return inquiries, rows.Err()
}
