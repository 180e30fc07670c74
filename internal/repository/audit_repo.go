package repository

import (
	"time"

	"github.com/Roopkumar213/KNG/internal/database"
	"github.com/Roopkumar213/KNG/internal/models"
)

type AuditRepository struct {
	db *database.DB
}

func NewAuditRepository(db *database.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// Create appends an entry. The audit trail is append-only; there are no
// update or delete operations.
func (r *AuditRepository) Create(entry *models.AuditLog) error {
	entry.Timestamp = time.Now()
	result, err := r.db.Exec(`
		INSERT INTO audit_logs (event_type, user_id, description, ip_address, timestamp)
		VALUES (?, ?, ?, ?, ?)
	`, entry.EventType, entry.UserID, entry.Description, entry.IP, entry.Timestamp)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	entry.ID = id
	return nil
}

// ListRecent returns at most limit entries, most recent first.
func (r *AuditRepository) ListRecent(limit int) ([]*models.AuditLog, error) {
	rows, err := r.db.Query(`
		SELECT id, event_type, user_id, description, ip_address, timestamp
		FROM audit_logs
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*models.AuditLog
	for rows.Next() {
		entry := &models.AuditLog{}
		err := rows.Scan(&entry.ID, &entry.EventType, &entry.UserID,
			&entry.Description, &entry.IP, &entry.Timestamp)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
