package services

import (
	"log"

	"github.com/Roopkumar213/KNG/internal/models"
	"github.com/Roopkumar213/KNG/internal/repository"
)

// Event types
const (
	EventLoginSuccess = "LOGIN_SUCCESS"
	EventLoginFail    = "LOGIN_FAIL"
)

// RecentLimit caps the admin audit view.
const RecentLimit = 50

type AuditService struct {
	repo *repository.AuditRepository
}

func NewAuditService(repo *repository.AuditRepository) *AuditService {
	return &AuditService{repo: repo}
}

// Record appends an audit entry. A failed write must never fail the
// surrounding request, so errors land in the operational log only.
func (s *AuditService) Record(eventType, description string, userID *int64, ip string) {
	entry := &models.AuditLog{
		EventType:   eventType,
		UserID:      userID,
		Description: description,
		IP:          ip,
	}
	if err := s.repo.Create(entry); err != nil {
		log.Printf("Audit log failed: %v", err)
	}
}

// Recent returns at most RecentLimit entries, most recent first.
func (s *AuditService) Recent() ([]*models.AuditLog, error) {
	return s.repo.ListRecent(RecentLimit)
}
