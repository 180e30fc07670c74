package services

import (
	"github.com/Roopkumar213/KNG/internal/models"
	"github.com/Roopkumar213/KNG/internal/repository"
	"github.com/Roopkumar213/KNG/internal/validators"
)

type InquiryService struct {
	repo *repository.InquiryRepository
}

func NewInquiryService(repo *repository.InquiryRepository) *InquiryService {
	return &InquiryService{repo: repo}
}

// Create validates and persists an inquiry. Inquiries do not trigger a
// notification email.
func (s *InquiryService) Create(inq *models.Inquiry) (int64, error) {
	if err := validators.Required("name", inq.Name); err != nil {
		return 0, err
	}
	if err := validators.ValidateEmail(inq.Email); err != nil {
		return 0, err
	}
	if err := validators.Required("message", inq.Message); err != nil {
		return 0, err
	}

	if err := s.repo.Create(inq); err != nil {
		return 0, err
	}
	return inq.ID, nil
}

func (s *InquiryService) List() ([]*models.Inquiry, error) {
	return s.repo.List()
}
