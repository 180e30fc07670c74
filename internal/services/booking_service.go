package services

import (
	"log"

	"github.com/Roopkumar213/KNG/internal/models"
	"github.com/Roopkumar213/KNG/internal/notify"
	"github.com/Roopkumar213/KNG/internal/repository"
	"github.com/Roopkumar213/KNG/internal/validators"
)

type BookingService struct {
	repo        *repository.BookingRepository
	notifier    notify.Notifier
	notifyEmail string
}

func NewBookingService(repo *repository.BookingRepository, notifier notify.Notifier, notifyEmail string) *BookingService {
	return &BookingService{
		repo:        repo,
		notifier:    notifier,
		notifyEmail: notifyEmail,
	}
}

// Create validates and persists a booking, then notifies the admin address.
// Persistence is authoritative: a notification failure never rolls back the
// booking and never reaches the caller.
func (s *BookingService) Create(b *models.Booking) (int64, error) {
	if err := validators.Required("name", b.Name); err != nil {
		return 0, err
	}
	if err := validators.ValidateEmail(b.Email); err != nil {
		return 0, err
	}
	if err := validators.Required("date", b.Date); err != nil {
		return 0, err
	}
	if err := validators.ValidateGroupSize(b.GroupSize); err != nil {
		return 0, err
	}

	if err := s.repo.Create(b); err != nil {
		return 0, err
	}

	s.notifyAdmin(b)
	return b.ID, nil
}

func (s *BookingService) List() ([]*models.Booking, error) {
	return s.repo.List()
}

func (s *BookingService) notifyAdmin(b *models.Booking) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Booking notification panicked: %v", r)
		}
	}()

	body, err := notify.BookingEmail(b)
	if err != nil {
		log.Printf("Failed to render booking email: %v", err)
		return
	}
	if err := s.notifier.Send(s.notifyEmail, notify.BookingSubject, body); err != nil {
		log.Printf("Failed to send booking email: %v", err)
	}
}
