package notify

import (
	"strings"
	"testing"

	"github.com/Roopkumar213/KNG/internal/config"
	"github.com/Roopkumar213/KNG/internal/models"
)

func TestBookingEmail(t *testing.T) {
	b := &models.Booking{
		Name:            "Alice",
		Email:           "alice@example.com",
		Phone:           "+254700000000",
		Date:            "2026-09-12",
		GroupSize:       4,
		ExperienceLevel: "beginner",
	}

	body, err := BookingEmail(b)
	if err != nil {
		t.Fatalf("BookingEmail() error = %v", err)
	}

	for _, want := range []string{"Alice", "alice@example.com", "2026-09-12", "4 Climbers", "beginner"} {
		if !strings.Contains(body, want) {
			t.Errorf("email body missing %q", want)
		}
	}
	if !strings.Contains(body, "mailto:alice@example.com") {
		t.Error("email body missing reply link")
	}
}

func TestBookingEmail_EscapesHTML(t *testing.T) {
	b := &models.Booking{
		Name:      "<script>alert(1)</script>",
		Email:     "x@y.com",
		Date:      "2026-09-12",
		GroupSize: 1,
	}

	body, err := BookingEmail(b)
	if err != nil {
		t.Fatalf("BookingEmail() error = %v", err)
	}
	if strings.Contains(body, "<script>") {
		t.Error("tourist-supplied fields must be escaped")
	}
}

func TestConsoleNotifier_Send(t *testing.T) {
	n := &ConsoleNotifier{}
	if err := n.Send("admin@kangundhi.com", BookingSubject, "<html></html>"); err != nil {
		t.Errorf("Send() error = %v, want nil", err)
	}
}

func TestNew_PicksImplementation(t *testing.T) {
	if _, ok := New(config.SMTPConfig{}).(*ConsoleNotifier); !ok {
		t.Error("New() without host should return ConsoleNotifier")
	}
	if _, ok := New(config.SMTPConfig{Host: "smtp.example.com", Port: 587}).(*SMTPNotifier); !ok {
		t.Error("New() with host should return SMTPNotifier")
	}
}
