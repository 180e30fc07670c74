package notify

import (
	"log"

	"gopkg.in/gomail.v2"

	"github.com/Roopkumar213/KNG/internal/config"
)

// Notifier delivers a rendered notification email. Implementations always
// return instead of panicking; delivery is best-effort for callers.
type Notifier interface {
	Send(to, subject, htmlBody string) error
}

// New picks the SMTP notifier when a host is configured and falls back to
// the console notifier otherwise.
func New(cfg config.SMTPConfig) Notifier {
	if cfg.Host == "" {
		return &ConsoleNotifier{}
	}
	return NewSMTPNotifier(cfg)
}

// ConsoleNotifier logs delivery intent instead of performing network
// delivery. Used in demos and development without SMTP credentials.
type ConsoleNotifier struct{}

func (n *ConsoleNotifier) Send(to, subject, htmlBody string) error {
	log.Println("========================================")
	log.Printf("SENDING EMAIL TO: %s", to)
	log.Printf("Subject: %s", subject)
	log.Println("========================================")
	return nil
}

// SMTPNotifier delivers mail through a configured SMTP endpoint.
type SMTPNotifier struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPNotifier(cfg config.SMTPConfig) *SMTPNotifier {
	from := cfg.From
	if from == "" {
		from = cfg.Username
	}
	return &SMTPNotifier{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   from,
	}
}

func (n *SMTPNotifier) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)
	return n.dialer.DialAndSend(m)
}
