package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

func NewEmailSender(host string, port int, user, password string, secure bool) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		Secure:   secure,
	}
}

// Send delivers a rendered message over SMTP. The dial itself is not
// cancellable; callers bound the whole call with a deadline and abandon
// it on timeout.
func (s *EmailSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.Host == "" || s.User == "" {
		return fmt.Errorf("smtp transport not configured")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.User, msg.FromName))
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	d.SSL = s.Secure

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}

	return nil
}
