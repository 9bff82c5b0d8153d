package notification

import (
	"context"
	"fmt"

	"farmhub/config"

	"gopkg.in/gomail.v2"
)

// SMTPNotificationService is the production implementation, delivering
// notifications over SMTP.
type SMTPNotificationService struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPNotificationService builds a mailer from the application config.
func NewSMTPNotificationService() *SMTPNotificationService {
	cfg := config.AppConfig
	return &SMTPNotificationService{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.SMTPFrom,
	}
}

// Send delivers a single message. The dial itself is not cancelable, so the
// context is only consulted up front.
func (s *SMTPNotificationService) Send(ctx context.Context, email Email) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", email.To)
	msg.SetHeader("Subject", email.Subject)
	msg.SetBody("text/plain", email.Body)

	if err := s.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", email.To, err)
	}
	return nil
}
