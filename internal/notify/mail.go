package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"
)

// MailConfig содержит настройки SMTP и адреса получателей по классам.
type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string

	StaffEmails    []string
	FeedbackEmails []string
}

// MailSink реализует Sink через SMTP.
type MailSink struct {
	dialer *gomail.Dialer
	cfg    MailConfig
}

// NewMailSink создаёт почтовый Sink по настройкам cfg.
func NewMailSink(cfg MailConfig) *MailSink {
	return &MailSink{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		cfg:    cfg,
	}
}

// Deliver отправляет письмо получателям класса recipient.
// Каждой доставке присваивается идентификатор, по которому письмо можно
// найти в логах при разборе инцидентов.
func (s *MailSink) Deliver(ctx context.Context, subject, body string, recipient RecipientClass) error {
	recipients, err := s.recipients(recipient)
	if err != nil {
		return err
	}

	deliveryID := uuid.NewString()

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", recipients...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err = s.dialer.DialAndSend(m); err != nil {
		slog.Error("mail delivery failed",
			"delivery_id", deliveryID,
			"recipient_class", string(recipient),
			"err", err,
		)

		return fmt.Errorf("failed to deliver mail %s: %w", deliveryID, err)
	}

	slog.Info("mail delivered",
		"delivery_id", deliveryID,
		"recipient_class", string(recipient),
		"subject", subject,
	)

	return nil
}

func (s *MailSink) recipients(recipient RecipientClass) ([]string, error) {
	switch recipient {
	case RecipientStaff:
		return s.cfg.StaffEmails, nil
	case RecipientFeedback:
		return s.cfg.FeedbackEmails, nil
	}

	return nil, fmt.Errorf("unknown recipient class %q", recipient)
}
