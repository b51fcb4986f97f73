// Package mail implements notification delivery over SMTP.
package mail

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/rs/zerolog"

	"github.com/jobhive/backend/internal/core/ports"
)

// Config captures SMTP connection settings. An empty Host disables
// delivery: notifications are logged and dropped, which keeps local
// development working without a mail server.
type Config struct {
	Host string
	Port int
	From string
}

// SMTPMailer delivers notifications through a plain SMTP relay.
type SMTPMailer struct {
	cfg    Config
	logger zerolog.Logger
}

func NewSMTPMailer(cfg Config, logger zerolog.Logger) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, logger: logger}
}

func (m *SMTPMailer) Send(_ context.Context, n ports.Notification) error {
	if m.cfg.Host == "" {
		m.logger.Info().
			Str("to", n.To).
			Str("subject", n.Subject).
			Msg("smtp not configured, dropping notification")
		return nil
	}

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		m.cfg.From, n.To, n.Subject, n.Body,
	))

	if err := smtp.SendMail(addr, nil, m.cfg.From, []string{n.To}, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
