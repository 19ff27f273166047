// Package mail sends transactional HTML email over implicit-TLS SMTP.
package mail

import (
	"crypto/tls"
	"fmt"
	"net/smtp"

	"github.com/dgm-logistikk/frakt-api/internal/application/notify"
	"github.com/dgm-logistikk/frakt-api/pkg/config"
	"github.com/dgm-logistikk/frakt-api/pkg/logger"
)

// Ensure SMTPSender implements notify.Mailer.
var _ notify.Mailer = (*SMTPSender)(nil)

// SMTPSender delivers mail through an SMTP relay with implicit TLS (port 465).
// With no host configured it logs the message instead of sending, so
// development environments work without a relay.
type SMTPSender struct {
	cfg config.SMTPConfig
	log *logger.Logger
}

// NewSMTPSender builds the sender.
func NewSMTPSender(cfg config.SMTPConfig, log *logger.Logger) *SMTPSender {
	return &SMTPSender{cfg: cfg, log: log}
}

// Send delivers one HTML message to a single recipient.
func (s *SMTPSender) Send(to, subject, htmlBody string) error {
	if !s.cfg.Enabled() {
		s.log.Info().Str("to", to).Str("subject", subject).Msg("SMTP not configured, email would be sent")
		return nil
	}

	msg := []byte(
		fmt.Sprintf("From: %s\r\n", s.cfg.From) +
			fmt.Sprintf("To: %s\r\n", to) +
			fmt.Sprintf("Subject: %s\r\n", subject) +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/html; charset=\"utf-8\"\r\n" +
			"\r\n" +
			htmlBody,
	)

	serverAddr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	tlsConfig := &tls.Config{ServerName: s.cfg.Host}
	conn, err := tls.Dial("tcp", serverAddr, tlsConfig)
	if err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	defer client.Quit()

	if s.cfg.Username != "" {
		auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}

	if err := client.Mail(s.cfg.From); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("smtp rcpt: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("smtp write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp close: %w", err)
	}
	return nil
}
