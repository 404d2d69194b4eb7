// Package mail delivers invoice mails over SMTP using gomail.
package mail

import (
	"fmt"
	"io"

	gomail "gopkg.in/gomail.v2"

	"github.com/handwerkpro/handwerkpro-api/internal/application/invoices"
	"github.com/handwerkpro/handwerkpro-api/pkg/config"
)

var _ invoices.Mailer = (*GomailSender)(nil)

// GomailSender sends mails through the configured SMTP relay.
type GomailSender struct {
	cfg config.MailConfig
}

// NewGomailSender builds the sender.
func NewGomailSender(cfg config.MailConfig) *GomailSender {
	return &GomailSender{cfg: cfg}
}

// Send delivers one message with a single attachment. A new connection is
// dialed per message; invoice volume does not justify a persistent session.
func (s *GomailSender) Send(to, subject, body, attachmentName string, attachment []byte) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	m.Attach(attachmentName, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(attachment)
		return err
	}))

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
