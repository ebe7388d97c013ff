// Package contact delivers contact-form submissions by email.
package contact

import (
	"context"
	"fmt"
	"net/mail"
	"net/smtp"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrNotConfigured is returned when SMTP credentials are missing.
var ErrNotConfigured = errors.New("SMTP credentials not configured")

// ErrInvalid is returned for incomplete submissions.
var ErrInvalid = errors.New("invalid contact message")

// Message is one contact-form submission.
type Message struct {
	Name   string
	Email  string
	Body   string
	Locale string
}

// Validate trims the fields and checks they are usable.
func (m *Message) Validate() error {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)
	m.Body = strings.TrimSpace(m.Body)
	if m.Name == "" || m.Body == "" {
		return ErrInvalid
	}
	if _, err := mail.ParseAddress(m.Email); err != nil {
		return errors.Wrap(ErrInvalid, "email")
	}
	if strings.ContainsAny(m.Name+m.Email, "\r\n") {
		return errors.Wrap(ErrInvalid, "header injection")
	}
	return nil
}

// Mailer sends contact messages.
type Mailer interface {
	Send(ctx context.Context, m Message) error
}

// SendFunc matches smtp.SendMail.
type SendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPMailer sends through an SMTP relay with PLAIN auth.
type SMTPMailer struct {
	Host    string
	Port    string
	User    string
	Pass    string
	ToEmail string

	send SendFunc
	log  *zap.Logger
}

// NewSMTPMailer builds a mailer. When toEmail is empty, mail goes to user.
func NewSMTPMailer(host, port, user, pass, toEmail string, log *zap.Logger) *SMTPMailer {
	if log == nil {
		log = zap.NewNop()
	}
	if toEmail == "" {
		toEmail = user
	}
	return &SMTPMailer{Host: host, Port: port, User: user, Pass: pass, ToEmail: toEmail, send: smtp.SendMail, log: log}
}

// Send composes and delivers m.
func (s *SMTPMailer) Send(ctx context.Context, m Message) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if s.User == "" || s.Pass == "" {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := compose(s.User, s.ToEmail, m)
	auth := smtp.PlainAuth("", s.User, s.Pass, s.Host)
	if err := s.send(s.Host+":"+s.Port, auth, s.User, []string{s.ToEmail}, msg); err != nil {
		s.log.Error("error sending email", zap.Error(err))
		return errors.Wrap(err, "send contact email")
	}
	s.log.Info("contact email sent", zap.String("from", m.Email))
	return nil
}

func compose(from, to string, m Message) []byte {
	subject := fmt.Sprintf("Portfolio Contact: %s", m.Name)
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Language: %s
Message:
%s

---
Sent from your portfolio contact form
`, m.Name, m.Email, m.Locale, m.Body)

	return []byte("To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + from + "\r\n" +
		"Reply-To: " + m.Email + "\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		body + "\r\n")
}
