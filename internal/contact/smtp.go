package contact

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
)

// ErrSMTPNotConfigured is returned when no SMTP credentials are set.
var ErrSMTPNotConfigured = errors.New("SMTP credentials not configured")

// SMTPSender emails submissions to the site owner.
type SMTPSender struct {
	Host string
	Port string
	User string
	Pass string
	To   string

	// sendMail is smtp.SendMail outside tests.
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPSender builds a sender for host:port authenticating as user.
func NewSMTPSender(host, port, user, pass, to string) *SMTPSender {
	return &SMTPSender{Host: host, Port: port, User: user, Pass: pass, To: to, sendMail: smtp.SendMail}
}

// Message renders the RFC 5322 message for s. Replies go to the visitor.
func (m *SMTPSender) Message(s Submission) []byte {
	return []byte("To: " + m.To + "\r\n" +
		"Subject: " + s.Subject() + "\r\n" +
		"From: " + m.User + "\r\n" +
		"Reply-To: " + oneLine(s.Email) + "\r\n" +
		"\r\n" +
		s.Body() + "\r\n")
}

// Send delivers s. net/smtp has no context support, so ctx is only
// checked before dialing.
func (m *SMTPSender) Send(ctx context.Context, s Submission) error {
	if m.User == "" || m.Pass == "" {
		return ErrSMTPNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	send := m.sendMail
	if send == nil {
		send = smtp.SendMail
	}
	auth := smtp.PlainAuth("", m.User, m.Pass, m.Host)
	if err := send(m.Host+":"+m.Port, auth, m.User, []string{m.To}, m.Message(s)); err != nil {
		return fmt.Errorf("sending mail via %s: %w", m.Host, err)
	}
	return nil
}
