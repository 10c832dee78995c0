// Package contact delivers contact-form submissions, either through a
// third-party form relay or directly over SMTP.
package contact

import (
	"context"
	"fmt"
	"strings"
)

// Submission is a filled-in contact form.
type Submission struct {
	Name    string `form:"name" json:"name" binding:"required"`
	Email   string `form:"email" json:"email" binding:"required,email"`
	Message string `form:"message" json:"message" binding:"required"`
}

// Subject is the subject line used for delivered messages.
func (s Submission) Subject() string {
	return "Portfolio Contact: " + oneLine(s.Name)
}

// Body renders the plain-text message body.
func (s Submission) Body() string {
	return fmt.Sprintf(`New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, s.Name, s.Email, s.Message)
}

// oneLine strips line breaks so user input cannot add mail headers.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Sender delivers a submission.
type Sender interface {
	Send(ctx context.Context, s Submission) error
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, s Submission) error

func (f SenderFunc) Send(ctx context.Context, s Submission) error { return f(ctx, s) }
