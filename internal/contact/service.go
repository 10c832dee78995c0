package contact

import (
	"context"
	"log"

	"github.com/Kavindu379/portfolio/internal/config"
	"github.com/Kavindu379/portfolio/internal/store"
)

// MessageLog records delivery attempts. *store.Store satisfies it.
type MessageLog interface {
	SaveMessage(ctx context.Context, m store.Message) (store.Message, error)
}

// Service delivers submissions and keeps a log of every attempt.
type Service struct {
	sender Sender
	log    MessageLog
}

// NewService wraps sender. A nil log disables recording.
func NewService(sender Sender, messages MessageLog) *Service {
	return &Service{sender: sender, log: messages}
}

// SenderFromConfig picks the relay when an access key is configured and
// SMTP otherwise.
func SenderFromConfig(cfg config.ContactConfig) Sender {
	if cfg.UsesRelay() {
		return NewRelay(cfg.RelayEndpoint, cfg.RelayAccessKey, cfg.Timeout)
	}
	return NewSMTPSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Pass, cfg.SMTP.To)
}

// Submit delivers s once. Delivery errors are logged and returned; a
// failure to record the attempt is only logged.
func (svc *Service) Submit(ctx context.Context, s Submission) error {
	err := svc.sender.Send(ctx, s)

	m := store.Message{Name: s.Name, Email: s.Email, Body: s.Message, Status: store.StatusSent}
	if err != nil {
		log.Printf("contact: delivery failed for %s: %v", s.Email, err)
		m.Status = store.StatusFailed
		m.Error = err.Error()
	} else {
		log.Printf("contact: message delivered from %s (%s)", s.Name, s.Email)
	}

	if svc.log != nil {
		if _, rerr := svc.log.SaveMessage(context.WithoutCancel(ctx), m); rerr != nil {
			log.Printf("contact: recording message: %v", rerr)
		}
	}
	return err
}
