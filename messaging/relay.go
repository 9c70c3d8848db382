package messaging

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hospice/hospital-locator-api/doctors"
	"github.com/hospice/hospital-locator-api/messages"
	log "github.com/hospice/hospital-locator-api/pkg/logger"
	"github.com/hospice/hospital-locator-api/repository"
	"go.uber.org/zap"
)

type DoctorFinder interface {
	GetDoctorByPhone(phone string) (*doctors.Doctor, error)
}

type MessageWriter interface {
	CreateMessage(m *messages.Message) error
}

// Publisher hands an inbound message to asynchronous persistence.
type Publisher interface {
	PublishInbound(ctx context.Context, inbound messages.Inbound) error
}

// Relay accepts doctor replies from the gateway webhook.
type Relay struct {
	doctors   DoctorFinder
	store     MessageWriter
	publisher Publisher
	rules     []ReplyRule
}

// NewRelay persists inbound messages directly when publisher is nil.
func NewRelay(doctors DoctorFinder, store MessageWriter, publisher Publisher) *Relay {
	return &Relay{doctors: doctors, store: store, publisher: publisher, rules: AutoReplies}
}

// Receive records an inbound message and returns the auto-reply text.
func (r *Relay) Receive(ctx context.Context, from, body string) (string, error) {
	inbound := messages.Inbound{
		ID:         uuid.NewString(),
		From:       StripWhatsApp(from),
		Body:       body,
		ReceivedAt: time.Now().UTC(),
	}

	log.Logger().Info("inbound message received",
		log.Phone("from", inbound.From),
		zap.Int("length", len(body)),
	)

	if r.publisher != nil {
		if err := r.publisher.PublishInbound(ctx, inbound); err != nil {
			log.Logger().Warn("inbound publish failed, storing directly", zap.Error(err))
			if err := r.Persist(inbound); err != nil {
				return "", err
			}
		}
	} else if err := r.Persist(inbound); err != nil {
		return "", err
	}

	return AutoReply(r.rules, body), nil
}

// Persist stores an inbound message as a doctor reply. Messages from unknown
// numbers are dropped, and a redelivered message is stored once.
func (r *Relay) Persist(inbound messages.Inbound) error {
	doctor, err := r.doctors.GetDoctorByPhone(inbound.From)
	if errors.Is(err, repository.ErrNotFound) {
		log.Logger().Info("inbound message from unknown number", log.Phone("from", inbound.From))
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not resolve sender: %w", err)
	}

	err = r.store.CreateMessage(&messages.Message{
		ID:        inbound.ID,
		DoctorID:  doctor.ID,
		Body:      inbound.Body,
		Sender:    messages.SenderDoctor,
		CreatedAt: inbound.ReceivedAt,
	})
	if errors.Is(err, repository.ErrDuplicate) {
		return nil
	}
	return err
}
