package listeners

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SeaCloudHub/enquiry/domain"
	"github.com/SeaCloudHub/enquiry/domain/pubsub"
	"github.com/google/uuid"
)

// Envelope is the message published for every dispatched event.
type Envelope struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

type PublishListener struct {
	pubsub  pubsub.Service
	channel string
	now     func() time.Time
}

func NewPublishListener(pubsub pubsub.Service, channel string) PublishListener {
	return PublishListener{
		pubsub:  pubsub,
		channel: channel,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (l PublishListener) EventHandler(ctx context.Context, event domain.BaseDomainEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", event.EventName(), err)
	}

	msg, err := json.Marshal(Envelope{
		ID:         uuid.New(),
		Name:       event.EventName(),
		OccurredAt: l.now(),
		Payload:    payload,
	})
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}

	if err := l.pubsub.Publish(ctx, l.channel, string(msg)); err != nil {
		return fmt.Errorf("publish %s: %w", event.EventName(), err)
	}

	return nil
}
