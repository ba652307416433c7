package pubsub

import "context"

type Message struct {
	Channel string
	Payload string
}

type PubSub interface {
	ReceiveMessage(ctx context.Context) (Message, error)
	Close() error
}

// Service publishes to and subscribes on named channels. Subscribe returns
// once the subscription is active, so messages published afterwards are
// delivered.
type Service interface {
	Publish(ctx context.Context, channel string, message interface{}) error
	Subscribe(ctx context.Context, channel string) (PubSub, error)
}
