package realtime

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// OrdersChannel is the change-feed channel for the orders collection.
const OrdersChannel = "orders_changed"

// Handler receives the raw event payload. Subscribers are free to ignore the
// payload and treat the event as a bare "something changed" signal.
type Handler func(payload string)

// Feed delivers push notifications about changed collections.
type Feed interface {
	Subscribe(ctx context.Context, channel string, fn Handler) (Subscription, error)
}

// Publisher announces a change on a channel after a successful mutation.
type Publisher interface {
	Publish(ctx context.Context, channel, payload string) error
}

type Subscription interface {
	Close() error
}

// RedisFeed implements Feed and Publisher over a Redis pub/sub channel.
type RedisFeed struct {
	client *redis.Client
}

func NewRedisFeed(client *redis.Client) *RedisFeed {
	return &RedisFeed{client: client}
}

func (f *RedisFeed) Subscribe(ctx context.Context, channel string, fn Handler) (Subscription, error) {
	pubsub := f.client.Subscribe(ctx, channel)

	// Receive forces the SUBSCRIBE handshake so a failed connection surfaces
	// here instead of silently dropping every event.
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, err
	}

	go func() {
		for msg := range pubsub.Channel() {
			fn(msg.Payload)
		}
	}()

	return &redisSubscription{pubsub: pubsub}, nil
}

func (f *RedisFeed) Publish(ctx context.Context, channel, payload string) error {
	return f.client.Publish(ctx, channel, payload).Err()
}

type redisSubscription struct {
	pubsub *redis.PubSub
}

// Close unsubscribes and ends the delivery goroutine (the message channel is
// closed by go-redis once the PubSub is closed).
func (s *redisSubscription) Close() error {
	return s.pubsub.Close()
}
