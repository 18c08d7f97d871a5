package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"tableside/internal/notify"
)

// Broadcaster publishes order events to a fanout exchange so out-of-process
// viewers (kitchen displays) can bind their own exclusive queues. Subscribers
// that bind after a publish never see it, matching the in-process hub.
type Broadcaster struct {
	mu       sync.Mutex
	ch       *amqp.Channel
	exchange string
}

func NewBroadcaster(conn *amqp.Connection, exchange string) (*Broadcaster, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("opening channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchange, "fanout", true, false, false, false, nil); err != nil {
		ch.Close()
		return nil, fmt.Errorf("declaring exchange: %w", err)
	}

	return &Broadcaster{ch: ch, exchange: exchange}, nil
}

func (b *Broadcaster) Publish(ctx context.Context, event notify.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshaling event: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	err = b.ch.PublishWithContext(ctx, b.exchange, "", false, false, amqp.Publishing{
		ContentType: "application/json",
		Type:        event.Name,
		Body:        body,
	})
	if err != nil {
		return fmt.Errorf("publishing event: %w", err)
	}

	return nil
}

func (b *Broadcaster) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ch.Close()
}
