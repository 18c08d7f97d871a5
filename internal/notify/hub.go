package notify

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

const defaultSubscriptionBuffer = 16

// Hub is an in-process fan-out broadcast. Every event published is delivered
// to each subscription connected at the moment of publish; there is no replay
// for late subscribers. A subscriber that stops draining its channel is
// dropped from the set so it can never stall publishing.
type Hub struct {
	mu     sync.Mutex
	subs   map[*Subscription]struct{}
	logger *zap.Logger
}

type Subscription struct {
	ch     chan Event
	hub    *Hub
	closed bool
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		subs:   make(map[*Subscription]struct{}),
		logger: logger,
	}
}

func (h *Hub) Subscribe() *Subscription {
	sub := &Subscription{
		ch:  make(chan Event, defaultSubscriptionBuffer),
		hub: h,
	}

	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()

	return sub
}

// Publish delivers the event to every current subscriber. It never fails and
// never blocks: a subscriber whose buffer is full is disconnected instead.
func (h *Hub) Publish(ctx context.Context, event Event) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sub := range h.subs {
		select {
		case sub.ch <- event:
		default:
			h.logger.Warn("dropping slow subscriber", zap.String("event", event.Name))
			h.remove(sub)
		}
	}

	return nil
}

// SubscriberCount reports how many subscriptions are currently connected.
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// remove must be called with h.mu held.
func (h *Hub) remove(sub *Subscription) {
	if sub.closed {
		return
	}
	sub.closed = true
	delete(h.subs, sub)
	close(sub.ch)
}

// Events returns the channel the subscription receives on. The channel is
// closed when the subscription is cancelled or dropped by the hub.
func (s *Subscription) Events() <-chan Event {
	return s.ch
}

func (s *Subscription) Close() {
	s.hub.mu.Lock()
	s.hub.remove(s)
	s.hub.mu.Unlock()
}
