package notify

import (
	"context"
	"errors"
)

type multiPublisher struct {
	publishers []Publisher
}

// NewMultiPublisher fans one publish out to several publishers, typically the
// in-process hub plus an AMQP broadcaster. A failing publisher does not stop
// delivery to the others.
func NewMultiPublisher(publishers ...Publisher) Publisher {
	return &multiPublisher{publishers: publishers}
}

func (m *multiPublisher) Publish(ctx context.Context, event Event) error {
	var errs []error
	for _, p := range m.publishers {
		if err := p.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
