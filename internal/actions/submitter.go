package actions

import (
	"context"

	"folio/internal/domain"
	"folio/internal/eventbus"
	"folio/internal/grid"
)

// busSubmitter hands submissions to the endpoint through the event bus
type busSubmitter struct {
	bus  eventbus.EventBus
	kind domain.Kind
}

// NewSubmitter returns a grid.Submitter that publishes mutation requests for
// one collection. It never blocks on the outcome.
func NewSubmitter(bus eventbus.EventBus, kind domain.Kind) grid.Submitter {
	return &busSubmitter{bus: bus, kind: kind}
}

func (s *busSubmitter) Submit(ctx context.Context, sub grid.Submission) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.bus.Publish(eventbus.MutationRequestedEvent{Kind: s.kind, Submission: sub})
	return nil
}
