package actions

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"sync"
	"time"

	"folio/internal/domain"
	"folio/internal/eventbus"
	"folio/internal/grid"
)

// ErrRejected is returned for mutations the endpoint refuses
var ErrRejected = errors.New("mutation rejected")

// Store is the part of the record store the endpoint writes to
type Store interface {
	SetField(kind domain.Kind, id, field string, value any) error
	Delete(kind domain.Kind, id string) error
	Reorder(kind domain.Kind, ids []string) error
}

// Options tune the simulated endpoint
type Options struct {
	Latency     time.Duration
	FailureRate float64 // 0..1
	Concurrency int
	Timeout     time.Duration // per request
}

// ActionService applies row mutations in the background
type ActionService interface {
	Apply(ctx context.Context, kind domain.Kind, sub grid.Submission) error
	FailNext(key grid.MutationKey)
	Wait()
}

// actionService is the concrete implementation
type actionService struct {
	bus        eventbus.EventBus
	store      Store
	opts       Options
	mu         sync.Mutex
	forced     map[grid.MutationKey]bool
	rand       func() float64
	workerPool chan struct{} // Semaphore for limiting concurrent mutations
	inflight   sync.WaitGroup
}

// NewActionService creates the endpoint and subscribes it to the bus
func NewActionService(bus eventbus.EventBus, store Store, opts Options) ActionService {
	if opts.Concurrency <= 0 {
		opts.Concurrency = 4
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	as := &actionService{
		bus:        bus,
		store:      store,
		opts:       opts,
		forced:     make(map[grid.MutationKey]bool),
		rand:       rand.Float64,
		workerPool: make(chan struct{}, opts.Concurrency),
	}

	bus.Subscribe(eventbus.EventMutationRequested, func(e eventbus.DomainEvent) {
		event, ok := e.(eventbus.MutationRequestedEvent)
		if !ok {
			return
		}
		as.inflight.Add(1)
		go func() {
			defer as.inflight.Done()
			ctx, cancel := context.WithTimeout(context.Background(), as.opts.Timeout)
			defer cancel()

			sub := event.Submission
			err := as.Apply(ctx, event.Kind, sub)
			if err != nil {
				log.Printf("Mutation %s on %s/%s failed: %v", sub.Intent, event.Kind, sub.RowID, err)
			}
			as.bus.Publish(eventbus.MutationSettledEvent{
				Kind:    event.Kind,
				Key:     sub.Key(),
				ID:      sub.ID,
				Success: err == nil,
				Err:     err,
			})
			if err == nil {
				as.bus.Publish(eventbus.RecordsChangedEvent{Kind: event.Kind})
			}
		}()
	})

	bus.Subscribe(eventbus.EventRowsReordered, func(e eventbus.DomainEvent) {
		event, ok := e.(eventbus.RowsReorderedEvent)
		if !ok {
			return
		}
		if err := as.store.Reorder(event.Kind, event.IDs); err != nil {
			log.Printf("Failed to persist %s order: %v", event.Kind, err)
			as.bus.Publish(eventbus.ErrorEvent{
				Message: fmt.Sprintf("Could not save %s order", event.Kind.Title()),
				Err:     err,
			})
			return
		}
		as.bus.Publish(eventbus.RecordsChangedEvent{Kind: event.Kind})
	})

	return as
}

// Apply runs one mutation against the store after the configured latency
func (as *actionService) Apply(ctx context.Context, kind domain.Kind, sub grid.Submission) error {
	// Acquire worker slot
	select {
	case as.workerPool <- struct{}{}:
		defer func() { <-as.workerPool }()
	case <-ctx.Done():
		return ctx.Err()
	}

	if as.opts.Latency > 0 {
		timer := time.NewTimer(as.opts.Latency)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		}
	}

	if as.shouldFail(sub.Key()) {
		return fmt.Errorf("%s %s: %w", sub.Intent, sub.RowID, ErrRejected)
	}
	var err error
	switch sub.Intent {
	case domain.IntentDelete:
		err = as.store.Delete(kind, string(sub.RowID))
	default:
		err = as.store.SetField(kind, string(sub.RowID), sub.Field, sub.Value)
	}
	if err != nil {
		return fmt.Errorf("%s %s: %w", sub.Intent, sub.RowID, err)
	}
	return nil
}

// FailNext makes the next mutation for key fail
func (as *actionService) FailNext(key grid.MutationKey) {
	as.mu.Lock()
	defer as.mu.Unlock()
	as.forced[key] = true
}

// Wait blocks until all bus-triggered mutations have settled
func (as *actionService) Wait() {
	as.inflight.Wait()
}

func (as *actionService) shouldFail(key grid.MutationKey) bool {
	as.mu.Lock()
	defer as.mu.Unlock()
	if as.forced[key] {
		delete(as.forced, key)
		return true
	}
	return as.opts.FailureRate > 0 && as.rand() < as.opts.FailureRate
}
