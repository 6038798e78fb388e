package filter

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/asaidimu/go-events"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrUnknownEvent is returned when subscribing to an event a Processor never emits.
	ErrUnknownEvent = errors.New("unknown filter event")
	// ErrNilCallback is returned when a subscription has no callback.
	ErrNilCallback = errors.New("subscription callback is nil")
)

// Processor runs filter passes over collections of T, logging each pass and
// publishing its lifecycle on an event bus that callers can subscribe to.
type Processor[T any] struct {
	logger        *zap.Logger
	bus           *events.TypedEventBus[Event]
	subscriptions map[string]*SubscriptionInfo
	subMu         sync.RWMutex
}

// NewProcessor creates a new Processor. A nil logger disables logging.
func NewProcessor[T any](logger *zap.Logger) (*Processor[T], error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	bus, err := events.NewTypedEventBus[Event](events.DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("could not initialize event bus: %w", err)
	}
	return &Processor[T]{
		logger:        logger,
		bus:           bus,
		subscriptions: make(map[string]*SubscriptionInfo),
	}, nil
}

func (p *Processor[T]) emitEvent(event Event) {
	if p.bus != nil {
		p.bus.Emit(string(event.Type), event)
	}
}

// Filter applies pred to in with Apply and stores the matches in *out.
func (p *Processor[T]) Filter(in []T, pred Predicate[T], out *[]T) int {
	startTime := time.Now()
	p.emitEvent(createEvent(FilterStart, "filter", len(in), 0, 0, nil, time.Time{}))

	matched := Apply(in, pred, out)

	p.logger.Debug("Filter pass complete",
		zap.Int("input", len(in)),
		zap.Int("matched", matched),
		zap.Duration("elapsed", time.Since(startTime)))
	p.emitEvent(createEvent(FilterSuccess, "filter", len(in), matched, 0, nil, startTime))
	return matched
}

// FilterParallel applies pred to in with ApplyParallel using up to workers
// goroutines and stores the matches in *out.
func (p *Processor[T]) FilterParallel(ctx context.Context, in []T, pred Predicate[T], out *[]T, workers int) (int, error) {
	startTime := time.Now()
	p.emitEvent(createEvent(FilterStart, "filter_parallel", len(in), 0, workers, nil, time.Time{}))

	matched, err := ApplyParallel(ctx, in, pred, out, workers)
	if err != nil {
		p.logger.Warn("Parallel filter pass aborted", zap.Int("input", len(in)), zap.Error(err))
		p.emitEvent(createEvent(FilterFailed, "filter_parallel", len(in), 0, workers, err, startTime))
		return 0, fmt.Errorf("parallel filter failed: %w", err)
	}

	p.logger.Debug("Parallel filter pass complete",
		zap.Int("input", len(in)),
		zap.Int("matched", matched),
		zap.Int("workers", workers),
		zap.Duration("elapsed", time.Since(startTime)))
	p.emitEvent(createEvent(FilterSuccess, "filter_parallel", len(in), matched, workers, nil, startTime))
	return matched, nil
}

// RegisterSubscription registers a callback for a filter event. It returns a
// unique ID that can be used to unregister the subscription later. Only the
// FilterStart, FilterSuccess and FilterFailed events can be subscribed to.
func (p *Processor[T]) RegisterSubscription(options RegisterSubscriptionOptions) (string, error) {
	if !options.Event.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownEvent, options.Event)
	}
	if options.Callback == nil {
		return "", fmt.Errorf("%w: %s", ErrNilCallback, options.Event)
	}

	p.subMu.Lock()
	defer p.subMu.Unlock()

	unsubscribe := p.bus.Subscribe(string(options.Event), options.Callback)
	id := uuid.New().String()

	p.subscriptions[id] = &SubscriptionInfo{
		Id:          &id,
		Event:       options.Event,
		Label:       options.Label,
		Description: options.Description,
		Unsubscribe: unsubscribe,
	}
	p.logger.Info("Registered subscription", zap.String("id", id), zap.String("event", string(options.Event)))
	return id, nil
}

// UnregisterSubscription removes a subscription by its ID and reports whether
// it was registered.
func (p *Processor[T]) UnregisterSubscription(id string) bool {
	p.subMu.Lock()
	defer p.subMu.Unlock()

	info, ok := p.subscriptions[id]
	if !ok {
		return false
	}
	info.Unsubscribe()
	delete(p.subscriptions, id)
	p.logger.Info("Unregistered subscription", zap.String("id", id), zap.String("event", string(info.Event)))
	return true
}

// Subscriptions returns the active subscriptions ordered by lifecycle stage
// (start, success, failed), then by ID.
func (p *Processor[T]) Subscriptions() []SubscriptionInfo {
	p.subMu.RLock()
	defer p.subMu.RUnlock()

	subs := make([]SubscriptionInfo, 0, len(p.subscriptions))
	for _, sub := range p.subscriptions {
		subs = append(subs, *sub)
	}
	slices.SortFunc(subs, func(a, b SubscriptionInfo) int {
		if c := cmp.Compare(stage(a.Event), stage(b.Event)); c != 0 {
			return c
		}
		return cmp.Compare(*a.Id, *b.Id)
	})
	return subs
}

func stage(t EventType) int {
	switch t {
	case FilterStart:
		return 0
	case FilterSuccess:
		return 1
	default:
		return 2
	}
}
