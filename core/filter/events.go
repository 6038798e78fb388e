package filter

import (
	"context"
	"time"
)

// EventType names a filter pass lifecycle event.
type EventType string

const (
	FilterStart   EventType = "filter:start"
	FilterSuccess EventType = "filter:success"
	FilterFailed  EventType = "filter:failed"
)

// Valid reports whether t is one of the events a Processor emits.
func (t EventType) Valid() bool {
	switch t {
	case FilterStart, FilterSuccess, FilterFailed:
		return true
	}
	return false
}

// Event describes one stage of a filter pass run by a Processor.
type Event struct {
	Type      EventType      `json:"type"`               // The stage of the pass.
	Timestamp int64          `json:"timestamp"`          // Unix milliseconds.
	Operation string         `json:"operation"`          // "filter" or "filter_parallel".
	Input     int            `json:"input"`              // Number of records offered to the predicate.
	Matched   int            `json:"matched"`            // Number of records that passed; zero until success.
	Workers   int            `json:"workers,omitempty"`  // Requested worker count for parallel passes.
	Error     *string        `json:"error,omitempty"`    // Error message if the pass failed.
	Duration  *time.Duration `json:"duration,omitempty"` // Elapsed time, set on success and failure.
}

// EventCallbackFunction receives events a subscription was registered for.
type EventCallbackFunction func(ctx context.Context, event Event) error

// RegisterSubscriptionOptions defines options for registering a subscription.
type RegisterSubscriptionOptions struct {
	Event       EventType `json:"event"`
	Label       *string   `json:"label,omitempty"`
	Description *string   `json:"description,omitempty"`
	Callback    EventCallbackFunction
}

// SubscriptionInfo describes a registered subscription.
type SubscriptionInfo struct {
	Id          *string   `json:"id,omitempty"`
	Event       EventType `json:"event"`
	Label       *string   `json:"label,omitempty"`
	Description *string   `json:"description,omitempty"`
	Unsubscribe func()    `json:"-"`
}

func createEvent(eventType EventType, operation string, input, matched, workers int, err error, startTime time.Time) Event {
	var duration *time.Duration
	if !startTime.IsZero() {
		d := time.Since(startTime)
		duration = &d
	}

	var errStr *string
	if err != nil {
		s := err.Error()
		errStr = &s
	}

	return Event{
		Type:      eventType,
		Timestamp: time.Now().UnixMilli(),
		Operation: operation,
		Input:     input,
		Matched:   matched,
		Workers:   workers,
		Error:     errStr,
		Duration:  duration,
	}
}
