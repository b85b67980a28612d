// Package eventhandlers contains the reactions that advance the fulfillment
// workflow. Events recorded in the outbox are routed here by type tag; each
// reaction runs in its own transaction and must tolerate redelivery, since
// the outbox guarantees at-least-once processing.
package eventhandlers

import (
	"context"
	"fmt"
)

// Handler processes a single delivered event payload.
// Implementations must be idempotent: the same payload may arrive more than
// once and must not produce duplicate side effects.
type Handler interface {
	Handle(ctx context.Context, payload []byte) error
}

// HandlerFactory produces a fresh Handler per delivery, so handlers never
// carry state between events.
type HandlerFactory func() Handler

// Registry maps event type tags to handler factories. The mapping is built
// once at startup and read-only afterwards, so dispatch needs no locking.
type Registry struct {
	factories map[string]HandlerFactory
}

// NewRegistry creates an empty handler registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]HandlerFactory),
	}
}

// Register binds an event type tag to a handler factory.
// Registering the same tag twice is a programming error.
func (r *Registry) Register(eventType string, factory HandlerFactory) error {
	if eventType == "" {
		return fmt.Errorf("event type is required")
	}
	if factory == nil {
		return fmt.Errorf("handler factory is required for event type %q", eventType)
	}
	if _, exists := r.factories[eventType]; exists {
		return fmt.Errorf("handler already registered for event type %q", eventType)
	}

	r.factories[eventType] = factory
	return nil
}

// Dispatch routes a payload to the handler registered for its type tag.
// An unknown tag is an error local to that event; the caller decides whether
// to retry it later.
func (r *Registry) Dispatch(ctx context.Context, eventType string, payload []byte) error {
	factory, ok := r.factories[eventType]
	if !ok {
		return fmt.Errorf("no handler registered for event type %q", eventType)
	}

	return factory().Handle(ctx, payload)
}
