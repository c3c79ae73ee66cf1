package shared

import "context"

// EventPublisher publishes domain events to downstream consumers
type EventPublisher interface {
	// Publish publishes one or more domain events
	Publish(ctx context.Context, events ...DomainEvent) error
	// Close flushes pending events and releases resources
	Close() error
}
