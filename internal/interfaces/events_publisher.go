package interfaces

import "context"

// EventPublisher delivers ledger events after a write has committed.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, event any) error
}
