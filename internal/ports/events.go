package ports

import "context"

// Storefront event types.
const (
	EventCartUpdated     = "cart.updated"
	EventWishlistUpdated = "wishlist.updated"
	EventOrderPlaced     = "order.placed"
	EventSessionStarted  = "session.started"
	EventSessionEnded    = "session.ended"
	EventThemeChanged    = "theme.changed"
)

// DomainEvent is something that happened to storefront state.
type DomainEvent interface {
	EventType() string
	Payload() interface{}
}

// EventPublisher records storefront events.
type EventPublisher interface {
	Publish(ctx context.Context, event DomainEvent) error
}

// Event is a plain DomainEvent.
type Event struct {
	Type string
	Data map[string]interface{}
}

// NewEvent builds an Event with the given payload.
func NewEvent(eventType string, data map[string]interface{}) Event {
	return Event{Type: eventType, Data: data}
}

// EventType implements DomainEvent.
func (e Event) EventType() string { return e.Type }

// Payload implements DomainEvent.
func (e Event) Payload() interface{} { return e.Data }
