// Package events writes storefront events to the structured log, so the log
// file doubles as an audit trail of cart, order and session changes.
package events

import (
	"context"
	"slices"

	"github.com/alexisbeaulieu97/shopmate/internal/ports"
)

var _ ports.EventPublisher = (*AuditLog)(nil)

// AuditLog records every published event as one "storefront event" entry.
// Map payloads are flattened into fields in key order.
type AuditLog struct {
	logger ports.Logger
}

// NewAuditLog creates an audit log. A nil logger discards events.
func NewAuditLog(logger ports.Logger) *AuditLog {
	return &AuditLog{logger: logger}
}

// Publish implements ports.EventPublisher.
func (a *AuditLog) Publish(ctx context.Context, event ports.DomainEvent) error {
	if a == nil || a.logger == nil || event == nil {
		return nil
	}
	a.logger.Info(ctx, "storefront event", eventFields(event)...)
	return nil
}

func eventFields(event ports.DomainEvent) []interface{} {
	fields := []interface{}{"event_type", event.EventType()}
	switch payload := event.Payload().(type) {
	case nil:
	case map[string]interface{}:
		keys := make([]string, 0, len(payload))
		for key := range payload {
			keys = append(keys, key)
		}
		slices.Sort(keys)
		for _, key := range keys {
			fields = append(fields, key, payload[key])
		}
	default:
		fields = append(fields, "payload", payload)
	}
	return fields
}
