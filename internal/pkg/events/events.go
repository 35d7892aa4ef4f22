// internal/pkg/events/events.go
package events

import (
	evbus "github.com/asaskevich/EventBus"
)

// Topics published by the domain services. The display layer subscribes to
// these instead of polling; remotely-synced collections stay
// eventually-consistent snapshots.
const (
	TopicCartOpened     = "cart.opened"
	TopicCatalogChanged = "catalog.changed"
	TopicOrderCreated   = "order.created"
)

// Bus is the in-process observable-store bus shared by the domain services.
type Bus struct {
	bus evbus.Bus
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{bus: evbus.New()}
}

// Publish emits an event on the given topic. Fire and forget.
func (b *Bus) Publish(topic string, args ...interface{}) {
	b.bus.Publish(topic, args...)
}

// Subscribe registers a handler for the given topic.
func (b *Bus) Subscribe(topic string, fn interface{}) error {
	return b.bus.Subscribe(topic, fn)
}

// Unsubscribe removes a previously registered handler.
func (b *Bus) Unsubscribe(topic string, fn interface{}) error {
	return b.bus.Unsubscribe(topic, fn)
}
