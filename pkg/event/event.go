// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Flight envelope and powerplant events published by the engine.
const (
	StallWarning          Type = "stall_warning"
	StallRecovered        Type = "stall_recovered"
	AfterburnerEngaged    Type = "afterburner_engaged"
	AfterburnerDisengaged Type = "afterburner_disengaged"
	MachCrossedUp         Type = "mach_crossed_up"
	MachCrossedDown       Type = "mach_crossed_down"
	FuelLow               Type = "fuel_low"
	FuelExhausted         Type = "fuel_exhausted"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Publish sends an event to all subscribed handlers. A nil bus is valid
// and drops everything, so the engine can run without observers.
func (b *Bus) Publish(event Event) {
	if b == nil {
		return
	}
	b.mu.RLock()
	handlers, ok := b.handlers[event.GetType()]
	b.mu.RUnlock()

	if !ok {
		return
	}

	for _, handler := range handlers {
		handler(event)
	}
}

// FlightEvent carries the flight context at the moment an envelope or
// powerplant event fired.
type FlightEvent struct {
	BaseEvent
	SimTime  float64 // s
	Altitude float64 // m
	Mach     float64
	Fuel     float64 // kg remaining
}

// NewFlightEvent creates a flight event snapshotting the given context.
func NewFlightEvent(eventType Type, source interface{}, simTime, altitude, mach, fuel float64) *FlightEvent {
	return &FlightEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		SimTime:  simTime,
		Altitude: altitude,
		Mach:     mach,
		Fuel:     fuel,
	}
}
