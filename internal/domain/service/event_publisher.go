package service

import (
	"context"
	"time"
)

// ChangeAction names the mutation that produced a ChangeEvent
type ChangeAction string

const (
	ChangeCreated ChangeAction = "created"
	ChangeUpdated ChangeAction = "updated"
	ChangeDeleted ChangeAction = "deleted"
)

// ChangeEvent describes a committed mutation of an entity
type ChangeEvent struct {
	RequestID  string       `json:"request_id,omitempty"` // For distributed tracing
	Collection string       `json:"collection"`
	EntityID   string       `json:"entity_id"`
	Action     ChangeAction `json:"action"`
	At         time.Time    `json:"at"`
}

// EventPublisher defines the interface for publishing change events to a message queue
type EventPublisher interface {
	// PublishChangeEvent publishes a change event for downstream consumers
	PublishChangeEvent(ctx context.Context, event *ChangeEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
