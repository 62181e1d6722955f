// Package queue defines the change events published to the message broker
// and the consumer that records them.
package queue

import "time"

// Entities and actions carried by ChangeEvent.
const (
	EntityClub    = "club"
	EntityStadium = "stadium"

	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// ChangeEvent is published after a club or stadium is created, updated or
// deleted.  Name is the club name or stadium name at the time of the change;
// it is empty for deletes.
type ChangeEvent struct {
	Entity     string `json:"entity"`
	Action     string `json:"action"`
	ID         uint64 `json:"id"`
	Name       string `json:"name,omitempty"`
	OccurredAt string `json:"occurred_at"`
}

// NewChangeEvent stamps the event with the current UTC time.
func NewChangeEvent(entity, action string, id uint64, name string) ChangeEvent {
	return ChangeEvent{
		Entity:     entity,
		Action:     action,
		ID:         id,
		Name:       name,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
}
