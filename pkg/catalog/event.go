package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Action names a catalog mutation.
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// ChangeEvent is published in the same transaction as every catalog write.
// Consumers use it to keep read caches fresh.
type ChangeEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	Kind       Kind      `json:"kind"`
	ItemID     int64     `json:"item_id"`
	Action     Action    `json:"action"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewChangeEvent(kind Kind, id int64, action Action, at time.Time) ChangeEvent {
	return ChangeEvent{
		EventID:    uuid.New(),
		Version:    1,
		Kind:       kind,
		ItemID:     id,
		Action:     action,
		OccurredAt: at,
	}
}
