package model

import (
	"time"

	"github.com/google/uuid"
)

// PartUsage is emitted once per saved configuration.
type PartUsage struct {
	EventID    uuid.UUID
	BuildID    int64
	UserID     int64
	Parts      []PartRef
	OccurredAt time.Time
}
