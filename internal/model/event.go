package model

import (
	"time"

	"github.com/google/uuid"
)

// SearchPerformed is published after every network-backed search.
type SearchPerformed struct {
	EventID    uuid.UUID
	SessionID  uuid.UUID
	Query      string
	Mode       Mode
	Page       int
	Total      int64
	Failed     bool
	OccurredAt time.Time
}

type TrendingTerm struct {
	Query string
	Count int64
}
