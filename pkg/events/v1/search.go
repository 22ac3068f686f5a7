// Package eventsv1 holds the JSON records published on PartExplorer topics.
package eventsv1

const (
	HeaderEventType   = "event-type"
	HeaderContentType = "content-type"

	EventTypeSearchPerformed = "search.performed.v1"
	ContentTypeJSON          = "application/json"
)

type SearchPerformedRecord struct {
	EventUUID   string `json:"event_uuid"`
	SessionUUID string `json:"session_uuid"`
	Query       string `json:"query"`
	Mode        string `json:"mode"`
	Page        int    `json:"page"`
	Total       int64  `json:"total"`
	Failed      bool   `json:"failed,omitempty"`
	OccurredAt  string `json:"occurred_at"`
}
