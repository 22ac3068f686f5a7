package converter

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/you-humble/partexplorer/internal/model"
	eventsv1 "github.com/you-humble/partexplorer/pkg/events/v1"
)

type kafkaConverter struct{}

func NewKafkaConverter() *kafkaConverter { return &kafkaConverter{} }

func (c *kafkaConverter) SearchPerformedToPayload(m model.SearchPerformed) ([]byte, error) {
	payload, err := json.Marshal(eventsv1.SearchPerformedRecord{
		EventUUID:   m.EventID.String(),
		SessionUUID: m.SessionID.String(),
		Query:       m.Query,
		Mode:        string(m.Mode),
		Page:        m.Page,
		Total:       m.Total,
		Failed:      m.Failed,
		OccurredAt:  m.OccurredAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search performed record: %w", err)
	}

	return payload, nil
}

func (c *kafkaConverter) SearchPerformedToModel(data []byte) (model.SearchPerformed, error) {
	var rec eventsv1.SearchPerformedRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return model.SearchPerformed{}, fmt.Errorf("failed to unmarshal search performed record: %w", err)
	}

	eventID, err := uuid.Parse(rec.EventUUID)
	if err != nil {
		return model.SearchPerformed{}, fmt.Errorf("invalid event_uuid: %w", err)
	}
	sessionID, err := uuid.Parse(rec.SessionUUID)
	if err != nil {
		return model.SearchPerformed{}, fmt.Errorf("invalid session_uuid: %w", err)
	}
	occurredAt, err := time.Parse(time.RFC3339Nano, rec.OccurredAt)
	if err != nil {
		return model.SearchPerformed{}, fmt.Errorf("invalid occurred_at: %w", err)
	}

	return model.SearchPerformed{
		EventID:    eventID,
		SessionID:  sessionID,
		Query:      rec.Query,
		Mode:       model.Mode(rec.Mode),
		Page:       rec.Page,
		Total:      rec.Total,
		Failed:     rec.Failed,
		OccurredAt: occurredAt,
	}, nil
}
