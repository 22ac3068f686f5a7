package searchproducer

import (
	"context"
	"fmt"

	"github.com/you-humble/partexplorer/internal/model"
	eventsv1 "github.com/you-humble/partexplorer/pkg/events/v1"
	"github.com/you-humble/partexplorer/platform/kafka"
)

type Converter interface {
	SearchPerformedToPayload(m model.SearchPerformed) ([]byte, error)
}

type service struct {
	producer kafka.Producer
	conv     Converter
}

func NewSearchProducer(producer kafka.Producer, conv Converter) *service {
	return &service{producer: producer, conv: conv}
}

// SendSearchPerformed keys the record by session so one session's searches
// stay ordered within a partition.
func (s *service) SendSearchPerformed(ctx context.Context, event model.SearchPerformed) error {
	payload, err := s.conv.SearchPerformedToPayload(event)
	if err != nil {
		return fmt.Errorf("converter search_performed_to_payload error: %w", err)
	}

	err = s.producer.Send(ctx, []byte(event.SessionID.String()), payload,
		kafka.Header{Key: eventsv1.HeaderEventType, Value: eventsv1.EventTypeSearchPerformed},
		kafka.Header{Key: eventsv1.HeaderContentType, Value: eventsv1.ContentTypeJSON},
	)
	if err != nil {
		return fmt.Errorf("producer to search.performed topic error: %w", err)
	}

	return nil
}
