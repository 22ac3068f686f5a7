package searchconsumer

import (
	"context"
	"fmt"

	"github.com/you-humble/partexplorer/internal/model"
	eventsv1 "github.com/you-humble/partexplorer/pkg/events/v1"
	"github.com/you-humble/partexplorer/platform/kafka"
	"github.com/you-humble/partexplorer/platform/logger"
)

type Converter interface {
	SearchPerformedToModel(data []byte) (model.SearchPerformed, error)
}

type Recorder interface {
	Record(ctx context.Context, event model.SearchPerformed) error
}

type service struct {
	consumer kafka.Consumer
	conv     Converter
	recorder Recorder
}

func NewSearchConsumer(
	consumer kafka.Consumer,
	conv Converter,
	recorder Recorder,
) *service {
	return &service{consumer: consumer, conv: conv, recorder: recorder}
}

func (s *service) RunSearchPerformedConsume(ctx context.Context) error {
	logger.Info(ctx, "Starting search performed consumer")

	if err := s.consumer.Consume(ctx, s.searchPerformedHandler); err != nil {
		logger.Error(ctx, "Consume from search.performed topic error", logger.ErrorF(err))
		return err
	}

	return nil
}

func (s *service) searchPerformedHandler(ctx context.Context, msg kafka.Message) error {
	if typ, ok := msg.Header(eventsv1.HeaderEventType); ok && typ != eventsv1.EventTypeSearchPerformed {
		logger.Debug(ctx, "skipping foreign event", logger.String("event_type", typ))
		return nil
	}

	event, err := s.conv.SearchPerformedToModel(msg.Value)
	if err != nil {
		// Undecodable records are acknowledged and dropped.
		logger.Error(ctx, "Failed to decode SearchPerformedRecord",
			logger.Int64("offset", msg.Offset),
			logger.ErrorF(err),
		)
		return nil
	}

	if err := s.recorder.Record(ctx, event); err != nil {
		return fmt.Errorf("record search performed: %w", err)
	}

	return nil
}
