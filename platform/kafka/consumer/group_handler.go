package consumer

import (
	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/you-humble/partexplorer/platform/kafka"
)

// groupHandler adapts a kafka.MessageHandler to sarama.ConsumerGroupHandler.
type groupHandler struct {
	handler kafka.MessageHandler
	logger  Logger
}

// NewGroupHandler wraps handler so that middlewares[0] runs first.
func NewGroupHandler(handler kafka.MessageHandler, logger Logger, middlewares ...kafka.Middleware) *groupHandler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}

	return &groupHandler{
		handler: handler,
		logger:  logger,
	}
}

func (g *groupHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (g *groupHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim marks a record only after the handler accepted it.
func (g *groupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	ctx := session.Context()

	for {
		select {
		case record, ok := <-claim.Messages():
			if !ok {
				return nil
			}

			if err := g.handler(ctx, toMessage(record)); err != nil {
				g.logger.Error(ctx, "kafka handler failed",
					zap.String("topic", record.Topic),
					zap.Int32("partition", record.Partition),
					zap.Int64("offset", record.Offset),
					zap.Error(err),
				)
				continue
			}

			session.MarkMessage(record, "")

		case <-ctx.Done():
			return nil
		}
	}
}

func toMessage(record *sarama.ConsumerMessage) kafka.Message {
	headers := make(map[string][]byte, len(record.Headers))
	for _, h := range record.Headers {
		if h != nil && h.Key != nil {
			headers[string(h.Key)] = h.Value
		}
	}

	return kafka.Message{
		Key:            record.Key,
		Value:          record.Value,
		Topic:          record.Topic,
		Partition:      record.Partition,
		Offset:         record.Offset,
		Timestamp:      record.Timestamp,
		BlockTimestamp: record.BlockTimestamp,
		Headers:        headers,
	}
}
