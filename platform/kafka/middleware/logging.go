package middleware

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/you-humble/partexplorer/platform/kafka"
)

type DebugLogger interface {
	Debug(ctx context.Context, msg string, fields ...zap.Field)
}

func Logging(logger DebugLogger) kafka.Middleware {
	return func(next kafka.MessageHandler) kafka.MessageHandler {
		return func(ctx context.Context, msg kafka.Message) error {
			start := time.Now()
			err := next(ctx, msg)

			logger.Debug(ctx, "kafka message handled",
				zap.String("topic", msg.Topic),
				zap.Int32("partition", msg.Partition),
				zap.Int64("offset", msg.Offset),
				zap.Duration("took", time.Since(start)),
				zap.Bool("ok", err == nil),
			)
			return err
		}
	}
}
