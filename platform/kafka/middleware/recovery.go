package middleware

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/you-humble/partexplorer/platform/kafka"
)

type ErrorLogger interface {
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

// Recovery turns a handler panic into an error so the record stays unmarked.
func Recovery(logger ErrorLogger) kafka.Middleware {
	return func(next kafka.MessageHandler) kafka.MessageHandler {
		return func(ctx context.Context, msg kafka.Message) (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error(ctx, "kafka handler panicked",
						zap.String("topic", msg.Topic),
						zap.Int64("offset", msg.Offset),
						zap.Any("panic", r),
					)
					err = fmt.Errorf("kafka handler panic: %v", r)
				}
			}()
			return next(ctx, msg)
		}
	}
}
