package searchconsumer

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/partexplorer/internal/converter"
	"github.com/you-humble/partexplorer/internal/model"
	eventsv1 "github.com/you-humble/partexplorer/pkg/events/v1"
	"github.com/you-humble/partexplorer/platform/kafka"
)

type replayConsumer struct {
	messages []kafka.Message
	errs     []error
}

func (c *replayConsumer) Consume(ctx context.Context, handler kafka.MessageHandler) error {
	for _, msg := range c.messages {
		c.errs = append(c.errs, handler(ctx, msg))
	}
	return nil
}

type recorder struct {
	events []model.SearchPerformed
	err    error
}

func (r *recorder) Record(_ context.Context, e model.SearchPerformed) error {
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, e)
	return nil
}

func record(t *testing.T, e model.SearchPerformed, eventType string) kafka.Message {
	t.Helper()

	payload, err := converter.NewKafkaConverter().SearchPerformedToPayload(e)
	require.NoError(t, err)

	headers := map[string][]byte{}
	if eventType != "" {
		headers[eventsv1.HeaderEventType] = []byte(eventType)
	}
	return kafka.Message{Topic: "search.performed", Value: payload, Headers: headers}
}

func TestRunSearchPerformedConsume(t *testing.T) {
	t.Parallel()

	good := model.SearchPerformed{EventID: uuid.New(), SessionID: uuid.New(), Query: "freio", Page: 1}
	untyped := model.SearchPerformed{EventID: uuid.New(), SessionID: uuid.New(), Query: "filtro", Page: 1}

	src := &replayConsumer{messages: []kafka.Message{
		record(t, good, eventsv1.EventTypeSearchPerformed),
		record(t, untyped, ""),
		record(t, model.SearchPerformed{EventID: uuid.New(), SessionID: uuid.New()}, "order.paid.v1"),
		{Topic: "search.performed", Value: []byte("garbage")},
	}}
	rec := &recorder{}

	svc := NewSearchConsumer(src, converter.NewKafkaConverter(), rec)
	require.NoError(t, svc.RunSearchPerformedConsume(context.Background()))

	require.Len(t, rec.events, 2)
	assert.Equal(t, "freio", rec.events[0].Query)
	assert.Equal(t, "filtro", rec.events[1].Query)
	assert.Equal(t, []error{nil, nil, nil, nil}, src.errs)
}

func TestSearchPerformedHandlerRecorderFailure(t *testing.T) {
	t.Parallel()

	e := model.SearchPerformed{EventID: uuid.New(), SessionID: uuid.New(), Query: "freio", Page: 1}
	src := &replayConsumer{messages: []kafka.Message{record(t, e, eventsv1.EventTypeSearchPerformed)}}

	svc := NewSearchConsumer(src, converter.NewKafkaConverter(), &recorder{err: errors.New("full")})
	require.NoError(t, svc.RunSearchPerformedConsume(context.Background()))

	require.Len(t, src.errs, 1)
	assert.ErrorContains(t, src.errs[0], "full")
}
