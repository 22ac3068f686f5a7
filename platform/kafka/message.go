package kafka

import "time"

// Message is a consumed record detached from sarama types.
type Message struct {
	Headers        map[string][]byte
	Timestamp      time.Time
	BlockTimestamp time.Time

	Key       []byte
	Value     []byte
	Topic     string
	Partition int32
	Offset    int64
}

// Header returns the value of header key, if present.
func (m Message) Header(key string) (string, bool) {
	v, ok := m.Headers[key]
	if !ok {
		return "", false
	}
	return string(v), true
}
