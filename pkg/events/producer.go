package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const (
	headerEventID   = "event-id"
	headerEventType = "event-type"
	headerSource    = "source"
)

// Producer wraps a kafka-go writer for the profile audit topic.
type Producer struct {
	writer *kafka.Writer
	source string
	mu     sync.Mutex
	closed bool
}

func NewProducer(brokers []string, topic string, source string) (*Producer, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("at least one broker is required")
	}
	if topic == "" {
		return nil, fmt.Errorf("topic cannot be empty")
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		Logger:       kafka.LoggerFunc(func(string, ...any) {}),
	}

	return &Producer{
		writer: writer,
		source: source,
	}, nil
}

func (p *Producer) Publish(ctx context.Context, event ProfileViewed) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return fmt.Errorf("producer is closed")
	}
	p.mu.Unlock()

	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}
	if event.EventType == "" {
		event.EventType = TypeProfileViewed
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: value,
		Headers: []kafka.Header{
			{Key: headerEventID, Value: []byte(event.EventID)},
			{Key: headerEventType, Value: []byte(event.EventType)},
			{Key: headerSource, Value: []byte(p.source)},
		},
	}

	return p.writer.WriteMessages(ctx, msg)
}

func (p *Producer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	return p.writer.Close()
}
