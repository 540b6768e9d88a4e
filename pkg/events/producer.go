package events

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"travelease/pkg/logger"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

var ErrProducerClosed = errors.New("event producer is closed")

// Publisher emits domain events. Publish failures are reported to the caller
// but are never a reason to fail the originating request.
type Publisher interface {
	Publish(ctx context.Context, eventType, key string, payload any) error
	Close() error
}

type Producer struct {
	writer *kafka.Writer
	source string
	mu     sync.RWMutex
	closed bool
}

// NewProducer builds a Kafka-backed publisher. Keys hash to partitions so
// events for one record stay ordered.
func NewProducer(brokers []string, topic, source string, log *logger.Logger) (*Producer, error) {
	if len(brokers) == 0 {
		return nil, errors.New("at least one broker is required")
	}
	if topic == "" {
		return nil, errors.New("topic cannot be empty")
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		MaxAttempts:  3,
		BatchTimeout: 50 * time.Millisecond,
		Logger:       kafka.LoggerFunc(func(msg string, args ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			log.Error("Kafka producer error", "detail", msg)
		}),
	}

	return &Producer{writer: writer, source: source}, nil
}

func (p *Producer) Publish(ctx context.Context, eventType, key string, payload any) error {
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return ErrProducerClosed
	}
	p.mu.RUnlock()

	value, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	msg := kafka.Message{
		Key:   []byte(key),
		Value: value,
		Time:  now,
		Headers: []kafka.Header{
			{Key: HeaderEventID, Value: []byte(uuid.NewString())},
			{Key: HeaderEventType, Value: []byte(eventType)},
			{Key: HeaderSource, Value: []byte(p.source)},
			{Key: HeaderTimestamp, Value: []byte(now.Format(time.RFC3339))},
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

// NoopPublisher is used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, eventType, key string, payload any) error {
	return nil
}

func (NoopPublisher) Close() error { return nil }
