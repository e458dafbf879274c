package notify

import (
	"context"
	"fmt"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	"github.com/segmentio/kafka-go"
)

// messageWriter is the part of *kafka.Writer the notifier uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaNotifier publishes alerts as JSON records keyed by product ID.
type KafkaNotifier struct {
	writer messageWriter
}

// NewKafkaNotifier creates a synchronous producer for topic.
func NewKafkaNotifier(brokers []string, topic string) *KafkaNotifier {
	return &KafkaNotifier{writer: &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 10 * time.Millisecond,
		Async:        false,
	}}
}

// Notify publishes the alert. Records for the same product land on the same partition.
func (n *KafkaNotifier) Notify(ctx context.Context, alert Alert) error {
	value, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("failed to encode alert: %w", err)
	}

	err = n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(alert.ProductID, 10)),
		Value: value,
		Time:  alert.RaisedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to publish alert: %w", err)
	}
	return nil
}

// Close flushes and closes the producer.
func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
