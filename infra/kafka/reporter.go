// Package kafka publishes executed trades to a Kafka topic for
// downstream settlement and reporting.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"floe/domain/book"
)

// Reporter writes one JSON message per trade, keyed by the crossing
// order id so all fills of one aggressor stay in partition order.
type Reporter struct {
	writer *kafka.Writer
}

func NewReporter(brokers []string, topic string) *Reporter {
	return &Reporter{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			RequiredAcks: kafka.RequireAll,
			Async:        false,
			BatchTimeout: 10 * time.Millisecond,
		},
	}
}

func (r *Reporter) Report(ctx context.Context, t book.Trade) error {
	value, err := json.Marshal(t)
	if err != nil {
		return err
	}
	return r.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(t.CrossingOrderID),
		Value: value,
	})
}

func (r *Reporter) Close() error {
	return r.writer.Close()
}
