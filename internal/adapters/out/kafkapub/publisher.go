// Package kafkapub publishes order confirmation events to Kafka. The
// notification dispatch job drains the outbox through this publisher.
package kafkapub

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
)

// OrderConfirmedEvent is the message published for each confirmed order.
type OrderConfirmedEvent struct {
	NotificationID string    `json:"notificationId"`
	CustomerID     int64     `json:"customerId"`
	OrderID        int64     `json:"orderId"`
	ConfirmedAt    time.Time `json:"confirmedAt"`
}

// Publisher writes order confirmation events to a Kafka topic.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher creates a publisher for the given brokers and topic.
func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// PublishOrderConfirmed publishes the event keyed by customer id, so a
// customer's confirmations stay ordered within a partition.
func (p *Publisher) PublishOrderConfirmed(ctx context.Context, event OrderConfirmedEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(event.CustomerID, 10)),
		Value: value,
	})
}

// Close closes the underlying Kafka writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
