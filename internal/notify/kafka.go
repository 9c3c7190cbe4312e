package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/Nullular/myHustle-WEB-sub004/internal/domain"
	"github.com/segmentio/kafka-go"
)

// KafkaNotifier publishes a checkout-completed event so the accounting
// dashboards can refresh. The checkout treats publish failures as soft, so
// this only has to make a reasonable attempt.
type KafkaNotifier struct {
	writer *kafka.Writer
}

func NewKafkaNotifier(brokers ...string) *KafkaNotifier {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  "accounting-refresh",
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &KafkaNotifier{writer: w}
}

func (n *KafkaNotifier) Refresh(ctx context.Context, customerID string, result *domain.CheckoutResult) error {
	payload, err := json.Marshal(map[string]interface{}{
		"customer_id":  customerID,
		"order_ids":    result.OrderIDs,
		"booking_ids":  result.BookingIDs,
		"completed_at": time.Now().UnixMilli(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal refresh payload: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(customerID), // customer id for ordering
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("checkout.completed")},
		},
	}

	if err := n.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish accounting refresh: %w", err)
	}
	return nil
}

func (n *KafkaNotifier) Close() {
	err := n.writer.Close()
	if err != nil {
		log.Printf("error closing kafka writer: %v", err)
	}
}
