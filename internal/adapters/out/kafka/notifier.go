// Package kafka publishes order notification events to a Kafka topic.
// Consumers on the restaurant side (kitchen displays, staff apps) subscribe
// to the topic; this service only produces and never waits for delivery
// acknowledgment beyond the broker write.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"tableorder/internal/core/domain/model/order"
	"tableorder/internal/core/domain/model/restaurant"

	"github.com/segmentio/kafka-go"
)

// orderCreatedEvent is the wire payload for a placed order.
type orderCreatedEvent struct {
	EventType       string      `json:"event_type"`
	OrderID         string      `json:"order_id"`
	RestaurantID    string      `json:"restaurant_id"`
	RestaurantName  string      `json:"restaurant_name"`
	RestaurantEmail string      `json:"restaurant_email"`
	RestaurantPhone string      `json:"restaurant_phone"`
	TableCode       string      `json:"table_code"`
	Items           []eventItem `json:"items"`
	TotalAmount     int64       `json:"total_amount"`
	Note            string      `json:"note,omitempty"`
	CustomerName    string      `json:"customer_name,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
}

type eventItem struct {
	MenuItemID string `json:"menu_item_id"`
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	Quantity   int    `json:"quantity"`
}

// Notifier implements ports.OrderNotifier on top of a Kafka writer.
type Notifier struct {
	writer *kafka.Writer
}

// NewNotifier creates a notifier producing to the given brokers and topic.
func NewNotifier(brokers []string, topic string) *Notifier {
	return &Notifier{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.Hash{},
		},
	}
}

// OrderCreated publishes an order placement event.
// Messages are keyed by restaurant id so each restaurant's events stay
// ordered within a partition.
func (n *Notifier) OrderCreated(ctx context.Context, o *order.Order, r *restaurant.Restaurant) error {
	items := o.Items()
	eventItems := make([]eventItem, 0, len(items))
	for _, item := range items {
		eventItems = append(eventItems, eventItem{
			MenuItemID: item.MenuItemID(),
			Name:       item.Name(),
			Price:      item.Price(),
			Quantity:   item.Quantity(),
		})
	}

	payload, err := json.Marshal(orderCreatedEvent{
		EventType:       "order_created",
		OrderID:         o.ID().String(),
		RestaurantID:    o.RestaurantID().String(),
		RestaurantName:  r.Name(),
		RestaurantEmail: r.Email(),
		RestaurantPhone: r.Phone(),
		TableCode:       o.TableCode(),
		Items:           eventItems,
		TotalAmount:     o.TotalAmount(),
		Note:            o.Note(),
		CustomerName:    o.CustomerName(),
		CreatedAt:       o.CreatedAt(),
	})
	if err != nil {
		return err
	}

	return n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(o.RestaurantID().String()),
		Value: payload,
	})
}

// Close releases the underlying writer's resources.
func (n *Notifier) Close() error {
	return n.writer.Close()
}
