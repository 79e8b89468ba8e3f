package kafka

import "time"

// EventType определяет тип события
type EventType string

const (
	// Order события
	EventTypeOrderPlaced EventType = "order.placed"
)

// Topics для Kafka
const (
	TopicOrderEvents     = "shopcart.order.events"
	TopicDeadLetterQueue = "shopcart.dlq" // Dead Letter Queue для failed messages
)

// OrderPlacedEvent представляет событие оформленного заказа
type OrderPlacedEvent struct {
	EventType   EventType `json:"event_type"`
	OrderID     string    `json:"order_id"`
	CustomerID  string    `json:"customer_id"`
	AmountMinor int64     `json:"amount_minor"`
	Lines       int       `json:"lines"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewOrderPlacedEvent создает новое событие оформленного заказа.
// placedAt — момент оформления заказа, а не момент публикации.
func NewOrderPlacedEvent(orderID, customerID string, amountMinor int64, lines int, placedAt time.Time) *OrderPlacedEvent {
	return &OrderPlacedEvent{
		EventType:   EventTypeOrderPlaced,
		OrderID:     orderID,
		CustomerID:  customerID,
		AmountMinor: amountMinor,
		Lines:       lines,
		Timestamp:   placedAt,
	}
}
