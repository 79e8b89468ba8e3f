package kafka

import (
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	log "github.com/sirupsen/logrus"
)

func TestProducer_PublishEvent(t *testing.T) {
	mockProducer := mocks.NewSyncProducer(t, nil)

	producer := &Producer{
		producer: mockProducer,
		logger:   log.WithField("component", "kafka-producer-test"),
	}

	mockProducer.ExpectSendMessageAndSucceed()

	event := NewOrderPlacedEvent("order-123", "customer-1", 5240, 2, time.Now())

	err := producer.PublishEvent(TopicOrderEvents, "order-123", event)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := mockProducer.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestProducer_PublishEvent_Error(t *testing.T) {
	mockProducer := mocks.NewSyncProducer(t, nil)

	producer := &Producer{
		producer: mockProducer,
		logger:   log.WithField("component", "kafka-producer-test"),
	}

	mockProducer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	event := NewOrderPlacedEvent("order-123", "customer-1", 5240, 2, time.Now())

	err := producer.PublishEvent(TopicOrderEvents, "order-123", event)
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	if err := mockProducer.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestNewOrderPlacedEvent(t *testing.T) {
	placedAt := time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC)
	event := NewOrderPlacedEvent("order-123", "customer-1", 5240, 2, placedAt)

	if event.EventType != EventTypeOrderPlaced {
		t.Errorf("expected event type %s, got %s", EventTypeOrderPlaced, event.EventType)
	}

	if event.OrderID != "order-123" {
		t.Errorf("expected order id order-123, got %s", event.OrderID)
	}

	if event.CustomerID != "customer-1" {
		t.Errorf("expected customer id customer-1, got %s", event.CustomerID)
	}

	if event.AmountMinor != 5240 {
		t.Errorf("expected amount 5240, got %d", event.AmountMinor)
	}

	if !event.Timestamp.Equal(placedAt) {
		t.Errorf("expected timestamp %v, got %v", placedAt, event.Timestamp)
	}
}
