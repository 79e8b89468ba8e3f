package checkout

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/shopcart/internal/domain"
	"github.com/vladislavdragonenkov/shopcart/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/shopcart/internal/metrics"
)

// Service реализует оформление заказа (корзина → заказ) и чтение истории заказов.
type Service struct {
	cart    domain.CartRepository
	orders  domain.OrderRepository
	metrics *metrics.CheckoutMetrics
	logger  *log.Entry
}

// NewService конструирует сервис оформления. metrics может быть nil.
func NewService(cart domain.CartRepository, orders domain.OrderRepository, m *metrics.CheckoutMetrics, logger *log.Entry) *Service {
	if logger == nil {
		logger = log.WithField("component", "checkout-service")
	}
	return &Service{cart: cart, orders: orders, metrics: m, logger: logger}
}

// PlaceOrder превращает текущую корзину покупателя в неизменяемый заказ.
//
// Цена каждой позиции фиксируется в момент оформления: история заказов
// не зависит от последующих изменений каталога. Запись заказа, позиций,
// удаление потреблённых строк корзины и outbox-событие — одна атомарная
// операция хранилища; частично оформленный заказ невозможен.
func (s *Service) PlaceOrder(customerID string) (domain.Order, error) {
	if customerID == "" {
		return domain.Order{}, domain.ErrCustomerRequired
	}

	started := time.Now()

	items, err := s.cart.ListByCustomer(customerID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("read cart: %w", err)
	}
	if len(items) == 0 {
		s.recordFailure("empty_cart")
		return domain.Order{}, domain.ErrCartEmpty
	}

	now := time.Now().UTC()
	order := domain.Order{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		CreatedAt:  now,
	}

	consumed := make([]string, 0, len(items))
	order.Details = make([]domain.OrderDetail, 0, len(items))
	for _, item := range items {
		order.Details = append(order.Details, domain.OrderDetail{
			ID:        uuid.NewString(),
			OrderID:   order.ID,
			ProductID: item.Entry.ProductID,
			Qty:       item.Entry.Qty,
			// Снимок цены: именно здесь, а не при чтении истории.
			Price: item.Product.Price,
		})
		consumed = append(consumed, item.Entry.ID)
	}

	if errs := order.ValidateInvariants(); len(errs) > 0 {
		s.recordFailure("invalid_order")
		return domain.Order{}, errors.Join(errs...)
	}

	event, err := placedEvent(order)
	if err != nil {
		return domain.Order{}, err
	}

	if err := s.orders.Place(order, consumed, event); err != nil {
		s.logger.WithError(err).WithFields(log.Fields{
			"customer_id": customerID,
			"order_id":    order.ID,
		}).Error("failed to place order")
		switch {
		case errors.Is(err, domain.ErrCartConflict):
			s.recordFailure("conflict")
		case errors.Is(err, domain.ErrCartProductInvalid):
			s.recordFailure("invalid_product")
		default:
			s.recordFailure("storage")
		}
		return domain.Order{}, err
	}

	if s.metrics != nil {
		s.metrics.RecordOrderPlaced(len(order.Details))
		s.metrics.RecordCheckoutDuration(time.Since(started))
	}
	s.logger.WithFields(log.Fields{
		"customer_id":  customerID,
		"order_id":     order.ID,
		"lines":        len(order.Details),
		"amount_minor": order.Total(),
	}).Info("order placed")

	return order, nil
}

// ListOrders возвращает заказы покупателя, новые первыми.
func (s *Service) ListOrders(customerID string) ([]domain.Order, error) {
	if customerID == "" {
		return nil, domain.ErrCustomerRequired
	}
	return s.orders.ListByCustomer(customerID)
}

// GetOrder возвращает заказ с позициями. Чужой заказ неотличим от
// несуществующего: в обоих случаях ErrOrderNotFound.
func (s *Service) GetOrder(customerID, orderID string) (domain.Order, error) {
	order, err := s.orders.Get(orderID)
	if err != nil {
		return domain.Order{}, err
	}
	if order.CustomerID != customerID {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return order, nil
}

func (s *Service) recordFailure(reason string) {
	if s.metrics != nil {
		s.metrics.RecordCheckoutFailed(reason)
	}
}

// placedEvent упаковывает заказ в outbox-сообщение. Содержимое payload —
// то же событие, которое уходит в Kafka, без промежуточных форматов.
func placedEvent(order domain.Order) (domain.OutboxMessage, error) {
	event := kafka.NewOrderPlacedEvent(
		order.ID, order.CustomerID, order.Total(), len(order.Details), order.CreatedAt,
	)
	payload, err := json.Marshal(event)
	if err != nil {
		return domain.OutboxMessage{}, fmt.Errorf("marshal placed event: %w", err)
	}

	return domain.OutboxMessage{
		ID:            uuid.NewString(),
		AggregateType: "order",
		AggregateID:   order.ID,
		EventType:     string(kafka.EventTypeOrderPlaced),
		Payload:       payload,
	}, nil
}
