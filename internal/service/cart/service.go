package cart

import (
	"errors"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/shopcart/internal/domain"
	"github.com/vladislavdragonenkov/shopcart/internal/metrics"
)

// Service реализует операции с корзиной покупателя.
type Service struct {
	products domain.ProductRepository
	cart     domain.CartRepository
	metrics  *metrics.CheckoutMetrics
	logger   *log.Entry
}

// NewService конструирует сервис корзины. metrics может быть nil.
func NewService(products domain.ProductRepository, cart domain.CartRepository, m *metrics.CheckoutMetrics, logger *log.Entry) *Service {
	if logger == nil {
		logger = log.WithField("component", "cart-service")
	}
	return &Service{products: products, cart: cart, metrics: m, logger: logger}
}

// AddItem кладёт товар в корзину покупателя и возвращает созданную позицию.
// Ссылка на несуществующий товар — ErrCartProductInvalid, заказ не создаётся.
func (s *Service) AddItem(customerID, productID string, qty int64) (domain.CartEntry, error) {
	entry := domain.CartEntry{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		ProductID:  productID,
		Qty:        qty,
		CreatedAt:  time.Now().UTC(),
	}
	if errs := entry.ValidateInvariants(); len(errs) > 0 {
		return domain.CartEntry{}, errors.Join(errs...)
	}

	// Явная проверка каталога до вставки: хранилище подстрахует foreign key-ом,
	// но осмысленную ошибку обязан отдать сервис.
	if _, err := s.products.Get(productID); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return domain.CartEntry{}, domain.ErrCartProductInvalid
		}
		return domain.CartEntry{}, err
	}

	if err := s.cart.Add(entry); err != nil {
		s.logger.WithError(err).WithField("customer_id", customerID).Error("failed to add cart entry")
		return domain.CartEntry{}, err
	}

	if s.metrics != nil {
		s.metrics.RecordCartMutation("add")
	}
	return entry, nil
}

// ListItems возвращает корзину покупателя вместе с данными товаров.
func (s *Service) ListItems(customerID string) ([]domain.CartItem, error) {
	if customerID == "" {
		return nil, domain.ErrCustomerRequired
	}
	return s.cart.ListByCustomer(customerID)
}

// RemoveItem удаляет позицию корзины. Позиция другого покупателя неотличима
// от несуществующей: в обоих случаях ErrCartEntryNotFound, чтобы по перебору
// идентификаторов нельзя было узнать о чужих корзинах.
func (s *Service) RemoveItem(customerID, entryID string) error {
	entry, err := s.cart.Get(entryID)
	if err != nil {
		return err
	}
	if entry.CustomerID != customerID {
		return domain.ErrCartEntryNotFound
	}

	if err := s.cart.Delete(entryID); err != nil {
		return err
	}

	if s.metrics != nil {
		s.metrics.RecordCartMutation("remove")
	}
	return nil
}
