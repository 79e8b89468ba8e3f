package memory

import (
	"sort"
	"time"

	"github.com/vladislavdragonenkov/shopcart/internal/domain"
)

type orderRepository struct {
	store *Store
}

// NewOrderRepository возвращает in-memory реализацию OrderRepository.
func NewOrderRepository(store *Store) domain.OrderRepository {
	return &orderRepository{store: store}
}

// Place выполняет оформление под одним мьютексом: либо заказ, позиции,
// удаление строк корзины и outbox-событие применяются целиком, либо ничего.
func (r *orderRepository) Place(order domain.Order, consumedEntryIDs []string, event domain.OutboxMessage) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.orders[order.ID]; exists {
		return domain.ErrOrderExists
	}

	// Все потреблённые позиции должны быть на месте и принадлежать покупателю.
	// Конкурентное оформление, успевшее их съесть, отменяет всё целиком.
	for _, entryID := range consumedEntryIDs {
		entry, ok := r.store.cartEntries[entryID]
		if !ok || entry.CustomerID != order.CustomerID {
			return domain.ErrCartConflict
		}
	}

	for _, detail := range order.Details {
		if _, ok := r.store.products[detail.ProductID]; !ok {
			return domain.ErrCartProductInvalid
		}
	}

	stored := order
	stored.Details = make([]domain.OrderDetail, len(order.Details))
	copy(stored.Details, order.Details)
	r.store.orders[order.ID] = stored

	for _, entryID := range consumedEntryIDs {
		delete(r.store.cartEntries, entryID)
	}

	now := time.Now().UTC()
	r.store.outbox[event.ID] = &outboxRecord{
		msg:       event,
		status:    "pending",
		createdAt: now,
		updatedAt: now,
	}

	return nil
}

func (r *orderRepository) Get(id string) (domain.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	order, ok := r.store.orders[id]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}

	result := order
	result.Details = make([]domain.OrderDetail, len(order.Details))
	copy(result.Details, order.Details)
	return result, nil
}

// ListByCustomer возвращает заказы покупателя, новые первыми.
func (r *orderRepository) ListByCustomer(customerID string) ([]domain.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]domain.Order, 0)
	for _, order := range r.store.orders {
		if order.CustomerID != customerID {
			continue
		}
		cp := order
		cp.Details = make([]domain.OrderDetail, len(order.Details))
		copy(cp.Details, order.Details)
		result = append(result, cp)
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})

	return result, nil
}

var _ domain.OrderRepository = (*orderRepository)(nil)
