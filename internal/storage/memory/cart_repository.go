package memory

import (
	"sort"

	"github.com/vladislavdragonenkov/shopcart/internal/domain"
)

type cartRepository struct {
	store *Store
}

// NewCartRepository возвращает in-memory реализацию CartRepository.
func NewCartRepository(store *Store) domain.CartRepository {
	return &cartRepository{store: store}
}

// Add сохраняет позицию, проверяя ссылочную целостность так же,
// как это делает foreign key в PostgreSQL.
func (r *cartRepository) Add(entry domain.CartEntry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.products[entry.ProductID]; !ok {
		return domain.ErrCartProductInvalid
	}

	r.store.cartEntries[entry.ID] = entry
	return nil
}

func (r *cartRepository) Get(id string) (domain.CartEntry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	entry, ok := r.store.cartEntries[id]
	if !ok {
		return domain.CartEntry{}, domain.ErrCartEntryNotFound
	}
	return entry, nil
}

func (r *cartRepository) ListByCustomer(customerID string) ([]domain.CartItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]domain.CartItem, 0)
	for _, entry := range r.store.cartEntries {
		if entry.CustomerID != customerID {
			continue
		}
		product, ok := r.store.products[entry.ProductID]
		if !ok {
			// FK запрещает удаление товара из корзины, сюда попасть нельзя.
			continue
		}
		result = append(result, domain.CartItem{Entry: entry, Product: product})
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].Entry.CreatedAt.Equal(result[j].Entry.CreatedAt) {
			return result[i].Entry.CreatedAt.Before(result[j].Entry.CreatedAt)
		}
		return result[i].Entry.ID < result[j].Entry.ID
	})

	return result, nil
}

func (r *cartRepository) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.cartEntries[id]; !ok {
		return domain.ErrCartEntryNotFound
	}
	delete(r.store.cartEntries, id)
	return nil
}

var _ domain.CartRepository = (*cartRepository)(nil)
