package memory

import (
	"sort"

	"github.com/vladislavdragonenkov/shopcart/internal/domain"
)

type productRepository struct {
	store *Store
}

// NewProductRepository возвращает in-memory реализацию ProductRepository.
func NewProductRepository(store *Store) domain.ProductRepository {
	return &productRepository{store: store}
}

func (r *productRepository) Create(product domain.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	// Сохраняем копию, чтобы избежать непредсказуемых мутаций извне.
	r.store.products[product.ID] = product
	return nil
}

func (r *productRepository) Get(id string) (domain.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	product, ok := r.store.products[id]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return product, nil
}

func (r *productRepository) List() ([]domain.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]domain.Product, 0, len(r.store.products))
	for _, product := range r.store.products {
		result = append(result, product)
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		}
		return result[i].ID < result[j].ID
	})

	return result, nil
}

// Delete удаляет товар. Отсутствующий товар — не ошибка; товар,
// на который ссылаются корзины или заказы, удалить нельзя.
func (r *productRepository) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.products[id]; !ok {
		return nil
	}

	for _, entry := range r.store.cartEntries {
		if entry.ProductID == id {
			return domain.ErrProductReferenced
		}
	}
	for _, order := range r.store.orders {
		for _, detail := range order.Details {
			if detail.ProductID == id {
				return domain.ErrProductReferenced
			}
		}
	}

	delete(r.store.products, id)
	return nil
}

var _ domain.ProductRepository = (*productRepository)(nil)
