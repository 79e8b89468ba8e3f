package memory

import (
	"strings"

	"github.com/vladislavdragonenkov/shopcart/internal/domain"
)

type customerRepository struct {
	store *Store
}

// NewCustomerRepository возвращает in-memory реализацию CustomerRepository.
func NewCustomerRepository(store *Store) domain.CustomerRepository {
	return &customerRepository{store: store}
}

func (r *customerRepository) Create(customer domain.Customer) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.customers {
		if strings.EqualFold(existing.Email, customer.Email) {
			return domain.ErrEmailTaken
		}
	}

	r.store.customers[customer.ID] = customer
	return nil
}

func (r *customerRepository) Get(id string) (domain.Customer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	customer, ok := r.store.customers[id]
	if !ok {
		return domain.Customer{}, domain.ErrCustomerNotFound
	}
	return customer, nil
}

func (r *customerRepository) GetByEmail(email string) (domain.Customer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, customer := range r.store.customers {
		if strings.EqualFold(customer.Email, email) {
			return customer, nil
		}
	}
	return domain.Customer{}, domain.ErrCustomerNotFound
}

var _ domain.CustomerRepository = (*customerRepository)(nil)
