package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vladislavdragonenkov/shopcart/internal/domain"
)

type customerRepository struct {
	db *sql.DB
}

// NewCustomerRepository создаёт PostgreSQL-реализацию CustomerRepository.
func NewCustomerRepository(store *Store) domain.CustomerRepository {
	return &customerRepository{db: store.DB()}
}

func (r *customerRepository) Create(customer domain.Customer) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO customers (id, email, name, password_hash, created_at)
		VALUES ($1,$2,$3,$4,$5)
	`, customer.ID, customer.Email, customer.Name, customer.PasswordHash, customer.CreatedAt)
	if err != nil {
		// Уникальный индекс по LOWER(email).
		if isUniqueViolation(err) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("insert customer: %w", err)
	}

	return nil
}

func (r *customerRepository) Get(id string) (domain.Customer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var customer domain.Customer
	err := r.db.QueryRowContext(ctx, `
		SELECT id, email, name, password_hash, created_at
		FROM customers
		WHERE id = $1
	`, id).Scan(&customer.ID, &customer.Email, &customer.Name, &customer.PasswordHash, &customer.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Customer{}, domain.ErrCustomerNotFound
		}
		return domain.Customer{}, fmt.Errorf("select customer: %w", err)
	}

	return customer, nil
}

func (r *customerRepository) GetByEmail(email string) (domain.Customer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var customer domain.Customer
	err := r.db.QueryRowContext(ctx, `
		SELECT id, email, name, password_hash, created_at
		FROM customers
		WHERE LOWER(email) = LOWER($1)
	`, email).Scan(&customer.ID, &customer.Email, &customer.Name, &customer.PasswordHash, &customer.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Customer{}, domain.ErrCustomerNotFound
		}
		return domain.Customer{}, fmt.Errorf("select customer by email: %w", err)
	}

	return customer, nil
}

var _ domain.CustomerRepository = (*customerRepository)(nil)
