package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vladislavdragonenkov/shopcart/internal/domain"
)

type cartRepository struct {
	db *sql.DB
}

// NewCartRepository создаёт PostgreSQL-реализацию CartRepository.
func NewCartRepository(store *Store) domain.CartRepository {
	return &cartRepository{db: store.DB()}
}

func (r *cartRepository) Add(entry domain.CartEntry) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cart_entries (id, customer_id, product_id, qty, created_at)
		VALUES ($1,$2,$3,$4,$5)
	`, entry.ID, entry.CustomerID, entry.ProductID, entry.Qty, entry.CreatedAt)
	if err != nil {
		// Foreign key на products: позиция не может ссылаться в никуда.
		if isForeignKeyViolation(err) {
			return domain.ErrCartProductInvalid
		}
		return fmt.Errorf("insert cart entry: %w", err)
	}

	return nil
}

func (r *cartRepository) Get(id string) (domain.CartEntry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var entry domain.CartEntry
	err := r.db.QueryRowContext(ctx, `
		SELECT id, customer_id, product_id, qty, created_at
		FROM cart_entries
		WHERE id = $1
	`, id).Scan(&entry.ID, &entry.CustomerID, &entry.ProductID, &entry.Qty, &entry.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.CartEntry{}, domain.ErrCartEntryNotFound
		}
		return domain.CartEntry{}, fmt.Errorf("select cart entry: %w", err)
	}

	return entry, nil
}

// ListByCustomer возвращает корзину вместе с данными товаров одним JOIN-ом.
func (r *cartRepository) ListByCustomer(customerID string) ([]domain.CartItem, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT c.id, c.customer_id, c.product_id, c.qty, c.created_at,
		       p.id, p.name, p.price_minor, p.image_url, p.description, p.stock, p.created_at
		FROM cart_entries c
		JOIN products p ON p.id = c.product_id
		WHERE c.customer_id = $1
		ORDER BY c.created_at ASC, c.id ASC
	`, customerID)
	if err != nil {
		return nil, fmt.Errorf("list cart entries: %w", err)
	}
	defer rows.Close()

	items := make([]domain.CartItem, 0)
	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(
			&item.Entry.ID, &item.Entry.CustomerID, &item.Entry.ProductID,
			&item.Entry.Qty, &item.Entry.CreatedAt,
			&item.Product.ID, &item.Product.Name, &item.Product.Price,
			&item.Product.ImageURL, &item.Product.Description,
			&item.Product.Stock, &item.Product.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan cart row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cart rows: %w", err)
	}

	return items, nil
}

func (r *cartRepository) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM cart_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cart entry: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrCartEntryNotFound
	}

	return nil
}

var _ domain.CartRepository = (*cartRepository)(nil)
