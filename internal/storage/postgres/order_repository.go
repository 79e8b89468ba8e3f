package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/shopcart/internal/domain"
)

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository создаёт PostgreSQL-реализацию OrderRepository.
func NewOrderRepository(store *Store) domain.OrderRepository {
	return &orderRepository{db: store.DB()}
}

// Place записывает заказ с позициями, удаляет потреблённые строки корзины
// и ставит outbox-событие — всё в одной транзакции. Любая ошибка откатывает
// транзакцию целиком: частично оформленный заказ невозможен.
//
// Удаление строк корзины проверяет принадлежность покупателю заказа и число
// затронутых строк: если строку успели удалить конкурентно, оформление
// завершается ErrCartConflict.
func (r *orderRepository) Place(order domain.Order, consumedEntryIDs []string, event domain.OutboxMessage) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (id, customer_id, created_at)
		VALUES ($1,$2,$3)
	`, order.ID, order.CustomerID, order.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrOrderExists
		}
		return fmt.Errorf("insert order: %w", err)
	}

	for _, detail := range order.Details {
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO order_details (id, order_id, product_id, qty, price_minor)
			VALUES ($1,$2,$3,$4,$5)
		`, detail.ID, order.ID, detail.ProductID, detail.Qty, detail.Price); err != nil {
			if isForeignKeyViolation(err) {
				err = domain.ErrCartProductInvalid
				return err
			}
			return fmt.Errorf("insert order detail: %w", err)
		}
	}

	for _, entryID := range consumedEntryIDs {
		var res sql.Result
		res, err = tx.ExecContext(ctx, `
			DELETE FROM cart_entries
			WHERE id = $1 AND customer_id = $2
		`, entryID, order.CustomerID)
		if err != nil {
			return fmt.Errorf("consume cart entry: %w", err)
		}

		var affected int64
		affected, err = res.RowsAffected()
		if err != nil {
			return fmt.Errorf("rows affected: %w", err)
		}
		if affected == 0 {
			err = domain.ErrCartConflict
			return err
		}
	}

	now := time.Now().UTC()
	if _, err = tx.ExecContext(ctx, `
		INSERT INTO outbox_messages (
			id, aggregate_type, aggregate_id, event_type, payload,
			status, attempt_count, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,'pending',0,$6,$7)
	`, event.ID, event.AggregateType, event.AggregateID, event.EventType, event.Payload, now, now); err != nil {
		return fmt.Errorf("enqueue order event: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit place order: %w", err)
	}

	return nil
}

func (r *orderRepository) Get(id string) (domain.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var order domain.Order
	err := r.db.QueryRowContext(ctx, `
		SELECT id, customer_id, created_at
		FROM orders
		WHERE id = $1
	`, id).Scan(&order.ID, &order.CustomerID, &order.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Order{}, domain.ErrOrderNotFound
		}
		return domain.Order{}, fmt.Errorf("select order: %w", err)
	}

	details, err := r.loadDetails(ctx, order.ID)
	if err != nil {
		return domain.Order{}, err
	}
	order.Details = details

	return order, nil
}

func (r *orderRepository) ListByCustomer(customerID string) ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, customer_id, created_at
		FROM orders
		WHERE customer_id = $1
		ORDER BY created_at DESC, id DESC
	`, customerID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.CustomerID, &order.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	for i := range orders {
		details, err := r.loadDetails(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Details = details
	}

	return orders, nil
}

func (r *orderRepository) loadDetails(ctx context.Context, orderID string) ([]domain.OrderDetail, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, product_id, qty, price_minor
		FROM order_details
		WHERE order_id = $1
		ORDER BY id ASC
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("load order details: %w", err)
	}
	defer rows.Close()

	details := make([]domain.OrderDetail, 0)
	for rows.Next() {
		var detail domain.OrderDetail
		if err := rows.Scan(&detail.ID, &detail.OrderID, &detail.ProductID, &detail.Qty, &detail.Price); err != nil {
			return nil, fmt.Errorf("scan order detail: %w", err)
		}
		details = append(details, detail)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order details: %w", err)
	}

	return details, nil
}

var _ domain.OrderRepository = (*orderRepository)(nil)
