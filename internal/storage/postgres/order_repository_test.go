package postgres

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vladislavdragonenkov/shopcart/internal/domain"
)

func newMockRepo(t *testing.T) (*orderRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return &orderRepository{db: db}, mock
}

func placeFixture() (domain.Order, []string, domain.OutboxMessage) {
	now := time.Now().UTC()
	order := domain.Order{
		ID:         "order-1",
		CustomerID: "customer-1",
		CreatedAt:  now,
		Details: []domain.OrderDetail{
			{ID: "detail-1", OrderID: "order-1", ProductID: "product-1", Qty: 3, Price: 3940},
		},
	}
	event := domain.OutboxMessage{
		ID:            "outbox-1",
		AggregateType: "order",
		AggregateID:   "order-1",
		EventType:     "order.placed",
		Payload:       []byte(`{"order_id":"order-1"}`),
	}
	return order, []string{"entry-1"}, event
}

func TestOrderRepository_Place(t *testing.T) {
	repo, mock := newMockRepo(t)
	order, consumed, event := placeFixture()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO orders")).
		WithArgs(order.ID, order.CustomerID, order.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO order_details")).
		WithArgs("detail-1", "order-1", "product-1", int64(3), int64(3940)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM cart_entries")).
		WithArgs("entry-1", "customer-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO outbox_messages")).
		WithArgs(event.ID, event.AggregateType, event.AggregateID, event.EventType, event.Payload,
			sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.Place(order, consumed, event); err != nil {
		t.Fatalf("Place failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

// Конкурентно удалённая строка корзины откатывает оформление целиком.
func TestOrderRepository_PlaceCartConflict(t *testing.T) {
	repo, mock := newMockRepo(t)
	order, consumed, event := placeFixture()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO orders")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO order_details")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM cart_entries")).
		WithArgs("entry-1", "customer-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Place(order, consumed, event)
	if !errors.Is(err, domain.ErrCartConflict) {
		t.Fatalf("expected ErrCartConflict, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrderRepository_PlaceDuplicate(t *testing.T) {
	repo, mock := newMockRepo(t)
	order, consumed, event := placeFixture()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO orders")).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})
	mock.ExpectRollback()

	err := repo.Place(order, consumed, event)
	if !errors.Is(err, domain.ErrOrderExists) {
		t.Fatalf("expected ErrOrderExists, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrderRepository_PlaceDanglingProduct(t *testing.T) {
	repo, mock := newMockRepo(t)
	order, consumed, event := placeFixture()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO orders")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO order_details")).
		WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation})
	mock.ExpectRollback()

	err := repo.Place(order, consumed, event)
	if !errors.Is(err, domain.ErrCartProductInvalid) {
		t.Fatalf("expected ErrCartProductInvalid, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrderRepository_Get(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, customer_id, created_at")).
		WithArgs("order-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "customer_id", "created_at"}).
			AddRow("order-1", "customer-1", now))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, order_id, product_id, qty, price_minor")).
		WithArgs("order-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "product_id", "qty", "price_minor"}).
			AddRow("detail-1", "order-1", "product-1", int64(3), int64(3940)).
			AddRow("detail-2", "order-1", "product-2", int64(100), int64(1300)))

	order, err := repo.Get("order-1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(order.Details) != 2 {
		t.Fatalf("expected 2 details, got %d", len(order.Details))
	}
	if got := order.Total(); got != 3*3940+100*1300 {
		t.Fatalf("unexpected total: %d", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrderRepository_GetNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, customer_id, created_at")).
		WithArgs("no-such-order").
		WillReturnRows(sqlmock.NewRows([]string{"id", "customer_id", "created_at"}))

	_, err := repo.Get("no-such-order")
	if !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}
