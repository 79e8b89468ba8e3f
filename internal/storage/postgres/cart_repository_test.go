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

func newMockCartRepo(t *testing.T) (*cartRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return &cartRepository{db: db}, mock
}

func TestCartRepository_AddDanglingProduct(t *testing.T) {
	repo, mock := newMockCartRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO cart_entries")).
		WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation})

	err := repo.Add(domain.CartEntry{
		ID: "entry-1", CustomerID: "customer-1", ProductID: "no-such-product", Qty: 1,
	})
	if !errors.Is(err, domain.ErrCartProductInvalid) {
		t.Fatalf("expected ErrCartProductInvalid, got %v", err)
	}
}

func TestCartRepository_ListByCustomer(t *testing.T) {
	repo, mock := newMockCartRepo(t)
	now := time.Now().UTC()

	columns := []string{
		"id", "customer_id", "product_id", "qty", "created_at",
		"p_id", "name", "price_minor", "image_url", "description", "stock", "p_created_at",
	}
	mock.ExpectQuery(regexp.QuoteMeta("JOIN products p ON p.id = c.product_id")).
		WithArgs("customer-1").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("entry-1", "customer-1", "product-1", int64(3), now,
				"product-1", "rice noodles", int64(1300), "", "", int64(12), now))

	items, err := repo.ListByCustomer("customer-1")
	if err != nil {
		t.Fatalf("ListByCustomer failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Product.Name != "rice noodles" {
		t.Fatalf("product data not joined: %+v", items[0])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCartRepository_DeleteAbsent(t *testing.T) {
	repo, mock := newMockCartRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM cart_entries")).
		WithArgs("no-such-entry").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete("no-such-entry")
	if !errors.Is(err, domain.ErrCartEntryNotFound) {
		t.Fatalf("expected ErrCartEntryNotFound, got %v", err)
	}
}
