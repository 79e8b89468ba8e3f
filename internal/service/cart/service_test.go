package cart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/shopcart/internal/domain"
	"github.com/vladislavdragonenkov/shopcart/internal/service/cart"
	"github.com/vladislavdragonenkov/shopcart/internal/storage/memory"
)

func newService(t *testing.T) (*cart.Service, domain.Product) {
	t.Helper()

	store := memory.NewStore()
	products := memory.NewProductRepository(store)

	product := domain.Product{ID: "product-1", Name: "rice noodles", Price: 1300}
	require.NoError(t, products.Create(product))

	return cart.NewService(products, memory.NewCartRepository(store), nil, nil), product
}

func TestAddItem(t *testing.T) {
	svc, product := newService(t)

	entry, err := svc.AddItem("customer-1", product.ID, 3)
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, int64(3), entry.Qty)

	items, err := svc.ListItems("customer-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, entry.ID, items[0].Entry.ID)
	assert.Equal(t, product.Name, items[0].Product.Name, "listing joins product data")
}

func TestAddItem_UnknownProduct(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.AddItem("customer-1", "no-such-product", 1)
	require.ErrorIs(t, err, domain.ErrCartProductInvalid)

	items, err := svc.ListItems("customer-1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestAddItem_InvalidQty(t *testing.T) {
	svc, product := newService(t)

	_, err := svc.AddItem("customer-1", product.ID, 0)
	require.ErrorIs(t, err, domain.ErrCartQtyInvalid)

	_, err = svc.AddItem("customer-1", product.ID, -5)
	require.ErrorIs(t, err, domain.ErrCartQtyInvalid)
}

func TestRemoveItem(t *testing.T) {
	svc, product := newService(t)

	entry, err := svc.AddItem("customer-1", product.ID, 1)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveItem("customer-1", entry.ID))

	items, err := svc.ListItems("customer-1")
	require.NoError(t, err)
	assert.Empty(t, items)

	require.ErrorIs(t, svc.RemoveItem("customer-1", entry.ID), domain.ErrCartEntryNotFound)
}

// Позиция чужой корзины неотличима от несуществующей.
func TestRemoveItem_ForeignEntryHidden(t *testing.T) {
	svc, product := newService(t)

	entry, err := svc.AddItem("customer-1", product.ID, 1)
	require.NoError(t, err)

	require.ErrorIs(t, svc.RemoveItem("customer-2", entry.ID), domain.ErrCartEntryNotFound)

	items, err := svc.ListItems("customer-1")
	require.NoError(t, err)
	assert.Len(t, items, 1, "foreign removal attempt must not touch the entry")
}
