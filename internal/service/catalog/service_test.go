package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/shopcart/internal/domain"
	"github.com/vladislavdragonenkov/shopcart/internal/service/catalog"
	"github.com/vladislavdragonenkov/shopcart/internal/storage/memory"
)

func newService() (*catalog.Service, *memory.Store) {
	store := memory.NewStore()
	return catalog.NewService(memory.NewProductRepository(store), nil), store
}

func TestAddProduct(t *testing.T) {
	svc, _ := newService()

	product, err := svc.AddProduct("  rice noodles  ", 1300, "https://img.example/noodles", "500g pack", 12)
	require.NoError(t, err)
	assert.NotEmpty(t, product.ID)
	assert.Equal(t, "rice noodles", product.Name, "name must be trimmed")

	got, err := svc.GetProduct(product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.ID, got.ID)
	assert.Equal(t, int64(1300), got.Price)
}

func TestAddProduct_Invalid(t *testing.T) {
	svc, _ := newService()

	_, err := svc.AddProduct("", 1300, "", "", 0)
	require.ErrorIs(t, err, domain.ErrProductNameRequired)

	_, err = svc.AddProduct("noodles", 0, "", "", 0)
	require.ErrorIs(t, err, domain.ErrProductPriceInvalid)

	_, err = svc.AddProduct("noodles", 1300, "", "", -1)
	require.ErrorIs(t, err, domain.ErrProductStockInvalid)

	products, err := svc.ListProducts()
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestGetProduct_NotFound(t *testing.T) {
	svc, _ := newService()

	_, err := svc.GetProduct("no-such-id")
	require.ErrorIs(t, err, domain.ErrProductNotFound)

	_, err = svc.GetProduct("")
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestDeleteProduct(t *testing.T) {
	svc, store := newService()

	product, err := svc.AddProduct("noodles", 1300, "", "", 0)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(product.ID))
	_, err = svc.GetProduct(product.ID)
	require.ErrorIs(t, err, domain.ErrProductNotFound)

	// Повторное удаление и удаление несуществующего — no-op.
	require.NoError(t, svc.DeleteProduct(product.ID))
	require.NoError(t, svc.DeleteProduct("no-such-id"))
	require.NoError(t, svc.DeleteProduct(""))

	// Товар, на который ссылается корзина, удалить нельзя.
	product, err = svc.AddProduct("noodles", 1300, "", "", 0)
	require.NoError(t, err)
	cartRepo := memory.NewCartRepository(store)
	require.NoError(t, cartRepo.Add(domain.CartEntry{
		ID: "entry-1", CustomerID: "customer-1", ProductID: product.ID, Qty: 1,
	}))
	require.ErrorIs(t, svc.DeleteProduct(product.ID), domain.ErrProductReferenced)

	got, err := svc.GetProduct(product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.ID, got.ID, "rejected delete must leave the product intact")
}
