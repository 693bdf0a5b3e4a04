package inventory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estoque-api/internal/auth"
	"estoque-api/internal/models"
	"estoque-api/internal/repo"
)

func seedProducts(t *testing.T, store *repo.InMemoryProductRepository, owner int, names ...string) []models.Product {
	t.Helper()
	var out []models.Product
	for _, name := range names {
		p, err := store.Create(models.Product{
			OwnerID: owner, Name: name, Quantity: 1, CostValue: 100, SaleValue: 150,
		})
		require.NoError(t, err)
		out = append(out, p)
	}
	return out
}

func TestListController_Refresh(t *testing.T) {
	store := repo.NewInMemoryProductRepository()
	seedProducts(t, store, 1, "Mouse", "Teclado")
	seedProducts(t, store, 2, "Monitor") // other owner, must not appear

	c := NewListController(store, testSession)
	require.NoError(t, c.Refresh())

	products := c.Products()
	require.Len(t, products, 2)
	for _, p := range products {
		assert.Equal(t, 1, p.OwnerID)
	}
	assert.False(t, c.Loading())
}

func TestListController_RefreshFailureKeepsCollection(t *testing.T) {
	store := repo.NewInMemoryProductRepository()
	seedProducts(t, store, 1, "Mouse")

	c := NewListController(store, testSession)
	require.NoError(t, c.Refresh())
	require.Len(t, c.Products(), 1)

	store.FailNext(errors.New("network down"))
	err := c.Refresh()
	require.Error(t, err)
	assert.Len(t, c.Products(), 1) // previous collection untouched
	assert.False(t, c.Loading())
}

func TestListController_RefreshWithoutSession(t *testing.T) {
	c := NewListController(repo.NewInMemoryProductRepository(), auth.Session{})
	assert.ErrorIs(t, c.Refresh(), auth.ErrUnauthenticated)
}

func TestListController_RequestDelete(t *testing.T) {
	store := repo.NewInMemoryProductRepository()
	created := seedProducts(t, store, 1, "Mouse", "Teclado")

	c := NewListController(store, testSession)
	require.NoError(t, c.Refresh())

	require.NoError(t, c.RequestDelete(created[0].ID))

	products := c.Products()
	require.Len(t, products, 1)
	assert.NotEqual(t, created[0].ID, products[0].ID)
}

func TestListController_RequestDeleteFailureKeepsCollection(t *testing.T) {
	store := repo.NewInMemoryProductRepository()
	created := seedProducts(t, store, 1, "Mouse")

	c := NewListController(store, testSession)
	require.NoError(t, c.Refresh())

	store.FailNext(errors.New("service unavailable"))
	err := c.RequestDelete(created[0].ID)
	require.Error(t, err)
	assert.Len(t, c.Products(), 1)
}

func TestListController_DeleteUnknownID(t *testing.T) {
	store := repo.NewInMemoryProductRepository()
	seedProducts(t, store, 1, "Mouse")

	c := NewListController(store, testSession)
	require.NoError(t, c.Refresh())

	assert.ErrorIs(t, c.RequestDelete("nope"), repo.ErrProductNotFound)
	assert.Len(t, c.Products(), 1)
}

func TestListController_SubmitThenRefreshShowsNewRecord(t *testing.T) {
	store := repo.NewInMemoryProductRepository()
	c := NewListController(store, testSession)
	require.NoError(t, c.Refresh())

	f := c.RequestCreate()
	require.NoError(t, f.SetField("name", "Monitor"))
	require.NoError(t, f.SetField("quantity", 2))
	require.NoError(t, f.SetField("cost_value", 800.0))
	require.NoError(t, f.SetField("sale_value", 1200.0))

	created, err := f.Submit()
	require.NoError(t, err)
	require.NoError(t, c.Refresh())

	products := c.Products()
	require.Len(t, products, 1)
	assert.Equal(t, created.ID, products[0].ID)
	assert.Equal(t, "Monitor", products[0].Name)
}

func TestListController_RequestEditSeedsForm(t *testing.T) {
	store := repo.NewInMemoryProductRepository()
	created := seedProducts(t, store, 1, "Mouse")

	c := NewListController(store, testSession)
	f := c.RequestEdit(created[0])

	assert.True(t, f.Editing())
	assert.Equal(t, "Mouse", f.Draft().Name)
}

func TestListController_Summary(t *testing.T) {
	store := repo.NewInMemoryProductRepository()
	_, err := store.Create(models.Product{OwnerID: 1, Name: "A", Quantity: 2, CostValue: 100, SaleValue: 150})
	require.NoError(t, err)
	_, err = store.Create(models.Product{OwnerID: 1, Name: "B", Quantity: 1, CostValue: 50, SaleValue: 50})
	require.NoError(t, err)

	c := NewListController(store, testSession)
	require.NoError(t, c.Refresh())

	s := c.Summary()
	assert.Equal(t, 2, s.TotalProducts)
	assert.Equal(t, 350.0, s.TotalValue)
	assert.Equal(t, 25.0, s.AverageMargin)
}

func TestListController_OrderingNewestFirst(t *testing.T) {
	store := repo.NewInMemoryProductRepository()
	seedProducts(t, store, 1, "first", "second", "third")

	c := NewListController(store, testSession)
	require.NoError(t, c.Refresh())
	first := c.Products()

	// repeated refreshes over unchanged data keep a stable order
	require.NoError(t, c.Refresh())
	assert.Equal(t, first, c.Products())
}
