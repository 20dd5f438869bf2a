package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"stockledger/internal/domain"
)

func int64Ptr(v int64) *int64 { return &v }

func TestCreateAndGetProduct(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.CreateProduct(ctx, "  Pen ", 10, 1.99, nil)
	require.NoError(t, err)

	product, err := store.GetProduct(ctx, id)
	require.NoError(t, err)
	require.Equal(t, id, product.ID)
	require.Equal(t, "Pen", product.Name)
	require.Equal(t, int64(10), product.Quantity)
	require.InDelta(t, 1.99, product.Price, 0.001)
	require.Nil(t, product.SupplierID)
	require.False(t, product.CreatedAt.IsZero(), "expected store-assigned creation timestamp")
}

func TestGetProductNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetProduct(context.Background(), 12345)
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestCreateProductValidation(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("rejects empty trimmed name", func(t *testing.T) {
		_, err := store.CreateProduct(ctx, "   ", 1, 1.0, nil)
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("rejects unknown supplier before any write", func(t *testing.T) {
		_, err := store.CreateProduct(ctx, "Pen", 1, 1.0, int64Ptr(99))
		var uerr *domain.UnknownSupplierError
		require.ErrorAs(t, err, &uerr)
		require.Equal(t, int64(99), uerr.ID)
		require.EqualError(t, err, "supplier ID 99 does not exist")

		stats, err := store.InventoryReport(ctx)
		require.NoError(t, err)
		require.Equal(t, int64(0), stats.TotalProducts, "product table must be unchanged")
	})
}

func TestUpdateProduct(t *testing.T) {
	t.Run("full replace of all fields", func(t *testing.T) {
		store := newTestStore(t)
		ctx := context.Background()

		sid, err := store.CreateSupplier(ctx, "Acme Co", "")
		require.NoError(t, err)

		id, err := store.CreateProduct(ctx, "Eraser", 5, 0.99, nil)
		require.NoError(t, err)

		require.NoError(t, store.UpdateProduct(ctx, id, " Eraser Updated ", 10, 1.29, &sid))

		product, err := store.GetProduct(ctx, id)
		require.NoError(t, err)
		require.Equal(t, "Eraser Updated", product.Name)
		require.Equal(t, int64(10), product.Quantity)
		require.InDelta(t, 1.29, product.Price, 0.001)
		require.NotNil(t, product.SupplierID)
		require.Equal(t, sid, *product.SupplierID)
	})

	t.Run("clears supplier reference", func(t *testing.T) {
		store := newTestStore(t)
		ctx := context.Background()

		sid, err := store.CreateSupplier(ctx, "Acme Co", "")
		require.NoError(t, err)
		id, err := store.CreateProduct(ctx, "Pencil", 25, 0.75, &sid)
		require.NoError(t, err)

		require.NoError(t, store.UpdateProduct(ctx, id, "Pencil", 25, 0.75, nil))

		product, err := store.GetProduct(ctx, id)
		require.NoError(t, err)
		require.Nil(t, product.SupplierID)
	})

	t.Run("rejects unknown supplier and leaves row intact", func(t *testing.T) {
		store := newTestStore(t)
		ctx := context.Background()

		id, err := store.CreateProduct(ctx, "Marker", 3, 2.49, nil)
		require.NoError(t, err)

		err = store.UpdateProduct(ctx, id, "Marker", 3, 2.49, int64Ptr(7))
		var uerr *domain.UnknownSupplierError
		require.ErrorAs(t, err, &uerr)

		product, err := store.GetProduct(ctx, id)
		require.NoError(t, err)
		require.Equal(t, "Marker", product.Name)
		require.Nil(t, product.SupplierID)
	})

	t.Run("missing id is a silent no-op", func(t *testing.T) {
		store := newTestStore(t)
		ctx := context.Background()

		id, err := store.CreateProduct(ctx, "Pen", 10, 1.99, nil)
		require.NoError(t, err)

		require.NoError(t, store.UpdateProduct(ctx, id+500, "Ghost", 1, 1.0, nil))

		product, err := store.GetProduct(ctx, id)
		require.NoError(t, err)
		require.Equal(t, "Pen", product.Name, "other rows must be unaffected")
	})
}

func TestDeleteProduct(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.CreateProduct(ctx, "Marker", 3, 2.49, nil)
	require.NoError(t, err)

	require.NoError(t, store.DeleteProduct(ctx, id))

	_, err = store.GetProduct(ctx, id)
	require.ErrorIs(t, err, domain.ErrProductNotFound)

	// Deleting again is a silent no-op.
	require.NoError(t, store.DeleteProduct(ctx, id))
}

func TestListProductsJoined(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	sid, err := store.CreateSupplier(ctx, "Office Depot", "contact@od.com")
	require.NoError(t, err)

	_, err = store.CreateProduct(ctx, "Pencil", 25, 0.75, &sid)
	require.NoError(t, err)
	_, err = store.CreateProduct(ctx, "Binder", 10, 2.0, nil)
	require.NoError(t, err)

	rows, err := store.ListProductsJoined(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Ordered by product name ascending.
	require.Equal(t, "Binder", rows[0].Name)
	require.Empty(t, rows[0].SupplierName, "product without supplier carries no name")
	require.InDelta(t, 20.0, rows[0].TotalValue, 0.001)

	require.Equal(t, "Pencil", rows[1].Name)
	require.Equal(t, "Office Depot", rows[1].SupplierName)
	require.InDelta(t, 18.75, rows[1].TotalValue, 0.001)
	require.False(t, rows[1].CreatedAt.IsZero())
}

func TestListProductsJoinedTieBreakByID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first, err := store.CreateProduct(ctx, "Pen", 1, 1.0, nil)
	require.NoError(t, err)
	second, err := store.CreateProduct(ctx, "Pen", 2, 2.0, nil)
	require.NoError(t, err)

	rows, err := store.ListProductsJoined(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, first, rows[0].ID)
	require.Equal(t, second, rows[1].ID)
}

func TestSearchProductsByName(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, p := range []struct {
		name  string
		qty   int64
		price float64
	}{
		{"Pen", 10, 1.99},
		{"Pencil", 25, 0.75},
		{"Eraser", 5, 0.99},
	} {
		_, err := store.CreateProduct(ctx, p.name, p.qty, p.price, nil)
		require.NoError(t, err)
	}

	t.Run("case-insensitive substring match", func(t *testing.T) {
		rows, err := store.SearchProductsByName(ctx, "pen")
		require.NoError(t, err)
		require.Len(t, rows, 2)
		require.Equal(t, "Pen", rows[0].Name)
		require.Equal(t, "Pencil", rows[1].Name)
	})

	t.Run("query is trimmed before matching", func(t *testing.T) {
		rows, err := store.SearchProductsByName(ctx, "  PEN  ")
		require.NoError(t, err)
		require.Len(t, rows, 2)
	})

	t.Run("no matches yields empty result", func(t *testing.T) {
		rows, err := store.SearchProductsByName(ctx, "stapler")
		require.NoError(t, err)
		require.Empty(t, rows)
	})
}
