package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"stockledger/internal/domain"
)

func TestCreateSupplier(t *testing.T) {
	t.Run("assigns id and trims fields", func(t *testing.T) {
		store := newTestStore(t)
		ctx := context.Background()

		id, err := store.CreateSupplier(ctx, "  Acme Co  ", " acme@example.com ")
		require.NoError(t, err)
		require.Equal(t, int64(1), id)

		suppliers, err := store.ListSuppliers(ctx)
		require.NoError(t, err)
		require.Len(t, suppliers, 1)
		require.Equal(t, "Acme Co", suppliers[0].Name)
		require.Equal(t, "acme@example.com", suppliers[0].Contact)
	})

	t.Run("stores blank contact as null", func(t *testing.T) {
		store := newTestStore(t)
		ctx := context.Background()

		_, err := store.CreateSupplier(ctx, "Acme Co", "   ")
		require.NoError(t, err)

		suppliers, err := store.ListSuppliers(ctx)
		require.NoError(t, err)
		require.Empty(t, suppliers[0].Contact)
	})

	t.Run("rejects empty trimmed name", func(t *testing.T) {
		store := newTestStore(t)

		_, err := store.CreateSupplier(context.Background(), "   ", "acme@example.com")
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)

		suppliers, err := store.ListSuppliers(context.Background())
		require.NoError(t, err)
		require.Empty(t, suppliers)
	})
}

func TestListSuppliersOrdering(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"Zenith Supply", "Acme Co", "Mid Market"} {
		_, err := store.CreateSupplier(ctx, name, "")
		require.NoError(t, err)
	}

	suppliers, err := store.ListSuppliers(ctx)
	require.NoError(t, err)
	require.Len(t, suppliers, 3)
	require.Equal(t, "Acme Co", suppliers[0].Name)
	require.Equal(t, "Mid Market", suppliers[1].Name)
	require.Equal(t, "Zenith Supply", suppliers[2].Name)
}

func TestSupplierExists(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.CreateSupplier(ctx, "Acme Co", "")
	require.NoError(t, err)

	exists, err := store.SupplierExists(ctx, id)
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = store.SupplierExists(ctx, id+100)
	require.NoError(t, err)
	require.False(t, exists)
}
