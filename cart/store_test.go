package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sitara.io/store/driver"
	"sitara.io/store/models"
)

func newTestStore(t *testing.T) (*Store, driver.KV) {
	t.Helper()
	kv := driver.NewMemKV()
	return NewStore(context.Background(), kv, zap.NewNop()), kv
}

func line(productID int, price string, quantity int) models.CartLine {
	return models.CartLine{
		ProductID:   productID,
		ProductName: "ستارة معتمة",
		Price:       price,
		Quantity:    quantity,
		Color:       models.DefaultColor(),
	}
}

func TestStoreAddAppendsWithoutMerging(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	require.NoError(t, s.Add(ctx, line(7, "150.00", 1)))
	require.NoError(t, s.Add(ctx, line(7, "150.00", 1)))

	lines := s.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, 1, lines[1].Quantity)
}

func TestStoreTotals(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	require.NoError(t, s.Add(ctx, line(1, "150.00 ر.س", 2)))
	require.NoError(t, s.Add(ctx, line(2, "99.50", 1)))

	assert.Equal(t, 3, s.TotalItems())
	assert.InDelta(t, 399.50, s.TotalPrice(), 1e-9)
}

func TestStoreUnparsablePriceContributesZero(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	require.NoError(t, s.Add(ctx, line(1, "اتصل بنا", 3)))
	require.NoError(t, s.Add(ctx, line(2, "50.00", 1)))

	assert.Equal(t, 4, s.TotalItems())
	assert.InDelta(t, 50.0, s.TotalPrice(), 1e-9)
}

func TestStoreUpdateQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces quantity and keeps other fields", func(t *testing.T) {
		s, _ := newTestStore(t)
		l := line(1, "150.00", 1)
		l.Width = 200
		l.Height = 260
		require.NoError(t, s.Add(ctx, l))

		require.NoError(t, s.UpdateQuantity(ctx, 0, 5))

		got := s.Lines()[0]
		assert.Equal(t, 5, got.Quantity)
		assert.Equal(t, float64(200), got.Width)
		assert.Equal(t, float64(260), got.Height)
	})

	t.Run("quantity below one is a no-op", func(t *testing.T) {
		s, _ := newTestStore(t)
		require.NoError(t, s.Add(ctx, line(1, "150.00", 2)))

		require.NoError(t, s.UpdateQuantity(ctx, 0, 0))
		require.NoError(t, s.UpdateQuantity(ctx, 0, -3))

		require.Equal(t, 1, s.Len())
		assert.Equal(t, 2, s.Lines()[0].Quantity)
	})

	t.Run("out of bounds index is a no-op", func(t *testing.T) {
		s, _ := newTestStore(t)
		require.NoError(t, s.Add(ctx, line(1, "150.00", 2)))

		require.NoError(t, s.UpdateQuantity(ctx, 4, 3))
		assert.Equal(t, 2, s.Lines()[0].Quantity)
	})
}

func TestStoreRemove(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	require.NoError(t, s.Add(ctx, line(1, "150.00", 1)))
	require.NoError(t, s.Add(ctx, line(2, "99.50", 1)))

	t.Run("out of bounds is a no-op", func(t *testing.T) {
		require.NoError(t, s.Remove(ctx, 5))
		require.NoError(t, s.Remove(ctx, -1))
		assert.Equal(t, 2, s.Len())
	})

	t.Run("drops the indexed line and preserves order", func(t *testing.T) {
		require.NoError(t, s.Remove(ctx, 0))
		lines := s.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 2, lines[0].ProductID)
	})
}

func TestStoreUpdateColor(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	require.NoError(t, s.Add(ctx, line(1, "150.00", 2)))

	beige := models.ProductColor{Name: "بيج", Hex: "#d9c8a9"}
	require.NoError(t, s.UpdateColor(ctx, 0, beige))

	got := s.Lines()[0]
	assert.Equal(t, beige, got.Color)
	assert.Equal(t, 2, got.Quantity)
}

func TestStorePersistence(t *testing.T) {
	ctx := context.Background()

	t.Run("survives a reload", func(t *testing.T) {
		kv := driver.NewMemKV()
		s := NewStore(ctx, kv, zap.NewNop())
		require.NoError(t, s.Add(ctx, line(1, "150.00", 2)))
		require.NoError(t, s.Add(ctx, line(2, "99.50", 1)))

		reloaded := NewStore(ctx, kv, zap.NewNop())
		assert.Equal(t, s.Lines(), reloaded.Lines())
	})

	t.Run("malformed stored state starts empty", func(t *testing.T) {
		kv := driver.NewMemKV()
		require.NoError(t, kv.Set(ctx, storageKey, "{not json", 0))

		s := NewStore(ctx, kv, zap.NewNop())
		assert.Equal(t, 0, s.Len())
	})

	t.Run("missing stored state starts empty", func(t *testing.T) {
		s, _ := newTestStore(t)
		assert.Equal(t, 0, s.Len())
	})

	t.Run("clear persists the empty state", func(t *testing.T) {
		kv := driver.NewMemKV()
		s := NewStore(ctx, kv, zap.NewNop())
		require.NoError(t, s.Add(ctx, line(1, "150.00", 1)))
		require.NoError(t, s.Clear(ctx))

		reloaded := NewStore(ctx, kv, zap.NewNop())
		assert.Equal(t, 0, reloaded.Len())
	})
}
