package event

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sitara.io/store/driver"
)

func TestMarkProcessed(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(driver.NewMemKV(), zap.NewNop())

	first, err := repo.MarkProcessed(ctx, "evt_123")
	require.NoError(t, err)
	assert.True(t, first)

	again, err := repo.MarkProcessed(ctx, "evt_123")
	require.NoError(t, err)
	assert.False(t, again, "a redelivered id is reported as seen")

	other, err := repo.MarkProcessed(ctx, "evt_456")
	require.NoError(t, err)
	assert.True(t, other)
}
