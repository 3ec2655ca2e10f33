package dstructs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatcherFlushesBoundedSlices(t *testing.T) {
	var sizes []int
	b := NewBatcher(3, func(_ context.Context, batch []int) error {
		sizes = append(sizes, len(batch))
		return nil
	})

	ctx := context.Background()
	for i := 0; i < 7; i++ {
		require.NoError(t, b.Add(ctx, i))
	}
	assert.Equal(t, []int{3, 3}, sizes)
	assert.Equal(t, 6, b.Flushed())

	require.NoError(t, b.Close(ctx))
	assert.Equal(t, []int{3, 3, 1}, sizes)
	assert.Equal(t, 7, b.Flushed())

	// closing an empty batcher is a no-op
	require.NoError(t, b.Close(ctx))
	assert.Equal(t, []int{3, 3, 1}, sizes)
}

func TestBatcherKeepsOrder(t *testing.T) {
	var got []string
	b := NewBatcher(2, func(_ context.Context, batch []string) error {
		got = append(got, batch...)
		return nil
	})
	ctx := context.Background()
	require.NoError(t, b.Add(ctx, "a", "b", "c"))
	require.NoError(t, b.Close(ctx))
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestBatcherPropagatesFlushError(t *testing.T) {
	boom := errors.New("boom")
	b := NewBatcher(2, func(_ context.Context, batch []int) error {
		return boom
	})
	ctx := context.Background()
	require.NoError(t, b.Add(ctx, 1))
	assert.ErrorIs(t, b.Add(ctx, 2), boom)
	assert.Equal(t, 0, b.Flushed())
}
