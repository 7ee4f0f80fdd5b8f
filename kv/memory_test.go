package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, found, err := m.Load(ctx, "cartState")
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, m.Save(ctx, "cartState", []byte(`{"items":[]}`)))

	value, found, err := m.Load(ctx, "cartState")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []byte(`{"items":[]}`), value)

	require.NoError(t, m.Delete(ctx, "cartState"))

	_, found, err = m.Load(ctx, "cartState")
	require.NoError(t, err)
	require.False(t, found)
}

func TestMemoryDeleteMissingKey(t *testing.T) {
	require.NoError(t, NewMemory().Delete(context.Background(), "nope"))
}

func TestMemoryCopiesValues(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	in := []byte("light")
	require.NoError(t, m.Save(ctx, "theme", in))
	in[0] = 'X'

	out, _, err := m.Load(ctx, "theme")
	require.NoError(t, err)
	require.Equal(t, []byte("light"), out)

	out[0] = 'Y'
	again, _, err := m.Load(ctx, "theme")
	require.NoError(t, err)
	require.Equal(t, []byte("light"), again)
}
