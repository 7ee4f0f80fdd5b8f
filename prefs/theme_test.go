package prefs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"goflare.io/storefront/kv"
	"goflare.io/storefront/models/enum"
)

type failingStore struct{}

func (failingStore) Load(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("backend down")
}
func (failingStore) Save(context.Context, string, []byte) error { return errors.New("backend down") }
func (failingStore) Delete(context.Context, string) error       { return errors.New("backend down") }

func TestResolveDefaultsToLight(t *testing.T) {
	s := NewStore(kv.NewMemory(), zap.NewNop())

	require.Equal(t, enum.ThemeModeLight, s.Resolve(context.Background(), false))
}

func TestResolveFollowsSystemPreference(t *testing.T) {
	s := NewStore(kv.NewMemory(), zap.NewNop())

	require.Equal(t, enum.ThemeModeDark, s.Resolve(context.Background(), true))
}

func TestSavedChoiceBeatsSystemPreference(t *testing.T) {
	ctx := context.Background()
	s := NewStore(kv.NewMemory(), zap.NewNop())

	require.NoError(t, s.Set(ctx, enum.ThemeModeLight))
	require.Equal(t, enum.ThemeModeLight, s.Resolve(ctx, true))

	require.NoError(t, s.Set(ctx, enum.ThemeModeDark))
	require.Equal(t, enum.ThemeModeDark, s.Resolve(ctx, false))
}

func TestSetRejectsUnknownMode(t *testing.T) {
	s := NewStore(kv.NewMemory(), zap.NewNop())

	require.Error(t, s.Set(context.Background(), enum.ThemeMode("sepia")))
}

func TestUnknownStoredValueIsIgnored(t *testing.T) {
	ctx := context.Background()
	storage := kv.NewMemory()
	require.NoError(t, storage.Save(ctx, "theme", []byte("sepia")))

	s := NewStore(storage, zap.NewNop())

	_, ok := s.Saved(ctx)
	require.False(t, ok)
	require.Equal(t, enum.ThemeModeDark, s.Resolve(ctx, true))
}

func TestLoadFailureFallsBackToSystem(t *testing.T) {
	s := NewStore(failingStore{}, zap.NewNop())

	require.Equal(t, enum.ThemeModeDark, s.Resolve(context.Background(), true))
	require.Equal(t, enum.ThemeModeLight, s.Resolve(context.Background(), false))
}
