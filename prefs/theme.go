// Package prefs persists small per-user presentation preferences, currently
// the display theme.
package prefs

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"goflare.io/storefront/kv"
	"goflare.io/storefront/models/enum"
)

const themeKey = "theme"

// Store reads and writes the saved theme preference. Read failures and
// unknown stored values degrade to "no saved preference".
type Store struct {
	storage kv.Store
	logger  *zap.Logger
}

func NewStore(storage kv.Store, logger *zap.Logger) *Store {
	return &Store{storage: storage, logger: logger}
}

// Saved returns the explicitly saved theme, if any.
func (s *Store) Saved(ctx context.Context) (enum.ThemeMode, bool) {
	data, found, err := s.storage.Load(ctx, themeKey)
	if err != nil {
		s.logger.Warn("Failed to load theme preference", zap.Error(err))
		return "", false
	}
	if !found {
		return "", false
	}

	mode := enum.ThemeMode(data)
	if !mode.Valid() {
		s.logger.Warn("Ignoring unknown saved theme", zap.String("theme", string(data)))
		return "", false
	}
	return mode, true
}

// Set saves an explicit theme choice. Once set, the system preference no
// longer influences Resolve.
func (s *Store) Set(ctx context.Context, mode enum.ThemeMode) error {
	if !mode.Valid() {
		return fmt.Errorf("unknown theme %q", mode)
	}
	if err := s.storage.Save(ctx, themeKey, []byte(mode)); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}

// Resolve picks the effective theme: the saved choice wins, then the
// system preference, then light.
func (s *Store) Resolve(ctx context.Context, systemPrefersDark bool) enum.ThemeMode {
	if saved, ok := s.Saved(ctx); ok {
		return saved
	}
	if systemPrefersDark {
		return enum.ThemeModeDark
	}
	return enum.ThemeModeLight
}
