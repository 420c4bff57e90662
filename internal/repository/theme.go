package repository

import (
	"context"
	"fmt"

	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/kvstore"
	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/model"
)

// ThemeRepository persists the display theme preference.
type ThemeRepository struct {
	store kvstore.Store
}

// NewThemeRepository constructs a ThemeRepository.
func NewThemeRepository(store kvstore.Store) *ThemeRepository {
	return &ThemeRepository{store: store}
}

// Get returns the stored theme, or light when none (or an unknown one) is stored.
func (r *ThemeRepository) Get(ctx context.Context) (model.Theme, error) {
	raw, ok, err := r.store.Get(ctx, KeyTheme)
	if err != nil {
		return model.ThemeLight, fmt.Errorf("%w: read theme: %w", ErrPersistenceUnavailable, err)
	}
	if !ok {
		return model.ThemeLight, nil
	}
	theme := model.Theme(raw)
	if !theme.Valid() {
		return model.ThemeLight, nil
	}
	return theme, nil
}

// Set stores theme.
func (r *ThemeRepository) Set(ctx context.Context, theme model.Theme) error {
	if !theme.Valid() {
		return fmt.Errorf("unknown theme %q", theme)
	}
	if err := r.store.Put(ctx, kvstore.Entry{Key: KeyTheme, Value: []byte(theme)}); err != nil {
		return fmt.Errorf("%w: save theme: %w", ErrPersistenceUnavailable, err)
	}
	return nil
}
