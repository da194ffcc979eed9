package services

import (
	"context"
	"log"

	"spontrip/pkg/kvstore"
)

// ThemeKey is the durable-storage key holding the display-mode string.
const ThemeKey = "spontrip_theme"

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// PreferenceServiceInterface owns the light/dark display choice. The
// domain is a closed two-value enum; anything unreadable in storage falls
// back to the configured default.
type PreferenceServiceInterface interface {
	Theme(ctx context.Context) string
	Toggle(ctx context.Context) (string, error)
}

type PreferenceService struct {
	kv           kvstore.Store
	defaultTheme string
}

func NewPreferenceService(kv kvstore.Store, defaultTheme string) PreferenceServiceInterface {
	if defaultTheme != ThemeLight && defaultTheme != ThemeDark {
		defaultTheme = ThemeLight
	}
	return &PreferenceService{
		kv:           kv,
		defaultTheme: defaultTheme,
	}
}

func (s *PreferenceService) Theme(ctx context.Context) string {
	value, ok, err := s.kv.Get(ctx, ThemeKey)
	if err != nil {
		log.Printf("Theme read error: %v", err)
		return s.defaultTheme
	}
	if !ok || (value != ThemeLight && value != ThemeDark) {
		return s.defaultTheme
	}
	return value
}

// Toggle flips the stored theme and returns the new value. Toggling twice
// lands back on the original value.
func (s *PreferenceService) Toggle(ctx context.Context) (string, error) {
	next := ThemeDark
	if s.Theme(ctx) == ThemeDark {
		next = ThemeLight
	}
	if err := s.kv.Set(ctx, ThemeKey, next); err != nil {
		return "", err
	}
	return next, nil
}
