package service

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"aac-assist/internal/domain"
	"aac-assist/internal/repository"
)

// PreferenceService lee y escribe los flags de accesibilidad.
// Los flags se guardan como "true"/"false"; cualquier otro valor se lee como false.
type PreferenceService struct {
	logger *zap.Logger
	store  repository.KeyValueStore
}

func NewPreferenceService(logger *zap.Logger, store repository.KeyValueStore) *PreferenceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PreferenceService{logger: logger, store: store}
}

func (s *PreferenceService) Load(ctx context.Context) (domain.Preferences, error) {
	if s == nil || s.store == nil {
		return domain.Preferences{}, ErrStoreNotConfigured
	}
	var prefs domain.Preferences
	var err error
	if prefs.HighContrast, err = s.flag(ctx, domain.KeyHighContrast); err != nil {
		return domain.Preferences{}, err
	}
	if prefs.LargeText, err = s.flag(ctx, domain.KeyLargeText); err != nil {
		return domain.Preferences{}, err
	}
	if prefs.AccessibilityExpanded, err = s.flag(ctx, domain.KeyAccessibilityExpanded); err != nil {
		return domain.Preferences{}, err
	}
	return prefs, nil
}

// Save escribe siempre los tres flags, igual que el panel al cambiar cualquiera.
func (s *PreferenceService) Save(ctx context.Context, prefs domain.Preferences) error {
	if s == nil || s.store == nil {
		return ErrStoreNotConfigured
	}
	entries := []struct {
		key   string
		value bool
	}{
		{domain.KeyHighContrast, prefs.HighContrast},
		{domain.KeyLargeText, prefs.LargeText},
		{domain.KeyAccessibilityExpanded, prefs.AccessibilityExpanded},
	}
	for _, e := range entries {
		if err := s.store.Set(ctx, e.key, strconv.FormatBool(e.value)); err != nil {
			return err
		}
	}
	s.logger.Info("preferences saved",
		zap.Bool("high_contrast", prefs.HighContrast),
		zap.Bool("large_text", prefs.LargeText),
		zap.Bool("accessibility_expanded", prefs.AccessibilityExpanded),
	)
	return nil
}

// Update aplica un patch parcial sobre las preferencias guardadas.
func (s *PreferenceService) Update(ctx context.Context, patch domain.PreferencesPatch) (domain.Preferences, error) {
	current, err := s.Load(ctx)
	if err != nil {
		return domain.Preferences{}, err
	}
	next := current.Apply(patch)
	if err := s.Save(ctx, next); err != nil {
		return domain.Preferences{}, err
	}
	return next, nil
}

func (s *PreferenceService) flag(ctx context.Context, key string) (bool, error) {
	v, _, err := s.store.Get(ctx, key)
	if err != nil {
		return false, err
	}
	return v == "true", nil
}
