package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"aac-assist/internal/domain"
	"aac-assist/internal/repository"
)

var ErrStoreNotConfigured = errors.New("key value store not configured")

// ProfileService guarda el perfil de texto libre bajo una clave fija.
// El texto se guarda sin normalizar para que vuelva idéntico.
type ProfileService struct {
	logger *zap.Logger
	store  repository.KeyValueStore
}

func NewProfileService(logger *zap.Logger, store repository.KeyValueStore) *ProfileService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfileService{logger: logger, store: store}
}

// Load devuelve "" si no hay perfil guardado.
func (s *ProfileService) Load(ctx context.Context) (string, error) {
	if s == nil || s.store == nil {
		return "", ErrStoreNotConfigured
	}
	text, ok, err := s.store.Get(ctx, domain.KeyUserProfile)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}
	return text, nil
}

func (s *ProfileService) Save(ctx context.Context, text string) error {
	if s == nil || s.store == nil {
		return ErrStoreNotConfigured
	}
	if err := s.store.Set(ctx, domain.KeyUserProfile, text); err != nil {
		return err
	}
	s.logger.Info("profile saved", zap.Int("bytes", len(text)))
	return nil
}

func (s *ProfileService) Clear(ctx context.Context) error {
	if s == nil || s.store == nil {
		return ErrStoreNotConfigured
	}
	if err := s.store.Delete(ctx, domain.KeyUserProfile); err != nil {
		return err
	}
	s.logger.Info("profile cleared")
	return nil
}
