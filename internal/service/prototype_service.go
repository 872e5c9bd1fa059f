package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"aac-assist/internal/domain"
	"aac-assist/internal/llm"
	"aac-assist/internal/repository"
)

var (
	ErrPrototypeNotConfigured = errors.New("prototype service not configured")
	ErrUnknownCategory        = errors.New("unknown prototype category")
	ErrSessionNotFound        = errors.New("prototype session not found")
)

// Delays agrupa la latencia simulada por categoría.
type Delays struct {
	ExtendReply    time.Duration
	BackgroundInfo time.Duration
	WordToRequest  time.Duration
}

// DefaultDelays reproduce los tiempos del sitio de demostración.
func DefaultDelays() Delays {
	return Delays{
		ExtendReply:    time.Second,
		BackgroundInfo: time.Second,
		WordToRequest:  800 * time.Millisecond,
	}
}

func (d Delays) For(category domain.Category) time.Duration {
	switch category {
	case domain.CategoryExtendReply:
		return d.ExtendReply
	case domain.CategoryBackgroundInfo:
		return d.BackgroundInfo
	case domain.CategoryWordToRequest:
		return d.WordToRequest
	}
	return 0
}

// PrototypeService crea y localiza los controladores de cada widget.
type PrototypeService struct {
	logger    *zap.Logger
	generator llm.Generator
	profiles  ProfileStore
	sessions  *repository.SessionCache[*PrototypeController]
	delays    Delays
}

func NewPrototypeService(
	logger *zap.Logger,
	generator llm.Generator,
	profiles ProfileStore,
	sessions *repository.SessionCache[*PrototypeController],
	delays Delays,
) *PrototypeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if sessions != nil {
		sessions.OnEvicted(func(id string, ctrl *PrototypeController) {
			ctrl.Close()
			logger.Debug("prototype session discarded", zap.String("session_id", id))
		})
	}
	return &PrototypeService{
		logger:    logger,
		generator: generator,
		profiles:  profiles,
		sessions:  sessions,
		delays:    delays,
	}
}

// CreateSession monta un widget nuevo de la categoría indicada.
func (s *PrototypeService) CreateSession(ctx context.Context, rawCategory string) (*PrototypeController, error) {
	if s == nil || s.generator == nil || s.sessions == nil {
		return nil, ErrPrototypeNotConfigured
	}
	category, ok := domain.ParseCategory(rawCategory)
	if !ok {
		return nil, ErrUnknownCategory
	}
	ctrl := NewPrototypeController(uuid.NewString(), category, s.generator, s.profiles, s.delays.For(category))
	if err := ctrl.Mount(ctx); err != nil {
		// Un perfil ilegible no impide usar el widget.
		s.logger.Warn("load saved profile failed", zap.Error(err))
	}
	snap := ctrl.Snapshot()
	s.sessions.Save(snap.ID, ctrl)
	s.logger.Info("prototype session created",
		zap.String("session_id", snap.ID),
		zap.String("category", string(category)),
	)
	return ctrl, nil
}

func (s *PrototypeService) Session(id string) (*PrototypeController, error) {
	if s == nil || s.sessions == nil {
		return nil, ErrPrototypeNotConfigured
	}
	ctrl, ok := s.sessions.Get(strings.TrimSpace(id))
	if !ok {
		return nil, ErrSessionNotFound
	}
	return ctrl, nil
}

// CloseSession descarta el widget (navegar fuera de la pestaña).
func (s *PrototypeService) CloseSession(id string) error {
	if _, err := s.Session(id); err != nil {
		return err
	}
	s.sessions.Delete(strings.TrimSpace(id))
	return nil
}

// Generate es la variante sin estado usada por los endpoints /api: aplica la
// misma latencia simulada y delega en el generador.
func (s *PrototypeService) Generate(ctx context.Context, req domain.GenerationRequest) ([]string, error) {
	if s == nil || s.generator == nil {
		return nil, ErrPrototypeNotConfigured
	}
	switch req.Category {
	case domain.CategoryBackgroundInfo:
		if strings.TrimSpace(req.Profile) == "" {
			return nil, ErrEmptyProfile
		}
	case domain.CategoryExtendReply, domain.CategoryWordToRequest:
		if strings.TrimSpace(req.Input) == "" {
			return nil, ErrEmptyInput
		}
	default:
		return nil, ErrUnknownCategory
	}
	if err := waitLatency(ctx, s.delays.For(req.Category)); err != nil {
		return nil, err
	}
	out, err := s.generator.Generate(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNoCandidates
	}
	return out, nil
}
