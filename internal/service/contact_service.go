package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"aac-assist/internal/domain"
	"aac-assist/internal/email"
)

var (
	ErrContactInvalidInput = errors.New("contact invalid input")
	ErrContactRateLimited  = errors.New("contact rate limited")
)

type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ContactService simula el envío del formulario de contacto. Si hay un
// notificador configurado reenvía el mensaje; su fallo no se propaga.
type ContactService struct {
	logger   *zap.Logger
	notifier email.Sender
	limiter  ContactRateLimiter
	delay    time.Duration
}

func NewContactService(logger *zap.Logger, notifier email.Sender, delay time.Duration) *ContactService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContactService{logger: logger, notifier: notifier, delay: delay}
}

// WithRateLimiter activa el límite de envíos por correo. nil lo desactiva.
func (s *ContactService) WithRateLimiter(limiter ContactRateLimiter) *ContactService {
	s.limiter = limiter
	return s
}

func (s *ContactService) Submit(ctx context.Context, in ContactInput) (domain.ContactMessage, error) {
	msg := domain.ContactMessage{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Subject: domain.ContactSubject(strings.ToLower(strings.TrimSpace(in.Subject))),
		Message: strings.TrimSpace(in.Message),
	}
	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		return domain.ContactMessage{}, ErrContactInvalidInput
	}
	if _, err := mail.ParseAddress(msg.Email); err != nil {
		return domain.ContactMessage{}, ErrContactInvalidInput
	}
	if !msg.Subject.Valid() {
		return domain.ContactMessage{}, ErrContactInvalidInput
	}
	if s.limiter != nil && !s.limiter.Allow(msg.Email) {
		s.logger.Warn("contact submission rate limited", zap.String("subject", string(msg.Subject)))
		return domain.ContactMessage{}, ErrContactRateLimited
	}

	if err := waitLatency(ctx, s.delay); err != nil {
		return domain.ContactMessage{}, err
	}
	msg.ID = uuid.NewString()
	msg.CreatedAt = time.Now().UTC()

	if s.notifier != nil {
		if err := s.notifier.SendContactMessage(ctx, msg); err != nil {
			s.logger.Warn("contact notification failed", zap.Error(err), zap.String("contact_id", msg.ID))
		}
	}
	s.logger.Info("contact message received",
		zap.String("contact_id", msg.ID),
		zap.String("subject", string(msg.Subject)),
	)
	return msg, nil
}
