package email

import (
	"context"
	"errors"

	"aac-assist/internal/domain"
)

// Sender define la interfaz para reenviar mensajes del formulario de contacto.
type Sender interface {
	SendContactMessage(ctx context.Context, msg domain.ContactMessage) error
}

type disabledSender struct {
	reason string
}

func NewDisabledSender(reason string) Sender {
	return &disabledSender{reason: reason}
}

func (s *disabledSender) SendContactMessage(_ context.Context, _ domain.ContactMessage) error {
	if s.reason == "" {
		return errors.New("email sender disabled")
	}
	return errors.New(s.reason)
}
