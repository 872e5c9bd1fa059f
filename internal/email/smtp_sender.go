package email

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gopkg.in/gomail.v2"

	"aac-assist/internal/domain"
)

// dialer es el subconjunto de *gomail.Dialer que usamos.
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPSender envia correos via SMTP.
type SMTPSender struct {
	dialer dialer
	from   string
	inbox  string
}

func NewSMTPSender(host string, port int, username, password, from, inbox string) (*SMTPSender, error) {
	if strings.TrimSpace(host) == "" {
		return nil, fmt.Errorf("smtp host is required")
	}
	if strings.TrimSpace(from) == "" {
		return nil, fmt.Errorf("smtp from is required")
	}
	if strings.TrimSpace(inbox) == "" {
		inbox = from
	}
	if port == 0 {
		port = 587
	}
	return &SMTPSender{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
		inbox:  inbox,
	}, nil
}

func (s *SMTPSender) SendContactMessage(ctx context.Context, msg domain.ContactMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.dialer.DialAndSend(buildMessage(s.from, s.inbox, msg))
}

func buildMessage(from, to string, msg domain.ContactMessage) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetAddressHeader("Reply-To", msg.Email, msg.Name)
	m.SetHeader("Subject", fmt.Sprintf("[AAC contact] %s", msg.Subject))
	body := fmt.Sprintf(
		"From: %s <%s>\nTopic: %s\nReceived: %s UTC\n\n%s\n",
		msg.Name,
		msg.Email,
		msg.Subject,
		msg.CreatedAt.UTC().Format(time.RFC3339),
		msg.Message,
	)
	m.SetBody("text/plain", body)
	return m
}
