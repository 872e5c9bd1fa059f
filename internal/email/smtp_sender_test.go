package email

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"gopkg.in/gomail.v2"

	"aac-assist/internal/domain"
)

type mockDialer struct {
	sent []*gomail.Message
	err  error
}

func (m *mockDialer) DialAndSend(msgs ...*gomail.Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msgs...)
	return nil
}

func sampleContact() domain.ContactMessage {
	return domain.ContactMessage{
		ID:        "c1",
		Name:      "Ada",
		Email:     "ada@example.com",
		Subject:   domain.SubjectAccessibility,
		Message:   "Large text mode is great.",
		CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestNewSMTPSender_Validation(t *testing.T) {
	if _, err := NewSMTPSender("", 587, "", "", "team@example.com", ""); err == nil {
		t.Fatalf("expected error for missing host")
	}
	if _, err := NewSMTPSender("smtp.example.com", 587, "", "", " ", ""); err == nil {
		t.Fatalf("expected error for missing from")
	}
	s, err := NewSMTPSender("smtp.example.com", 0, "", "", "team@example.com", "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if s.inbox != "team@example.com" {
		t.Fatalf("expected inbox to default to from, got %q", s.inbox)
	}
}

func TestSMTPSenderSendContactMessage(t *testing.T) {
	d := &mockDialer{}
	s := &SMTPSender{dialer: d, from: "site@example.com", inbox: "team@example.com"}

	if err := s.SendContactMessage(context.Background(), sampleContact()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(d.sent) != 1 {
		t.Fatalf("expected one message, got %d", len(d.sent))
	}
	m := d.sent[0]
	if got := m.GetHeader("To"); len(got) != 1 || got[0] != "team@example.com" {
		t.Fatalf("unexpected To header: %+v", got)
	}
	if got := m.GetHeader("Subject"); len(got) != 1 || got[0] != "[AAC contact] accessibility" {
		t.Fatalf("unexpected Subject header: %+v", got)
	}
	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		t.Fatalf("write message: %v", err)
	}
	if !strings.Contains(buf.String(), "Large text mode is great.") {
		t.Fatalf("expected body to contain the message")
	}
}

func TestSMTPSenderSendContactMessage_Errors(t *testing.T) {
	s := &SMTPSender{dialer: &mockDialer{err: errors.New("smtp down")}, from: "a@example.com", inbox: "b@example.com"}
	if err := s.SendContactMessage(context.Background(), sampleContact()); err == nil {
		t.Fatalf("expected dial error")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.SendContactMessage(ctx, sampleContact()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestDisabledSender(t *testing.T) {
	if err := NewDisabledSender("").SendContactMessage(context.Background(), sampleContact()); err == nil {
		t.Fatalf("expected error")
	}
	if err := NewDisabledSender("not configured").SendContactMessage(context.Background(), sampleContact()); err == nil || err.Error() != "not configured" {
		t.Fatalf("expected reason as error, got %v", err)
	}
}
