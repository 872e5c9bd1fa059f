package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"aac-assist/internal/domain"
	"aac-assist/internal/repository"
)

type failingKVStore struct{ err error }

func (f failingKVStore) Get(context.Context, string) (string, bool, error) { return "", false, f.err }
func (f failingKVStore) Set(context.Context, string, string) error         { return f.err }
func (f failingKVStore) Delete(context.Context, string) error              { return f.err }

func TestProfileService_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryKVStore()
	svc := NewProfileService(zap.NewNop(), store)

	text, err := svc.Load(ctx)
	if err != nil || text != "" {
		t.Fatalf("expected empty profile, got %q err=%v", text, err)
	}

	raw := "  I have a dog named Rex.\r\nI enjoy reading 📚\t"
	if err := svc.Save(ctx, raw); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := svc.Load(ctx)
	if err != nil || got != raw {
		t.Fatalf("expected byte-for-byte round trip, got %q err=%v", got, err)
	}
	if stored, _, _ := store.Get(ctx, domain.KeyUserProfile); stored != raw {
		t.Fatalf("expected profile under %q", domain.KeyUserProfile)
	}
}

func TestProfileService_Clear(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryKVStore()
	svc := NewProfileService(zap.NewNop(), store)
	_ = svc.Save(ctx, "music")

	if err := svc.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok, _ := store.Get(ctx, domain.KeyUserProfile); ok {
		t.Fatalf("expected key removed")
	}
	if text, _ := svc.Load(ctx); text != "" {
		t.Fatalf("expected empty profile after clear, got %q", text)
	}
}

func TestProfileService_Errors(t *testing.T) {
	ctx := context.Background()
	svc := NewProfileService(zap.NewNop(), failingKVStore{err: errors.New("down")})
	if _, err := svc.Load(ctx); err == nil {
		t.Fatalf("expected load error")
	}
	if err := svc.Save(ctx, "x"); err == nil {
		t.Fatalf("expected save error")
	}

	var nilSvc *ProfileService
	if _, err := nilSvc.Load(ctx); !errors.Is(err, ErrStoreNotConfigured) {
		t.Fatalf("expected ErrStoreNotConfigured, got %v", err)
	}
}
