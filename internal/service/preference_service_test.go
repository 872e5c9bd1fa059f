package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"aac-assist/internal/domain"
	"aac-assist/internal/repository"
)

func boolPtr(v bool) *bool { return &v }

func TestPreferenceService_DefaultsToFalse(t *testing.T) {
	svc := NewPreferenceService(zap.NewNop(), repository.NewMemoryKVStore())
	prefs, err := svc.Load(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if prefs != (domain.Preferences{}) {
		t.Fatalf("expected all flags false, got %+v", prefs)
	}
}

func TestPreferenceService_SaveWritesStringFlags(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryKVStore()
	svc := NewPreferenceService(zap.NewNop(), store)

	if err := svc.Save(ctx, domain.Preferences{HighContrast: true}); err != nil {
		t.Fatalf("save: %v", err)
	}
	want := map[string]string{
		domain.KeyHighContrast:          "true",
		domain.KeyLargeText:             "false",
		domain.KeyAccessibilityExpanded: "false",
	}
	for k, v := range want {
		if got, ok, _ := store.Get(ctx, k); !ok || got != v {
			t.Fatalf("key %s: expected %q, got %q (ok=%v)", k, v, got, ok)
		}
	}
}

func TestPreferenceService_NonTrueValuesReadAsFalse(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryKVStore()
	_ = store.Set(ctx, domain.KeyLargeText, "TRUE")
	_ = store.Set(ctx, domain.KeyHighContrast, "true")
	svc := NewPreferenceService(zap.NewNop(), store)

	prefs, err := svc.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !prefs.HighContrast || prefs.LargeText {
		t.Fatalf("unexpected flags: %+v", prefs)
	}
}

func TestPreferenceService_Update(t *testing.T) {
	ctx := context.Background()
	svc := NewPreferenceService(zap.NewNop(), repository.NewMemoryKVStore())
	_ = svc.Save(ctx, domain.Preferences{HighContrast: true, LargeText: true})

	prefs, err := svc.Update(ctx, domain.PreferencesPatch{LargeText: boolPtr(false), AccessibilityExpanded: boolPtr(true)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	want := domain.Preferences{HighContrast: true, LargeText: false, AccessibilityExpanded: true}
	if prefs != want {
		t.Fatalf("expected %+v, got %+v", want, prefs)
	}
	reloaded, _ := svc.Load(ctx)
	if reloaded != want {
		t.Fatalf("expected persisted %+v, got %+v", want, reloaded)
	}
}

func TestPreferenceService_StoreError(t *testing.T) {
	svc := NewPreferenceService(zap.NewNop(), failingKVStore{err: errors.New("down")})
	if _, err := svc.Load(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
	if _, err := svc.Update(context.Background(), domain.PreferencesPatch{}); err == nil {
		t.Fatalf("expected error")
	}
}
