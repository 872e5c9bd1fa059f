package service

import (
	"context"
	"time"
)

// waitLatency simula la latencia de red. Devuelve la causa si el contexto se cancela antes.
func waitLatency(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return context.Cause(ctx)
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return context.Cause(ctx)
	}
}
