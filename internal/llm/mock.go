package llm

import (
	"context"
	"sync"

	"aac-assist/internal/domain"
)

// MockGenerator permite tests sin depender del catálogo.
type MockGenerator struct {
	mu       sync.Mutex
	Response []string
	Err      error
	Calls    []domain.GenerationRequest
}

func (m *MockGenerator) Generate(ctx context.Context, req domain.GenerationRequest) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, req)
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]string, len(m.Response))
	copy(out, m.Response)
	return out, nil
}

// CallCount devuelve cuántas veces se llamó a Generate.
func (m *MockGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
