package llm

import (
	"context"

	"aac-assist/internal/catalog"
	"aac-assist/internal/domain"
)

// Generator define la interfaz para producir candidatos de respuesta.
// Hoy la única implementación es el catálogo fijo; un cliente de LLM real
// implementaría la misma interfaz.
type Generator interface {
	Generate(ctx context.Context, req domain.GenerationRequest) ([]string, error)
}

// CatalogGenerator implementa Generator con las tablas de catalog.
type CatalogGenerator struct {
	catalog catalog.Catalog
}

func NewCatalogGenerator(c catalog.Catalog) *CatalogGenerator {
	return &CatalogGenerator{catalog: c}
}

func (g *CatalogGenerator) Generate(ctx context.Context, req domain.GenerationRequest) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return g.catalog.Lookup(req), nil
}
