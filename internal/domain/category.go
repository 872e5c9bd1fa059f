package domain

import "strings"

// Category identifica el tipo de prototipo (y la tabla del catálogo que usa).
type Category string

const (
	CategoryExtendReply    Category = "extend-reply"
	CategoryBackgroundInfo Category = "background-info"
	CategoryWordToRequest  Category = "word-to-request"
)

// Categories lista las categorías en el orden en que el sitio las presenta.
func Categories() []Category {
	return []Category{CategoryExtendReply, CategoryBackgroundInfo, CategoryWordToRequest}
}

// ParseCategory acepta la forma canónica y los alias cortos que usaba el sitio
// ("extend", "background", "word").
func ParseCategory(raw string) (Category, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "extend-reply", "extend":
		return CategoryExtendReply, true
	case "background-info", "background":
		return CategoryBackgroundInfo, true
	case "word-to-request", "word":
		return CategoryWordToRequest, true
	}
	return "", false
}

// Variabilidad: sustituto de la "temperature" de un LLM.
const (
	MinVariability     = 0.1
	MaxVariability     = 1.0
	DefaultVariability = 0.7
)

// PrivacyLevel controla la franqueza de una petición (word-to-request).
type PrivacyLevel string

const (
	PrivacyDirect      PrivacyLevel = "direct"
	PrivacyPolite      PrivacyLevel = "polite"
	PrivacyEuphemistic PrivacyLevel = "euphemistic"
)

// ParsePrivacyLevel normaliza el nivel; vacío equivale a polite.
func ParsePrivacyLevel(raw string) (PrivacyLevel, bool) {
	switch PrivacyLevel(strings.ToLower(strings.TrimSpace(raw))) {
	case "", PrivacyPolite:
		return PrivacyPolite, true
	case PrivacyDirect:
		return PrivacyDirect, true
	case PrivacyEuphemistic:
		return PrivacyEuphemistic, true
	}
	return "", false
}

// GenerationRequest agrupa la entrada y los parámetros auxiliares de cada categoría.
type GenerationRequest struct {
	Category     Category
	Input        string
	Context      string
	Variability  float64
	Question     string
	Profile      string
	PrivacyLevel PrivacyLevel
}
