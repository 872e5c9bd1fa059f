// Package catalog contiene las tablas fijas de respuestas que simulan al
// asistente. Es inmutable: todas las funciones devuelven copias.
package catalog

import (
	"fmt"
	"math"
	"strings"

	"aac-assist/internal/domain"
)

// Catalog resuelve (categoría, entrada) -> lista ordenada de candidatos.
// Nunca falla y nunca devuelve una lista vacía.
type Catalog struct{}

// New devuelve el catálogo. Es un valor sin estado; existe para poder inyectarlo.
func New() Catalog {
	return Catalog{}
}

// Lookup despacha según la categoría de la petición.
func (Catalog) Lookup(req domain.GenerationRequest) []string {
	switch req.Category {
	case domain.CategoryExtendReply:
		return ExtendReply(req.Input, req.Variability)
	case domain.CategoryBackgroundInfo:
		question := req.Question
		if question == "" {
			question = req.Input
		}
		return BackgroundResponse(question, req.Profile)
	case domain.CategoryWordToRequest:
		return WordToRequest(req.Input)
	default:
		return ExtendReply(req.Input, req.Variability)
	}
}

// Normalize aplica la normalización de claves: minúsculas y sin espacios en los extremos.
func Normalize(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// ClampVariability acota v a [0.1, 1.0]. NaN vuelve al valor por defecto.
func ClampVariability(v float64) float64 {
	if math.IsNaN(v) {
		return domain.DefaultVariability
	}
	return math.Max(domain.MinVariability, math.Min(domain.MaxVariability, v))
}

// ResponseCount es clamp(floor(3 + v*2), 2, 4) con v ya acotada.
func ResponseCount(variability float64) int {
	v := ClampVariability(variability)
	n := int(math.Floor(3 + v*2))
	if n < 2 {
		return 2
	}
	if n > 4 {
		return 4
	}
	return n
}

// ExtendReply expande una entrada corta en respuestas completas.
func ExtendReply(input string, variability float64) []string {
	key := parseSentiment(Normalize(input))
	switch key {
	case SentimentUnknown:
		return interpolate(extendReplyFallback, input)
	default:
		templates := extendReplyTemplates[key]
		n := ResponseCount(variability)
		if n > len(templates) {
			n = len(templates)
		}
		return clone(templates[:n])
	}
}

// DetectTopic busca "pet" u "hobbies"/"hobby" en la pregunta.
func DetectTopic(question string) BackgroundTopic {
	q := strings.ToLower(question)
	switch {
	case strings.Contains(q, "pet"):
		return TopicPets
	case strings.Contains(q, "hobbies"), strings.Contains(q, "hobby"):
		return TopicHobbies
	default:
		return TopicOther
	}
}

// BackgroundResponse responde una pregunta usando el texto libre del perfil.
func BackgroundResponse(question, profile string) []string {
	p := strings.ToLower(profile)
	set := setGeneric
	switch DetectTopic(question) {
	case TopicPets:
		switch {
		case strings.Contains(p, "dog"):
			set = setDog
		case strings.Contains(p, "cat"):
			set = setCat
		default:
			set = setNoPets
		}
	case TopicHobbies:
		switch {
		case strings.Contains(p, "reading"):
			set = setReading
		case strings.Contains(p, "music"):
			set = setMusic
		default:
			set = setHobbiesGeneric
		}
	}
	return clone(backgroundResponses[set])
}

// WordToRequest convierte una palabra suelta en peticiones educadas.
func WordToRequest(word string) []string {
	key := parseVocabulary(Normalize(word))
	switch key {
	case VocabularyUnknown:
		return interpolate(wordToRequestFallback, word)
	default:
		return clone(wordToRequestTemplates[key])
	}
}

// SampleQuestions son las preguntas del selector de background-info.
func SampleQuestions() []string { return clone(sampleQuestions) }

// ExampleWords son los atajos del widget word-to-request.
func ExampleWords() []string { return clone(exampleWords) }

func PrivacyLevels() []domain.PrivacyLevel {
	return []domain.PrivacyLevel{domain.PrivacyDirect, domain.PrivacyPolite, domain.PrivacyEuphemistic}
}

func interpolate(templates []string, literal string) []string {
	out := make([]string, len(templates))
	for i, t := range templates {
		out[i] = fmt.Sprintf(t, literal)
	}
	return out
}

func clone(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
