package domain

import "time"

// SessionStatus es el estado principal del widget: Idle -> Generating -> Idle.
type SessionStatus string

const (
	StatusIdle       SessionStatus = "idle"
	StatusGenerating SessionStatus = "generating"
)

// PrototypeSession es el estado transitorio de un widget. Nunca se persiste.
type PrototypeSession struct {
	ID           string        `json:"id"`
	Category     Category      `json:"category"`
	Input        string        `json:"input"`
	Context      string        `json:"context,omitempty"`
	Variability  float64       `json:"variability"`
	Question     string        `json:"question,omitempty"`
	Profile      string        `json:"profile,omitempty"`
	PrivacyLevel PrivacyLevel  `json:"privacy_level,omitempty"`
	Candidates   []string      `json:"candidates"`
	EditingIndex *int          `json:"editing_index,omitempty"`
	EditText     string        `json:"edit_text,omitempty"`
	Status       SessionStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// Editing indica si hay un candidato en edición.
func (s PrototypeSession) Editing() bool {
	return s.EditingIndex != nil
}
