package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"aac-assist/internal/catalog"
	"aac-assist/internal/domain"
	"aac-assist/internal/llm"
)

var (
	ErrEmptyInput          = errors.New("prototype input is empty")
	ErrEmptyProfile        = errors.New("background profile is empty")
	ErrInvalidIndex        = errors.New("candidate index out of range")
	ErrNotEditing          = errors.New("no candidate under edit")
	ErrSuperseded          = errors.New("generation superseded by a newer submission")
	ErrNoCandidates        = errors.New("generator returned no candidates")
	ErrInvalidPrivacyLevel = errors.New("invalid privacy level")
	ErrProfileUnsupported  = errors.New("profile actions require a background-info session")
)

// DefaultContextMessage es el mensaje de conversación con el que arranca extend-reply.
const DefaultContextMessage = "Hey, want to join us for lunch?"

// AuxParams son los parámetros auxiliares por categoría. nil = sin cambios.
type AuxParams struct {
	Context      *string
	Variability  *float64
	Question     *string
	Profile      *string
	PrivacyLevel *string
}

// ProfileStore es lo que el widget de background-info necesita para guardar el perfil.
type ProfileStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, text string) error
	Clear(ctx context.Context) error
}

// PrototypeController mantiene el estado de un widget. Idle -> Generating -> Idle
// con un subestado ortogonal Viewing <-> Editing(index).
type PrototypeController struct {
	mu        sync.Mutex
	generator llm.Generator
	profiles  ProfileStore
	delay     time.Duration
	session   domain.PrototypeSession

	seq    uint64
	cancel context.CancelCauseFunc
}

func NewPrototypeController(id string, category domain.Category, generator llm.Generator, profiles ProfileStore, delay time.Duration) *PrototypeController {
	now := time.Now().UTC()
	s := domain.PrototypeSession{
		ID:          id,
		Category:    category,
		Variability: domain.DefaultVariability,
		Candidates:  []string{},
		Status:      domain.StatusIdle,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	switch category {
	case domain.CategoryExtendReply:
		s.Context = DefaultContextMessage
	case domain.CategoryBackgroundInfo:
		s.Question = catalog.SampleQuestions()[0]
	case domain.CategoryWordToRequest:
		s.PrivacyLevel = domain.PrivacyPolite
	}
	return &PrototypeController{
		generator: generator,
		profiles:  profiles,
		delay:     delay,
		session:   s,
	}
}

// Mount carga el perfil guardado, como hacía el widget al montarse.
func (c *PrototypeController) Mount(ctx context.Context) error {
	if c.session.Category != domain.CategoryBackgroundInfo || c.profiles == nil {
		return nil
	}
	text, err := c.profiles.Load(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.session.Profile = text
	c.mu.Unlock()
	return nil
}

// Update aplica entrada y parámetros sin generar.
func (c *PrototypeController) Update(input *string, aux AuxParams) (domain.PrototypeSession, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.applyLocked(input, aux); err != nil {
		return domain.PrototypeSession{}, err
	}
	return c.snapshotLocked(), nil
}

// Submit genera candidatos tras la latencia simulada. Una nueva llamada cancela
// la anterior en vuelo, que devuelve ErrSuperseded sin tocar los candidatos.
func (c *PrototypeController) Submit(ctx context.Context, input string, aux AuxParams) ([]string, error) {
	c.mu.Lock()
	if err := c.applyLocked(&input, aux); err != nil {
		c.mu.Unlock()
		return nil, err
	}
	if err := c.guardLocked(); err != nil {
		c.mu.Unlock()
		return nil, err
	}
	if c.cancel != nil {
		c.cancel(ErrSuperseded)
	}
	taskCtx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)
	c.seq++
	seq := c.seq
	c.cancel = cancel
	c.session.Status = domain.StatusGenerating
	req := c.requestLocked()
	c.mu.Unlock()

	if err := waitLatency(taskCtx, c.delay); err != nil {
		c.finish(seq)
		return nil, err
	}
	out, err := c.generator.Generate(taskCtx, req)

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		return nil, ErrSuperseded
	}
	c.cancel = nil
	c.session.Status = domain.StatusIdle
	c.session.UpdatedAt = time.Now().UTC()
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNoCandidates
	}
	c.session.Candidates = out
	c.session.EditingIndex = nil
	c.session.EditText = ""
	return cloneStrings(out), nil
}

func (c *PrototypeController) finish(seq uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		return
	}
	c.cancel = nil
	c.session.Status = domain.StatusIdle
}

// StartEdit abre la edición del candidato index.
func (c *PrototypeController) StartEdit(index int) (domain.PrototypeSession, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.session.Candidates) {
		return domain.PrototypeSession{}, ErrInvalidIndex
	}
	i := index
	c.session.EditingIndex = &i
	c.session.EditText = c.session.Candidates[index]
	c.session.UpdatedAt = time.Now().UTC()
	return c.snapshotLocked(), nil
}

// CommitEdit reemplaza solo el candidato en edición.
func (c *PrototypeController) CommitEdit(text string) (domain.PrototypeSession, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session.EditingIndex == nil {
		return domain.PrototypeSession{}, ErrNotEditing
	}
	idx := *c.session.EditingIndex
	if idx >= len(c.session.Candidates) {
		c.session.EditingIndex = nil
		c.session.EditText = ""
		return domain.PrototypeSession{}, ErrInvalidIndex
	}
	candidates := cloneStrings(c.session.Candidates)
	candidates[idx] = text
	c.session.Candidates = candidates
	c.session.EditingIndex = nil
	c.session.EditText = ""
	c.session.UpdatedAt = time.Now().UTC()
	return c.snapshotLocked(), nil
}

func (c *PrototypeController) CancelEdit() (domain.PrototypeSession, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session.EditingIndex == nil {
		return domain.PrototypeSession{}, ErrNotEditing
	}
	c.session.EditingIndex = nil
	c.session.EditText = ""
	c.session.UpdatedAt = time.Now().UTC()
	return c.snapshotLocked(), nil
}

// SaveProfile persiste el texto actual del perfil tal cual.
func (c *PrototypeController) SaveProfile(ctx context.Context) error {
	c.mu.Lock()
	if c.session.Category != domain.CategoryBackgroundInfo || c.profiles == nil {
		c.mu.Unlock()
		return ErrProfileUnsupported
	}
	text := c.session.Profile
	c.mu.Unlock()
	return c.profiles.Save(ctx, text)
}

// ClearProfile borra la clave persistida y limpia perfil y candidatos en memoria.
func (c *PrototypeController) ClearProfile(ctx context.Context) error {
	c.mu.Lock()
	if c.session.Category != domain.CategoryBackgroundInfo || c.profiles == nil {
		c.mu.Unlock()
		return ErrProfileUnsupported
	}
	c.mu.Unlock()
	if err := c.profiles.Clear(ctx); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.Profile = ""
	c.session.Candidates = []string{}
	c.session.EditingIndex = nil
	c.session.EditText = ""
	c.session.UpdatedAt = time.Now().UTC()
	return nil
}

// Snapshot devuelve una copia del estado actual.
func (c *PrototypeController) Snapshot() domain.PrototypeSession {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Close cancela cualquier generación en vuelo.
func (c *PrototypeController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel(context.Canceled)
		c.cancel = nil
	}
}

func (c *PrototypeController) applyLocked(input *string, aux AuxParams) error {
	if aux.PrivacyLevel != nil {
		level, ok := domain.ParsePrivacyLevel(*aux.PrivacyLevel)
		if !ok {
			return ErrInvalidPrivacyLevel
		}
		c.session.PrivacyLevel = level
	}
	if input != nil {
		if c.session.Category == domain.CategoryBackgroundInfo {
			if strings.TrimSpace(*input) != "" {
				c.session.Question = *input
			}
		} else {
			c.session.Input = *input
		}
	}
	if aux.Context != nil {
		c.session.Context = *aux.Context
	}
	if aux.Variability != nil {
		c.session.Variability = catalog.ClampVariability(*aux.Variability)
	}
	if aux.Question != nil && strings.TrimSpace(*aux.Question) != "" {
		c.session.Question = *aux.Question
	}
	if aux.Profile != nil {
		c.session.Profile = *aux.Profile
	}
	c.session.UpdatedAt = time.Now().UTC()
	return nil
}

func (c *PrototypeController) guardLocked() error {
	if c.session.Category == domain.CategoryBackgroundInfo {
		if strings.TrimSpace(c.session.Profile) == "" {
			return ErrEmptyProfile
		}
		return nil
	}
	if strings.TrimSpace(c.session.Input) == "" {
		return ErrEmptyInput
	}
	return nil
}

func (c *PrototypeController) requestLocked() domain.GenerationRequest {
	return domain.GenerationRequest{
		Category:     c.session.Category,
		Input:        c.session.Input,
		Context:      c.session.Context,
		Variability:  c.session.Variability,
		Question:     c.session.Question,
		Profile:      c.session.Profile,
		PrivacyLevel: c.session.PrivacyLevel,
	}
}

func (c *PrototypeController) snapshotLocked() domain.PrototypeSession {
	s := c.session
	s.Candidates = cloneStrings(c.session.Candidates)
	if c.session.EditingIndex != nil {
		i := *c.session.EditingIndex
		s.EditingIndex = &i
	}
	return s
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
