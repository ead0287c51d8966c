package wizard

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/facility-directory/internal/domain"
)

// Step numbers for the six-step submission flow.
const (
	StepFacilityType = 1
	StepLocation     = 2
	StepDetails      = 3
	StepImages       = 4
	StepAmenities    = 5
	StepConfirmation = 6

	MinStep = StepFacilityType
	MaxStep = StepConfirmation
)

// ImageRef is a photo selected during the wizard. Only the metadata is
// persisted with the draft; binary payloads do not survive a reload.
type ImageRef struct {
	Name     string               `json:"name"`
	Category domain.ImageCategory `json:"category,omitempty"`
	Data     []byte               `json:"-"`
}

// Draft is the in-progress submission: form fields, selected images and the
// current step. It is the explicit serializable state the wizard owns.
type Draft struct {
	FormData domain.SubmissionForm `json:"formData"`
	Images   []ImageRef            `json:"images"`
	Step     int                   `json:"step"`
}

// NewDraft starts at the first step with nothing filled in.
func NewDraft() Draft {
	return Draft{
		Images: []ImageRef{},
		Step:   MinStep,
	}
}

// Store is the session-scoped key-value persistence behind the draft:
// redis-backed in production, in-memory for tests. Load returns nil data
// when the session has no draft.
type Store interface {
	Save(ctx context.Context, sessionID string, data []byte) error
	Load(ctx context.Context, sessionID string) ([]byte, error)
	Clear(ctx context.Context, sessionID string) error
}

// Wizard drives one submission draft for one session. Every mutation writes
// the draft back to the store so a reload within the session resumes where
// the user left off.
type Wizard struct {
	draft     Draft
	store     Store
	sessionID string
	logger    *zap.Logger
}

func New(store Store, sessionID string, logger *zap.Logger) *Wizard {
	return &Wizard{
		draft:     NewDraft(),
		store:     store,
		sessionID: sessionID,
		logger:    logger,
	}
}

// Attach restores a previously saved draft for this session, if any. A
// missing or unreadable draft leaves the fresh one in place.
func (w *Wizard) Attach(ctx context.Context) error {
	data, err := w.store.Load(ctx, w.sessionID)
	if err != nil {
		return fmt.Errorf("failed to load draft: %w", err)
	}
	if data == nil {
		return nil
	}

	var restored Draft
	if err := json.Unmarshal(data, &restored); err != nil {
		w.logger.Warn("Discarding unreadable draft", zap.String("session", w.sessionID), zap.Error(err))
		return nil
	}
	if restored.Step < MinStep || restored.Step > MaxStep {
		restored.Step = MinStep
	}
	if restored.Images == nil {
		restored.Images = []ImageRef{}
	}
	w.draft = restored
	return nil
}

func (w *Wizard) Draft() Draft {
	return w.draft
}

func (w *Wizard) Step() int {
	return w.draft.Step
}

// Next advances one step. Calling it at the last step is a no-op; the
// transition itself is total rather than trusting the caller to hide the
// control.
func (w *Wizard) Next(ctx context.Context) int {
	if w.draft.Step < MaxStep {
		w.draft.Step++
		w.save(ctx)
	}
	return w.draft.Step
}

// Back retreats one step; a no-op at the first step.
func (w *Wizard) Back(ctx context.Context) int {
	if w.draft.Step > MinStep {
		w.draft.Step--
		w.save(ctx)
	}
	return w.draft.Step
}

// UpdateForm mutates the form fields in place and persists the draft.
func (w *Wizard) UpdateForm(ctx context.Context, mutate func(*domain.SubmissionForm)) {
	mutate(&w.draft.FormData)
	w.save(ctx)
}

// AddImage records a selected photo.
func (w *Wizard) AddImage(ctx context.Context, ref ImageRef) {
	w.draft.Images = append(w.draft.Images, ref)
	w.save(ctx)
}

// RemoveImage drops a selection by index; out-of-range indexes are ignored.
func (w *Wizard) RemoveImage(ctx context.Context, index int) {
	if index < 0 || index >= len(w.draft.Images) {
		return
	}
	w.draft.Images = append(w.draft.Images[:index], w.draft.Images[index+1:]...)
	w.save(ctx)
}

// Clear wipes the draft, both in memory and in the store.
func (w *Wizard) Clear(ctx context.Context) {
	w.draft = NewDraft()
	if err := w.store.Clear(ctx, w.sessionID); err != nil {
		w.logger.Warn("Failed to clear draft", zap.String("session", w.sessionID), zap.Error(err))
	}
}

// save is best-effort: a full draft store must not block the user from
// continuing to edit.
func (w *Wizard) save(ctx context.Context) {
	data, err := json.Marshal(w.draft)
	if err != nil {
		w.logger.Warn("Failed to serialize draft", zap.String("session", w.sessionID), zap.Error(err))
		return
	}
	if err := w.store.Save(ctx, w.sessionID, data); err != nil {
		w.logger.Warn("Failed to save draft", zap.String("session", w.sessionID), zap.Error(err))
	}
}
