package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"web_estimate/internal/domain/entities"
	"web_estimate/internal/usecase/interfaces"
)

const (
	// StateKey is the storage key of the saved selection.
	StateKey = "pricing-calculator-state"

	restoreSignal = "true"
)

// ShouldRestore reports whether a page load asked to resume the saved selection.
// Only the exact value "true" counts.
func ShouldRestore(query string) bool {
	return query == restoreSignal
}

func sessionKey(sessionID, name string) string {
	return sessionID + ":" + name
}

// StatePersistence mirrors selection state into long-lived storage.
//
// Persistence is best-effort: write and read failures are logged and counted,
// never returned. A missing or unreadable record loads as nil.
type StatePersistence struct {
	store   interfaces.IKeyValueStore
	log     *zap.Logger
	metrics interfaces.IMetrics
}

func NewStatePersistence(store interfaces.IKeyValueStore, log *zap.Logger, metrics interfaces.IMetrics) *StatePersistence {
	if log == nil {
		log = zap.NewNop()
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &StatePersistence{store: store, log: log, metrics: metrics}
}

// storedState accepts both the current and the legacy record shape.
type storedState struct {
	CodingItems   *[]entities.SelectedItem `json:"codingItems"`
	DesignItems   []entities.SelectedItem  `json:"designItems"`
	SelectedItems *[]entities.SelectedItem `json:"selectedItems"`
	SelectedPlan  entities.PlanType        `json:"selectedPlan"`
	IsUrgent      bool                     `json:"isUrgent"`
}

func (p *StatePersistence) SaveState(ctx context.Context, sessionID string, state entities.SavedState) {
	raw, err := json.Marshal(normalizeState(state))
	if err != nil {
		p.log.Warn("[state][persistence] marshal failed", zap.String("session_id", sessionID), zap.Error(err))
		p.metrics.PersistenceFailure("save")
		return
	}
	if err := p.store.Set(ctx, sessionKey(sessionID, StateKey), string(raw)); err != nil {
		p.log.Warn("[state][persistence] save failed", zap.String("session_id", sessionID), zap.Error(err))
		p.metrics.PersistenceFailure("save")
	}
}

// LoadState returns the saved selection, migrating the legacy
// {selectedItems,...} shape in place when found.
func (p *StatePersistence) LoadState(ctx context.Context, sessionID string) *entities.SavedState {
	raw, found, err := p.store.Get(ctx, sessionKey(sessionID, StateKey))
	if err != nil {
		p.log.Warn("[state][persistence] load failed", zap.String("session_id", sessionID), zap.Error(err))
		p.metrics.PersistenceFailure("load")
		return nil
	}
	if !found || strings.TrimSpace(raw) == "" || strings.TrimSpace(raw) == "null" {
		return nil
	}

	var stored storedState
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		p.log.Info("[state][persistence] ignoring unreadable state", zap.String("session_id", sessionID), zap.Error(err))
		return nil
	}

	state, migrated := fromStored(stored)
	if migrated {
		p.log.Info("[state][persistence] migrated legacy state", zap.String("session_id", sessionID), zap.Int("items", state.ItemCount()))
		p.SaveState(ctx, sessionID, state)
	}
	return &state
}

func (p *StatePersistence) ClearState(ctx context.Context, sessionID string) {
	if err := p.store.Delete(ctx, sessionKey(sessionID, StateKey)); err != nil {
		p.log.Warn("[state][persistence] clear failed", zap.String("session_id", sessionID), zap.Error(err))
		p.metrics.PersistenceFailure("clear")
	}
}

func fromStored(s storedState) (entities.SavedState, bool) {
	state := entities.SavedState{
		DesignItems:  s.DesignItems,
		SelectedPlan: s.SelectedPlan,
		IsUrgent:     s.IsUrgent,
	}
	migrated := false
	switch {
	case s.CodingItems != nil:
		state.CodingItems = *s.CodingItems
	case s.SelectedItems != nil:
		state.CodingItems = *s.SelectedItems
		state.DesignItems = nil
		migrated = true
	}
	if !state.SelectedPlan.Valid() {
		state.SelectedPlan = entities.PlanCoding
	}
	return normalizeState(state), migrated
}

func normalizeState(s entities.SavedState) entities.SavedState {
	if s.CodingItems == nil {
		s.CodingItems = []entities.SelectedItem{}
	}
	if s.DesignItems == nil {
		s.DesignItems = []entities.SelectedItem{}
	}
	return s
}
