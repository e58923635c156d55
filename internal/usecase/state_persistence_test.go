package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"web_estimate/internal/domain/entities"
	"web_estimate/internal/infrastructure/storage"
	mock_interfaces "web_estimate/internal/usecase/interfaces/mocks"
)

const testSession = "session-1"

func TestShouldRestore(t *testing.T) {
	cases := map[string]bool{"true": true, "": false, "TRUE": false, "1": false, "false": false, "true ": false}
	for in, want := range cases {
		if got := ShouldRestore(in); got != want {
			t.Fatalf("ShouldRestore(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestStatePersistence_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore(0, nil)
	p := NewStatePersistence(store, nil, nil)

	state := entities.SavedState{
		CodingItems:  []entities.SelectedItem{{ItemID: "top-page", Quantity: 1, Price: 30000}, {ItemID: "other-functions", Quantity: 1, Price: 15000, SelectedFunctions: []string{"slider", "tab"}}},
		DesignItems:  []entities.SelectedItem{{ItemID: "banner", Quantity: 2, Price: 10000}},
		SelectedPlan: entities.PlanUrgent,
		IsUrgent:     true,
	}
	p.SaveState(ctx, testSession, state)

	first := p.LoadState(ctx, testSession)
	if first == nil {
		t.Fatalf("expected saved state")
	}
	p.SaveState(ctx, testSession, *first)
	second := p.LoadState(ctx, testSession)

	if !reflect.DeepEqual(state, *first) {
		t.Fatalf("first load mismatch: %+v", *first)
	}
	if !reflect.DeepEqual(*first, *second) {
		t.Fatalf("round trip not stable: %+v vs %+v", *first, *second)
	}
}

func TestStatePersistence_MigratesLegacyShape(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore(0, nil)
	p := NewStatePersistence(store, nil, nil)
	legacy := `{"selectedItems":[{"itemId":"top-page","quantity":1,"price":30000}],"selectedPlan":"coding","isUrgent":false}`
	if err := store.Set(ctx, sessionKey(testSession, StateKey), legacy); err != nil {
		t.Fatalf("seed: %v", err)
	}

	got := p.LoadState(ctx, testSession)

	want := entities.SavedState{
		CodingItems:  []entities.SelectedItem{{ItemID: "top-page", Quantity: 1, Price: 30000}},
		DesignItems:  []entities.SelectedItem{},
		SelectedPlan: entities.PlanCoding,
		IsUrgent:     false,
	}
	if got == nil || !reflect.DeepEqual(*got, want) {
		t.Fatalf("unexpected migration result: %+v", got)
	}

	raw, _, _ := store.Get(ctx, sessionKey(testSession, StateKey))
	wantRaw := `{"codingItems":[{"itemId":"top-page","quantity":1,"price":30000}],"designItems":[],"selectedPlan":"coding","isUrgent":false}`
	if raw != wantRaw {
		t.Fatalf("expected migrated record written back, got %s", raw)
	}

	again := p.LoadState(ctx, testSession)
	if again == nil || !reflect.DeepEqual(*again, want) {
		t.Fatalf("migration not idempotent: %+v", again)
	}
}

func TestStatePersistence_LegacyDefaults(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore(0, nil)
	p := NewStatePersistence(store, nil, nil)
	_ = store.Set(ctx, sessionKey(testSession, StateKey), `{"selectedItems":[]}`)

	got := p.LoadState(ctx, testSession)
	if got == nil {
		t.Fatalf("expected state")
	}
	if got.SelectedPlan != entities.PlanCoding || got.IsUrgent {
		t.Fatalf("expected defaults, got %+v", *got)
	}
	if got.CodingItems == nil || got.DesignItems == nil {
		t.Fatalf("expected non-nil slices")
	}
}

func TestStatePersistence_AbsentOrUnreadable(t *testing.T) {
	ctx := context.Background()

	t.Run("absent", func(t *testing.T) {
		p := NewStatePersistence(storage.NewMemoryStore(0, nil), nil, nil)
		if got := p.LoadState(ctx, testSession); got != nil {
			t.Fatalf("expected nil, got %+v", got)
		}
	})

	for name, raw := range map[string]string{"garbage": "{not json", "null": "null", "array": "[1,2]"} {
		t.Run(name, func(t *testing.T) {
			store := storage.NewMemoryStore(0, nil)
			_ = store.Set(ctx, sessionKey(testSession, StateKey), raw)
			p := NewStatePersistence(store, nil, nil)
			if got := p.LoadState(ctx, testSession); got != nil {
				t.Fatalf("expected nil, got %+v", got)
			}
		})
	}
}

func TestStatePersistence_FailuresAreLoggedNotReturned(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_interfaces.NewMockIKeyValueStore(ctrl)
	core, logs := observer.New(zapcore.WarnLevel)
	p := NewStatePersistence(store, zap.New(core), nil)

	store.EXPECT().Set(gomock.Any(), sessionKey(testSession, StateKey), gomock.Any()).Return(errors.New("quota exceeded"))
	store.EXPECT().Get(gomock.Any(), sessionKey(testSession, StateKey)).Return("", false, errors.New("unavailable"))
	store.EXPECT().Delete(gomock.Any(), sessionKey(testSession, StateKey)).Return(errors.New("unavailable"))

	p.SaveState(ctx, testSession, entities.SavedState{})
	if got := p.LoadState(ctx, testSession); got != nil {
		t.Fatalf("expected nil on read failure")
	}
	p.ClearState(ctx, testSession)

	if logs.Len() != 3 {
		t.Fatalf("expected 3 warnings, got %d", logs.Len())
	}
}
