package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"web_estimate/internal/domain/catalog"
	"web_estimate/internal/domain/entities"
	"web_estimate/internal/domain/pricing"
	"web_estimate/internal/infrastructure/storage"
)

func newSelectionUseCase(store *storage.MemoryStore) (*SelectionUseCase, *StatePersistence) {
	return newSelectionUseCaseWithSessions(store, storage.NewMemoryStore(0, nil))
}

func newSelectionUseCaseWithSessions(store, sessions *storage.MemoryStore) (*SelectionUseCase, *StatePersistence) {
	c := catalog.Default()
	p := NewStatePersistence(store, nil, nil)
	return NewSelectionUseCase(c, pricing.NewCalculator(c), NewSelectionCache(time.Hour, nil), p, sessions, nil), p
}

func TestSelectionUseCase_Load_RestoreGating(t *testing.T) {
	ctx := context.Background()
	saved := entities.SavedState{
		CodingItems:  []entities.SelectedItem{{ItemID: "top-page", Quantity: 1, Price: 30000}},
		DesignItems:  []entities.SelectedItem{},
		SelectedPlan: entities.PlanCoding,
	}

	t.Run("without restore signal clears saved state", func(t *testing.T) {
		uc, p := newSelectionUseCase(storage.NewMemoryStore(0, nil))
		p.SaveState(ctx, testSession, saved)

		view, err := uc.Load(ctx, testSession, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.ItemCount != 0 {
			t.Fatalf("expected fresh selection, got %d items", view.ItemCount)
		}
		if got := p.LoadState(ctx, testSession); got != nil {
			t.Fatalf("expected saved state cleared, got %+v", got)
		}
	})

	t.Run("with restore signal resumes", func(t *testing.T) {
		uc, p := newSelectionUseCase(storage.NewMemoryStore(0, nil))
		p.SaveState(ctx, testSession, saved)

		view, err := uc.Load(ctx, testSession, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.ItemCount != 1 || view.Calculation.Total != 33000 {
			t.Fatalf("unexpected restored view: %+v", view)
		}
	})

	t.Run("restore with nothing saved starts fresh", func(t *testing.T) {
		uc, _ := newSelectionUseCase(storage.NewMemoryStore(0, nil))
		view, err := uc.Load(ctx, testSession, true)
		if err != nil || view.ItemCount != 0 {
			t.Fatalf("expected empty view, got %+v err=%v", view, err)
		}
	})

	t.Run("empty session id", func(t *testing.T) {
		uc, _ := newSelectionUseCase(storage.NewMemoryStore(0, nil))
		if _, err := uc.Load(ctx, " ", false); !errors.Is(err, ErrInvalidSessionID) {
			t.Fatalf("expected ErrInvalidSessionID, got %v", err)
		}
	})
}

func TestSelectionUseCase_Mutations(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore(0, nil)
	uc, p := newSelectionUseCase(store)

	if _, err := uc.Load(ctx, testSession, false); err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := uc.ToggleItem(ctx, testSession, "top-page"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if _, err := uc.ToggleItem(ctx, testSession, "sub-page"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	view, err := uc.SetQuantity(ctx, testSession, "sub-page", 3)
	if err != nil {
		t.Fatalf("quantity: %v", err)
	}
	if view.Calculation.Subtotal != 45000 || view.Calculation.Total != 49500 {
		t.Fatalf("unexpected calculation: %+v", view.Calculation)
	}

	view, err = uc.SetPlan(ctx, testSession, entities.PlanUrgent)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if !view.State.IsUrgent || view.Calculation.Total != 59400 {
		t.Fatalf("expected urgent total 59400, got %+v", view.Calculation)
	}

	saved := p.LoadState(ctx, testSession)
	if saved == nil || saved.SelectedPlan != entities.PlanUrgent || len(saved.CodingItems) != 2 {
		t.Fatalf("expected mutations mirrored to storage, got %+v", saved)
	}
}

func TestSelectionUseCase_QuantityOnFixedItemIsIgnored(t *testing.T) {
	ctx := context.Background()
	uc, _ := newSelectionUseCase(storage.NewMemoryStore(0, nil))
	_, _ = uc.ToggleItem(ctx, testSession, "top-page")

	view, err := uc.SetQuantity(ctx, testSession, "top-page", 4)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if view.State.CodingItems[0].Quantity != 1 || view.Calculation.Subtotal != 30000 {
		t.Fatalf("expected quantity ignored, got %+v", view.State)
	}
}

func TestSelectionUseCase_PageCountAndFunctions(t *testing.T) {
	ctx := context.Background()
	uc, _ := newSelectionUseCase(storage.NewMemoryStore(0, nil))
	_, _ = uc.ToggleItem(ctx, testSession, "design-sub")

	view, err := uc.SetPageCount(ctx, testSession, "design-sub", "20")
	if err != nil {
		t.Fatalf("page count: %v", err)
	}
	if view.Calculation.DesignSubtotal != 480000 {
		t.Fatalf("expected 20 pages at 1.2, got %d", view.Calculation.DesignSubtotal)
	}

	if _, err := uc.SetPageCount(ctx, testSession, "design-sub", "100"); !errors.Is(err, ErrUnknownPageCountOption) {
		t.Fatalf("expected ErrUnknownPageCountOption, got %v", err)
	}

	view, err = uc.SetFunctions(ctx, testSession, []string{"modal", "slider"})
	if err != nil {
		t.Fatalf("functions: %v", err)
	}
	if len(view.Calculation.CodingItems) != 2 || view.Calculation.CodingSubtotal != 15000 {
		t.Fatalf("expected expanded function lines, got %+v", view.Calculation.CodingItems)
	}
}

func TestSelectionUseCase_Errors(t *testing.T) {
	ctx := context.Background()
	uc, _ := newSelectionUseCase(storage.NewMemoryStore(0, nil))

	if _, err := uc.ToggleItem(ctx, testSession, "nope"); !errors.Is(err, ErrUnknownItem) {
		t.Fatalf("expected ErrUnknownItem, got %v", err)
	}
	if _, err := uc.SetQuantity(ctx, testSession, "nope", 2); !errors.Is(err, ErrUnknownItem) {
		t.Fatalf("expected ErrUnknownItem, got %v", err)
	}
	if _, err := uc.SetPlan(ctx, testSession, "express"); !errors.Is(err, ErrInvalidPlan) {
		t.Fatalf("expected ErrInvalidPlan, got %v", err)
	}
	if _, err := uc.Get(ctx, ""); !errors.Is(err, ErrInvalidSessionID) {
		t.Fatalf("expected ErrInvalidSessionID, got %v", err)
	}
}

func TestSelectionUseCase_Reset(t *testing.T) {
	ctx := context.Background()
	uc, p := newSelectionUseCase(storage.NewMemoryStore(0, nil))
	_, _ = uc.ToggleItem(ctx, testSession, "logo")

	view, err := uc.Reset(ctx, testSession, false)
	if !errors.Is(err, ErrResetNotConfirmed) {
		t.Fatalf("expected ErrResetNotConfirmed, got %v", err)
	}
	if view, _ = uc.Get(ctx, testSession); view.ItemCount != 1 {
		t.Fatalf("expected selection untouched, got %d items", view.ItemCount)
	}

	view, err = uc.Reset(ctx, testSession, true)
	if err != nil || view.ItemCount != 0 {
		t.Fatalf("expected empty selection, got %+v err=%v", view, err)
	}
	if saved := p.LoadState(ctx, testSession); saved == nil || saved.ItemCount() != 0 {
		t.Fatalf("expected reset mirrored, got %+v", saved)
	}
}

func TestSelectionUseCase_RebuildsFromStorageAfterEviction(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore(0, nil)
	uc, _ := newSelectionUseCase(store)
	_, _ = uc.ToggleItem(ctx, testSession, "wordpress")

	fresh, _ := newSelectionUseCase(store)
	view, err := fresh.Get(ctx, testSession)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if view.ItemCount != 1 || view.State.CodingItems[0].ItemID != "wordpress" {
		t.Fatalf("expected selection rebuilt from storage, got %+v", view.State)
	}
}

func TestSelectionUseCase_LoadEndsDocumentView(t *testing.T) {
	ctx := context.Background()
	for _, restore := range []bool{false, true} {
		sessions := storage.NewMemoryStore(0, nil)
		uc, _ := newSelectionUseCaseWithSessions(storage.NewMemoryStore(0, nil), sessions)
		_ = sessions.Set(ctx, sessionKey(testSession, DocumentKey), `{"estimateNumber":"EST-20250615-0427"}`)
		_ = sessions.Set(ctx, sessionKey("other", DocumentKey), `{"estimateNumber":"EST-20250615-0001"}`)

		if _, err := uc.Load(ctx, testSession, restore); err != nil {
			t.Fatalf("load(restore=%v): %v", restore, err)
		}
		if _, ok, _ := sessions.Get(ctx, sessionKey(testSession, DocumentKey)); ok {
			t.Fatalf("load(restore=%v) left the document view open", restore)
		}
		if _, ok, _ := sessions.Get(ctx, sessionKey("other", DocumentKey)); !ok {
			t.Fatalf("load(restore=%v) touched another session", restore)
		}
	}
}

func TestSelectionUseCase_LoadRestoresLegacyDesignItems(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore(0, nil)
	legacy := `{"selectedItems":[{"itemId":"top-page","quantity":1,"price":30000},{"itemId":"logo","quantity":1,"price":30000}],"selectedPlan":"coding","isUrgent":false}`
	_ = store.Set(ctx, sessionKey(testSession, StateKey), legacy)
	uc, _ := newSelectionUseCase(store)

	view, err := uc.Load(ctx, testSession, true)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if view.ItemCount != 2 || view.Calculation.Subtotal != 60000 || view.Calculation.DesignSubtotal != 30000 {
		t.Fatalf("unexpected restored view: %+v", view.Calculation)
	}
	if len(view.State.DesignItems) != 1 || view.State.DesignItems[0].ItemID != "logo" {
		t.Fatalf("expected logo restored as a design item, got %+v", view.State.DesignItems)
	}
	if len(view.State.CodingItems) != 1 || view.State.CodingItems[0].ItemID != "top-page" {
		t.Fatalf("unexpected coding items %+v", view.State.CodingItems)
	}
}
