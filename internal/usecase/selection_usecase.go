package usecase

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"web_estimate/internal/domain/catalog"
	"web_estimate/internal/domain/entities"
	"web_estimate/internal/domain/pricing"
	"web_estimate/internal/domain/selection"
	"web_estimate/internal/usecase/interfaces"
)

var (
	ErrInvalidSessionID       = errors.New("invalid session id")
	ErrUnknownItem            = errors.New("unknown pricing item")
	ErrUnknownPageCountOption = errors.New("unknown page count option")
	ErrInvalidPlan            = errors.New("invalid plan")
	ErrResetNotConfirmed      = errors.New("reset requires confirmation")
)

// SelectionView is the selection together with its freshly computed price.
type SelectionView struct {
	State       entities.SavedState
	Calculation entities.PriceCalculation
	ItemCount   int
}

// ISelectionUseCase drives the Selection State Manager for one session at a time.
//
// Behavior:
//   - Load is the page-load entry point: without the restore signal the saved
//     state is cleared and a fresh selection starts.
//   - Every Load ends the document view, so the page is back in Editing.
//   - Every mutation is mirrored to the persisted state.
//   - Quantities on fixed-price items and quantities below 1 are ignored.

type ISelectionUseCase interface {
	Load(ctx context.Context, sessionID string, restore bool) (SelectionView, error)
	Get(ctx context.Context, sessionID string) (SelectionView, error)
	ToggleItem(ctx context.Context, sessionID, itemID string) (SelectionView, error)
	SetQuantity(ctx context.Context, sessionID, itemID string, quantity int) (SelectionView, error)
	SetPageCount(ctx context.Context, sessionID, itemID, optionID string) (SelectionView, error)
	SetFunctions(ctx context.Context, sessionID string, functionIDs []string) (SelectionView, error)
	SetPlan(ctx context.Context, sessionID string, plan entities.PlanType) (SelectionView, error)
	Reset(ctx context.Context, sessionID string, confirmed bool) (SelectionView, error)
}

type SelectionUseCase struct {
	catalog     *catalog.Catalog
	calc        *pricing.Calculator
	cache       *SelectionCache
	persistence *StatePersistence
	sessions    interfaces.ISessionStore
	log         *zap.Logger
}

var _ ISelectionUseCase = (*SelectionUseCase)(nil)

func NewSelectionUseCase(c *catalog.Catalog, calc *pricing.Calculator, cache *SelectionCache, persistence *StatePersistence, sessions interfaces.ISessionStore, log *zap.Logger) *SelectionUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &SelectionUseCase{catalog: c, calc: calc, cache: cache, persistence: persistence, sessions: sessions, log: log}
}

func (u *SelectionUseCase) Load(ctx context.Context, sessionID string, restore bool) (SelectionView, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return SelectionView{}, ErrInvalidSessionID
	}

	if u.sessions != nil {
		if err := u.sessions.Delete(ctx, sessionKey(sessionID, DocumentKey)); err != nil {
			u.log.Error("[selection][usecase] close document view failed", zap.String("session_id", sessionID), zap.Error(err))
			return SelectionView{}, err
		}
	}

	sel := selection.New(u.catalog, u.calc)
	if restore {
		if saved := u.persistence.LoadState(ctx, sessionID); saved != nil {
			sel = selection.FromState(u.catalog, u.calc, *saved)
		}
	} else {
		u.persistence.ClearState(ctx, sessionID)
	}
	u.cache.Replace(sessionID, sel)
	u.log.Info("[selection][usecase] load", zap.String("session_id", sessionID), zap.Bool("restore", restore), zap.Int("items", sel.ItemCount()))
	return u.view(sel), nil
}

func (u *SelectionUseCase) Get(ctx context.Context, sessionID string) (SelectionView, error) {
	var v SelectionView
	err := u.with(ctx, sessionID, func(sel *selection.Selection) error {
		v = u.view(sel)
		return nil
	})
	return v, err
}

func (u *SelectionUseCase) ToggleItem(ctx context.Context, sessionID, itemID string) (SelectionView, error) {
	itemID = strings.TrimSpace(itemID)
	if u.catalog.Item(itemID) == nil {
		return SelectionView{}, ErrUnknownItem
	}
	return u.mutate(ctx, sessionID, func(sel *selection.Selection) (bool, error) {
		return sel.ToggleItem(itemID), nil
	})
}

func (u *SelectionUseCase) SetQuantity(ctx context.Context, sessionID, itemID string, quantity int) (SelectionView, error) {
	itemID = strings.TrimSpace(itemID)
	if u.catalog.Item(itemID) == nil {
		return SelectionView{}, ErrUnknownItem
	}
	return u.mutate(ctx, sessionID, func(sel *selection.Selection) (bool, error) {
		return sel.SetQuantity(itemID, quantity), nil
	})
}

func (u *SelectionUseCase) SetPageCount(ctx context.Context, sessionID, itemID, optionID string) (SelectionView, error) {
	itemID = strings.TrimSpace(itemID)
	if u.catalog.Item(itemID) == nil {
		return SelectionView{}, ErrUnknownItem
	}
	if u.catalog.PageCountOption(optionID) == nil {
		return SelectionView{}, ErrUnknownPageCountOption
	}
	return u.mutate(ctx, sessionID, func(sel *selection.Selection) (bool, error) {
		return sel.SetPageCount(itemID, optionID), nil
	})
}

func (u *SelectionUseCase) SetFunctions(ctx context.Context, sessionID string, functionIDs []string) (SelectionView, error) {
	return u.mutate(ctx, sessionID, func(sel *selection.Selection) (bool, error) {
		return sel.SetFunctions(functionIDs), nil
	})
}

func (u *SelectionUseCase) SetPlan(ctx context.Context, sessionID string, plan entities.PlanType) (SelectionView, error) {
	if !plan.Valid() {
		return SelectionView{}, ErrInvalidPlan
	}
	return u.mutate(ctx, sessionID, func(sel *selection.Selection) (bool, error) {
		return sel.SetPlan(plan), nil
	})
}

func (u *SelectionUseCase) Reset(ctx context.Context, sessionID string, confirmed bool) (SelectionView, error) {
	return u.mutate(ctx, sessionID, func(sel *selection.Selection) (bool, error) {
		if !sel.Reset(confirmed) {
			return false, ErrResetNotConfirmed
		}
		u.log.Info("[selection][usecase] reset", zap.String("session_id", sessionID))
		return true, nil
	})
}

func (u *SelectionUseCase) mutate(ctx context.Context, sessionID string, fn func(*selection.Selection) (bool, error)) (SelectionView, error) {
	sessionID = strings.TrimSpace(sessionID)
	var v SelectionView
	err := u.with(ctx, sessionID, func(sel *selection.Selection) error {
		changed, err := fn(sel)
		if err != nil {
			return err
		}
		if changed {
			u.persistence.SaveState(ctx, sessionID, sel.State())
		}
		v = u.view(sel)
		return nil
	})
	return v, err
}

func (u *SelectionUseCase) with(ctx context.Context, sessionID string, fn func(*selection.Selection) error) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ErrInvalidSessionID
	}
	var err error
	u.cache.Do(sessionID, func() *selection.Selection {
		// The persisted record mirrors the live selection, so it rebuilds an evicted entry.
		if saved := u.persistence.LoadState(ctx, sessionID); saved != nil {
			return selection.FromState(u.catalog, u.calc, *saved)
		}
		return selection.New(u.catalog, u.calc)
	}, func(sel *selection.Selection) {
		err = fn(sel)
	})
	return err
}

func (u *SelectionUseCase) view(sel *selection.Selection) SelectionView {
	return SelectionView{
		State:       sel.State(),
		Calculation: sel.Calculation(),
		ItemCount:   sel.ItemCount(),
	}
}
