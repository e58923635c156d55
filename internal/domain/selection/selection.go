package selection

import (
	"sort"

	"web_estimate/internal/domain/catalog"
	"web_estimate/internal/domain/entities"
	"web_estimate/internal/domain/pricing"
)

// urgentByPlan is the plan to urgency transition table. Urgency is never set on its own.
var urgentByPlan = map[entities.PlanType]bool{
	entities.PlanCoding: false,
	entities.PlanDesign: false,
	entities.PlanUrgent: true,
}

// Selection is the visitor's current choice of coding and design items.
//
// Mutators report whether anything changed. Inputs that make no sense for the
// target item (unknown ids, quantities on fixed-price items) are ignored.
type Selection struct {
	catalog *catalog.Catalog
	calc    *pricing.Calculator

	coding     map[string]struct{}
	design     map[string]struct{}
	quantities map[string]int
	functions  []string
	plan       entities.PlanType
}

func New(c *catalog.Catalog, calc *pricing.Calculator) *Selection {
	return &Selection{
		catalog:    c,
		calc:       calc,
		coding:     map[string]struct{}{},
		design:     map[string]struct{}{},
		quantities: map[string]int{},
		plan:       entities.PlanCoding,
	}
}

// FromState rebuilds a selection from a saved state. Each id lands in the
// set its catalog category names, whichever list it was saved under, so
// legacy records that kept design ids in selectedItems restore intact. Ids
// missing from the catalog are dropped and an unrecognised plan falls back
// to coding.
func FromState(c *catalog.Catalog, calc *pricing.Calculator, state entities.SavedState) *Selection {
	s := New(c, calc)
	for _, items := range [][]entities.SelectedItem{state.CodingItems, state.DesignItems} {
		for _, it := range items {
			switch {
			case c.IsCoding(it.ItemID):
				s.restore(s.coding, it)
			case c.IsDesign(it.ItemID):
				s.restore(s.design, it)
			}
		}
	}
	if state.SelectedPlan.Valid() {
		s.plan = state.SelectedPlan
	}
	return s
}

func (s *Selection) restore(set map[string]struct{}, it entities.SelectedItem) {
	set[it.ItemID] = struct{}{}
	if item := s.catalog.Item(it.ItemID); item != nil && item.IsQuantifiable && it.Quantity >= 1 {
		s.quantities[it.ItemID] = it.Quantity
	}
	if it.ItemID == catalog.OtherFunctionsID {
		s.functions = s.catalog.SortFunctionIDs(it.SelectedFunctions)
	}
}

func (s *Selection) setFor(id string) map[string]struct{} {
	switch {
	case s.catalog.IsCoding(id):
		return s.coding
	case s.catalog.IsDesign(id):
		return s.design
	}
	return nil
}

// ToggleItem adds the item when absent and removes it when present. Removing an
// item forgets its quantity and, for other-functions, its sub-functions.
func (s *Selection) ToggleItem(id string) bool {
	set := s.setFor(id)
	if set == nil {
		return false
	}
	if _, ok := set[id]; ok {
		delete(set, id)
		delete(s.quantities, id)
		if id == catalog.OtherFunctionsID {
			s.functions = nil
		}
		return true
	}
	set[id] = struct{}{}
	return true
}

// SetQuantity overwrites the quantity of a quantifiable item.
func (s *Selection) SetQuantity(id string, quantity int) bool {
	item := s.catalog.Item(id)
	if item == nil || !item.IsQuantifiable || quantity < 1 {
		return false
	}
	s.quantities[id] = quantity
	return true
}

// SetPageCount applies a page-count tier to a quantifiable item.
func (s *Selection) SetPageCount(id, optionID string) bool {
	opt := s.catalog.PageCountOption(optionID)
	if opt == nil {
		return false
	}
	return s.SetQuantity(id, opt.Value)
}

// SetFunctions replaces the other-functions sub-selection. A non-empty list
// selects other-functions, an empty one deselects it.
func (s *Selection) SetFunctions(ids []string) bool {
	if s.catalog.Item(catalog.OtherFunctionsID) == nil {
		return false
	}
	s.functions = s.catalog.SortFunctionIDs(ids)
	set := s.setFor(catalog.OtherFunctionsID)
	if len(s.functions) == 0 {
		delete(set, catalog.OtherFunctionsID)
		s.functions = nil
		return true
	}
	set[catalog.OtherFunctionsID] = struct{}{}
	return true
}

func (s *Selection) SetPlan(plan entities.PlanType) bool {
	if !plan.Valid() {
		return false
	}
	s.plan = plan
	return true
}

// Reset clears every selection, quantity and the plan. Nothing happens unless
// confirmed is true.
func (s *Selection) Reset(confirmed bool) bool {
	if !confirmed {
		return false
	}
	s.coding = map[string]struct{}{}
	s.design = map[string]struct{}{}
	s.quantities = map[string]int{}
	s.functions = nil
	s.plan = entities.PlanCoding
	return true
}

func (s *Selection) Plan() entities.PlanType { return s.plan }

func (s *Selection) IsUrgent() bool { return urgentByPlan[s.plan] }

func (s *Selection) IsSelected(id string) bool {
	set := s.setFor(id)
	if set == nil {
		return false
	}
	_, ok := set[id]
	return ok
}

// Quantity is the recorded quantity for id, 1 when nothing was recorded.
func (s *Selection) Quantity(id string) int {
	if q, ok := s.quantities[id]; ok {
		return q
	}
	return 1
}

func (s *Selection) Functions() []string {
	return append([]string(nil), s.functions...)
}

func (s *Selection) ItemCount() int {
	return len(s.coding) + len(s.design)
}

// State is the persisted form: items in catalog order with prices computed
// from base price, quantity and tier multiplier.
func (s *Selection) State() entities.SavedState {
	return entities.SavedState{
		CodingItems:  s.items(s.coding),
		DesignItems:  s.items(s.design),
		SelectedPlan: s.plan,
		IsUrgent:     s.IsUrgent(),
	}
}

// Calculation recomputes the price breakdown. No price is cached.
func (s *Selection) Calculation() entities.PriceCalculation {
	state := s.State()
	return s.calc.CalculatePrice(state.CodingItems, state.DesignItems, state.IsUrgent)
}

func (s *Selection) items(set map[string]struct{}) []entities.SelectedItem {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return s.catalog.Index(ids[i]) < s.catalog.Index(ids[j])
	})

	items := make([]entities.SelectedItem, 0, len(ids))
	for _, id := range ids {
		items = append(items, s.selectedItem(id))
	}
	return items
}

func (s *Selection) selectedItem(id string) entities.SelectedItem {
	item := s.catalog.Item(id)
	switch {
	case id == catalog.OtherFunctionsID:
		return entities.SelectedItem{
			ItemID:            id,
			Quantity:          1,
			Price:             s.calc.FunctionsPrice(s.functions),
			SelectedFunctions: s.Functions(),
		}
	case item.IsQuantifiable:
		qty := s.Quantity(id)
		return entities.SelectedItem{
			ItemID:   id,
			Quantity: qty,
			Price:    pricing.CalculatePagePrice(item.BasePrice, qty, s.catalog.TierMultiplier(qty)),
		}
	default:
		return entities.SelectedItem{ItemID: id, Quantity: 1, Price: item.BasePrice}
	}
}
