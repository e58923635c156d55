package catalog

import (
	"sort"

	"web_estimate/internal/domain/entities"
)

// Catalog is the read-only price registry. Lookups that miss return nil.
type Catalog struct {
	coding     []entities.PricingItem
	design     []entities.PricingItem
	plans      []entities.Plan
	pageCounts []entities.PageCountOption
	functions  []entities.OtherFunction
	config     entities.EstimateConfig

	itemIndex     map[string]int
	functionIndex map[string]int
	codingIDs     map[string]struct{}
	designIDs     map[string]struct{}
}

func New(
	coding, design []entities.PricingItem,
	plans []entities.Plan,
	pageCounts []entities.PageCountOption,
	functions []entities.OtherFunction,
	cfg entities.EstimateConfig,
) *Catalog {
	c := &Catalog{
		coding:        append([]entities.PricingItem(nil), coding...),
		design:        append([]entities.PricingItem(nil), design...),
		plans:         append([]entities.Plan(nil), plans...),
		pageCounts:    append([]entities.PageCountOption(nil), pageCounts...),
		functions:     append([]entities.OtherFunction(nil), functions...),
		config:        cfg,
		itemIndex:     make(map[string]int, len(coding)+len(design)),
		functionIndex: make(map[string]int, len(functions)),
		codingIDs:     make(map[string]struct{}, len(coding)),
		designIDs:     make(map[string]struct{}, len(design)),
	}

	pos := 0
	for _, it := range c.coding {
		c.itemIndex[it.ID] = pos
		c.codingIDs[it.ID] = struct{}{}
		pos++
	}
	for _, it := range c.design {
		c.itemIndex[it.ID] = pos
		c.designIDs[it.ID] = struct{}{}
		pos++
	}
	for i, fn := range c.functions {
		c.functionIndex[fn.ID] = i
	}
	return c
}

// Default returns the studio price list.
func Default() *Catalog {
	return New(defaultCodingItems, defaultDesignItems, defaultPlans, defaultPageCountOptions, defaultOtherFunctions, defaultEstimateConfig)
}

func (c *Catalog) CodingItems() []entities.PricingItem {
	return append([]entities.PricingItem(nil), c.coding...)
}

func (c *Catalog) DesignItems() []entities.PricingItem {
	return append([]entities.PricingItem(nil), c.design...)
}

func (c *Catalog) Plans() []entities.Plan {
	return append([]entities.Plan(nil), c.plans...)
}

func (c *Catalog) PageCountOptions() []entities.PageCountOption {
	return append([]entities.PageCountOption(nil), c.pageCounts...)
}

func (c *Catalog) OtherFunctions() []entities.OtherFunction {
	return append([]entities.OtherFunction(nil), c.functions...)
}

func (c *Catalog) EstimateConfig() entities.EstimateConfig {
	return c.config
}

// Item resolves an id against the coding list first, then the design list.
func (c *Catalog) Item(id string) *entities.PricingItem {
	if it := c.CodingItem(id); it != nil {
		return it
	}
	return c.DesignItem(id)
}

func (c *Catalog) CodingItem(id string) *entities.PricingItem {
	if _, ok := c.codingIDs[id]; !ok {
		return nil
	}
	it := c.coding[c.itemIndex[id]]
	return &it
}

func (c *Catalog) DesignItem(id string) *entities.PricingItem {
	if _, ok := c.designIDs[id]; !ok {
		return nil
	}
	it := c.design[c.itemIndex[id]-len(c.coding)]
	return &it
}

func (c *Catalog) IsCoding(id string) bool {
	_, ok := c.codingIDs[id]
	return ok
}

func (c *Catalog) IsDesign(id string) bool {
	_, ok := c.designIDs[id]
	return ok
}

// Index is the item's position in catalog order. Unknown ids sort after every known item.
func (c *Catalog) Index(id string) int {
	if i, ok := c.itemIndex[id]; ok {
		return i
	}
	return len(c.itemIndex)
}

func (c *Catalog) OtherFunction(id string) *entities.OtherFunction {
	i, ok := c.functionIndex[id]
	if !ok {
		return nil
	}
	fn := c.functions[i]
	return &fn
}

// SortFunctionIDs returns the known function ids, de-duplicated, in sub-catalog order.
func (c *Catalog) SortFunctionIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := c.functionIndex[id]; !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return c.functionIndex[out[i]] < c.functionIndex[out[j]]
	})
	return out
}

func (c *Catalog) PageCountOption(id string) *entities.PageCountOption {
	for _, opt := range c.pageCounts {
		if opt.ID == id {
			o := opt
			return &o
		}
	}
	return nil
}

// TierMultiplier returns the multiplier of the largest tier whose value does not
// exceed quantity, or nil when no multiplier applies.
func (c *Catalog) TierMultiplier(quantity int) *float64 {
	var (
		best      *float64
		bestValue int
	)
	for _, opt := range c.pageCounts {
		if opt.Value > quantity || opt.Value < bestValue {
			continue
		}
		bestValue = opt.Value
		if opt.Multiplier != nil {
			m := *opt.Multiplier
			best = &m
		} else {
			best = nil
		}
	}
	return best
}

func (c *Catalog) Plan(t entities.PlanType) *entities.Plan {
	for _, p := range c.plans {
		if p.Type == t {
			pl := p
			return &pl
		}
	}
	return nil
}
