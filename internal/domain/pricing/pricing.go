package pricing

import (
	"math"
	"sort"

	"web_estimate/internal/domain/catalog"
	"web_estimate/internal/domain/entities"
)

// Calculator derives a PriceCalculation from a selection and the static catalog.
// It holds no state besides the catalog.
type Calculator struct {
	catalog *catalog.Catalog
}

func NewCalculator(c *catalog.Catalog) *Calculator {
	return &Calculator{catalog: c}
}

// CalculatePrice computes line items, subtotals, urgent fee, tax and total.
//
// urgentFee and tax are rounded independently before summing; total is the
// plain sum of already-rounded parts.
func (c *Calculator) CalculatePrice(coding, design []entities.SelectedItem, isUrgent bool) entities.PriceCalculation {
	cfg := c.catalog.EstimateConfig()

	codingLines := c.lines(coding)
	designLines := c.lines(design)

	codingSubtotal := sumLines(codingLines)
	designSubtotal := sumLines(designLines)
	subtotal := codingSubtotal + designSubtotal

	var urgentFee int64
	if isUrgent {
		urgentFee = Round(float64(subtotal) * cfg.UrgentFeeRate)
	}
	tax := Round(float64(subtotal+urgentFee) * cfg.TaxRate)

	return entities.PriceCalculation{
		CodingSubtotal: codingSubtotal,
		DesignSubtotal: designSubtotal,
		Subtotal:       subtotal,
		UrgentFee:      urgentFee,
		Tax:            tax,
		Total:          subtotal + urgentFee + tax,
		CodingItems:    codingLines,
		DesignItems:    designLines,
	}
}

func (c *Calculator) lines(items []entities.SelectedItem) []entities.LineItem {
	ordered := append([]entities.SelectedItem(nil), items...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return c.catalog.Index(ordered[i].ItemID) < c.catalog.Index(ordered[j].ItemID)
	})

	lines := make([]entities.LineItem, 0, len(ordered))
	for _, it := range ordered {
		if it.ItemID == catalog.OtherFunctionsID && len(it.SelectedFunctions) > 0 {
			lines = append(lines, c.functionLines(it.SelectedFunctions)...)
			continue
		}

		name := it.ItemID
		if item := c.catalog.Item(it.ItemID); item != nil {
			name = item.Name
		}
		unitPrice := it.Price
		if it.Quantity > 0 {
			unitPrice = Round(float64(it.Price) / float64(it.Quantity))
		}
		lines = append(lines, entities.LineItem{
			ItemID:     it.ItemID,
			Name:       name,
			Quantity:   it.Quantity,
			UnitPrice:  unitPrice,
			TotalPrice: it.Price,
		})
	}
	return lines
}

// functionLines expands "other-functions" into one line per known sub-function.
func (c *Calculator) functionLines(ids []string) []entities.LineItem {
	sorted := c.catalog.SortFunctionIDs(ids)
	lines := make([]entities.LineItem, 0, len(sorted))
	for _, id := range sorted {
		fn := c.catalog.OtherFunction(id)
		lines = append(lines, entities.LineItem{
			ItemID:     fn.ID,
			Name:       fn.Name,
			Quantity:   1,
			UnitPrice:  fn.Price,
			TotalPrice: fn.Price,
		})
	}
	return lines
}

// FunctionsPrice is the price of the "other-functions" item for the given sub-functions.
func (c *Calculator) FunctionsPrice(ids []string) int64 {
	var total int64
	for _, id := range c.catalog.SortFunctionIDs(ids) {
		total += c.catalog.OtherFunction(id).Price
	}
	return total
}

// CalculatePagePrice prices a quantifiable item. A nil multiplier or one <= 1
// yields the exact product; otherwise the product is scaled and rounded.
func CalculatePagePrice(basePrice int64, quantity int, multiplier *float64) int64 {
	if multiplier == nil || *multiplier <= 1 {
		return basePrice * int64(quantity)
	}
	return Round(float64(basePrice) * float64(quantity) * *multiplier)
}

// Round rounds half up to the nearest whole yen.
func Round(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}

func sumLines(lines []entities.LineItem) int64 {
	var total int64
	for _, l := range lines {
		total += l.TotalPrice
	}
	return total
}
