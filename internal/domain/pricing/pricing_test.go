package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"web_estimate/internal/domain/catalog"
	"web_estimate/internal/domain/entities"
)

func ptr(v float64) *float64 { return &v }

func newCalculator() *Calculator {
	return NewCalculator(catalog.Default())
}

func TestCalculatePagePrice(t *testing.T) {
	assert.Equal(t, int64(55000), CalculatePagePrice(5000, 10, ptr(1.1)))
	assert.Equal(t, int64(15000), CalculatePagePrice(5000, 3, nil))
	assert.Equal(t, int64(15000), CalculatePagePrice(5000, 3, ptr(1.0)))
	assert.Equal(t, int64(15000), CalculatePagePrice(5000, 3, ptr(0.5)))
	assert.Equal(t, int64(120000), CalculatePagePrice(5000, 20, ptr(1.2)))
}

func TestRound_HalfUp(t *testing.T) {
	assert.Equal(t, int64(3), Round(2.5))
	assert.Equal(t, int64(2), Round(2.4999))
	assert.Equal(t, int64(9000), Round(45000*0.2))
	assert.Equal(t, int64(5400), Round(54000*0.1))
}

func TestCalculatePrice_TopAndSubPages(t *testing.T) {
	c := newCalculator()
	coding := []entities.SelectedItem{
		{ItemID: "top-page", Quantity: 1, Price: 30000},
		{ItemID: "sub-page", Quantity: 3, Price: CalculatePagePrice(5000, 3, ptr(1.0))},
	}

	got := c.CalculatePrice(coding, nil, false)

	assert.Equal(t, int64(45000), got.CodingSubtotal)
	assert.Equal(t, int64(0), got.DesignSubtotal)
	assert.Equal(t, int64(45000), got.Subtotal)
	assert.Equal(t, int64(0), got.UrgentFee)
	assert.Equal(t, int64(4500), got.Tax)
	assert.Equal(t, int64(49500), got.Total)

	require.Len(t, got.CodingItems, 2)
	assert.Equal(t, entities.LineItem{ItemID: "sub-page", Name: "下層ページ", Quantity: 3, UnitPrice: 5000, TotalPrice: 15000}, got.CodingItems[1])
	assert.Empty(t, got.DesignItems)
}

func TestCalculatePrice_Urgent(t *testing.T) {
	c := newCalculator()
	coding := []entities.SelectedItem{
		{ItemID: "top-page", Quantity: 1, Price: 30000},
		{ItemID: "sub-page", Quantity: 3, Price: 15000},
	}

	got := c.CalculatePrice(coding, nil, true)

	assert.Equal(t, int64(45000), got.Subtotal)
	assert.Equal(t, int64(9000), got.UrgentFee)
	assert.Equal(t, int64(5400), got.Tax)
	assert.Equal(t, int64(59400), got.Total)
}

func TestCalculatePrice_Empty(t *testing.T) {
	got := newCalculator().CalculatePrice(nil, nil, true)

	assert.Zero(t, got.Subtotal)
	assert.Zero(t, got.UrgentFee)
	assert.Zero(t, got.Tax)
	assert.Zero(t, got.Total)
	require.NotNil(t, got.CodingItems)
	require.NotNil(t, got.DesignItems)
	assert.Empty(t, got.CodingItems)
	assert.Empty(t, got.DesignItems)
}

func TestCalculatePrice_CatalogOrderNotSelectionOrder(t *testing.T) {
	c := newCalculator()
	a := []entities.SelectedItem{
		{ItemID: "contact-form", Quantity: 1, Price: 15000},
		{ItemID: "top-page", Quantity: 1, Price: 30000},
	}
	b := []entities.SelectedItem{a[1], a[0]}

	first := c.CalculatePrice(a, nil, false)
	second := c.CalculatePrice(b, nil, false)

	assert.Equal(t, first, second)
	assert.Equal(t, "top-page", first.CodingItems[0].ItemID)
	assert.Equal(t, "contact-form", first.CodingItems[1].ItemID)
}

func TestCalculatePrice_UnknownIDFallsBackToRawID(t *testing.T) {
	got := newCalculator().CalculatePrice(nil, []entities.SelectedItem{{ItemID: "legacy-item", Quantity: 2, Price: 7001}}, false)

	require.Len(t, got.DesignItems, 1)
	assert.Equal(t, "legacy-item", got.DesignItems[0].Name)
	assert.Equal(t, int64(3501), got.DesignItems[0].UnitPrice)
	assert.Equal(t, int64(7001), got.DesignSubtotal)
}

func TestCalculatePrice_ZeroQuantityGuard(t *testing.T) {
	got := newCalculator().CalculatePrice([]entities.SelectedItem{{ItemID: "sub-page", Quantity: 0, Price: 5000}}, nil, false)

	require.Len(t, got.CodingItems, 1)
	assert.Equal(t, int64(5000), got.CodingItems[0].UnitPrice)
}

func TestCalculatePrice_ExpandsOtherFunctions(t *testing.T) {
	c := newCalculator()
	coding := []entities.SelectedItem{
		{ItemID: catalog.OtherFunctionsID, Quantity: 1, Price: 15000, SelectedFunctions: []string{"modal", "slider", "missing"}},
	}

	got := c.CalculatePrice(coding, nil, false)

	require.Len(t, got.CodingItems, 2)
	assert.Equal(t, entities.LineItem{ItemID: "slider", Name: "スライダー", Quantity: 1, UnitPrice: 10000, TotalPrice: 10000}, got.CodingItems[0])
	assert.Equal(t, entities.LineItem{ItemID: "modal", Name: "モーダルウィンドウ", Quantity: 1, UnitPrice: 5000, TotalPrice: 5000}, got.CodingItems[1])
	assert.Equal(t, int64(15000), got.CodingSubtotal)
}

func TestCalculatePrice_Identities(t *testing.T) {
	c := newCalculator()
	cases := []struct {
		name   string
		coding []entities.SelectedItem
		design []entities.SelectedItem
		urgent bool
	}{
		{name: "odd amounts urgent", coding: []entities.SelectedItem{{ItemID: "sub-page", Quantity: 7, Price: 38503}}, urgent: true},
		{name: "both sections", coding: []entities.SelectedItem{{ItemID: "top-page", Quantity: 1, Price: 30000}}, design: []entities.SelectedItem{{ItemID: "banner", Quantity: 3, Price: 15000}}},
		{name: "design only urgent", design: []entities.SelectedItem{{ItemID: "logo", Quantity: 1, Price: 30001}}, urgent: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := c.CalculatePrice(tc.coding, tc.design, tc.urgent)
			assert.Equal(t, got.CodingSubtotal+got.DesignSubtotal, got.Subtotal)
			assert.Equal(t, got.Subtotal+got.UrgentFee+got.Tax, got.Total)
			if !tc.urgent {
				assert.Zero(t, got.UrgentFee)
			}
		})
	}
}

func TestFunctionsPrice(t *testing.T) {
	assert.Equal(t, int64(15000), newCalculator().FunctionsPrice([]string{"slider", "tab", "tab", "unknown"}))
	assert.Zero(t, newCalculator().FunctionsPrice(nil))
}
