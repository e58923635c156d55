package response

import (
	"testing"

	"web_estimate/internal/domain/catalog"
)

func TestFromCatalog(t *testing.T) {
	c := catalog.Default()

	res := FromCatalog(c)
	if len(res.CodingItems) != len(c.CodingItems()) || len(res.DesignItems) != len(c.DesignItems()) {
		t.Fatalf("unexpected item counts: coding=%d design=%d", len(res.CodingItems), len(res.DesignItems))
	}
	if res.CodingItems[0].ID != c.CodingItems()[0].ID {
		t.Fatalf("expected catalog order, got %q first", res.CodingItems[0].ID)
	}
	if len(res.Plans) != 3 {
		t.Fatalf("expected 3 plans, got %d", len(res.Plans))
	}
	if len(res.PageCountOptions) != len(c.PageCountOptions()) || len(res.OtherFunctions) != len(c.OtherFunctions()) {
		t.Fatalf("unexpected option counts: %+v", res)
	}
	if res.EstimateConfig.TaxRate != 0.1 || res.EstimateConfig.UrgentFeeRate != 0.2 || res.EstimateConfig.ValidityDays != 30 {
		t.Fatalf("unexpected estimate config: %+v", res.EstimateConfig)
	}
	if res.EstimateConfig.Company.Name == "" {
		t.Fatalf("expected issuer name")
	}
}
