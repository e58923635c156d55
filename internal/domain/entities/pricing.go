package entities

// PlanType is the selection-level plan flag.
type PlanType string

const (
	PlanCoding PlanType = "coding"
	PlanDesign PlanType = "design"
	PlanUrgent PlanType = "urgent"
)

func (p PlanType) Valid() bool {
	switch p {
	case PlanCoding, PlanDesign, PlanUrgent:
		return true
	}
	return false
}

// PricingItem is one entry of the static price list. Prices are whole yen.
type PricingItem struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	BasePrice      int64  `json:"basePrice"`
	IsQuantifiable bool   `json:"isQuantifiable"`
	Category       string `json:"category,omitempty"`
	Description    string `json:"description,omitempty"`
}

type Plan struct {
	Type        PlanType `json:"type"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
}

// PageCountOption is a quantity tier. Multiplier, when set, is >= 1.
type PageCountOption struct {
	ID         string   `json:"id"`
	Label      string   `json:"label"`
	Value      int      `json:"value"`
	Multiplier *float64 `json:"multiplier,omitempty"`
}

// OtherFunction is a sub-option of the "other-functions" line item.
type OtherFunction struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Description string `json:"description,omitempty"`
}

// Company is the issuer printed on every estimate.
type Company struct {
	Name           string `json:"name"`
	Representative string `json:"representative"`
	PostalCode     string `json:"postalCode"`
	Address        string `json:"address"`
	Email          string `json:"email"`
	URL            string `json:"url"`
}

type EstimateConfig struct {
	TaxRate       float64 `json:"taxRate"`
	UrgentFeeRate float64 `json:"urgentFeeRate"`
	ValidityDays  int     `json:"validityDays"`
	Company       Company `json:"company"`
}
