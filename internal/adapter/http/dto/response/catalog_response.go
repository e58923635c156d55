package response

import (
	"web_estimate/internal/domain/catalog"
	"web_estimate/internal/domain/entities"
)

type PricingItemResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	BasePrice      int64  `json:"base_price"`
	IsQuantifiable bool   `json:"is_quantifiable"`
	Category       string `json:"category,omitempty"`
	Description    string `json:"description,omitempty"`
}

type PlanResponse struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type PageCountOptionResponse struct {
	ID         string   `json:"id"`
	Label      string   `json:"label"`
	Value      int      `json:"value"`
	Multiplier *float64 `json:"multiplier,omitempty"`
}

type OtherFunctionResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Description string `json:"description,omitempty"`
}

type CompanyResponse struct {
	Name           string `json:"name"`
	Representative string `json:"representative"`
	PostalCode     string `json:"postal_code"`
	Address        string `json:"address"`
	Email          string `json:"email"`
	URL            string `json:"url"`
}

type EstimateConfigResponse struct {
	TaxRate       float64         `json:"tax_rate"`
	UrgentFeeRate float64         `json:"urgent_fee_rate"`
	ValidityDays  int             `json:"validity_days"`
	Company       CompanyResponse `json:"company"`
}

// CatalogResponse is the full static price list served to the calculator page.
type CatalogResponse struct {
	CodingItems      []PricingItemResponse     `json:"coding_items"`
	DesignItems      []PricingItemResponse     `json:"design_items"`
	Plans            []PlanResponse            `json:"plans"`
	PageCountOptions []PageCountOptionResponse `json:"page_count_options"`
	OtherFunctions   []OtherFunctionResponse   `json:"other_functions"`
	EstimateConfig   EstimateConfigResponse    `json:"estimate_config"`
}

func FromCatalog(c *catalog.Catalog) CatalogResponse {
	res := CatalogResponse{
		CodingItems:      fromPricingItems(c.CodingItems()),
		DesignItems:      fromPricingItems(c.DesignItems()),
		Plans:            make([]PlanResponse, 0),
		PageCountOptions: make([]PageCountOptionResponse, 0),
		OtherFunctions:   make([]OtherFunctionResponse, 0),
		EstimateConfig:   FromEstimateConfig(c.EstimateConfig()),
	}
	for _, p := range c.Plans() {
		res.Plans = append(res.Plans, PlanResponse{Type: string(p.Type), Name: p.Name, Description: p.Description})
	}
	for _, o := range c.PageCountOptions() {
		res.PageCountOptions = append(res.PageCountOptions, PageCountOptionResponse{
			ID:         o.ID,
			Label:      o.Label,
			Value:      o.Value,
			Multiplier: o.Multiplier,
		})
	}
	for _, f := range c.OtherFunctions() {
		res.OtherFunctions = append(res.OtherFunctions, OtherFunctionResponse{
			ID:          f.ID,
			Name:        f.Name,
			Price:       f.Price,
			Description: f.Description,
		})
	}
	return res
}

func FromEstimateConfig(cfg entities.EstimateConfig) EstimateConfigResponse {
	return EstimateConfigResponse{
		TaxRate:       cfg.TaxRate,
		UrgentFeeRate: cfg.UrgentFeeRate,
		ValidityDays:  cfg.ValidityDays,
		Company: CompanyResponse{
			Name:           cfg.Company.Name,
			Representative: cfg.Company.Representative,
			PostalCode:     cfg.Company.PostalCode,
			Address:        cfg.Company.Address,
			Email:          cfg.Company.Email,
			URL:            cfg.Company.URL,
		},
	}
}

func fromPricingItems(items []entities.PricingItem) []PricingItemResponse {
	out := make([]PricingItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, PricingItemResponse{
			ID:             it.ID,
			Name:           it.Name,
			BasePrice:      it.BasePrice,
			IsQuantifiable: it.IsQuantifiable,
			Category:       it.Category,
			Description:    it.Description,
		})
	}
	return out
}
