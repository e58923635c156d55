package catalog

import "web_estimate/internal/domain/entities"

const (
	// OtherFunctionsID is the coding item whose price is the sum of its selected sub-functions.
	OtherFunctionsID = "other-functions"

	CategoryCoding = "coding"
	CategoryDesign = "design"
)

func multiplier(v float64) *float64 {
	return &v
}

var defaultCodingItems = []entities.PricingItem{
	{ID: "top-page", Name: "トップページ", BasePrice: 30000, Category: CategoryCoding, Description: "トップページのコーディング"},
	{ID: "sub-page", Name: "下層ページ", BasePrice: 5000, IsQuantifiable: true, Category: CategoryCoding, Description: "下層ページ1ページあたり"},
	{ID: "responsive", Name: "レスポンシブ対応", BasePrice: 10000, Category: CategoryCoding},
	{ID: "contact-form", Name: "お問い合わせフォーム", BasePrice: 15000, Category: CategoryCoding},
	{ID: "wordpress", Name: "WordPress導入", BasePrice: 50000, Category: CategoryCoding, Description: "ヘッドレスCMSとしてのWordPress構築"},
	{ID: "custom-post-type", Name: "カスタム投稿タイプ", BasePrice: 10000, IsQuantifiable: true, Category: CategoryCoding},
	{ID: "animation", Name: "アニメーション実装", BasePrice: 8000, IsQuantifiable: true, Category: CategoryCoding},
	{ID: OtherFunctionsID, Name: "その他機能", BasePrice: 0, Category: CategoryCoding, Description: "個別機能の組み合わせ"},
}

var defaultDesignItems = []entities.PricingItem{
	{ID: "wireframe", Name: "ワイヤーフレーム", BasePrice: 20000, Category: CategoryDesign},
	{ID: "design-top", Name: "トップページデザイン", BasePrice: 50000, Category: CategoryDesign},
	{ID: "design-sub", Name: "下層ページデザイン", BasePrice: 20000, IsQuantifiable: true, Category: CategoryDesign},
	{ID: "logo", Name: "ロゴ制作", BasePrice: 30000, Category: CategoryDesign},
	{ID: "banner", Name: "バナー制作", BasePrice: 5000, IsQuantifiable: true, Category: CategoryDesign},
}

var defaultPlans = []entities.Plan{
	{Type: entities.PlanCoding, Name: "コーディングプラン", Description: "デザインデータ支給でのコーディングのみ"},
	{Type: entities.PlanDesign, Name: "デザイン＋コーディングプラン", Description: "デザインから実装まで一貫して対応"},
	{Type: entities.PlanUrgent, Name: "特急プラン", Description: "通常の半分の納期で対応（特急料金20%）"},
}

var defaultPageCountOptions = []entities.PageCountOption{
	{ID: "1", Label: "1ページ", Value: 1},
	{ID: "2", Label: "2ページ", Value: 2},
	{ID: "3", Label: "3ページ", Value: 3},
	{ID: "5", Label: "5ページ", Value: 5},
	{ID: "10", Label: "10ページ", Value: 10, Multiplier: multiplier(1.1)},
	{ID: "20", Label: "20ページ以上", Value: 20, Multiplier: multiplier(1.2)},
	{ID: "unknown", Label: "未定", Value: 1},
}

var defaultOtherFunctions = []entities.OtherFunction{
	{ID: "slider", Name: "スライダー", Price: 10000},
	{ID: "modal", Name: "モーダルウィンドウ", Price: 5000},
	{ID: "tab", Name: "タブ切り替え", Price: 5000},
	{ID: "accordion", Name: "アコーディオン", Price: 5000},
	{ID: "google-map", Name: "Googleマップ埋め込み", Price: 3000},
	{ID: "sns-feed", Name: "SNSフィード連携", Price: 15000},
	{ID: "site-search", Name: "サイト内検索", Price: 20000},
}

var defaultEstimateConfig = entities.EstimateConfig{
	TaxRate:       0.10,
	UrgentFeeRate: 0.20,
	ValidityDays:  30,
	Company: entities.Company{
		Name:           "o-works studio",
		Representative: "代表",
		PostalCode:     "〒150-0001",
		Address:        "東京都渋谷区神宮前1-1-1",
		Email:          "info@example.com",
		URL:            "https://example.com",
	},
}
