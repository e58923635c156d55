package estimate

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"web_estimate/internal/domain/catalog"
	"web_estimate/internal/domain/entities"
)

const (
	DocumentTitle = "御見積書"

	// DocumentAnchorID marks the element captured for PDF export.
	DocumentAnchorID = "estimate-document"

	// MaxPDFBytes is the largest PDF accepted from a renderer.
	MaxPDFBytes = 5 << 20
)

// OutputMode selects how a document is rendered.
type OutputMode string

const (
	ModeDisplay OutputMode = "display"
	ModePrint   OutputMode = "print"
	ModePDF     OutputMode = "pdf"
)

// ParseOutputMode maps a query value to a mode. Empty means display.
func ParseOutputMode(s string) (OutputMode, bool) {
	switch OutputMode(s) {
	case "", ModeDisplay:
		return ModeDisplay, true
	case ModePrint:
		return ModePrint, true
	case ModePDF:
		return ModePDF, true
	}
	return "", false
}

type Row struct {
	Name      string
	Quantity  int
	UnitPrice string
	Amount    string
}

type Section struct {
	Title    string
	Subtotal string
	Rows     []Row
}

type TotalLine struct {
	Label  string
	Amount string
}

// Document is the render-ready model shared by the display, print and PDF outputs.
type Document struct {
	Title          string
	EstimateNumber string
	IssueDate      string
	ExpiryDate     string
	Subject        string
	PlanName       string
	Urgent         bool
	Issuer         entities.Company
	Sections       []Section
	Totals         []TotalLine
	GrandTotal     string
	FileName       string
}

func NewDocument(data entities.EstimateData, c *catalog.Catalog) Document {
	cfg := c.EstimateConfig()
	calc := data.Calculation

	planName := string(data.SelectedPlan)
	if p := c.Plan(data.SelectedPlan); p != nil {
		planName = p.Name
	}

	doc := Document{
		Title:          DocumentTitle,
		EstimateNumber: data.EstimateNumber,
		IssueDate:      FormatDate(data.IssueDate),
		ExpiryDate:     FormatDate(data.ExpiryDate),
		Subject:        data.Subject,
		PlanName:       planName,
		Urgent:         data.IsUrgent,
		Issuer:         cfg.Company,
		GrandTotal:     FormatYen(calc.Total),
		FileName:       PDFFileName(data.EstimateNumber),
	}

	if len(calc.CodingItems) > 0 {
		doc.Sections = append(doc.Sections, newSection("コーディング", calc.CodingSubtotal, calc.CodingItems))
	}
	if len(calc.DesignItems) > 0 {
		doc.Sections = append(doc.Sections, newSection("デザイン", calc.DesignSubtotal, calc.DesignItems))
	}

	doc.Totals = append(doc.Totals, TotalLine{Label: "小計", Amount: FormatYen(calc.Subtotal)})
	if data.IsUrgent {
		doc.Totals = append(doc.Totals, TotalLine{
			Label:  fmt.Sprintf("特急料金（%s）", percent(cfg.UrgentFeeRate)),
			Amount: FormatYen(calc.UrgentFee),
		})
	}
	doc.Totals = append(doc.Totals,
		TotalLine{Label: fmt.Sprintf("消費税（%s）", percent(cfg.TaxRate)), Amount: FormatYen(calc.Tax)},
		TotalLine{Label: "合計", Amount: FormatYen(calc.Total)},
	)
	return doc
}

func newSection(title string, subtotal int64, lines []entities.LineItem) Section {
	rows := make([]Row, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, Row{
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: FormatYen(l.UnitPrice),
			Amount:    FormatYen(l.TotalPrice),
		})
	}
	return Section{Title: title, Subtotal: FormatYen(subtotal), Rows: rows}
}

func percent(rate float64) string {
	return strconv.FormatFloat(math.Round(rate*10000)/100, 'f', -1, 64) + "%"
}

// Snapshot is the fully rendered document handed to a PDF renderer.
type Snapshot struct {
	Document Document
	HTML     []byte
}

// HasAnchor reports whether the rendered HTML contains the capture anchor.
func (s Snapshot) HasAnchor() bool {
	return bytes.Contains(s.HTML, []byte(`id="`+DocumentAnchorID+`"`))
}
