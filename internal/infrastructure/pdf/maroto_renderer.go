package pdf

import (
	"context"
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/johnfercher/maroto/v2/pkg/repository"

	"web_estimate/internal/domain/estimate"
	"web_estimate/internal/usecase/interfaces"
)

const customFontFamily = "estimate-jp"

// MarotoRenderer lays the estimate document out natively with maroto. It reads
// the document model from the snapshot and needs no browser. Japanese text
// needs a UTF-8 TrueType font supplied through fontPath.
type MarotoRenderer struct {
	fontPath string
}

var _ interfaces.IPDFRenderer = (*MarotoRenderer)(nil)

func NewMarotoRenderer(fontPath string) *MarotoRenderer {
	return &MarotoRenderer{fontPath: strings.TrimSpace(fontPath)}
}

func (r *MarotoRenderer) Render(ctx context.Context, snapshot estimate.Snapshot) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	builder := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithRightMargin(15).
		WithTopMargin(15).
		WithPageNumber(props.PageNumber{
			Pattern: "{current} / {total}",
			Place:   props.RightBottom,
		})
	if r.fontPath != "" {
		fonts, err := repository.New().
			AddUTF8Font(customFontFamily, fontstyle.Normal, r.fontPath).
			AddUTF8Font(customFontFamily, fontstyle.Bold, r.fontPath).
			Load()
		if err != nil {
			return nil, fmt.Errorf("load pdf font: %w", err)
		}
		builder = builder.WithCustomFonts(fonts).WithDefaultFont(&props.Font{Family: customFontFamily})
	}

	m := maroto.New(builder.Build())
	doc := snapshot.Document

	m.AddRow(14,
		text.NewCol(6, doc.Title, props.Text{Size: 20, Style: fontstyle.Bold, Align: align.Left}),
		col.New(6).Add(
			text.New("見積番号: "+doc.EstimateNumber, props.Text{Size: 9, Align: align.Right}),
			text.New("発行日: "+doc.IssueDate, props.Text{Size: 9, Align: align.Right, Top: 4}),
			text.New("有効期限: "+doc.ExpiryDate, props.Text{Size: 9, Align: align.Right, Top: 8}),
		),
	)

	plan := "プラン: " + doc.PlanName
	if doc.Urgent {
		plan += "（特急）"
	}
	m.AddRow(16,
		col.New(7).Add(
			text.New("件名: "+doc.Subject, props.Text{Size: 10}),
			text.New(plan, props.Text{Size: 10, Top: 5}),
		),
		col.New(5).Add(
			text.New(doc.Issuer.Name, props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}),
			text.New(doc.Issuer.PostalCode+" "+doc.Issuer.Address, props.Text{Size: 8, Align: align.Right, Top: 4}),
			text.New(doc.Issuer.Email, props.Text{Size: 8, Align: align.Right, Top: 8}),
		),
	)

	m.AddRow(12,
		text.NewCol(12, "御見積金額 "+doc.GrandTotal+"（税込）", props.Text{Size: 14, Style: fontstyle.Bold, Top: 3}),
	)
	m.AddRow(2, line.NewCol(12))

	for _, section := range doc.Sections {
		m.AddRow(9,
			text.NewCol(12, section.Title, props.Text{Size: 10, Style: fontstyle.Bold, Top: 3}),
		)
		m.AddRow(7,
			text.NewCol(6, "項目", props.Text{Size: 9, Style: fontstyle.Bold}),
			text.NewCol(2, "数量", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}),
			text.NewCol(2, "単価", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}),
			text.NewCol(2, "金額", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}),
		)
		for _, row := range section.Rows {
			m.AddRow(7,
				text.NewCol(6, row.Name, props.Text{Size: 9}),
				text.NewCol(2, fmt.Sprintf("%d", row.Quantity), props.Text{Size: 9, Align: align.Right}),
				text.NewCol(2, row.UnitPrice, props.Text{Size: 9, Align: align.Right}),
				text.NewCol(2, row.Amount, props.Text{Size: 9, Align: align.Right}),
			)
		}
		m.AddRow(7,
			col.New(8),
			text.NewCol(2, "小計", props.Text{Size: 9}),
			text.NewCol(2, section.Subtotal, props.Text{Size: 9, Align: align.Right}),
		)
	}

	m.AddRow(4, line.NewCol(12))
	for i, total := range doc.Totals {
		style := fontstyle.Normal
		if i == len(doc.Totals)-1 {
			style = fontstyle.Bold
		}
		m.AddRow(7,
			col.New(7),
			text.NewCol(3, total.Label, props.Text{Size: 9, Style: style}),
			text.NewCol(2, total.Amount, props.Text{Size: 9, Style: style, Align: align.Right}),
		)
	}

	out, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return out.GetBytes(), nil
}
