package render

import (
	"bytes"
	"html/template"

	"web_estimate/internal/domain/estimate"
	"web_estimate/internal/usecase/interfaces"
)

const estimateHTMLTemplate = `<!doctype html>
<html lang="ja">
<head>
  <meta charset="utf-8" />
  <title>{{.Doc.Title}} {{.Doc.EstimateNumber}}</title>
  <style>
    * { box-sizing: border-box; }
    body {
      margin: 0;
      padding: 32px;
      font-family: "Hiragino Kaku Gothic ProN", "Noto Sans JP", "Yu Gothic", sans-serif;
      color: #1f2933;
      background: #f5f7fa;
    }
    .estimate {
      background: #ffffff;
      max-width: 794px;
      margin: 0 auto;
      padding: 48px;
    }
    .header { display: flex; justify-content: space-between; align-items: flex-start; margin-bottom: 32px; }
    .header h1 { margin: 0; font-size: 26px; letter-spacing: 0.3em; }
    .meta { text-align: right; font-size: 13px; line-height: 1.8; }
    .subject { font-size: 15px; margin-bottom: 8px; }
    .grand-total { font-size: 22px; font-weight: 700; border-bottom: 2px solid #1f2933; padding-bottom: 6px; margin-bottom: 24px; }
    .issuer { font-size: 12px; line-height: 1.7; margin-bottom: 24px; }
    .badge { display: inline-block; font-size: 11px; padding: 2px 8px; background: #d64545; color: #fff; border-radius: 2px; }
    table { width: 100%; border-collapse: collapse; font-size: 13px; margin-bottom: 16px; }
    th { text-align: left; background: #e4e7eb; padding: 8px; }
    td { padding: 8px; border-bottom: 1px solid #e4e7eb; }
    .num { text-align: right; white-space: nowrap; }
    .section-title { font-weight: 700; margin: 16px 0 6px; }
    .totals { margin-left: auto; width: 50%; font-size: 13px; }
    .totals .row { display: flex; justify-content: space-between; padding: 4px 0; }
    .totals .final { font-weight: 700; font-size: 15px; border-top: 1px solid #1f2933; margin-top: 4px; padding-top: 8px; }
    .actions { text-align: center; margin-top: 24px; }
    .actions button { padding: 8px 20px; margin: 0 6px; }
    @media print {
      body { background: #fff; padding: 0; }
      .estimate { padding: 0; }
      .no-print { display: none !important; }
    }
  </style>
</head>
<body>
  <div class="estimate" id="estimate-document">
    <div class="header">
      <h1>{{.Doc.Title}}</h1>
      <div class="meta">
        <div>見積番号: {{.Doc.EstimateNumber}}</div>
        <div>発行日: {{.Doc.IssueDate}}</div>
        <div>有効期限: {{.Doc.ExpiryDate}}</div>
      </div>
    </div>

    <div class="subject">件名: {{.Doc.Subject}}</div>
    <div class="subject">プラン: {{.Doc.PlanName}}{{if .Doc.Urgent}} <span class="badge">特急</span>{{end}}</div>
    <div class="grand-total">御見積金額 {{.Doc.GrandTotal}}（税込）</div>

    <div class="issuer">
      <strong>{{.Doc.Issuer.Name}}</strong><br>
      {{.Doc.Issuer.Representative}}<br>
      {{.Doc.Issuer.PostalCode}} {{.Doc.Issuer.Address}}<br>
      {{.Doc.Issuer.Email}} / {{.Doc.Issuer.URL}}
    </div>

    {{range .Doc.Sections}}
    <div class="section-title">{{.Title}}</div>
    <table>
      <thead>
        <tr>
          <th style="width: 55%;">項目</th>
          <th class="num">数量</th>
          <th class="num">単価</th>
          <th class="num">金額</th>
        </tr>
      </thead>
      <tbody>
        {{range .Rows}}
        <tr>
          <td>{{.Name}}</td>
          <td class="num">{{.Quantity}}</td>
          <td class="num">{{.UnitPrice}}</td>
          <td class="num">{{.Amount}}</td>
        </tr>
        {{end}}
        <tr>
          <td colspan="3" class="num">小計</td>
          <td class="num">{{.Subtotal}}</td>
        </tr>
      </tbody>
    </table>
    {{end}}

    <div class="totals">
      {{range $i, $t := .Doc.Totals}}
      <div class="row{{if isLast $i $.Doc.Totals}} final{{end}}"><span>{{$t.Label}}</span><span>{{$t.Amount}}</span></div>
      {{end}}
    </div>
  </div>
  {{if .Interactive}}
  <div class="actions no-print">
    <button type="button" id="estimate-back">戻る</button>
    <button type="button" id="estimate-print" onclick="window.print()">印刷</button>
    <a href="/v1/estimates/current/pdf"><button type="button" id="estimate-pdf">PDFダウンロード</button></a>
  </div>
  {{end}}
  {{if .AutoPrint}}
  <script>window.addEventListener("load", function () { window.print(); });</script>
  {{end}}
</body>
</html>
`

type renderInput struct {
	Doc         estimate.Document
	Interactive bool
	AutoPrint   bool
}

// HTMLRenderer renders the estimate document. Display adds the action buttons
// marked no-print, print also triggers the browser print dialog, and the PDF
// snapshot carries the document only.
type HTMLRenderer struct {
	tpl *template.Template
}

var _ interfaces.IDocumentRenderer = (*HTMLRenderer)(nil)

func NewHTMLRenderer() *HTMLRenderer {
	funcs := template.FuncMap{
		"isLast": func(i int, totals []estimate.TotalLine) bool { return i == len(totals)-1 },
	}
	return &HTMLRenderer{
		tpl: template.Must(template.New("estimate").Funcs(funcs).Parse(estimateHTMLTemplate)),
	}
}

func (r *HTMLRenderer) RenderHTML(doc estimate.Document, mode estimate.OutputMode) ([]byte, error) {
	input := renderInput{
		Doc:         doc,
		Interactive: mode != estimate.ModePDF,
		AutoPrint:   mode == estimate.ModePrint,
	}
	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, input); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
