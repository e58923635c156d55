package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"web_estimate/internal/domain/catalog"
	"web_estimate/internal/domain/entities"
	"web_estimate/internal/domain/estimate"
	"web_estimate/internal/usecase/interfaces"
)

// DocumentKey is the session key of the current estimate document.
const DocumentKey = "estimate-document"

var (
	ErrEmptySelection           = errors.New("no items selected")
	ErrDocumentAlreadyGenerated = errors.New("estimate document already generated")
	ErrNoDocument               = errors.New("no estimate document")
	ErrInvalidOutputMode        = errors.New("invalid output mode")
	ErrDocumentAnchorMissing    = errors.New("estimate document anchor missing")
	ErrPDFTooLarge              = errors.New("pdf exceeds size limit")
	ErrPDFGenerationFailed      = errors.New("pdf generation failed")
	ErrHandoffFailed            = errors.New("handoff failed")
)

// PDFExport is a successfully rendered estimate PDF.
type PDFExport struct {
	EstimateNumber string
	FileName       string
	Blob           []byte
}

// IEstimateUseCase manages the estimate document view of a session.
//
// Flow:
//   - Generate: Editing -> DocumentGenerated, refused with an empty selection
//   - Back: DocumentGenerated -> Editing, selections untouched
//   - Render / ExportPDF / ExportAndStage work on the current document
//
// Export failures leave no side effects: nothing is staged unless a complete
// PDF within the size limit was produced.

type IEstimateUseCase interface {
	Generate(ctx context.Context, sessionID, subject string) (entities.EstimateData, error)
	Current(ctx context.Context, sessionID string) (entities.EstimateData, error)
	Back(ctx context.Context, sessionID string) error
	Render(ctx context.Context, sessionID string, mode estimate.OutputMode) ([]byte, error)
	ExportPDF(ctx context.Context, sessionID string) (PDFExport, error)
	ExportAndStage(ctx context.Context, sessionID string) (PDFExport, error)
}

type EstimateUseCase struct {
	selection ISelectionUseCase
	sessions  interfaces.ISessionStore
	builder   *estimate.Builder
	catalog   *catalog.Catalog
	html      interfaces.IDocumentRenderer
	pdf       interfaces.IPDFRenderer
	handoff   IHandoffUseCase
	metrics   interfaces.IMetrics
	log       *zap.Logger
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(
	selection ISelectionUseCase,
	sessions interfaces.ISessionStore,
	builder *estimate.Builder,
	c *catalog.Catalog,
	html interfaces.IDocumentRenderer,
	pdf interfaces.IPDFRenderer,
	handoff IHandoffUseCase,
	metrics interfaces.IMetrics,
	log *zap.Logger,
) *EstimateUseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &EstimateUseCase{
		selection: selection,
		sessions:  sessions,
		builder:   builder,
		catalog:   c,
		html:      html,
		pdf:       pdf,
		handoff:   handoff,
		metrics:   metrics,
		log:       log,
	}
}

func (u *EstimateUseCase) Generate(ctx context.Context, sessionID, subject string) (entities.EstimateData, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.EstimateData{}, ErrInvalidSessionID
	}

	view, err := u.view(ctx, sessionID)
	if err != nil {
		return entities.EstimateData{}, err
	}
	if view == estimate.DocumentGenerated {
		return entities.EstimateData{}, ErrDocumentAlreadyGenerated
	}

	sel, err := u.selection.Get(ctx, sessionID)
	if err != nil {
		return entities.EstimateData{}, err
	}
	if _, err := view.Generate(sel.ItemCount); err != nil {
		u.log.Info("[estimate][usecase] generate refused", zap.String("session_id", sessionID), zap.Error(err))
		return entities.EstimateData{}, ErrEmptySelection
	}

	data := u.builder.Build(sel.Calculation, sel.State.IsUrgent, sel.State.SelectedPlan, subject)
	raw, err := json.Marshal(data)
	if err != nil {
		return entities.EstimateData{}, err
	}
	if err := u.sessions.Set(ctx, sessionKey(sessionID, DocumentKey), string(raw)); err != nil {
		u.log.Error("[estimate][usecase] store document failed", zap.String("session_id", sessionID), zap.Error(err))
		return entities.EstimateData{}, fmt.Errorf("store estimate document: %w", err)
	}

	u.metrics.EstimateGenerated()
	u.log.Info("[estimate][usecase] generated",
		zap.String("session_id", sessionID),
		zap.String("estimate_number", data.EstimateNumber),
		zap.Int64("total", data.Calculation.Total),
		zap.Bool("urgent", data.IsUrgent),
	)
	return data, nil
}

func (u *EstimateUseCase) Current(ctx context.Context, sessionID string) (entities.EstimateData, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.EstimateData{}, ErrInvalidSessionID
	}
	raw, found, err := u.sessions.Get(ctx, sessionKey(sessionID, DocumentKey))
	if err != nil {
		return entities.EstimateData{}, err
	}
	if !found {
		return entities.EstimateData{}, ErrNoDocument
	}
	var data entities.EstimateData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		u.log.Warn("[estimate][usecase] unreadable document", zap.String("session_id", sessionID), zap.Error(err))
		return entities.EstimateData{}, ErrNoDocument
	}
	return data, nil
}

// Back closes the document view. Calling it with no document is a no-op.
func (u *EstimateUseCase) Back(ctx context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ErrInvalidSessionID
	}
	if err := u.sessions.Delete(ctx, sessionKey(sessionID, DocumentKey)); err != nil {
		return err
	}
	u.log.Info("[estimate][usecase] back to editing", zap.String("session_id", sessionID))
	return nil
}

func (u *EstimateUseCase) Render(ctx context.Context, sessionID string, mode estimate.OutputMode) ([]byte, error) {
	mode, ok := estimate.ParseOutputMode(string(mode))
	if !ok {
		return nil, ErrInvalidOutputMode
	}
	data, err := u.Current(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return u.html.RenderHTML(estimate.NewDocument(data, u.catalog), mode)
}

func (u *EstimateUseCase) ExportPDF(ctx context.Context, sessionID string) (PDFExport, error) {
	data, err := u.Current(ctx, sessionID)
	if err != nil {
		return PDFExport{}, err
	}

	doc := estimate.NewDocument(data, u.catalog)
	html, err := u.html.RenderHTML(doc, estimate.ModePDF)
	if err != nil {
		u.metrics.PDFExport("failed")
		return PDFExport{}, fmt.Errorf("%w: %v", ErrPDFGenerationFailed, err)
	}
	snapshot := estimate.Snapshot{Document: doc, HTML: html}
	if !snapshot.HasAnchor() {
		u.metrics.PDFExport("anchor_missing")
		return PDFExport{}, ErrDocumentAnchorMissing
	}

	blob, err := u.pdf.Render(ctx, snapshot)
	if err != nil {
		u.log.Error("[estimate][usecase] pdf render failed", zap.String("estimate_number", data.EstimateNumber), zap.Error(err))
		u.metrics.PDFExport("failed")
		return PDFExport{}, fmt.Errorf("%w: %v", ErrPDFGenerationFailed, err)
	}
	if len(blob) == 0 {
		u.metrics.PDFExport("failed")
		return PDFExport{}, ErrPDFGenerationFailed
	}
	if len(blob) > estimate.MaxPDFBytes {
		u.log.Warn("[estimate][usecase] pdf too large", zap.String("estimate_number", data.EstimateNumber), zap.Int("bytes", len(blob)))
		u.metrics.PDFExport("too_large")
		return PDFExport{}, ErrPDFTooLarge
	}

	u.metrics.PDFExport("ok")
	u.log.Info("[estimate][usecase] pdf exported", zap.String("estimate_number", data.EstimateNumber), zap.Int("bytes", len(blob)))
	return PDFExport{EstimateNumber: data.EstimateNumber, FileName: doc.FileName, Blob: blob}, nil
}

// ExportAndStage renders the PDF and stages it for the contact form.
func (u *EstimateUseCase) ExportAndStage(ctx context.Context, sessionID string) (PDFExport, error) {
	export, err := u.ExportPDF(ctx, sessionID)
	if err != nil {
		return PDFExport{}, err
	}
	if err := u.handoff.Stage(ctx, sessionID, export.Blob, export.EstimateNumber); err != nil {
		return PDFExport{}, fmt.Errorf("%w: %v", ErrHandoffFailed, err)
	}
	return export, nil
}

func (u *EstimateUseCase) view(ctx context.Context, sessionID string) (estimate.View, error) {
	_, found, err := u.sessions.Get(ctx, sessionKey(sessionID, DocumentKey))
	if err != nil {
		return estimate.Editing, err
	}
	if found {
		return estimate.DocumentGenerated, nil
	}
	return estimate.Editing, nil
}
