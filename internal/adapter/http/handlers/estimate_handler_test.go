package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	response "web_estimate/internal/adapter/http/dto/response"
	"web_estimate/internal/adapter/http/handlers/mocks"
	"web_estimate/internal/domain/entities"
	"web_estimate/internal/domain/estimate"
	"web_estimate/internal/usecase"

	"go.uber.org/mock/gomock"
)

func sampleEstimate() entities.EstimateData {
	return entities.EstimateData{
		EstimateNumber: "EST-20250615-0427",
		IssueDate:      time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		ExpiryDate:     time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC),
		Subject:        estimate.DefaultSubject,
		Calculation:    entities.PriceCalculation{CodingSubtotal: 30000, Subtotal: 30000, Tax: 3000, Total: 33000},
		SelectedPlan:   entities.PlanCoding,
	}
}

func TestEstimateHandler_CreateEstimate(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)

		r := newTestRouter()
		r.POST("/v1/estimates", NewEstimateHandler(uc).CreateEstimate)
		w := serve(r, http.MethodPost, "/v1/estimates", bytes.NewBufferString("{"))

		expectStatus(t, w, http.StatusBadRequest)
		if body := decodeError(t, w); body.Code != "INVALID_ESTIMATE_INPUT" {
			t.Fatalf("expected INVALID_ESTIMATE_INPUT, got %+v", body)
		}
	})

	t.Run("empty body uses default subject", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		uc.EXPECT().Generate(gomock.Any(), testSessionID, "").Return(sampleEstimate(), nil)

		r := newTestRouter()
		r.POST("/v1/estimates", NewEstimateHandler(uc).CreateEstimate)
		w := serve(r, http.MethodPost, "/v1/estimates", nil)
		expectStatus(t, w, http.StatusCreated)

		var body response.EstimateResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.EstimateNumber != "EST-20250615-0427" || body.IssueDate != "2025年06月15日" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("subject is trimmed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		uc.EXPECT().Generate(gomock.Any(), testSessionID, "LP制作").Return(sampleEstimate(), nil)

		r := newTestRouter()
		r.POST("/v1/estimates", NewEstimateHandler(uc).CreateEstimate)
		w := serve(r, http.MethodPost, "/v1/estimates", bytes.NewBufferString(`{"subject":"  LP制作 "}`))
		expectStatus(t, w, http.StatusCreated)
	})

	t.Run("usecase returns mapped error", func(t *testing.T) {
		cases := []struct {
			err    error
			status int
			code   string
		}{
			{usecase.ErrEmptySelection, http.StatusUnprocessableEntity, "EMPTY_SELECTION"},
			{usecase.ErrDocumentAlreadyGenerated, http.StatusConflict, "ESTIMATE_ALREADY_GENERATED"},
			{usecase.ErrInvalidSessionID, http.StatusBadRequest, "INVALID_SESSION"},
			{fmt.Errorf("wrapped: %w", usecase.ErrEmptySelection), http.StatusUnprocessableEntity, "EMPTY_SELECTION"},
		}
		for _, tc := range cases {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIEstimateUseCase(ctrl)
			uc.EXPECT().Generate(gomock.Any(), testSessionID, "").Return(entities.EstimateData{}, tc.err)

			r := newTestRouter()
			r.POST("/v1/estimates", NewEstimateHandler(uc).CreateEstimate)
			w := serve(r, http.MethodPost, "/v1/estimates", bytes.NewBufferString(`{}`))

			expectStatus(t, w, tc.status)
			if body := decodeError(t, w); body.Code != tc.code {
				t.Fatalf("expected %s, got %+v", tc.code, body)
			}
			ctrl.Finish()
		}
	})
}

func TestEstimateHandler_GetCurrentEstimate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		uc.EXPECT().Current(gomock.Any(), testSessionID).Return(sampleEstimate(), nil)

		r := newTestRouter()
		r.GET("/v1/estimates/current", NewEstimateHandler(uc).GetCurrentEstimate)
		w := serve(r, http.MethodGet, "/v1/estimates/current", nil)
		expectStatus(t, w, http.StatusOK)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		uc.EXPECT().Current(gomock.Any(), testSessionID).Return(entities.EstimateData{}, usecase.ErrNoDocument)

		r := newTestRouter()
		r.GET("/v1/estimates/current", NewEstimateHandler(uc).GetCurrentEstimate)
		w := serve(r, http.MethodGet, "/v1/estimates/current", nil)

		expectStatus(t, w, http.StatusNotFound)
		if body := decodeError(t, w); body.Code != "ESTIMATE_NOT_FOUND" {
			t.Fatalf("expected ESTIMATE_NOT_FOUND, got %+v", body)
		}
	})
}

func TestEstimateHandler_BackToEditing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIEstimateUseCase(ctrl)
	uc.EXPECT().Back(gomock.Any(), testSessionID).Return(nil)

	r := newTestRouter()
	r.DELETE("/v1/estimates/current", NewEstimateHandler(uc).BackToEditing)
	w := serve(r, http.MethodDelete, "/v1/estimates/current", nil)
	expectStatus(t, w, http.StatusNoContent)
}

func TestEstimateHandler_GetDocument(t *testing.T) {
	t.Run("default mode is display", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		uc.EXPECT().Render(gomock.Any(), testSessionID, estimate.ModeDisplay).Return([]byte("<html></html>"), nil)

		r := newTestRouter()
		r.GET("/v1/estimates/current/document", NewEstimateHandler(uc).GetDocument)
		w := serve(r, http.MethodGet, "/v1/estimates/current/document", nil)

		expectStatus(t, w, http.StatusOK)
		if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
			t.Fatalf("expected html content type, got %q", ct)
		}
		if w.Body.String() != "<html></html>" {
			t.Fatalf("unexpected body %q", w.Body.String())
		}
	})

	t.Run("print mode", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		uc.EXPECT().Render(gomock.Any(), testSessionID, estimate.ModePrint).Return([]byte("<html></html>"), nil)

		r := newTestRouter()
		r.GET("/v1/estimates/current/document", NewEstimateHandler(uc).GetDocument)
		w := serve(r, http.MethodGet, "/v1/estimates/current/document?mode=print", nil)
		expectStatus(t, w, http.StatusOK)
	})

	t.Run("invalid mode", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)

		r := newTestRouter()
		r.GET("/v1/estimates/current/document", NewEstimateHandler(uc).GetDocument)
		w := serve(r, http.MethodGet, "/v1/estimates/current/document?mode=fax", nil)

		expectStatus(t, w, http.StatusBadRequest)
		if body := decodeError(t, w); body.Code != "INVALID_OUTPUT_MODE" {
			t.Fatalf("expected INVALID_OUTPUT_MODE, got %+v", body)
		}
	})
}

func TestEstimateHandler_DownloadPDF(t *testing.T) {
	t.Run("attachment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		uc.EXPECT().ExportPDF(gomock.Any(), testSessionID).Return(usecase.PDFExport{
			EstimateNumber: "EST-20250615-0427",
			FileName:       "estimate_EST-20250615-0427.pdf",
			Blob:           []byte("%PDF-1.4"),
		}, nil)

		r := newTestRouter()
		r.GET("/v1/estimates/current/pdf", NewEstimateHandler(uc).DownloadPDF)
		w := serve(r, http.MethodGet, "/v1/estimates/current/pdf", nil)

		expectStatus(t, w, http.StatusOK)
		if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
			t.Fatalf("expected application/pdf, got %q", ct)
		}
		if cd := w.Header().Get("Content-Disposition"); cd != `attachment; filename=estimate_EST-20250615-0427.pdf` {
			t.Fatalf("unexpected disposition %q", cd)
		}
		if w.Body.String() != "%PDF-1.4" {
			t.Fatalf("unexpected body %q", w.Body.String())
		}
	})

	t.Run("generation failures share one message", func(t *testing.T) {
		for _, cause := range []error{usecase.ErrPDFGenerationFailed, usecase.ErrPDFTooLarge, usecase.ErrDocumentAnchorMissing} {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIEstimateUseCase(ctrl)
			uc.EXPECT().ExportPDF(gomock.Any(), testSessionID).Return(usecase.PDFExport{}, cause)

			r := newTestRouter()
			r.GET("/v1/estimates/current/pdf", NewEstimateHandler(uc).DownloadPDF)
			w := serve(r, http.MethodGet, "/v1/estimates/current/pdf", nil)

			expectStatus(t, w, http.StatusInternalServerError)
			if body := decodeError(t, w); body.Message != "Failed to generate the estimate PDF" {
				t.Fatalf("unexpected message for %v: %+v", cause, body)
			}
			ctrl.Finish()
		}
	})
}

func TestEstimateHandler_StageHandoff(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		uc.EXPECT().ExportAndStage(gomock.Any(), testSessionID).Return(usecase.PDFExport{
			EstimateNumber: "EST-20250615-0427",
			FileName:       "estimate_EST-20250615-0427.pdf",
			Blob:           []byte("%PDF-1.4"),
		}, nil)

		r := newTestRouter()
		r.POST("/v1/estimates/current/handoff", NewEstimateHandler(uc).StageHandoff)
		w := serve(r, http.MethodPost, "/v1/estimates/current/handoff", nil)
		expectStatus(t, w, http.StatusCreated)

		var body response.HandoffResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.EstimateNumber != "EST-20250615-0427" || body.SizeBytes != 8 || body.DataURL != "" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("handoff failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		uc.EXPECT().ExportAndStage(gomock.Any(), testSessionID).Return(usecase.PDFExport{}, usecase.ErrHandoffFailed)

		r := newTestRouter()
		r.POST("/v1/estimates/current/handoff", NewEstimateHandler(uc).StageHandoff)
		w := serve(r, http.MethodPost, "/v1/estimates/current/handoff", nil)

		expectStatus(t, w, http.StatusInternalServerError)
		if body := decodeError(t, w); body.Code != "HANDOFF_FAILED" {
			t.Fatalf("expected HANDOFF_FAILED, got %+v", body)
		}
	})
}
