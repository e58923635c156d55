package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	response "web_estimate/internal/adapter/http/dto/response"
	"web_estimate/internal/adapter/http/handlers/mocks"
	"web_estimate/internal/domain/entities"

	"go.uber.org/mock/gomock"
)

func TestHandoffHandler_ConsumeHandoff(t *testing.T) {
	t.Run("staged pdf", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIHandoffUseCase(ctrl)
		uc.EXPECT().Consume(gomock.Any(), testSessionID).Return(&entities.Handoff{
			EstimateNumber: "EST-20250615-0427",
			FileName:       "estimate_EST-20250615-0427.pdf",
			Blob:           []byte("%PDF-1.4"),
		}, nil)

		r := newTestRouter()
		r.GET("/v1/handoff", NewHandoffHandler(uc).ConsumeHandoff)
		w := serve(r, http.MethodGet, "/v1/handoff", nil)
		expectStatus(t, w, http.StatusOK)

		var body response.HandoffResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.DataURL != "data:application/pdf;base64,JVBERi0xLjQ=" {
			t.Fatalf("unexpected data url %q", body.DataURL)
		}
		if body.FileName != "estimate_EST-20250615-0427.pdf" {
			t.Fatalf("unexpected file name %q", body.FileName)
		}
	})

	t.Run("nothing staged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIHandoffUseCase(ctrl)
		uc.EXPECT().Consume(gomock.Any(), testSessionID).Return(nil, nil)

		r := newTestRouter()
		r.GET("/v1/handoff", NewHandoffHandler(uc).ConsumeHandoff)
		w := serve(r, http.MethodGet, "/v1/handoff", nil)
		expectStatus(t, w, http.StatusNoContent)
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIHandoffUseCase(ctrl)
		uc.EXPECT().Consume(gomock.Any(), testSessionID).Return(nil, errors.New("redis down"))

		r := newTestRouter()
		r.GET("/v1/handoff", NewHandoffHandler(uc).ConsumeHandoff)
		w := serve(r, http.MethodGet, "/v1/handoff", nil)
		expectStatus(t, w, http.StatusInternalServerError)
	})
}
