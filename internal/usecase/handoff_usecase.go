package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"

	"go.uber.org/zap"

	"web_estimate/internal/domain/entities"
	"web_estimate/internal/domain/estimate"
	"web_estimate/internal/usecase/interfaces"
)

const (
	HandoffPDFKey    = "estimatePdfData"
	HandoffNumberKey = "estimateNumber"

	pdfDataURLPrefix = "data:application/pdf;base64,"
)

var (
	ErrEmptyHandoff = errors.New("handoff requires a pdf and an estimate number")
)

// IHandoffUseCase stages a generated estimate PDF for the contact form.
//
// Delivery is at-most-once: Consume takes both keys, so a second call
// returns nil. Nothing staged is a normal outcome, not an error.

type IHandoffUseCase interface {
	Stage(ctx context.Context, sessionID string, blob []byte, estimateNumber string) error
	Consume(ctx context.Context, sessionID string) (*entities.Handoff, error)
}

type HandoffUseCase struct {
	store   interfaces.ISessionStore
	log     *zap.Logger
	metrics interfaces.IMetrics
}

var _ IHandoffUseCase = (*HandoffUseCase)(nil)

func NewHandoffUseCase(store interfaces.ISessionStore, log *zap.Logger, metrics interfaces.IMetrics) *HandoffUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &HandoffUseCase{store: store, log: log, metrics: metrics}
}

// Stage writes the PDF as a data URL, then the estimate number. If the second
// write fails the first one is rolled back.
func (u *HandoffUseCase) Stage(ctx context.Context, sessionID string, blob []byte, estimateNumber string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ErrInvalidSessionID
	}
	estimateNumber = strings.TrimSpace(estimateNumber)
	if len(blob) == 0 || estimateNumber == "" {
		return ErrEmptyHandoff
	}

	pdfKey := sessionKey(sessionID, HandoffPDFKey)
	if err := u.store.Set(ctx, pdfKey, EncodePDFDataURL(blob)); err != nil {
		u.log.Error("[handoff][usecase] stage pdf failed", zap.String("session_id", sessionID), zap.Error(err))
		return err
	}
	if err := u.store.Set(ctx, sessionKey(sessionID, HandoffNumberKey), estimateNumber); err != nil {
		u.log.Error("[handoff][usecase] stage number failed", zap.String("session_id", sessionID), zap.Error(err))
		if delErr := u.store.Delete(ctx, pdfKey); delErr != nil {
			u.log.Warn("[handoff][usecase] rollback failed", zap.String("session_id", sessionID), zap.Error(delErr))
		}
		return err
	}
	u.metrics.Handoff("staged")
	u.log.Info("[handoff][usecase] staged", zap.String("session_id", sessionID), zap.String("estimate_number", estimateNumber), zap.Int("bytes", len(blob)))
	return nil
}

func (u *HandoffUseCase) Consume(ctx context.Context, sessionID string) (*entities.Handoff, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidSessionID
	}

	// The number goes first: a failed read leaves the pdf staged.
	number, hasNumber, err := u.store.Take(ctx, sessionKey(sessionID, HandoffNumberKey))
	if err != nil {
		u.log.Error("[handoff][usecase] take number failed", zap.String("session_id", sessionID), zap.Error(err))
		return nil, err
	}
	dataURL, hasPDF, err := u.store.Take(ctx, sessionKey(sessionID, HandoffPDFKey))
	if err != nil {
		u.log.Warn("[handoff][usecase] take pdf failed, discarding estimate number", zap.String("session_id", sessionID), zap.String("estimate_number", number), zap.Error(err))
		return nil, err
	}
	if !hasPDF || !hasNumber {
		return nil, nil
	}

	blob, err := DecodePDFDataURL(dataURL)
	if err != nil {
		u.log.Warn("[handoff][usecase] discarding unreadable pdf", zap.String("session_id", sessionID), zap.Error(err))
		return nil, nil
	}
	u.metrics.Handoff("consumed")
	return &entities.Handoff{
		EstimateNumber: number,
		FileName:       estimate.PDFFileName(number),
		Blob:           blob,
	}, nil
}

func EncodePDFDataURL(blob []byte) string {
	return pdfDataURLPrefix + base64.StdEncoding.EncodeToString(blob)
}

func DecodePDFDataURL(s string) ([]byte, error) {
	payload, ok := strings.CutPrefix(s, pdfDataURLPrefix)
	if !ok {
		return nil, errors.New("not a pdf data url")
	}
	return base64.StdEncoding.DecodeString(payload)
}
