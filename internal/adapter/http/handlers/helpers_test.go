package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"web_estimate/internal/adapter/http/middleware"
	"web_estimate/pkg"

	"github.com/gin-gonic/gin"
)

const testSessionID = "0b6f3c7e-5f0a-4a55-9d43-3f1e8f0c2a11"

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.SessionContextKey, testSessionID)
		c.Next()
	})
	return r
}

func serve(r *gin.Engine, method, path string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", w.Body.String(), err)
	}
	return body
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("expected %d, got %d (%s)", want, w.Code, w.Body.String())
	}
}
