package health_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/dalemusser/coursehub/internal/app/features/health"
	"github.com/dalemusser/coursehub/internal/testutil"
)

func TestServe_Healthy(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := health.NewHandler(db.Client(), zap.NewNop())

	req := httptest.NewRequest("GET", "/health", nil)
	rec := testutil.NewRecorder()

	handler.Serve(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)

	var resp struct {
		Status   string `json:"status"`
		Database string `json:"database"`
	}
	rec.DecodeJSON(t, &resp)
	if resp.Status != "ok" || resp.Database != "connected" {
		t.Errorf("unexpected health body: %+v", resp)
	}
}

func TestRoutes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := health.NewHandler(db.Client(), zap.NewNop())
	if health.Routes(handler) == nil {
		t.Fatal("Routes() returned nil")
	}
}
