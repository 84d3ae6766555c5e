package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/shoply/admin-backend/internal/pkg/ctxutil"
)

func TestAttachTraceContextEchoesInboundIDs(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	var seen *ctxutil.TraceData
	r := gin.New()
	r.Use(AttachTraceContext())
	r.GET("/probe", func(c *gin.Context) {
		seen = ctxutil.GetTraceData(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("X-Trace-Id", "trace-123")
	req.Header.Set("X-Request-Id", "req-456")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Trace-Id"); got != "trace-123" {
		t.Fatalf("trace id not echoed: got=%q", got)
	}
	if got := rec.Header().Get("X-Request-Id"); got != "req-456" {
		t.Fatalf("request id not echoed: got=%q", got)
	}
	if seen == nil || seen.TraceID != "trace-123" || seen.RequestID != "req-456" {
		t.Fatalf("trace data not propagated to handler context: %+v", seen)
	}
}

func TestAttachTraceContextMintsIDsWhenMissing(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(AttachTraceContext())
	r.GET("/probe", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Header().Get("X-Trace-Id") == "" {
		t.Fatal("expected a minted trace id header")
	}
	if rec.Header().Get("X-Request-Id") == "" {
		t.Fatal("expected a minted request id header")
	}
}
