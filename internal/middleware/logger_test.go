package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func loggedRouter(t *testing.T) (*gin.Engine, *observer.ObservedLogs) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)
	r := gin.New()
	r.Use(Logger(zap.New(core)))
	r.GET("/health", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/api/news", func(c *gin.Context) { c.String(http.StatusOK, "[]") })
	return r, logs
}

func TestLoggerRecordsRequestLine(t *testing.T) {
	r, logs := loggedRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/news?page=2", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d log entries, want 1", len(entries))
	}
	if entries[0].Message != "GET /api/news" {
		t.Errorf("message = %q, want %q", entries[0].Message, "GET /api/news")
	}
	fields := entries[0].ContextMap()
	if fields["status"] != int64(http.StatusOK) {
		t.Errorf("status field = %v, want %d", fields["status"], http.StatusOK)
	}
	if fields["query"] != "page=2" {
		t.Errorf("query field = %v, want page=2", fields["query"])
	}
}

func TestLoggerSkipsHealthProbes(t *testing.T) {
	r, logs := loggedRouter(t)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	if n := logs.Len(); n != 0 {
		t.Errorf("health probe produced %d log entries, want 0", n)
	}
}
