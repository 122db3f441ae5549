package logger

import (
	"Sokdak/internal/api/config"
	"bytes"
	"context"
	log "log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

func TestContextHandlerAddsTraceID(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, config.LogConfig{Level: "info", Format: "json"})

	ctx := WithTraceID(context.Background(), "trace-123")
	l.InfoContext(ctx, "hello")

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal log line: %v (%s)", err, buf.String())
	}
	if got["trace_id"] != "trace-123" {
		t.Errorf("trace_id = %v, want trace-123", got["trace_id"])
	}
	if got["msg"] != "hello" {
		t.Errorf("msg = %v, want hello", got["msg"])
	}
}

func TestContextHandlerWithoutTraceID(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, config.LogConfig{Format: "json"})
	l.Info("plain")

	if strings.Contains(buf.String(), "trace_id") {
		t.Errorf("unexpected trace_id in %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"debug", log.LevelDebug},
		{"INFO", log.LevelInfo},
		{" warn ", log.LevelWarn},
		{"warning", log.LevelWarn},
		{"error", log.LevelError},
		{"", log.LevelInfo},
		{"verbose", log.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTeeHandlerRespectsLevels(t *testing.T) {
	var infoBuf, errBuf bytes.Buffer
	tee := NewTeeHandler(
		log.NewJSONHandler(&infoBuf, &log.HandlerOptions{Level: log.LevelInfo}),
		log.NewJSONHandler(&errBuf, &log.HandlerOptions{Level: log.LevelError}),
	)
	l := log.New(tee).With("component", "test")

	l.Info("info line")
	l.Error("error line")

	if n := strings.Count(infoBuf.String(), "\n"); n != 2 {
		t.Errorf("info handler got %d lines, want 2", n)
	}
	if n := strings.Count(errBuf.String(), "\n"); n != 1 {
		t.Errorf("error handler got %d lines, want 1", n)
	}
	if !strings.Contains(errBuf.String(), `"component":"test"`) {
		t.Errorf("attrs not propagated: %s", errBuf.String())
	}
}

func TestFormatAccessLog(t *testing.T) {
	req := httptest.NewRequest("GET", "/posts/1", nil)
	req = req.WithContext(WithTraceID(req.Context(), "from-ctx"))

	line := formatAccessLog(gin.LogFormatterParams{
		Request:    req,
		TimeStamp:  time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		StatusCode: 200,
		Latency:    3 * time.Millisecond,
		Method:     "GET",
		Path:       "/posts/1",
	})

	var got accessLog
	if err := json.Unmarshal([]byte(line), &got); err != nil {
		t.Fatalf("unmarshal access log: %v", err)
	}
	if got.TraceID != "from-ctx" || got.Status != 200 || got.Path != "/posts/1" {
		t.Errorf("unexpected access log: %+v", got)
	}
	if !strings.HasSuffix(line, "\n") {
		t.Error("access log line must end with newline")
	}
}
