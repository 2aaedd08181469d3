package telemetry

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestLogLevel(t *testing.T) {
	tests := []struct {
		env  string
		want slog.Level
	}{
		{"", slog.LevelWarn},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"ERROR", slog.LevelError},
		{"garbage", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Setenv("LOG_LEVEL", tt.env)
		if got := LogLevel(slog.LevelWarn); got != tt.want {
			t.Errorf("LOG_LEVEL=%q: expected %v, got %v", tt.env, tt.want, got)
		}
	}
}

func TestNewLogger_LevelVar(t *testing.T) {
	t.Setenv("LOG_FORMAT", "")

	var buf bytes.Buffer
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	logger := NewLogger(&buf, level)

	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug should be filtered, got %q", buf.String())
	}

	level.Set(slog.LevelDebug)
	logger.Debug("visible", "k", "v")
	if !strings.Contains(buf.String(), "msg=visible") {
		t.Errorf("expected text record, got %q", buf.String())
	}
}

func TestNewLogger_JSON(t *testing.T) {
	t.Setenv("LOG_FORMAT", "json")

	var buf bytes.Buffer
	logger := NewLogger(&buf, new(slog.LevelVar))
	logger.Info("hello")

	if !strings.HasPrefix(buf.String(), "{") {
		t.Errorf("expected JSON record, got %q", buf.String())
	}
}

func TestFromContext(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	ctx := WithLogger(context.Background(), logger)

	if FromContext(ctx) != logger {
		t.Error("expected logger from context")
	}
	if FromContext(context.Background()) != slog.Default() {
		t.Error("expected default logger for empty context")
	}
}

func TestMetrics_ObserveRequest(t *testing.T) {
	m := NewMetrics()

	m.ObserveRequest("/GetWebServiceState", 200, 10*time.Millisecond)
	m.ObserveRequest("/GetWebServiceState", 200, 10*time.Millisecond)
	m.ObserveRequest("/PatientInfo", 0, time.Second)

	if got := testutil.ToFloat64(m.requests.WithLabelValues("/GetWebServiceState", "200")); got != 2 {
		t.Errorf("expected 2 requests, got %v", got)
	}
	if got := testutil.ToFloat64(m.requests.WithLabelValues("/PatientInfo", "error")); got != 1 {
		t.Errorf("expected 1 failed request, got %v", got)
	}
	if got := testutil.CollectAndCount(m.duration); got != 2 {
		t.Errorf("expected 2 histogram series, got %d", got)
	}
}

func TestMetrics_Observed(t *testing.T) {
	m := NewMetrics()
	if m.Observed() {
		t.Error("fresh metrics should not be observed")
	}

	m.ObserveRequest("/GetWebServiceVersion", 200, time.Millisecond)
	if !m.Observed() {
		t.Error("expected observed after request")
	}
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	if m.Observed() {
		t.Error("nil metrics should not be observed")
	}
	m.ObserveRequest("/x", 200, time.Millisecond)
	if err := m.Push(context.Background(), "http://localhost:1"); err != nil {
		t.Errorf("nil metrics push should be noop, got %v", err)
	}
}

func TestMetrics_Push(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	m := NewMetrics()
	m.ObserveRequest("/GetWebServiceVersion", 200, time.Millisecond)

	if err := m.Push(context.Background(), server.URL); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/metrics/job/"+PushJob {
		t.Errorf("unexpected push path %q", gotPath)
	}
}

func TestMetrics_PushError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	m := NewMetrics()
	m.ObserveRequest("/GetWebServiceVersion", 200, time.Millisecond)
	if err := m.Push(context.Background(), server.URL); err == nil {
		t.Error("expected error from failing gateway")
	}
}
