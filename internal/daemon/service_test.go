package daemon

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"
)

func TestNewAppliesDefaults(t *testing.T) {
	s := New(Config{}, nil)
	if s.cfg.Interval != 30*time.Second {
		t.Fatalf("Interval = %v, want 30s", s.cfg.Interval)
	}
	if s.cfg.Addr != "127.0.0.1:8790" {
		t.Fatalf("Addr = %q", s.cfg.Addr)
	}
	if s.cfg.FXSpec != "0 6 * * *" {
		t.Fatalf("FXSpec = %q", s.cfg.FXSpec)
	}
	if s.cfg.DBPath == "" {
		t.Fatal("DBPath not defaulted")
	}
}

func TestNewKeepsExplicitConfig(t *testing.T) {
	s := New(Config{Addr: "127.0.0.1:9000", Interval: time.Minute, FXSpec: "30 7 * * *"}, nil)
	if s.cfg.Addr != "127.0.0.1:9000" || s.cfg.Interval != time.Minute || s.cfg.FXSpec != "30 7 * * *" {
		t.Fatalf("config overridden: %+v", s.cfg)
	}
}

func TestPollOnceComputesTotals(t *testing.T) {
	s := New(Config{DBPath: filepath.Join(t.TempDir(), "kakeibo.db")}, nil)

	s.pollOnce()

	status := s.status()
	if status.PollCount != 1 {
		t.Fatalf("PollCount = %d, want 1", status.PollCount)
	}
	if status.LastError != "" {
		t.Fatalf("LastError = %q", status.LastError)
	}
	if status.Month == "" {
		t.Fatal("Month not populated after poll")
	}
}

func TestStatusHandler(t *testing.T) {
	s := New(Config{DBPath: filepath.Join(t.TempDir(), "kakeibo.db")}, nil)
	s.pollOnce()

	rec := httptest.NewRecorder()
	s.handleStatus(rec, httptest.NewRequest(http.MethodGet, "/v1/status", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type = %q", ct)
	}

	var got Status
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if got.PollCount != 1 {
		t.Fatalf("PollCount = %d, want 1", got.PollCount)
	}
}

func TestHealthHandler(t *testing.T) {
	s := New(Config{}, nil)
	rec := httptest.NewRecorder()
	s.handleHealth(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("health = %d %q", rec.Code, rec.Body.String())
	}
}
