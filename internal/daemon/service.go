// Package daemon provides the long-running background service: it serves
// totals over a local HTTP API and refreshes the FX snapshot on a cron
// schedule. An FX failure keeps the previous snapshot and is surfaced as
// degraded state, never discarded silently.
package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/theirongolddev/kakeibo/internal/fx"
	"github.com/theirongolddev/kakeibo/internal/model"
	"github.com/theirongolddev/kakeibo/internal/pipeline"
	"github.com/theirongolddev/kakeibo/internal/store"
)

// Config controls the daemon runtime behavior.
type Config struct {
	DBPath    string
	FXBaseURL string
	Addr      string
	Interval  time.Duration
	FXSpec    string // cron spec for FX refresh
}

// Status is served at /v1/status.
type Status struct {
	StartedAt  time.Time    `json:"started_at"`
	LastPollAt time.Time    `json:"last_poll_at"`
	PollCount  int64        `json:"poll_count"`
	Month      string       `json:"month"`
	FXDate     string       `json:"fx_date,omitempty"`
	FXDegraded bool         `json:"fx_degraded"`
	LastError  string       `json:"last_error,omitempty"`
	Totals     model.Totals `json:"totals"`
}

// Service polls the store and serves current totals.
type Service struct {
	cfg Config
	log *logrus.Logger

	mu         sync.RWMutex
	startedAt  time.Time
	lastPollAt time.Time
	pollCount  int64
	lastError  string
	fxDegraded bool
	month      string
	fxDate     string
	totals     model.Totals
}

// New returns a daemon service with the provided config.
func New(cfg Config, log *logrus.Logger) *Service {
	if cfg.Interval < 2*time.Second {
		cfg.Interval = 30 * time.Second
	}
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8790"
	}
	if cfg.FXSpec == "" {
		cfg.FXSpec = "0 6 * * *" // daily, after quote publication
	}
	if cfg.DBPath == "" {
		cfg.DBPath = store.DefaultPath()
	}
	if log == nil {
		log = logrus.New()
	}
	return &Service{cfg: cfg, log: log, startedAt: time.Now()}
}

// Run serves HTTP and polls until ctx is canceled.
func (s *Service) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/v1/status", s.handleStatus)
	mux.HandleFunc("/v1/totals", s.handleTotals)

	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	c := cron.New()
	if _, err := c.AddFunc(s.cfg.FXSpec, func() { s.refreshFX(ctx) }); err != nil {
		return err
	}

	// Seed immediately so status is useful from the first request.
	s.pollOnce()
	s.refreshFX(ctx)
	c.Start()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		ticker := time.NewTicker(s.cfg.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				s.pollOnce()
			}
		}
	})

	g.Go(func() error {
		<-ctx.Done()
		<-c.Stop().Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	s.log.WithField("addr", s.cfg.Addr).Info("daemon listening")
	return g.Wait()
}

// pollOnce recomputes totals from the store.
func (s *Service) pollOnce() {
	st, err := s.loadState()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pollCount++
	s.lastPollAt = time.Now()
	if err != nil {
		s.lastError = err.Error()
		s.log.WithError(err).Warn("poll failed")
		return
	}

	s.lastError = ""
	s.month = st.Month
	s.fxDate = st.FX.Date
	s.totals = pipeline.ComputeTotals(st, st.Month)
}

func (s *Service) loadState() (*model.State, error) {
	db, err := store.Open(s.cfg.DBPath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = db.Close() }()
	return db.LoadState("")
}

// refreshFX fetches a fresh snapshot and caches it. Failure marks the
// service degraded but keeps the previous snapshot.
func (s *Service) refreshFX(ctx context.Context) {
	client := fx.NewClient(s.cfg.FXBaseURL, s.log)
	snap, err := client.FetchLatest(ctx)

	s.mu.Lock()
	if err != nil {
		s.fxDegraded = true
		s.lastError = err.Error()
		s.mu.Unlock()
		s.log.WithError(err).Warn("fx refresh failed, keeping previous snapshot")
		return
	}
	s.fxDegraded = false
	s.fxDate = snap.Date
	s.mu.Unlock()

	db, err := store.Open(s.cfg.DBPath)
	if err != nil {
		s.log.WithError(err).Warn("fx cache write skipped")
		return
	}
	defer func() { _ = db.Close() }()
	if err := db.SaveFX(snap); err != nil {
		s.log.WithError(err).Warn("fx cache write failed")
		return
	}
	s.pollOnce()
}

func (s *Service) status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Status{
		StartedAt:  s.startedAt,
		LastPollAt: s.lastPollAt,
		PollCount:  s.pollCount,
		Month:      s.month,
		FXDate:     s.fxDate,
		FXDegraded: s.fxDegraded,
		LastError:  s.lastError,
		Totals:     s.totals,
	}
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Service) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.status())
}

func (s *Service) handleTotals(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.status().Totals)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
