// pkg/telemetry/server.go

// Package telemetry exposes live flight state over HTTP and pushes
// snapshots to an optional remote collector. The simulation loop stays
// single-threaded: it publishes value snapshots into an atomic holder
// and HTTP handlers only ever read those copies.
package telemetry

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/opd-ai/go-flighttrainer/pkg/engine"
	"github.com/opd-ai/go-flighttrainer/pkg/logging"
)

// Holder stores the latest flight snapshot for concurrent readers.
type Holder struct {
	current atomic.Pointer[engine.FlightParameters]
}

// Publish stores a snapshot and updates the process metrics.
func (h *Holder) Publish(params engine.FlightParameters) {
	h.current.Store(&params)
	Observe(params)
}

// Latest returns the most recent snapshot, or false before the first
// tick has been published.
func (h *Holder) Latest() (engine.FlightParameters, bool) {
	p := h.current.Load()
	if p == nil {
		return engine.FlightParameters{}, false
	}
	return *p, true
}

// Server serves the REST state endpoint and Prometheus metrics.
type Server struct {
	holder *Holder
	logger *logging.Logger
	http   *http.Server
}

// NewServer creates a telemetry server listening on addr.
func NewServer(addr string, holder *Holder) *Server {
	s := &Server{
		holder: holder,
		logger: logging.NewLogger(),
	}

	router := mux.NewRouter()
	router.HandleFunc("/api/state", s.handleState).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	s.http = &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Start begins serving in the calling goroutine. It returns when the
// server is shut down or fails to listen.
func (s *Server) Start() error {
	s.logger.Info(context.Background(), "telemetry server listening",
		"addr", s.http.Addr,
	)
	err := s.http.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	params, ok := s.holder.Latest()
	if !ok {
		http.Error(w, "no snapshot published yet", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(params); err != nil {
		s.logger.Error(r.Context(), "failed to encode state snapshot", err)
	}
}
