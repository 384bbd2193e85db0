// Package server exposes the calculation engine over a small JSON API so
// front ends can call the exact same core the CLI uses. It carries no
// state: every request is a full recomputation.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/pnlgo/pnl-budgeter/internal/calculation"
	"github.com/pnlgo/pnl-budgeter/internal/domain"
)

// Server wires the engine into HTTP handlers.
type Server struct {
	engine *calculation.Engine
	logger *zap.Logger
}

// New creates a server around an engine. A nil logger disables logging.
func New(engine *calculation.Engine, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{engine: engine, logger: logger}
}

// Router builds the chi route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/calc", s.handleCalc)
		r.Post("/normalize", s.handleNormalize)
		r.Post("/scenario", s.handleScenario)
		r.Get("/fields", s.handleFields)
		r.Get("/growth-options", s.handleGrowthOptions)
	})
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleCalc runs the aggregate calculation on a full input record.
func (s *Server) handleCalc(w http.ResponseWriter, r *http.Request) {
	var in domain.CalculationInputs
	if !s.decode(w, r, &in) {
		return
	}
	if in.Region == "" {
		in.Region = domain.RegionUS
	}
	if !in.Region.Valid() {
		s.writeError(w, http.StatusBadRequest, "region must be US or CA")
		return
	}
	s.writeJSON(w, http.StatusOK, calculation.Calc(in))
}

// handleNormalize derives the complete prior-year record from raw input.
func (s *Server) handleNormalize(w http.ResponseWriter, r *http.Request) {
	var raw domain.RawPriorYearMetrics
	if !s.decode(w, r, &raw) {
		return
	}
	s.writeJSON(w, http.StatusOK, calculation.NormalizePriorYearMetrics(raw))
}

// handleScenario runs a full scenario pass, projection included.
func (s *Server) handleScenario(w http.ResponseWriter, r *http.Request) {
	var sc domain.Scenario
	if !s.decode(w, r, &sc) {
		return
	}
	report, err := s.engine.RunScenario(sc)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, report)
}

// handleFields serves the expense field registry, gated by region when the
// region query parameter is present.
func (s *Server) handleFields(w http.ResponseWriter, r *http.Request) {
	regionParam := r.URL.Query().Get("region")
	if regionParam == "" {
		s.writeJSON(w, http.StatusOK, calculation.ExpenseFields())
		return
	}
	region := domain.Region(regionParam)
	if !region.Valid() {
		s.writeError(w, http.StatusBadRequest, "region must be US or CA")
		return
	}
	s.writeJSON(w, http.StatusOK, calculation.ExpenseFieldsForRegion(region))
}

func (s *Server) handleGrowthOptions(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, calculation.GrowthOptions)
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("failed to encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}
