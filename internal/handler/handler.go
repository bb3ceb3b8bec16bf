package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Dan9191/coop-loan-analytics/internal/models"
	"github.com/Dan9191/coop-loan-analytics/internal/service"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// Analyzer is the part of the service the handlers use
type Analyzer interface {
	AnalyzeGroup(ctx context.Context, groupID string, asOf time.Time) (*models.AnalysisResult, error)
	KeyRate(ctx context.Context) (float64, error)
}

type Handler struct {
	svc Analyzer
	log *logrus.Logger
}

func NewHandler(svc Analyzer, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// Register mounts the handlers. protected wraps routes that need a caller identity.
func (h *Handler) Register(r *mux.Router, protected mux.MiddlewareFunc) {
	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	r.HandleFunc("/key-rate", h.KeyRate).Methods(http.MethodGet)

	groups := r.PathPrefix("/groups").Subrouter()
	if protected != nil {
		groups.Use(protected)
	}
	groups.HandleFunc("/{groupID}/loan-analytics", h.LoanAnalytics).Methods(http.MethodGet)
}

// Health reports liveness
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// LoanAnalytics returns the portfolio analysis of a group
func (h *Handler) LoanAnalytics(w http.ResponseWriter, r *http.Request) {
	groupID := mux.Vars(r)["groupID"]

	var asOf time.Time
	if s := r.URL.Query().Get("now"); s != "" {
		d, err := time.Parse(time.DateOnly, s)
		if err != nil {
			http.Error(w, "now must be a YYYY-MM-DD date", http.StatusBadRequest)
			return
		}
		// Evaluate at the end of the requested day
		asOf = d.Add(24*time.Hour - time.Nanosecond)
	}

	result, err := h.svc.AnalyzeGroup(r.Context(), groupID, asOf)
	switch {
	case errors.Is(err, models.ErrGroupNotFound):
		http.Error(w, "group not found", http.StatusNotFound)
		return
	case errors.Is(err, models.ErrInvalidSnapshot):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	case err != nil:
		h.log.Errorf("Failed to analyze group %s: %v", groupID, err)
		http.Error(w, "failed to load loan analytics", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// KeyRate returns the current benchmark key rate
func (h *Handler) KeyRate(w http.ResponseWriter, r *http.Request) {
	rate, err := h.svc.KeyRate(r.Context())
	if errors.Is(err, service.ErrNoKeyRate) {
		http.Error(w, "key rate source not configured", http.StatusServiceUnavailable)
		return
	}
	if err != nil {
		h.log.Errorf("Failed to get key rate: %v", err)
		http.Error(w, "failed to get key rate", http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{"key_rate": rate})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
