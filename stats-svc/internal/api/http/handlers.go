package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"tiedan-noodle/stats-svc/internal/domain"
	"tiedan-noodle/stats-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Stats service.StatsInterface
}

func NewHandler(svc service.StatsInterface) *Handler {
	return &Handler{Stats: svc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")
	r.HandleFunc("/api/stats/popular", h.getPopular).Methods("GET")
	r.HandleFunc("/api/stats/reservations", h.getReservations).Methods("GET")
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) getPopular(w http.ResponseWriter, r *http.Request) {
	period := domain.Period(r.URL.Query().Get("period"))
	if period == "" {
		period = domain.PeriodToday
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = n
	}

	data, err := h.Stats.Popular(r.Context(), period, limit)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPeriod) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Printf("Error loading popular items: %v", err)
		writeJSON(w, http.StatusOK, []domain.ItemStat{})
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (h *Handler) getReservations(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	data, err := h.Stats.Reservations(r.Context(), date)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Printf("Error loading reservation stats for %s: %v", date, err)
		http.Error(w, "Stats unavailable", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, data)
}
