package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/numerals-go/numerals/roman"
	"github.com/numerals-go/numerals/ternary"
)

type romanResponse struct {
	Input int    `json:"input"`
	Roman string `json:"roman"`
}

type ternaryResponse struct {
	Input   int64  `json:"input"`
	Ternary string `json:"ternary"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleRoman(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "number")
	n, err := strconv.Atoi(raw)
	if err != nil {
		conversionsTotal.WithLabelValues("roman", outcomeBadRequest).Inc()
		writeError(w, http.StatusBadRequest, fmt.Sprintf("not an integer: %q", raw))
		return
	}

	text, err := roman.From(n).Text()
	if err != nil {
		// Held values outside [roman.Min, roman.Max] are valid integers but
		// have no classical rendering: 422, never a clamped or partial string.
		conversionsTotal.WithLabelValues("roman", outcomeUnrepresentable).Inc()
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	conversionsTotal.WithLabelValues("roman", outcomeOK).Inc()
	writeJSON(w, http.StatusOK, romanResponse{Input: n, Roman: text})
}

func (s *Server) handleTernary(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "number")
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		conversionsTotal.WithLabelValues("ternary", outcomeBadRequest).Inc()
		writeError(w, http.StatusBadRequest, fmt.Sprintf("not a 64-bit integer: %q", raw))
		return
	}

	conversionsTotal.WithLabelValues("ternary", outcomeOK).Inc()
	writeJSON(w, http.StatusOK, ternaryResponse{Input: n, Ternary: ternary.From(n).String()})
}
