package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/XavierBriggs/fortuna/services/kelly-sizer/internal/calculator"
	"github.com/XavierBriggs/fortuna/services/kelly-sizer/pkg/models"
	"go.uber.org/zap"
)

// Handler contains dependencies for HTTP handlers
type Handler struct {
	logger            *zap.Logger
	defaultMultiplier float64
}

// NewHandler creates a new handler
func NewHandler(logger *zap.Logger, defaultMultiplier float64) *Handler {
	return &Handler{
		logger:            logger,
		defaultMultiplier: defaultMultiplier,
	}
}

// HealthCheck returns service health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "kelly-sizer",
	})
}

// Size computes the sizing bundle for one request. Validation failures
// come back as 422 with every violated precondition listed; malformed
// JSON is a plain 400.
func (h *Handler) Size(w http.ResponseWriter, r *http.Request) {
	var req models.SizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	multiplier := h.defaultMultiplier
	if req.Multiplier != nil {
		multiplier = *req.Multiplier
	}

	result, problems := calculator.Compute(calculator.Inputs{
		Probability:       req.Probability,
		ProbabilityFormat: calculator.ProbabilityFormat(req.ProbabilityFormat),
		Odds:              req.Odds,
		OddsFormat:        calculator.OddsFormat(req.OddsFormat),
		Multiplier:        multiplier,
		Bankroll:          req.Bankroll,
	})
	if len(problems) > 0 {
		h.logger.Info("size request rejected",
			zap.Strings("problems", problems))
		respondJSON(w, http.StatusUnprocessableEntity, models.ProblemsResponse{
			Problems: problems,
		})
		return
	}

	warnings := []string{}
	if result.FStarRaw <= 0 {
		warnings = append(warnings, "No positive edge - recommended stake is zero")
	}
	if result.FApplied > 0.05 {
		warnings = append(warnings, "Recommended bet is >5% of bankroll - high variance")
	}

	respondJSON(w, http.StatusOK, models.SizeResponse{
		NetOdds:         result.B,
		Probability:     result.P,
		LossProbability: result.Q,
		KellyRaw:        result.FStarRaw,
		KellyClamped:    result.FStarClamped,
		AppliedRaw:      result.FAppliedRaw,
		Applied:         result.FApplied,
		Stake:           result.Stake,
		Growth:          result.Growth,
		Breakdown:       calculator.Breakdown(result),
		Warnings:        warnings,
	})
}

// Presets returns the canned example and reset configurations
func (h *Handler) Presets(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, models.PresetsResponse{
		Example: models.ExamplePreset(),
		Reset:   models.ResetPreset(),
	})
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}
