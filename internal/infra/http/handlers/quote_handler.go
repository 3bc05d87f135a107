package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/bimafrica/quote-api/internal/usecase"
)

type QuoteHandler struct {
	IntakeUC    *usecase.IntakeLeadUseCase
	FinalizeUC  *usecase.FinalizeQuoteUseCase
	rateLimiter *RateLimiter
}

func NewQuoteHandler(intakeUC *usecase.IntakeLeadUseCase, finalizeUC *usecase.FinalizeQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{
		IntakeUC:    intakeUC,
		FinalizeUC:  finalizeUC,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min per IP
	}
}

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HandleIntake captures a partial lead (POST /lead-intake).
func (h *QuoteHandler) HandleIntake(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeJSON(w, http.StatusTooManyRequests, errorResponse{
			Message: "Too many requests. Please try again later.",
		})
		return
	}

	var input usecase.IntakeLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid JSON"})
		return
	}

	output, err := h.IntakeUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

// HandleFinalize enriches a lead with project and pricing fields and
// assigns its quote number (POST /finalize).
func (h *QuoteHandler) HandleFinalize(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeJSON(w, http.StatusTooManyRequests, errorResponse{
			Message: "Too many requests. Please try again later.",
		})
		return
	}

	var input usecase.FinalizeQuoteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid JSON"})
		return
	}

	output, err := h.FinalizeUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

// HandleRoot answers the static status probe (GET /).
func (h *QuoteHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "api working",
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, err error) {
	switch e := err.(type) {
	case *usecase.DomainError:
		status := http.StatusBadRequest
		if e.Code == usecase.CodeQuoteNotFound {
			status = http.StatusNotFound
		}
		writeJSON(w, status, errorResponse{Message: e.Message})
	case *usecase.TechnicalError:
		switch e.Code {
		case usecase.CodeStoreTimeout, usecase.CodeStoreUnavailable:
			writeJSON(w, http.StatusServiceUnavailable, errorResponse{Message: "Service temporarily unavailable. Please try again."})
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "Something went wrong"})
		}
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "Something went wrong"})
	}
}
