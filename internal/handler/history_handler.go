package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/sumplot/sumplot/internal/model"
	"github.com/sumplot/sumplot/internal/service"
)

// HistoryHandler serves the authenticated calculation-history endpoints.
type HistoryHandler struct {
	historyService service.IHistoryService
	logger         *log.Logger
}

func NewHistoryHandler(s service.IHistoryService, l *log.Logger) *HistoryHandler {
	return &HistoryHandler{
		historyService: s,
		logger:         l,
	}
}

// CreateCalculation performs the addition and saves it for the caller.
func (h *HistoryHandler) CreateCalculation(w http.ResponseWriter, r *http.Request) {
	claims, ok := GetUserFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var dto model.CalculationRequest
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	if err := validate.Struct(&dto); err != nil {
		respondWithError(w, http.StatusBadRequest, ValidationError(err))
		return
	}

	calculation, err := h.historyService.Record(r.Context(), claims.ID, &dto)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		h.logger.Printf("Error saving calculation: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to save calculation")
		return
	}

	respondWithJson(w, http.StatusCreated, calculation)
}

// ListCalculations returns the caller's saved calculations, newest first.
func (h *HistoryHandler) ListCalculations(w http.ResponseWriter, r *http.Request) {
	claims, ok := GetUserFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	calculations, err := h.historyService.ListByUser(r.Context(), claims.ID)
	if err != nil {
		h.logger.Printf("Error listing calculations: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to list calculations")
		return
	}

	if calculations == nil {
		calculations = []*model.Calculation{}
	}
	respondWithJson(w, http.StatusOK, map[string]interface{}{"calculations": calculations})
}
