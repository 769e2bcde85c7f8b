package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/sumplot/sumplot/internal/model"
	"github.com/sumplot/sumplot/internal/service"
)

// CalculateHandler serves the public, stateless calculation endpoint.
type CalculateHandler struct {
	calcService service.ICalcService
	logger      *log.Logger
}

func NewCalculateHandler(s service.ICalcService, l *log.Logger) *CalculateHandler {
	return &CalculateHandler{
		calcService: s,
		logger:      l,
	}
}

func (h *CalculateHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var dto model.CalculationRequest
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	if err := validate.Struct(&dto); err != nil {
		respondWithError(w, http.StatusBadRequest, ValidationError(err))
		return
	}

	result, err := h.calcService.Add(r.Context(), &dto)
	if err != nil {
		h.logger.Printf("ERROR: %v", err)

		if errors.Is(err, service.ErrInvalidInput) {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		respondWithError(w, http.StatusInternalServerError, "An internal error occurred")
		return
	}

	respondWithJson(w, http.StatusOK, result)
}
