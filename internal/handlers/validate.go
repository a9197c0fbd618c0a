package handlers

import (
	"io"
	"log"
	"net/http"
	"strings"

	"pnrcheck/internal/metrics"
	"pnrcheck/internal/utils"

	"github.com/go-chi/chi/v5"
)

type ValidationResult struct {
	Number string `json:"number"`
	Valid  bool   `json:"valid"`
}

type ValidateHandler struct {
	validator PersonnummerValidator
	metrics   *metrics.Metrics
}

func NewValidateHandler(validator PersonnummerValidator, m *metrics.Metrics) *ValidateHandler {
	return &ValidateHandler{validator: validator, metrics: m}
}

// ServeHTTP validates the personnummer carried in the request body.
func (h *ValidateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("Failed to read request body: %v", err)
		utils.WriteJSONError(w, http.StatusBadRequest, "Cannot read request body")
		return
	}

	number := strings.TrimSpace(string(body))
	if number == "" {
		log.Printf("Empty personnummer in request body")
		utils.WriteJSONError(w, http.StatusBadRequest, "Personnummer is required")
		return
	}

	h.respond(w, number)
}

// ServeHTTPParam validates the personnummer carried in the URL.
func (h *ValidateHandler) ServeHTTPParam(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")
	if number == "" {
		log.Printf("Empty personnummer in URL")
		utils.WriteJSONError(w, http.StatusBadRequest, "Personnummer is required")
		return
	}

	h.respond(w, number)
}

func (h *ValidateHandler) respond(w http.ResponseWriter, number string) {
	valid := h.validator.ValidatePersonnummer(number)
	h.metrics.ObserveValidation(valid)
	log.Printf("Personnummer validated: valid=%v", valid)
	utils.WriteJSON(w, http.StatusOK, ValidationResult{Number: number, Valid: valid})
}
