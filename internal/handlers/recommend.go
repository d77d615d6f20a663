package handlers

import (
	"errors"
	"net/http"

	"github.com/HammerMeetNail/plantcare/internal/logging"
	"github.com/HammerMeetNail/plantcare/internal/models"
	"github.com/HammerMeetNail/plantcare/internal/services"
	"github.com/HammerMeetNail/plantcare/internal/validation"
)

const (
	// The nourishment form blocks with one message; the care plan form
	// marks each missing field.
	msgFillAllFields = "Please fill in all fields."
	msgCorrectFields = "Please correct the highlighted fields."
)

type RecommendHandler struct {
	advisor services.AdvisorServiceInterface
	logger  *logging.Logger
}

func NewRecommendHandler(advisor services.AdvisorServiceInterface, logger *logging.Logger) *RecommendHandler {
	if logger == nil {
		logger = logging.Default
	}
	return &RecommendHandler{advisor: advisor, logger: logger}
}

func (h *RecommendHandler) Nourish(w http.ResponseWriter, r *http.Request) {
	var req models.NourishmentInput
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.advisor.Nourish(r.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, msgFillAllFields)
			return
		}
		h.internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *RecommendHandler) CarePlan(w http.ResponseWriter, r *http.Request) {
	var req models.CareInput
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	plan, err := h.advisor.PlanCare(r.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			writeJSON(w, http.StatusBadRequest, ValidationErrorResponse{
				Error:  msgCorrectFields,
				Fields: fieldErrors(err),
			})
			return
		}
		h.internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, plan)
}

func (h *RecommendHandler) Options(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.advisor.Options())
}

func (h *RecommendHandler) Rules(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.advisor.Rules())
}

func (h *RecommendHandler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	logging.FromContext(r.Context(), h.logger).Error("Recommendation failed", map[string]interface{}{
		"path":  r.URL.Path,
		"error": err.Error(),
	})
	writeError(w, http.StatusInternalServerError, "Internal server error")
}

// fieldErrors extracts per-field messages from a service validation error.
func fieldErrors(err error) map[string]string {
	var verr *validation.RequestValidationError
	if errors.As(err, &verr) {
		return verr.Fields()
	}
	return nil
}
