package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mkolosov/noteflow-srs/internal/domain"
	"github.com/mkolosov/noteflow-srs/internal/service/review"
)

// ReviewHandler serves the scheduling-engine endpoints.
type ReviewHandler struct {
	svc *review.Service
	log *slog.Logger
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(svc *review.Service, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		svc: svc,
		log: logger.With("handler", "review"),
	}
}

// reviewRequest is the body for POST /v1/review.
type reviewRequest struct {
	Record      domain.TopicRecord `json:"record"`
	Grade       string             `json:"grade"`
	Today       string             `json:"today"`
	ElapsedDays *int               `json:"elapsedDays,omitempty"`
}

// reviewResponse pairs the replacement record with the history artifact.
type reviewResponse struct {
	Record       domain.TopicRecord  `json:"record"`
	ReviewRecord domain.ReviewRecord `json:"reviewRecord"`
}

// Review applies one grade to one topic record.
// POST /v1/review
func (h *ReviewHandler) Review(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	grade, err := domain.ParseGrade(req.Grade)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	record, reviewLog, err := h.svc.ApplyGrade(r.Context(), review.ApplyGradeInput{
		Record:      req.Record,
		Grade:       grade,
		Today:       req.Today,
		ElapsedDays: req.ElapsedDays,
	})
	if err != nil {
		h.respondError(w, r, "apply grade", err)
		return
	}

	writeJSON(w, http.StatusOK, reviewResponse{Record: record, ReviewRecord: reviewLog})
}

// previewRequest is the body for POST /v1/preview.
type previewRequest struct {
	Record      domain.TopicRecord `json:"record"`
	Today       string             `json:"today,omitempty"`
	ElapsedDays *int               `json:"elapsedDays,omitempty"`
}

// previewResponse lists one outcome per grade, Again through Easy.
type previewResponse struct {
	Outcomes []domain.PreviewOutcome `json:"outcomes"`
}

// Preview evaluates all four grades without mutating anything.
// POST /v1/preview
func (h *ReviewHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	outcomes, err := h.svc.Preview(review.PreviewInput{
		Record:      req.Record,
		Today:       req.Today,
		ElapsedDays: req.ElapsedDays,
	})
	if err != nil {
		h.respondError(w, r, "preview", err)
		return
	}

	writeJSON(w, http.StatusOK, previewResponse{Outcomes: outcomes[:]})
}

// retrievabilityRequest is the body for POST /v1/retrievability.
type retrievabilityRequest struct {
	Record domain.TopicRecord `json:"record"`
	Today  string             `json:"today"`
}

type retrievabilityResponse struct {
	Retrievability float64 `json:"retrievability"`
}

// Retrievability returns the modeled recall probability at the given date.
// POST /v1/retrievability
func (h *ReviewHandler) Retrievability(w http.ResponseWriter, r *http.Request) {
	var req retrievabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	ret, err := h.svc.Retrievability(req.Record, req.Today)
	if err != nil {
		h.respondError(w, r, "retrievability", err)
		return
	}

	writeJSON(w, http.StatusOK, retrievabilityResponse{Retrievability: ret})
}

type dueResponse struct {
	Due          bool `json:"due"`
	DaysUntilDue int  `json:"daysUntilDue"`
}

// Due answers isDue/daysUntilDue for a next-review date.
// GET /v1/due?next=2026-01-02&today=2026-01-05
func (h *ReviewHandler) Due(w http.ResponseWriter, r *http.Request) {
	next := r.URL.Query().Get("next")
	today := r.URL.Query().Get("today")

	days, err := domain.DaysUntilDue(next, today)
	if err != nil {
		h.respondError(w, r, "due", err)
		return
	}

	writeJSON(w, http.StatusOK, dueResponse{Due: days <= 0, DaysUntilDue: days})
}

func (h *ReviewHandler) respondError(w http.ResponseWriter, r *http.Request, op string, err error) {
	if errors.Is(err, domain.ErrValidation) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.log.ErrorContext(r.Context(), op, slog.String("error", err.Error()))
	writeError(w, http.StatusInternalServerError, "internal server error")
}
