// Package submissions exposes the submission intake and status API
package submissions

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"gitlab.com/shodh-oj.net/internal/core/ports/primary"
	"gitlab.com/shodh-oj.net/internal/core/services/submission"
	"gitlab.com/shodh-oj.net/internal/handlers"
	"gitlab.com/shodh-oj.net/internal/static/errs"
)

// SubmissionHandler handles submission API requests
type SubmissionHandler struct {
	submissionService submission.ISubmissionService
	logger            primary.Logger
}

// NewHandler creates a new submission handler
func NewHandler(submissionService submission.ISubmissionService, logger primary.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: submissionService,
		logger:            logger,
	}
}

// RegisterRoutes registers the API routes for SubmissionHandler
func (h *SubmissionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/submissions", h.SubmitCode).Methods("POST")
	router.HandleFunc("/api/submissions/{submissionId}", h.GetSubmission).Methods("GET")
}

// SubmitCodeRequest represents one code submission from a contestant
type SubmitCodeRequest struct {
	Username  string    `json:"username"`
	ContestID uuid.UUID `json:"contestId"`
	ProblemID uuid.UUID `json:"problemId"`
	Code      string    `json:"code"`
	Language  string    `json:"language"`
}

// SubmitCode handles submission intake requests. The response carries the
// PENDING submission; the verdict arrives later via GetSubmission polls.
func (h *SubmissionHandler) SubmitCode(w http.ResponseWriter, r *http.Request) {
	var req SubmitCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		handlers.ResponseError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	view, err := h.submissionService.SubmitCode(r.Context(), submission.SubmitRequest{
		Username:  req.Username,
		ContestID: req.ContestID,
		ProblemID: req.ProblemID,
		Code:      req.Code,
		Language:  req.Language,
	})
	if err != nil {
		h.logger.Error("Failed to submit code", "error", err)
		handlers.ResponseError(w, err.Error(), statusFor(err))
		return
	}

	handlers.ResponseWithJson(w, http.StatusCreated, view)
}

// GetSubmission handles submission status requests
func (h *SubmissionHandler) GetSubmission(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	submissionID, err := uuid.Parse(vars["submissionId"])
	if err != nil {
		handlers.ResponseError(w, "Invalid submission id", http.StatusBadRequest)
		return
	}

	view, err := h.submissionService.GetSubmission(r.Context(), submissionID)
	if err != nil {
		h.logger.Error("Failed to get submission", "submissionId", submissionID, "error", err)
		handlers.ResponseError(w, err.Error(), statusFor(err))
		return
	}

	handlers.ResponseWithJson(w, http.StatusOK, view)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.UnsupportedLanguage):
		return http.StatusBadRequest
	case errors.Is(err, errs.ContestNotFound),
		errors.Is(err, errs.ProblemNotFound),
		errors.Is(err, errs.SubmissionNotFound),
		errors.Is(err, errs.UserNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
