// Package contests exposes the contest and leaderboard read API
package contests

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"gitlab.com/shodh-oj.net/internal/core/ports/primary"
	"gitlab.com/shodh-oj.net/internal/core/services/contest"
	"gitlab.com/shodh-oj.net/internal/core/services/leaderboard"
	"gitlab.com/shodh-oj.net/internal/handlers"
	"gitlab.com/shodh-oj.net/internal/static/errs"
)

// ContestHandler handles contest API requests
type ContestHandler struct {
	contestService     contest.IContestService
	leaderboardService leaderboard.ILeaderboardService
	logger             primary.Logger
}

// NewHandler creates a new contest handler
func NewHandler(
	contestService contest.IContestService,
	leaderboardService leaderboard.ILeaderboardService,
	logger primary.Logger,
) *ContestHandler {
	return &ContestHandler{
		contestService:     contestService,
		leaderboardService: leaderboardService,
		logger:             logger,
	}
}

// RegisterRoutes registers the API routes for ContestHandler
func (h *ContestHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/contests/{contestId}", h.GetContest).Methods("GET")
	router.HandleFunc("/api/contests/{contestId}/leaderboard", h.GetLeaderboard).Methods("GET")
}

// GetContest handles contest detail requests
func (h *ContestHandler) GetContest(w http.ResponseWriter, r *http.Request) {
	contestID, ok := h.contestID(w, r)
	if !ok {
		return
	}

	view, err := h.contestService.GetContestByID(r.Context(), contestID)
	if err != nil {
		if errors.Is(err, errs.ContestNotFound) {
			handlers.ResponseError(w, err.Error(), http.StatusNotFound)
			return
		}
		h.logger.Error("Failed to get contest", "contestId", contestID, "error", err)
		handlers.ResponseError(w, "Failed to get contest", http.StatusInternalServerError)
		return
	}

	handlers.ResponseWithJson(w, http.StatusOK, view)
}

// GetLeaderboard handles leaderboard requests
func (h *ContestHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	contestID, ok := h.contestID(w, r)
	if !ok {
		return
	}

	board, err := h.leaderboardService.GetLeaderboard(r.Context(), contestID)
	if err != nil {
		if errors.Is(err, errs.ContestNotFound) {
			handlers.ResponseError(w, err.Error(), http.StatusNotFound)
			return
		}
		h.logger.Error("Failed to get leaderboard", "contestId", contestID, "error", err)
		handlers.ResponseError(w, "Failed to get leaderboard", http.StatusInternalServerError)
		return
	}

	handlers.ResponseWithJson(w, http.StatusOK, board)
}

func (h *ContestHandler) contestID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	contestID, err := uuid.Parse(mux.Vars(r)["contestId"])
	if err != nil {
		handlers.ResponseError(w, "Invalid contest id", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return contestID, true
}
