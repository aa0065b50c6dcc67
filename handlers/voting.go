// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/prompt-battle/auth"
	"github.com/danielhkuo/prompt-battle/middleware"
	"github.com/danielhkuo/prompt-battle/models"
	"github.com/danielhkuo/prompt-battle/store"
)

type VotingHandler struct {
	store *store.SubmissionStore
}

func NewVotingHandler(s *store.SubmissionStore) *VotingHandler {
	return &VotingHandler{store: s}
}

// Vote handles POST /vote
// Toggles the user's vote and returns the updated submission and podium
func (h *VotingHandler) Vote(w http.ResponseWriter, r *http.Request) {
	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	userID, err := auth.NormalizeVoterID(req.UserID)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "User ID is required")
		return
	}

	result, err := h.store.ToggleVote(int(req.ID), userID)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Submission not found")
		return
	}
	if err != nil {
		slog.Error("failed to toggle vote", "error", err, "id", req.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register vote")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{
		Success:    true,
		Submission: result.Submission,
		HasVoted:   result.HasVoted,
		Top3:       result.Top,
	})
}

// HasVoted handles GET /has-voted?id=&userId=
func (h *VotingHandler) HasVoted(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	id, err := strconv.Atoi(query.Get("id"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid submission id")
		return
	}

	userID, err := auth.NormalizeVoterID(query.Get("userId"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "User ID is required")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.HasVotedResponse{
		HasVoted: h.store.HasVoted(id, userID),
	})
}

// NewVoter handles POST /voters
// Issues a fresh user id for clients that do not have one yet
func (h *VotingHandler) NewVoter(w http.ResponseWriter, r *http.Request) {
	userID := auth.GenerateVoterID()
	slog.Info("voter id issued", "remote", middleware.GetClientIP(r))

	middleware.JSONResponse(w, http.StatusCreated, models.VoterResponse{
		UserID: userID,
	})
}
