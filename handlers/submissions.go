// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/danielhkuo/prompt-battle/auth"
	"github.com/danielhkuo/prompt-battle/cliparse"
	"github.com/danielhkuo/prompt-battle/middleware"
	"github.com/danielhkuo/prompt-battle/models"
	"github.com/danielhkuo/prompt-battle/store"
)

const (
	MaxPromptLength = 2000
	MaxNameLength   = 100
)

type SubmissionHandler struct {
	store *store.SubmissionStore
	cfg   cliparse.Config
}

func NewSubmissionHandler(s *store.SubmissionStore, cfg cliparse.Config) *SubmissionHandler {
	return &SubmissionHandler{store: s, cfg: cfg}
}

// Submit handles POST /submit
func (h *SubmissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Prompt cannot be empty")
		return
	}
	if utf8.RuneCountInString(prompt) > MaxPromptLength {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Prompt is too long")
		return
	}

	name := strings.TrimSpace(req.Name)
	if utf8.RuneCountInString(name) > MaxNameLength {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Name is too long")
		return
	}

	submission := h.store.Add(name, prompt)

	middleware.JSONResponse(w, http.StatusOK, models.SubmitResponse{
		Success:    true,
		Submission: submission,
	})
}

// List handles GET /submissions
func (h *SubmissionHandler) List(w http.ResponseWriter, r *http.Request) {
	submissions := h.store.List()

	middleware.JSONResponse(w, http.StatusOK, models.SubmissionsResponse{
		Submissions: submissions,
		Total:       len(submissions),
	})
}

// Top3 handles GET /top3
func (h *SubmissionHandler) Top3(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.Top3Response{
		Top3: h.store.Top(store.DefaultTopN),
	})
}

// Delete handles DELETE /delete
// Requires X-Admin-Key when an admin key is configured
func (h *SubmissionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := auth.ValidateAdminKey(h.cfg.AdminKey, r.Header.Get("X-Admin-Key")); err != nil {
		slog.Warn("delete rejected", "remote", middleware.GetClientIP(r), "error", err)
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	var req models.DeleteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if !h.store.Delete(int(req.ID)) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Submission not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.DeleteResponse{
		Success: true,
		Message: "Submission deleted successfully",
	})
}
