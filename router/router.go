// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/prompt-battle/cliparse"
	"github.com/danielhkuo/prompt-battle/handlers"
	"github.com/danielhkuo/prompt-battle/middleware"
	"github.com/danielhkuo/prompt-battle/store"
)

func NewRouter(s *store.SubmissionStore, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	submissionHandler := handlers.NewSubmissionHandler(s, cfg)
	votingHandler := handlers.NewVotingHandler(s)
	exportHandler := handlers.NewExportHandler(s)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Submissions
	mux.HandleFunc("POST /submit", middleware.WithLogging(submissionHandler.Submit))
	mux.HandleFunc("GET /submissions", middleware.WithLogging(submissionHandler.List))
	mux.HandleFunc("GET /top3", middleware.WithLogging(submissionHandler.Top3))
	mux.HandleFunc("DELETE /delete", middleware.WithLogging(submissionHandler.Delete))

	// Voting
	mux.HandleFunc("POST /vote", middleware.WithLogging(votingHandler.Vote))
	mux.HandleFunc("GET /has-voted", middleware.WithLogging(votingHandler.HasVoted))
	mux.HandleFunc("POST /voters", middleware.WithLogging(votingHandler.NewVoter))

	// Export
	mux.HandleFunc("GET /download-csv", middleware.WithLogging(exportHandler.DownloadCSV))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("prompt-battle API v1"))
	})

	return mux
}
