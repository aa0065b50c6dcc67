// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Prompt Battle API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(store, cfg)

# Endpoints

Health:

	GET /health

Submissions:

	POST   /submit       - Submit a prompt
	GET    /submissions  - All submissions, most votes first
	GET    /top3         - Podium (voted submissions only)
	DELETE /delete       - Remove a submission (X-Admin-Key when configured)

Voting:

	POST /vote      - Toggle a user's vote
	GET  /has-voted - Whether a user voted for a submission
	POST /voters    - Issue a new user id

Export:

	GET /download-csv - Leaderboard as a CSV attachment

All handlers share the same SubmissionStore and configuration.
*/
package router
