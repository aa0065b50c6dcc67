// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Prompt Battle API.

# Handler Types

Each handler is a struct holding the submission store and the config:

  - SubmissionHandler: submit, list, top 3, delete
  - VotingHandler: vote toggling, vote lookup, voter ids
  - ExportHandler: CSV download

Handlers are created via constructor functions:

	submissionHandler := handlers.NewSubmissionHandler(s, cfg)

The handlers hold no state of their own; everything lives in the store.

# Submissions

	POST   /submit       → Submit ({name?, prompt})
	GET    /submissions  → List
	GET    /top3         → Top3
	DELETE /delete       → Delete ({id}, X-Admin-Key when configured)

Names and prompts are stored trimmed, otherwise exactly as sent. A blank
prompt is rejected with 400 before reaching the store.

# Voting

	POST /vote       → Vote ({id, userId}), toggles the user's vote
	GET  /has-voted  → HasVoted (?id=&userId=)
	POST /voters     → NewVoter, issues a user id

# Export

	GET /download-csv → DownloadCSV

Rows follow leaderboard order. Errors are returned as {"error": "..."}.
*/
package handlers
