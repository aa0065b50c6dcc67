// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultName is used when a submission is made without a display name
const DefaultName = "Anonymous"

// Domain types

type Submission struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Prompt     string    `json:"prompt"`
	Timestamp  time.Time `json:"timestamp"`
	Votes      int       `json:"votes"`
	VotedUsers []string  `json:"votedUsers"`
}

// Snapshot is the persisted state of the submission store.
// It is written as a whole after every mutation.
type Snapshot struct {
	Submissions       []Submission `json:"submissions"`
	SubmissionCounter int          `json:"submissionCounter"`
	LastUpdated       time.Time    `json:"lastUpdated"`
}

// FlexibleID accepts a submission id as a JSON number or a numeric string
type FlexibleID int

func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = 0
		return nil
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid submission id %q", raw)
	}
	*id = FlexibleID(n)
	return nil
}

// Request types

type SubmitRequest struct {
	Name   string `json:"name"`
	Prompt string `json:"prompt"`
}

type VoteRequest struct {
	ID     FlexibleID `json:"id"`
	UserID string     `json:"userId"`
}

type DeleteRequest struct {
	ID FlexibleID `json:"id"`
}

// Response types

type SubmitResponse struct {
	Success    bool       `json:"success"`
	Submission Submission `json:"submission"`
}

type SubmissionsResponse struct {
	Submissions []Submission `json:"submissions"`
	Total       int          `json:"total"`
}

type VoteResponse struct {
	Success    bool         `json:"success"`
	Submission Submission   `json:"submission"`
	HasVoted   bool         `json:"hasVoted"`
	Top3       []Submission `json:"top3"`
}

type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type Top3Response struct {
	Top3 []Submission `json:"top3"`
}

type HasVotedResponse struct {
	HasVoted bool `json:"hasVoted"`
}

type VoterResponse struct {
	UserID string `json:"userId"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
