// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/prompt-battle/models"
	"github.com/danielhkuo/prompt-battle/testutil"
)

func TestVote(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedError  string
	}{
		{"numeric id", `{"id": 1, "userId": "alice"}`, http.StatusOK, ""},
		{"string id", `{"id": "1", "userId": "alice"}`, http.StatusOK, ""},
		{"unknown id", `{"id": 42, "userId": "alice"}`, http.StatusNotFound, "Submission not found"},
		{"missing id", `{"userId": "alice"}`, http.StatusNotFound, "Submission not found"},
		{"missing user", `{"id": 1}`, http.StatusBadRequest, "User ID is required"},
		{"blank user", `{"id": 1, "userId": "   "}`, http.StatusBadRequest, "User ID is required"},
		{"malformed id", `{"id": "one", "userId": "alice"}`, http.StatusBadRequest, "Invalid JSON"},
		{"invalid JSON", `{"id": 1,`, http.StatusBadRequest, "Invalid JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testutil.SetupTestStore(t)
			handler := NewVotingHandler(s)
			testutil.CreateTestSubmission(t, s, "A", "a", 0)

			req := httptest.NewRequest("POST", "/vote", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.Vote(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus != http.StatusOK {
				var resp models.ErrorResponse
				testutil.AssertJSON(t, w, &resp)
				assert.Equal(t, tt.expectedError, resp.Error)
				return
			}

			var resp models.VoteResponse
			testutil.AssertJSON(t, w, &resp)
			assert.True(t, resp.Success)
			assert.True(t, resp.HasVoted)
			assert.Equal(t, 1, resp.Submission.Votes)
			assert.Equal(t, []string{"alice"}, resp.Submission.VotedUsers)
			require.Len(t, resp.Top3, 1)
			assert.Equal(t, 1, resp.Top3[0].ID)
		})
	}
}

func TestVoteToggles(t *testing.T) {
	s := testutil.SetupTestStore(t)
	handler := NewVotingHandler(s)
	sub := testutil.CreateTestSubmission(t, s, "A", "a", 0)

	vote := func(userID string) models.VoteResponse {
		t.Helper()
		w := httptest.NewRecorder()
		handler.Vote(w, testutil.MakeRequest("POST", "/vote", map[string]interface{}{
			"id":     sub.ID,
			"userId": userID,
		}, nil))
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.VoteResponse
		testutil.AssertJSON(t, w, &resp)
		return resp
	}

	first := vote("alice")
	assert.True(t, first.HasVoted)
	assert.Equal(t, 1, first.Submission.Votes)

	second := vote("bob")
	assert.True(t, second.HasVoted)
	assert.Equal(t, 2, second.Submission.Votes)

	undo := vote("alice")
	assert.False(t, undo.HasVoted)
	assert.Equal(t, 1, undo.Submission.Votes)
	assert.Equal(t, []string{"bob"}, undo.Submission.VotedUsers)

	last := vote("bob")
	assert.False(t, last.HasVoted)
	assert.Equal(t, 0, last.Submission.Votes)
	assert.Empty(t, last.Top3, "zero-vote submissions never reach the podium")
}

func TestVoteReturnsCurrentPodium(t *testing.T) {
	s := testutil.SetupTestStore(t)
	handler := NewVotingHandler(s)

	a := testutil.CreateTestSubmission(t, s, "A", "a", 2)
	b := testutil.CreateTestSubmission(t, s, "B", "b", 2)
	c := testutil.CreateTestSubmission(t, s, "C", "c", 0)

	w := httptest.NewRecorder()
	handler.Vote(w, testutil.MakeRequest("POST", "/vote", map[string]interface{}{
		"id":     b.ID,
		"userId": "carol",
	}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.VoteResponse
	testutil.AssertJSON(t, w, &resp)
	require.Len(t, resp.Top3, 2)
	assert.Equal(t, b.ID, resp.Top3[0].ID)
	assert.Equal(t, a.ID, resp.Top3[1].ID)
	assert.NotContains(t, []int{resp.Top3[0].ID, resp.Top3[1].ID}, c.ID)
}

func TestHasVoted(t *testing.T) {
	s := testutil.SetupTestStore(t)
	handler := NewVotingHandler(s)
	sub := testutil.CreateTestSubmission(t, s, "A", "a", 1)

	tests := []struct {
		name           string
		query          string
		expectedStatus int
		expected       bool
	}{
		{"voter", "?id=1&userId=seed-voter-0", http.StatusOK, true},
		{"other user", "?id=1&userId=mallory", http.StatusOK, false},
		{"unknown submission", "?id=9&userId=seed-voter-0", http.StatusOK, false},
		{"missing id", "?userId=seed-voter-0", http.StatusBadRequest, false},
		{"non-numeric id", "?id=x&userId=seed-voter-0", http.StatusBadRequest, false},
		{"missing user", "?id=1", http.StatusBadRequest, false},
	}

	require.Equal(t, 1, sub.ID)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.HasVoted(w, testutil.MakeRequest("GET", "/has-voted"+tt.query, nil, nil))

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var resp models.HasVotedResponse
			testutil.AssertJSON(t, w, &resp)
			assert.Equal(t, tt.expected, resp.HasVoted)
		})
	}
}

func TestNewVoter(t *testing.T) {
	s := testutil.SetupTestStore(t)
	handler := NewVotingHandler(s)

	issue := func() string {
		w := httptest.NewRecorder()
		handler.NewVoter(w, testutil.MakeRequest("POST", "/voters", nil, nil))
		testutil.AssertStatus(t, w, http.StatusCreated)

		var resp models.VoterResponse
		testutil.AssertJSON(t, w, &resp)
		return resp.UserID
	}

	first := issue()
	second := issue()

	_, err := uuid.Parse(first)
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)
}
