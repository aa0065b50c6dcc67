// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/prompt-battle/models"
	"github.com/danielhkuo/prompt-battle/testutil"
)

// TestConcurrentVotes verifies that simultaneous votes from different users
// are all counted and the voter list stays consistent with the count
func TestConcurrentVotes(t *testing.T) {
	s := testutil.SetupTestStore(t)
	handler := NewVotingHandler(s)
	sub := testutil.CreateTestSubmission(t, s, "A", "a", 0)

	numVoters := 25
	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numVoters; i++ {
		wg.Add(1)
		go func(voterIdx int) {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/vote", map[string]interface{}{
				"id":     sub.ID,
				"userId": fmt.Sprintf("voter-%d", voterIdx),
			}, nil)
			w := httptest.NewRecorder()

			handler.Vote(w, req)

			if w.Code == http.StatusOK {
				successCount.Add(1)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(numVoters), successCount.Load())

	list := s.List()
	require.Len(t, list, 1)
	assert.Equal(t, numVoters, list[0].Votes)
	assert.Len(t, list[0].VotedUsers, numVoters)
}

// TestConcurrentToggleSameUser verifies that an even number of toggles from
// one user always ends with no vote recorded
func TestConcurrentToggleSameUser(t *testing.T) {
	s := testutil.SetupTestStore(t)
	handler := NewVotingHandler(s)
	sub := testutil.CreateTestSubmission(t, s, "A", "a", 0)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := httptest.NewRecorder()
			handler.Vote(w, testutil.MakeRequest("POST", "/vote", map[string]interface{}{
				"id":     sub.ID,
				"userId": "same-user",
			}, nil))
		}()
	}
	wg.Wait()

	assert.False(t, s.HasVoted(sub.ID, "same-user"))
	assert.Equal(t, 0, s.List()[0].Votes)
}

// TestConcurrentSubmissions verifies that simultaneous submits get distinct ids
func TestConcurrentSubmissions(t *testing.T) {
	s := testutil.SetupTestStore(t)
	handler := NewSubmissionHandler(s, testutil.GetTestConfig())

	numSubmits := 20
	var wg sync.WaitGroup
	ids := make(chan int, numSubmits)

	for i := 0; i < numSubmits; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			w := httptest.NewRecorder()
			handler.Submit(w, testutil.MakeRequest("POST", "/submit", models.SubmitRequest{
				Prompt: fmt.Sprintf("prompt %d", idx),
			}, nil))
			if w.Code != http.StatusOK {
				return
			}

			var resp models.SubmitResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				return
			}
			ids <- resp.Submission.ID
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, numSubmits)
	assert.Equal(t, numSubmits, s.Count())
}
