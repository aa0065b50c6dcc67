// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/prompt-battle/cliparse"
	"github.com/danielhkuo/prompt-battle/models"
	"github.com/danielhkuo/prompt-battle/store"
)

// SetupTestStore creates an empty file-backed store in a temporary directory
func SetupTestStore(t *testing.T) *store.SubmissionStore {
	t.Helper()

	path := filepath.Join(t.TempDir(), "submissions.json")
	return store.New(store.NewFilePersister(path), store.Options{})
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:      3000,
		StoreType: cliparse.StoreFile,
		DataFile:  "submissions.json",
	}
}

// CreateTestSubmission adds a submission and casts the given number of
// votes from distinct users
func CreateTestSubmission(t *testing.T, s *store.SubmissionStore, name, prompt string, votes int) models.Submission {
	t.Helper()

	sub := s.Add(name, prompt)
	for i := 0; i < votes; i++ {
		res, err := s.ToggleVote(sub.ID, fmt.Sprintf("seed-voter-%d", i))
		if err != nil {
			t.Fatalf("Failed to seed vote: %v", err)
		}
		sub = res.Submission
	}

	return sub
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
