// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"log/slog"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/danielhkuo/prompt-battle/models"
)

// DefaultTopN is the size of the leaderboard podium
const DefaultTopN = 3

var ErrNotFound = errors.New("submission not found")

type Options struct {
	// ReloadOnWrite re-reads the snapshot before every mutation, for
	// deployments where several processes share one snapshot.
	ReloadOnWrite bool

	// Now overrides the clock used for timestamps. Defaults to time.Now.
	Now func() time.Time
}

// VoteResult is the outcome of a vote toggle. Top is the podium right
// after the toggle, taken under the same lock.
type VoteResult struct {
	Submission models.Submission
	HasVoted   bool
	Top        []models.Submission
}

// SubmissionStore holds submissions and vote state in memory and mirrors
// every mutation to its Persister.
type SubmissionStore struct {
	mu          sync.Mutex
	persister   Persister
	opts        Options
	submissions []models.Submission
	counter     int
}

// New creates a store and loads its initial state from p.
// A missing or unreadable snapshot starts an empty store.
func New(p Persister, opts Options) *SubmissionStore {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	s := &SubmissionStore{
		persister: p,
		opts:      opts,
	}
	s.load()
	return s
}

// Reload re-reads the snapshot. On failure the in-memory state is kept.
func (s *SubmissionStore) Reload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reload()
}

// Add appends a new submission. The caller is responsible for rejecting
// blank prompts.
func (s *SubmissionStore) Add(name, prompt string) models.Submission {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.beforeWrite()

	name = strings.TrimSpace(name)
	if name == "" {
		name = models.DefaultName
	}

	s.counter++
	sub := models.Submission{
		ID:         s.counter,
		Name:       name,
		Prompt:     strings.TrimSpace(prompt),
		Timestamp:  s.opts.Now().UTC(),
		Votes:      0,
		VotedUsers: []string{},
	}
	s.submissions = append(s.submissions, sub)

	s.save()
	slog.Info("submission added", "id", sub.ID, "name", sub.Name)

	return clone(sub)
}

// ToggleVote adds userID's vote to the submission, or removes it when the
// user has already voted.
func (s *SubmissionStore) ToggleVote(id int, userID string) (VoteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.beforeWrite()

	i := s.indexOf(id)
	if i < 0 {
		return VoteResult{}, ErrNotFound
	}

	sub := &s.submissions[i]
	if sub.VotedUsers == nil {
		sub.VotedUsers = []string{}
	}

	hasVoted := false
	if j := slices.Index(sub.VotedUsers, userID); j < 0 {
		sub.VotedUsers = append(sub.VotedUsers, userID)
		sub.Votes++
		hasVoted = true
	} else {
		sub.VotedUsers = slices.Delete(sub.VotedUsers, j, j+1)
		sub.Votes--
	}

	s.save()
	slog.Info("vote toggled", "id", id, "has_voted", hasVoted, "votes", sub.Votes)

	return VoteResult{
		Submission: clone(*sub),
		HasVoted:   hasVoted,
		Top:        s.top(DefaultTopN),
	}, nil
}

// Delete removes the submission with the given id and reports whether it
// existed. Ids are never reused.
func (s *SubmissionStore) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.beforeWrite()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}

	s.submissions = slices.Delete(s.submissions, i, i+1)
	s.save()
	slog.Info("submission deleted", "id", id)

	return true
}

func (s *SubmissionStore) HasVoted(id int, userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	return slices.Contains(s.submissions[i].VotedUsers, userID)
}

// List returns all submissions ordered by votes, highest first. Submissions
// with equal votes keep their insertion order.
func (s *SubmissionStore) List() []models.Submission {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ranked()
}

// Top returns the first n ranked submissions that have at least one vote.
// The cut to n happens before zero-vote entries are dropped, so a zero-vote
// entry inside the first n is not replaced by a lower ranked one.
func (s *SubmissionStore) Top(n int) []models.Submission {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.top(n)
}

func (s *SubmissionStore) top(n int) []models.Submission {
	if n <= 0 {
		return []models.Submission{}
	}

	ranked := s.ranked()
	if len(ranked) > n {
		ranked = ranked[:n]
	}

	top := make([]models.Submission, 0, len(ranked))
	for _, sub := range ranked {
		if sub.Votes > 0 {
			top = append(top, sub)
		}
	}
	return top
}

func (s *SubmissionStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.submissions)
}

// Snapshot returns a copy of the current state in its persisted form
func (s *SubmissionStore) Snapshot() models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *SubmissionStore) ranked() []models.Submission {
	out := make([]models.Submission, len(s.submissions))
	for i, sub := range s.submissions {
		out[i] = clone(sub)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Votes > out[j].Votes
	})
	return out
}

func (s *SubmissionStore) indexOf(id int) int {
	return slices.IndexFunc(s.submissions, func(sub models.Submission) bool {
		return sub.ID == id
	})
}

func (s *SubmissionStore) snapshot() models.Snapshot {
	subs := make([]models.Submission, len(s.submissions))
	for i, sub := range s.submissions {
		subs[i] = clone(sub)
	}
	return models.Snapshot{
		Submissions:       subs,
		SubmissionCounter: s.counter,
		LastUpdated:       s.opts.Now().UTC(),
	}
}

func (s *SubmissionStore) beforeWrite() {
	if s.opts.ReloadOnWrite {
		s.reload()
	}
}

func (s *SubmissionStore) load() {
	snap, err := s.persister.Load()
	if err != nil {
		if errors.Is(err, ErrNoSnapshot) {
			slog.Info("no existing data found, starting fresh")
		} else {
			slog.Warn("failed to load submissions, starting fresh", "error", err)
		}
		s.submissions = []models.Submission{}
		s.counter = 0
		return
	}

	s.apply(snap)
	slog.Info("loaded submissions from storage", "count", len(s.submissions))
}

func (s *SubmissionStore) reload() {
	snap, err := s.persister.Load()
	if err != nil {
		if !errors.Is(err, ErrNoSnapshot) {
			slog.Warn("failed to reload submissions, using in-memory state", "error", err)
		}
		return
	}
	s.apply(snap)
}

func (s *SubmissionStore) apply(snap models.Snapshot) {
	subs := make([]models.Submission, len(snap.Submissions))
	for i, sub := range snap.Submissions {
		// Records from before per-user voting have no voter list
		if sub.VotedUsers == nil {
			sub.VotedUsers = []string{}
		}
		subs[i] = sub
	}

	s.submissions = subs
	s.counter = snap.SubmissionCounter
	for _, sub := range subs {
		if sub.ID > s.counter {
			s.counter = sub.ID
		}
	}
}

func (s *SubmissionStore) save() {
	if err := s.persister.Save(s.snapshot()); err != nil {
		slog.Error("failed to save submissions, continuing in memory", "error", err)
	}
}

func clone(sub models.Submission) models.Submission {
	sub.VotedUsers = slices.Clone(sub.VotedUsers)
	if sub.VotedUsers == nil {
		sub.VotedUsers = []string{}
	}
	return sub
}
