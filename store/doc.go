// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store holds prompt submissions and their vote state.

# SubmissionStore

A SubmissionStore keeps the submissions in memory and writes a full
snapshot through its Persister after every mutation:

	s := store.New(store.NewFilePersister("data/submissions.json"), store.Options{})
	sub := s.Add("Ada", "Write a haiku about compilers")
	res, err := s.ToggleVote(sub.ID, "user-1")

Ids come from a counter that only grows, so an id is never handed out twice,
even after its submission is deleted.

# Voting

Votes toggle per user: voting twice with the same user id removes the
vote again. HasVoted reports the current state without persisting.

# Ranking

List orders by votes, highest first, keeping insertion order for ties.
Top(n) cuts the ranking to n entries and then drops entries without votes;
it does not backfill from below rank n.

# Persistence

Two persisters are provided:

  - FilePersister: a JSON file, overwritten in place
  - SQLPersister: the same JSON document in the store_snapshot table

Load and save failures are logged and otherwise ignored; the store keeps
working from memory.
*/
package store
