// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the submission record, the persisted snapshot, and
request/response types for the API.

# Domain Types

  - Submission: id, name, prompt, timestamp, votes, votedUsers
  - Snapshot: submissions, submissionCounter, lastUpdated

The JSON field names are camelCase to stay compatible with existing
submissions.json files.

# Request Types

  - SubmitRequest: name, prompt
  - VoteRequest: id, userId
  - DeleteRequest: id

Ids are FlexibleID values, so both {"id": 3} and {"id": "3"} decode.

# Response Types

  - SubmitResponse: success, submission
  - SubmissionsResponse: submissions, total
  - VoteResponse: success, submission, hasVoted, top3
  - DeleteResponse: success, message
  - Top3Response: top3
  - HasVotedResponse: hasVoted
  - VoterResponse: userId
  - ErrorResponse: error
*/
package models
