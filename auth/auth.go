// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidAdminKey = errors.New("invalid admin key")
	ErrInvalidVoterID  = errors.New("invalid voter id")
)

// GenerateVoterID creates a random identifier for a voter.
// Clients keep it and send it as userId when voting.
func GenerateVoterID() string {
	return uuid.NewString()
}

// NormalizeVoterID trims the id and rejects blank ones.
// Any non-blank string is accepted so ids issued elsewhere keep working.
func NormalizeVoterID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", ErrInvalidVoterID
	}
	return id, nil
}

// ValidateAdminKey checks the provided key against the configured one.
// An empty configured key disables the check.
func ValidateAdminKey(configured, provided string) error {
	if configured == "" {
		return nil
	}
	if !hmac.Equal([]byte(provided), []byte(configured)) {
		return ErrInvalidAdminKey
	}
	return nil
}
