// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides voter identifiers and the admin key check.

# Voter IDs

Voter ids are random UUIDs handed out by POST /voters:

	id := auth.GenerateVoterID()

They are opaque to the store. NormalizeVoterID trims an incoming id and
rejects blank ones.

# Admin Key

When an admin key is configured, destructive operations require it in the
X-Admin-Key header:

	err := auth.ValidateAdminKey(cfg.AdminKey, r.Header.Get("X-Admin-Key"))

The comparison is constant time. An empty configured key disables the check.
*/
package auth
