// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package validation provides input validation for client-supplied values.
//
// Validators here run before anything reaches the store, so stored data
// always satisfies the service invariants (todo text is never empty or
// whitespace-only).
package validation

import (
	"errors"
	"strings"
)

// ErrEmptyText is returned when todo text trims down to nothing.
var ErrEmptyText = errors.New("text cannot be empty")

// SanitizeText normalizes client-supplied todo text.
//
// Leading and trailing whitespace is removed; interior whitespace is kept
// as-is. Returns ErrEmptyText if nothing remains after trimming.
//
// Example:
//
//	text, err := validation.SanitizeText(req.Text)
//	if err != nil {
//	    // reject with 400 before touching the store
//	}
func SanitizeText(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", ErrEmptyText
	}
	return trimmed, nil
}
