// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// Allowed values of Preferences.SummaryLength.
const (
	SummaryLengthShort  = "short"
	SummaryLengthMedium = "medium"
	SummaryLengthLong   = "long"
)

// Preferences holds a user's response-shaping settings: how long generated
// summaries should be and which topics to emphasize.
type Preferences struct {
	// SummaryLength is one of "short", "medium" or "long".
	SummaryLength string `json:"summary_length"`

	// PreferredTopics is an ordered list of free-text topics the user wants
	// responses to focus on. May be empty.
	PreferredTopics []string `json:"preferred_topics"`
}

// DefaultPreferences returns the preferences applied to users who never set
// any: medium summaries, no topic focus.
func DefaultPreferences() Preferences {
	return Preferences{
		SummaryLength:   SummaryLengthMedium,
		PreferredTopics: []string{},
	}
}

// Validate checks the SummaryLength enumeration. Values outside
// {short, medium, long} are rejected, never coerced.
func (p Preferences) Validate() error {
	switch p.SummaryLength {
	case SummaryLengthShort, SummaryLengthMedium, SummaryLengthLong:
		return nil
	default:
		return fmt.Errorf("summary length must be %q, %q or %q", SummaryLengthShort, SummaryLengthMedium, SummaryLengthLong)
	}
}

// Marshal serializes the preferences to the blob form stored on the user
// record.
func (p Preferences) Marshal() ([]byte, error) {
	blob, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("error serializing preferences: %w", err)
	}

	return blob, nil
}

// ParsePreferences deserializes a stored preferences blob.
//
// A nil, empty, or malformed blob yields DefaultPreferences — the stored
// blob is untrusted legacy data and must never make a read fail.
func ParsePreferences(blob []byte) Preferences {
	if len(blob) == 0 {
		return DefaultPreferences()
	}

	var p Preferences
	if err := json.Unmarshal(blob, &p); err != nil {
		return DefaultPreferences()
	}

	if p.SummaryLength == "" {
		p.SummaryLength = SummaryLengthMedium
	}
	if p.PreferredTopics == nil {
		p.PreferredTopics = []string{}
	}

	return p
}
