package domain

import "strings"

// Status represents lifecycle states for translation entries.
type Status string

const (
	// StatusDraft indicates a value still under preparation or awaiting review.
	StatusDraft Status = "draft"
	// StatusReviewed identifies a value that passed review but is not yet live.
	StatusReviewed Status = "reviewed"
	// StatusPublished identifies a value available to consumers.
	StatusPublished Status = "published"
	// StatusArchived marks a value retained for history but no longer served.
	StatusArchived Status = "archived"
)

// Statuses lists every lifecycle state in review order.
var Statuses = []Status{StatusDraft, StatusReviewed, StatusPublished, StatusArchived}

// ParseStatus coerces arbitrary status strings into a known representation.
func ParseStatus(input string) (Status, bool) {
	status := Status(strings.ToLower(strings.TrimSpace(input)))
	switch status {
	case StatusDraft, StatusReviewed, StatusPublished, StatusArchived:
		return status, true
	default:
		return "", false
	}
}

// CanTransition reports whether the status state machine permits moving from
// one state to another. Draft moves forward through reviewed to published,
// publish is also reachable directly from draft, and any state can be
// archived explicitly. Archived is terminal; returning to draft is only
// possible through a fresh upsert, never a bare status edit.
func CanTransition(from, to Status) bool {
	if from == to {
		return false
	}
	switch to {
	case StatusReviewed:
		return from == StatusDraft
	case StatusPublished:
		return from == StatusDraft || from == StatusReviewed
	case StatusArchived:
		return from != StatusArchived
	default:
		return false
	}
}
