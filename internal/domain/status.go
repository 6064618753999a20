package domain

import "fmt"

// Status is the lifecycle state of an article.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

// ValidStatuses contains all valid article statuses.
var ValidStatuses = []Status{StatusDraft, StatusPublished, StatusArchived}

// ParseStatus converts a raw string into a Status. Anything outside the
// three known values fails immediately.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusDraft, StatusPublished, StatusArchived:
		return Status(s), nil
	}
	return "", NewValidationError("status", fmt.Sprintf("invalid article status %q", s))
}

// IsPublished reports whether the status is published.
func (s Status) IsPublished() bool {
	return s == StatusPublished
}

// IsDraft reports whether the status is draft.
func (s Status) IsDraft() bool {
	return s == StatusDraft
}

// IsArchived reports whether the status is archived.
func (s Status) IsArchived() bool {
	return s == StatusArchived
}

func (s Status) String() string {
	return string(s)
}
