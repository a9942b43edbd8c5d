package request

import "strings"

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusMatched   Status = "MATCHED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusMatched, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// HasMatch reports whether a request in this status carries matched cardholder fields.
func (s Status) HasMatch() bool {
	return s == StatusMatched || s == StatusCompleted
}

// NewStatus parses a persisted status value.
func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrUnknownStatus
	}
	return st, nil
}

// ParseTargetStatus accepts the closing statuses a caller may set, case-insensitively.
func ParseTargetStatus(s string) (Status, error) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	switch st {
	case StatusCompleted, StatusCancelled:
		return st, nil
	default:
		return "", ErrInvalidTargetStatus
	}
}

// Actor identifies who claims a pending request.
type Actor string

const (
	ActorCardholder Actor = "cardholder"
	ActorAdmin      Actor = "admin"
)
