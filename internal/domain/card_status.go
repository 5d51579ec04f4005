package domain

import "errors"

// ErrUnknownStatus is returned when a card status name is not recognized.
var ErrUnknownStatus = errors.New("unknown card status")

// Status represents the lifecycle state of a card.
type Status int

// Possible card status values. New cards always start as StatusEnabled.
const (
	StatusEnabled Status = iota + 1
	StatusCancelled
	StatusBlocked
)

var statuses = []Status{StatusEnabled, StatusCancelled, StatusBlocked}

// ParseStatus parses a card status name, ignoring ASCII case only.
func ParseStatus(s string) (Status, error) {
	for _, st := range statuses {
		if asciiEqualFold(s, st.String()) {
			return st, nil
		}
	}
	return 0, ErrUnknownStatus
}

// String returns the canonical uppercase name of the status.
func (s Status) String() string {
	switch s {
	case StatusEnabled:
		return "ENABLED"
	case StatusCancelled:
		return "CANCELLED"
	case StatusBlocked:
		return "BLOCKED"
	default:
		return ""
	}
}
