package domain

import "errors"

// ErrUnknownKind is returned when a card kind name is not recognized.
var ErrUnknownKind = errors.New("unknown card kind")

// Kind is the physical or logical form a card is issued in.
type Kind int

// Supported card kinds.
const (
	KindPlastic Kind = iota + 1
	KindRecurring
	KindTemporary
)

var kinds = []Kind{KindPlastic, KindRecurring, KindTemporary}

// ParseKind parses a card kind name, ignoring ASCII case only.
func ParseKind(s string) (Kind, error) {
	for _, k := range kinds {
		if asciiEqualFold(s, k.String()) {
			return k, nil
		}
	}
	return 0, ErrUnknownKind
}

// asciiEqualFold compares s and t ignoring ASCII letter case. Non-ASCII
// bytes must match exactly, so look-alikes such as U+0131 or U+017F never
// fold onto a canonical name.
func asciiEqualFold(s, t string) bool {
	if len(s) != len(t) {
		return false
	}
	for i := 0; i < len(s); i++ {
		a, b := s[i], t[i]
		if 'a' <= a && a <= 'z' {
			a -= 'a' - 'A'
		}
		if 'a' <= b && b <= 'z' {
			b -= 'a' - 'A'
		}
		if a != b {
			return false
		}
	}
	return true
}

// String returns the canonical uppercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindPlastic:
		return "PLASTIC"
	case KindRecurring:
		return "RECURRING"
	case KindTemporary:
		return "TEMPORARY"
	default:
		return ""
	}
}
