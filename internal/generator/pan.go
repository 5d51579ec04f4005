package generator

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	minPANLength = 13
	maxPANLength = 19

	// programDigits is the number of PAN digits derived from the program ID.
	programDigits = 2
)

var (
	// ErrInvalidBIN is returned when the issuer BIN is not 6 or 8 digits.
	ErrInvalidBIN = errors.New("bin must be 6 or 8 digits")

	// ErrInvalidPANLength is returned when the PAN length leaves no room for account digits.
	ErrInvalidPANLength = errors.New("invalid PAN length")

	// ErrInvalidSequence is returned when a sequence source yields a malformed value.
	ErrInvalidSequence = errors.New("invalid account sequence")
)

// SequenceSource yields the account-number digits that follow a PAN prefix
// (BIN plus program digits). Next must return exactly width decimal digits
// and must never repeat a value for the same prefix; distinct programs can
// share a prefix, so state must be kept per prefix, not per program.
type SequenceSource interface {
	Next(ctx context.Context, prefix string, width int) (string, error)
}

// PANGenerator builds card numbers laid out as
// BIN | program digits | account digits | Luhn check digit.
// The program digits are a stable function of the program ID.
type PANGenerator struct {
	bin      string
	length   int
	sequence SequenceSource
}

// NewPANGenerator creates a PANGenerator. A nil sequence uses RandomSequence.
func NewPANGenerator(bin string, length int, sequence SequenceSource) (*PANGenerator, error) {
	if !IsDigits(bin) || (len(bin) != 6 && len(bin) != 8) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBIN, bin)
	}
	if length < minPANLength || length > maxPANLength {
		return nil, fmt.Errorf("%w: %d not in %d..%d", ErrInvalidPANLength, length, minPANLength, maxPANLength)
	}
	if length-len(bin)-programDigits-1 < 1 {
		return nil, fmt.Errorf("%w: %d leaves no account digits after BIN %s", ErrInvalidPANLength, length, bin)
	}
	if sequence == nil {
		sequence = RandomSequence{}
	}
	return &PANGenerator{bin: bin, length: length, sequence: sequence}, nil
}

// Generate implements domain.NumberGenerator.
func (g *PANGenerator) Generate(ctx context.Context, programID uuid.UUID) (string, error) {
	width := g.length - len(g.bin) - programDigits - 1
	prefix := g.Prefix(programID)

	account, err := g.sequence.Next(ctx, prefix, width)
	if err != nil {
		return "", fmt.Errorf("next account sequence: %w", err)
	}
	if len(account) != width || !IsDigits(account) {
		return "", fmt.Errorf("%w: want %d digits", ErrInvalidSequence, width)
	}

	body := prefix + account
	return body + LuhnCheckDigit(body), nil
}

// Prefix returns the BIN and program digits that start every PAN issued
// for programID.
func (g *PANGenerator) Prefix(programID uuid.UUID) string {
	return g.bin + ProgramDigits(programID)
}

// ProgramDigits derives the two program digits of a PAN from a program ID.
func ProgramDigits(programID uuid.UUID) string {
	sum := sha256.Sum256(programID[:])
	return fmt.Sprintf("%0*d", programDigits, binary.BigEndian.Uint16(sum[:2])%100)
}

// RandomSequence yields uniformly random account digits. It keeps no state,
// so repeats are possible and surface as duplicate PANs at save time; use a
// persistent sequence for production volumes.
type RandomSequence struct{}

// Next implements SequenceSource.
func (RandomSequence) Next(_ context.Context, _ string, width int) (string, error) {
	return randomDigits(width)
}

// randomDigits uses rejection sampling so every digit is equally likely:
// only bytes below 250 are kept before reducing modulo 10.
func randomDigits(count int) (string, error) {
	if count <= 0 {
		return "", nil
	}
	const threshold = 250
	var sb strings.Builder
	sb.Grow(count)
	buf := make([]byte, 64)
	for sb.Len() < count {
		n, err := rand.Read(buf)
		if err != nil {
			return "", err
		}
		for i := 0; i < n && sb.Len() < count; i++ {
			if b := buf[i]; b < threshold {
				sb.WriteByte('0' + b%10)
			}
		}
	}
	return sb.String(), nil
}

// LuhnCheckDigit computes the Luhn check digit for a digit string.
func LuhnCheckDigit(body string) string {
	sum, double := 0, true
	for i := len(body) - 1; i >= 0; i-- {
		d := int(body[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return string(rune('0' + (10-sum%10)%10))
}

// ValidLuhn reports whether a digit string ends in a correct Luhn check digit.
func ValidLuhn(pan string) bool {
	if len(pan) < 2 || !IsDigits(pan) {
		return false
	}
	return LuhnCheckDigit(pan[:len(pan)-1]) == pan[len(pan)-1:]
}

// IsDigits reports whether s is non-empty and all ASCII decimal digits.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
