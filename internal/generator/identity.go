package generator

import (
	"time"

	"github.com/google/uuid"
)

// UUIDGenerator issues random (version 4) card identifiers.
type UUIDGenerator struct{}

// Generate implements domain.IDGenerator.
func (UUIDGenerator) Generate() (uuid.UUID, error) {
	return uuid.NewRandom()
}

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

// Now implements domain.Clock.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
