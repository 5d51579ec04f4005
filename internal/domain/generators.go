package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// IDGenerator produces identifiers for new cards.
type IDGenerator interface {
	Generate() (uuid.UUID, error)
}

// Clock supplies the instant a card is issued at.
type Clock interface {
	Now() time.Time
}

// NumberGenerator derives a card number (PAN) for a program.
type NumberGenerator interface {
	Generate(ctx context.Context, programID uuid.UUID) (string, error)
}
