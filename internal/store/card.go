package store

import (
	"context"

	"github.com/phrazzld/cards-api/internal/domain"
)

// CardStore defines the interface for card data persistence.
type CardStore interface {
	// Save durably stores a newly issued card.
	// Returns ErrDuplicate if a card with the same ID or PAN already exists,
	// and ErrInvalidEntity if the storage layer rejects the record.
	// Implementations must not retry; retry policy belongs to the caller.
	Save(ctx context.Context, card *domain.Card) error
}
