// Package memory provides an in-process implementation of store.CardStore
// for local development and tests.
package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/phrazzld/cards-api/internal/domain"
	"github.com/phrazzld/cards-api/internal/store"
)

// CardStore keeps cards in a map guarded by a mutex.
// IDs and PANs are unique across the store.
type CardStore struct {
	mu     sync.RWMutex
	cards  map[uuid.UUID]domain.Card
	pans   map[string]uuid.UUID
	logger *slog.Logger
}

// Ensure CardStore implements store.CardStore interface
var _ store.CardStore = (*CardStore)(nil)

// NewCardStore creates an empty in-memory card store.
func NewCardStore(logger *slog.Logger) *CardStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &CardStore{
		cards:  make(map[uuid.UUID]domain.Card),
		pans:   make(map[string]uuid.UUID),
		logger: logger.With(slog.String("component", "memory_card_store")),
	}
}

// Save implements store.CardStore.Save.
func (s *CardStore) Save(ctx context.Context, card *domain.Card) error {
	if card == nil {
		return store.NewStoreError("card", "save", "card is nil", store.ErrInvalidEntity)
	}
	if err := ctx.Err(); err != nil {
		return store.NewStoreError("card", "save", "context done", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cards[card.ID]; ok {
		return store.NewStoreError("card", "save", "duplicate id",
			fmt.Errorf("%w: id %s", store.ErrCardExists, card.ID))
	}
	if _, ok := s.pans[card.PAN]; ok {
		return store.NewStoreError("card", "save", "duplicate pan", store.ErrCardExists)
	}

	s.cards[card.ID] = *card
	s.pans[card.PAN] = card.ID

	s.logger.Debug("card saved", slog.String("card_id", card.ID.String()))
	return nil
}

// Get returns a copy of the stored card with the given ID.
func (s *CardStore) Get(id uuid.UUID) (domain.Card, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.cards[id]
	return c, ok
}

// Len returns the number of stored cards.
func (s *CardStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cards)
}
