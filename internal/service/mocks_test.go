package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/phrazzld/cards-api/internal/domain"
)

// MockCardRepository mocks the CardRepository interface
type MockCardRepository struct {
	mock.Mock
}

func (m *MockCardRepository) Save(ctx context.Context, card *domain.Card) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

// MockNumberGenerator mocks domain.NumberGenerator
type MockNumberGenerator struct {
	mock.Mock
}

func (m *MockNumberGenerator) Generate(ctx context.Context, programID uuid.UUID) (string, error) {
	args := m.Called(ctx, programID)
	return args.String(0), args.Error(1)
}

// sequentialIDs hands out the given IDs in order.
type sequentialIDs struct {
	mu   sync.Mutex
	ids  []uuid.UUID
	next int
	err  error
}

func (s *sequentialIDs) Generate() (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return uuid.Nil, s.err
	}
	id := s.ids[s.next%len(s.ids)]
	s.next++
	return id, nil
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }
