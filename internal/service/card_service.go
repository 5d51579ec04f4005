package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/cards-api/internal/domain"
	"github.com/phrazzld/cards-api/internal/platform/logger"
	"github.com/phrazzld/cards-api/internal/redact"
	"github.com/phrazzld/cards-api/internal/store"
)

// CardRepository defines the persistence gateway used by the service layer.
type CardRepository interface {
	// Save durably stores a newly issued card. It is called exactly once
	// per successfully validated request and never retried here.
	Save(ctx context.Context, card *domain.Card) error
}

// CardService provides card-related operations
type CardService interface {
	// Create validates req, assembles a new card and persists it.
	// It returns a *domain.ValidationError naming the first invalid field,
	// or a *CardServiceError when a generator or persistence fails.
	Create(ctx context.Context, req domain.CardRequest) (*domain.CardRecord, error)
}

// cardServiceImpl implements the CardService interface
type cardServiceImpl struct {
	repo    CardRepository
	ids     domain.IDGenerator
	clock   domain.Clock
	numbers domain.NumberGenerator
	logger  *slog.Logger
}

// NewCardService creates a new CardService.
// It returns an error if any of the required dependencies are nil.
func NewCardService(
	repo CardRepository,
	ids domain.IDGenerator,
	clock domain.Clock,
	numbers domain.NumberGenerator,
	logger *slog.Logger,
) (CardService, error) {
	if repo == nil {
		return nil, fmt.Errorf("%w: repo", ErrNilDependency)
	}
	if ids == nil {
		return nil, fmt.Errorf("%w: ids", ErrNilDependency)
	}
	if clock == nil {
		return nil, fmt.Errorf("%w: clock", ErrNilDependency)
	}
	if numbers == nil {
		return nil, fmt.Errorf("%w: numbers", ErrNilDependency)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &cardServiceImpl{
		repo:    repo,
		ids:     ids,
		clock:   clock,
		numbers: numbers,
		logger:  logger.With(slog.String("component", "card_service")),
	}, nil
}

// Create implements CardService.Create
func (s *cardServiceImpl) Create(ctx context.Context, req domain.CardRequest) (*domain.CardRecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	validated, err := domain.ValidateCardRequest(req)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			log.Debug("card request rejected", slog.String("field", vErr.FieldName))
		}
		return nil, err
	}

	card, err := domain.NewCard(ctx, validated, s.ids, s.clock, s.numbers)
	if err != nil {
		log.Error("failed to assemble card",
			slog.String("program_id", validated.ProgramID().String()),
			slog.String("error", redact.Error(err)))
		return nil, NewCardServiceError("create", "failed to assemble card", err)
	}

	if err := s.repo.Save(ctx, card); err != nil {
		log.Error("failed to save card",
			slog.String("card_id", card.ID.String()),
			slog.Bool("duplicate", store.IsDuplicateError(err)),
			slog.String("error", redact.Error(err)))
		return nil, NewCardServiceError("create", "failed to save card", err)
	}

	log.Info("card created",
		slog.String("card_id", card.ID.String()),
		slog.String("program_id", card.ProgramID.String()),
		slog.String("kind", card.Kind.String()),
		slog.String("pan", redact.MaskPAN(card.PAN)))

	record := card.ToRecord()
	return &record, nil
}
