package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/phrazzld/cards-api/internal/domain"
	"github.com/phrazzld/cards-api/internal/platform/logger"
	"github.com/phrazzld/cards-api/internal/redact"
	"github.com/phrazzld/cards-api/internal/store"
)

const insertCardQuery = `
	INSERT INTO cards (
		id, customer_id, org_id, program_id, account_id,
		printed_name, password_hash, cvv_hash, expiration_date,
		kind, status, issuing_date, pan
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
`

// PostgresCardStore implements the store.CardStore interface
// using a PostgreSQL database as the storage backend.
// Passwords and CVVs are stored as bcrypt hashes only.
type PostgresCardStore struct {
	db       store.DBTX
	logger   *slog.Logger
	hashCost int
}

// NewPostgresCardStore creates a new PostgreSQL implementation of the CardStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresCardStore(db store.DBTX, logger *slog.Logger) *PostgresCardStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCardStore{
		db:       db,
		logger:   logger.With(slog.String("component", "card_store")),
		hashCost: bcrypt.DefaultCost,
	}
}

// Ensure PostgresCardStore implements store.CardStore interface
var _ store.CardStore = (*PostgresCardStore)(nil)

// Save implements store.CardStore.Save.
// It inserts the card in a single statement; a unique violation on the ID or
// PAN is reported as store.ErrCardExists.
func (s *PostgresCardStore) Save(ctx context.Context, card *domain.Card) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if card == nil {
		return store.NewStoreError("card", "save", "card is nil", store.ErrInvalidEntity)
	}

	passwordHash, err := s.hash(card.Password)
	if err != nil {
		return store.NewStoreError("card", "save", "failed to hash password", err)
	}
	cvvHash, err := s.hash(card.CVV)
	if err != nil {
		return store.NewStoreError("card", "save", "failed to hash cvv", err)
	}

	_, err = s.db.ExecContext(ctx, insertCardQuery,
		card.ID,
		card.CustomerID,
		card.OrgID,
		card.ProgramID,
		card.AccountID,
		card.PrintedName,
		passwordHash,
		cvvHash,
		card.ExpirationDate,
		card.Kind.String(),
		card.Status.String(),
		card.IssuingDate.UTC(),
		card.PAN,
	)
	if err != nil {
		mapped := MapError(err)
		log.Error("failed to insert card",
			slog.String("card_id", card.ID.String()),
			slog.Bool("unique_violation", IsUniqueViolation(err)),
			slog.String("error", redact.Error(mapped)))
		return store.NewStoreError("card", "save", "insert failed", mapped)
	}

	log.Debug("card saved", slog.String("card_id", card.ID.String()))
	return nil
}

func (s *PostgresCardStore) hash(secret string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(secret), s.hashCost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(b), nil
}
