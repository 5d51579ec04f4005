package service

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/cards-api/internal/domain"
	"github.com/phrazzld/cards-api/internal/platform/logger"
	"github.com/phrazzld/cards-api/internal/store"
)

var (
	cardID1   = uuid.MustParse("6f1b7c3e-2d4a-4b8e-9c0f-1a2b3c4d5e6f")
	cardID2   = uuid.MustParse("7a2c8d4f-3e5b-4c9f-8d1a-2b3c4d5e6f70")
	programID = uuid.MustParse("c0a4cc71-5c11-43cb-b74f-2b577012449f")
	issuedAt  = time.Date(2024, 3, 14, 12, 26, 53, 0, time.UTC)
	testPAN   = "5351104200000018"
)

func validRequest() domain.CardRequest {
	return domain.CardRequest{
		CustomerID:     "a3643446-76fc-4516-8e43-bb6600ca118e",
		OrgID:          "3ee15c70-b7b4-4b87-ba43-38eba70f98c4",
		ProgramID:      programID.String(),
		AccountID:      "ba3df3ae-1da8-4b0a-be8c-e9f903d1f7de",
		PrintedName:    "RICARDO",
		Password:       "517412",
		ExpirationDate: "0724",
		Kind:           "PLASTIC",
		CVV:            "451",
	}
}

type fixture struct {
	repo    *MockCardRepository
	numbers *MockNumberGenerator
	ids     *sequentialIDs
	logs    *logger.TestLogBuffer
	svc     CardService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log, buf := logger.GetTestLogger(t)
	f := &fixture{
		repo:    &MockCardRepository{},
		numbers: &MockNumberGenerator{},
		ids:     &sequentialIDs{ids: []uuid.UUID{cardID1, cardID2}},
		logs:    buf,
	}
	svc, err := NewCardService(f.repo, f.ids, fixedClock{t: issuedAt}, f.numbers, log)
	require.NoError(t, err)
	f.svc = svc
	return f
}

func TestNewCardService(t *testing.T) {
	repo := &MockCardRepository{}
	ids := &sequentialIDs{ids: []uuid.UUID{cardID1}}
	clock := fixedClock{t: issuedAt}
	numbers := &MockNumberGenerator{}

	tests := []struct {
		name     string
		repo     CardRepository
		ids      domain.IDGenerator
		clock    domain.Clock
		numbers  domain.NumberGenerator
		logger   *slog.Logger
		errorMsg string
	}{
		{"nil repo", nil, ids, clock, numbers, slog.Default(), "repo"},
		{"nil ids", repo, nil, clock, numbers, slog.Default(), "ids"},
		{"nil clock", repo, ids, nil, numbers, slog.Default(), "clock"},
		{"nil numbers", repo, ids, clock, nil, slog.Default(), "numbers"},
		{"nil logger uses default", repo, ids, clock, numbers, nil, ""},
		{"all dependencies provided", repo, ids, clock, numbers, slog.Default(), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewCardService(tt.repo, tt.ids, tt.clock, tt.numbers, tt.logger)
			if tt.errorMsg != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrNilDependency)
				assert.Contains(t, err.Error(), tt.errorMsg)
				assert.Nil(t, svc)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, svc)
		})
	}
}

func TestCardService_Create_EndToEnd(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.numbers.On("Generate", ctx, programID).Return(testPAN, nil).Once()
	f.repo.On("Save", ctx, mock.MatchedBy(func(c *domain.Card) bool {
		return c.ID == cardID1 && c.PAN == testPAN && c.Status == domain.StatusEnabled
	})).Return(nil).Once()

	record, err := f.svc.Create(ctx, validRequest())
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.Equal(t, domain.CardRecord{
		ID:             cardID1.String(),
		CustomerID:     "a3643446-76fc-4516-8e43-bb6600ca118e",
		OrgID:          "3ee15c70-b7b4-4b87-ba43-38eba70f98c4",
		ProgramID:      "c0a4cc71-5c11-43cb-b74f-2b577012449f",
		AccountID:      "ba3df3ae-1da8-4b0a-be8c-e9f903d1f7de",
		PrintedName:    "RICARDO",
		Password:       "517412",
		ExpirationDate: "0724",
		IssuingDate:    "2024-03-14T12:26:53Z",
		PAN:            testPAN,
		Kind:           "PLASTIC",
		Status:         "ENABLED",
		CVV:            "451",
	}, *record)

	f.repo.AssertNumberOfCalls(t, "Save", 1)
	f.repo.AssertExpectations(t)
	f.numbers.AssertExpectations(t)
}

func TestCardService_Create_IgnoresCallerSuppliedFields(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.numbers.On("Generate", ctx, programID).Return(testPAN, nil)
	f.repo.On("Save", ctx, mock.Anything).Return(nil)

	req := validRequest()
	req.ID = "00000000-0000-0000-0000-000000000000"
	req.PAN = "4111111111111111"
	req.Status = "BLOCKED"
	req.IssuingDate = "1999-01-01T00:00:00Z"

	record, err := f.svc.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, cardID1.String(), record.ID)
	assert.Equal(t, testPAN, record.PAN)
	assert.Equal(t, "ENABLED", record.Status)
	assert.Equal(t, "2024-03-14T12:26:53Z", record.IssuingDate)
}

func TestCardService_Create_NotIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.numbers.On("Generate", ctx, programID).Return(testPAN, nil)
	f.repo.On("Save", ctx, mock.Anything).Return(nil)

	first, err := f.svc.Create(ctx, validRequest())
	require.NoError(t, err)
	second, err := f.svc.Create(ctx, validRequest())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	f.repo.AssertNumberOfCalls(t, "Save", 2)
}

func TestCardService_Create_ValidationFailure(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.PrintedName = "R1CARDO"
	req.CVV = "61112"

	record, err := f.svc.Create(context.Background(), req)
	assert.Nil(t, record)

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, domain.FieldPrintedName, vErr.FieldName)
	assert.Equal(t, "R1CARDO", vErr.InputtedValue)
	assert.False(t, IsSystemError(err))

	f.repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	f.numbers.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestCardService_Create_SaveFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.numbers.On("Generate", ctx, programID).Return(testPAN, nil)
	saveErr := store.NewStoreError("card", "save", "insert failed", store.ErrCardExists)
	f.repo.On("Save", ctx, mock.Anything).Return(saveErr).Once()

	record, err := f.svc.Create(ctx, validRequest())
	assert.Nil(t, record)
	require.Error(t, err)
	assert.True(t, IsSystemError(err))
	assert.ErrorIs(t, err, store.ErrCardExists)
	assert.NotErrorIs(t, err, domain.ErrValidation)

	f.repo.AssertNumberOfCalls(t, "Save", 1)
	logger.AssertLogNotContains(t, f.logs, testPAN)
	logger.AssertLogNotContains(t, f.logs, "517412")

	entries, err := f.logs.Entries()
	require.NoError(t, err)
	var saveLog map[string]any
	for _, e := range entries {
		if e["msg"] == "failed to save card" {
			saveLog = e
		}
	}
	require.NotNil(t, saveLog)
	assert.Equal(t, true, saveLog["duplicate"])
}

func TestCardService_Create_SaveFailureNotDuplicate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.numbers.On("Generate", ctx, programID).Return(testPAN, nil)
	f.repo.On("Save", ctx, mock.Anything).Return(errors.New("connection reset")).Once()

	_, err := f.svc.Create(ctx, validRequest())
	require.Error(t, err)
	assert.True(t, IsSystemError(err))

	entries, err := f.logs.Entries()
	require.NoError(t, err)
	var saveLog map[string]any
	for _, e := range entries {
		if e["msg"] == "failed to save card" {
			saveLog = e
		}
	}
	require.NotNil(t, saveLog)
	assert.Equal(t, false, saveLog["duplicate"])
}

func TestCardService_Create_GeneratorFailures(t *testing.T) {
	t.Run("number generator", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		boom := errors.New("sequence unavailable")
		f.numbers.On("Generate", ctx, programID).Return("", boom)

		record, err := f.svc.Create(ctx, validRequest())
		assert.Nil(t, record)
		assert.True(t, IsSystemError(err))
		assert.ErrorIs(t, err, domain.ErrGeneration)
		assert.ErrorIs(t, err, boom)
		f.repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("identifier generator", func(t *testing.T) {
		f := newFixture(t)
		f.ids.err = errors.New("entropy exhausted")

		record, err := f.svc.Create(context.Background(), validRequest())
		assert.Nil(t, record)
		assert.True(t, IsSystemError(err))
		assert.ErrorIs(t, err, domain.ErrGeneration)
		f.repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestCardService_Create_LogsWithoutSecrets(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.numbers.On("Generate", ctx, programID).Return(testPAN, nil)
	f.repo.On("Save", ctx, mock.Anything).Return(nil)

	_, err := f.svc.Create(ctx, validRequest())
	require.NoError(t, err)

	assert.Contains(t, f.logs.String(), "card created")
	assert.Contains(t, f.logs.String(), "535110******0018")
	logger.AssertLogNotContains(t, f.logs, testPAN)
	logger.AssertLogNotContains(t, f.logs, "517412")
	logger.AssertLogNotContains(t, f.logs, `"451"`)
}

func TestCardServiceError(t *testing.T) {
	inner := errors.New("disk full")
	err := NewCardServiceError("create", "failed to save card", inner)

	assert.Equal(t, "card service create failed: failed to save card: disk full", err.Error())
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "card service create failed: nope", NewCardServiceError("create", "nope", nil).Error())
	assert.False(t, IsSystemError(inner))
	assert.False(t, IsSystemError(nil))
}
