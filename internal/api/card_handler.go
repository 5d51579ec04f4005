package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/cards-api/internal/api/shared"
	"github.com/phrazzld/cards-api/internal/domain"
	"github.com/phrazzld/cards-api/internal/platform/logger"
	"github.com/phrazzld/cards-api/internal/platform/metrics"
	"github.com/phrazzld/cards-api/internal/service"
)

// CardHandler handles card-related HTTP requests
type CardHandler struct {
	cardService service.CardService
	metrics     *metrics.Metrics
	logger      *slog.Logger
}

// NewCardHandler creates a new CardHandler. A nil metrics disables instrumentation.
func NewCardHandler(
	cardService service.CardService,
	m *metrics.Metrics,
	logger *slog.Logger,
) *CardHandler {
	if cardService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("cardService cannot be nil for CardHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CardHandler")
	}

	return &CardHandler{
		cardService: cardService,
		metrics:     m,
		logger:      logger.With(slog.String("component", "card_handler")),
	}
}

// CreateCard handles POST /cards requests.
//
// Responses:
//   - 201 with the created CardRecord
//   - 400 with {"fieldName", "inputtedValue"} naming the first invalid field
//   - 400 with a generic error when the body is not a JSON object
//   - 500 with a generic error on generator or persistence failure
func (h *CardHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	r = r.WithContext(logger.WithLogger(r.Context(), log))
	start := time.Now()
	if h.metrics != nil {
		defer h.metrics.ObserveCreate(start)
	}

	var req domain.CardRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	record, err := h.cardService.Create(r.Context(), req)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			if h.metrics != nil {
				h.metrics.IncrementRejected(vErr.FieldName)
			}
			log.Debug("card request rejected", slog.String("field", vErr.FieldName))
			shared.RespondWithJSON(w, r, http.StatusBadRequest, vErr)
			return
		}

		if h.metrics != nil {
			h.metrics.IncrementFailed()
		}
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if h.metrics != nil {
		h.metrics.IncrementCreated()
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, record)
}
