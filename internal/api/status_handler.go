package api

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// readyTimeout bounds the time spent on all dependency checks of one request.
const readyTimeout = 2 * time.Second

// HealthCheck reports whether a backing dependency is reachable.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// StatusHandler answers liveness and readiness probes.
type StatusHandler struct {
	logger *slog.Logger
	checks []HealthCheck
}

// NewStatusHandler creates a StatusHandler that consults checks on readiness
// requests. If logger is nil, slog.Default() is used.
func NewStatusHandler(logger *slog.Logger, checks ...HealthCheck) *StatusHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StatusHandler{logger: logger, checks: checks}
}

// Status handles GET /status with a plain-text "OK".
func (h *StatusHandler) Status(w http.ResponseWriter, _ *http.Request) {
	h.write(w, http.StatusOK, "OK")
}

// Ready handles GET /ready. It answers 200 "OK" when every check passes and
// 503 listing the failing dependencies otherwise.
func (h *StatusHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	var failing []string
	for _, c := range h.checks {
		if err := c.Check(ctx); err != nil {
			h.logger.WarnContext(ctx, "readiness check failed",
				slog.String("component", c.Name),
				slog.String("error", err.Error()))
			failing = append(failing, c.Name)
		}
	}

	if len(failing) > 0 {
		h.write(w, http.StatusServiceUnavailable, "unavailable: "+strings.Join(failing, ","))
		return
	}
	h.write(w, http.StatusOK, "OK")
}

func (h *StatusHandler) write(w http.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	if _, err := w.Write([]byte(body)); err != nil {
		h.logger.Error("failed to write status response", slog.String("error", err.Error()))
	}
}
