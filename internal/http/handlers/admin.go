package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/preston-bernstein/nhl-fantasy-service/internal/http/requestutil"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/logging"
)

// RefreshFunc runs one synchronous refresh of every dataset.
type RefreshFunc func(ctx context.Context) error

// AdminHandler exposes admin-only endpoints guarded by a bearer token.
type AdminHandler struct {
	refresh RefreshFunc
	token   string
	logger  *slog.Logger
	now     func() time.Time
}

// NewAdminHandler constructs an AdminHandler. It returns nil when token is
// empty so callers can skip mounting the routes.
func NewAdminHandler(refresh RefreshFunc, token string, logger *slog.Logger) *AdminHandler {
	if token == "" {
		return nil
	}
	return &AdminHandler{
		refresh: refresh,
		token:   token,
		logger:  logger,
		now:     time.Now,
	}
}

// Refresh re-fetches every dataset immediately instead of waiting for the next poll.
// Partial failures are reported with 502; datasets that did load are already stored.
func (h *AdminHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	if !requestutil.TokenMatches(h.token, requestutil.BearerToken(r)) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String(logging.FieldClientIP, requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.refresh == nil {
		writeError(w, r, http.StatusServiceUnavailable, "refresh not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	start := h.now()
	if err := h.refresh(r.Context()); err != nil {
		logging.Error(logger, "admin refresh incomplete", err)
		writeError(w, r, http.StatusBadGateway, "refresh incomplete: "+err.Error(), logger)
		return
	}

	elapsed := h.now().Sub(start)
	logging.Info(logger, "admin refresh complete", slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()))
	writeJSON(w, http.StatusOK, map[string]any{
		"status":      "ok",
		"refreshedAt": start.UTC().Format(time.RFC3339),
	}, logger)
}
