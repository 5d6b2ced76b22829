package handlers

import (
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strings"

	"github.com/preston-bernstein/nhl-fantasy-service/internal/app/standings"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/fantasy"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/teams"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/logging"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/poller"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/timeutil"
)

const teamsPrefix = "/playoffs/teams/"

// FantasyTodayResponse is the payload of /fantasy/today.
type FantasyTodayResponse struct {
	Date  string                     `json:"date"`
	Teams []fantasy.FantasyTeamCount `json:"teams"`
}

// Handler wires HTTP routes to the standings service.
type Handler struct {
	svc      *standings.Service
	logger   *slog.Logger
	statusFn func() poller.Status
}

// NewHandler constructs a Handler. A nil statusFn reports ready unconditionally.
func NewHandler(svc *standings.Service, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		svc:      svc,
		logger:   logger,
		statusFn: statusFn,
	}
}

func (h *Handler) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch {
	case r.URL.Path == "/health":
		h.Health(w, r)
	case r.URL.Path == "/ready":
		h.Ready(w, r)
	case r.URL.Path == "/fantasy/today":
		h.FantasyToday(w, r)
	case r.URL.Path == "/playoffs/bracket":
		h.Bracket(w, r)
	case strings.HasPrefix(r.URL.Path, teamsPrefix):
		h.TeamStatus(w, r)
	case r.URL.Path == "/rankings/playoffs":
		h.PlayoffRankings(w, r)
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}

	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// FantasyToday returns the per-fantasy-team rollup for ?date= or today in the season timezone.
func (h *Handler) FantasyToday(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	date := strings.TrimSpace(r.URL.Query().Get("date"))
	if date != "" {
		if _, err := timeutil.ParseDate(date); err != nil {
			writeError(w, r, nethttp.StatusBadRequest, "invalid date format (expected YYYY-MM-DD)", logger)
			return
		}
	} else {
		date = h.svc.Today()
	}

	counts := h.svc.FantasyCounts(date)
	if counts == nil {
		counts = []fantasy.FantasyTeamCount{}
	}
	logging.Debug(logger, "served fantasy counts",
		slog.String(logging.FieldDate, date),
		slog.Int(logging.FieldCount, len(counts)),
	)
	writeJSON(w, nethttp.StatusOK, FantasyTodayResponse{Date: date, Teams: counts}, logger)
}

// TeamStatus classifies one NHL team: /playoffs/teams/{abbrev}.
func (h *Handler) TeamStatus(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	raw := strings.TrimPrefix(r.URL.Path, teamsPrefix)
	abbrev, err := url.PathUnescape(raw)
	if err != nil || !validAbbrev(abbrev) {
		writeError(w, r, nethttp.StatusBadRequest, "invalid team abbreviation", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, h.svc.TeamStatus(abbrev), h.logger)
}

// Bracket returns the classification of every team in the bracket.
func (h *Handler) Bracket(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	writeJSON(w, nethttp.StatusOK, h.svc.Bracket(), h.logger)
}

// PlayoffRankings returns the season ranking re-ordered by playoff score.
func (h *Handler) PlayoffRankings(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	rankings := h.svc.PlayoffRankings()
	if rankings == nil {
		rankings = []fantasy.PlayoffTeamRanking{}
	}
	writeJSON(w, nethttp.StatusOK, rankings, h.logger)
}

// validAbbrev accepts 2-4 ASCII letters. The placeholder "TBD" is a valid
// shape; the resolver reports it as not in the bracket.
func validAbbrev(abbrev string) bool {
	abbrev = teams.NormalizeAbbrev(abbrev)
	if len(abbrev) < 2 || len(abbrev) > 4 {
		return false
	}
	for _, c := range abbrev {
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}
