package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/nhl-fantasy-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux. Admin routes are mounted only
// when admin is non-nil.
func NewRouter(handler *handlers.Handler, admin *handlers.AdminHandler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/fantasy/today", handler.FantasyToday)
	mux.HandleFunc("/playoffs/bracket", handler.Bracket)
	mux.HandleFunc("/playoffs/teams/", handler.TeamStatus)
	mux.HandleFunc("/rankings/playoffs", handler.PlayoffRankings)
	if admin != nil {
		mux.HandleFunc("/admin/refresh", admin.Refresh)
	}
	mux.Handle("/", handler)
	return mux
}
