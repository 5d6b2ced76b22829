package server

import (
	"context"

	"github.com/preston-bernstein/nhl-fantasy-service/internal/poller"
)

// Poller defines the poller behavior needed by the server.
type Poller interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	RefreshNow(ctx context.Context) error
	Status() poller.Status
}
