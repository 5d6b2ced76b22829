package testutil

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/preston-bernstein/nhl-fantasy-service/internal/poller"
)

// StubPoller implements the server's Poller for tests.
type StubPoller struct {
	StartCalls   int
	StopCalls    int
	RefreshCalls int
	Err          error
	RefreshErr   error
	StatusVal    poller.Status
}

func (p *StubPoller) Start(context.Context) { p.StartCalls++ }

func (p *StubPoller) Stop(context.Context) error {
	p.StopCalls++
	return p.Err
}

func (p *StubPoller) RefreshNow(context.Context) error {
	p.RefreshCalls++
	return p.RefreshErr
}

func (p *StubPoller) Status() poller.Status { return p.StatusVal }

// FakeHTTPServer satisfies the server's httpServer interface without binding
// a socket. ListenAndServe returns ListenErr immediately. When Block is set,
// Shutdown waits for it to close or for the context to expire.
type FakeHTTPServer struct {
	AddrVal     string
	HandlerVal  http.Handler
	ListenErr   error
	ShutdownErr error
	Block       chan struct{}

	mu        sync.Mutex
	listens   int
	shutdowns int
}

// NewFailingHTTPServer returns a server whose listen fails outright.
func NewFailingHTTPServer() *FakeHTTPServer {
	return &FakeHTTPServer{ListenErr: errors.New("listen failure")}
}

// NewClosedHTTPServer returns a server that reports a clean close, as
// *http.Server does after Shutdown.
func NewClosedHTTPServer() *FakeHTTPServer {
	return &FakeHTTPServer{ListenErr: http.ErrServerClosed}
}

func (s *FakeHTTPServer) ListenAndServe() error {
	s.mu.Lock()
	s.listens++
	s.mu.Unlock()
	return s.ListenErr
}

func (s *FakeHTTPServer) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.shutdowns++
	s.mu.Unlock()
	if s.Block == nil {
		return s.ShutdownErr
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.Block:
		return s.ShutdownErr
	}
}

func (s *FakeHTTPServer) Addr() string {
	if s.AddrVal == "" {
		return ":0"
	}
	return s.AddrVal
}

func (s *FakeHTTPServer) Handler() http.Handler {
	if s.HandlerVal == nil {
		return http.NotFoundHandler()
	}
	return s.HandlerVal
}

// ListenCalls reports how many times ListenAndServe ran.
func (s *FakeHTTPServer) ListenCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listens
}

// ShutdownCalls reports how many times Shutdown ran.
func (s *FakeHTTPServer) ShutdownCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shutdowns
}
