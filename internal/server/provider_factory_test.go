package server

import (
	"context"
	"testing"

	"github.com/preston-bernstein/nhl-fantasy-service/internal/config"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/metrics"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/providers"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/teststubs"
)

func TestProviderFactoryWrapsWithInstrumentation(t *testing.T) {
	rec := metrics.NewRecorder()
	factory := newProviderFactory(nil, rec)

	prov := factory.build(config.Config{Provider: "fixture"})
	if prov == nil {
		t.Fatalf("expected provider")
	}
	if _, err := prov.FetchRegistry(context.Background()); err != nil {
		t.Fatalf("unexpected fixture error: %v", err)
	}
	if rec.Snapshot(providers.DatasetRegistry).Fetches != 1 {
		t.Fatalf("expected fetch recorded by instrumentation")
	}
}

func TestProviderFactoryWrapsInjectedProvider(t *testing.T) {
	rec := metrics.NewRecorder()
	stub := &teststubs.StubProvider{Err: providers.ErrProviderUnavailable}
	prov := newProviderFactory(nil, rec).wrap("", stub)

	_, err := prov.FetchBets(context.Background())
	dsErr, ok := providers.AsDatasetError(err)
	if !ok {
		t.Fatalf("expected dataset error, got %v", err)
	}
	if dsErr.Provider != "*teststubs.stubprovider" || dsErr.Dataset != providers.DatasetBets {
		t.Fatalf("unexpected dataset error %+v", dsErr)
	}
}

func TestNormalizeProviderName(t *testing.T) {
	if got := normalizeProviderName(" Fixture ", nil); got != "fixture" {
		t.Fatalf("expected lower-cased configured name, got %s", got)
	}
	if got := normalizeProviderName("", nil); got != "provider" {
		t.Fatalf("expected generic name, got %s", got)
	}
}
