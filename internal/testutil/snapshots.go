package testutil

import (
	"testing"

	"github.com/preston-bernstein/nhl-fantasy-service/internal/providers"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/snapshots"
)

// NewTempWriter returns a snapshot writer rooted in a temp dir.
func NewTempWriter(t *testing.T, retention int) *snapshots.Writer {
	t.Helper()
	return snapshots.NewWriter(t.TempDir(), retention)
}

// WriteSnapshot writes a games snapshot with a single sample game for the date.
func WriteSnapshot(t *testing.T, w *snapshots.Writer, date string) {
	t.Helper()
	if err := w.WriteGames(date, SampleDayResponse(date, date)); err != nil {
		t.Fatalf("failed to write snapshot %s: %v", date, err)
	}
}

// WriteSampleDatasets records every non-games sample dataset into w.
func WriteSampleDatasets(t *testing.T, w *snapshots.Writer) {
	t.Helper()
	payloads := map[string]any{
		providers.DatasetRegistry: SampleRegistry(),
		providers.DatasetBracket:  SampleBracket(),
		providers.DatasetRankings: SampleRankings(),
		providers.DatasetBets:     SampleBets(),
		providers.DatasetRosters:  SampleRosters(),
	}
	for dataset, payload := range payloads {
		if err := w.WriteDataset(dataset, payload); err != nil {
			t.Fatalf("failed to write dataset %s: %v", dataset, err)
		}
	}
}

// SnapshotPath returns the expected file path for a snapshot date.
func SnapshotPath(w *snapshots.Writer, date string) string {
	return snapshots.GameSnapshotPath(w.BasePath(), date)
}
