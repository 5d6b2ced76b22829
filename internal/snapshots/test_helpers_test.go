package snapshots

import (
	"os"
	"slices"
	"testing"

	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/games"
)

func simpleDay(date string) games.DayResponse {
	return games.NewDayResponse(date, []games.Game{{ID: date}})
}

func writeDay(t *testing.T, w *Writer, date string, day games.DayResponse) {
	t.Helper()
	if err := w.WriteGames(date, day); err != nil {
		t.Fatalf("failed to write snapshot %s: %v", date, err)
	}
}

func requireSnapshotExists(t *testing.T, w *Writer, date string) {
	t.Helper()
	if _, err := os.Stat(GameSnapshotPath(w.BasePath(), date)); err != nil {
		t.Fatalf("expected snapshot for %s to be written: %v", date, err)
	}
}

func assertDatesEqual(t *testing.T, got, want []string) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Fatalf("dates mismatch: got %v, want %v", got, want)
	}
}
