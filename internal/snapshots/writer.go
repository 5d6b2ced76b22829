package snapshots

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/games"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/timeutil"
)

const defaultRetentionDays = 14

// Writer persists snapshots and manifest, pruning games snapshots older than
// the retention window.
type Writer struct {
	mu            sync.Mutex
	basePath      string
	retentionDays int
	now           func() time.Time
}

// NewWriter constructs a writer rooted at basePath with a rolling window retention.
func NewWriter(basePath string, retentionDays int) *Writer {
	if retentionDays <= 0 {
		retentionDays = defaultRetentionDays
	}
	return &Writer{
		basePath:      basePath,
		retentionDays: retentionDays,
		now:           time.Now,
	}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteGames writes the games snapshot for date (YYYY-MM-DD) and prunes old snapshots.
func (w *Writer) WriteGames(date string, day games.DayResponse) error {
	if w == nil {
		return fmt.Errorf("snapshot writer not configured")
	}
	if date == "" {
		return fmt.Errorf("date required")
	}
	if day.Date == "" {
		day.Date = date
	}
	sorted := make([]games.Game, len(day.Games))
	copy(sorted, day.Games)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ID < sorted[j].ID
	})
	day.Games = sorted

	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.write(GameSnapshotPath(w.basePath, date), day); err != nil {
		return err
	}
	return w.updateGamesManifest(date)
}

// WriteDataset writes a dateless dataset snapshot such as the bracket or registry.
func (w *Writer) WriteDataset(dataset string, payload any) error {
	if w == nil {
		return fmt.Errorf("snapshot writer not configured")
	}
	if dataset == "" {
		return fmt.Errorf("dataset required")
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.write(DatasetSnapshotPath(w.basePath, dataset), payload); err != nil {
		return err
	}
	m, _ := readManifest(filepath.Join(w.basePath, manifestFile), w.retentionDays)
	m.Datasets[dataset] = w.now().UTC()
	return writeManifest(w.basePath, m)
}

// write skips the rewrite when the file already holds the same bytes.
func (w *Writer) write(target string, payload any) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return nil
	}
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}

func (w *Writer) updateGamesManifest(date string) error {
	m, _ := readManifest(filepath.Join(w.basePath, manifestFile), w.retentionDays)

	dates, err := w.listGameDates()
	if err != nil {
		return err
	}
	if !containsDate(dates, date) {
		dates = append(dates, date)
	}

	m.Games.Dates = w.pruneOldSnapshots(dates)
	m.Games.LastRefreshed = w.now().UTC()
	m.Retention.GamesDays = w.retentionDays
	return writeManifest(w.basePath, m)
}

func containsDate(dates []string, date string) bool {
	for _, d := range dates {
		if d == date {
			return true
		}
	}
	return false
}

func (w *Writer) listGameDates() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(w.basePath, gamesDir))
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	dates := []string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if filepath.Ext(name) != ".json" {
			continue
		}
		dates = append(dates, name[:len(name)-len(".json")])
	}
	sort.Strings(dates)
	return dates, nil
}

func (w *Writer) pruneOldSnapshots(dates []string) []string {
	now := w.now().UTC()
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -w.retentionDays)
	keep := []string{}
	for _, d := range dates {
		parsed, err := timeutil.ParseDate(d)
		if err == nil && parsed.Before(cutoff) {
			_ = os.Remove(GameSnapshotPath(w.basePath, d))
			continue
		}
		keep = append(keep, d)
	}
	sort.Strings(keep)
	return keep
}
