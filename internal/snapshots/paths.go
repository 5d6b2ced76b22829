package snapshots

import (
	"fmt"
	"path/filepath"
)

const (
	gamesDir     = "games"
	manifestFile = "manifest.json"
)

// GameSnapshotPath builds the path to a games snapshot for a given date.
func GameSnapshotPath(basePath, date string) string {
	return filepath.Join(basePath, gamesDir, fmt.Sprintf("%s.json", date))
}

// DatasetSnapshotPath builds the path to a dateless dataset snapshot
// (registry, bracket, rankings, bets, rosters).
func DatasetSnapshotPath(basePath, dataset string) string {
	return filepath.Join(basePath, fmt.Sprintf("%s.json", dataset))
}
