package snapshots

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/fantasy"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/games"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/playoffs"
	"github.com/preston-bernstein/nhl-fantasy-service/internal/providers"
)

// ProviderName identifies snapshot-backed data in logs and metrics.
const ProviderName = "snapshot"

// FSStore serves every dataset from already-decoded JSON files:
//
//	{basePath}/games/{date}.json  games.DayResponse
//	{basePath}/registry.json      []fantasy.Team
//	{basePath}/bracket.json       playoffs.Bracket
//	{basePath}/rankings.json      []fantasy.Ranking
//	{basePath}/bets.json          []fantasy.TeamBets
//	{basePath}/rosters.json       map of team id to fantasy.TeamRoster
type FSStore struct {
	basePath string
	now      func() time.Time
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath, now: time.Now}
}

// HasGames reports whether a games snapshot exists for date.
func (s *FSStore) HasGames(date string) bool {
	if s == nil || date == "" {
		return false
	}
	_, err := os.Stat(GameSnapshotPath(s.basePath, date))
	return err == nil
}

// FetchGames reads the games snapshot for date, or for today in tz when date is empty.
func (s *FSStore) FetchGames(ctx context.Context, date string, tz string) ([]games.Game, error) {
	_ = ctx
	if s == nil {
		return nil, errNotConfigured(providers.DatasetGames)
	}
	date = providers.GameDay(date, tz, s.now())
	var payload games.DayResponse
	if err := s.decode(providers.DatasetGames, GameSnapshotPath(s.basePath, date), &payload); err != nil {
		return nil, err
	}
	if payload.Games == nil {
		payload.Games = []games.Game{}
	}
	return payload.Games, nil
}

func (s *FSStore) FetchRegistry(ctx context.Context) ([]fantasy.Team, error) {
	_ = ctx
	var out []fantasy.Team
	if err := s.decodeDataset(providers.DatasetRegistry, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *FSStore) FetchBracket(ctx context.Context) (*playoffs.Bracket, error) {
	_ = ctx
	var out playoffs.Bracket
	if err := s.decodeDataset(providers.DatasetBracket, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *FSStore) FetchRankings(ctx context.Context) ([]fantasy.Ranking, error) {
	_ = ctx
	var out []fantasy.Ranking
	if err := s.decodeDataset(providers.DatasetRankings, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *FSStore) FetchBets(ctx context.Context) ([]fantasy.TeamBets, error) {
	_ = ctx
	var out []fantasy.TeamBets
	if err := s.decodeDataset(providers.DatasetBets, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *FSStore) FetchRosters(ctx context.Context) (map[int]fantasy.TeamRoster, error) {
	_ = ctx
	var out map[int]fantasy.TeamRoster
	if err := s.decodeDataset(providers.DatasetRosters, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *FSStore) decodeDataset(dataset string, payload any) error {
	if s == nil {
		return errNotConfigured(dataset)
	}
	return s.decode(dataset, DatasetSnapshotPath(s.basePath, dataset), payload)
}

func (s *FSStore) decode(dataset, path string, payload any) error {
	if err := decodeFile(path, payload); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%w: %s", providers.ErrDatasetNotFound, path)
		} else {
			err = fmt.Errorf("%w: read %s: %v", providers.ErrProviderUnavailable, path, err)
		}
		return &providers.DatasetError{Provider: ProviderName, Dataset: dataset, Err: err}
	}
	return nil
}

func decodeFile(path string, payload any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(payload)
}

func errNotConfigured(dataset string) error {
	return &providers.DatasetError{
		Provider: ProviderName,
		Dataset:  dataset,
		Err:      fmt.Errorf("%w: snapshot store not configured", providers.ErrProviderUnavailable),
	}
}
