package fantasy

import (
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/cases"

	"github.com/preston-bernstein/nhl-fantasy-service/internal/domain/players"
)

// JoinKind tags how a roster entry's fantasy team resolved against the registry.
type JoinKind int

const (
	Unmatched JoinKind = iota
	Matched
)

func (k JoinKind) String() string {
	if k == Matched {
		return "matched"
	}
	return "unmatched"
}

func (k JoinKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *JoinKind) UnmarshalText(text []byte) error {
	if strings.EqualFold(string(text), "matched") {
		*k = Matched
	} else {
		*k = Unmatched
	}
	return nil
}

// JoinKey is the outcome of resolving a roster entry: Matched carries the
// registry id and name, Unmatched carries the raw declared name.
type JoinKey struct {
	Kind   JoinKind
	TeamID int
	Name   string
}

// IsMatched reports whether the key resolved to a registered team.
func (k JoinKey) IsMatched() bool {
	return k.Kind == Matched
}

// Registry looks up fantasy teams by id or by case-folded name.
type Registry struct {
	teams  []Team
	byID   map[int]Team
	byName map[string]Team

	// A Caser keeps state between calls, so the shared one is locked.
	foldMu sync.Mutex
	fold   cases.Caser
}

// NewRegistry indexes teams. On duplicate ids or names the first team wins.
func NewRegistry(items []Team) *Registry {
	r := &Registry{
		teams:  make([]Team, 0, len(items)),
		byID:   make(map[int]Team, len(items)),
		byName: make(map[string]Team, len(items)),
		fold:   cases.Fold(),
	}
	for _, t := range items {
		if _, ok := r.byID[t.ID]; ok {
			continue
		}
		r.teams = append(r.teams, t)
		r.byID[t.ID] = t
		if key := r.FoldName(t.Name); key != "" {
			if _, ok := r.byName[key]; !ok {
				r.byName[key] = t
			}
		}
	}
	return r
}

// Len returns the number of registered teams; a nil registry is empty.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.teams)
}

// Teams returns the registered teams in registration order.
func (r *Registry) Teams() []Team {
	if r == nil {
		return nil
	}
	out := make([]Team, len(r.teams))
	copy(out, r.teams)
	return out
}

// ByID returns the team registered under id.
func (r *Registry) ByID(id int) (Team, bool) {
	if r == nil {
		return Team{}, false
	}
	t, ok := r.byID[id]
	return t, ok
}

// Resolve joins a roster entry's declared owner against the registry. The id
// is tried first, then the case-folded name.
func (r *Registry) Resolve(ref players.FantasyRef) JoinKey {
	if r != nil {
		if ref.ID != 0 {
			if t, ok := r.byID[ref.ID]; ok {
				return JoinKey{Kind: Matched, TeamID: t.ID, Name: t.Name}
			}
		}
		if t, ok := r.byName[r.FoldName(ref.Name)]; ok && ref.Name != "" {
			return JoinKey{Kind: Matched, TeamID: t.ID, Name: t.Name}
		}
	}
	raw := strings.TrimSpace(ref.Name)
	if raw == "" && ref.ID != 0 {
		raw = strconv.Itoa(ref.ID)
	}
	return JoinKey{Kind: Unmatched, Name: raw}
}

// FoldName returns the case-folded, trimmed form of name used as the
// registry's name key. A nil registry folds with a fresh Caser.
func (r *Registry) FoldName(name string) string {
	name = strings.TrimSpace(name)
	if r == nil {
		return cases.Fold().String(name)
	}
	r.foldMu.Lock()
	defer r.foldMu.Unlock()
	return r.fold.String(name)
}
