package players

import (
	"encoding/json"
	"strings"

	"github.com/tidwall/gjson"
)

// Player is a roster entry for one game. FantasyTeam is the inline join key
// naming the fantasy team that owns the player, if any.
type Player struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Position    string     `json:"position,omitempty"`
	NHLTeam     string     `json:"nhlTeam,omitempty"`
	FantasyTeam FantasyRef `json:"fantasyTeam"`
	Points      Points     `json:"points"`
}

// GamePlayer is a Player copied out of a game roster and annotated with where it played.
type GamePlayer struct {
	Player
	GameID   string `json:"gameId"`
	TeamName string `json:"teamName"`
	TeamLogo string `json:"teamLogo,omitempty"`
}

// Points decodes any JSON number and coerces everything else (absent, null,
// strings, objects) to zero.
type Points float64

func (p *Points) UnmarshalJSON(data []byte) error {
	res := gjson.ParseBytes(data)
	if res.Type != gjson.Number {
		*p = 0
		return nil
	}
	*p = Points(res.Float())
	return nil
}

// FantasyRef is the roster entry's declared owner. Upstream feeds send a bare
// name, a bare numeric id or an {id, name} object; all three decode here.
type FantasyRef struct {
	ID   int
	Name string
}

// IsEmpty reports whether the entry declares no fantasy team at all.
func (r FantasyRef) IsEmpty() bool {
	return r.ID == 0 && strings.TrimSpace(r.Name) == ""
}

func (r *FantasyRef) UnmarshalJSON(data []byte) error {
	*r = FantasyRef{}
	res := gjson.ParseBytes(data)
	switch res.Type {
	case gjson.String:
		r.Name = strings.TrimSpace(res.String())
	case gjson.Number:
		r.ID = int(res.Int())
	case gjson.JSON:
		if !res.IsObject() {
			return nil
		}
		if id := res.Get("id"); id.Exists() {
			r.ID = int(id.Int())
		}
		r.Name = strings.TrimSpace(res.Get("name").String())
	}
	return nil
}

func (r FantasyRef) MarshalJSON() ([]byte, error) {
	switch {
	case r.IsEmpty():
		return []byte("null"), nil
	case r.ID == 0:
		return json.Marshal(r.Name)
	case r.Name == "":
		return json.Marshal(r.ID)
	default:
		return json.Marshal(struct {
			ID   int    `json:"id"`
			Name string `json:"name"`
		}{r.ID, r.Name})
	}
}
