package game

import (
	"fmt"
	"time"
)

// Personal messages sent on every COOLDOWN entry.
const (
	MsgYoureIt = "You're it!"
	MsgRunAway = "Run away!"
)

const startedAtTS = "2006-01-02T15:04:05.000Z07:00"

// PlayerView is the client-facing representation of a player.
// Session IDs and sinks never leave the server.
type PlayerView struct {
	Frozen    bool      `json:"frozen"`
	It        bool      `json:"it"`
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Boosting  bool      `json:"boosting"`
	Boost     float64   `json:"boost"`
	Direction Direction `json:"direction"`
	Points    int       `json:"points"`
}

// Timestamp encodes as an ISO-8601 UTC string with milliseconds, or null
// when zero.
type Timestamp time.Time

// IsZero reports whether t is unset.
func (t Timestamp) IsZero() bool {
	return time.Time(t).IsZero()
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + time.Time(t).UTC().Format(startedAtTS) + `"`), nil
}

// StateMsg is the game_update_state payload: the phase fields plus when the
// phase started. StateStartedAt is null while waiting for players.
type StateMsg struct {
	Name           string    `json:"NAME"`
	DurationMS     int       `json:"DURATION_IN_MS"`
	StateStartedAt Timestamp `json:"stateStartedAt"`
}

// BuildPlayerView creates a PlayerView from a Player.
func BuildPlayerView(p *Player) PlayerView {
	return PlayerView{
		Frozen:    p.Frozen,
		It:        p.It,
		X:         p.X,
		Y:         p.Y,
		Name:      p.Name,
		Color:     p.Color,
		Boosting:  p.Boosting,
		Boost:     p.Boost,
		Direction: p.Direction,
		Points:    p.Points,
	}
}

// BuildPlayerViews projects players in order. Never returns nil so the
// payload always encodes as a JSON array.
func BuildPlayerViews(players []*Player) []PlayerView {
	views := make([]PlayerView, len(players))
	for i, p := range players {
		views[i] = BuildPlayerView(p)
	}
	return views
}

// BuildStateMsg returns the game_update_state payload for phase.
func BuildStateMsg(phase Phase, startedAt time.Time) StateMsg {
	return StateMsg{
		Name:           phase.Name,
		DurationMS:     phase.DurationMS,
		StateStartedAt: Timestamp(startedAt),
	}
}

func coloredName(p *Player) string {
	return fmt.Sprintf(`<span style="color:%s;">%s</span>`, p.Color, p.Name)
}

// itAnnouncement is the feed line naming the new it-player.
func itAnnouncement(it *Player) string {
	return fmt.Sprintf("<span>%s is it!</span>", coloredName(it))
}

// freezeAnnouncement is the feed line for a tag.
func freezeAnnouncement(it, frozen *Player) string {
	return fmt.Sprintf("<span>%s has frozen %s</span>", coloredName(it), coloredName(frozen))
}
