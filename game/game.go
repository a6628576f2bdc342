package game

import "time"

// Game is the shared aggregate one Processor mutates once per tick.
// Callers must serialize Process calls and any other mutation of a Game.
type Game struct {
	ID string

	State     Phase
	PrevState Phase

	// StateStartedAt is when State was entered; zero while waiting for players.
	StateStartedAt time.Time

	// Waiting players join Playing on the next COOLDOWN entry.
	Waiting []*Player
	Playing []*Player

	// ItName identifies the chaser inside Playing; empty before the first round.
	ItName string
}

// NewGame creates an empty game waiting for players.
func NewGame(id string, phases Phases) *Game {
	return &Game{
		ID:        id,
		State:     phases.WaitingForPlayers,
		PrevState: phases.WaitingForPlayers,
		Waiting:   make([]*Player, 0),
		Playing:   make([]*Player, 0),
	}
}

// ItPlayer returns the current chaser, or nil when there is none or it has
// left the match.
func (g *Game) ItPlayer() *Player {
	if g.ItName == "" {
		return nil
	}
	for _, p := range g.Playing {
		if p.Name == g.ItName {
			return p
		}
	}
	return nil
}

// isIt reports whether p is the current chaser. An absent chaser matches nobody.
func (g *Game) isIt(p *Player) bool {
	return g.ItName != "" && p.Name == g.ItName
}

// PlayerCount is the population the gate compares against the minimum.
func (g *Game) PlayerCount() int {
	return len(g.Playing) + len(g.Waiting)
}

// FindPlayer returns the waiting or playing player with sessionID.
func (g *Game) FindPlayer(sessionID string) *Player {
	for _, p := range g.Playing {
		if p.SessionID == sessionID {
			return p
		}
	}
	for _, p := range g.Waiting {
		if p.SessionID == sessionID {
			return p
		}
	}
	return nil
}

// HasName reports whether any waiting or playing player uses name.
func (g *Game) HasName(name string) bool {
	for _, p := range g.Playing {
		if p.Name == name {
			return true
		}
	}
	for _, p := range g.Waiting {
		if p.Name == name {
			return true
		}
	}
	return false
}

// RemovePlayer drops the player with sessionID from whichever list holds it
// and returns it, or nil if it is not in the game.
func (g *Game) RemovePlayer(sessionID string) *Player {
	for i, p := range g.Playing {
		if p.SessionID == sessionID {
			g.Playing = append(g.Playing[:i], g.Playing[i+1:]...)
			return p
		}
	}
	for i, p := range g.Waiting {
		if p.SessionID == sessionID {
			g.Waiting = append(g.Waiting[:i], g.Waiting[i+1:]...)
			return p
		}
	}
	return nil
}
