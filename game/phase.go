package game

import "orbtag-server/config"

// Phase names as sent to clients.
const (
	WaitingForPlayers = "WAITING_FOR_PLAYERS"
	Cooldown          = "COOLDOWN"
	Playing           = "PLAYING"
)

// Phase describes one state of the round cycle.
type Phase struct {
	Name       string
	DurationMS int
}

// Phases holds the three phase descriptors built from configuration.
type Phases struct {
	WaitingForPlayers Phase
	Cooldown          Phase
	Playing           Phase
}

// NewPhases builds the phase descriptors for cfg. Waiting for players has no
// duration; it is left only through the population gate.
func NewPhases(cfg *config.Config) Phases {
	return Phases{
		WaitingForPlayers: Phase{Name: WaitingForPlayers},
		Cooldown:          Phase{Name: Cooldown, DurationMS: cfg.CooldownDurationMS},
		Playing:           Phase{Name: Playing, DurationMS: cfg.PlayingDurationMS},
	}
}

// next returns the phase that follows current. Anything other than COOLDOWN,
// including the escape from WAITING_FOR_PLAYERS, goes to COOLDOWN first.
func (ps Phases) next(current Phase) Phase {
	if current.Name != Cooldown {
		return ps.Cooldown
	}
	return ps.Playing
}
