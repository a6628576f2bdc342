package game

// Direction is one of the fixed unit directions a player can travel in.
type Direction string

const (
	DirXPlus  Direction = "x+"
	DirXMinus Direction = "x-"
	DirYPlus  Direction = "y+"
	DirYMinus Direction = "y-"
)

// Directions is the set a freshly admitted player's direction is drawn from.
var Directions = []Direction{DirXPlus, DirXMinus, DirYPlus, DirYMinus}

// Valid reports whether d is one of Directions.
func (d Direction) Valid() bool {
	for _, dir := range Directions {
		if d == dir {
			return true
		}
	}
	return false
}

// Player represents a player in a game session.
type Player struct {
	Name      string
	SessionID string
	Color     string

	X         float64
	Y         float64
	Direction Direction
	Boosting  bool // client input
	Boost     float64

	Frozen bool
	It     bool
	Points int

	// Sink is the client's outbound channel; owned by the transport layer.
	Sink Sink
}

// NewPlayer creates a queued player. Simulation attributes are assigned when
// the player is admitted into the match.
func NewPlayer(name, sessionID, color string, sink Sink) *Player {
	return &Player{
		Name:      name,
		SessionID: sessionID,
		Color:     color,
		Sink:      sink,
	}
}

func (p *Player) send(event string, payload any) {
	if p.Sink == nil {
		return
	}
	p.Sink.Send(event, payload)
}
