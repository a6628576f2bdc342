package game

import (
	"log/slog"
	"math/rand"
	"time"

	"orbtag-server/config"
)

// Points awarded to the it-player for each tag.
const FreezePoints = 2

// Processor advances a Game by one tick. It holds no per-game state, but its
// RandomSource is not safe for concurrent use.
type Processor struct {
	cfg    *config.Config
	phases Phases
	rand   RandomSource
	now    func() time.Time
	log    *slog.Logger
}

// Option customizes a Processor.
type Option func(*Processor)

// WithRandom replaces the default time-seeded random source.
func WithRandom(r RandomSource) Option {
	return func(p *Processor) { p.rand = r }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(p *Processor) { p.now = now }
}

// WithLogger replaces slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(p *Processor) { p.log = l }
}

// NewProcessor creates a Processor for games configured by cfg.
func NewProcessor(cfg *config.Config, opts ...Option) *Processor {
	p := &Processor{
		cfg:    cfg,
		phases: NewPhases(cfg),
		rand:   NewRandomSource(rand.Int63()),
		now:    time.Now,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.log = p.log.With("tag", "game")
	return p
}

// Phases returns the phase descriptors this processor cycles through.
func (p *Processor) Phases() Phases {
	return p.phases
}

// Process runs one tick: population gate, phase advancement, physics and
// collisions, then the player broadcast.
func (p *Processor) Process(g *Game) {
	if g.PlayerCount() < p.cfg.MinPlayers {
		p.waitForPlayers(g)
		return
	}

	now := p.now()
	if p.finishedWithState(g, now) {
		p.advance(g, now)
	}

	p.step(g)

	views := BuildPlayerViews(g.Playing)
	for _, pl := range g.Playing {
		pl.send(EventUpdatePlayers, views)
	}
}

// waitForPlayers parks the game until the population recovers. Playing
// players keep their simulation state; only the broadcast list is emptied.
func (p *Processor) waitForPlayers(g *Game) {
	if g.State.Name == WaitingForPlayers {
		return
	}
	g.State = p.phases.WaitingForPlayers
	g.StateStartedAt = time.Time{}
	p.log.Info("not enough players, waiting", "game", g.ID, "players", g.PlayerCount())

	state := BuildStateMsg(g.State, g.StateStartedAt)
	for _, pl := range g.Playing {
		pl.send(EventUpdateState, state)
		pl.send(EventUpdatePlayers, []PlayerView{})
	}
}

func (p *Processor) finishedWithState(g *Game, now time.Time) bool {
	if g.StateStartedAt.IsZero() {
		return true
	}
	if p.allFrozen(g) {
		return true
	}
	return now.Sub(g.StateStartedAt) >= time.Duration(g.State.DurationMS)*time.Millisecond
}

// allFrozen reports whether every playing player is the chaser or frozen.
func (p *Processor) allFrozen(g *Game) bool {
	for _, pl := range g.Playing {
		if !g.isIt(pl) && !pl.Frozen {
			return false
		}
	}
	return true
}

func (p *Processor) advance(g *Game, now time.Time) {
	g.PrevState = g.State
	g.State = p.phases.next(g.State)
	g.StateStartedAt = now
	p.log.Info("phase changed", "game", g.ID, "from", g.PrevState.Name, "to", g.State.Name)

	if g.State.Name == Cooldown {
		p.admitWaiting(g)
		p.awardSurvivors(g)
		p.rotateIt(g)
		p.unfreezeAll(g)
	}

	state := BuildStateMsg(g.State, g.StateStartedAt)
	for _, pl := range g.Playing {
		pl.send(EventUpdateState, state)
	}
}

// admitWaiting moves the whole queue into the match with fresh attributes.
func (p *Processor) admitWaiting(g *Game) {
	for _, pl := range g.Waiting {
		pl.X = float64(p.rand.Int(p.cfg.NegativeXThreshold, p.cfg.PositiveXThreshold))
		pl.Y = float64(p.rand.Int(p.cfg.NegativeYThreshold, p.cfg.PositiveYThreshold))
		pl.Frozen = false
		pl.It = false
		pl.Boosting = false
		pl.Boost = p.cfg.BoostCap
		pl.Direction = Directions[p.rand.Int(0, len(Directions)-1)]
		pl.Points = 0
		g.Playing = append(g.Playing, pl)
		p.log.Info("player admitted", "game", g.ID, "player", pl.Name)
	}
	g.Waiting = g.Waiting[:0]
}

// awardSurvivors pays every unfrozen runner one point per other player.
// Nothing is paid on the first round after waiting for players.
func (p *Processor) awardSurvivors(g *Game) {
	if g.PrevState.Name == WaitingForPlayers {
		return
	}
	bonus := len(g.Playing) - 1
	for _, pl := range g.Playing {
		if g.isIt(pl) || pl.Frozen {
			continue
		}
		pl.Points += bonus
	}
}

func (p *Processor) rotateIt(g *Game) {
	if prev := g.ItPlayer(); prev != nil {
		prev.It = false
	}
	if len(g.Playing) == 0 {
		g.ItName = ""
		return
	}
	it := g.Playing[p.rand.Int(0, len(g.Playing)-1)]
	it.It = true
	g.ItName = it.Name
	p.log.Info("new it player", "game", g.ID, "player", it.Name)
}

func (p *Processor) unfreezeAll(g *Game) {
	it := g.ItPlayer()
	for _, pl := range g.Playing {
		if g.isIt(pl) {
			pl.send(EventStateMessage, MsgYoureIt)
		} else {
			pl.send(EventStateMessage, MsgRunAway)
		}
		if it != nil {
			pl.send(EventFeedMessage, itAnnouncement(it))
		}
		pl.Frozen = false
	}
}

// step applies boost regen, tagging and movement to every playing player.
func (p *Processor) step(g *Game) {
	it := g.ItPlayer()
	freezable := g.State.Name == Playing && it != nil

	for _, pl := range g.Playing {
		regenBoost(pl, p.cfg)
		if pl.Frozen {
			continue
		}

		if freezable && pl != it && Collides(pl.position(), it.position(), p.cfg.PlayerSize, p.cfg.PlayerSize) {
			p.freeze(g, it, pl)
			continue
		}

		move(pl, p.cfg)
	}
}

func (p *Processor) freeze(g *Game, it, victim *Player) {
	p.log.Info(it.Name+" froze "+victim.Name, "game", g.ID)
	feed := freezeAnnouncement(it, victim)
	for _, pl := range g.Playing {
		pl.send(EventFeedMessage, feed)
	}
	victim.Frozen = true
	it.Points += FreezePoints
}
