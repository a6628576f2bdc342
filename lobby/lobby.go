package lobby

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"math/rand"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"orbtag-server/config"
	"orbtag-server/game"
	"orbtag-server/lobbyerrors"
)

// Palette is the set of colors handed out to players that do not pick one.
var Palette = []string{"#e6194b", "#3cb44b", "#ffe119", "#4363d8", "#f58231", "#911eb4", "#46f0f0", "#f032e6"}

var colorPattern = regexp.MustCompile(`^(#[0-9a-fA-F]{3}|#[0-9a-fA-F]{6}|[a-zA-Z]{3,20})$`)

// Stats is a point-in-time summary of the lobby's game.
type Stats struct {
	GameID  string `json:"gameId"`
	State   string `json:"state"`
	Playing int    `json:"playing"`
	Waiting int    `json:"waiting"`
}

// Lobby owns one game and is the only goroutine that touches it. Joins,
// leaves and inputs are queued and applied between ticks.
type Lobby struct {
	cfg    *config.Config
	proc   *game.Processor
	game   *game.Game
	colors game.RandomSource
	log    *slog.Logger

	inbox chan func()
	done  chan struct{}
}

// New creates a lobby with an empty game driven by proc.
func New(cfg *config.Config, proc *game.Processor) *Lobby {
	id := uuid.NewString()
	return &Lobby{
		cfg:    cfg,
		proc:   proc,
		game:   game.NewGame(id, proc.Phases()),
		colors: game.NewRandomSource(rand.Int63()),
		log:    slog.Default().With("tag", "lobby", "game", id),
		inbox:  make(chan func(), 256),
		done:   make(chan struct{}),
	}
}

// Run applies queued commands and ticks the game every TickRateMS until ctx
// is cancelled. It should be run as a goroutine.
func (l *Lobby) Run(ctx context.Context) {
	defer close(l.done)

	interval := time.Duration(l.cfg.TickRateMS) * time.Millisecond
	if interval <= 0 {
		interval = 33 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	l.log.Info("lobby started", "tick", interval)
	for {
		select {
		case <-ctx.Done():
			l.log.Info("lobby stopped")
			return
		case cmd := <-l.inbox:
			cmd()
		case <-ticker.C:
			l.tick()
		}
	}
}

// Done is closed once Run has returned.
func (l *Lobby) Done() <-chan struct{} {
	return l.done
}

// Join queues a new player for the next round and returns its session ID.
// An empty or malformed color picks one from Palette.
func (l *Lobby) Join(name, color string, sink game.Sink) (string, error) {
	type result struct {
		sessionID string
		err       error
	}
	reply := make(chan result, 1)
	err := l.submit(func() {
		id, err := l.join(name, color, sink)
		reply <- result{id, err}
	})
	if err != nil {
		return "", err
	}
	select {
	case r := <-reply:
		return r.sessionID, r.err
	case <-l.done:
		return "", lobbyerrors.ErrLobbyClosed
	}
}

// Leave removes the player from the game.
func (l *Lobby) Leave(sessionID string) error {
	return l.call(func() error { return l.leave(sessionID) })
}

// SetDirection changes the direction the player travels in.
func (l *Lobby) SetDirection(sessionID string, dir game.Direction) error {
	return l.call(func() error { return l.setDirection(sessionID, dir) })
}

// SetBoosting records whether the player is holding boost.
func (l *Lobby) SetBoosting(sessionID string, boosting bool) error {
	return l.call(func() error { return l.setBoosting(sessionID, boosting) })
}

// Stats returns a summary of the game.
func (l *Lobby) Stats() (Stats, error) {
	reply := make(chan Stats, 1)
	if err := l.submit(func() { reply <- l.stats() }); err != nil {
		return Stats{}, err
	}
	select {
	case s := <-reply:
		return s, nil
	case <-l.done:
		return Stats{}, lobbyerrors.ErrLobbyClosed
	}
}

func (l *Lobby) submit(cmd func()) error {
	select {
	case <-l.done:
		return lobbyerrors.ErrLobbyClosed
	default:
	}
	select {
	case l.inbox <- cmd:
		return nil
	case <-l.done:
		return lobbyerrors.ErrLobbyClosed
	}
}

func (l *Lobby) call(fn func() error) error {
	reply := make(chan error, 1)
	if err := l.submit(func() { reply <- fn() }); err != nil {
		return err
	}
	select {
	case err := <-reply:
		return err
	case <-l.done:
		return lobbyerrors.ErrLobbyClosed
	}
}

func (l *Lobby) tick() {
	l.proc.Process(l.game)
}

func (l *Lobby) join(name, color string, sink game.Sink) (string, error) {
	name = strings.TrimSpace(name)
	if n := utf8.RuneCountInString(name); n < 1 || n > l.cfg.MaxNameLength {
		return "", fmt.Errorf("%w: must be between 1 and %d characters", lobbyerrors.ErrInvalidName, l.cfg.MaxNameLength)
	}
	if html.EscapeString(name) != name {
		return "", fmt.Errorf("%w: must not contain markup characters", lobbyerrors.ErrInvalidName)
	}
	if l.game.HasName(name) {
		return "", lobbyerrors.ErrNameTaken
	}
	// Colors end up inside feed markup; anything unexpected gets a palette color.
	if !colorPattern.MatchString(color) {
		color = Palette[l.colors.Int(0, len(Palette)-1)]
	}

	p := game.NewPlayer(name, uuid.NewString(), color, sink)
	l.game.Waiting = append(l.game.Waiting, p)
	l.log.Info("player joined", "player", name, "waiting", len(l.game.Waiting))

	if sink != nil {
		sink.Send(game.EventUpdateState, game.BuildStateMsg(l.game.State, l.game.StateStartedAt))
	}
	return p.SessionID, nil
}

func (l *Lobby) leave(sessionID string) error {
	p := l.game.RemovePlayer(sessionID)
	if p == nil {
		return lobbyerrors.ErrNotJoined
	}
	if l.game.ItName == p.Name {
		l.game.ItName = ""
	}
	l.log.Info("player left", "player", p.Name, "remaining", l.game.PlayerCount())
	return nil
}

func (l *Lobby) setDirection(sessionID string, dir game.Direction) error {
	if !dir.Valid() {
		return fmt.Errorf("%w: %q", lobbyerrors.ErrInvalidDirection, dir)
	}
	p := l.game.FindPlayer(sessionID)
	if p == nil {
		return lobbyerrors.ErrNotJoined
	}
	p.Direction = dir
	return nil
}

func (l *Lobby) setBoosting(sessionID string, boosting bool) error {
	p := l.game.FindPlayer(sessionID)
	if p == nil {
		return lobbyerrors.ErrNotJoined
	}
	p.Boosting = boosting
	return nil
}

func (l *Lobby) stats() Stats {
	return Stats{
		GameID:  l.game.ID,
		State:   l.game.State.Name,
		Playing: len(l.game.Playing),
		Waiting: len(l.game.Waiting),
	}
}
