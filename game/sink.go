package game

//go:generate mockgen -source=sink.go -destination=sink_mock_test.go -package=game

// Outbound event names.
const (
	EventUpdateState   = "game_update_state"
	EventUpdatePlayers = "game_update_players"
	EventStateMessage  = "game_state_message"
	EventFeedMessage   = "game_feed_message"
)

// Sink delivers events to one client. Send must not block; delivery is
// at-most-once and unacknowledged.
type Sink interface {
	Send(event string, payload any)
}
