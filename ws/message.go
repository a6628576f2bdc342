package ws

import "encoding/json"

// InboundEnvelope is the generic envelope for all client-to-server messages.
// The Type field is used for routing; Raw holds the full JSON payload.
type InboundEnvelope struct {
	Type string          `json:"type"`
	Raw  json.RawMessage `json:"-"`
}

// UnmarshalJSON implements custom unmarshaling to capture the raw payload.
func (e *InboundEnvelope) UnmarshalJSON(data []byte) error {
	type typeOnly struct {
		Type string `json:"type"`
	}
	var t typeOnly
	if err := json.Unmarshal(data, &t); err != nil {
		return err
	}
	e.Type = t.Type
	e.Raw = json.RawMessage(data)
	return nil
}

// --- Client-to-Server message payloads ---

// JoinGameMsg is sent by the client to enter the waiting queue.
// Color is optional.
type JoinGameMsg struct {
	Type  string `json:"type"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// ChangeDirectionMsg steers the player; Direction is one of x+, x-, y+, y-.
type ChangeDirectionMsg struct {
	Type      string `json:"type"`
	Direction string `json:"direction"`
}

// BoostMsg is sent when the client presses or releases boost.
type BoostMsg struct {
	Type     string `json:"type"`
	Boosting bool   `json:"boosting"`
}

// --- Server-to-Client messages ---
// Sent inside the same {"event","data"} envelope as game events.

const (
	EventJoined = "joined"
	EventError  = "error"
)

// JoinedMsg confirms the player is queued for the next round.
type JoinedMsg struct {
	SessionID string `json:"sessionId"`
	Name      string `json:"name"`
}

// ErrorMsg is sent when a client action is invalid.
type ErrorMsg struct {
	Message string `json:"message"`
}
