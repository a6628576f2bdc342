package wsutil

import (
	"bytes"
	"encoding/json"
	"log/slog"
)

// SafeSend sends data to a channel without panicking if the channel is closed.
// If the channel is full or closed, the send is skipped. Panics are recovered
// and logged for debugging.
func SafeSend(ch chan []byte, data []byte) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("SafeSend recovered panic", "tag", "wsutil", "panic", r)
		}
	}()
	select {
	case ch <- data:
	default:
	}
}

// Envelope frames one outbound event on the wire.
type Envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// ChannelSink delivers events to a client's send channel as JSON envelopes.
// It satisfies game.Sink.
type ChannelSink struct {
	ch chan []byte
}

// NewChannelSink wraps ch.
func NewChannelSink(ch chan []byte) *ChannelSink {
	return &ChannelSink{ch: ch}
}

// Send encodes the event and hands it to the channel without blocking.
// HTML is left unescaped; feed messages carry markup.
func (s *ChannelSink) Send(event string, payload any) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(Envelope{Event: event, Data: payload}); err != nil {
		slog.Error("marshaling event", "tag", "wsutil", "event", event, "err", err)
		return
	}
	SafeSend(s.ch, bytes.TrimRight(buf.Bytes(), "\n"))
}
