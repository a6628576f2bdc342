package ws

import (
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"
	"orbtag-server/game"
	"orbtag-server/lobbyerrors"
	"orbtag-server/wsutil"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 1024
)

// Client is a middleman between the websocket connection and the lobby.
type Client struct {
	Hub       *Hub
	Conn      *websocket.Conn
	Send      chan []byte
	Name      string
	SessionID string // empty until joined
}

// ReadPump pumps messages from the websocket connection to the lobby.
// It runs in its own goroutine per connection.
func (c *Client) ReadPump() {
	defer func() {
		c.Hub.Unregister <- c
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Warn("websocket read error", "tag", "ws", "err", err)
			}
			break
		}

		c.handleMessage(message)
	}
}

// WritePump pumps messages from the send channel to the websocket connection.
// It runs in its own goroutine per connection.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel.
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.Conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) handleMessage(data []byte) {
	var envelope InboundEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		c.sendError("Invalid message format.")
		return
	}

	switch envelope.Type {
	case "join_game":
		c.handleJoinGame(envelope.Raw)
	case "change_direction":
		c.handleChangeDirection(envelope.Raw)
	case "boost":
		c.handleBoost(envelope.Raw)
	default:
		c.sendError("Unknown message type: " + envelope.Type)
	}
}

func (c *Client) handleJoinGame(raw json.RawMessage) {
	if c.SessionID != "" {
		c.sendError(lobbyerrors.ErrAlreadyJoined.Error())
		return
	}

	var msg JoinGameMsg
	if err := json.Unmarshal(raw, &msg); err != nil {
		c.sendError("Invalid join_game message.")
		return
	}

	sessionID, err := c.Hub.Lobby.Join(msg.Name, msg.Color, wsutil.NewChannelSink(c.Send))
	if err != nil {
		c.sendError(err.Error())
		return
	}
	c.SessionID = sessionID
	c.Name = msg.Name
	c.send(EventJoined, JoinedMsg{SessionID: sessionID, Name: msg.Name})
}

func (c *Client) handleChangeDirection(raw json.RawMessage) {
	if c.SessionID == "" {
		c.sendError(lobbyerrors.ErrNotJoined.Error())
		return
	}

	var msg ChangeDirectionMsg
	if err := json.Unmarshal(raw, &msg); err != nil {
		c.sendError("Invalid change_direction message.")
		return
	}

	c.reportLobbyError(c.Hub.Lobby.SetDirection(c.SessionID, game.Direction(msg.Direction)))
}

func (c *Client) handleBoost(raw json.RawMessage) {
	if c.SessionID == "" {
		c.sendError(lobbyerrors.ErrNotJoined.Error())
		return
	}

	var msg BoostMsg
	if err := json.Unmarshal(raw, &msg); err != nil {
		c.sendError("Invalid boost message.")
		return
	}

	c.reportLobbyError(c.Hub.Lobby.SetBoosting(c.SessionID, msg.Boosting))
}

func (c *Client) reportLobbyError(err error) {
	switch {
	case err == nil:
	case errors.Is(err, lobbyerrors.ErrLobbyClosed):
		c.sendError("Server is shutting down.")
	default:
		c.sendError(err.Error())
	}
}

func (c *Client) send(event string, payload any) {
	wsutil.NewChannelSink(c.Send).Send(event, payload)
}

func (c *Client) sendError(message string) {
	c.send(EventError, ErrorMsg{Message: message})
}
