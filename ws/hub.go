package ws

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"orbtag-server/game"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allow all origins for development; restrict in production.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// LobbyInterface defines what the Hub needs from the Lobby.
type LobbyInterface interface {
	Join(name, color string, sink game.Sink) (string, error)
	Leave(sessionID string) error
	SetDirection(sessionID string, dir game.Direction) error
	SetBoosting(sessionID string, boosting bool) error
}

// Hub maintains the set of active clients.
type Hub struct {
	Clients    map[*Client]bool
	Register   chan *Client
	Unregister chan *Client
	Lobby      LobbyInterface
}

// NewHub creates a new Hub.
func NewHub(lobby LobbyInterface) *Hub {
	return &Hub{
		Clients:    make(map[*Client]bool),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Lobby:      lobby,
	}
}

// Run starts the hub's main loop. Should be run as a goroutine.
// When ctx is cancelled (e.g. on server shutdown), Run returns and no longer accepts new registrations.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			slog.Info("shutdown signal received, stopping", "tag", "ws")
			return
		case client := <-h.Register:
			h.Clients[client] = true
			slog.Info("client connected", "tag", "ws", "clients", len(h.Clients))

		case client := <-h.Unregister:
			if _, ok := h.Clients[client]; ok {
				delete(h.Clients, client)
				// Leave first so the lobby stops writing to Send before it closes.
				if client.SessionID != "" {
					if err := h.Lobby.Leave(client.SessionID); err != nil {
						slog.Warn("leave on disconnect", "tag", "ws", "player", client.Name, "err", err)
					}
				}
				close(client.Send)
				slog.Info("client disconnected", "tag", "ws", "clients", len(h.Clients))
			}
		}
	}
}

// ServeWS handles WebSocket upgrade requests and creates a new Client.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade error", "tag", "ws", "err", err)
		return
	}

	client := &Client{
		Hub:  h,
		Conn: conn,
		Send: make(chan []byte, 256),
	}

	h.Register <- client

	go client.WritePump()
	go client.ReadPump()
}
