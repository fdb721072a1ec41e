package ws

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Event is pushed to every client watching a game's lobby.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

const (
	EventPlayerJoined  = "player_joined"
	EventGamePublished = "game_published"
)

// Hub keeps the websocket connections subscribed to each game's lobby.
type Hub struct {
	mu    sync.RWMutex
	games map[uint]map[*websocket.Conn]bool
	log   *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{
		games: make(map[uint]map[*websocket.Conn]bool),
		log:   log,
	}
}

func (h *Hub) AddConnection(gameID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.games[gameID] == nil {
		h.games[gameID] = make(map[*websocket.Conn]bool)
	}
	h.games[gameID][conn] = true
	h.log.Debug("ws client connected", zap.Uint("game_id", gameID), zap.Int("total", len(h.games[gameID])))
}

func (h *Hub) RemoveConnection(gameID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.games[gameID]; ok {
		delete(conns, conn)
		conn.Close()
		if len(conns) == 0 {
			delete(h.games, gameID)
		}
		h.log.Debug("ws client disconnected", zap.Uint("game_id", gameID))
	}
}

// Broadcast sends the event to every client in the game's lobby. Clients
// that fail the write are dropped.
func (h *Hub) Broadcast(gameID uint, event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.games[gameID]
	if !ok {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		h.log.Error("ws marshal failed", zap.Error(err))
		return
	}

	for conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.log.Warn("ws write failed, dropping client", zap.Uint("game_id", gameID), zap.Error(err))
			conn.Close()
			delete(conns, conn)
		}
	}
}
