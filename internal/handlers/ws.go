package handlers

import (
	"net/http"
	"strconv"

	"github.com/IoneseiGabriel/DavaQuiz/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WSHandler struct {
	hub *ws.Hub
}

func NewWSHandler(hub *ws.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

// HandleGameLobby subscribes the client to a game's lobby events
// (player_joined, game_published) until the connection drops.
func (h *WSHandler) HandleGameLobby(c *gin.Context) {
	gameID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid game id"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	h.hub.AddConnection(uint(gameID), conn)
	defer h.hub.RemoveConnection(uint(gameID), conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
