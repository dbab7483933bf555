package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type Hub struct {
	mu          sync.RWMutex
	rooms       map[string]map[*websocket.Conn]struct{}
	roomManager RoomManager
}

func NewHub(roomManager RoomManager) *Hub {
	return &Hub{
		rooms:       make(map[string]map[*websocket.Conn]struct{}),
		roomManager: roomManager,
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}

func (h *Hub) HandleWS(c *gin.Context) {
	roomCode := c.Query("room_code")
	if roomCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing room_code"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}

	h.mu.Lock()
	if _, ok := h.rooms[roomCode]; !ok {
		h.rooms[roomCode] = make(map[*websocket.Conn]struct{})
	}
	h.rooms[roomCode][conn] = struct{}{}
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.rooms[roomCode], conn)
		h.mu.Unlock()
		_ = conn.Close()
	}()

	for {
		var msg struct {
			Action string      `json:"action"`
			Data   interface{} `json:"data"`
		}
		if err := conn.ReadJSON(&msg); err != nil {
			log.Printf("Error reading WebSocket message: %v", err)
			break
		}

		switch msg.Action {
		case "move":
			h.handleMove(roomCode, conn, msg.Data)
		default:
			log.Printf("Unknown action: %s", msg.Action)
		}
	}
}

func (h *Hub) Broadcast(roomCode string, action string, data interface{}) {
	// Full lock: failed writers are pruned from the room map below.
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.rooms[roomCode]
	if !ok {
		return
	}

	message := map[string]interface{}{
		"action": action,
		"data":   data,
	}
	for conn := range clients {
		if err := conn.WriteJSON(message); err != nil {
			log.Printf("Failed to send message: %v", err)
			conn.Close()
			delete(clients, conn)
		}
	}
}

func (h *Hub) handleMove(roomCode string, conn *websocket.Conn, data interface{}) {
	var move struct {
		PlayerID string `json:"player_id"`
		Ply      string `json:"ply"`
	}

	rawData, err := json.Marshal(data)
	if err != nil {
		log.Printf("Failed to marshal move data: %v", err)
		return
	}
	if err := json.Unmarshal(rawData, &move); err != nil {
		log.Printf("Invalid move data: %v", err)
		return
	}

	room, ok := h.roomManager.Get(roomCode)
	if !ok {
		log.Printf("Room not found: %s", roomCode)
		return
	}

	// The manager broadcasts the accepted move to the whole room;
	// rejections go back to the submitting connection only. The hub mutex
	// serializes this write against Broadcast: a connection tolerates only
	// one writer at a time.
	if err := h.roomManager.ApplyPly(room, move.PlayerID, move.Ply); err != nil {
		h.mu.Lock()
		_ = conn.WriteJSON(map[string]interface{}{
			"action": "rejected",
			"data":   map[string]interface{}{"ply": move.Ply, "reason": err.Error()},
		})
		h.mu.Unlock()
	}
}
