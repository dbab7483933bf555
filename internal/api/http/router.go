package http

import (
	"takhub/internal/api/ws"
	"takhub/internal/config"
	"takhub/internal/room"

	"github.com/gin-gonic/gin"
)

func NewRouter(rm *room.Manager, hub *ws.Hub, cfg config.Config) *gin.Engine {
	r := gin.Default()

	// WebSocket for live room updates
	r.GET("/ws", hub.HandleWS)

	// --- ROOM ENDPOINTS ---
	r.POST("/create-room", CreateRoomHandler(rm))
	r.POST("/join-room", JoinRoomHandler(rm))
	r.GET("/room", GetRoomHandler(rm))

	// --- GAME ENDPOINTS ---
	r.POST("/move", MoveHandler(rm))
	r.GET("/standings", StandingsHandler(rm))

	// --- CONFIG ENDPOINTS ---
	r.GET("/config", GetConfigHandler(cfg))

	return r
}
