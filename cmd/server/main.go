package main

import (
	"log"

	httpapi "takhub/internal/api/http"
	"takhub/internal/api/ws"
	"takhub/internal/config"
	"takhub/internal/room"
	"takhub/internal/store"
)

// @title Takhub API
// @version 1.0
// @description REST + websocket backend for two-player Tak rooms
// @BasePath /
func main() {
	cfg := config.Load()
	mem := store.NewMemoryStore()
	rm := room.NewManager(mem, cfg)
	hub := ws.NewHub(rm)
	rm.SetHub(hub)

	r := httpapi.NewRouter(rm, hub, cfg)

	log.Printf("listening on %s", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
