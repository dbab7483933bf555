package ws

import "takhub/internal/shared"

type RoomManager interface {
	Get(roomCode string) (*shared.Room, bool)
	ApplyPly(room *shared.Room, playerID, ptn string) error
}
