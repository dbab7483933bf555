package shared

import (
	"time"

	"takhub/internal/game"
)

// Player is one seat in a room.
type Player struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"` // "white" or "black"
}

// Room is a live game: the engine state plus the seat assignments and the
// move history in PTN. Shared between the room manager and the websocket
// hub so neither has to import the other.
type Room struct {
	ID        string      `json:"id"`
	Code      string      `json:"code"`
	State     *game.State `json:"state"`
	Players   []Player    `json:"players"`
	Moves     []string    `json:"moves"`
	Status    string      `json:"status"` // "lobby", "playing" or "finished"
	WinnerID  *string     `json:"winnerId,omitempty"`
	Result    string      `json:"result,omitempty"`
	Draw      bool        `json:"draw"`
	CreatedAt time.Time   `json:"createdAt"`
}

// SeatColor returns the game color for a seated player ID.
func (r *Room) SeatColor(playerID string) (game.Color, bool) {
	for _, p := range r.Players {
		if p.ID == playerID {
			if p.Color == "white" {
				return game.White, true
			}
			return game.Black, true
		}
	}
	return 0, false
}
