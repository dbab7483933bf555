package http

// CreateRoomRequest represents the payload for /create-room.
type CreateRoomRequest struct {
	PlayerName string `json:"player_name"`
	BoardSize  int    `json:"board_size"`
}

// JoinRoomRequest represents the payload for joining an existing room.
type JoinRoomRequest struct {
	RoomCode   string `json:"room_code"`
	PlayerName string `json:"player_name"`
}

// MoveRequest represents a player move in PTN, e.g. "c3", "Sd4", "3a1+12".
type MoveRequest struct {
	RoomCode string `json:"room_code"`
	PlayerID string `json:"player_id"`
	Ply      string `json:"ply"`
}
