package room

import (
	"errors"
	"log"
	"math/rand"
	"time"

	"takhub/internal/config"
	"takhub/internal/game"
	"takhub/internal/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Store interface {
	GetRoom(code string) (*shared.Room, bool)
	SaveRoom(r *shared.Room)
}

type Manager struct {
	store Store
	cfg   config.Config
	hub   Broadcaster
}

func NewManager(s Store, cfg config.Config) *Manager {
	return &Manager{store: s, cfg: cfg}
}

func (m *Manager) SetHub(hub Broadcaster) {
	m.hub = hub
}

func (m *Manager) broadcast(code, action string, data interface{}) {
	if m.hub != nil {
		m.hub.Broadcast(code, action, data)
	}
}

// CreateRoom opens a new room with the creator seated as White. A zero
// boardSize falls back to the configured default.
func (m *Manager) CreateRoom(creatorName string, boardSize int) (*shared.Room, error) {
	if boardSize == 0 {
		boardSize = m.cfg.BoardSize
	}
	if boardSize < game.MinBoardSize || boardSize > game.MaxBoardSize {
		return nil, errors.New("board size must be between 3 and 8")
	}

	r := &shared.Room{
		ID:        uuid.NewString(),
		Code:      randCode(6),
		State:     game.New(boardSize),
		Status:    "lobby",
		CreatedAt: time.Now(),
		Players: []shared.Player{
			{ID: uuid.NewString(), Name: creatorName, Color: "white"},
		},
	}
	m.store.SaveRoom(r)
	return r, nil
}

// JoinRoom fills the black seat and starts the game.
func (m *Manager) JoinRoom(code, name string) (*shared.Room, shared.Player, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return nil, shared.Player{}, errors.New("room not found")
	}
	if len(r.Players) >= 2 {
		return nil, shared.Player{}, errors.New("room is full")
	}

	p := shared.Player{ID: uuid.NewString(), Name: name, Color: "black"}
	r.Players = append(r.Players, p)
	r.Status = "playing"
	m.store.SaveRoom(r)

	m.broadcast(r.Code, "game_start", gin.H{"room": r})
	return r, p, nil
}

func (m *Manager) Get(code string) (*shared.Room, bool) {
	return m.store.GetRoom(code)
}

// ApplyPly validates that playerID holds the seat to move, parses the PTN
// token and advances the room's state. The first two plies of a game place
// a stone of the opponent's color, so the parse color is flipped there;
// the seat to move is unaffected.
func (m *Manager) ApplyPly(r *shared.Room, playerID, ptn string) error {
	if r.Status != "playing" {
		return errors.New("game is not in progress")
	}

	seatColor, ok := r.SeatColor(playerID)
	if !ok {
		return errors.New("player not in this room")
	}
	mover := r.State.ToMove()
	if seatColor != mover {
		return errors.New("not your turn")
	}

	pieceColor := mover
	if r.State.PlyCount < 2 {
		pieceColor = mover.Flip()
	}

	ply, ok := game.ParsePly(ptn, pieceColor)
	if !ok {
		return errors.New("malformed ply: " + ptn)
	}

	next, err := r.State.ExecutePly(ply)
	if err != nil {
		return err
	}
	r.State = next
	r.Moves = append(r.Moves, ply.String())

	if w := next.CheckWin(); w.Over() {
		m.finish(r, w)
	} else {
		m.broadcast(r.Code, "move", gin.H{
			"playerId": playerID,
			"ply":      ply.String(),
			"state":    r.State,
			"nextTurn": next.ToMove().String(),
		})
	}

	m.store.SaveRoom(r)
	return nil
}

func (m *Manager) finish(r *shared.Room, w game.Win) {
	r.Status = "finished"
	r.Result = w.String()
	if w.Kind == game.DrawWin {
		r.Draw = true
	} else {
		for i := range r.Players {
			c, _ := r.SeatColor(r.Players[i].ID)
			if c == w.Color {
				r.WinnerID = &r.Players[i].ID
				break
			}
		}
	}
	log.Printf("room %s finished: %s", r.Code, r.Result)

	m.broadcast(r.Code, "game_over", gin.H{
		"result": r.Result,
		"winner": r.WinnerID,
		"state":  r.State,
	})
}

// StandingRow is a live score line: each seat's count of flatstone tops,
// the quantity a flat-count finish is decided on.
type StandingRow struct {
	PlayerID string `json:"playerId"`
	Color    string `json:"color"`
	FlatTops int    `json:"flatTops"`
	Reserve  int    `json:"reserve"`
}

func (m *Manager) Standings(r *shared.Room) []StandingRow {
	out := make([]StandingRow, 0, len(r.Players))
	for _, p := range r.Players {
		c, _ := r.SeatColor(p.ID)
		seat := r.State.White
		if c == game.Black {
			seat = r.State.Black
		}
		out = append(out, StandingRow{
			PlayerID: p.ID,
			Color:    p.Color,
			FlatTops: r.State.Analysis.FlatstoneCount(c),
			Reserve:  seat.Flatstones + seat.Capstones,
		})
	}
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].FlatTops > out[i].FlatTops {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out
}

const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randCode(n int) string {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[r.Intn(len(letters))]
	}
	return string(b)
}
