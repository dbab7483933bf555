package game

import "fmt"

// Seat is one player's remaining reserve. Counts only ever go down:
// flattening changes a piece's kind but never returns it to the reserve.
type Seat struct {
	Color      Color `json:"color"`
	Flatstones int   `json:"flatstones"`
	Capstones  int   `json:"capstones"`
}

// Stack is the ordered pile of pieces on one cell, bottom to top. An empty
// stack is an unoccupied cell.
type Stack []Piece

func (s Stack) Top() (Piece, bool) {
	if len(s) == 0 {
		return 0, false
	}
	return s[len(s)-1], true
}

// State is a complete game position: board, reserves, ply counter and the
// derived connectivity analysis. States are immutable values; ExecutePly
// clones before editing, so a state held by a caller is never changed out
// from under it. That makes branching exploration safe without undo logic.
type State struct {
	Size     int       `json:"size"`
	White    Seat      `json:"white"`
	Black    Seat      `json:"black"`
	Board    [][]Stack `json:"board"` // Board[x][y], x = file, y = rank
	PlyCount int       `json:"plyCount"`
	Analysis Analysis  `json:"analysis"`
}

// reserves maps board size to starting flatstone and capstone counts.
var reserves = map[int][2]int{
	3: {10, 0},
	4: {15, 0},
	5: {21, 1},
	6: {30, 1},
	7: {40, 1},
	8: {50, 2},
}

// New builds the empty starting position for the given board size. Board
// size is a startup parameter, not per-move input, so an unsupported size
// is a configuration error and panics.
func New(size int) *State {
	r, ok := reserves[size]
	if !ok {
		panic(fmt.Sprintf("illegal board size %d", size))
	}
	board := make([][]Stack, size)
	for x := range board {
		board[x] = make([]Stack, size)
	}
	return &State{
		Size:     size,
		White:    Seat{Color: White, Flatstones: r[0], Capstones: r[1]},
		Black:    Seat{Color: Black, Flatstones: r[0], Capstones: r[1]},
		Board:    board,
		Analysis: NewAnalysis(size),
	}
}

// ToMove returns the color whose turn the position reflects. White moves
// on odd plies, so White is to move whenever the ply count is even.
func (s *State) ToMove() Color {
	if s.PlyCount%2 == 0 {
		return White
	}
	return Black
}

func (s *State) seat(c Color) *Seat {
	if c == White {
		return &s.White
	}
	return &s.Black
}

func (s *State) clone() *State {
	next := *s
	next.Board = make([][]Stack, s.Size)
	for x := range next.Board {
		next.Board[x] = make([]Stack, s.Size)
		for y, st := range s.Board[x] {
			if len(st) > 0 {
				next.Board[x][y] = append(Stack(nil), st...)
			}
		}
	}
	next.Analysis = s.Analysis.clone()
	return &next
}

func (s *State) inBounds(x, y int) bool {
	return x >= 0 && x < s.Size && y >= 0 && y < s.Size
}

// ExecutePly validates ply against the position and, if legal, returns the
// successor state. The receiver is never modified; on rejection no state is
// produced at all. Slides never touch the reserves; only placement does.
func (s *State) ExecutePly(ply Ply) (*State, error) {
	if !s.inBounds(ply.X, ply.Y) {
		return nil, ErrOutOfBounds
	}

	next := s.clone()
	next.PlyCount++

	switch ply.Type {
	case PlacePly:
		if err := next.place(ply); err != nil {
			return nil, err
		}
	case SlidePly:
		if err := next.slide(ply); err != nil {
			return nil, err
		}
	default:
		return nil, ErrIllegalSlide
	}

	return next, nil
}

func (s *State) place(ply Ply) error {
	if len(s.Board[ply.X][ply.Y]) != 0 {
		return ErrIllegalPlacement
	}

	seat := s.seat(ply.Piece.Color())
	var count *int
	if ply.Piece.Kind() == Capstone {
		count = &seat.Capstones
	} else {
		count = &seat.Flatstones
	}
	if *count == 0 {
		return ErrInsufficientPieces
	}
	*count--

	s.Board[ply.X][ply.Y] = append(s.Board[ply.X][ply.Y], ply.Piece)

	if ply.Piece.Kind() == Flat {
		s.Analysis.AddFlatstone(ply.Piece.Color(), ply.X, ply.Y)
	} else {
		s.Analysis.AddBlockingStone(ply.Piece, ply.X, ply.Y)
	}

	// A standing stone can never complete a road, so only flat and
	// capstone placement pays for group recalculation.
	if ply.Piece.IsRoad() {
		s.Analysis.CalculateRoadGroups()
	}
	return nil
}

func (s *State) slide(ply Ply) error {
	grab := 0
	for _, d := range ply.Drops {
		grab += d
	}

	src := s.Board[ply.X][ply.Y]
	if grab > s.Size || len(src) == 0 || grab > len(src) {
		return ErrIllegalSlide
	}

	// Pick up the carried pieces, top first, fixing the analysis per pop
	// and restoring eligibility of whatever each pop exposes.
	carried := make(Stack, 0, grab)
	for i := 0; i < grab; i++ {
		piece := src[len(src)-1]
		src = src[:len(src)-1]

		if piece.Kind() == Flat {
			s.Analysis.RemoveFlatstone(piece.Color(), ply.X, ply.Y)
		} else {
			s.Analysis.RemoveBlockingStone(piece, ply.X, ply.Y)
		}
		if top, ok := src.Top(); ok {
			s.Analysis.RevealFlatstone(top.Color(), ply.X, ply.Y)
		}

		carried = append(carried, piece)
	}
	s.Board[ply.X][ply.Y] = src

	dx, dy := ply.Dir.Offset()
	nx, ny := ply.X, ply.Y
	for _, drop := range ply.Drops {
		nx += dx
		ny += dy
		if !s.inBounds(nx, ny) {
			return ErrOutOfBounds
		}

		if top, ok := s.Board[nx][ny].Top(); ok {
			switch top.Kind() {
			case Capstone:
				return ErrIllegalSlide
			case Standing:
				// Only a lone carried capstone may enter, flattening
				// the standing stone in place.
				if len(carried) != 1 || carried[0].Kind() != Capstone {
					return ErrIllegalSlide
				}
				flat := top.Flatten()
				s.Board[nx][ny][len(s.Board[nx][ny])-1] = flat
				s.Analysis.RemoveBlockingStone(top, nx, ny)
				s.Analysis.AddFlatstone(flat.Color(), nx, ny)
			}
		}

		for i := 0; i < drop; i++ {
			if top, ok := s.Board[nx][ny].Top(); ok {
				s.Analysis.CoverFlatstone(top.Color(), nx, ny)
			}

			piece := carried[len(carried)-1]
			carried = carried[:len(carried)-1]

			if piece.Kind() == Flat {
				s.Analysis.AddFlatstone(piece.Color(), nx, ny)
			} else {
				s.Analysis.AddBlockingStone(piece, nx, ny)
			}
			s.Board[nx][ny] = append(s.Board[nx][ny], piece)
		}
	}

	// A slide can break and build roads at several cells at once, so the
	// partition is recomputed once for the whole move.
	s.Analysis.CalculateRoadGroups()
	return nil
}
