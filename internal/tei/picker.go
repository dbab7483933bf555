package tei

import (
	"context"

	"takhub/internal/game"
)

// Picker chooses the engine's reply for a go command. Search strategies
// plug in here; the session only needs one move back before the context
// expires.
type Picker interface {
	Pick(ctx context.Context, s *game.State) (game.Ply, bool)
}

// FirstPlacement is the built-in fallback picker: it plays the first legal
// ply it finds, preferring a flatstone on the first empty cell and
// otherwise trying single-piece slides, validating candidates by trial
// execution.
type FirstPlacement struct{}

func (FirstPlacement) Pick(ctx context.Context, s *game.State) (game.Ply, bool) {
	color := s.ToMove()
	if s.PlyCount < 2 {
		color = color.Flip()
	}

	kind := game.Flat
	if seat := seatFor(s, color); seat.Flatstones == 0 {
		if seat.Capstones == 0 {
			kind = 0
		} else {
			kind = game.Capstone
		}
	}

	if kind != 0 {
		for y := 0; y < s.Size; y++ {
			for x := 0; x < s.Size; x++ {
				if ctx.Err() != nil {
					return game.Ply{}, false
				}
				ply := game.Place(x, y, game.MakePiece(color, kind))
				if _, err := s.ExecutePly(ply); err == nil {
					return ply, true
				}
			}
		}
	}

	for y := 0; y < s.Size; y++ {
		for x := 0; x < s.Size; x++ {
			top, ok := s.Board[x][y].Top()
			if !ok || top.Color() != color {
				continue
			}
			for _, d := range []game.Direction{game.North, game.East, game.South, game.West} {
				if ctx.Err() != nil {
					return game.Ply{}, false
				}
				ply := game.Slide(x, y, d, 1)
				if _, err := s.ExecutePly(ply); err == nil {
					return ply, true
				}
			}
		}
	}

	return game.Ply{}, false
}

func seatFor(s *game.State, c game.Color) game.Seat {
	if c == game.White {
		return s.White
	}
	return s.Black
}
