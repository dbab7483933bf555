package game

import (
	"reflect"
	"testing"
)

func TestParsePlyPlacements(t *testing.T) {
	tests := []struct {
		ptn  string
		c    Color
		want Ply
	}{
		{"a1", White, Place(0, 0, MakePiece(White, Flat))},
		{"Fc3", White, Place(2, 2, MakePiece(White, Flat))},
		{"Se5", Black, Place(4, 4, MakePiece(Black, Standing))},
		{"Ch8", White, Place(7, 7, MakePiece(White, Capstone))},
	}
	for _, tt := range tests {
		t.Run(tt.ptn, func(t *testing.T) {
			got, ok := ParsePly(tt.ptn, tt.c)
			if !ok {
				t.Fatal("parse failed")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParsePlySlides(t *testing.T) {
	tests := []struct {
		ptn  string
		want Ply
	}{
		{"a1+", Slide(0, 0, North, 1)},
		{"b2>", Slide(1, 1, East, 1)},
		{"c3-", Slide(2, 2, South, 1)},
		{"d4<", Slide(3, 3, West, 1)},
		{"3a1+", Slide(0, 0, North, 3)},
		{"3a1+111", Slide(0, 0, North, 1, 1, 1)},
		{"5c3>23", Slide(2, 2, East, 2, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.ptn, func(t *testing.T) {
			got, ok := ParsePly(tt.ptn, White)
			if !ok {
				t.Fatal("parse failed")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParsePlyRejections(t *testing.T) {
	tests := []string{
		"",       // empty
		"S",      // no coordinate
		"3a1",    // grab digit on a placement
		"Sa1+",   // piece letter on a slide
		"Ca1>1",  // piece letter with drops
		"a1+12",  // drops without a grab digit
		"4a1+12", // grab does not match drop sum
		"A1",     // uppercase file
		"a0",     // rank digit below 1
		"aa",     // rank not a digit
		"a1*",    // unknown direction symbol
		"a1+x",   // garbage after direction
		"z",      // coordinate cut short
	}
	for _, ptn := range tests {
		t.Run(ptn, func(t *testing.T) {
			if ply, ok := ParsePly(ptn, White); ok {
				t.Fatalf("accepted %q as %+v", ptn, ply)
			}
		})
	}
}

func TestPlyNotationRoundTrip(t *testing.T) {
	plies := []Ply{
		Place(0, 0, MakePiece(White, Flat)),
		Place(4, 4, MakePiece(Black, Standing)),
		Place(2, 3, MakePiece(White, Capstone)),
		Slide(0, 0, North, 1),
		Slide(3, 1, West, 4),
		Slide(2, 2, East, 1, 2, 1),
		Slide(1, 4, South, 2, 2),
	}
	for _, p := range plies {
		c := White
		if p.Type == PlacePly {
			c = p.Piece.Color()
		}
		t.Run(p.String(), func(t *testing.T) {
			got, ok := ParsePly(p.String(), c)
			if !ok {
				t.Fatalf("canonical notation %q did not parse", p.String())
			}
			if !reflect.DeepEqual(got, p) {
				t.Fatalf("round trip: got %+v, want %+v", got, p)
			}
		})
	}
}
