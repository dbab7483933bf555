package game

// Color identifies a seat. White moves on odd plies (1-based).
type Color byte

const (
	White Color = 1 << 7
	Black Color = 0
)

func (c Color) Flip() Color {
	return c ^ White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Kind is a piece variant. Only flats and capstones can be part of a road;
// a standing stone blocks roads until a lone capstone flattens it.
type Kind byte

const (
	Flat Kind = 1 + iota
	Standing
	Capstone
)

// Piece packs color and kind into one byte: the high bit is the color,
// the low bits the kind.
type Piece byte

const (
	colorMask byte = 1 << 7
	kindMask  byte = 1<<2 - 1
)

func MakePiece(c Color, k Kind) Piece {
	return Piece(byte(c) | byte(k))
}

func (p Piece) Color() Color {
	return Color(byte(p) & colorMask)
}

func (p Piece) Kind() Kind {
	return Kind(byte(p) & kindMask)
}

// IsRoad reports whether the piece counts toward a road when it tops a stack.
func (p Piece) IsRoad() bool {
	k := p.Kind()
	return k == Flat || k == Capstone
}

// Flatten converts a standing stone into a flatstone of the same color.
// All other pieces are returned unchanged.
func (p Piece) Flatten() Piece {
	if p.Kind() == Standing {
		return MakePiece(p.Color(), Flat)
	}
	return p
}
