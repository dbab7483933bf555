package game

import "strconv"

// Direction is one of the four compass directions a slide can travel.
type Direction byte

const (
	North Direction = 1 + iota
	East
	South
	West
)

// Offset returns the per-step coordinate delta for the direction.
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case North:
		return 0, 1
	case East:
		return 1, 0
	case South:
		return 0, -1
	default:
		return -1, 0
	}
}

func (d Direction) rune() byte {
	switch d {
	case North:
		return '+'
	case East:
		return '>'
	case South:
		return '-'
	default:
		return '<'
	}
}

// PlyType tags a Ply as a placement or a slide.
type PlyType byte

const (
	PlacePly PlyType = 1 + iota
	SlidePly
)

// Ply is one move: either placing a new piece on an empty cell, or picking
// up the top of a stack and sliding it, dropping Drops[i] pieces on each
// successive cell in Dir. Plies are transient command values; they are
// built by parsing or by an external move chooser and consumed once by
// State.ExecutePly.
type Ply struct {
	Type  PlyType
	X, Y  int
	Piece Piece     // placements only
	Dir   Direction // slides only
	Drops []int     // slides only
}

func Place(x, y int, p Piece) Ply {
	return Ply{Type: PlacePly, X: x, Y: y, Piece: p}
}

func Slide(x, y int, d Direction, drops ...int) Ply {
	return Ply{Type: SlidePly, X: x, Y: y, Dir: d, Drops: drops}
}

// ParsePly translates one PTN token into a Ply for the given mover. The
// grammar: optional piece letter (S, C, or F), optional grab digit,
// mandatory coordinate (file letter then rank digit), optional direction
// symbol (+ > - <), optional per-cell drop digits. A bare coordinate is a
// flatstone placement. Returns false for any token the grammar rejects.
func ParsePly(ptn string, color Color) (Ply, bool) {
	i := 0
	next := func() (byte, bool) {
		if i >= len(ptn) {
			return 0, false
		}
		c := ptn[i]
		i++
		return c, true
	}

	c, ok := next()
	if !ok {
		return Ply{}, false
	}

	var piece Piece
	switch c {
	case 'S':
		piece = MakePiece(color, Standing)
		c, ok = next()
	case 'C':
		piece = MakePiece(color, Capstone)
		c, ok = next()
	case 'F':
		piece = MakePiece(color, Flat)
		c, ok = next()
	}
	if !ok {
		return Ply{}, false
	}

	grab := -1
	if c >= '0' && c <= '9' {
		grab = int(c - '0')
		c, ok = next()
		if !ok {
			return Ply{}, false
		}
	}

	if c < 'a' || c > 'z' {
		return Ply{}, false
	}
	x := int(c - 'a')

	c, ok = next()
	if !ok || c < '1' || c > '9' {
		return Ply{}, false
	}
	y := int(c - '1')

	var dir Direction
	c, ok = next()
	if ok {
		switch c {
		case '+':
			dir = North
		case '>':
			dir = East
		case '-':
			dir = South
		case '<':
			dir = West
		default:
			return Ply{}, false
		}
	} else if piece == 0 {
		piece = MakePiece(color, Flat)
	}

	var drops []int
	for {
		c, ok = next()
		if !ok {
			break
		}
		if c < '0' || c > '9' {
			return Ply{}, false
		}
		drops = append(drops, int(c-'0'))
	}

	if piece != 0 {
		// Placement: no grab, no direction, no drops allowed.
		if grab >= 0 || dir != 0 || len(drops) > 0 {
			return Ply{}, false
		}
		return Place(x, y, piece), true
	}

	if dir == 0 {
		return Ply{}, false
	}
	if len(drops) == 0 {
		if grab >= 0 {
			drops = []int{grab}
		} else {
			drops = []int{1}
		}
	} else {
		if grab < 0 {
			return Ply{}, false
		}
		sum := 0
		for _, d := range drops {
			sum += d
		}
		if grab != sum {
			return Ply{}, false
		}
	}
	return Slide(x, y, dir, drops...), true
}

// String renders the ply in canonical PTN, chosen so that parsing the
// result with the same mover color yields an equivalent ply.
func (p Ply) String() string {
	coord := string([]byte{byte('a' + p.X), byte('1' + p.Y)})

	if p.Type == PlacePly {
		switch p.Piece.Kind() {
		case Standing:
			return "S" + coord
		case Capstone:
			return "C" + coord
		default:
			return coord
		}
	}

	grab := 0
	for _, d := range p.Drops {
		grab += d
	}
	if len(p.Drops) == 1 {
		if grab == 1 {
			return coord + string(p.Dir.rune())
		}
		return strconv.Itoa(grab) + coord + string(p.Dir.rune())
	}
	out := strconv.Itoa(grab) + coord + string(p.Dir.rune())
	for _, d := range p.Drops {
		out += strconv.Itoa(d)
	}
	return out
}
