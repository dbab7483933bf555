package game

import (
	"fmt"
	"strings"
)

// String renders the position for logs and terminals: reserve counts for
// both seats, then the board with each cell's stack listed top first, rank
// numbers down the left and file letters underneath.
func (s *State) String() string {
	widths := make([]int, s.Size)
	for x := 0; x < s.Size; x++ {
		widths[x] = 6
		for y := 0; y < s.Size; y++ {
			st := s.Board[x][y]
			w := 3
			for _, p := range st {
				if p.Kind() == Flat {
					w++
				} else {
					w += 2
				}
			}
			if len(st) > 0 {
				w += len(st) - 1
			}
			if w > widths[x] {
				widths[x] = w
			}
		}
	}

	var b strings.Builder

	fmt.Fprintf(&b, "\n Player 1: %2d flatstone%s", s.White.Flatstones, plural(s.White.Flatstones))
	if s.White.Capstones > 0 {
		fmt.Fprintf(&b, ", %d capstone%s", s.White.Capstones, plural(s.White.Capstones))
	}
	fmt.Fprintf(&b, "\n Player 2: %2d flatstone%s", s.Black.Flatstones, plural(s.Black.Flatstones))
	if s.Black.Capstones > 0 {
		fmt.Fprintf(&b, ", %d capstone%s", s.Black.Capstones, plural(s.Black.Capstones))
	}
	b.WriteString("\n\n")

	for y := s.Size - 1; y >= 0; y-- {
		fmt.Fprintf(&b, " %d   ", y+1)
		for x := 0; x < s.Size; x++ {
			var c strings.Builder
			c.WriteByte('[')
			st := s.Board[x][y]
			for i := len(st) - 1; i >= 0; i-- {
				if i != len(st)-1 {
					c.WriteByte(' ')
				}
				p := st[i]
				if p.Color() == White {
					c.WriteByte('W')
				} else {
					c.WriteByte('B')
				}
				switch p.Kind() {
				case Standing:
					c.WriteByte('S')
				case Capstone:
					c.WriteByte('C')
				}
			}
			c.WriteByte(']')
			fmt.Fprintf(&b, "%-*s", widths[x], c.String())
		}
		b.WriteByte('\n')
	}

	b.WriteString("\n     ")
	for x, w := range widths {
		fmt.Fprintf(&b, "%-*c", w, 'a'+x)
	}
	b.WriteByte('\n')

	return b.String()
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
