package game

// colorAnalysis is one color's half of the incremental connectivity data.
type colorAnalysis struct {
	// Pieces marks every cell whose top-of-stack piece belongs to this
	// color, whatever its kind. Used for the board-full check.
	Pieces Bitmap `json:"pieces"`
	// Road marks the road-eligible subset of Pieces: flatstone and
	// capstone tops.
	Road Bitmap `json:"road"`
	// Flatstones counts flatstone tops, for the flat-count win.
	Flatstones int `json:"flatstones"`
	// Groups partitions Road into maximal connected components. Only
	// valid after CalculateRoadGroups; the mutating ops leave it stale.
	Groups []Bitmap `json:"groups"`
}

// Analysis tracks, per color, which cells can currently be part of a road,
// updated piece-by-piece as the board mutates. Road connectivity itself is
// recomputed by CalculateRoadGroups once per road-relevant ply rather than
// per cell touched.
type Analysis struct {
	size  int
	White colorAnalysis `json:"white"`
	Black colorAnalysis `json:"black"`
}

func NewAnalysis(size int) Analysis {
	return Analysis{size: size}
}

func (a *Analysis) half(c Color) *colorAnalysis {
	if c == White {
		return &a.White
	}
	return &a.Black
}

// AddFlatstone marks (x, y) as a road-eligible flatstone top for color.
func (a *Analysis) AddFlatstone(c Color, x, y int) {
	h := a.half(c)
	bit := cellBit(x, y, a.size)
	h.Pieces |= bit
	h.Road |= bit
	h.Flatstones++
}

// AddBlockingStone marks (x, y) as topped by a standing stone or capstone.
// Capstones stay road-eligible; standing stones do not.
func (a *Analysis) AddBlockingStone(p Piece, x, y int) {
	h := a.half(p.Color())
	bit := cellBit(x, y, a.size)
	h.Pieces |= bit
	if p.Kind() == Capstone {
		h.Road |= bit
	}
}

// RemoveFlatstone undoes AddFlatstone when the flatstone is picked up.
func (a *Analysis) RemoveFlatstone(c Color, x, y int) {
	h := a.half(c)
	bit := cellBit(x, y, a.size)
	h.Pieces &^= bit
	h.Road &^= bit
	h.Flatstones--
}

// RemoveBlockingStone undoes AddBlockingStone.
func (a *Analysis) RemoveBlockingStone(p Piece, x, y int) {
	h := a.half(p.Color())
	bit := cellBit(x, y, a.size)
	h.Pieces &^= bit
	if p.Kind() == Capstone {
		h.Road &^= bit
	}
}

// RevealFlatstone restores the eligibility of a flatstone exposed when the
// piece above it is picked up. Buried pieces are always flatstones: nothing
// may be stacked on a standing stone or capstone, and flattening converts
// in place.
func (a *Analysis) RevealFlatstone(c Color, x, y int) {
	a.AddFlatstone(c, x, y)
}

// CoverFlatstone retires the flatstone top at (x, y) when a piece is
// dropped onto it.
func (a *Analysis) CoverFlatstone(c Color, x, y int) {
	a.RemoveFlatstone(c, x, y)
}

// CalculateRoadGroups recomputes both colors' road-group partitions from
// the current eligibility bitmaps. O(board cells); called once per ply that
// can affect connectivity.
func (a *Analysis) CalculateRoadGroups() {
	a.White.Groups = floodGroups(a.White.Road, a.size, a.White.Groups[:0])
	a.Black.Groups = floodGroups(a.Black.Road, a.size, a.Black.Groups[:0])
}

// HasRoad reports whether any of color's groups spans the board, touching
// both the north and south edges or both the east and west edges.
func (a *Analysis) HasRoad(c Color) bool {
	m := masks[a.size]
	for _, g := range a.half(c).Groups {
		if (g&m.North != 0 && g&m.South != 0) ||
			(g&m.East != 0 && g&m.West != 0) {
			return true
		}
	}
	return false
}

// Occupied is the set of all occupied cells, both colors combined.
func (a *Analysis) Occupied() Bitmap {
	return a.White.Pieces | a.Black.Pieces
}

// FlatstoneCount returns color's current number of flatstone tops.
func (a *Analysis) FlatstoneCount(c Color) int {
	return a.half(c).Flatstones
}

func (a *Analysis) clone() Analysis {
	next := *a
	next.White.Groups = append([]Bitmap(nil), a.White.Groups...)
	next.Black.Groups = append([]Bitmap(nil), a.Black.Groups...)
	return next
}
