package game

// Bitmap is a set of board cells, one bit per cell, row-major: the bit for
// (x, y) is 1 << (y*size + x). A uint64 covers every legal board size up
// to 8x8.
type Bitmap uint64

// edgeMasks holds the per-size precomputed cell sets the road check needs.
// Filled once at init for sizes 3..8 and read-only afterwards.
type edgeMasks struct {
	North, South, East, West Bitmap
	Board                    Bitmap
}

var masks [MaxBoardSize + 1]edgeMasks

const (
	MinBoardSize = 3
	MaxBoardSize = 8
)

func init() {
	for size := MinBoardSize; size <= MaxBoardSize; size++ {
		var m edgeMasks
		for y := 0; y < size; y++ {
			m.West |= 1 << (y * size)
		}
		m.East = m.West << (size - 1)
		m.South = 1<<size - 1
		m.North = m.South << (size * (size - 1))
		m.Board = 1<<(size*size) - 1
		masks[size] = m
	}
}

func cellBit(x, y, size int) Bitmap {
	return 1 << (y*size + x)
}

// grow expands seed by one step of edge adjacency, clamped to within.
func grow(seed, within Bitmap, size int) Bitmap {
	m := masks[size]
	next := seed
	next |= (seed << 1) &^ m.West
	next |= (seed >> 1) &^ m.East
	next |= seed << size
	next |= seed >> size
	return next & within
}

// flood expands seed to the full connected region of within containing it.
func flood(seed, within Bitmap, size int) Bitmap {
	for {
		next := grow(seed, within, size)
		if next == seed {
			return next
		}
		seed = next
	}
}

// floodGroups partitions bits into its maximal edge-adjacency-connected
// components, appending each onto out.
func floodGroups(bits Bitmap, size int, out []Bitmap) []Bitmap {
	var seen Bitmap
	for bits != 0 {
		rest := bits & (bits - 1)
		bit := bits &^ rest
		if seen&bit == 0 {
			g := flood(bit, bits, size)
			out = append(out, g)
			seen |= g
		}
		bits = rest
	}
	return out
}
