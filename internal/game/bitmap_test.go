package game

import "testing"

func TestEdgeMasks(t *testing.T) {
	tests := []struct {
		size  int
		north Bitmap
		south Bitmap
		east  Bitmap
		west  Bitmap
		board Bitmap
	}{
		{3, 0b111_000_000, 0b000_000_111, 0b100_100_100, 0b001_001_001, 0b111_111_111},
		{5, 0x1F00000, 0x1F, 0x1084210, 0x108421, 0x1FFFFFF},
	}
	for _, tt := range tests {
		m := masks[tt.size]
		if m.North != tt.north || m.South != tt.south || m.East != tt.east || m.West != tt.west || m.Board != tt.board {
			t.Errorf("size %d masks = %+v", tt.size, m)
		}
	}
}

func TestMaskDisjointness(t *testing.T) {
	for size := MinBoardSize; size <= MaxBoardSize; size++ {
		m := masks[size]
		if m.North&m.South != 0 {
			t.Errorf("size %d: north and south overlap", size)
		}
		if m.East&m.West != 0 {
			t.Errorf("size %d: east and west overlap", size)
		}
		edges := m.North | m.South | m.East | m.West
		if edges&^m.Board != 0 {
			t.Errorf("size %d: edges escape the board mask", size)
		}
	}
}

func TestFloodGroups(t *testing.T) {
	size := 5
	// Two separate regions: an L along the west edge and a lone cell.
	region := cellBit(0, 0, size) | cellBit(0, 1, size) | cellBit(1, 1, size)
	lone := cellBit(3, 3, size)

	groups := floodGroups(region|lone, size, nil)
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	found := map[Bitmap]bool{}
	for _, g := range groups {
		found[g] = true
	}
	if !found[region] || !found[lone] {
		t.Fatalf("groups = %v, want %v and %v", groups, region, lone)
	}
}

func TestFloodGroupsDiagonalNotConnected(t *testing.T) {
	size := 4
	diag := cellBit(0, 0, size) | cellBit(1, 1, size)
	groups := floodGroups(diag, size, nil)
	if len(groups) != 2 {
		t.Fatalf("diagonal cells merged: %v", groups)
	}
}

func TestGrowStopsAtBoardEdges(t *testing.T) {
	size := 3
	// Growing from the east edge must not wrap onto the west edge of the
	// next row.
	seed := cellBit(2, 0, size)
	g := grow(seed, masks[size].Board, size)
	if g&cellBit(0, 1, size) != 0 {
		t.Fatal("growth wrapped across the east edge")
	}
	want := seed | cellBit(1, 0, size) | cellBit(2, 1, size)
	if g != want {
		t.Fatalf("grow = %b, want %b", g, want)
	}
}
