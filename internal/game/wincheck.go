package game

// WinKind classifies a terminal check result.
type WinKind byte

const (
	NoWin WinKind = iota
	RoadWin
	FlatWin
	DrawWin
)

// Win is the outcome of a terminal check. Color is meaningful for road and
// flat wins only.
type Win struct {
	Kind  WinKind `json:"kind"`
	Color Color   `json:"color"`
}

func (w Win) Over() bool {
	return w.Kind != NoWin
}

func (w Win) String() string {
	switch w.Kind {
	case RoadWin:
		return w.Color.String() + " wins by road"
	case FlatWin:
		return w.Color.String() + " wins by flats"
	case DrawWin:
		return "draw"
	default:
		return "in progress"
	}
}

// CheckWin evaluates the position for a finished game. Pure: it reads the
// analysis groups and reserves, never mutates. If both colors completed a
// road on the same ply, the win goes to the mover, inferred from ply
// parity (White moves the odd plies).
func (s *State) CheckWin() Win {
	whiteRoad := s.Analysis.HasRoad(White)
	blackRoad := s.Analysis.HasRoad(Black)

	switch {
	case whiteRoad && blackRoad:
		if s.PlyCount%2 == 1 {
			return Win{Kind: RoadWin, Color: White}
		}
		return Win{Kind: RoadWin, Color: Black}
	case whiteRoad:
		return Win{Kind: RoadWin, Color: White}
	case blackRoad:
		return Win{Kind: RoadWin, Color: Black}
	}

	exhausted := s.White.Flatstones+s.White.Capstones == 0 ||
		s.Black.Flatstones+s.Black.Capstones == 0
	full := s.Analysis.Occupied() == masks[s.Size].Board

	if exhausted || full {
		wf := s.Analysis.FlatstoneCount(White)
		bf := s.Analysis.FlatstoneCount(Black)
		switch {
		case wf > bf:
			return Win{Kind: FlatWin, Color: White}
		case bf > wf:
			return Win{Kind: FlatWin, Color: Black}
		default:
			return Win{Kind: DrawWin}
		}
	}

	return Win{}
}
