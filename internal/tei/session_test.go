package tei

import (
	"strings"
	"testing"

	"takhub/internal/config"
	"takhub/internal/game"
)

func runSession(t *testing.T, input string) (*Session, string) {
	t.Helper()
	var out strings.Builder
	s := NewSession(config.Config{BoardSize: 5, EngineName: "takhub", EngineAuthor: "tests"}, FirstPlacement{}, &out)
	s.Run(ReadCommands(strings.NewReader(input)))
	return s, out.String()
}

func TestIdentify(t *testing.T) {
	_, out := runSession(t, "tei\nisready\nquit\n")
	for _, want := range []string{"id name takhub", "id author tests", "teiok", "readyok"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestNewGameSetsBoardSize(t *testing.T) {
	s, _ := runSession(t, "teinewgame 6\nquit\n")
	if s.state == nil || s.state.Size != 6 {
		t.Fatalf("state = %+v", s.state)
	}

	// Unsupported sizes leave the session untouched.
	s, _ = runSession(t, "teinewgame 6\nteinewgame 11\nquit\n")
	if s.size != 6 {
		t.Fatalf("size = %d after bad teinewgame", s.size)
	}
}

func TestPositionReplaysMovesWithOpeningSwap(t *testing.T) {
	s, _ := runSession(t, "teinewgame 5\nposition startpos moves a1 e5 c3\nquit\n")
	if s.state == nil || s.state.PlyCount != 3 {
		t.Fatalf("state after position: %+v", s.state)
	}
	// Opening swap: a1 holds black, e5 holds white; c3 is white's own.
	if top, _ := s.state.Board[0][0].Top(); top.Color() != game.Black {
		t.Fatal("a1 should hold a black stone")
	}
	if top, _ := s.state.Board[4][4].Top(); top.Color() != game.White {
		t.Fatal("e5 should hold a white stone")
	}
	if top, _ := s.state.Board[2][2].Top(); top.Color() != game.White {
		t.Fatal("c3 should hold a white stone")
	}
}

func TestGoAnswersBestmove(t *testing.T) {
	_, out := runSession(t, "teinewgame 5\nposition moves a1 e5\ngo wtime 5000 btime 5000\nquit\n")
	line := ""
	for _, l := range strings.Split(out, "\n") {
		if strings.HasPrefix(l, "bestmove ") {
			line = l
		}
	}
	if line == "" {
		t.Fatalf("no bestmove in output:\n%s", out)
	}
	tok := strings.TrimPrefix(line, "bestmove ")
	if _, ok := game.ParsePly(tok, game.White); !ok {
		t.Fatalf("bestmove %q is not valid PTN", tok)
	}
}

func TestTimeLeftParsing(t *testing.T) {
	tl := parseTimeLeft("go wtime 60000 btime 30000 winc 2000 binc 1000")
	if tl.wtime != 60000 || tl.btime != 30000 || tl.winc != 2000 || tl.binc != 1000 {
		t.Fatalf("parsed %+v", tl)
	}
	if tl.budget(10, game.White) <= tl.budget(10, game.Black) {
		t.Fatal("white's larger bank should yield a larger budget")
	}
}

func TestPickerFindsLegalMove(t *testing.T) {
	s := game.New(5)
	ply, ok := FirstPlacement{}.Pick(t.Context(), s)
	if !ok {
		t.Fatal("no move on an empty board")
	}
	if _, err := s.ExecutePly(ply); err != nil {
		t.Fatalf("picked ply is illegal: %v", err)
	}
}
