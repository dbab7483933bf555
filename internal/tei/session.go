package tei

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"takhub/internal/config"
	"takhub/internal/game"
)

// Session runs the line-oriented engine-control protocol over one game:
// identification, game setup, position replay from PTN, and move requests
// answered by the configured Picker.
type Session struct {
	cfg    config.Config
	picker Picker
	out    io.Writer

	size  int
	state *game.State
}

func NewSession(cfg config.Config, picker Picker, out io.Writer) *Session {
	return &Session{
		cfg:    cfg,
		picker: picker,
		out:    out,
		size:   cfg.BoardSize,
	}
}

// Run consumes commands until quit or channel close.
func (s *Session) Run(cmds <-chan Command) {
	for cmd := range cmds {
		switch cmd.Kind {
		case CmdTei:
			s.identify()
		case CmdIsReady:
			fmt.Fprintln(s.out, "readyok")
		case CmdNewGame:
			s.newGame(cmd.Size)
		case CmdPosition:
			s.setPosition(cmd.Line)
		case CmdGo:
			s.bestMove(cmd.Line)
		case CmdStop:
			// No long-running search to interrupt.
		case CmdQuit:
			return
		default:
			fmt.Fprintf(s.out, "Unknown command: %s\n", cmd.Line)
		}
	}
}

func (s *Session) identify() {
	fmt.Fprintf(s.out, "id name %s\n", s.cfg.EngineName)
	fmt.Fprintf(s.out, "id author %s\n", s.cfg.EngineAuthor)
	fmt.Fprintln(s.out, "teiok")
}

func (s *Session) newGame(size int) {
	if size == 0 {
		size = s.cfg.BoardSize
	}
	if size < game.MinBoardSize || size > game.MaxBoardSize {
		log.Printf("teinewgame: unsupported size %d", size)
		return
	}
	s.size = size
	s.state = game.New(size)
}

// setPosition replays a whitespace-separated PTN sequence onto a fresh
// board. The first two plies place the opponent's color, so the parse
// color is flipped there. Tokens the grammar rejects (the leading
// "position"/"moves" words included) are skipped, matching the protocol's
// free-form position line.
func (s *Session) setPosition(line string) {
	state := game.New(s.size)
	for _, tok := range strings.Fields(line) {
		color := state.ToMove()
		if state.PlyCount < 2 {
			color = color.Flip()
		}
		ply, ok := game.ParsePly(tok, color)
		if !ok {
			continue
		}
		next, err := state.ExecutePly(ply)
		if err != nil {
			log.Printf("position: ply %q rejected: %v", tok, err)
			return
		}
		state = next
	}
	s.state = state
}

func (s *Session) bestMove(line string) {
	if s.state == nil {
		s.state = game.New(s.size)
	}

	tl := parseTimeLeft(line)
	est := s.size*s.size - s.state.PlyCount
	if est < 2 {
		est = 2
	}
	ctx, cancel := context.WithTimeout(context.Background(), tl.budget(est, s.state.ToMove()))
	defer cancel()

	ply, ok := s.picker.Pick(ctx, s.state)
	if !ok {
		fmt.Fprintln(s.out, "info string no move available")
		return
	}
	fmt.Fprintf(s.out, "bestmove %s\n", ply)
}
