package tei

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// CommandKind tags one parsed control line.
type CommandKind int

const (
	CmdUnknown CommandKind = iota
	CmdTei
	CmdIsReady
	CmdNewGame
	CmdPosition
	CmdGo
	CmdStop
	CmdQuit
)

// Command is one line of the engine-control protocol. Line keeps the raw
// text for the commands that carry arguments (position, go).
type Command struct {
	Kind CommandKind
	Size int
	Line string
}

// ReadCommands starts a reader goroutine that turns protocol lines into
// commands. The channel closes on EOF or after a quit, which ends the
// session loop; decoupling the blocking read from command handling this
// way keeps the session single-threaded.
func ReadCommands(r io.Reader) <-chan Command {
	out := make(chan Command)
	go func() {
		defer close(out)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			cmd := parseLine(line)
			out <- cmd
			if cmd.Kind == CmdQuit {
				return
			}
		}
	}()
	return out
}

func parseLine(line string) Command {
	switch {
	case line == "tei":
		return Command{Kind: CmdTei}
	case line == "isready":
		return Command{Kind: CmdIsReady}
	case line == "quit":
		return Command{Kind: CmdQuit}
	case line == "stop":
		return Command{Kind: CmdStop}
	case strings.HasPrefix(line, "position"):
		return Command{Kind: CmdPosition, Line: line}
	case strings.HasPrefix(line, "go"):
		return Command{Kind: CmdGo, Line: line}
	case strings.HasPrefix(line, "teinewgame"):
		size := 0
		for _, f := range strings.Fields(line)[1:] {
			if n, err := strconv.Atoi(f); err == nil {
				size = n
				break
			}
		}
		return Command{Kind: CmdNewGame, Size: size}
	default:
		return Command{Kind: CmdUnknown, Line: line}
	}
}
