package tei

import (
	"strconv"
	"strings"
	"time"

	"takhub/internal/game"
)

// timeLeft holds the clock fields of a go command, in milliseconds.
type timeLeft struct {
	wtime, btime uint64
	winc, binc   uint64
}

func parseTimeLeft(line string) timeLeft {
	tl := timeLeft{wtime: 1000, btime: 1000}
	fields := strings.Fields(line)
	for i := 0; i+1 < len(fields); i++ {
		val, err := strconv.ParseUint(fields[i+1], 10, 64)
		if err != nil {
			continue
		}
		switch fields[i] {
		case "wtime":
			tl.wtime = val
		case "btime":
			tl.btime = val
		case "winc":
			tl.winc = val
		case "binc":
			tl.binc = val
		}
	}
	return tl
}

// budget splits the mover's remaining bank over an estimated number of
// plies still to play, plus the increment.
func (tl timeLeft) budget(estPlies int, toMove game.Color) time.Duration {
	bank, inc := tl.btime, tl.binc
	if toMove == game.White {
		bank, inc = tl.wtime, tl.winc
	}
	ms := bank/uint64(estPlies+2) + inc
	return time.Duration(ms) * time.Millisecond
}
