package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"takhub/internal/config"
	"takhub/internal/game"
)

// Local hotseat game: both seats share the terminal, entering moves in
// PTN ("c3", "Sd4", "3a1+12"). The first two plies place the opponent's
// color, per the standard opening rule.
func main() {
	cfg := config.Load()
	state := game.New(cfg.BoardSize)

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Println(state)

		mover := state.ToMove()
		fmt.Printf("Move %d, %s to play\n", state.PlyCount+1, mover)

		pieceColor := mover
		if state.PlyCount < 2 {
			pieceColor = mover.Flip()
			fmt.Println("(opening: this ply places the opponent's stone)")
		}

		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		tok := strings.TrimSpace(line)
		if tok == "quit" {
			return
		}

		ply, ok := game.ParsePly(tok, pieceColor)
		if !ok {
			fmt.Println("Could not read that move. Try again.")
			continue
		}
		next, err := state.ExecutePly(ply)
		if err != nil {
			fmt.Println("Illegal move:", err)
			continue
		}
		state = next

		if w := state.CheckWin(); w.Over() {
			fmt.Println(state)
			fmt.Println("Game over:", w)
			return
		}
	}
}
