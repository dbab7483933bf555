package main

import (
	"os"

	"takhub/internal/config"
	"takhub/internal/tei"
)

func main() {
	cfg := config.Load()
	session := tei.NewSession(cfg, tei.FirstPlacement{}, os.Stdout)
	session.Run(tei.ReadCommands(os.Stdin))
}
