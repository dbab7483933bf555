package config

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/adrg/xdg"
)

const cfgFile = "takhub/config.json"

// Config holds the process-wide settings. Values resolve in three layers:
// built-in defaults, then an optional JSON file in the XDG config dir,
// then environment variable overrides.
type Config struct {
	HTTPAddr     string `json:"http_addr"`
	BoardSize    int    `json:"board_size"`
	EngineName   string `json:"engine_name"`
	EngineAuthor string `json:"engine_author"`
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func Load() Config {
	cfg := Config{
		HTTPAddr:     ":8080",
		BoardSize:    5,
		EngineName:   "takhub",
		EngineAuthor: "takhub contributors",
	}

	if path, err := xdg.SearchConfigFile(cfgFile); err == nil {
		if data, err := os.ReadFile(path); err == nil {
			_ = json.Unmarshal(data, &cfg)
		}
	}

	cfg.HTTPAddr = getenv("HTTP_ADDR", cfg.HTTPAddr)
	cfg.BoardSize = getenvInt("BOARD_SIZE", cfg.BoardSize)
	cfg.EngineName = getenv("ENGINE_NAME", cfg.EngineName)
	cfg.EngineAuthor = getenv("ENGINE_AUTHOR", cfg.EngineAuthor)
	return cfg
}
