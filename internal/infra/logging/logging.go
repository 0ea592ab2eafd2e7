package logging

import (
	"log/slog"

	"github.com/vidalgui/aula-git/internal/app/account"
)

// Setup setups logger configuration.
func Setup(cfg account.Config) {
	if cfg.InitDebug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
		slog.Debug("Initializing debug level logging")
		return
	}

	slog.SetLogLoggerLevel(slog.LevelInfo)
}
