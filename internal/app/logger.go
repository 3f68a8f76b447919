package app

import (
	"os"

	"krishak-delivery/internal/config"
	"krishak-delivery/internal/logx"
)

// NewLogger returns a JSON logger on stdout at the configured level.
func NewLogger(cfg *config.Config) logx.Logger {
	return logx.NewJSON(os.Stdout, cfg.LogLevel)
}
