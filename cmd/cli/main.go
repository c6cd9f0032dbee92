package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/findra-app/findra-cli/internal/buildinfo"
	"github.com/findra-app/findra-cli/internal/client/cli"
	"github.com/findra-app/findra-cli/internal/client/config"
	"github.com/findra-app/findra-cli/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewDefault(slogLevel(cfg.LogLevel))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}

func slogLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
