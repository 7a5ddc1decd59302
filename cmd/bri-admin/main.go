package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/wardydev/bri-finder-admin/internal/buildinfo"
	"github.com/wardydev/bri-finder-admin/internal/cli"
	"github.com/wardydev/bri-finder-admin/internal/config"
	"github.com/wardydev/bri-finder-admin/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	log := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	app := cli.NewApp(cfg, log)
	app.Run(ctx)

}
