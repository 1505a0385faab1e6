package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"storedash/internal/buildinfo"
	"storedash/internal/client/cli"
	"storedash/internal/client/config"
	"storedash/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(ctx, cfg, logger)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
