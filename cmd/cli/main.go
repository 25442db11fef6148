package main

import (
	"context"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/gophroster/internal/cli"
	"github.com/dmitrijs2005/gophroster/internal/config"
	"github.com/dmitrijs2005/gophroster/internal/logging"
	"github.com/dmitrijs2005/gophroster/internal/storage"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx := context.Background()
	cfg := config.LoadConfig()

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		log.Fatalf("%v", err)
	}
	logger = logger.With("session_id", uuid.NewString())
	if z, ok := logger.(*logging.ZapLogger); ok {
		defer z.Sync()
	}

	console := cli.NewConsole(os.Stdin, os.Stdout)
	console.Println("Initializing system...")

	repo, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "store unavailable", "error", err)
		console.Error(err.Error())
		return 1
	}
	defer repo.Close()

	if err := cli.NewApp(repo, console, logger).Run(ctx); err != nil {
		return 1
	}
	return 0
}
