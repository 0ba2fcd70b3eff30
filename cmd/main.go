package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Lumerin-protocol/flow-editor-api/internal/config"
	"github.com/Lumerin-protocol/flow-editor-api/internal/lib"
)

func main() {
	var cfg config.Config
	err := config.LoadConfig(&cfg, os.Args, ".env")
	if err != nil {
		panic(err)
	}

	log, err := lib.NewLogger(lib.LoggerOptions{
		Level:      cfg.Log.LevelApp,
		Color:      cfg.Log.Color,
		IsProd:     cfg.Log.IsProd,
		JSON:       cfg.Log.JSON,
		FolderPath: cfg.Log.FolderPath,
		FileName:   "app",
	})
	if err != nil {
		panic(err)
	}

	httpLog, err := lib.NewLogger(lib.LoggerOptions{
		Level:      cfg.Log.LevelHTTP,
		Color:      cfg.Log.Color,
		IsProd:     cfg.Log.IsProd,
		JSON:       cfg.Log.JSON,
		FolderPath: cfg.Log.FolderPath,
		FileName:   "http",
	})
	if err != nil {
		panic(err)
	}

	defer func() {
		_ = log.Sync()
		_ = httpLog.Sync()
	}()

	log.Infof("flow editor api %s, environment %s", config.BuildVersion, cfg.Environment)
	log.Debugf("config: %+v", cfg.GetSanitized())

	ctx, cancel := context.WithCancel(context.Background())

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-shutdownChan
		log.Warnf("Received signal: %s", s)
		cancel()

		s = <-shutdownChan
		log.Warnf("Received signal: %s. Forcing exit...", s)
		os.Exit(1)
	}()

	app, err := initApp(&cfg, Loggers{App: log, HTTP: httpLog.Named("HTTP")})
	if err != nil {
		panic(err)
	}

	err = app.Run(ctx)
	log.Infof("App exited due to %s", err)
}
