package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Lumerin-protocol/flow-editor-api/internal/editor"
	"github.com/Lumerin-protocol/flow-editor-api/internal/interfaces"
	"github.com/Lumerin-protocol/flow-editor-api/internal/metrics"
	"github.com/Lumerin-protocol/flow-editor-api/internal/storage"
	"golang.org/x/sync/errgroup"
)

type Loggers struct {
	App  interfaces.ILogger
	HTTP interfaces.ILogger
}

type App struct {
	server   interfaces.Runnable
	exporter *editor.SettingsExporter
	factory  *RuntimeFactory
	gitUser  *storage.GitUserResolver
	log      interfaces.ILogger
}

func NewApp(server interfaces.Runnable, exporter *editor.SettingsExporter, factory *RuntimeFactory, gitUser *storage.GitUserResolver, loggers Loggers) *App {
	return &App{
		server:   server,
		exporter: exporter,
		factory:  factory,
		gitUser:  gitUser,
		log:      loggers.App,
	}
}

// Run serves the api and reloads the runtime settings on SIGHUP until ctx is cancelled
func (a *App) Run(ctx context.Context) error {
	reloadChan := make(chan os.Signal, 1)
	signal.Notify(reloadChan, syscall.SIGHUP)
	defer signal.Stop(reloadChan)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.server.Run(ctx)
	})
	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case s := <-reloadChan:
				a.log.Infof("Received signal: %s, reloading settings", s)
				_ = a.Reload()
			}
		}
	})
	return g.Wait()
}

// Reload swaps the exporter runtime, the previous one is kept if the settings cannot be read
func (a *App) Reload() error {
	rt, err := a.factory.Build()
	if err == nil {
		err = a.exporter.Init(rt)
	}
	if err != nil {
		metrics.SettingsReloads.WithLabelValues("error").Inc()
		a.log.Errorf("settings reload failed, keeping previous settings: %s", err)
		return err
	}
	a.gitUser.Invalidate()
	metrics.SettingsReloads.WithLabelValues("ok").Inc()
	a.log.Info("settings reloaded")
	return nil
}
