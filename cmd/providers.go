package main

import (
	"net/http"

	"github.com/Lumerin-protocol/flow-editor-api/internal/config"
	"github.com/Lumerin-protocol/flow-editor-api/internal/editor"
	"github.com/Lumerin-protocol/flow-editor-api/internal/handlers/httphandlers"
	"github.com/Lumerin-protocol/flow-editor-api/internal/interfaces"
	"github.com/Lumerin-protocol/flow-editor-api/internal/nodes"
	"github.com/Lumerin-protocol/flow-editor-api/internal/repositories/transport"
	"github.com/Lumerin-protocol/flow-editor-api/internal/settings"
	"github.com/Lumerin-protocol/flow-editor-api/internal/storage"
	"github.com/google/wire"
)

var appSet = wire.NewSet(
	provideNodeSettings,
	provideGitUserResolver,
	NewRuntimeFactory,
	provideRuntime,
	provideExporter,
	provideHTTPHandler,
	provideHTTPServer,
	NewApp,
)

func provideNodeSettings() (*settings.NodeSettings, error) {
	ns := settings.NewNodeSettings()
	if err := nodes.RegisterCoreSettings(ns); err != nil {
		return nil, err
	}
	return ns, nil
}

func provideGitUserResolver(cfg *config.Config) *storage.GitUserResolver {
	return storage.NewGitUserResolver(cfg.Storage.GitUserCacheTTL)
}

func provideRuntime(f *RuntimeFactory) (editor.Runtime, error) {
	return f.Build()
}

func provideExporter(rt editor.Runtime, loggers Loggers) (*editor.SettingsExporter, error) {
	return editor.NewSettingsExporter(rt, loggers.App.Named("EXPORTER"))
}

func provideHTTPHandler(exporter *editor.SettingsExporter, cfg *config.Config, loggers Loggers) http.Handler {
	return httphandlers.NewHTTPHandler(exporter, cfg, loggers.HTTP)
}

func provideHTTPServer(cfg *config.Config, handler http.Handler, loggers Loggers) interfaces.Runnable {
	return transport.NewHTTPServer(cfg.Web.Address, handler, cfg.Web.ShutdownTimeout, loggers.HTTP)
}
