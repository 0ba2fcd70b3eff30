//go:build wireinject

package main

import (
	"github.com/Lumerin-protocol/flow-editor-api/internal/config"
	"github.com/google/wire"
)

func initApp(cfg *config.Config, loggers Loggers) (*App, error) {
	wire.Build(appSet)
	return nil, nil
}
