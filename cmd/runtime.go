package main

import (
	"github.com/Lumerin-protocol/flow-editor-api/internal/config"
	"github.com/Lumerin-protocol/flow-editor-api/internal/editor"
	"github.com/Lumerin-protocol/flow-editor-api/internal/nodes"
	"github.com/Lumerin-protocol/flow-editor-api/internal/settings"
	"github.com/Lumerin-protocol/flow-editor-api/internal/storage"
	"github.com/Lumerin-protocol/flow-editor-api/internal/theme"
)

// RuntimeFactory reads the settings file and builds the collaborators of the exporter
type RuntimeFactory struct {
	settingsFile   string
	userDir        string
	packageManager string
	nodeSettings   *settings.NodeSettings
	gitUser        *storage.GitUserResolver
}

func NewRuntimeFactory(cfg *config.Config, ns *settings.NodeSettings, gitUser *storage.GitUserResolver) *RuntimeFactory {
	return &RuntimeFactory{
		settingsFile:   cfg.Runtime.SettingsFile,
		userDir:        cfg.Runtime.UserDir,
		packageManager: cfg.Runtime.PackageManager,
		nodeSettings:   ns,
		gitUser:        gitUser,
	}
}

func (f *RuntimeFactory) Build() (editor.Runtime, error) {
	s, err := settings.Load(f.settingsFile, f.nodeSettings, map[string]any{
		"version": config.BuildVersion,
	})
	if err != nil {
		return editor.Runtime{}, err
	}

	rt := editor.Runtime{
		Settings: s,
		Nodes:    nodes.NewRegistry(s, nodes.PackageManagerAvailable(f.packageManager)),
		Theme:    theme.NewProvider(s),
	}

	fs := storage.NewLocalFS(s, f.userDir, f.gitUser)
	if projects, ok := fs.Projects(); ok {
		rt.Projects = projects
	}

	return rt, nil
}
