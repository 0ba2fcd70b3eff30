package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Lumerin-protocol/flow-editor-api/internal/config"
	"github.com/Lumerin-protocol/flow-editor-api/internal/editor"
	"github.com/Lumerin-protocol/flow-editor-api/internal/lib"
	"github.com/Lumerin-protocol/flow-editor-api/internal/storage"
	"github.com/stretchr/testify/require"
)

type noopServer struct{}

func (noopServer) Run(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

func newTestApp(t *testing.T, settingsYAML string) (*App, string) {
	dir := t.TempDir()
	settingsFile := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(settingsFile, []byte(settingsYAML), 0644))

	cfg := &config.Config{}
	cfg.Runtime.SettingsFile = settingsFile
	cfg.Runtime.UserDir = dir
	cfg.Runtime.PackageManager = "definitely-not-a-package-manager"

	ns, err := provideNodeSettings()
	require.NoError(t, err)
	gitUser := storage.NewGitUserResolverFunc(0, func(ctx context.Context, key string) (string, error) {
		return "", nil
	})
	factory := NewRuntimeFactory(cfg, ns, gitUser)
	rt, err := factory.Build()
	require.NoError(t, err)

	log := lib.NewTestLogger()
	exporter, err := editor.NewSettingsExporter(rt, log)
	require.NoError(t, err)

	return NewApp(noopServer{}, exporter, factory, gitUser, Loggers{App: log, HTTP: log}), settingsFile
}

func exportSettings(t *testing.T, app *App) map[string]any {
	res, err := app.exporter.Export(context.Background())
	require.NoError(t, err)
	return res
}

func TestRuntimeFactoryDefaults(t *testing.T) {
	app, _ := newTestApp(t, "httpNodeRoot: /red\n")

	res := exportSettings(t, app)
	require.Equal(t, "/red", res["httpNodeRoot"])
	require.Equal(t, config.BuildVersion, res["version"])
	require.Equal(t, "system", res["flowEncryptionType"])
	require.Equal(t, map[string]any{"editable": false}, res["editorTheme"].(map[string]any)["palette"])
}

func TestRuntimeFactoryProjects(t *testing.T) {
	app, _ := newTestApp(t, "editorTheme:\n  projects:\n    enabled: true\n")

	rt, err := app.factory.Build()
	require.NoError(t, err)
	require.NotNil(t, rt.Projects)
}

func TestReload(t *testing.T) {
	app, settingsFile := newTestApp(t, "version: first\n")
	require.Equal(t, "first", exportSettings(t, app)["version"])

	require.NoError(t, os.WriteFile(settingsFile, []byte("version: second\n"), 0644))
	require.NoError(t, app.Reload())
	require.Equal(t, "second", exportSettings(t, app)["version"])

	require.NoError(t, os.WriteFile(settingsFile, []byte("version: [unclosed\n"), 0644))
	require.Error(t, app.Reload())
	require.Equal(t, "second", exportSettings(t, app)["version"])
}

func TestAppRunStopsOnCancel(t *testing.T) {
	app, _ := newTestApp(t, "{}\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, app.Run(ctx), context.Canceled)
}
