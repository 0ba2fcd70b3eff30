package editor

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lumerin-protocol/flow-editor-api/internal/interfaces"
	"github.com/Lumerin-protocol/flow-editor-api/internal/lib"
	"github.com/Lumerin-protocol/flow-editor-api/internal/metrics"
	"github.com/Lumerin-protocol/flow-editor-api/internal/storage"
	"go.uber.org/atomic"
	"golang.org/x/exp/maps"
	"golang.org/x/sync/errgroup"
)

const (
	SectionNodeSettings = "nodeSettings"
	SectionTheme        = "editorTheme"
	SectionPalette      = "palette"
	SectionEncryption   = "flowEncryptionType"
	SectionProject      = "project"
	SectionFiles        = "files"
	SectionGit          = "git"
)

var ErrRuntimeIncomplete = errors.New("runtime is missing a collaborator")

// settings copied to the editor verbatim, everything else stays on the server
var allowList = lib.NewSet(
	"httpNodeRoot",
	"version",
	"paletteCategories",
	"flowFilePretty",
)

type SettingsSource interface {
	Get(key string) (any, bool)
}

// NodeSettingsExporter is optionally implemented by SettingsSource, the returned
// values are merged into the exported settings
type NodeSettingsExporter interface {
	ExportNodeSettings() map[string]any
}

type NodeRegistry interface {
	PaletteEditorEnabled() bool
	CredentialKeyType() string
}

type ThemeProvider interface {
	Settings() map[string]any
}

type ProjectStore interface {
	ActiveProject(ctx context.Context) (string, error)
	FlowFileExists(ctx context.Context) (bool, error)
	FlowFilename() string
	CredentialsFilename() string
	GlobalGitUser(ctx context.Context) (*storage.GitUser, error)
}

// Runtime is the set of collaborators the settings are exported from.
// Projects is nil when the storage doesn't support projects
type Runtime struct {
	Settings SettingsSource
	Nodes    NodeRegistry
	Theme    ThemeProvider
	Projects ProjectStore
}

func (rt Runtime) validate() error {
	switch {
	case rt.Settings == nil:
		return lib.WrapError(ErrRuntimeIncomplete, errors.New("settings"))
	case rt.Nodes == nil:
		return lib.WrapError(ErrRuntimeIncomplete, errors.New("node registry"))
	case rt.Theme == nil:
		return lib.WrapError(ErrRuntimeIncomplete, errors.New("theme provider"))
	}
	return nil
}

// SettingsExporter builds the subset of the runtime settings that is safe to
// send to the editor. It is safe for concurrent use
type SettingsExporter struct {
	runtime atomic.Pointer[Runtime]
	log     interfaces.ILogger
}

func NewSettingsExporter(rt Runtime, log interfaces.ILogger) (*SettingsExporter, error) {
	e := &SettingsExporter{log: log}
	if err := e.Init(rt); err != nil {
		return nil, err
	}
	return e, nil
}

// Init replaces the runtime, requests in progress finish with the previous one
func (e *SettingsExporter) Init(rt Runtime) error {
	if err := rt.validate(); err != nil {
		return err
	}
	e.runtime.Store(&rt)
	return nil
}

// Export returns a newly built settings object. Failing collaborators are logged
// and their sections are omitted, the only returned error is the context error
func (e *SettingsExporter) Export(ctx context.Context) (map[string]any, error) {
	rt := e.runtime.Load()
	res := make(map[string]any)

	for _, key := range allowList.ToSlice() {
		if v, ok := rt.Settings.Get(key); ok && isExportable(key, v) {
			res[key] = v
		}
	}

	if hook, ok := rt.Settings.(NodeSettingsExporter); ok {
		e.section(ctx, SectionNodeSettings, func() error {
			for k, v := range hook.ExportNodeSettings() {
				res[k] = v
			}
			return nil
		})
	}

	editorTheme := map[string]any{}
	e.section(ctx, SectionTheme, func() error {
		if theme := rt.Theme.Settings(); theme != nil {
			editorTheme = maps.Clone(theme)
		}
		return nil
	})
	ok := e.section(ctx, SectionPalette, func() error {
		if !rt.Nodes.PaletteEditorEnabled() {
			editorTheme["palette"] = paletteNotEditable()
		}
		return nil
	})
	if !ok {
		// unknown state of the palette editor, do not offer it
		editorTheme["palette"] = paletteNotEditable()
	}
	res["editorTheme"] = editorTheme

	e.section(ctx, SectionEncryption, func() error {
		res["flowEncryptionType"] = rt.Nodes.CredentialKeyType()
		return nil
	})

	if rt.Projects != nil {
		for k, v := range e.exportProjects(ctx, rt.Projects) {
			res[k] = v
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// exportProjects resolves project details and git identity concurrently
func (e *SettingsExporter) exportProjects(ctx context.Context, projects ProjectStore) map[string]any {
	var (
		project string
		files   map[string]any
		gitUser *storage.GitUser
	)

	g := errgroup.Group{}
	g.Go(func() error {
		e.section(ctx, SectionProject, func() error {
			name, err := projects.ActiveProject(ctx)
			if err != nil {
				return err
			}
			project = name
			return nil
		})
		if project != "" {
			return nil
		}
		e.section(ctx, SectionFiles, func() error {
			exists, err := projects.FlowFileExists(ctx)
			if err != nil || !exists {
				return err
			}
			files = map[string]any{
				"flow":        projects.FlowFilename(),
				"credentials": projects.CredentialsFilename(),
			}
			return nil
		})
		return nil
	})
	g.Go(func() error {
		e.section(ctx, SectionGit, func() error {
			user, err := projects.GlobalGitUser(ctx)
			if err != nil {
				return err
			}
			gitUser = user
			return nil
		})
		return nil
	})
	_ = g.Wait()

	res := make(map[string]any)
	if project != "" {
		res["project"] = project
	} else if files != nil {
		res["files"] = files
	}
	if gitUser != nil {
		res["git"] = map[string]any{"globalUser": gitUser}
	}
	return res
}

// section runs a collaborator call, recovering from panics. Returns false if the call failed
func (e *SettingsExporter) section(ctx context.Context, name string, f func() error) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			e.fail(ctx, name, fmt.Errorf("panic: %v", r))
			ok = false
		}
	}()

	if err := f(); err != nil {
		e.fail(ctx, name, err)
		return false
	}
	return true
}

func (e *SettingsExporter) fail(ctx context.Context, section string, err error) {
	if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		e.log.Debugf("settings section %s skipped: %s", section, err)
		return
	}
	metrics.CollaboratorErrors.WithLabelValues(section).Inc()
	e.log.Errorf("cannot export settings section %s: %s", section, err)
}

func paletteNotEditable() map[string]any {
	return map[string]any{"editable": false}
}

func isExportable(key string, v any) bool {
	switch key {
	case "paletteCategories":
		switch v.(type) {
		case []any, []string:
			return true
		}
		return false
	case "flowFilePretty":
		b, ok := v.(bool)
		return ok && b
	}
	return true
}
