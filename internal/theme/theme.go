package theme

import "github.com/Lumerin-protocol/flow-editor-api/internal/lib"

// keys of editorTheme passed to the editor as is
var passThroughKeys = []string{
	"userMenu",
	"menu",
	"palette",
	"projects",
	"keymap",
	"tours",
	"codeEditor",
	"markdownEditor",
	"mermaid",
}

const DeployButtonSimple = "simple"

type SettingsReader interface {
	Map(key string) (map[string]any, bool)
}

// Provider exposes the theme settings consumed by the editor. The theme is
// computed once, every call to Settings returns a fresh copy
type Provider struct {
	settings map[string]any
}

func NewProvider(s SettingsReader) *Provider {
	editorTheme, ok := s.Map("editorTheme")
	if !ok {
		editorTheme = map[string]any{}
	}
	return &Provider{settings: buildSettings(editorTheme)}
}

func (p *Provider) Settings() map[string]any {
	return lib.CloneMap(p.settings)
}

func buildSettings(editorTheme map[string]any) map[string]any {
	res := make(map[string]any)

	for _, key := range passThroughKeys {
		if v, ok := editorTheme[key]; ok {
			res[key] = v
		}
	}

	if btn, ok := editorTheme["deployButton"].(map[string]any); ok && btn["type"] == DeployButtonSimple {
		res["deployButton"] = pick(btn, "type", "label", "icon")
	}

	// images and css are served by the theme renderer, only textual parts go to the editor
	if header, ok := editorTheme["header"].(map[string]any); ok {
		if h := pick(header, "title", "url"); len(h) > 0 {
			res["header"] = h
		}
	}

	return res
}

func pick(m map[string]any, keys ...string) map[string]any {
	res := make(map[string]any, len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok {
			res[k] = v
		}
	}
	return res
}
