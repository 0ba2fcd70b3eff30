package nodes

import (
	"os/exec"

	"github.com/Lumerin-protocol/flow-editor-api/internal/settings"
)

const (
	CredentialKeyTypeUser     = "user"
	CredentialKeyTypeSystem   = "system"
	CredentialKeyTypeDisabled = "disabled"
)

type SettingsReader interface {
	Get(key string) (any, bool)
	Path(keys ...string) (any, bool)
}

// Registry answers the editor's questions about the node runtime
type Registry struct {
	settings     SettingsReader
	installAvail bool
}

// NewRegistry creates a registry, installAvailable reports whether node modules
// can be installed from the palette, see PackageManagerAvailable
func NewRegistry(settings SettingsReader, installAvailable bool) *Registry {
	return &Registry{
		settings:     settings,
		installAvail: installAvailable,
	}
}

// PackageManagerAvailable checks that the package manager binary is on PATH
func PackageManagerAvailable(binary string) bool {
	if binary == "" {
		return false
	}
	_, err := exec.LookPath(binary)
	return err == nil
}

func (r *Registry) PaletteEditorEnabled() bool {
	if !r.installAvail {
		return false
	}
	if isFalse(r.settings.Path("editorTheme", "palette", "editable")) {
		return false
	}
	if isFalse(r.settings.Path("externalModules", "palette", "allowInstall")) {
		return false
	}
	return true
}

// CredentialKeyType reports which key encrypts the flow credentials
func (r *Registry) CredentialKeyType() string {
	secret, ok := r.settings.Get("credentialSecret")
	if ok {
		switch v := secret.(type) {
		case bool:
			if !v {
				return CredentialKeyTypeDisabled
			}
		case string:
			if v != "" {
				return CredentialKeyTypeUser
			}
		}
	}
	// either generated by the runtime and kept in _credentialSecret or not generated yet
	return CredentialKeyTypeSystem
}

func isFalse(v any, ok bool) bool {
	b, isBool := v.(bool)
	return ok && isBool && !b
}

// RegisterCoreSettings registers the settings contributed by the built-in nodes
func RegisterCoreSettings(ns *settings.NodeSettings) error {
	err := ns.Register("function", map[string]settings.NodeSetting{
		"functionExternalModules": {Value: true, Exportable: true},
		"functionTimeout":         {Value: 0, Exportable: true},
	})
	if err != nil {
		return err
	}
	return ns.Register("debug", map[string]settings.NodeSetting{
		"debugMaxLength": {Value: 1000},
		"debugUseColors": {Value: false},
	})
}
