package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Lumerin-protocol/flow-editor-api/internal/lib"
	"gopkg.in/yaml.v3"
)

var (
	ErrSettingsRead   = errors.New("cannot read settings file")
	ErrSettingsParse  = errors.New("cannot parse settings file")
	ErrSettingsFormat = errors.New("unsupported settings file format")
)

// ReadFile reads a YAML or JSON settings file. A missing file results in empty settings
func ReadFile(path string) (map[string]any, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml", ".json":
	default:
		return nil, lib.WrapError(ErrSettingsFormat, fmt.Errorf("%q", ext))
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]any{}, nil
	}
	if err != nil {
		return nil, lib.WrapError(ErrSettingsRead, err)
	}

	return Parse(data)
}

// Parse decodes YAML (and therefore JSON) settings, normalising nested maps to map[string]any
func Parse(data []byte) (map[string]any, error) {
	var values map[string]any
	err := yaml.Unmarshal(data, &values)
	if err != nil {
		return nil, lib.WrapError(ErrSettingsParse, err)
	}
	if values == nil {
		return map[string]any{}, nil
	}
	return lib.CloneMap(values), nil
}

// Load reads the settings file and sets the defaults for the keys absent from it
func Load(path string, nodeSettings *NodeSettings, defaults map[string]any) (*Settings, error) {
	values, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	for k, v := range defaults {
		if _, ok := values[k]; !ok {
			values[k] = v
		}
	}
	return New(values, nodeSettings), nil
}
