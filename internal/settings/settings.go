package settings

import (
	"github.com/Lumerin-protocol/flow-editor-api/internal/lib"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Settings is an immutable view of the runtime settings. Values returned by
// the accessors are copies, so callers are free to modify them
type Settings struct {
	values       map[string]any
	nodeSettings *NodeSettings
}

// New copies values, nodeSettings may be nil if no node contributes settings
func New(values map[string]any, nodeSettings *NodeSettings) *Settings {
	return &Settings{
		values:       lib.CloneMap(values),
		nodeSettings: nodeSettings,
	}
}

func (s *Settings) Get(key string) (any, bool) {
	v, ok := s.values[key]
	if !ok {
		return nil, false
	}
	return lib.CloneValue(v), true
}

func (s *Settings) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Keys returns top-level keys in ascending order
func (s *Settings) Keys() []string {
	keys := maps.Keys(s.values)
	slices.Sort(keys)
	return keys
}

func (s *Settings) String(key string) (string, bool) {
	v, ok := s.values[key].(string)
	return v, ok
}

// Bool returns the value only if it's a boolean, ok is false otherwise
func (s *Settings) Bool(key string) (value bool, ok bool) {
	v, ok := s.values[key].(bool)
	return v, ok
}

func (s *Settings) Map(key string) (map[string]any, bool) {
	v, ok := s.values[key].(map[string]any)
	if !ok {
		return nil, false
	}
	return lib.CloneMap(v), true
}

// Path looks up a nested value, e.g. Path("editorTheme", "palette", "editable")
func (s *Settings) Path(keys ...string) (any, bool) {
	if len(keys) == 0 {
		return nil, false
	}
	var cur any = s.values
	for _, key := range keys {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return lib.CloneValue(cur), true
}

// ExportNodeSettings returns the exportable settings registered by nodes,
// valued from this settings file where the user has set them
func (s *Settings) ExportNodeSettings() map[string]any {
	if s.nodeSettings == nil {
		return map[string]any{}
	}
	return s.nodeSettings.Export(s)
}
