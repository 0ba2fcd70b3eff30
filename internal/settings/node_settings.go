package settings

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/Lumerin-protocol/flow-editor-api/internal/lib"
)

var (
	ErrInvalidSettingName   = errors.New("invalid node setting name")
	ErrDuplicateSettingName = errors.New("node setting already registered")
)

// NodeSetting is a setting contributed by a node type. Only exportable
// settings are sent to the editor
type NodeSetting struct {
	Value      any
	Exportable bool
}

type nodeSetting struct {
	NodeSetting
	nodeType string
}

// NodeSettings is a registry of the settings contributed by node types, safe for concurrent use
type NodeSettings struct {
	settings map[string]nodeSetting // setting name -> definition
	disabled lib.Set                // disabled node types
	mu       sync.RWMutex
}

func NewNodeSettings() *NodeSettings {
	return &NodeSettings{
		settings: make(map[string]nodeSetting),
		disabled: lib.NewSet(),
	}
}

// Register adds the settings of a node type. Every name must start with the
// camel-cased node type, e.g. "http request" may register "httpRequestTimeout"
func (n *NodeSettings) Register(nodeType string, defs map[string]NodeSetting) error {
	prefix := NodeTypePrefix(nodeType)
	if prefix == "" {
		return lib.WrapError(ErrInvalidSettingName, fmt.Errorf("empty node type %q", nodeType))
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	for name := range defs {
		if !strings.HasPrefix(name, prefix) || name == prefix {
			return lib.WrapError(ErrInvalidSettingName, fmt.Errorf("%s: must start with %q", name, prefix))
		}
		if existing, ok := n.settings[name]; ok {
			return lib.WrapError(ErrDuplicateSettingName, fmt.Errorf("%s: registered by %q", name, existing.nodeType))
		}
	}

	for name, def := range defs {
		n.settings[name] = nodeSetting{NodeSetting: def, nodeType: nodeType}
	}
	return nil
}

// Disable hides the settings of node types, e.g. when their module is disabled
func (n *NodeSettings) Disable(nodeTypes ...string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.disabled.Add(nodeTypes...)
}

func (n *NodeSettings) Enable(nodeTypes ...string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, t := range nodeTypes {
		n.disabled.Remove(t)
	}
}

// Export returns exportable settings of enabled node types. The value set in
// the user settings takes precedence over the registered default
func (n *NodeSettings) Export(values *Settings) map[string]any {
	n.mu.RLock()
	defer n.mu.RUnlock()

	res := make(map[string]any)
	for name, def := range n.settings {
		if !def.Exportable || n.disabled.Contains(def.nodeType) {
			continue
		}
		if v, ok := values.Get(name); ok {
			res[name] = v
			continue
		}
		res[name] = lib.CloneValue(def.Value)
	}
	return res
}

// NodeTypePrefix converts a node type to the prefix of its setting names:
// "http request" -> "httpRequest", "mqtt-broker" -> "mqttBroker"
func NodeTypePrefix(nodeType string) string {
	words := strings.FieldsFunc(nodeType, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var b strings.Builder
	for i, w := range words {
		runes := []rune(w)
		if i == 0 {
			runes[0] = unicode.ToLower(runes[0])
		} else {
			runes[0] = unicode.ToUpper(runes[0])
		}
		b.WriteString(string(runes))
	}
	return b.String()
}
