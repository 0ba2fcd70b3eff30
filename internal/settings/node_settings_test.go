package settings

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNodeTypePrefix(t *testing.T) {
	require.Equal(t, "function", NodeTypePrefix("function"))
	require.Equal(t, "httpRequest", NodeTypePrefix("http request"))
	require.Equal(t, "mqttBroker", NodeTypePrefix("mqtt-broker"))
	require.Equal(t, "", NodeTypePrefix(" - "))
}

func TestNodeSettingsExport(t *testing.T) {
	ns := NewNodeSettings()
	err := ns.Register("test", map[string]NodeSetting{
		"testNodeSetting": {Value: "default", Exportable: true},
		"testHidden":      {Value: 1, Exportable: false},
	})
	require.NoError(t, err)

	exported := New(map[string]any{}, ns).ExportNodeSettings()
	require.Equal(t, map[string]any{"testNodeSetting": "default"}, exported)

	exported = New(map[string]any{"testNodeSetting": "helloWorld", "testHidden": 2}, ns).ExportNodeSettings()
	require.Equal(t, map[string]any{"testNodeSetting": "helloWorld"}, exported)
}

func TestNodeSettingsRegisterInvalidName(t *testing.T) {
	ns := NewNodeSettings()

	err := ns.Register("http request", map[string]NodeSetting{"httpTimeout": {Value: 1}})
	require.ErrorIs(t, err, ErrInvalidSettingName)

	err = ns.Register("", map[string]NodeSetting{"x": {Value: 1}})
	require.ErrorIs(t, err, ErrInvalidSettingName)
}

func TestNodeSettingsRegisterDuplicate(t *testing.T) {
	ns := NewNodeSettings()
	require.NoError(t, ns.Register("test", map[string]NodeSetting{"testA": {Value: 1, Exportable: true}}))

	err := ns.Register("test", map[string]NodeSetting{"testA": {Value: 2, Exportable: true}})
	require.ErrorIs(t, err, ErrDuplicateSettingName)
}

func TestNodeSettingsDisable(t *testing.T) {
	ns := NewNodeSettings()
	require.NoError(t, ns.Register("test", map[string]NodeSetting{"testA": {Value: 1, Exportable: true}}))
	require.NoError(t, ns.Register("other", map[string]NodeSetting{"otherA": {Value: 2, Exportable: true}}))
	s := New(map[string]any{}, ns)

	ns.Disable("test")
	require.Equal(t, map[string]any{"otherA": 2}, s.ExportNodeSettings())

	ns.Enable("test")
	require.Equal(t, map[string]any{"testA": 1, "otherA": 2}, s.ExportNodeSettings())
}

func TestNodeSettingsNilRegistry(t *testing.T) {
	require.Empty(t, New(map[string]any{"foo": 1}, nil).ExportNodeSettings())
}
