package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetContains(t *testing.T) {
	s := NewSet("version", "httpNodeRoot")
	assert.True(t, s.Contains("version"))
	assert.False(t, s.Contains("foo"))
	assert.Equal(t, 2, s.Len())
}

func TestSetRemove(t *testing.T) {
	s := NewSet("a", "b")
	assert.True(t, s.Remove("a"))
	assert.False(t, s.Remove("a"))
	assert.Equal(t, []string{"b"}, s.ToSlice())
}

func TestSetToSliceSorted(t *testing.T) {
	s := NewSet("version", "flowFilePretty", "httpNodeRoot")
	s.Add("paletteCategories")
	assert.Equal(t, []string{"flowFilePretty", "httpNodeRoot", "paletteCategories", "version"}, s.ToSlice())
}
