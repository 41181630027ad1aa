package gconf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingFileGivesDefaults(t *testing.T) {
	c, err := NewGUIConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, "light", c.Theme)
	assert.Equal(t, 4, c.Grid)
	assert.Equal(t, 1000, c.WindowW)
	assert.False(t, c.Mute)
}

func TestCorrectionOfBadValues(t *testing.T) {
	file := filepath.Join(t.TempDir(), "jigsaw.json")
	require.NoError(t, os.WriteFile(file, []byte(`{
		"theme": "solarized",
		"grid": 5,
		"image_path": "/definitely/not/here.png",
		"window_w": 10,
		"window_h": 10
	}`), 0644))

	c, err := NewGUIConfig(file)
	require.NoError(t, err)
	assert.Equal(t, "light", c.Theme)
	assert.Equal(t, 4, c.Grid)
	assert.Empty(t, c.ImagePath)
	assert.Equal(t, 1000, c.WindowW)
	assert.Equal(t, 700, c.WindowH)
}

func TestSaveRoundTrip(t *testing.T) {
	file := filepath.Join(t.TempDir(), "jigsaw.json")
	c, err := NewGUIConfig(file)
	require.NoError(t, err)
	c.Theme = "dark"
	c.Grid = 8
	c.Mute = true
	require.NoError(t, c.Save())

	back, err := NewGUIConfig(file)
	require.NoError(t, err)
	assert.Equal(t, "dark", back.Theme)
	assert.Equal(t, 8, back.Grid)
	assert.True(t, back.Mute)
}
