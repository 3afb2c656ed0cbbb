package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	c := NewConfig()
	assert.Equal(t, DefaultGeneratedColumnName, c.GeneratedColumnName)
	assert.False(t, c.StrictColumnLookup)
	assert.Equal(t, DefaultSortBufferHint, c.SortBufferHint)
	assert.NoError(t, c.Validate())
}

func TestConfig_Validate(t *testing.T) {
	c := NewConfig()
	c.GeneratedColumnName = ""
	assert.Error(t, c.Validate())

	c = NewConfig()
	c.SortBufferHint = -1
	assert.Error(t, c.Validate())
}

func TestConfig_WithDefaults(t *testing.T) {
	c := Config{StrictColumnLookup: true}.WithDefaults()
	assert.Equal(t, DefaultGeneratedColumnName, c.GeneratedColumnName)
	assert.Equal(t, DefaultSortBufferHint, c.SortBufferHint)
	assert.True(t, c.StrictColumnLookup)
}

func TestGlobalConfig_SetAndGet(t *testing.T) {
	original := GetGlobalConfig()
	defer SetGlobalConfig(original)

	c := NewConfig()
	c.GeneratedColumnName = "Cell"
	SetGlobalConfig(c)
	assert.Equal(t, "Cell", GetGlobalConfig().GeneratedColumnName)
}

func TestLoadFromFile_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "egret.yaml")
	content := []byte("generated_column_name: Col\nstrict_column_lookup: true\nsort_buffer_hint: 128\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	c, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Col", c.GeneratedColumnName)
	assert.True(t, c.StrictColumnLookup)
	assert.Equal(t, 128, c.SortBufferHint)
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("EGRET_GENERATED_COLUMN_NAME", "V")
	t.Setenv("EGRET_STRICT_COLUMN_LOOKUP", "true")
	t.Setenv("EGRET_SORT_BUFFER_HINT", "32")

	c := LoadFromEnv()
	assert.Equal(t, "V", c.GeneratedColumnName)
	assert.True(t, c.StrictColumnLookup)
	assert.Equal(t, 32, c.SortBufferHint)
}
