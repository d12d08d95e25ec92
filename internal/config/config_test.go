package config

import (
	"os"
	"path/filepath"
	"testing"

	"dropzone/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := New()

	assert.Empty(t, cfg.Accept.Types)
	assert.Equal(t, DefaultExtensionPattern, cfg.Accept.Pattern)
	assert.Equal(t, DefaultLabelText, cfg.Settings.LabelText)
	assert.True(t, cfg.Settings.Multiple)
	assert.False(t, cfg.Settings.Disabled)
	assert.Equal(t, ".", cfg.Directories.Default)
	assert.Equal(t, 5, cfg.WatchMode.Interval)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigFileMissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfigFile(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, New(), cfg)
}

func TestLoadConfigFileMergesOverDefaults(t *testing.T) {
	content := `
accept:
  types:
    - ".png"
    - "image/*"
settings:
  label_text: "Drop screenshots here"
  multiple: true
directories:
  watch:
    - /tmp/inbox
watch_mode:
  enabled: true
  interval: 2
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{".png", "image/*"}, cfg.Accept.Types)
	assert.Equal(t, "Drop screenshots here", cfg.Settings.LabelText)
	assert.True(t, cfg.Settings.Multiple)
	assert.Equal(t, []string{"/tmp/inbox"}, cfg.Directories.Watch)
	assert.True(t, cfg.WatchMode.Enabled)
	assert.Equal(t, 2, cfg.WatchMode.Interval)

	// Unset fields keep their defaults
	assert.Equal(t, DefaultExtensionPattern, cfg.Accept.Pattern)
	assert.Equal(t, ".", cfg.Directories.Default)
}

func TestLoadConfigFileInvalid(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{
			name: "bad_pattern",
			content: `
accept:
  pattern: "(["
`,
		},
		{
			name: "empty_accept_entry",
			content: `
accept:
  types:
    - ".png"
    - ""
`,
		},
		{
			name:    "malformed_yaml",
			content: "accept: [unclosed",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0644))

			_, err := LoadConfigFile(path)
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := New()
	require.NoError(t, cfg.Validate())

	cfg.Settings.LabelText = ""
	assert.Error(t, cfg.Validate())

	cfg = New()
	cfg.WatchMode.Enabled = true
	cfg.WatchMode.Interval = 0
	assert.Error(t, cfg.Validate())

	var nilCfg *Config
	assert.Error(t, nilCfg.Validate())
}

func TestSaveConfigRoundTrip(t *testing.T) {
	cfg := NewTestConfig()
	cfg.Settings.Name = "uploads"

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Accept.Types, loaded.Accept.Types)
	assert.Equal(t, cfg.Settings.LabelText, loaded.Settings.LabelText)
	assert.Equal(t, "uploads", loaded.Settings.Name)
	assert.Equal(t, 1, loaded.WatchMode.Interval)
}

func TestAcceptList(t *testing.T) {
	cfg := NewTestConfig()
	assert.Equal(t, types.AcceptList{".png", "image/jpeg"}, cfg.AcceptList())
	assert.False(t, cfg.AcceptList().Empty())
	assert.True(t, New().AcceptList().Empty())
}
