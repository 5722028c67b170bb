package cfg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// saveConfig snapshots the global configuration and restores it when the
// test finishes, since Load mutates it in place.
func saveConfig(t *testing.T) {
	t.Helper()
	saved := *Config
	t.Cleanup(func() { *Config = saved })
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, 1024, Config.Parser.CacheSize)
	assert.Equal(t, 4, Config.Parser.ValidatorPoolSize)
	assert.False(t, Config.Parser.Validate)
	assert.Equal(t, "console", Config.Logging.Format)
	assert.False(t, Config.Prometheus.Enabled)
	assert.Equal(t, 9090, Config.Prometheus.Port)
	assert.NoError(t, Validate())
}

func TestLoad_FromFile(t *testing.T) {
	saveConfig(t)

	path := filepath.Join(t.TempDir(), "routeguard.toml")
	content := `
[parser]
cache_size = 256
validate = true
validator_pool_size = 2

[logging]
verbose = true
format = "json"

[prometheus]
enabled = true
port = 9200
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	require.NoError(t, Load(path))

	assert.Equal(t, 256, Config.Parser.CacheSize)
	assert.True(t, Config.Parser.Validate)
	assert.Equal(t, 2, Config.Parser.ValidatorPoolSize)
	assert.True(t, Config.Logging.Verbose)
	assert.Equal(t, "json", Config.Logging.Format)
	assert.True(t, Config.Prometheus.Enabled)
	assert.Equal(t, 9200, Config.Prometheus.Port)
	assert.NoError(t, Validate())
}

func TestLoad_MissingFileKeepsDefaults(t *testing.T) {
	saveConfig(t)

	require.NoError(t, Load(filepath.Join(t.TempDir(), "nope.toml")))
	assert.Equal(t, 1024, Config.Parser.CacheSize)
}

func TestValidate_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func()
	}{
		{"negative cache size", func() { Config.Parser.CacheSize = -1 }},
		{"zero validator pool", func() { Config.Parser.ValidatorPoolSize = 0 }},
		{"unknown log format", func() { Config.Logging.Format = "xml" }},
		{"bad prometheus port", func() {
			Config.Prometheus.Enabled = true
			Config.Prometheus.Port = 0
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			saveConfig(t)
			tt.mutate()
			assert.Error(t, Validate())
		})
	}
}
