package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "portal.db", c.DatabasePath)
	assert.True(t, c.SessionWithEmail)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "portal.db", cfg.DatabasePath)
	assert.True(t, cfg.SessionWithEmail)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin", "-d", "custom.db", "-session-email=false"}

	cfg := LoadConfig()

	assert.Equal(t, "custom.db", cfg.DatabasePath)
	assert.False(t, cfg.SessionWithEmail)
}
