package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/strto/pkg/config"
	"github.com/dmitrymomot/strto/pkg/radix"
)

type limitsConfig struct {
	MaxConn  int                          `env:"STRTO_LIMITS_MAX_CONN"`
	Umask    uint16                       `env:"STRTO_LIMITS_UMASK"`
	Flags    uint8                        `env:"STRTO_LIMITS_FLAGS"`
	Offset   int8                         `env:"STRTO_LIMITS_OFFSET"`
	Salt     radix.Int[uint32, radix.Hex] `env:"STRTO_LIMITS_SALT"`
	Priority string                       `env:"STRTO_LIMITS_PRIORITY"`
}

var limitsKeys = []string{
	"STRTO_LIMITS_MAX_CONN",
	"STRTO_LIMITS_UMASK",
	"STRTO_LIMITS_FLAGS",
	"STRTO_LIMITS_OFFSET",
	"STRTO_LIMITS_SALT",
	"STRTO_LIMITS_PRIORITY",
}

func unsetLimits(t *testing.T) {
	t.Helper()
	for _, key := range limitsKeys {
		// Register restoration with t.Setenv, then drop the variable.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadEnv_File(t *testing.T) {
	unsetLimits(t)
	config.ResetCache()

	require.NoError(t, config.LoadEnv("testdata/.env.limits"))

	var cfg limitsConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, 1024, cfg.MaxConn)
	assert.Equal(t, uint16(0o022), cfg.Umask)
	assert.Equal(t, uint8(0b1011), cfg.Flags)
	assert.Equal(t, int8(-128), cfg.Offset)
	assert.Equal(t, uint32(0xdeadbeef), cfg.Salt.Get())
	assert.Equal(t, "file", cfg.Priority)
}

func TestLoadEnv_LaterFilesOverride(t *testing.T) {
	unsetLimits(t)
	config.ResetCache()

	require.NoError(t, config.LoadEnv("testdata/.env.limits", "testdata/.env.override"))

	var cfg limitsConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, 2048, cfg.MaxConn)
	assert.Equal(t, "override", cfg.Priority)
	assert.Equal(t, uint8(0b1011), cfg.Flags)
}

func TestLoadEnv_NonExistentPath(t *testing.T) {
	err := config.LoadEnv("testdata/non_existent_file.env")
	require.Error(t, err)
}

func TestMustLoadEnv(t *testing.T) {
	unsetLimits(t)

	assert.NotPanics(t, func() {
		config.MustLoadEnv("testdata/.env.limits")
	})
	assert.Panics(t, func() {
		config.MustLoadEnv("testdata/non_existent_file.env")
	})
}
