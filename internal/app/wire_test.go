package app_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"rspass/internal/app"
)

func TestNewWireAppliesOverrides(t *testing.T) {
	data := t.TempDir()
	cfgDir := filepath.Join(t.TempDir(), "rspass")

	wire, err := app.NewWire(app.Config{DataDir: data, ConfigDir: cfgDir})
	require.NoError(t, err)

	require.Equal(t, data, wire.Dirs.DataDir())
	require.Equal(t, cfgDir, wire.Dirs.ConfigDir())
	require.NotNil(t, wire.Keys)
	require.NotNil(t, wire.Ledger)
	require.NotNil(t, wire.Store)
	require.NotNil(t, wire.Log)
}

func TestNewWireDefaultsAreUsable(t *testing.T) {
	wire, err := app.NewWire(app.Config{})
	require.NoError(t, err)
	require.NotEmpty(t, wire.Dirs.DataDir())
	require.NotEmpty(t, wire.Dirs.ConfigDir())
}
