package config_test

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/require"

	"rspass/internal/config"
	"rspass/internal/domain"
)

func TestDataDirDefaultsToXDGDataHome(t *testing.T) {
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	xdg.Reload()

	d := config.NewDirs()
	require.Equal(t, filepath.Join(xdg.DataHome, "rspass"), d.DataDir())
}

func TestConfigDirDefaultsToXDGConfigHome(t *testing.T) {
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()

	d := config.NewDirs()
	require.Equal(t, filepath.Join(xdg.ConfigHome, "rspass"), d.ConfigDir())
}

func TestSetDataDirOverridesDefault(t *testing.T) {
	tmp := t.TempDir()

	d := config.NewDirs()
	require.NoError(t, d.SetDataDir(tmp))
	require.Equal(t, tmp, d.DataDir())
}

func TestSetDataDirTwiceFails(t *testing.T) {
	d := config.NewDirs()
	require.NoError(t, d.SetDataDir(t.TempDir()))

	err := d.SetDataDir(t.TempDir())
	require.Error(t, err)
	require.True(t, domain.IsKind(err, domain.KindConfigAlreadySet))
}

func TestSetDataDirAfterResolveFails(t *testing.T) {
	d := config.NewDirs()
	_ = d.DataDir()

	err := d.SetDataDir(t.TempDir())
	require.True(t, domain.IsKind(err, domain.KindConfigAlreadySet))
}

func TestSetConfigDirTwiceFails(t *testing.T) {
	d := config.NewDirs()
	require.NoError(t, d.SetConfigDir(t.TempDir()))

	err := d.SetConfigDir(t.TempDir())
	require.True(t, domain.IsKind(err, domain.KindConfigAlreadySet))
}

func TestDirsAreIndependent(t *testing.T) {
	tmp := t.TempDir()

	d := config.NewDirs()
	require.NoError(t, d.SetConfigDir(tmp))
	require.NotEqual(t, tmp, d.DataDir())
}
