package paths_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/iconswap/pkg/paths"
)

func TestNew_EnvOverrides(t *testing.T) {
	t.Setenv(paths.EnvConfigDir, "/tmp/cfg")
	t.Setenv(paths.EnvDataDir, "/tmp/data")
	t.Setenv(paths.EnvIconsDir, "/tmp/icons")

	p := paths.New("")

	assert.Equal(t, "/tmp/cfg", p.ConfigDir())
	assert.Equal(t, "/tmp/data", p.DataDir())
	assert.Equal(t, "/tmp/icons", p.IconsDir())
	assert.Equal(t, "/tmp/cfg", p.PacksRoot())
	assert.Equal(t, filepath.Join("/tmp/cfg", "packs.json"), p.ManifestPath())
	assert.Equal(t, filepath.Join("/tmp/data", "settings.toml"), p.SettingsPath())
	assert.Equal(t, filepath.Join("/tmp/data", "backup"), p.BackupDir())
}

func TestNew_ExplicitIconsDirWinsOverEnv(t *testing.T) {
	t.Setenv(paths.EnvIconsDir, "/tmp/env-icons")

	p := paths.New("/tmp/flag-icons")

	assert.Equal(t, "/tmp/flag-icons", p.IconsDir())
}

func TestNew_IconsDirDefaultsUnderData(t *testing.T) {
	t.Setenv(paths.EnvDataDir, "/tmp/data")
	t.Setenv(paths.EnvIconsDir, "")

	p := paths.New("")

	assert.Equal(t, filepath.Join("/tmp/data", "icons"), p.IconsDir())
}
