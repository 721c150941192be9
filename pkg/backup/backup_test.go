// pkg/backup/backup_test.go
// TEST TYPE: Business Logic
// DEPENDENCIES: Isolated temp filesystem
// PURPOSE: Test one-time backup semantics and restore

package backup_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/iconswap/pkg/backup"
	"github.com/arthur-debert/iconswap/pkg/constants"
	"github.com/arthur-debert/iconswap/pkg/errors"
	"github.com/arthur-debert/iconswap/pkg/testutil"
)

func TestEnsure_CopiesIconsAndWritesSentinel(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteIcon("home", "<svg>home</svg>")
	env.WriteIcon("search", "<svg>search</svg>")

	copied, err := backup.Ensure(env.FS, env.IconsDir, env.Paths.BackupDir())

	require.NoError(t, err)
	assert.Equal(t, 2, copied)
	assert.Equal(t, "<svg>home</svg>", env.ReadBackupIcon("home"))
	assert.True(t, backup.HasBackup(env.FS, env.Paths.BackupDir()))
}

func TestEnsure_SecondCallIsNoOp(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteIcon("home", "<svg>original</svg>")

	_, err := backup.Ensure(env.FS, env.IconsDir, env.Paths.BackupDir())
	require.NoError(t, err)

	// Mutate the installed icon; a second Ensure must not re-copy it
	env.WriteIcon("home", "<svg>modified</svg>")

	copied, err := backup.Ensure(env.FS, env.IconsDir, env.Paths.BackupDir())
	require.NoError(t, err)
	assert.Equal(t, 0, copied)
	assert.Equal(t, "<svg>original</svg>", env.ReadBackupIcon("home"),
		"backup must remain the first-ever-seen icon set")
}

func TestEnsure_InterruptedCopyIsRetried(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteIcon("home", "<svg>home</svg>")

	// Simulate a crash mid-copy: backup dir populated but no sentinel
	require.NoError(t, os.MkdirAll(env.Paths.BackupDir(), 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(env.Paths.BackupDir(), "stale.svg"), []byte("<svg>stale</svg>"), 0644))

	copied, err := backup.Ensure(env.FS, env.IconsDir, env.Paths.BackupDir())

	require.NoError(t, err)
	assert.Equal(t, 1, copied, "missing sentinel means the copy runs again")
	assert.True(t, backup.HasBackup(env.FS, env.Paths.BackupDir()))
}

func TestEnsure_IgnoresNonIconFiles(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteIcon("home", "<svg>home</svg>")
	require.NoError(t, os.WriteFile(filepath.Join(env.IconsDir, "notes.txt"), []byte("x"), 0644))

	copied, err := backup.Ensure(env.FS, env.IconsDir, env.Paths.BackupDir())

	require.NoError(t, err)
	assert.Equal(t, 1, copied)
	_, err = os.Stat(filepath.Join(env.Paths.BackupDir(), "notes.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestRestore_WithoutBackup(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	_, err := backup.Restore(env.FS, env.Paths.BackupDir(), env.IconsDir)

	require.Error(t, err)
	assert.Equal(t, errors.ErrNoBackup, errors.GetCode(err))
}

func TestRestore_CopiesBackAndKeepsBackup(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteIcon("home", "<svg>original</svg>")

	_, err := backup.Ensure(env.FS, env.IconsDir, env.Paths.BackupDir())
	require.NoError(t, err)

	// A pack overwrote the icon since
	env.WriteIcon("home", "<svg>pack</svg>")

	restored, err := backup.Restore(env.FS, env.Paths.BackupDir(), env.IconsDir)

	require.NoError(t, err)
	assert.Equal(t, 1, restored)
	assert.Equal(t, "<svg>original</svg>", env.ReadIcon("home"))

	// Backup survives for repeated restores
	assert.True(t, backup.HasBackup(env.FS, env.Paths.BackupDir()))
	assert.Equal(t, "<svg>original</svg>", env.ReadBackupIcon("home"))
}

func TestSentinelName(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteIcon("home", "<svg>home</svg>")

	_, err := backup.Ensure(env.FS, env.IconsDir, env.Paths.BackupDir())
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(env.Paths.BackupDir(), constants.BackupSentinel))
	assert.NoError(t, statErr)
}
