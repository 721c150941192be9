// Package backup snapshots the original icon set and restores it.
//
// The backup is taken exactly once, guarded by a sentinel marker file. The
// sentinel is written only after every icon copied cleanly, so an
// interrupted copy leaves no marker and the whole copy is retried on the
// next apply. Once the marker exists the snapshot is permanent: no later
// apply ever writes into the backup directory again.
package backup

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/iconswap/pkg/constants"
	"github.com/arthur-debert/iconswap/pkg/errors"
	"github.com/arthur-debert/iconswap/pkg/logging"
	"github.com/arthur-debert/iconswap/pkg/types"
)

// Ensure guarantees a one-time snapshot of iconsDir exists in backupDir.
// Returns the number of files copied; zero when the sentinel already exists
// or the icon directory holds no icons.
func Ensure(fs types.FS, iconsDir, backupDir string) (int, error) {
	logger := logging.GetLogger("backup")

	if HasBackup(fs, backupDir) {
		logger.Debug().Str("backup", backupDir).Msg("Backup sentinel present, skipping")
		return 0, nil
	}

	if err := fs.MkdirAll(backupDir, 0755); err != nil {
		return 0, errors.Wrapf(err, errors.ErrDirCreate, "failed to create backup directory %s", backupDir)
	}

	copied, err := copyIcons(fs, iconsDir, backupDir)
	if err != nil {
		return copied, err
	}

	// Sentinel goes last: a crash mid-copy must leave the backup retryable.
	sentinel := filepath.Join(backupDir, constants.BackupSentinel)
	if err := fs.WriteFile(sentinel, []byte{}, 0644); err != nil {
		return copied, errors.Wrapf(err, errors.ErrBackupCopy, "failed to write backup sentinel %s", sentinel)
	}

	logger.Info().Int("files", copied).Str("backup", backupDir).Msg("Original icon set backed up")
	return copied, nil
}

// Restore copies every backed-up icon back into iconsDir, overwriting.
// Returns ErrNoBackup when no completed backup exists. The backup itself is
// left intact for repeated restores.
func Restore(fs types.FS, backupDir, iconsDir string) (int, error) {
	logger := logging.GetLogger("backup")

	if !HasBackup(fs, backupDir) {
		return 0, errors.Newf(errors.ErrNoBackup, "no backup found in %s", backupDir)
	}

	if err := fs.MkdirAll(iconsDir, 0755); err != nil {
		return 0, errors.Wrapf(err, errors.ErrDirCreate, "failed to create icon directory %s", iconsDir)
	}

	restored, err := copyIcons(fs, backupDir, iconsDir)
	if err != nil {
		return restored, err
	}

	logger.Info().Int("files", restored).Str("icons", iconsDir).Msg("Original icon set restored")
	return restored, nil
}

// HasBackup reports whether the backup sentinel exists in backupDir.
func HasBackup(fs types.FS, backupDir string) bool {
	_, err := fs.Stat(filepath.Join(backupDir, constants.BackupSentinel))
	return err == nil
}

// copyIcons copies every icon file from src into dst, overwriting.
func copyIcons(fs types.FS, src, dst string) (int, error) {
	entries, err := fs.ReadDir(src)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, errors.Wrapf(err, errors.ErrBackupCopy, "failed to read directory %s", src)
	}

	copied := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), constants.IconExt) {
			continue
		}
		data, err := fs.ReadFile(filepath.Join(src, entry.Name()))
		if err != nil {
			return copied, errors.Wrapf(err, errors.ErrBackupCopy, "failed to read %s", entry.Name())
		}
		if err := fs.WriteFile(filepath.Join(dst, entry.Name()), data, 0644); err != nil {
			return copied, errors.Wrapf(err, errors.ErrBackupCopy, "failed to write %s", entry.Name())
		}
		copied++
	}
	return copied, nil
}
