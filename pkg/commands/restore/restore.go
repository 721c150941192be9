// Package restore implements the backup-restoration command.
package restore

import (
	"github.com/arthur-debert/iconswap/pkg/active"
	"github.com/arthur-debert/iconswap/pkg/backup"
	"github.com/arthur-debert/iconswap/pkg/constants"
	"github.com/arthur-debert/iconswap/pkg/filesystem"
	"github.com/arthur-debert/iconswap/pkg/logging"
	"github.com/arthur-debert/iconswap/pkg/paths"
	"github.com/arthur-debert/iconswap/pkg/settings"
	"github.com/arthur-debert/iconswap/pkg/types"
)

// RestoreOptions holds options for the restore command
type RestoreOptions struct {
	Paths      paths.Paths
	FileSystem types.FS    // Allow injecting a filesystem for testing
	Store      types.Store // Allow injecting a settings store for testing
}

// RestoreResult is the outcome of a restore
type RestoreResult struct {
	RestoredCount int
}

// Restore copies the backed-up original icons over the installed set and
// marks the original pack active. Returns ErrNoBackup when no completed
// backup exists; in that case no files are touched.
func Restore(opts RestoreOptions) (*RestoreResult, error) {
	logger := logging.GetLogger("commands.restore")
	logger.Info().Msg("Restoring original icons")

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}
	p := opts.Paths
	if p == nil {
		p = paths.New("")
	}
	store := opts.Store
	if store == nil {
		store = settings.NewFileStore(p.SettingsPath())
	}

	restored, err := backup.Restore(fs, p.BackupDir(), p.IconsDir())
	if err != nil {
		return nil, err
	}

	if err := active.NewTracker(store).Set(constants.OriginalPack); err != nil {
		logger.Warn().Err(err).Msg("Failed to record active pack")
	}

	return &RestoreResult{RestoredCount: restored}, nil
}
