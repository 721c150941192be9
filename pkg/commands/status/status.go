// Package status implements the status command.
package status

import (
	"strings"

	"github.com/arthur-debert/iconswap/pkg/active"
	"github.com/arthur-debert/iconswap/pkg/backup"
	"github.com/arthur-debert/iconswap/pkg/catalog"
	"github.com/arthur-debert/iconswap/pkg/constants"
	"github.com/arthur-debert/iconswap/pkg/filesystem"
	"github.com/arthur-debert/iconswap/pkg/paths"
	"github.com/arthur-debert/iconswap/pkg/settings"
	"github.com/arthur-debert/iconswap/pkg/types"
)

// StatusOptions holds options for the status command
type StatusOptions struct {
	Paths      paths.Paths
	FileSystem types.FS    // Allow injecting a filesystem for testing
	Store      types.Store // Allow injecting a settings store for testing
}

// StatusResult summarizes the installation state
type StatusResult struct {
	ActivePack     string
	HasBackup      bool
	InstalledIcons int
	PackCount      int
}

// Status reports the active pack, backup presence, and counts.
func Status(opts StatusOptions) *StatusResult {
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

	result := &StatusResult{
		ActivePack: active.NewTracker(store).Get(),
		HasBackup:  backup.HasBackup(fs, p.BackupDir()),
		PackCount:  len(catalog.ListPacks(fs, p.ManifestPath(), p.PacksRoot())),
	}

	if entries, err := fs.ReadDir(p.IconsDir()); err == nil {
		for _, entry := range entries {
			if !entry.IsDir() && strings.HasSuffix(entry.Name(), constants.IconExt) {
				result.InstalledIcons++
			}
		}
	}

	return result
}
