// Package list implements the pack-listing command.
package list

import (
	"github.com/arthur-debert/iconswap/pkg/active"
	"github.com/arthur-debert/iconswap/pkg/catalog"
	"github.com/arthur-debert/iconswap/pkg/filesystem"
	"github.com/arthur-debert/iconswap/pkg/logging"
	"github.com/arthur-debert/iconswap/pkg/paths"
	"github.com/arthur-debert/iconswap/pkg/settings"
	"github.com/arthur-debert/iconswap/pkg/types"
)

// ListPacksOptions holds options for the list command
type ListPacksOptions struct {
	Paths      paths.Paths
	FileSystem types.FS    // Allow injecting a filesystem for testing
	Store      types.Store // Allow injecting a settings store for testing
}

// ListPacksResult is the outcome of listing packs
type ListPacksResult struct {
	Packs      []types.PackDescriptor
	ActivePack string
}

// ListPacks enumerates the validated packs and the active identifier.
// Listing never fails; a broken manifest yields an empty pack list.
func ListPacks(opts ListPacksOptions) *ListPacksResult {
	logger := logging.GetLogger("commands.list")

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

	packs := catalog.ListPacks(fs, p.ManifestPath(), p.PacksRoot())
	activePack := active.NewTracker(store).Get()

	logger.Debug().Int("packs", len(packs)).Str("active", activePack).Msg("Listed packs")
	return &ListPacksResult{
		Packs:      packs,
		ActivePack: activePack,
	}
}
