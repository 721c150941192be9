// Package apply implements the pack-application command: catalog lookup,
// mapping load, one-time backup, then the sequential download pass.
package apply

import (
	"context"
	"path/filepath"

	"github.com/arthur-debert/iconswap/pkg/active"
	"github.com/arthur-debert/iconswap/pkg/backup"
	"github.com/arthur-debert/iconswap/pkg/catalog"
	"github.com/arthur-debert/iconswap/pkg/config"
	"github.com/arthur-debert/iconswap/pkg/errors"
	"github.com/arthur-debert/iconswap/pkg/fetch"
	"github.com/arthur-debert/iconswap/pkg/filesystem"
	"github.com/arthur-debert/iconswap/pkg/logging"
	"github.com/arthur-debert/iconswap/pkg/mapping"
	"github.com/arthur-debert/iconswap/pkg/paths"
	"github.com/arthur-debert/iconswap/pkg/pipeline"
	"github.com/arthur-debert/iconswap/pkg/settings"
	"github.com/arthur-debert/iconswap/pkg/types"
)

// ApplyPackOptions holds options for the apply command
type ApplyPackOptions struct {
	// PackRef is a pack's manifest path or display name
	PackRef string

	Config   *config.Config
	Paths    paths.Paths
	Progress types.ProgressSink

	FileSystem types.FS      // Allow injecting a filesystem for testing
	Fetcher    types.Fetcher // Allow injecting a transport for testing
	Store      types.Store   // Allow injecting a settings store for testing
}

// ApplyPackResult is the outcome of applying a pack
type ApplyPackResult struct {
	Pack    types.PackDescriptor
	Outcome types.ApplyOutcome

	// BackedUp is the number of files copied by the one-time backup;
	// zero when the backup already existed.
	BackedUp int
}

// ApplyPack runs the full apply workflow for the referenced pack.
//
// Catalog and mapping failures abort before any mutation. The backup is
// guaranteed before the first icon write. Per-icon failures never abort
// the pass; cancellation is surfaced through the outcome, not as an error.
func ApplyPack(ctx context.Context, opts ApplyPackOptions) (*ApplyPackResult, error) {
	logger := logging.GetLogger("commands.apply")
	logger.Info().Str("pack", opts.PackRef).Msg("Applying icon pack")

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}
	p := opts.Paths
	if p == nil {
		p = paths.New(opts.Config.IconsDir)
	}
	store := opts.Store
	if store == nil {
		store = settings.NewFileStore(p.SettingsPath())
	}
	fetcher := opts.Fetcher
	if fetcher == nil {
		fetcher = fetch.NewHTTPFetcher(opts.Config.HTTPTimeout)
	}

	packs := catalog.ListPacks(fs, p.ManifestPath(), p.PacksRoot())
	pack := catalog.FindPack(packs, opts.PackRef)
	if pack == nil {
		return nil, errors.Newf(errors.ErrPackNotFound, "no pack named %q", opts.PackRef)
	}

	iconMapping, err := mapping.Load(fs, filepath.Join(p.PacksRoot(), pack.Path))
	if err != nil {
		return nil, err
	}
	if len(iconMapping) == 0 {
		return nil, errors.Newf(errors.ErrMappingEmpty, "pack %s maps no icons", pack.Path)
	}

	if err := fs.MkdirAll(p.IconsDir(), 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirCreate, "failed to create icon directory %s", p.IconsDir())
	}

	backedUp, err := backup.Ensure(fs, p.IconsDir(), p.BackupDir())
	if err != nil {
		return nil, err
	}

	tracker := active.NewTracker(store)
	pipe := pipeline.New(fs, fetcher, tracker, p.IconsDir(), opts.Config.APIBase, opts.Config.IconColor)
	outcome, err := pipe.Apply(ctx, iconMapping, pack.Path, opts.Progress)
	if err != nil {
		return nil, err
	}

	return &ApplyPackResult{
		Pack:     *pack,
		Outcome:  outcome,
		BackedUp: backedUp,
	}, nil
}
