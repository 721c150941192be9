// Package catalog loads the pack manifest and enumerates installable packs.
package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/arthur-debert/iconswap/pkg/logging"
	"github.com/arthur-debert/iconswap/pkg/types"
)

// ListPacks reads the manifest at manifestPath and returns every valid pack
// descriptor, in manifest order.
//
// Listing never fails: a missing or unparseable manifest yields an empty
// list with a warning. Entries missing a field, or whose mapping file does
// not exist under packsRoot, are skipped individually with a warning; they
// never abort the rest of the listing. Duplicate paths are kept as-is.
func ListPacks(fs types.FS, manifestPath, packsRoot string) []types.PackDescriptor {
	logger := logging.GetLogger("catalog")

	data, err := fs.ReadFile(manifestPath)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn().Str("path", manifestPath).Msg("Pack manifest not found")
		} else {
			logger.Warn().Err(err).Str("path", manifestPath).Msg("Failed to read pack manifest")
		}
		return nil
	}

	var entries []types.PackDescriptor
	if err := json.Unmarshal(data, &entries); err != nil {
		logger.Warn().Err(err).Str("path", manifestPath).Msg("Failed to parse pack manifest")
		return nil
	}

	packs := make([]types.PackDescriptor, 0, len(entries))
	for i, entry := range entries {
		if entry.DisplayName == "" || entry.Path == "" {
			logger.Warn().Int("index", i).Msg("Skipping manifest entry with missing display_name or path")
			continue
		}
		mappingPath := filepath.Join(packsRoot, entry.Path)
		if _, err := fs.Stat(mappingPath); err != nil {
			logger.Warn().Int("index", i).Str("pack", entry.DisplayName).
				Str("mapping", mappingPath).Msg("Skipping manifest entry with missing mapping file")
			continue
		}
		packs = append(packs, entry)
	}

	logger.Debug().Int("valid", len(packs)).Int("total", len(entries)).Msg("Pack manifest loaded")
	return packs
}

// FindPack resolves ref against the listing, matching first on path and
// then on display name. Returns nil when no pack matches.
func FindPack(packs []types.PackDescriptor, ref string) *types.PackDescriptor {
	for i := range packs {
		if packs[i].Path == ref {
			return &packs[i]
		}
	}
	for i := range packs {
		if packs[i].DisplayName == ref {
			return &packs[i]
		}
	}
	return nil
}
