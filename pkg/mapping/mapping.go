// Package mapping loads a single pack's icon mapping file.
package mapping

import (
	"encoding/json"
	"os"

	"github.com/arthur-debert/iconswap/pkg/errors"
	"github.com/arthur-debert/iconswap/pkg/logging"
	"github.com/arthur-debert/iconswap/pkg/types"
)

// Load reads and parses the mapping file at path.
//
// A missing file and an unparseable file are distinct errors
// (ErrMappingNotFound vs ErrMappingParse) so callers can surface the right
// message. An empty mapping is returned as-is; emptiness is a terminal
// "nothing to do" condition for the caller, not a load error.
func Load(fs types.FS, path string) (types.IconMapping, error) {
	logger := logging.GetLogger("mapping")

	data, err := fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrMappingNotFound, "mapping file not found: %s", path)
		}
		return nil, errors.Wrapf(err, errors.ErrMappingNotFound, "failed to read mapping file %s", path)
	}

	var m types.IconMapping
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrapf(err, errors.ErrMappingParse, "failed to parse mapping file %s", path)
	}

	logger.Debug().Str("path", path).Int("icons", len(m)).Msg("Mapping loaded")
	return m, nil
}
