// Package active tracks which icon pack is currently installed.
package active

import (
	"github.com/arthur-debert/iconswap/pkg/constants"
	"github.com/arthur-debert/iconswap/pkg/logging"
	"github.com/arthur-debert/iconswap/pkg/types"
)

// Tracker persists the active-pack identifier in a settings store.
// The identifier is either constants.OriginalPack or a pack's
// manifest-relative path. No validation is performed at write time; a
// recorded pack may no longer exist, which only surfaces as a stale
// checkmark in the listing.
type Tracker struct {
	store types.Store
}

// NewTracker creates a tracker over the given settings store.
func NewTracker(store types.Store) *Tracker {
	return &Tracker{store: store}
}

// Get returns the active pack identifier, defaulting to the original set.
func (t *Tracker) Get() string {
	if v, ok := t.store.Get(constants.ActivePackKey); ok && v != "" {
		return v
	}
	return constants.OriginalPack
}

// Set records identifier as the active pack.
func (t *Tracker) Set(identifier string) error {
	logger := logging.GetLogger("active")
	logger.Debug().Str("pack", identifier).Msg("Recording active pack")
	return t.store.Set(constants.ActivePackKey, identifier)
}
