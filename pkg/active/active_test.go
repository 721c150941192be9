package active_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/iconswap/pkg/active"
	"github.com/arthur-debert/iconswap/pkg/testutil"
)

func TestTracker_DefaultsToOriginal(t *testing.T) {
	tracker := active.NewTracker(testutil.NewMemoryStore())

	assert.Equal(t, "original", tracker.Get())
}

func TestTracker_SetAndGet(t *testing.T) {
	tracker := active.NewTracker(testutil.NewMemoryStore())

	require.NoError(t, tracker.Set("packs/material.json"))
	assert.Equal(t, "packs/material.json", tracker.Get())

	// No validation at write time; stale identifiers are accepted
	require.NoError(t, tracker.Set("packs/deleted-later.json"))
	assert.Equal(t, "packs/deleted-later.json", tracker.Get())
}
