package list_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/iconswap/pkg/commands/list"
	"github.com/arthur-debert/iconswap/pkg/constants"
	"github.com/arthur-debert/iconswap/pkg/testutil"
	"github.com/arthur-debert/iconswap/pkg/types"
)

func TestListPacks(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteMapping("packs/material.json", types.IconMapping{"home": "mdi-home"})
	env.WriteManifest([]types.PackDescriptor{
		{DisplayName: "Material", Path: "packs/material.json"},
	})

	result := list.ListPacks(list.ListPacksOptions{
		Paths:      env.Paths,
		FileSystem: env.FS,
		Store:      env.Store,
	})

	require.Len(t, result.Packs, 1)
	assert.Equal(t, "Material", result.Packs[0].DisplayName)
	assert.Equal(t, constants.OriginalPack, result.ActivePack)
}

func TestListPacks_ActiveMarksApplied(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteMapping("packs/material.json", types.IconMapping{"home": "mdi-home"})
	env.WriteManifest([]types.PackDescriptor{
		{DisplayName: "Material", Path: "packs/material.json"},
	})
	require.NoError(t, env.Store.Set(constants.ActivePackKey, "packs/material.json"))

	result := list.ListPacks(list.ListPacksOptions{
		Paths:      env.Paths,
		FileSystem: env.FS,
		Store:      env.Store,
	})

	assert.Equal(t, "packs/material.json", result.ActivePack)
}

func TestListPacks_NoManifest(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	result := list.ListPacks(list.ListPacksOptions{
		Paths:      env.Paths,
		FileSystem: env.FS,
		Store:      env.Store,
	})

	assert.Empty(t, result.Packs)
	assert.Equal(t, constants.OriginalPack, result.ActivePack)
}
