package mapping_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/iconswap/pkg/errors"
	"github.com/arthur-debert/iconswap/pkg/mapping"
	"github.com/arthur-debert/iconswap/pkg/testutil"
	"github.com/arthur-debert/iconswap/pkg/types"
)

func TestLoad(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteMapping("packs/material.json", types.IconMapping{
		"home":   "mdi-home",
		"search": "mdi-magnify",
	})

	m, err := mapping.Load(env.FS, filepath.Join(env.Paths.PacksRoot(), "packs/material.json"))

	require.NoError(t, err)
	assert.Equal(t, "mdi-home", m["home"])
	assert.Equal(t, "mdi-magnify", m["search"])
}

func TestLoad_MissingFile(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	_, err := mapping.Load(env.FS, filepath.Join(env.Paths.PacksRoot(), "packs/gone.json"))

	require.Error(t, err)
	assert.Equal(t, errors.ErrMappingNotFound, errors.GetCode(err))
}

func TestLoad_ParseFailure(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteMappingRaw("packs/bad.json", []byte(`{"home": `))

	_, err := mapping.Load(env.FS, filepath.Join(env.Paths.PacksRoot(), "packs/bad.json"))

	require.Error(t, err)
	// Parse failure is distinct from file-missing
	assert.Equal(t, errors.ErrMappingParse, errors.GetCode(err))
}

func TestLoad_EmptyMapping(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteMapping("packs/empty.json", types.IconMapping{})

	m, err := mapping.Load(env.FS, filepath.Join(env.Paths.PacksRoot(), "packs/empty.json"))

	// Emptiness is the caller's terminal condition, not a load error
	require.NoError(t, err)
	assert.Empty(t, m)
}
