// Package testutil provides isolated test environments and fake
// collaborators for exercising the apply/restore workflow without a real
// network or home directory.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/iconswap/pkg/config"
	"github.com/arthur-debert/iconswap/pkg/filesystem"
	"github.com/arthur-debert/iconswap/pkg/paths"
	"github.com/arthur-debert/iconswap/pkg/types"
)

// TestEnvironment provides isolated directories and wired dependencies
type TestEnvironment struct {
	ConfigDir string
	DataDir   string
	IconsDir  string

	FS     types.FS
	Paths  paths.Paths
	Store  *MemoryStore
	Config *config.Config

	t *testing.T
}

// NewTestEnvironment creates an isolated environment under t.TempDir and
// points the ICONSWAP_* environment variables at it.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root := t.TempDir()
	env := &TestEnvironment{
		ConfigDir: filepath.Join(root, "config"),
		DataDir:   filepath.Join(root, "data"),
		IconsDir:  filepath.Join(root, "icons"),
		FS:        filesystem.NewOS(),
		Store:     NewMemoryStore(),
		t:         t,
	}

	for _, dir := range []string{env.ConfigDir, env.DataDir, env.IconsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("failed to create %s: %v", dir, err)
		}
	}

	t.Setenv(paths.EnvConfigDir, env.ConfigDir)
	t.Setenv(paths.EnvDataDir, env.DataDir)
	t.Setenv(paths.EnvIconsDir, env.IconsDir)

	env.Paths = paths.New(env.IconsDir)

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	env.Config = cfg

	return env
}

// WriteManifest writes the pack manifest with the given entries.
func (e *TestEnvironment) WriteManifest(entries []types.PackDescriptor) {
	e.t.Helper()
	data, err := json.Marshal(entries)
	if err != nil {
		e.t.Fatalf("failed to marshal manifest: %v", err)
	}
	e.WriteManifestRaw(data)
}

// WriteManifestRaw writes raw manifest bytes, for malformed-input tests.
func (e *TestEnvironment) WriteManifestRaw(data []byte) {
	e.t.Helper()
	if err := os.WriteFile(e.Paths.ManifestPath(), data, 0644); err != nil {
		e.t.Fatalf("failed to write manifest: %v", err)
	}
}

// WriteMapping writes a pack mapping file at the manifest-relative path.
func (e *TestEnvironment) WriteMapping(relPath string, m types.IconMapping) {
	e.t.Helper()
	data, err := json.Marshal(m)
	if err != nil {
		e.t.Fatalf("failed to marshal mapping: %v", err)
	}
	e.WriteMappingRaw(relPath, data)
}

// WriteMappingRaw writes raw mapping bytes at the manifest-relative path.
func (e *TestEnvironment) WriteMappingRaw(relPath string, data []byte) {
	e.t.Helper()
	path := filepath.Join(e.Paths.PacksRoot(), relPath)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		e.t.Fatalf("failed to create mapping dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		e.t.Fatalf("failed to write mapping: %v", err)
	}
}

// WriteIcon installs an icon file with the given content.
func (e *TestEnvironment) WriteIcon(name, content string) {
	e.t.Helper()
	path := filepath.Join(e.IconsDir, name+".svg")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.t.Fatalf("failed to write icon %s: %v", name, err)
	}
}

// ReadIcon returns the content of an installed icon, or "" when absent.
func (e *TestEnvironment) ReadIcon(name string) string {
	e.t.Helper()
	data, err := os.ReadFile(filepath.Join(e.IconsDir, name+".svg"))
	if err != nil {
		return ""
	}
	return string(data)
}

// ReadBackupIcon returns the content of a backed-up icon, or "" when absent.
func (e *TestEnvironment) ReadBackupIcon(name string) string {
	e.t.Helper()
	data, err := os.ReadFile(filepath.Join(e.Paths.BackupDir(), name+".svg"))
	if err != nil {
		return ""
	}
	return string(data)
}
