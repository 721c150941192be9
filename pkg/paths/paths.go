// Package paths provides centralized path handling for iconswap.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/iconswap/pkg/constants"
)

// Environment variable names
const (
	// EnvIconsDir overrides the icon installation directory
	EnvIconsDir = "ICONSWAP_ICONS_DIR"

	// EnvConfigDir overrides the XDG config directory for iconswap
	EnvConfigDir = "ICONSWAP_CONFIG_DIR"

	// EnvDataDir overrides the XDG data directory for iconswap
	EnvDataDir = "ICONSWAP_DATA_DIR"
)

// Directory and file names under the iconswap roots.
// These define iconswap's on-disk layout and are not user-configurable.
const (
	// AppDirName is the directory name for iconswap-specific files
	AppDirName = "iconswap"

	// IconsDirName is the subdirectory icons are installed into
	IconsDirName = "icons"

	// BackupDirName is the subdirectory holding the one-time backup
	BackupDirName = "backup"
)

// Paths provides centralized path management for iconswap
type Paths interface {
	// ConfigDir returns the directory holding the manifest and pack files
	ConfigDir() string

	// DataDir returns the persistent data directory
	DataDir() string

	// IconsDir returns the directory icons are installed into
	IconsDir() string

	// BackupDir returns the one-time backup directory
	BackupDir() string

	// PacksRoot returns the root that manifest pack paths resolve against
	PacksRoot() string

	// ManifestPath returns the full path of the pack manifest
	ManifestPath() string

	// SettingsPath returns the full path of the settings store
	SettingsPath() string
}

type osPaths struct {
	configDir string
	dataDir   string
	iconsDir  string
}

// New creates a Paths instance. iconsDir overrides the default icon
// directory when non-empty; the ICONSWAP_* environment variables override
// the XDG defaults for the config and data roots.
func New(iconsDir string) Paths {
	p := &osPaths{}

	if dir := os.Getenv(EnvConfigDir); dir != "" {
		p.configDir = dir
	} else {
		p.configDir = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	if dir := os.Getenv(EnvDataDir); dir != "" {
		p.dataDir = dir
	} else {
		p.dataDir = filepath.Join(xdg.DataHome, AppDirName)
	}

	switch {
	case iconsDir != "":
		p.iconsDir = iconsDir
	case os.Getenv(EnvIconsDir) != "":
		p.iconsDir = os.Getenv(EnvIconsDir)
	default:
		p.iconsDir = filepath.Join(p.dataDir, IconsDirName)
	}

	return p
}

func (p *osPaths) ConfigDir() string {
	return p.configDir
}

func (p *osPaths) DataDir() string {
	return p.dataDir
}

func (p *osPaths) IconsDir() string {
	return p.iconsDir
}

func (p *osPaths) BackupDir() string {
	return filepath.Join(p.dataDir, BackupDirName)
}

func (p *osPaths) PacksRoot() string {
	return p.configDir
}

func (p *osPaths) ManifestPath() string {
	return filepath.Join(p.configDir, constants.ManifestFile)
}

func (p *osPaths) SettingsPath() string {
	return filepath.Join(p.dataDir, constants.SettingsFile)
}
