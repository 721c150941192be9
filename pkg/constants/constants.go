// Package constants provides shared constants used across the iconswap codebase.
// This package has no dependencies to avoid circular imports.
package constants

const (
	// IconExt is the file extension of installed and backed-up icons.
	// Only files with this extension are copied by backup and restore.
	IconExt = ".svg"

	// BackupSentinel is the marker file written into the backup directory
	// after the copy loop completes. Its presence means the original icon
	// set has been snapshotted and must never be overwritten.
	BackupSentinel = "backup_done"

	// ManifestFile is the name of the pack manifest inside the config dir.
	ManifestFile = "packs.json"

	// SettingsFile is the name of the persisted settings store.
	SettingsFile = "settings.toml"

	// ActivePackKey is the settings key holding the active pack identifier.
	ActivePackKey = "active_pack"

	// OriginalPack is the active-pack identifier for the stock icon set.
	OriginalPack = "original"

	// DefaultAPIBase is the Iconify API endpoint icons are fetched from.
	DefaultAPIBase = "https://api.iconify.design"

	// DefaultIconColor forces a flat fill color on fetched icons.
	// Kept URL-encoded since it goes straight into the query string.
	DefaultIconColor = "%23000000"

	// UserAgent identifies iconswap to the icon API.
	UserAgent = "iconswap/1.0 (+https://github.com/arthur-debert/iconswap)"
)
