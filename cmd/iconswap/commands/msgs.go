package commands

// Message constants
const (
	MsgRootShort = "Swap a UI's icon set for a remote icon pack"
	MsgRootLong  = `iconswap maps local icon names to icons from the Iconify catalog,
downloads each mapped icon, and installs it into the icon directory.

The original icon set is snapshotted once, before the first pack is
applied, and can always be brought back with 'iconswap restore'.`

	MsgListShort = "List available icon packs"
	MsgListLong  = `List the icon packs registered in the manifest, plus the built-in
"Original Icons" entry. The active pack is marked with a checkmark.

Manifest entries with missing fields or a missing mapping file are
skipped with a warning; they never break the rest of the listing.`

	MsgApplyShort   = "Download and install an icon pack"
	MsgApplyLong    = `Apply an icon pack: download every mapped icon and install it into
the icon directory, overwriting the current set.

The pack may be referenced by its manifest path or its display name.
Before the first ever apply, the current icons are backed up; the backup
is taken exactly once and preserved across packs.

Press Ctrl-C to cancel; icons already downloaded stay installed and the
active pack is left unchanged.`
	MsgApplyExample = `  # Apply by manifest path
  iconswap apply packs/material.json

  # Apply by display name
  iconswap apply "Material Design"`

	MsgRestoreShort = "Restore the original icon set"
	MsgRestoreLong  = `Copy the backed-up original icons over the installed set and mark
"original" as the active pack. The backup is kept, so restore can be
run any number of times.`

	MsgStatusShort = "Show the active pack and backup state"

	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagPlain    = "Disable styled output"
	MsgFlagIconsDir = "Override the icon installation directory"
	MsgFlagConfig   = "Config file (default is <config-dir>/iconswap.toml)"

	MsgNothingToDo = "Pack maps no icons, nothing to do"
	MsgNoBackup    = "No backup exists yet, nothing to restore"
	MsgRestored    = "Restored %d original icons"
)
