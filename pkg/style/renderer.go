package style

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"

	"github.com/arthur-debert/iconswap/pkg/constants"
	"github.com/arthur-debert/iconswap/pkg/errors"
	"github.com/arthur-debert/iconswap/pkg/types"
)

// Renderer defines the interface for rendering various output types
type Renderer interface {
	RenderPackList(packs []types.PackDescriptor, activePack string) string
	RenderProgress(current, total int, name string) string
	RenderOutcome(outcome types.ApplyOutcome) string
	RenderError(err error) string
	RenderNotice(msg string) string
}

// NewRenderer picks the rich renderer on a TTY and the plain renderer
// otherwise. plain forces plain output regardless of the terminal.
func NewRenderer(plain bool) Renderer {
	if plain || !isatty.IsTerminal(os.Stdout.Fd()) {
		return &PlainRenderer{}
	}
	return &TerminalRenderer{}
}

// TerminalRenderer implements Renderer with rich terminal output
type TerminalRenderer struct{}

// RenderPackList renders the pack menu: the original set plus every
// validated pack, with a checkmark on the active identifier.
func (r *TerminalRenderer) RenderPackList(packs []types.PackDescriptor, activePack string) string {
	var result strings.Builder
	result.WriteString(pterm.Bold.Sprint("Icon Packs") + "\n\n")

	result.WriteString(packLine("Original Icons", constants.OriginalPack, activePack))
	for _, pack := range packs {
		result.WriteString(packLine(pack.DisplayName, pack.Path, activePack))
	}
	return strings.TrimRight(result.String(), "\n")
}

func packLine(name, id, activePack string) string {
	mark := "  "
	if id == activePack {
		mark = pterm.Success.MessageStyle.Sprint("✓ ")
	}
	if id == constants.OriginalPack {
		return fmt.Sprintf("%s%s\n", mark, pterm.Bold.Sprint(name))
	}
	return fmt.Sprintf("%s%s %s\n", mark, name, pterm.Gray(id))
}

// RenderProgress renders the per-icon progress line
func (r *TerminalRenderer) RenderProgress(current, total int, name string) string {
	return fmt.Sprintf("%s Downloading icon %d of %d: %s",
		pterm.Info.Prefix.Text,
		current,
		total,
		pterm.Bold.Sprint(name))
}

// RenderOutcome renders the final apply summary, keeping the cancelled,
// all-succeeded and partial cases visually distinct.
func (r *TerminalRenderer) RenderOutcome(outcome types.ApplyOutcome) string {
	if outcome.Cancelled {
		return fmt.Sprintf("%s %s", pterm.Warning.Prefix.Text,
			pterm.Warning.MessageStyle.Sprint("Download cancelled"))
	}
	if outcome.AllSucceeded() {
		return fmt.Sprintf("%s %s", pterm.Success.Prefix.Text,
			pterm.Success.MessageStyle.Sprintf("All %d icons installed", outcome.SuccessCount))
	}
	return fmt.Sprintf("%s %s", pterm.Warning.Prefix.Text,
		pterm.Warning.MessageStyle.Sprintf("%d icons installed, %d failed",
			outcome.SuccessCount, outcome.FailedCount))
}

// RenderError renders an error with its code when available
func (r *TerminalRenderer) RenderError(err error) string {
	var swapErr *errors.SwapError
	if stderrors.As(err, &swapErr) {
		return fmt.Sprintf("%s %s %s",
			pterm.Error.Prefix.Text,
			pterm.Error.MessageStyle.Sprint(string(swapErr.Code)),
			swapErr.Message)
	}
	return fmt.Sprintf("%s %s", pterm.Error.Prefix.Text, pterm.Error.MessageStyle.Sprint(err.Error()))
}

// RenderNotice renders an informational notice
func (r *TerminalRenderer) RenderNotice(msg string) string {
	return fmt.Sprintf("%s %s", pterm.Info.Prefix.Text, msg)
}

// PlainRenderer implements Renderer with plain text output (no styling)
type PlainRenderer struct{}

func (r *PlainRenderer) RenderPackList(packs []types.PackDescriptor, activePack string) string {
	var result strings.Builder
	result.WriteString("Icon Packs\n\n")
	result.WriteString(plainPackLine("Original Icons", constants.OriginalPack, activePack))
	for _, pack := range packs {
		result.WriteString(plainPackLine(pack.DisplayName, pack.Path, activePack))
	}
	return strings.TrimRight(result.String(), "\n")
}

func plainPackLine(name, id, activePack string) string {
	mark := "  "
	if id == activePack {
		mark = "* "
	}
	if id == constants.OriginalPack {
		return fmt.Sprintf("%s%s\n", mark, name)
	}
	return fmt.Sprintf("%s%s (%s)\n", mark, name, id)
}

func (r *PlainRenderer) RenderProgress(current, total int, name string) string {
	return fmt.Sprintf("Downloading icon %d of %d: %s", current, total, name)
}

func (r *PlainRenderer) RenderOutcome(outcome types.ApplyOutcome) string {
	if outcome.Cancelled {
		return "Download cancelled"
	}
	if outcome.AllSucceeded() {
		return fmt.Sprintf("All %d icons installed", outcome.SuccessCount)
	}
	return fmt.Sprintf("%d icons installed, %d failed", outcome.SuccessCount, outcome.FailedCount)
}

func (r *PlainRenderer) RenderError(err error) string {
	return fmt.Sprintf("Error: %s", err.Error())
}

func (r *PlainRenderer) RenderNotice(msg string) string {
	return msg
}
