// Package pipeline implements the sequential icon download-and-install pass.
//
// The pass is a single-threaded loop over an ordered task list. Each
// iteration hits one checkpoint (progress notice + cancellation poll), then
// issues one blocking fetch and one file write. Cancellation is cooperative
// and observed only at checkpoints, never mid-fetch. Per-item failures are
// counted and the loop continues; only emptiness and cancellation terminate
// the pass early.
package pipeline

import (
	"context"
	"path/filepath"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/iconswap/pkg/active"
	"github.com/arthur-debert/iconswap/pkg/constants"
	"github.com/arthur-debert/iconswap/pkg/errors"
	"github.com/arthur-debert/iconswap/pkg/fetch"
	"github.com/arthur-debert/iconswap/pkg/logging"
	"github.com/arthur-debert/iconswap/pkg/types"
)

// State tracks where a download pass is in its lifecycle.
type State int

const (
	StateRunning State = iota
	StateCancelled
	StateCompleted
)

// Pipeline drives the apply workflow for one icon directory.
// A mutex serializes Apply calls: the icon directory is mutated by at most
// one in-flight pass at a time.
type Pipeline struct {
	fs       types.FS
	fetcher  types.Fetcher
	tracker  *active.Tracker
	iconsDir string
	apiBase  string
	color    string

	mu sync.Mutex
}

// New creates a pipeline installing into iconsDir, fetching from apiBase
// with the given fill color, and recording successful applies in tracker.
func New(fs types.FS, fetcher types.Fetcher, tracker *active.Tracker, iconsDir, apiBase, color string) *Pipeline {
	return &Pipeline{
		fs:       fs,
		fetcher:  fetcher,
		tracker:  tracker,
		iconsDir: iconsDir,
		apiBase:  apiBase,
		color:    color,
	}
}

// Apply downloads and installs every icon in mapping, reporting progress
// through sink.
//
// An empty mapping returns ErrMappingEmpty with no side effects. After a
// completed (not cancelled) pass with at least one success, packPath is
// recorded as the active pack; a fully failed or cancelled pass leaves the
// active pack untouched. Files written before a cancellation stay on disk.
func (p *Pipeline) Apply(ctx context.Context, mapping types.IconMapping, packPath string, sink types.ProgressSink) (types.ApplyOutcome, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if sink == nil {
		sink = noopSink{}
	}

	logger := logging.GetLogger("pipeline").With().
		Str("op_id", uuid.NewString()).
		Str("pack", packPath).
		Logger()

	tasks := materialize(mapping)
	if len(tasks) == 0 {
		return types.ApplyOutcome{}, errors.Newf(errors.ErrMappingEmpty, "pack %s maps no icons", packPath)
	}

	outcome := types.ApplyOutcome{Total: len(tasks)}
	state := StateRunning

	for i, task := range tasks {
		sink.Notify(i+1, len(tasks), task.LocalName)
		if sink.Cancelled() || ctx.Err() != nil {
			state = StateCancelled
			break
		}

		if err := p.installIcon(ctx, logger, task); err != nil {
			logger.Warn().Err(err).Str("icon", task.LocalName).Msg("Icon failed")
			outcome.FailedCount++
			continue
		}
		outcome.SuccessCount++
	}
	if state == StateRunning {
		state = StateCompleted
	}

	if state == StateCancelled {
		outcome.Cancelled = true
		logger.Info().Int("done", outcome.SuccessCount+outcome.FailedCount).
			Int("total", outcome.Total).Msg("Apply cancelled")
		return outcome, nil
	}

	if outcome.SuccessCount > 0 {
		if err := p.tracker.Set(packPath); err != nil {
			// The icons are installed; a failed bookkeeping write should
			// not turn the pass into a failure.
			logger.Warn().Err(err).Msg("Failed to record active pack")
		}
	}

	logger.Info().Int("ok", outcome.SuccessCount).Int("failed", outcome.FailedCount).
		Int("total", outcome.Total).Msg("Apply finished")
	return outcome, nil
}

// installIcon handles one task: derive the URL, fetch, write.
func (p *Pipeline) installIcon(ctx context.Context, logger zerolog.Logger, task types.DownloadTask) error {
	url, err := fetch.IconURL(p.apiBase, task.RemoteSpec, p.color)
	if err != nil {
		return err
	}

	logger.Debug().Str("icon", task.LocalName).Str("url", url).Msg("Fetching icon")
	body, err := p.fetcher.Fetch(ctx, url)
	if err != nil {
		return err
	}

	dest := filepath.Join(p.iconsDir, task.LocalName+constants.IconExt)
	if err := p.fs.WriteFile(dest, body, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", dest)
	}
	return nil
}

type noopSink struct{}

func (noopSink) Notify(current, total int, name string) {}
func (noopSink) Cancelled() bool                        { return false }

// materialize turns the mapping into the ordered task list. Go maps iterate
// in random order; sorting by local name pins the order so progress indices
// are stable across runs.
func materialize(mapping types.IconMapping) []types.DownloadTask {
	tasks := make([]types.DownloadTask, 0, len(mapping))
	for name, spec := range mapping {
		tasks = append(tasks, types.DownloadTask{LocalName: name, RemoteSpec: spec})
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].LocalName < tasks[j].LocalName })
	return tasks
}
