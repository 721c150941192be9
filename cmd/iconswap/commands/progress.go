package commands

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync/atomic"

	"github.com/arthur-debert/iconswap/pkg/style"
	"github.com/arthur-debert/iconswap/pkg/types"
)

// signalSink is the CLI's ProgressSink: it prints one progress line per
// icon and treats an interrupt signal as a cancellation request. The flag
// is only polled by the pipeline at checkpoint boundaries, so an in-flight
// fetch finishes before the run stops.
type signalSink struct {
	out       io.Writer
	renderer  style.Renderer
	cancelled atomic.Bool
	signals   chan os.Signal
	done      chan struct{}
}

var _ types.ProgressSink = (*signalSink)(nil)

func newSignalSink(out io.Writer, renderer style.Renderer) *signalSink {
	s := &signalSink{
		out:      out,
		renderer: renderer,
		signals:  make(chan os.Signal, 1),
		done:     make(chan struct{}),
	}
	signal.Notify(s.signals, os.Interrupt)
	go func() {
		select {
		case <-s.signals:
			s.cancelled.Store(true)
		case <-s.done:
		}
	}()
	return s
}

func (s *signalSink) Notify(current, total int, name string) {
	fmt.Fprintln(s.out, s.renderer.RenderProgress(current, total, name))
}

func (s *signalSink) Cancelled() bool {
	return s.cancelled.Load()
}

// Close releases the signal handler.
func (s *signalSink) Close() {
	signal.Stop(s.signals)
	close(s.done)
}
