package types

import (
	"context"
	"io/fs"
)

// FS abstracts filesystem operations for testing
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Other operations
	Remove(name string) error
	RemoveAll(path string) error
}

// Fetcher retrieves the raw bytes behind a URL. Implementations block until
// the transfer completes or fails; the pipeline never issues two fetches
// concurrently.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// ProgressSink receives per-item progress notices during a download pass and
// carries the user's cancellation request back to the pipeline. Cancelled is
// polled once per item, at the checkpoint before the fetch is issued.
type ProgressSink interface {
	Notify(current, total int, name string)
	Cancelled() bool
}

// Store is a minimal persisted key-value settings store.
// Values load lazily on first access; Flush persists pending writes.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Flush() error
}
