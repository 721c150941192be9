package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/arthur-debert/iconswap/pkg/types"
)

// MemoryStore is an in-memory types.Store for tests.
type MemoryStore struct {
	mu      sync.Mutex
	values  map[string]string
	Flushes int
}

var _ types.Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *MemoryStore) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Flushes++
	return nil
}

// FakeFetcher is a scripted types.Fetcher that records every requested URL.
// Responses are matched by URL substring; unmatched URLs succeed with
// DefaultBody unless FailUnmatched is set.
type FakeFetcher struct {
	mu sync.Mutex

	// Responses maps a URL substring to a canned response.
	Responses map[string]FakeResponse

	// DefaultBody is returned for unmatched URLs.
	DefaultBody []byte

	// FailUnmatched makes unmatched URLs fail instead.
	FailUnmatched bool

	// Requested holds every fetched URL in call order.
	Requested []string
}

// FakeResponse is one canned fetch result.
type FakeResponse struct {
	Body []byte
	Err  error
}

var _ types.Fetcher = (*FakeFetcher)(nil)

// NewFakeFetcher creates a fetcher that answers every URL with body.
func NewFakeFetcher(body string) *FakeFetcher {
	return &FakeFetcher{
		Responses:   make(map[string]FakeResponse),
		DefaultBody: []byte(body),
	}
}

// Respond scripts a response for URLs containing substr.
func (f *FakeFetcher) Respond(substr string, body []byte, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Responses[substr] = FakeResponse{Body: body, Err: err}
}

func (f *FakeFetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Requested = append(f.Requested, url)
	for substr, resp := range f.Responses {
		if strings.Contains(url, substr) {
			return resp.Body, resp.Err
		}
	}
	if f.FailUnmatched {
		return nil, fmt.Errorf("no scripted response for %s", url)
	}
	return f.DefaultBody, nil
}

// RecordingSink is a types.ProgressSink that records notices and can be
// scripted to request cancellation before a given 1-based item index.
type RecordingSink struct {
	mu sync.Mutex

	// Notices holds every progress line in "i/N name" form.
	Notices []string

	// CancelBefore requests cancellation at the checkpoint for this
	// 1-based index. Zero means never cancel.
	CancelBefore int

	current int
}

var _ types.ProgressSink = (*RecordingSink)(nil)

func (s *RecordingSink) Notify(current, total int, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = current
	s.Notices = append(s.Notices, fmt.Sprintf("%d/%d %s", current, total, name))
}

func (s *RecordingSink) Cancelled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.CancelBefore > 0 && s.current >= s.CancelBefore
}
