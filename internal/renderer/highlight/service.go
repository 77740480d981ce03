package highlight

import (
	"sync"
	"sync/atomic"
)

// DefaultAsyncThreshold is the content size in bytes above which rendering
// moves off the calling thread.
const DefaultAsyncThreshold = 64 * 1024

// Result is the response to one highlight request.
type Result struct {
	ID     uint64
	Markup string
	Err    error
}

// Renderer produces pre-escaped markup for content in a given language.
type Renderer interface {
	Render(content, language string) (string, error)
}

// Service issues highlight requests and delivers non-stale results.
type Service struct {
	renderer  Renderer
	threshold int
	lastID    atomic.Uint64

	mu       sync.Mutex
	onResult func(Result)
}

// NewService creates a service delivering results to onResult. A threshold
// of zero or below uses DefaultAsyncThreshold.
func NewService(r Renderer, threshold int, onResult func(Result)) *Service {
	if threshold <= 0 {
		threshold = DefaultAsyncThreshold
	}
	return &Service{
		renderer:  r,
		threshold: threshold,
		onResult:  onResult,
	}
}

// Request issues a highlight request for content and returns its ID. Small
// content renders inline before Request returns; large content renders on
// a worker goroutine. Issuing a new request supersedes all earlier ones.
func (s *Service) Request(content, language string) uint64 {
	id := s.lastID.Add(1)

	if len(content) <= s.threshold {
		markup, err := s.renderer.Render(content, language)
		s.deliver(Result{ID: id, Markup: markup, Err: err})
		return id
	}

	go func() {
		markup, err := s.renderer.Render(content, language)
		s.deliver(Result{ID: id, Markup: markup, Err: err})
	}()
	return id
}

// LastID returns the identifier of the most recently issued request.
func (s *Service) LastID() uint64 {
	return s.lastID.Load()
}

// deliver forwards a result unless it has been superseded.
func (s *Service) deliver(res Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if res.ID != s.lastID.Load() {
		return // stale
	}
	if s.onResult != nil {
		s.onResult(res)
	}
}
