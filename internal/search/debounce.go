package search

import (
	"sync"
	"time"

	"github.com/feral-file/ff-greeting-cards/internal/adapter"
	"github.com/feral-file/ff-greeting-cards/internal/domain"
)

// DefaultQuietPeriod is the debounce interval used when none is configured
const DefaultQuietPeriod = 300 * time.Millisecond

// Debouncer runs fn with the argument of the last call once calls stop arriving for the quiet period.
// Each call cancels the pending invocation and restarts the timer, so earlier calls of a burst
// never run.
type Debouncer[T any] struct {
	clock adapter.Clock
	quiet time.Duration
	fn    func(T)

	mu    sync.Mutex
	timer adapter.Timer
	seq   uint64 // identifies the only invocation still allowed to run

	runMu sync.Mutex // serializes fn
}

// NewDebouncer creates a debouncer that schedules fn through the clock
func NewDebouncer[T any](clock adapter.Clock, quiet time.Duration, fn func(T)) *Debouncer[T] {
	if quiet <= 0 {
		quiet = DefaultQuietPeriod
	}

	return &Debouncer[T]{
		clock: clock,
		quiet: quiet,
		fn:    fn,
	}
}

// Call schedules fn(arg) after the quiet period, replacing any pending invocation
func (d *Debouncer[T]) Call(arg T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}

	d.seq++
	seq := d.seq
	d.timer = d.clock.AfterFunc(d.quiet, func() {
		d.fire(seq, arg)
	})
}

// Cancel drops the pending invocation, if any, and reports whether there was one
func (d *Debouncer[T]) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	if d.timer == nil {
		return false
	}
	d.timer.Stop()
	d.timer = nil
	return true
}

// Pending reports whether an invocation is scheduled
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// fire runs fn unless the invocation was superseded after its timer had already fired.
// Invocations never overlap; one that waited for a slower predecessor and was superseded
// meanwhile is dropped.
func (d *Debouncer[T]) fire(seq uint64, arg T) {
	d.runMu.Lock()
	defer d.runMu.Unlock()

	d.mu.Lock()
	if seq != d.seq {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()

	d.fn(arg)
}

// Result is the outcome of one debounced search
type Result struct {
	Term     string                `json:"term"`
	Criteria domain.FilterCriteria `json:"criteria"`
	Records  []domain.TokenRecord  `json:"records"`
}

// SnapshotFunc returns the records currently on display
type SnapshotFunc func() []domain.TokenRecord

type searchRequest struct {
	term     string
	criteria domain.FilterCriteria
}

// DebouncedSearch runs Engine.Search only for the last input of a burst and hands the result
// to a consumer
type DebouncedSearch struct {
	debouncer *Debouncer[searchRequest]
}

// NewDebouncedSearch creates a debounced search over the records returned by source at execution time
func NewDebouncedSearch(engine *Engine, clock adapter.Clock, quiet time.Duration, source SnapshotFunc, consumer func(Result)) *DebouncedSearch {
	return &DebouncedSearch{
		debouncer: NewDebouncer(clock, quiet, func(req searchRequest) {
			records := engine.Search(source(), req.term, req.criteria)
			consumer(Result{
				Term:     req.term,
				Criteria: req.criteria.Normalize().WithSearchTerm(req.term),
				Records:  records,
			})
		}),
	}
}

// Search schedules a search, replacing any pending one
func (s *DebouncedSearch) Search(term string, criteria domain.FilterCriteria) {
	s.debouncer.Call(searchRequest{term: term, criteria: criteria})
}

// Cancel drops the pending search
func (s *DebouncedSearch) Cancel() bool {
	return s.debouncer.Cancel()
}

// Pending reports whether a search is scheduled
func (s *DebouncedSearch) Pending() bool {
	return s.debouncer.Pending()
}
