package search_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/feral-file/ff-greeting-cards/internal/domain"
	"github.com/feral-file/ff-greeting-cards/internal/search"
)

func TestDebouncer_RunsLastCallAfterQuietPeriod(t *testing.T) {
	clock := newFakeClock(testNow)
	var calls []string
	var firedAt []time.Time
	d := search.NewDebouncer(clock, 300*time.Millisecond, func(s string) {
		calls = append(calls, s)
		firedAt = append(firedAt, clock.Now())
	})

	d.Call("a")
	clock.Advance(50 * time.Millisecond)
	d.Call("ab")
	clock.Advance(50 * time.Millisecond)
	d.Call("abc")
	assert.True(t, d.Pending())

	clock.Advance(299 * time.Millisecond)
	assert.Empty(t, calls)

	clock.Advance(time.Millisecond)
	require.Equal(t, []string{"abc"}, calls)
	assert.Equal(t, testNow.Add(400*time.Millisecond), firedAt[0])
	assert.False(t, d.Pending())

	clock.Advance(time.Second)
	assert.Len(t, calls, 1)
}

func TestDebouncer_SeparateBurstsRunSeparately(t *testing.T) {
	clock := newFakeClock(testNow)
	var calls []int
	d := search.NewDebouncer(clock, 100*time.Millisecond, func(n int) { calls = append(calls, n) })

	d.Call(1)
	clock.Advance(100 * time.Millisecond)
	d.Call(2)
	clock.Advance(100 * time.Millisecond)

	assert.Equal(t, []int{1, 2}, calls)
}

func TestDebouncer_Cancel(t *testing.T) {
	clock := newFakeClock(testNow)
	var calls []int
	d := search.NewDebouncer(clock, 100*time.Millisecond, func(n int) { calls = append(calls, n) })

	assert.False(t, d.Cancel())

	d.Call(1)
	assert.True(t, d.Cancel())
	clock.Advance(time.Second)
	assert.Empty(t, calls)
}

func TestDebouncer_DefaultQuietPeriod(t *testing.T) {
	clock := newFakeClock(testNow)
	var calls []int
	d := search.NewDebouncer(clock, 0, func(n int) { calls = append(calls, n) })

	d.Call(1)
	clock.Advance(search.DefaultQuietPeriod - time.Millisecond)
	assert.Empty(t, calls)
	clock.Advance(time.Millisecond)
	assert.Equal(t, []int{1}, calls)
}

func TestDebouncer_SupersededFiredCallbackIsDiscarded(t *testing.T) {
	clock := newFakeClock(testNow)
	var calls []int
	var d *search.Debouncer[int]
	d = search.NewDebouncer(clock, 100*time.Millisecond, func(n int) {
		calls = append(calls, n)
	})

	// both timers fire in the same Advance; the newer call lands after the timer for 1
	// has fired but before its callback runs
	clock.AfterFunc(100*time.Millisecond, func() { d.Call(2) })
	d.Call(1)
	clock.Advance(100 * time.Millisecond)
	assert.Empty(t, calls)

	clock.Advance(100 * time.Millisecond)
	assert.Equal(t, []int{2}, calls)
}

func TestDebouncer_InvocationsDoNotOverlap(t *testing.T) {
	clock := newFakeClock(testNow)

	var (
		mu       sync.Mutex
		calls    []int
		inFlight atomic.Int32
		overlap  atomic.Bool
	)
	release := make(chan struct{})
	started := make(chan struct{})
	d := search.NewDebouncer(clock, 100*time.Millisecond, func(n int) {
		if inFlight.Add(1) > 1 {
			overlap.Store(true)
		}
		defer inFlight.Add(-1)

		mu.Lock()
		calls = append(calls, n)
		mu.Unlock()

		if n == 1 {
			close(started)
			<-release
		}
	})
	recorded := func() []int {
		mu.Lock()
		defer mu.Unlock()
		return append([]int(nil), calls...)
	}

	// the first burst's consumer is still busy when the second burst fires
	d.Call(1)
	firstDone := make(chan struct{})
	go func() {
		defer close(firstDone)
		clock.Advance(100 * time.Millisecond)
	}()
	<-started

	d.Call(2)
	secondDone := make(chan struct{})
	go func() {
		defer close(secondDone)
		clock.Advance(100 * time.Millisecond)
	}()

	require.Eventually(t, func() bool {
		return clock.Now().Equal(testNow.Add(200 * time.Millisecond))
	}, time.Second, time.Millisecond)
	assert.Never(t, func() bool { return len(recorded()) > 1 }, 50*time.Millisecond, 5*time.Millisecond)

	// a third burst supersedes the second one while it waits for the first consumer
	d.Call(3)
	close(release)
	<-firstDone
	<-secondDone
	assert.Equal(t, []int{1}, recorded())

	clock.Advance(100 * time.Millisecond)
	assert.Equal(t, []int{1, 3}, recorded())
	assert.False(t, overlap.Load())
}

func TestDebouncedSearch(t *testing.T) {
	clock := newFakeClock(testNow)
	engine := search.NewEngine(language.English, clock)
	records := []domain.TokenRecord{
		named(1, "Happy Holi"),
		named(2, "Holiday cheer"),
		named(3, "Eid Mubarak"),
	}

	var results []search.Result
	ds := search.NewDebouncedSearch(engine, clock, 300*time.Millisecond,
		func() []domain.TokenRecord { return records },
		func(r search.Result) { results = append(results, r) },
	)

	criteria := domain.DefaultCriteria()
	criteria.SortBy = domain.SortKeyName
	criteria.SortOrder = domain.SortOrderAsc

	ds.Search("h", criteria)
	clock.Advance(50 * time.Millisecond)
	ds.Search("ho", criteria)
	clock.Advance(50 * time.Millisecond)
	ds.Search("hol", criteria)
	clock.Advance(300 * time.Millisecond)

	require.Len(t, results, 1)
	assert.Equal(t, "hol", results[0].Term)
	assert.Equal(t, "hol", results[0].Criteria.SearchTerm)
	assert.Equal(t, []uint64{1, 2}, tokenIDs(results[0].Records))
	assert.False(t, ds.Pending())
}

func TestDebouncedSearch_ReadsSourceAtExecution(t *testing.T) {
	clock := newFakeClock(testNow)
	engine := search.NewEngine(language.English, clock)
	records := []domain.TokenRecord{named(1, "old")}

	var results []search.Result
	ds := search.NewDebouncedSearch(engine, clock, 100*time.Millisecond,
		func() []domain.TokenRecord { return records },
		func(r search.Result) { results = append(results, r) },
	)

	ds.Search("", domain.DefaultCriteria())
	records = []domain.TokenRecord{named(2, "new")}
	clock.Advance(100 * time.Millisecond)

	require.Len(t, results, 1)
	assert.Equal(t, []uint64{2}, tokenIDs(results[0].Records))

	ds.Search("x", domain.DefaultCriteria())
	assert.True(t, ds.Cancel())
	clock.Advance(time.Second)
	assert.Len(t, results, 1)
}
