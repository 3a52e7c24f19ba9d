/*package device schedules data-parallel kernels over index ranges on a
CPU worker pool and exposes completion events so that launches can be
ordered against each other.
*/
package device

import (
	"runtime"
)

// NumCores is the number of worker goroutines used per kernel launch.
var NumCores = runtime.NumCPU()

// DefaultGroupSize is the work-group size used when a launch does not
// request one.
const DefaultGroupSize = 1 << 10

// Kernel is a function run over the half-open index range [lo, hi).
// Kernels must only touch state owned by their own indices: the
// scheduler provides no locking.
type Kernel func(lo, hi int)

// Event is the completion handle of a launch.
type Event struct {
	done chan struct{}
}

// Wait blocks until the launch behind the event has completed.
func (e *Event) Wait() { <-e.done }

// WaitAll blocks until every given event has completed. Nil events are
// treated as already complete.
func WaitAll(evts ...*Event) {
	for _, e := range evts {
		if e != nil {
			e.Wait()
		}
	}
}

// Launch runs kern over the index range [0, n), split into work groups
// of at most groupSize indices, after every event in deps has
// completed. Work groups are spread across NumCores worker goroutines.
// A groupSize below 1 selects DefaultGroupSize.
//
// Launch returns immediately; the returned event completes once every
// index has been processed.
func Launch(n, groupSize int, deps []*Event, kern Kernel) *Event {
	e := &Event{done: make(chan struct{})}
	if groupSize < 1 {
		groupSize = DefaultGroupSize
	}

	go func() {
		defer close(e.done)
		WaitAll(deps...)
		run(n, groupSize, kern)
	}()
	return e
}

// run fans the index range out over workers and blocks until all of
// them have drained it.
func run(n, groupSize int, kern Kernel) {
	if n <= 0 {
		return
	}

	groups := (n + groupSize - 1) / groupSize
	workers := NumCores
	if workers > groups {
		workers = groups
	}
	if workers < 1 {
		workers = 1
	}

	out := make(chan int, workers)
	for id := 0; id < workers; id++ {
		go func(id int) {
			for gr := id; gr < groups; gr += workers {
				lo := gr * groupSize
				hi := lo + groupSize
				if hi > n {
					hi = n
				}
				kern(lo, hi)
			}
			out <- id
		}(id)
	}
	for i := 0; i < workers; i++ {
		<-out
	}
}
