package device

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLaunchCoversRange(t *testing.T) {
	ns := []int{0, 1, 7, 1000, 1<<10 + 1}
	groupSizes := []int{1, 3, 1 << 10, 0}

	for _, n := range ns {
		for _, groupSize := range groupSizes {
			hits := make([]int32, n)
			evt := Launch(n, groupSize, nil, func(lo, hi int) {
				for i := lo; i < hi; i++ {
					atomic.AddInt32(&hits[i], 1)
				}
			})
			evt.Wait()

			for i := range hits {
				if hits[i] != 1 {
					t.Fatalf(
						"n=%d groupSize=%d: index %d hit %d times",
						n, groupSize, i, hits[i],
					)
				}
			}
		}
	}
}

func TestLaunchWaitsForDeps(t *testing.T) {
	var stamp int64

	first := Launch(1, 1, nil, func(lo, hi int) {
		time.Sleep(10 * time.Millisecond)
		atomic.StoreInt64(&stamp, 1)
	})

	second := Launch(1, 1, []*Event{first}, func(lo, hi int) {
		assert.Equal(t, int64(1), atomic.LoadInt64(&stamp),
			"dependent kernel ran before its prerequisite finished")
	})
	second.Wait()
}

func TestWaitAll(t *testing.T) {
	var count int32
	evts := make([]*Event, 4)
	for i := range evts {
		evts[i] = Launch(100, 10, nil, func(lo, hi int) {
			atomic.AddInt32(&count, int32(hi-lo))
		})
	}
	// Nil events count as complete.
	evts = append(evts, nil)

	WaitAll(evts...)
	assert.Equal(t, int32(400), count)
}

func TestLaunchEmpty(t *testing.T) {
	ran := false
	evt := Launch(0, 8, nil, func(lo, hi int) { ran = true })
	evt.Wait()
	assert.False(t, ran)
}
