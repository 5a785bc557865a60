package dispatch

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueue_DrainRunsInFIFOOrder(t *testing.T) {
	q := NewQueue()
	var got []int
	for i := 0; i < 5; i++ {
		i := i
		q.Enqueue(func() { got = append(got, i) })
	}

	ran := q.Drain()

	assert.Equal(t, 5, ran)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
}

func TestQueue_DrainEmpty(t *testing.T) {
	q := NewQueue()
	assert.Equal(t, 0, q.Drain())
}

func TestQueue_NilFuncIgnored(t *testing.T) {
	q := NewQueue()
	q.Enqueue(nil)
	assert.Equal(t, 0, q.Drain())
}

func TestQueue_ReadySignalCoalesces(t *testing.T) {
	q := NewQueue()
	q.Enqueue(func() {})
	q.Enqueue(func() {})
	q.Enqueue(func() {})

	// Several enqueues, one wakeup, one drain picks up all of them.
	<-q.Ready()
	assert.Equal(t, 3, q.Drain())

	select {
	case <-q.Ready():
		t.Fatal("no further signal expected after drain")
	default:
	}
}

func TestQueue_ConcurrentEnqueue(t *testing.T) {
	// The hotkey listener fires from its own goroutine; duplicates from
	// rapid triggers must all survive.
	q := NewQueue()
	var mu sync.Mutex
	count := 0

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q.Enqueue(func() {
				mu.Lock()
				count++
				mu.Unlock()
			})
		}()
	}
	wg.Wait()

	total := 0
	for total < 50 {
		n := q.Drain()
		if n == 0 {
			break
		}
		total += n
	}

	assert.Equal(t, 50, total)
	assert.Equal(t, 50, count)
}

func TestQueue_EnqueueDuringDrainIsKeptForNextDrain(t *testing.T) {
	q := NewQueue()
	second := false
	q.Enqueue(func() {
		q.Enqueue(func() { second = true })
	})

	assert.Equal(t, 1, q.Drain())
	assert.False(t, second, "re-entrant enqueue waits for the next drain")
	assert.Equal(t, 1, q.Drain())
	assert.True(t, second)
}
