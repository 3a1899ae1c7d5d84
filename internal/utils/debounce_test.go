package utils_test

import (
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/summarium/internal/testutil"
	"github.com/MKhiriev/summarium/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	at  time.Duration
	arg string
}

func TestDebounce_BurstCollapsesToLastArgument(t *testing.T) {
	clock := testutil.FixedClock()
	start := clock.Now()

	var calls []recorded
	save := utils.Debounce(time.Second, clock, func(arg string) {
		calls = append(calls, recorded{at: clock.Now().Sub(start), arg: arg})
	})

	save.Call("a")
	clock.Advance(100 * time.Millisecond)
	save.Call("b")
	clock.Advance(100 * time.Millisecond)
	save.Call("c")
	clock.Advance(700 * time.Millisecond)
	save.Call("d")

	clock.Advance(999 * time.Millisecond)
	assert.Empty(t, calls, "nothing fires before the quiet period ends")

	clock.Advance(time.Millisecond)
	require.Len(t, calls, 1)
	assert.Equal(t, recorded{at: 1900 * time.Millisecond, arg: "d"}, calls[0])

	clock.Advance(10 * time.Second)
	assert.Len(t, calls, 1, "exactly one call per burst")
}

func TestDebounce_SeparateBurstsFireSeparately(t *testing.T) {
	clock := testutil.FixedClock()

	var got []int
	d := utils.Debounce(500*time.Millisecond, clock, func(n int) { got = append(got, n) })

	d.Call(1)
	clock.Advance(time.Second)
	d.Call(2)
	d.Call(3)
	clock.Advance(time.Second)

	assert.Equal(t, []int{1, 3}, got)
}

func TestDebouncer_Flush(t *testing.T) {
	clock := testutil.FixedClock()
	d := utils.NewDebouncer(time.Second, clock)

	assert.False(t, d.Flush(), "nothing pending")

	count := 0
	d.Call(func() { count++ })
	assert.True(t, d.Pending())

	assert.True(t, d.Flush())
	assert.Equal(t, 1, count)
	assert.False(t, d.Pending())

	clock.Advance(5 * time.Second)
	assert.Equal(t, 1, count, "flushed call must not fire again")
	assert.Zero(t, clock.PendingTimers())
}

func TestDebouncer_Cancel(t *testing.T) {
	clock := testutil.FixedClock()
	d := utils.NewDebouncer(time.Second, clock)

	fired := false
	d.Call(func() { fired = true })
	d.Cancel()

	clock.Advance(5 * time.Second)
	assert.False(t, fired)
	assert.False(t, d.Pending())
}

func TestDebouncer_CallFromCallback(t *testing.T) {
	clock := testutil.FixedClock()
	d := utils.NewDebouncer(time.Second, clock)

	runs := 0
	var again func()
	again = func() {
		runs++
		if runs < 3 {
			d.Call(again)
		}
	}
	d.Call(again)

	clock.Advance(10 * time.Second)
	assert.Equal(t, 3, runs)
}

func TestDebouncer_RealClock(t *testing.T) {
	d := utils.NewDebouncer(20*time.Millisecond, nil)

	var mu sync.Mutex
	var last int
	done := make(chan struct{})

	for i := 1; i <= 5; i++ {
		n := i
		d.Call(func() {
			mu.Lock()
			last = n
			mu.Unlock()
			close(done)
		})
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("debounced call never fired")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 5, last)
}
