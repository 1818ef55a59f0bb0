package deferred

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncer_RapidCalls_OnlyLastRuns(t *testing.T) {
	var called, last int32
	d := NewDebouncer(40 * time.Millisecond)

	for i := 1; i <= 5; i++ {
		v := int32(i)
		d.Debounce(func() {
			atomic.StoreInt32(&last, v)
			atomic.AddInt32(&called, 1)
		})
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(150 * time.Millisecond)

	if atomic.LoadInt32(&called) != 1 {
		t.Fatalf("expected 1 call, got %d", called)
	}
	if atomic.LoadInt32(&last) != 5 {
		t.Fatalf("expected last value 5, got %d", last)
	}
}

func TestDebouncer_Cancel(t *testing.T) {
	var called int32
	d := NewDebouncer(30 * time.Millisecond)

	d.Debounce(func() { atomic.AddInt32(&called, 1) })
	d.Cancel()

	time.Sleep(80 * time.Millisecond)
	if atomic.LoadInt32(&called) != 0 {
		t.Fatalf("expected cancelled call, got %d", called)
	}
}

func TestDebouncer_Immediate_CancelsPending(t *testing.T) {
	var pending, now int32
	d := NewDebouncer(30 * time.Millisecond)

	d.Debounce(func() { atomic.AddInt32(&pending, 1) })
	d.Immediate(func() { atomic.AddInt32(&now, 1) })

	time.Sleep(80 * time.Millisecond)
	if atomic.LoadInt32(&now) != 1 || atomic.LoadInt32(&pending) != 0 {
		t.Fatalf("expected immediate=1 pending=0, got %d %d", now, pending)
	}
}

func TestThrottler_DropsWhileActive(t *testing.T) {
	var called int32
	th := NewThrottler(50 * time.Millisecond)

	if !th.Do(func() { atomic.AddInt32(&called, 1) }) {
		t.Fatalf("first call should run")
	}
	if th.Do(func() { atomic.AddInt32(&called, 1) }) {
		t.Fatalf("second call inside window should be dropped")
	}

	time.Sleep(100 * time.Millisecond)

	if !th.Do(func() { atomic.AddInt32(&called, 1) }) {
		t.Fatalf("call after window should run")
	}
	if atomic.LoadInt32(&called) != 2 {
		t.Fatalf("expected 2 calls, got %d", called)
	}
}

func TestThrottler_Reset(t *testing.T) {
	th := NewThrottler(time.Hour)
	th.Do(func() {})
	th.Reset()
	if !th.Do(func() {}) {
		t.Fatalf("expected run after reset")
	}
}
