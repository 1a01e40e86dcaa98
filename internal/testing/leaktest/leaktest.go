// Package leaktest catches goroutines that outlive the code under test.
package leaktest

import (
	"bytes"
	"runtime"
	"runtime/pprof"
	"testing"
	"time"
)

// Grace is how long a goroutine may take to wind down after the test body returns
var Grace = time.Second

// Baseline records the current goroutine count and registers a cleanup that
// fails the test if more than slack extra goroutines are still alive after Grace.
// The failure message carries a dump of every live goroutine.
func Baseline(t testing.TB, slack int) {
	t.Helper()

	before := stableCount()
	t.Cleanup(func() {
		if waitUntil(before+slack, Grace) {
			return
		}
		t.Errorf("goroutine leak: %d running, expected at most %d\n%s",
			runtime.NumGoroutine(), before+slack, dump())
	})
}

// Run executes fn and fails the test if it leaves goroutines behind
func Run(t testing.TB, fn func()) {
	t.Helper()

	before := stableCount()
	fn()
	if !waitUntil(before, Grace) {
		t.Errorf("goroutine leak after fn: %d running, expected at most %d\n%s",
			runtime.NumGoroutine(), before, dump())
	}
}

// stableCount lets goroutines from earlier tests finish before sampling
func stableCount() int {
	n := runtime.NumGoroutine()
	for i := 0; i < 5; i++ {
		time.Sleep(5 * time.Millisecond)
		m := runtime.NumGoroutine()
		if m == n {
			break
		}
		n = m
	}
	return n
}

func waitUntil(target int, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for runtime.NumGoroutine() > target {
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(10 * time.Millisecond)
	}
	return true
}

func dump() string {
	var buf bytes.Buffer
	_ = pprof.Lookup("goroutine").WriteTo(&buf, 1)
	return buf.String()
}
