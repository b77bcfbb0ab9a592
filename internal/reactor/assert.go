package reactor

import "testing"

// AssertValue fires trigger until tick ticks have elapsed (trigger's
// own tick count is taken as tick 0 already elapsed, matching Build's
// eager tick-0 computation), then asserts r's update and value. It is
// exported from the package itself, not a _test.go helper, because
// the translator's tests need the same assertion as this package's own
// and may not import another package's _test.go files.
func AssertValue(t testing.TB, trigger *Trigger, r Reactor, tick int, wantUpdate Update, wantValue any) {
	t.Helper()
	for trigger.Tick() < tick {
		trigger.Fire()
	}
	if got := r.LastUpdate(); got != wantUpdate {
		t.Fatalf("tick %d: update = %s, want %s", tick, got, wantUpdate)
	}
	if got := r.Value(); got != wantValue {
		t.Fatalf("tick %d: value = %v, want %v", tick, got, wantValue)
	}
}
