package timeclient

import (
	"testing"
	"time"

	"sparkcalc/sparkos/kernel"
	timesvc "sparkcalc/sparkos/services/time"
)

func startService(t *testing.T, now func() time.Time) (*kernel.Kernel, kernel.Capability) {
	t.Helper()
	k := kernel.New()
	ep := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	k.AddTask(timesvc.New(now, ep.Restrict(kernel.RightRecv)))
	return k, ep.Restrict(kernel.RightSend)
}

func TestNow(t *testing.T) {
	zone := time.FixedZone("BRT", -3*60*60)
	fixed := time.Date(2024, 3, 9, 14, 5, 7, 0, zone)
	k, timeCap := startService(t, func() time.Time { return fixed })

	c := New(timeCap)
	got, err := c.Now(kernel.NewTestContext(k, 1))
	if err != nil {
		t.Fatalf("Now: %v", err)
	}
	if !got.Equal(fixed) {
		t.Fatalf("Now=%v, want %v", got, fixed)
	}
	if _, off := got.Zone(); off != -3*60*60 {
		t.Fatalf("offset=%d", off)
	}
}

func TestSleep(t *testing.T) {
	k, timeCap := startService(t, nil)
	c := New(timeCap)

	done := make(chan error, 1)
	go func() { done <- c.Sleep(kernel.NewTestContext(k, 1), 5) }()

	var tick uint64
	deadline := time.After(2 * time.Second)
	for {
		select {
		case err := <-done:
			if err != nil {
				t.Fatalf("Sleep: %v", err)
			}
			if tick < 5 {
				t.Fatalf("woke at tick %d, want >= 5", tick)
			}
			return
		case <-deadline:
			t.Fatal("Sleep did not return")
		case <-time.After(time.Millisecond):
			tick++
			k.TickTo(tick)
		}
	}
}

func TestSleepZeroWakesImmediately(t *testing.T) {
	k, timeCap := startService(t, nil)
	c := New(timeCap)
	if err := c.Sleep(kernel.NewTestContext(k, 1), 0); err != nil {
		t.Fatalf("Sleep(0): %v", err)
	}
}

func TestMissingCapability(t *testing.T) {
	k := kernel.New()
	c := New(kernel.Capability{})
	if _, err := c.Now(kernel.NewTestContext(k, 1)); err == nil {
		t.Fatal("expected error without capability")
	}
}
