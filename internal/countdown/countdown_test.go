package countdown

import (
	"testing"
	"time"
)

func TestComputeDecomposition(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		deadline  time.Time
		state     State
		remaining int64
		days      string
		hours     string
		mins      string
		secs      string
	}{
		{"ninety seconds", now.Add(90 * time.Second), Running, 90, "0", "00", "01", "30"},
		{"two days", now.Add(48*time.Hour + 3*time.Minute + 5*time.Second), Running, 172985, "2", "00", "03", "05"},
		{"at deadline", now, Expired, 0, "0", "00", "00", "00"},
		{"past deadline", now.Add(-time.Hour), Expired, 0, "0", "00", "00", "00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			snap := Compute(tc.deadline, now)
			if snap.State != tc.state {
				t.Fatalf("expected state %v got %v", tc.state, snap.State)
			}
			if snap.Remaining != tc.remaining {
				t.Fatalf("expected remaining %d got %d", tc.remaining, snap.Remaining)
			}
			if snap.Days != tc.days || snap.Hours != tc.hours || snap.Mins != tc.mins || snap.Secs != tc.secs {
				t.Fatalf("expected %s/%s/%s/%s got %s/%s/%s/%s",
					tc.days, tc.hours, tc.mins, tc.secs,
					snap.Days, snap.Hours, snap.Mins, snap.Secs)
			}
		})
	}
}

func TestComputeNeverNegative(t *testing.T) {
	now := time.Now()
	for i := 0; i < 95; i++ {
		snap := Compute(now.Add(90*time.Second), now.Add(time.Duration(i)*time.Second))
		if snap.Remaining < 0 {
			t.Fatalf("tick %d: remaining went negative: %d", i, snap.Remaining)
		}
	}
}

func TestTimerExpiredDeadlineIsTerminal(t *testing.T) {
	timer := NewTimer(time.Now().Add(-time.Minute))
	done := make(chan Snapshot, 1)

	go timer.Start(func(s Snapshot) { done <- s })

	select {
	case snap := <-done:
		if snap.State != Expired {
			t.Fatalf("expected immediate expiry, got %v", snap.State)
		}
	case <-time.After(time.Second):
		t.Fatal("timer did not deliver the terminal snapshot")
	}

	if timer.State() != Expired {
		t.Fatalf("expected terminal state, got %v", timer.State())
	}
}

func TestTimerTicksDownAndStops(t *testing.T) {
	timer := NewTimer(time.Now().Add(1500 * time.Millisecond))
	snaps := make(chan Snapshot, 8)
	finished := make(chan struct{})

	go func() {
		timer.Start(func(s Snapshot) { snaps <- s })
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(4 * time.Second):
		t.Fatal("timer did not terminate after the deadline passed")
	}
	close(snaps)

	var last Snapshot
	count := 0
	for s := range snaps {
		last = s
		count++
	}
	if count == 0 {
		t.Fatal("expected at least the immediate snapshot")
	}
	if last.State != Expired || last.Remaining != 0 {
		t.Fatalf("final snapshot must be expired at zero, got %+v", last)
	}
}

func TestTimerStop(t *testing.T) {
	timer := NewTimer(time.Now().Add(time.Hour))
	finished := make(chan struct{})

	go func() {
		timer.Start(func(Snapshot) {})
		close(finished)
	}()

	timer.Stop()
	timer.Stop() // idempotent

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("timer did not stop on request")
	}
}
