package countdown

import (
	"fmt"
	"strconv"
	"sync"
	"time"
)

type State int

const (
	Running State = iota
	Expired
)

func (s State) String() string {
	if s == Expired {
		return "expired"
	}
	return "running"
}

// Snapshot is one observation of the remaining time, decomposed for
// display: hours/mins/secs zero-padded to two digits, days unpadded.
type Snapshot struct {
	State     State  `json:"-"`
	StateText string `json:"state"`
	Remaining int64  `json:"remainingSeconds"`
	Days      string `json:"days"`
	Hours     string `json:"hours"`
	Mins      string `json:"mins"`
	Secs      string `json:"secs"`
}

// Compute derives the snapshot for a deadline at the given instant. The
// remaining time is clamped at zero and never goes negative.
func Compute(deadline, now time.Time) Snapshot {
	remaining := int64(deadline.Sub(now) / time.Second)
	if remaining < 0 {
		remaining = 0
	}

	state := Running
	if remaining == 0 {
		state = Expired
	}

	return Snapshot{
		State:     state,
		StateText: state.String(),
		Remaining: remaining,
		Days:      strconv.FormatInt(remaining/86400, 10),
		Hours:     fmt.Sprintf("%02d", (remaining%86400)/3600),
		Mins:      fmt.Sprintf("%02d", (remaining%3600)/60),
		Secs:      fmt.Sprintf("%02d", remaining%60),
	}
}

// Timer ticks once per second against a fixed deadline and stops itself
// when the remaining time reaches zero. Expired is terminal: after the
// final snapshot is delivered no further callbacks happen.
type Timer struct {
	deadline time.Time
	interval time.Duration

	mu    sync.Mutex
	state State
	stop  chan struct{}
	once  sync.Once
}

func NewTimer(deadline time.Time) *Timer {
	return &Timer{
		deadline: deadline,
		interval: time.Second,
		stop:     make(chan struct{}),
	}
}

func (t *Timer) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Start delivers an immediate snapshot and then one per tick until the
// deadline passes or Stop is called. It blocks; run it in a goroutine.
func (t *Timer) Start(onTick func(Snapshot)) {
	if t.deliver(onTick) {
		return
	}

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-t.stop:
			return
		case <-ticker.C:
			if t.deliver(onTick) {
				return
			}
		}
	}
}

func (t *Timer) deliver(onTick func(Snapshot)) (done bool) {
	snap := Compute(t.deadline, time.Now())
	onTick(snap)
	if snap.State == Expired {
		t.mu.Lock()
		t.state = Expired
		t.mu.Unlock()
		return true
	}
	return false
}

// Stop cancels the tick loop. Safe to call more than once.
func (t *Timer) Stop() {
	t.once.Do(func() { close(t.stop) })
}
