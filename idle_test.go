package talkie

import (
	"testing"
	"time"
)

func TestIdlePoser_WaitsForCountdown(t *testing.T) {
	var chosen int
	p := newIdlePoser("rest", time.Second, func() idleAction {
		chosen++
		return idleAction{pose: "blink", hold: 100 * time.Millisecond, next: 2 * time.Second}
	})

	p.update(999 * time.Millisecond)
	if chosen != 0 || p.pose != "rest" {
		t.Fatalf("idle action before the countdown ran out: pose=%q", p.pose)
	}
	p.update(time.Millisecond)
	if chosen != 1 || p.pose != "blink" {
		t.Fatalf("countdown reached zero without an idle action: pose=%q", p.pose)
	}
}

func TestIdlePoser_RevertsAfterHold(t *testing.T) {
	p := newIdlePoser("rest", 0, func() idleAction {
		return idleAction{pose: "look", hold: 300 * time.Millisecond, next: time.Second}
	})
	p.update(10 * time.Millisecond)
	if p.pose != "look" {
		t.Fatalf("pose = %q, want look", p.pose)
	}
	p.update(200 * time.Millisecond)
	if p.pose != "look" {
		t.Fatalf("pose reverted early")
	}
	p.update(100 * time.Millisecond)
	if p.pose != "rest" {
		t.Fatalf("pose = %q after hold, want rest", p.pose)
	}

	// The next countdown only starts once the pose is back at rest.
	p.update(999 * time.Millisecond)
	if p.pose != "rest" {
		t.Fatal("next idle action came early")
	}
	p.update(time.Millisecond)
	if p.pose != "look" {
		t.Errorf("pose = %q, want the second idle action", p.pose)
	}
}

func TestIdlePoser_SetHoldsUntilNextAction(t *testing.T) {
	p := newIdlePoser("rest", time.Second, func() idleAction {
		return idleAction{pose: "idle", hold: time.Second, next: time.Second}
	})
	p.set("custom")
	p.update(900 * time.Millisecond)
	if p.pose != "custom" {
		t.Fatalf("set pose reverted to %q", p.pose)
	}
	p.update(100 * time.Millisecond)
	if p.pose != "idle" {
		t.Errorf("pose = %q, want the idle action to replace the set pose", p.pose)
	}
}

func TestMsBetween(t *testing.T) {
	rng := &seqRand{vals: []float64{0, 0.5, 0.999}}
	r := Range{100, 200}
	if got := msBetween(rng, r); got != 100*time.Millisecond {
		t.Errorf("low = %v", got)
	}
	if got := msBetween(rng, r); got != 150*time.Millisecond {
		t.Errorf("mid = %v", got)
	}
	if got := msBetween(rng, r); got >= 200*time.Millisecond {
		t.Errorf("high = %v, want < 200ms", got)
	}
}
