package tui

import (
	"math"
	"testing"
	"time"
)

func TestEaseOutCubic(t *testing.T) {
	if got := easeOutCubic(0); got != 0 {
		t.Errorf("easeOutCubic(0) = %v, want 0", got)
	}
	if got := easeOutCubic(1); got != 1 {
		t.Errorf("easeOutCubic(1) = %v, want 1", got)
	}
	// Decelerating: front-loaded progress, more than halfway done at t=0.5.
	if got := easeOutCubic(0.5); got <= 0.5 {
		t.Errorf("easeOutCubic(0.5) = %v, want > 0.5", got)
	}
	// Monotonic on [0,1].
	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := easeOutCubic(float64(i) / 100)
		if v < prev {
			t.Fatalf("easeOutCubic not monotonic at %d: %v < %v", i, v, prev)
		}
		prev = v
	}
}

func TestAnimatorSettlesOnTarget(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	a := newAnimator(100)

	a.retarget(500, now)
	if got := a.value(now); got != 100 {
		t.Errorf("value at start = %v, want 100", got)
	}

	mid := a.value(now.Add(animDuration / 2))
	if mid <= 100 || mid >= 500 {
		t.Errorf("mid value = %v, want inside (100, 500)", mid)
	}

	if got := a.value(now.Add(animDuration)); got != 500 {
		t.Errorf("value at end = %v, want 500", got)
	}
	if !a.done(now.Add(animDuration)) {
		t.Error("done = false after full duration")
	}
}

func TestAnimatorRetargetMidFlight(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	a := newAnimator(0)
	a.retarget(1000, now)

	// Retarget halfway through; easing restarts from the displayed value.
	half := now.Add(animDuration / 2)
	shown := a.value(half)
	a.retarget(200, half)

	if got := a.value(half); math.Abs(got-shown) > 1e-9 {
		t.Errorf("value after retarget = %v, want continuity at %v", got, shown)
	}
	if got := a.value(half.Add(animDuration)); got != 200 {
		t.Errorf("value at end = %v, want 200", got)
	}
}

func TestAnimatorRetargetSameValueIsNoop(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	a := newAnimator(42)

	a.retarget(42, now.Add(time.Hour))
	if !a.done(now.Add(time.Hour)) {
		t.Error("retarget to current value should stay settled")
	}
	if got := a.value(now.Add(time.Hour)); got != 42 {
		t.Errorf("value = %v, want 42", got)
	}
}
