package tui

import "time"

// animDuration is how long the headline number takes to settle on a new target.
const animDuration = 400 * time.Millisecond

// animator eases a displayed number toward a target using cubic ease-out,
// so the headline total rolls up to new values instead of jumping.
type animator struct {
	from     float64
	to       float64
	start    time.Time
	duration time.Duration
}

func newAnimator(initial float64) animator {
	return animator{from: initial, to: initial, duration: animDuration}
}

// retarget begins easing from the current displayed value toward v.
// Retargeting to the value already shown is a no-op.
func (a *animator) retarget(v float64, now time.Time) {
	current := a.value(now)
	if v == a.to && current == a.to {
		return
	}
	a.from = current
	a.to = v
	a.start = now
}

// value returns the displayed value at the given instant.
func (a *animator) value(now time.Time) float64 {
	if a.duration <= 0 {
		return a.to
	}
	elapsed := now.Sub(a.start)
	if elapsed >= a.duration {
		return a.to
	}
	if elapsed < 0 {
		return a.from
	}
	t := float64(elapsed) / float64(a.duration)
	return a.from + (a.to-a.from)*easeOutCubic(t)
}

// done reports whether the animation has settled.
func (a *animator) done(now time.Time) bool {
	return now.Sub(a.start) >= a.duration
}

// easeOutCubic maps linear progress t in [0,1] onto a curve that starts
// fast and decelerates into the target.
func easeOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}
