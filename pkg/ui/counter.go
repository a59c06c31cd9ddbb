package ui

import (
	"fmt"
	"math"
	"time"
)

// CountUp animates a KPI number from a starting value to its final value over
// a fixed duration with a cubic ease-out. The animation is cosmetic: whatever
// the frame timing does, ValueAt returns exactly the final value once the
// duration has elapsed.
type CountUp struct {
	From     float64
	To       float64
	Duration time.Duration
	Start    time.Time
}

// NewCountUp starts an animation from 0 to the target value.
func NewCountUp(to float64, duration time.Duration, now time.Time) CountUp {
	return CountUp{To: to, Duration: duration, Start: now}
}

// Retarget starts a new animation from the current displayed value toward a
// new final value.
func (c CountUp) Retarget(to float64, now time.Time) CountUp {
	return CountUp{From: c.ValueAt(now), To: to, Duration: c.Duration, Start: now}
}

// ValueAt returns the animated value at the given instant.
func (c CountUp) ValueAt(now time.Time) float64 {
	if c.Duration <= 0 {
		return c.To
	}
	elapsed := now.Sub(c.Start)
	if elapsed >= c.Duration {
		return c.To
	}
	if elapsed < 0 {
		return c.From
	}

	progress := float64(elapsed) / float64(c.Duration)
	eased := 1 - math.Pow(1-progress, 3)
	return c.From + (c.To-c.From)*eased
}

// Done reports whether the animation has converged.
func (c CountUp) Done(now time.Time) bool {
	return c.Duration <= 0 || now.Sub(c.Start) >= c.Duration
}

// Format renders the value at the given instant with a fixed number of
// decimals and an optional suffix, e.g. "66.7%".
func (c CountUp) Format(now time.Time, decimals int, suffix string) string {
	return fmt.Sprintf("%.*f%s", decimals, c.ValueAt(now), suffix)
}
