// Package probe solves the trick-shot launcher puzzle: a probe fired from
// the origin drifts under drag and gravity and must pass through a target
// box at one of its integer steps.
package probe

import (
	"fmt"

	"github.com/banshee-data/gridpuzzles/internal/geom"
	"github.com/banshee-data/gridpuzzles/internal/monitoring"
)

// Target is an inclusive rectangle in launcher coordinates, y up.
type Target struct {
	MinX, MaxX int
	MinY, MaxY int
}

// Contains reports whether p lies inside the target.
func (t Target) Contains(p geom.Point2D) bool {
	return p.X >= t.MinX && p.X <= t.MaxX && p.Y >= t.MinY && p.Y <= t.MaxY
}

func (t Target) String() string {
	return fmt.Sprintf("target area: x=%d..%d, y=%d..%d", t.MinX, t.MaxX, t.MinY, t.MaxY)
}

// Velocity is a launch velocity.
type Velocity struct {
	X, Y int
}

// Probe is a probe in flight.
type Probe struct {
	Pos geom.Point2D
	Vel Velocity
}

// Launch returns a probe at the origin with velocity v.
func Launch(v Velocity) Probe { return Probe{Vel: v} }

// Step advances the probe one tick: move by the velocity, then drag pulls
// the x velocity one toward zero and gravity lowers the y velocity by one.
func (p *Probe) Step() {
	p.Pos = p.Pos.Add(geom.Pt(p.Vel.X, p.Vel.Y))
	p.Vel.X -= geom.Sign(p.Vel.X)
	p.Vel.Y--
}

// passed reports whether the probe can no longer reach t.
func (p *Probe) passed(t Target) bool {
	switch {
	case p.Pos.Y < t.MinY && p.Vel.Y < 0:
		return true
	case p.Pos.X > t.MaxX && p.Vel.X >= 0:
		return true
	case p.Pos.X < t.MinX && p.Vel.X <= 0:
		return true
	}
	return false
}

// Fly launches a probe with velocity v and reports whether it is inside t
// after some step, and the highest y it reached before then.
func Fly(v Velocity, t Target) (hit bool, apex int) {
	p := Launch(v)
	for {
		p.Step()
		if p.Pos.Y > apex {
			apex = p.Pos.Y
		}
		if t.Contains(p.Pos) {
			return true, apex
		}
		if p.passed(t) {
			return false, apex
		}
	}
}

// Hits reports whether launching at v reaches t.
func Hits(v Velocity, t Target) bool {
	hit, _ := Fly(v, t)
	return hit
}

// searchBox bounds the launch velocities that can reach t. A larger x
// overshoots on the first step, and a y above the target's span passes the
// target rows between steps on the way down.
func searchBox(t Target) (loX, hiX, loY, hiY int) {
	return min(t.MinX, 0), max(t.MaxX, 0), min(t.MinY, 0), max(geom.Abs(t.MinY), geom.Abs(t.MaxY))
}

// ValidVelocities returns every launch velocity that reaches t, ordered by
// x then y.
func ValidVelocities(t Target) []Velocity {
	loX, hiX, loY, hiY := searchBox(t)
	var out []Velocity
	for vx := loX; vx <= hiX; vx++ {
		for vy := loY; vy <= hiY; vy++ {
			v := Velocity{X: vx, Y: vy}
			if Hits(v, t) {
				out = append(out, v)
			}
		}
	}
	monitoring.Logf("%s: %d hitting velocities in x=%d..%d y=%d..%d", t, len(out), loX, hiX, loY, hiY)
	return out
}

// HighestApex returns the greatest height any hitting trajectory reaches,
// or 0 when nothing hits. For a target wholly below the launcher the
// fastest upward shot returns to y=0 moving at -(vy+1) and lands on MinY in
// the next step, reaching n(n+1)/2 with n = -MinY-1. That only counts when
// some x velocity puts the probe inside the x range on that step; otherwise
// every hitting velocity is searched.
func HighestApex(t Target) int {
	if n := -t.MinY - 1; t.MaxY < 0 && n > 0 {
		loX, hiX, _, _ := searchBox(t)
		for vx := loX; vx <= hiX; vx++ {
			if Hits(Velocity{X: vx, Y: n}, t) {
				return n * (n + 1) / 2
			}
		}
	}
	best := 0
	for _, v := range ValidVelocities(t) {
		if _, apex := Fly(v, t); apex > best {
			best = apex
		}
	}
	return best
}
