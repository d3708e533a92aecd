package geom

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/gogpu/geom/internal/mathutil"
)

// EaseFunc maps animation progress in [0, 1] to eased progress.
type EaseFunc func(x float64) float64

// EasingLinear interpolates linearly between keyframes (x = time,
// y = value). Keys are sorted by x; inputs before the first key or after the
// last are clamped to that key's value.
func EasingLinear(keys []Vec2) (EaseFunc, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("easing linear: no keys: %w", ErrInvalidArgument)
	}
	sorted := slices.Clone(keys)
	slices.SortStableFunc(sorted, func(a, b Vec2) int { return cmp.Compare(a.X, b.X) })

	return func(x float64) float64 {
		if x <= sorted[0].X {
			return sorted[0].Y
		}
		last := sorted[len(sorted)-1]
		if x >= last.X {
			return last.Y
		}
		i, _ := slices.BinarySearchFunc(sorted, x, func(k Vec2, x float64) int { return cmp.Compare(k.X, x) })
		a, b := sorted[i-1], sorted[i]
		if b.X == a.X {
			return b.Y
		}
		return mathutil.Lerp(a.Y, b.Y, (x-a.X)/(b.X-a.X))
	}, nil
}

// EasingCubicBezier returns the CSS cubic-bezier(p1.x, p1.y, p2.x, p2.y)
// timing function. The curve runs from (0, 0) to (1, 1); x(t) = X is solved
// for t with the cubic solver and y(t) is returned.
func EasingCubicBezier(p1, p2 Vec2) EaseFunc {
	// x(t) = ax t^3 + bx t^2 + cx t in power basis.
	cx := 3 * p1.X
	bx := 3*(p2.X-p1.X) - cx
	ax := 1 - cx - bx

	return func(x float64) float64 {
		x = mathutil.Clamp(x, 0, 1)
		t := x
		if roots := SolveCubicInUnitInterval(ax, bx, cx, -x); len(roots) > 0 {
			t = roots[0]
		}
		return EvaluateBezier(Vec2{}, p1, p2, Vec2{X: 1, Y: 1}, t).Y
	}
}

// StepPosition selects where the jumps of EasingSteps happen, as in CSS
// steps().
type StepPosition uint8

const (
	// JumpEnd holds each value until the end of its interval.
	JumpEnd StepPosition = iota
	// JumpStart jumps at the start of each interval.
	JumpStart
	// JumpNone has no jump at either end; 0 and 1 each last one interval.
	JumpNone
	// JumpBoth jumps at both ends.
	JumpBoth
)

// String returns the CSS keyword.
func (p StepPosition) String() string {
	switch p {
	case JumpEnd:
		return "jump-end"
	case JumpStart:
		return "jump-start"
	case JumpNone:
		return "jump-none"
	case JumpBoth:
		return "jump-both"
	default:
		return fmt.Sprintf("StepPosition(%d)", uint8(p))
	}
}

// ParseStepPosition parses a CSS step position keyword, including the
// legacy "start" and "end" aliases.
func ParseStepPosition(s string) (StepPosition, error) {
	switch s {
	case "jump-end", "end":
		return JumpEnd, nil
	case "jump-start", "start":
		return JumpStart, nil
	case "jump-none":
		return JumpNone, nil
	case "jump-both":
		return JumpBoth, nil
	}
	return 0, fmt.Errorf("step position %q: %w", s, ErrInvalidArgument)
}

// EasingSteps returns the CSS steps(n, pos) timing function. n must be at
// least 1, or at least 2 for JumpNone.
func EasingSteps(n int, pos StepPosition) (EaseFunc, error) {
	jumps := n
	switch pos {
	case JumpEnd, JumpStart:
	case JumpNone:
		jumps = n - 1
	case JumpBoth:
		jumps = n + 1
	default:
		return nil, fmt.Errorf("easing steps: %v: %w", pos, ErrInvalidArgument)
	}
	if n < 1 || jumps < 1 {
		return nil, fmt.Errorf("easing steps: %d steps with %v: %w", n, pos, ErrInvalidArgument)
	}
	start := pos == JumpStart || pos == JumpBoth

	return func(x float64) float64 {
		step := math.Floor(x * float64(n))
		if start {
			step++
		}
		if x >= 0 && step < 0 {
			step = 0
		}
		if step > float64(jumps) {
			step = float64(jumps)
		}
		return step / float64(jumps)
	}, nil
}
