package geom

import (
	"errors"
	"math"
	"testing"
)

func TestEasingSteps(t *testing.T) {
	tests := []struct {
		name string
		n    int
		pos  StepPosition
		x    []float64
		want []float64
	}{
		{"jump-end", 4, JumpEnd, []float64{0, 0.24, 0.25, 0.99, 1}, []float64{0, 0, 0.25, 0.75, 1}},
		{"jump-start", 4, JumpStart, []float64{0, 0.24, 0.5, 1}, []float64{0.25, 0.25, 0.75, 1}},
		{"jump-none", 4, JumpNone, []float64{0, 0.3, 0.6, 1}, []float64{0, 1.0 / 3, 2.0 / 3, 1}},
		{"jump-both", 4, JumpBoth, []float64{0, 0.99, 1}, []float64{0.2, 0.8, 1}},
		{"single step", 1, JumpEnd, []float64{0, 0.5, 1}, []float64{0, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := EasingSteps(tt.n, tt.pos)
			if err != nil {
				t.Fatalf("EasingSteps: %v", err)
			}
			for i, x := range tt.x {
				if got := f(x); math.Abs(got-tt.want[i]) > 1e-12 {
					t.Errorf("f(%v) = %v, want %v", x, got, tt.want[i])
				}
			}
		})
	}
}

func TestEasingSteps_Invalid(t *testing.T) {
	tests := []struct {
		name string
		n    int
		pos  StepPosition
	}{
		{"zero steps", 0, JumpEnd},
		{"negative steps", -2, JumpStart},
		{"one step without jumps", 1, JumpNone},
		{"unknown position", 3, StepPosition(9)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := EasingSteps(tt.n, tt.pos)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("err = %v, want ErrInvalidArgument", err)
			}
			if f != nil {
				t.Error("got a function alongside the error")
			}
		})
	}
}

func TestStepPosition_Parse(t *testing.T) {
	tests := []struct {
		in   string
		want StepPosition
	}{
		{"jump-end", JumpEnd},
		{"end", JumpEnd},
		{"jump-start", JumpStart},
		{"start", JumpStart},
		{"jump-none", JumpNone},
		{"jump-both", JumpBoth},
	}
	for _, tt := range tests {
		got, err := ParseStepPosition(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseStepPosition(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	for _, p := range []StepPosition{JumpEnd, JumpStart, JumpNone, JumpBoth} {
		if back, err := ParseStepPosition(p.String()); err != nil || back != p {
			t.Errorf("round trip of %v = %v, %v", p, back, err)
		}
	}
	if _, err := ParseStepPosition("middle"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ParseStepPosition(middle) err = %v, want ErrInvalidArgument", err)
	}
}

func TestEasingLinear(t *testing.T) {
	f, err := EasingLinear([]Vec2{V2(1, 10), V2(0, 0), V2(0.5, 2)})
	if err != nil {
		t.Fatalf("EasingLinear: %v", err)
	}
	tests := []struct {
		x, want float64
	}{
		{-1, 0},
		{0, 0},
		{0.25, 1},
		{0.5, 2},
		{0.75, 6},
		{1, 10},
		{2, 10},
	}
	for _, tt := range tests {
		if got := f(tt.x); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("f(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}

	if _, err := EasingLinear(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("EasingLinear(nil) err = %v, want ErrInvalidArgument", err)
	}
}

func TestEasingLinear_KeysNotAliased(t *testing.T) {
	keys := []Vec2{V2(0, 0), V2(1, 1)}
	f, err := EasingLinear(keys)
	if err != nil {
		t.Fatal(err)
	}
	keys[1] = V2(1, 100)
	if got := f(0.5); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("f(0.5) = %v after mutating keys, want 0.5", got)
	}
}

func TestEasingCubicBezier(t *testing.T) {
	t.Run("identity", func(t *testing.T) {
		f := EasingCubicBezier(V2(0, 0), V2(1, 1))
		for _, x := range []float64{0, 0.1, 0.5, 0.8, 1} {
			if got := f(x); math.Abs(got-x) > 1e-7 {
				t.Errorf("f(%v) = %v, want %v", x, got, x)
			}
		}
	})

	t.Run("ease is monotonic", func(t *testing.T) {
		f := EasingCubicBezier(V2(0.25, 0.1), V2(0.25, 1))
		if got := f(0); math.Abs(got) > 1e-9 {
			t.Errorf("f(0) = %v, want 0", got)
		}
		if got := f(1); math.Abs(got-1) > 1e-9 {
			t.Errorf("f(1) = %v, want 1", got)
		}
		prev := f(0)
		for i := 1; i <= 100; i++ {
			y := f(float64(i) / 100)
			if y < prev-1e-9 {
				t.Fatalf("f decreased at x=%v: %v < %v", float64(i)/100, y, prev)
			}
			prev = y
		}
	})

	t.Run("clamps input", func(t *testing.T) {
		f := EasingCubicBezier(V2(0.42, 0), V2(0.58, 1))
		if got := f(-1); math.Abs(got) > 1e-9 {
			t.Errorf("f(-1) = %v, want 0", got)
		}
		if got := f(2); math.Abs(got-1) > 1e-9 {
			t.Errorf("f(2) = %v, want 1", got)
		}
	})
}
