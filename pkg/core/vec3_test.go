package core

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
)

func toR3(v Vec3) r3.Vector {
	return r3.Vector{X: v.X, Y: v.Y, Z: v.Z}
}

func closeToR3(v Vec3, want r3.Vector, tolerance float64) bool {
	return math.Abs(v.X-want.X) <= tolerance &&
		math.Abs(v.Y-want.Y) <= tolerance &&
		math.Abs(v.Z-want.Z) <= tolerance
}

func TestVec3_AgainstR3(t *testing.T) {
	pairs := []struct {
		name string
		a, b Vec3
	}{
		{"axis aligned", NewVec3(1, 0, 0), NewVec3(0, 1, 0)},
		{"mixed signs", NewVec3(-2.5, 3, 0.75), NewVec3(4, -1, 2)},
		{"small values", NewVec3(1e-3, 2e-3, -5e-4), NewVec3(-3e-3, 1e-3, 7e-3)},
		{"large values", NewVec3(1e6, -2e5, 3e4), NewVec3(-7e3, 8e6, 1e2)},
	}

	const tolerance = 1e-9
	for _, tt := range pairs {
		t.Run(tt.name, func(t *testing.T) {
			ra, rb := toR3(tt.a), toR3(tt.b)

			if got := tt.a.Add(tt.b); !closeToR3(got, ra.Add(rb), tolerance) {
				t.Errorf("Add: got %v, want %v", got, ra.Add(rb))
			}
			if got := tt.a.Subtract(tt.b); !closeToR3(got, ra.Sub(rb), tolerance) {
				t.Errorf("Subtract: got %v, want %v", got, ra.Sub(rb))
			}
			if got := tt.a.Multiply(2.5); !closeToR3(got, ra.Mul(2.5), tolerance) {
				t.Errorf("Multiply: got %v, want %v", got, ra.Mul(2.5))
			}
			if got := tt.a.Cross(tt.b); !closeToR3(got, ra.Cross(rb), tolerance*math.Max(1, ra.Norm()*rb.Norm())) {
				t.Errorf("Cross: got %v, want %v", got, ra.Cross(rb))
			}
			if got, want := tt.a.Dot(tt.b), ra.Dot(rb); math.Abs(got-want) > tolerance*math.Max(1, math.Abs(want)) {
				t.Errorf("Dot: got %f, want %f", got, want)
			}
			if got, want := tt.a.Length(), ra.Norm(); math.Abs(got-want) > tolerance*math.Max(1, want) {
				t.Errorf("Length: got %f, want %f", got, want)
			}
			if got := tt.a.Normalize(); !closeToR3(got, ra.Normalize(), tolerance) {
				t.Errorf("Normalize: got %v, want %v", got, ra.Normalize())
			}
		})
	}
}

func TestVec3_OperandsUnchanged(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	_ = a.Add(b)
	_ = a.Subtract(b)
	_ = a.Multiply(3)
	_ = a.Divide(2)
	_ = a.Cross(b)
	_ = a.Normalize()

	if !a.Equals(NewVec3(1, 2, 3)) || !b.Equals(NewVec3(4, 5, 6)) {
		t.Errorf("Operands were mutated: a=%v b=%v", a, b)
	}
}

func TestVec3_NormalizeZeroPropagatesNaN(t *testing.T) {
	n := Vec3{}.Normalize()
	if !math.IsNaN(n.X) || !math.IsNaN(n.Y) || !math.IsNaN(n.Z) {
		t.Errorf("Expected NaN components from zero-length normalize, got %v", n)
	}
}

func TestVec3_MultiplyVecAndSqrt(t *testing.T) {
	got := NewVec3(0.5, 2, -1).MultiplyVec(NewVec3(4, 0.25, 3))
	if !got.Equals(NewVec3(2, 0.5, -3)) {
		t.Errorf("MultiplyVec: got %v", got)
	}

	root := NewVec3(0.25, 1, 0.64).Sqrt()
	if !root.Equals(NewVec3(0.5, 1, 0.8)) {
		t.Errorf("Sqrt: got %v", root)
	}
}

func TestLerp(t *testing.T) {
	white := NewVec3(1, 1, 1)
	blue := NewVec3(0.5, 0.7, 1.0)

	tests := []struct {
		name     string
		t        float64
		expected Vec3
	}{
		{"start", 0, white},
		{"end", 1, blue},
		{"midpoint", 0.5, NewVec3(0.75, 0.85, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lerp(white, blue, tt.t)
			if got.Subtract(tt.expected).Length() > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, -2))

	got := ray.At(1.5)
	expected := NewVec3(1, 2, 0)
	if !got.Equals(expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}
