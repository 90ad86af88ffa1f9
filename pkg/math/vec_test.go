package math

import (
	"math"
	"testing"
)

const epsilon = 1e-4

func approxEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < epsilon
}

func vecApproxEqual(a, b Vec3) bool {
	return approxEqual(a.X, b.X) && approxEqual(a.Y, b.Y) && approxEqual(a.Z, b.Z)
}

func TestVec3Add(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}
	got := a.Add(b)
	want := Vec3{5, 7, 9}
	if got != want {
		t.Errorf("Vec3.Add() = %v, want %v", got, want)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Length(t *testing.T) {
	v := Vec3{2, 3, 6}
	if got := v.Length(); got != 7 {
		t.Errorf("Vec3.Length() = %v, want 7", got)
	}
	if got := v.LengthSquared(); got != 49 {
		t.Errorf("Vec3.LengthSquared() = %v, want 49", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 4, 0}
	n := v.Normalize()
	if !approxEqual(n.Length(), 1) {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", n.Length())
	}

	if got := Zero3().Normalize(); !got.IsZero() {
		t.Errorf("zero vector Normalize() = %v, want zero", got)
	}
}

func TestVec3Distance(t *testing.T) {
	a := Vec3{1, 1, 1}
	b := Vec3{1, 4, 5}
	if got := a.Distance(b); got != 5 {
		t.Errorf("Vec3.Distance() = %v, want 5", got)
	}
	if got := a.DistanceSquared(b); got != 25 {
		t.Errorf("Vec3.DistanceSquared() = %v, want 25", got)
	}
}

func TestVec3Component(t *testing.T) {
	v := Vec3{7, 8, 9}
	for i, want := range []float32{7, 8, 9} {
		if got := v.Component(i); got != want {
			t.Errorf("Vec3.Component(%d) = %v, want %v", i, got, want)
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("Vec3.Component(3) should panic")
		}
	}()
	v.Component(3)
}

func TestWrapPi(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{0, 0},
		{Pi / 2, Pi / 2},
		{3 * Pi / 2, -Pi / 2},
		{-3 * Pi / 2, Pi / 2},
		{5 * Pi, -Pi},
	}
	for _, tt := range tests {
		got := WrapPi(tt.in)
		if !approxEqual(got, tt.want) && !approxEqual(absf(got), Pi) {
			t.Errorf("WrapPi(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSafeAcos(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{2, 0},
		{1, 0},
		{0, Pi / 2},
		{-1, Pi},
		{-5, Pi},
	}
	for _, tt := range tests {
		if got := SafeAcos(tt.in); !approxEqual(got, tt.want) {
			t.Errorf("SafeAcos(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDegRad(t *testing.T) {
	if got := DegToRad(180); !approxEqual(got, Pi) {
		t.Errorf("DegToRad(180) = %v, want %v", got, Pi)
	}
	if got := RadToDeg(PiOver2); !approxEqual(got, 90) {
		t.Errorf("RadToDeg(pi/2) = %v, want 90", got)
	}
}
