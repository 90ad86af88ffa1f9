package math

import (
	"math"
	"testing"
)

func quatApproxEqual(a, b Quat) bool {
	return approxEqual(a.X, b.X) && approxEqual(a.Y, b.Y) &&
		approxEqual(a.Z, b.Z) && approxEqual(a.W, b.W)
}

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{X: 1, Y: 2, Z: 3, W: 4}
	n := q.Normalize()

	length := float32(math.Sqrt(float64(n.Dot(n))))
	if math.Abs(float64(length-1.0)) > 0.0001 {
		t.Errorf("Normalized quaternion length should be 1, got %v", length)
	}

	if got := (Quat{}).Normalize(); got != QuatIdentity() {
		t.Errorf("zero quaternion Normalize() = %v, want identity", got)
	}
}

func TestQuatSlerp(t *testing.T) {
	q1 := QuatIdentity()
	q2 := QuatFromAxisAngle(Vec3{X: 0, Y: 1, Z: 0}, float32(math.Pi/2))

	if got := q1.Slerp(q2, -1); got != q1 {
		t.Errorf("Slerp at t<0 = %v, want %v", got, q1)
	}
	if got := q1.Slerp(q2, 2); got != q2 {
		t.Errorf("Slerp at t>1 = %v, want %v", got, q2)
	}

	// For a 90 degree rotation, halfway is 45 degrees
	half := q1.Slerp(q2, 0.5)
	expectedW := float32(math.Cos(math.Pi / 8))
	if math.Abs(float64(half.W-expectedW)) > 0.001 {
		t.Errorf("Slerp at t=0.5: expected W ~%v, got %v", expectedW, half.W)
	}

	// Opposite hemisphere takes the short arc
	neg := Quat{X: -q2.X, Y: -q2.Y, Z: -q2.Z, W: -q2.W}
	if got := q1.Slerp(neg, 0.5); !quatApproxEqual(got, half) {
		t.Errorf("Slerp toward negated quaternion = %v, want %v", got, half)
	}
}

func TestQuatMulOrder(t *testing.T) {
	a := QuatAboutX(0.7)
	b := QuatAboutY(1.1)

	got := Mat4x3FromQuat(a.Mul(b))
	want := Mat4x3FromQuat(a).Mul(Mat4x3FromQuat(b))
	if !matApproxEqual(got, want) {
		t.Errorf("FromQuat(a*b) = %v, want FromQuat(a)*FromQuat(b) = %v", got, want)
	}
}

func TestQuatConjugate(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{0, 0, 1}, 1.2)
	if got := q.Mul(q.Conjugate()); !quatApproxEqual(got, QuatIdentity()) {
		t.Errorf("q * conjugate(q) = %v, want identity", got)
	}
}

func TestQuatAxisAngle(t *testing.T) {
	axis := Vec3{0, 1, 0}
	q := QuatFromAxisAngle(axis, 1.0)

	if got := q.RotationAngle(); !approxEqual(got, 1.0) {
		t.Errorf("RotationAngle() = %v, want 1.0", got)
	}
	if got := q.RotationAxis(); !vecApproxEqual(got, axis) {
		t.Errorf("RotationAxis() = %v, want %v", got, axis)
	}
	if got := QuatIdentity().RotationAxis(); got != (Vec3{X: 1}) {
		t.Errorf("identity RotationAxis() = %v, want +X", got)
	}
}

func TestQuatPow(t *testing.T) {
	q := QuatAboutZ(1.0)
	if got := q.Pow(0.5).RotationAngle(); !approxEqual(got, 0.5) {
		t.Errorf("Pow(0.5).RotationAngle() = %v, want 0.5", got)
	}
	if got := QuatIdentity().Pow(3); got != QuatIdentity() {
		t.Errorf("identity Pow(3) = %v, want identity", got)
	}
}

func TestQuatFromAxisAnglePanicsOnNonUnit(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("QuatFromAxisAngle with non-unit axis should panic")
		}
	}()
	QuatFromAxisAngle(Vec3{2, 0, 0}, 1)
}
