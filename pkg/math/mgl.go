package math

import "github.com/go-gl/mathgl/mgl32"

// Mgl converts v to a mathgl vector.
func (v Vec3) Mgl() mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

// Vec3FromMgl converts a mathgl vector.
func Vec3FromMgl(v mgl32.Vec3) Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

// Mgl returns the equivalent column-vector 4x4 matrix in mathgl's
// column-major layout, ready for GPU upload. Each row of m becomes one
// column of the result.
func (m Mat4x3) Mgl() mgl32.Mat4 {
	return mgl32.Mat4{
		m.M11, m.M12, m.M13, 0,
		m.M21, m.M22, m.M23, 0,
		m.M31, m.M32, m.M33, 0,
		m.Tx, m.Ty, m.Tz, 1,
	}
}

// Mat4x3FromMgl converts an affine mathgl matrix. The projective row is
// discarded.
func Mat4x3FromMgl(a mgl32.Mat4) Mat4x3 {
	return Mat4x3{
		M11: a[0], M12: a[1], M13: a[2],
		M21: a[4], M22: a[5], M23: a[6],
		M31: a[8], M32: a[9], M33: a[10],
		Tx: a[12], Ty: a[13], Tz: a[14],
	}
}
