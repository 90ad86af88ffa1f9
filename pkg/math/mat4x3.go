package math

// Mat4x3 is an affine transform stored as a 4x3 matrix.
//
// Row vectors are used, so a point is transformed as p' = p * M:
//
//	          | M11 M12 M13 |
//	[x y z 1] | M21 M22 M23 | = [x' y' z']
//	          | M31 M32 M33 |
//	          | Tx  Ty  Tz  |
//
// The implied fourth column is [0 0 0 1]. Concatenation reads left to
// right: p * A * B applies A first.
type Mat4x3 struct {
	M11, M12, M13 float32
	M21, M22, M23 float32
	M31, M32, M33 float32
	Tx, Ty, Tz    float32
}

// Mat4x3Identity returns the identity transform.
func Mat4x3Identity() Mat4x3 {
	return Mat4x3{
		M11: 1,
		M22: 1,
		M33: 1,
	}
}

// Translation returns a pure translation by d.
func Translation(d Vec3) Mat4x3 {
	m := Mat4x3Identity()
	m.SetTranslation(d)
	return m
}

// SetTranslation replaces the translation row.
func (m *Mat4x3) SetTranslation(d Vec3) {
	m.Tx, m.Ty, m.Tz = d.X, d.Y, d.Z
}

// ZeroTranslation clears the translation row.
func (m *Mat4x3) ZeroTranslation() {
	m.Tx, m.Ty, m.Tz = 0, 0, 0
}

// GetTranslation returns the translation row.
func (m Mat4x3) GetTranslation() Vec3 {
	return Vec3{m.Tx, m.Ty, m.Tz}
}

// LocalToParent builds a local -> parent transform (for example object ->
// world) from the position and orientation of the local frame.
func LocalToParent(pos Vec3, orient EulerAngles) Mat4x3 {
	return LocalToParentMatrix(pos, RotationMatrixFromEuler(orient))
}

// LocalToParentMatrix is LocalToParent with the orientation given as an
// inertial -> object rotation matrix. The rotation is transposed on copy.
func LocalToParentMatrix(pos Vec3, orient RotationMatrix) Mat4x3 {
	return Mat4x3{
		M11: orient.M11, M12: orient.M21, M13: orient.M31,
		M21: orient.M12, M22: orient.M22, M23: orient.M32,
		M31: orient.M13, M32: orient.M23, M33: orient.M33,
		Tx: pos.X, Ty: pos.Y, Tz: pos.Z,
	}
}

// ParentToLocal builds a parent -> local transform (for example world ->
// object). Translation happens first, so it is rotated into local space.
func ParentToLocal(pos Vec3, orient EulerAngles) Mat4x3 {
	return ParentToLocalMatrix(pos, RotationMatrixFromEuler(orient))
}

// ParentToLocalMatrix is ParentToLocal with an explicit rotation matrix.
func ParentToLocalMatrix(pos Vec3, orient RotationMatrix) Mat4x3 {
	m := Mat4x3{
		M11: orient.M11, M12: orient.M12, M13: orient.M13,
		M21: orient.M21, M22: orient.M22, M23: orient.M23,
		M31: orient.M31, M32: orient.M32, M33: orient.M33,
	}
	m.Tx = -(pos.X*m.M11 + pos.Y*m.M21 + pos.Z*m.M31)
	m.Ty = -(pos.X*m.M12 + pos.Y*m.M22 + pos.Z*m.M32)
	m.Tz = -(pos.X*m.M13 + pos.Y*m.M23 + pos.Z*m.M33)
	return m
}

// RotationAxis returns a rotation about a cardinal axis.
// axis is 1-based: 1=X, 2=Y, 3=Z. theta is in radians, left-hand rule.
func RotationAxis(axis int, theta float32) Mat4x3 {
	s, c := sinCos(theta)
	switch axis {
	case 1:
		return Mat4x3{
			M11: 1, M12: 0, M13: 0,
			M21: 0, M22: c, M23: s,
			M31: 0, M32: -s, M33: c,
		}
	case 2:
		return Mat4x3{
			M11: c, M12: 0, M13: -s,
			M21: 0, M22: 1, M23: 0,
			M31: s, M32: 0, M33: c,
		}
	case 3:
		return Mat4x3{
			M11: c, M12: s, M13: 0,
			M21: -s, M22: c, M23: 0,
			M31: 0, M32: 0, M33: 1,
		}
	}
	panic("math: rotation axis must be 1, 2 or 3")
}

// RotationAbout returns a rotation of theta radians about a unit axis
// through the origin.
func RotationAbout(axis Vec3, theta float32) Mat4x3 {
	if !isUnit(axis) {
		panic("math: rotation axis must be a unit vector")
	}
	s, c := sinCos(theta)
	a := 1 - c
	ax := a * axis.X
	ay := a * axis.Y
	az := a * axis.Z
	return Mat4x3{
		M11: ax*axis.X + c, M12: ax*axis.Y + axis.Z*s, M13: ax*axis.Z - axis.Y*s,
		M21: ay*axis.X - axis.Z*s, M22: ay*axis.Y + c, M23: ay*axis.Z + axis.X*s,
		M31: az*axis.X + axis.Y*s, M32: az*axis.Y - axis.X*s, M33: az*axis.Z + c,
	}
}

// Mat4x3FromQuat returns the rotation described by q. Translation is zero.
func Mat4x3FromQuat(q Quat) Mat4x3 {
	ww := 2 * q.W
	xx := 2 * q.X
	yy := 2 * q.Y
	zz := 2 * q.Z
	return Mat4x3{
		M11: 1 - yy*q.Y - zz*q.Z, M12: xx*q.Y + ww*q.Z, M13: xx*q.Z - ww*q.Y,
		M21: xx*q.Y - ww*q.Z, M22: 1 - xx*q.X - zz*q.Z, M23: yy*q.Z + ww*q.X,
		M31: xx*q.Z + ww*q.Y, M32: yy*q.Z - ww*q.X, M33: 1 - xx*q.X - yy*q.Y,
	}
}

// Scaling returns a per-axis scale. Use Vec3{k, k, k} for uniform scale.
func Scaling(s Vec3) Mat4x3 {
	return Mat4x3{M11: s.X, M22: s.Y, M33: s.Z}
}

// ScaleAlongAxis scales by k along a unit axis.
func ScaleAlongAxis(axis Vec3, k float32) Mat4x3 {
	if !isUnit(axis) {
		panic("math: scale axis must be a unit vector")
	}
	a := k - 1
	ax := a * axis.X
	ay := a * axis.Y
	az := a * axis.Z
	return Mat4x3{
		M11: ax*axis.X + 1, M12: ax * axis.Y, M13: ax * axis.Z,
		M21: ax * axis.Y, M22: ay*axis.Y + 1, M23: ay * axis.Z,
		M31: ax * axis.Z, M32: ay * axis.Z, M33: az*axis.Z + 1,
	}
}

// Shear returns a shear transform. axis is 1-based:
//
//	1 => y += s*x, z += t*x
//	2 => x += s*y, z += t*y
//	3 => x += s*z, y += t*z
func Shear(axis int, s, t float32) Mat4x3 {
	m := Mat4x3Identity()
	switch axis {
	case 1:
		m.M12, m.M13 = s, t
	case 2:
		m.M21, m.M23 = s, t
	case 3:
		m.M31, m.M32 = s, t
	default:
		panic("math: shear axis must be 1, 2 or 3")
	}
	return m
}

// Projection projects onto the plane through the origin perpendicular to
// the unit vector n.
func Projection(n Vec3) Mat4x3 {
	if !isUnit(n) {
		panic("math: projection normal must be a unit vector")
	}
	return Mat4x3{
		M11: 1 - n.X*n.X, M12: -n.X * n.Y, M13: -n.X * n.Z,
		M21: -n.X * n.Y, M22: 1 - n.Y*n.Y, M23: -n.Y * n.Z,
		M31: -n.X * n.Z, M32: -n.Y * n.Z, M33: 1 - n.Z*n.Z,
	}
}

// ReflectionAxis reflects about the plane x=k, y=k or z=k (axis 1, 2, 3).
func ReflectionAxis(axis int, k float32) Mat4x3 {
	m := Mat4x3Identity()
	switch axis {
	case 1:
		m.M11 = -1
		m.Tx = 2 * k
	case 2:
		m.M22 = -1
		m.Ty = 2 * k
	case 3:
		m.M33 = -1
		m.Tz = 2 * k
	default:
		panic("math: reflection axis must be 1, 2 or 3")
	}
	return m
}

// ReflectionPlane reflects about the plane through the origin whose unit
// normal is n.
func ReflectionPlane(n Vec3) Mat4x3 {
	if !isUnit(n) {
		panic("math: reflection normal must be a unit vector")
	}
	ax := -2 * n.X
	ay := -2 * n.Y
	az := -2 * n.Z
	return Mat4x3{
		M11: 1 + ax*n.X, M12: ax * n.Y, M13: ax * n.Z,
		M21: ax * n.Y, M22: 1 + ay*n.Y, M23: ay * n.Z,
		M31: ax * n.Z, M32: ay * n.Z, M33: 1 + az*n.Z,
	}
}

// Mul returns m * b (m applied first).
func (m Mat4x3) Mul(b Mat4x3) Mat4x3 {
	return Mat4x3{
		M11: m.M11*b.M11 + m.M12*b.M21 + m.M13*b.M31,
		M12: m.M11*b.M12 + m.M12*b.M22 + m.M13*b.M32,
		M13: m.M11*b.M13 + m.M12*b.M23 + m.M13*b.M33,

		M21: m.M21*b.M11 + m.M22*b.M21 + m.M23*b.M31,
		M22: m.M21*b.M12 + m.M22*b.M22 + m.M23*b.M32,
		M23: m.M21*b.M13 + m.M22*b.M23 + m.M23*b.M33,

		M31: m.M31*b.M11 + m.M32*b.M21 + m.M33*b.M31,
		M32: m.M31*b.M12 + m.M32*b.M22 + m.M33*b.M32,
		M33: m.M31*b.M13 + m.M32*b.M23 + m.M33*b.M33,

		Tx: m.Tx*b.M11 + m.Ty*b.M21 + m.Tz*b.M31 + b.Tx,
		Ty: m.Tx*b.M12 + m.Ty*b.M22 + m.Tz*b.M32 + b.Ty,
		Tz: m.Tx*b.M13 + m.Ty*b.M23 + m.Tz*b.M33 + b.Tz,
	}
}

// TransformPoint returns p * m.
func (m Mat4x3) TransformPoint(p Vec3) Vec3 {
	return Vec3{
		X: p.X*m.M11 + p.Y*m.M21 + p.Z*m.M31 + m.Tx,
		Y: p.X*m.M12 + p.Y*m.M22 + p.Z*m.M32 + m.Ty,
		Z: p.X*m.M13 + p.Y*m.M23 + p.Z*m.M33 + m.Tz,
	}
}

// TransformDirection transforms a direction, ignoring translation.
func (m Mat4x3) TransformDirection(d Vec3) Vec3 {
	return Vec3{
		X: d.X*m.M11 + d.Y*m.M21 + d.Z*m.M31,
		Y: d.X*m.M12 + d.Y*m.M22 + d.Z*m.M32,
		Z: d.X*m.M13 + d.Y*m.M23 + d.Z*m.M33,
	}
}

// Determinant returns the determinant of the 3x3 linear portion.
func (m Mat4x3) Determinant() float32 {
	return m.M11*(m.M22*m.M33-m.M23*m.M32) +
		m.M12*(m.M23*m.M31-m.M21*m.M33) +
		m.M13*(m.M21*m.M32-m.M22*m.M31)
}

// Inverse returns the inverse transform using the classical adjoint.
// Panics if the matrix is singular.
func (m Mat4x3) Inverse() Mat4x3 {
	det := m.Determinant()
	if absf(det) <= 0.000001 {
		panic("math: cannot invert singular matrix")
	}
	inv := 1 / det

	var r Mat4x3
	r.M11 = (m.M22*m.M33 - m.M23*m.M32) * inv
	r.M12 = (m.M13*m.M32 - m.M12*m.M33) * inv
	r.M13 = (m.M12*m.M23 - m.M13*m.M22) * inv

	r.M21 = (m.M23*m.M31 - m.M21*m.M33) * inv
	r.M22 = (m.M11*m.M33 - m.M13*m.M31) * inv
	r.M23 = (m.M13*m.M21 - m.M11*m.M23) * inv

	r.M31 = (m.M21*m.M32 - m.M22*m.M31) * inv
	r.M32 = (m.M12*m.M31 - m.M11*m.M32) * inv
	r.M33 = (m.M11*m.M22 - m.M12*m.M21) * inv

	r.Tx = -(m.Tx*r.M11 + m.Ty*r.M21 + m.Tz*r.M31)
	r.Ty = -(m.Tx*r.M12 + m.Ty*r.M22 + m.Tz*r.M32)
	r.Tz = -(m.Tx*r.M13 + m.Ty*r.M23 + m.Tz*r.M33)
	return r
}

// PositionFromParentToLocal extracts the object position from a rigid
// parent -> local matrix (such as world -> object).
func (m Mat4x3) PositionFromParentToLocal() Vec3 {
	return Vec3{
		X: -(m.Tx*m.M11 + m.Ty*m.M12 + m.Tz*m.M13),
		Y: -(m.Tx*m.M21 + m.Ty*m.M22 + m.Tz*m.M23),
		Z: -(m.Tx*m.M31 + m.Ty*m.M32 + m.Tz*m.M33),
	}
}

// PositionFromLocalToParent extracts the object position from a
// local -> parent matrix. It is simply the translation row.
func (m Mat4x3) PositionFromLocalToParent() Vec3 {
	return m.GetTranslation()
}
