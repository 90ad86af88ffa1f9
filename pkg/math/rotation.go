package math

// RotationMatrix is a 3x3 orthonormal matrix holding an orientation.
// It is stored in inertial -> object form; ObjectToInertial applies the
// transpose.
type RotationMatrix struct {
	M11, M12, M13 float32
	M21, M22, M23 float32
	M31, M32, M33 float32
}

// RotationMatrixIdentity returns the identity orientation.
func RotationMatrixIdentity() RotationMatrix {
	return RotationMatrix{M11: 1, M22: 1, M33: 1}
}

// RotationMatrixFromEuler builds the matrix for a heading-pitch-bank
// orientation.
func RotationMatrixFromEuler(o EulerAngles) RotationMatrix {
	sh, ch := sinCos(o.Heading)
	sp, cp := sinCos(o.Pitch)
	sb, cb := sinCos(o.Bank)

	return RotationMatrix{
		M11: ch*cb + sh*sp*sb,
		M12: -ch*sb + sh*sp*cb,
		M13: sh * cp,

		M21: sb * cp,
		M22: cb * cp,
		M23: -sp,

		M31: -sh*cb + ch*sp*sb,
		M32: sb*sh + ch*sp*cb,
		M33: ch * cp,
	}
}

// RotationMatrixFromInertialToObjectQuat converts an inertial -> object
// quaternion. q is assumed normalized.
func RotationMatrixFromInertialToObjectQuat(q Quat) RotationMatrix {
	return RotationMatrix{
		M11: 1 - 2*(q.Y*q.Y+q.Z*q.Z),
		M12: 2 * (q.X*q.Y + q.W*q.Z),
		M13: 2 * (q.X*q.Z - q.W*q.Y),

		M21: 2 * (q.X*q.Y - q.W*q.Z),
		M22: 1 - 2*(q.X*q.X+q.Z*q.Z),
		M23: 2 * (q.Y*q.Z + q.W*q.X),

		M31: 2 * (q.X*q.Z + q.W*q.Y),
		M32: 2 * (q.Y*q.Z - q.W*q.X),
		M33: 1 - 2*(q.X*q.X+q.Y*q.Y),
	}
}

// RotationMatrixFromObjectToInertialQuat converts an object -> inertial
// quaternion. q is assumed normalized.
func RotationMatrixFromObjectToInertialQuat(q Quat) RotationMatrix {
	return RotationMatrix{
		M11: 1 - 2*(q.Y*q.Y+q.Z*q.Z),
		M12: 2 * (q.X*q.Y - q.W*q.Z),
		M13: 2 * (q.X*q.Z + q.W*q.Y),

		M21: 2 * (q.X*q.Y + q.W*q.Z),
		M22: 1 - 2*(q.X*q.X+q.Z*q.Z),
		M23: 2 * (q.Y*q.Z - q.W*q.X),

		M31: 2 * (q.X*q.Z - q.W*q.Y),
		M32: 2 * (q.Y*q.Z + q.W*q.X),
		M33: 1 - 2*(q.X*q.X+q.Y*q.Y),
	}
}

// InertialToObject rotates v from inertial space into object space.
func (m RotationMatrix) InertialToObject(v Vec3) Vec3 {
	return Vec3{
		X: m.M11*v.X + m.M21*v.Y + m.M31*v.Z,
		Y: m.M12*v.X + m.M22*v.Y + m.M32*v.Z,
		Z: m.M13*v.X + m.M23*v.Y + m.M33*v.Z,
	}
}

// ObjectToInertial rotates v from object space into inertial space.
func (m RotationMatrix) ObjectToInertial(v Vec3) Vec3 {
	return Vec3{
		X: m.M11*v.X + m.M12*v.Y + m.M13*v.Z,
		Y: m.M21*v.X + m.M22*v.Y + m.M23*v.Z,
		Z: m.M31*v.X + m.M32*v.Y + m.M33*v.Z,
	}
}
