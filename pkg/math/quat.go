package math

// Quat is a rotation quaternion. W is the scalar part.
type Quat struct {
	X, Y, Z, W float32
}

// QuatIdentity returns an identity quaternion (no rotation).
func QuatIdentity() Quat {
	return Quat{W: 1}
}

// QuatAboutX returns a rotation of theta radians about the X axis.
func QuatAboutX(theta float32) Quat {
	s, c := sinCos(theta * 0.5)
	return Quat{X: s, W: c}
}

// QuatAboutY returns a rotation of theta radians about the Y axis.
func QuatAboutY(theta float32) Quat {
	s, c := sinCos(theta * 0.5)
	return Quat{Y: s, W: c}
}

// QuatAboutZ returns a rotation of theta radians about the Z axis.
func QuatAboutZ(theta float32) Quat {
	s, c := sinCos(theta * 0.5)
	return Quat{Z: s, W: c}
}

// QuatFromAxisAngle creates a quaternion from axis-angle rotation.
// axis must be normalized, angle is in radians.
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	if !isUnit(axis) {
		panic("math: quaternion axis must be a unit vector")
	}
	s, c := sinCos(angle * 0.5)
	return Quat{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: c,
	}
}

// QuatObjectToInertial returns the object -> inertial rotation for an
// orientation.
func QuatObjectToInertial(o EulerAngles) Quat {
	sp, cp := sinCos(o.Pitch * 0.5)
	sb, cb := sinCos(o.Bank * 0.5)
	sh, ch := sinCos(o.Heading * 0.5)

	return Quat{
		W: ch*cp*cb + sh*sp*sb,
		X: ch*sp*cb + sh*cp*sb,
		Y: -ch*sp*sb + sh*cp*cb,
		Z: -sh*sp*cb + ch*cp*sb,
	}
}

// QuatInertialToObject returns the inertial -> object rotation for an
// orientation. It is the conjugate of QuatObjectToInertial.
func QuatInertialToObject(o EulerAngles) Quat {
	sp, cp := sinCos(o.Pitch * 0.5)
	sb, cb := sinCos(o.Bank * 0.5)
	sh, ch := sinCos(o.Heading * 0.5)

	return Quat{
		W: ch*cp*cb + sh*sp*sb,
		X: -ch*sp*cb - sh*cp*sb,
		Y: ch*sp*sb - sh*cb*cp,
		Z: sh*sp*cb - ch*cp*sb,
	}
}

// Normalize returns a normalized quaternion. A zero quaternion becomes
// the identity.
func (q Quat) Normalize() Quat {
	mag := sqrtf(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
	if mag <= 0 {
		return QuatIdentity()
	}
	inv := 1 / mag
	return Quat{
		X: q.X * inv,
		Y: q.Y * inv,
		Z: q.Z * inv,
		W: q.W * inv,
	}
}

// Dot returns the dot product of two quaternions.
func (q Quat) Dot(other Quat) float32 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// Mul concatenates rotations so that q.Mul(b) applies q first, then b.
// The cross term is reversed from the standard Hamilton product.
func (q Quat) Mul(b Quat) Quat {
	return Quat{
		W: q.W*b.W - q.X*b.X - q.Y*b.Y - q.Z*b.Z,
		X: q.W*b.X + q.X*b.W + q.Z*b.Y - q.Y*b.Z,
		Y: q.W*b.Y + q.Y*b.W + q.X*b.Z - q.Z*b.X,
		Z: q.W*b.Z + q.Z*b.W + q.Y*b.X - q.X*b.Y,
	}
}

// Conjugate returns the opposite rotation.
func (q Quat) Conjugate() Quat {
	return Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Slerp performs spherical linear interpolation from q to other.
// t is clamped to [0, 1] and the shorter arc is taken.
func (q Quat) Slerp(other Quat, t float32) Quat {
	if t <= 0 {
		return q
	}
	if t >= 1 {
		return other
	}

	cosOmega := q.Dot(other)

	// Negate one side to take the shorter path
	if cosOmega < 0 {
		other = Quat{X: -other.X, Y: -other.Y, Z: -other.Z, W: -other.W}
		cosOmega = -cosOmega
	}

	var k0, k1 float32
	if cosOmega > 0.9999 {
		k0 = 1 - t
		k1 = t
	} else {
		sinOmega := sqrtf(1 - cosOmega*cosOmega)
		omega := atan2f(sinOmega, cosOmega)
		inv := 1 / sinOmega
		k0 = sinf((1-t)*omega) * inv
		k1 = sinf(t*omega) * inv
	}

	return Quat{
		X: k0*q.X + k1*other.X,
		Y: k0*q.Y + k1*other.Y,
		Z: k0*q.Z + k1*other.Z,
		W: k0*q.W + k1*other.W,
	}
}

// Pow scales the rotation angle by exponent.
func (q Quat) Pow(exponent float32) Quat {
	// Identity quaternions would divide by zero below
	if absf(q.W) > 0.9999 {
		return q
	}

	alpha := SafeAcos(q.W)
	newAlpha := alpha * exponent
	mult := sinf(newAlpha) / sinf(alpha)

	return Quat{
		W: cosf(newAlpha),
		X: q.X * mult,
		Y: q.Y * mult,
		Z: q.Z * mult,
	}
}

// RotationAngle returns the rotation angle in radians.
func (q Quat) RotationAngle() float32 {
	return SafeAcos(q.W) * 2
}

// RotationAxis returns the rotation axis. The identity returns +X.
func (q Quat) RotationAxis() Vec3 {
	sinSq := 1 - q.W*q.W
	if sinSq <= 0 {
		return Vec3{X: 1}
	}
	inv := 1 / sqrtf(sinSq)
	return Vec3{q.X * inv, q.Y * inv, q.Z * inv}
}

// Lerp blends two quaternions linearly and renormalizes.
// Use Slerp for rotation interpolation; this is for simple blending.
func (q Quat) Lerp(other Quat, t float32) Quat {
	return Quat{
		X: q.X + t*(other.X-q.X),
		Y: q.Y + t*(other.Y-q.Y),
		Z: q.Z + t*(other.Z-q.Z),
		W: q.W + t*(other.W-q.W),
	}.Normalize()
}
