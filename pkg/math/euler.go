package math

// gimbalLockThreshold is the |sin(pitch)| beyond which bank is folded
// into heading.
const gimbalLockThreshold = 0.9999

// EulerAngles is a heading-pitch-bank orientation in radians.
// Heading rotates about Y, pitch about X, bank about Z.
type EulerAngles struct {
	Heading float32
	Pitch   float32
	Bank    float32
}

// EulerIdentity returns the zero orientation.
func EulerIdentity() EulerAngles {
	return EulerAngles{}
}

// Canonize returns the canonical representative of the orientation:
// heading and bank in -pi..pi, pitch in -pi/2..pi/2. In gimbal lock all
// rotation about the vertical axis is assigned to heading and bank is 0.
func (e EulerAngles) Canonize() EulerAngles {
	e.Pitch = WrapPi(e.Pitch)

	if e.Pitch < -PiOver2 {
		e.Pitch = -Pi - e.Pitch
		e.Heading += Pi
		e.Bank += Pi
	} else if e.Pitch > PiOver2 {
		e.Pitch = Pi - e.Pitch
		e.Heading += Pi
		e.Bank += Pi
	}

	if absf(e.Pitch) > PiOver2-1e-4 {
		e.Heading += e.Bank
		e.Bank = 0
	} else {
		e.Bank = WrapPi(e.Bank)
	}

	e.Heading = WrapPi(e.Heading)
	return e
}

// EulerFromObjectToInertialQuat extracts angles from an object -> inertial
// quaternion.
func EulerFromObjectToInertialQuat(q Quat) EulerAngles {
	sp := -2 * (q.Y*q.Z - q.W*q.X)

	if absf(sp) > gimbalLockThreshold {
		return EulerAngles{
			Heading: atan2f(-q.X*q.Z+q.W*q.Y, 0.5-q.Y*q.Y-q.Z*q.Z),
			Pitch:   PiOver2 * sp,
		}
	}
	return EulerAngles{
		Heading: atan2f(q.X*q.Z+q.W*q.Y, 0.5-q.X*q.X-q.Y*q.Y),
		Pitch:   asinf(sp),
		Bank:    atan2f(q.X*q.Y+q.W*q.Z, 0.5-q.X*q.X-q.Z*q.Z),
	}
}

// EulerFromInertialToObjectQuat extracts angles from an inertial -> object
// quaternion.
func EulerFromInertialToObjectQuat(q Quat) EulerAngles {
	sp := -2 * (q.Y*q.Z + q.W*q.X)

	if absf(sp) > gimbalLockThreshold {
		return EulerAngles{
			Heading: atan2f(-q.X*q.Z-q.W*q.Y, 0.5-q.Y*q.Y-q.Z*q.Z),
			Pitch:   PiOver2 * sp,
		}
	}
	return EulerAngles{
		Heading: atan2f(q.X*q.Z-q.W*q.Y, 0.5-q.X*q.X-q.Y*q.Y),
		Pitch:   asinf(sp),
		Bank:    atan2f(q.X*q.Y-q.W*q.Z, 0.5-q.X*q.X-q.Z*q.Z),
	}
}

// EulerFromWorldToObjectMatrix extracts angles from the rotation portion
// of a world -> object transform. Translation is ignored.
func EulerFromWorldToObjectMatrix(m Mat4x3) EulerAngles {
	return eulerFromMatrix(m.M11, m.M13, m.M21, m.M22, m.M23, m.M31, m.M33)
}

// EulerFromRotationMatrix extracts angles from a rotation matrix.
func EulerFromRotationMatrix(m RotationMatrix) EulerAngles {
	return eulerFromMatrix(m.M11, m.M13, m.M21, m.M22, m.M23, m.M31, m.M33)
}

func eulerFromMatrix(m11, m13, m21, m22, m23, m31, m33 float32) EulerAngles {
	sp := -m23

	if absf(sp) > gimbalLockThreshold {
		return EulerAngles{
			Heading: atan2f(-m31, m11),
			Pitch:   PiOver2 * sp,
		}
	}
	return EulerAngles{
		Heading: atan2f(m13, m33),
		Pitch:   asinf(sp),
		Bank:    atan2f(m21, m22),
	}
}
