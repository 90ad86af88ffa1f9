package math

import "math"

// Angle constants.
const (
	Pi         = float32(math.Pi)
	TwoPi      = Pi * 2
	PiOver2    = Pi / 2
	OneOver2Pi = 1 / TwoPi
)

// WrapPi wraps an angle in radians into the range -pi..pi.
func WrapPi(theta float32) float32 {
	theta += Pi
	theta -= float32(math.Floor(float64(theta*OneOver2Pi))) * TwoPi
	return theta - Pi
}

// SafeAcos returns acos(x), clamping x into -1..1 first.
func SafeAcos(x float32) float32 {
	if x <= -1 {
		return Pi
	}
	if x >= 1 {
		return 0
	}
	return float32(math.Acos(float64(x)))
}

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 {
	return deg * (Pi / 180)
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float32) float32 {
	return rad * (180 / Pi)
}

func sinCos(theta float32) (float32, float32) {
	s, c := math.Sincos(float64(theta))
	return float32(s), float32(c)
}

func sinf(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

func cosf(x float32) float32 {
	return float32(math.Cos(float64(x)))
}

func sqrtf(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func atan2f(y, x float32) float32 {
	return float32(math.Atan2(float64(y), float64(x)))
}

func asinf(x float32) float32 {
	return float32(math.Asin(float64(x)))
}

// isUnit reports whether v has unit length within the tolerance used by the
// orientation and intersection routines.
func isUnit(v Vec3) bool {
	return absf(v.LengthSquared()-1) < 0.01
}
