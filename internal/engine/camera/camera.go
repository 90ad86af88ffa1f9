// Package camera provides the orbit camera used to view and pick models.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/meshkit/pkg/math"
)

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	Center math.Vec3

	// Spherical coordinates
	Distance float32 // Distance from center
	Pitch    float32 // Vertical angle, radians
	Yaw      float32 // Horizontal angle, radians

	// Projection
	FovDegrees float32
	Near       float32
	Far        float32

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbitCamera creates a new orbit camera with default settings.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        10.0,
		Pitch:           0.5,
		Yaw:             0.0,
		FovDegrees:      60.0,
		Near:            0.1,
		Far:             1000.0,
		MinDistance:     0.5,
		MaxDistance:     5000.0,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	cp, sp := float64(c.Distance)*gomath.Cos(float64(c.Pitch)), gomath.Sin(float64(c.Pitch))
	offset := math.Vec3{
		X: float32(cp * gomath.Sin(float64(c.Yaw))),
		Y: c.Distance * float32(sp),
		Z: float32(cp * gomath.Cos(float64(c.Yaw))),
	}
	return c.Center.Add(offset)
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position().Mgl(), c.Center.Mgl(), mgl32.Vec3{0, 1, 0})
}

// ProjectionMatrix returns the perspective projection for the given
// viewport aspect ratio.
func (c *OrbitCamera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FovDegrees), aspect, c.Near, c.Far)
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch = clamp(c.Pitch+deltaY*c.DragSensitivity, c.MinPitch, c.MaxPitch)
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance = clamp(c.Distance-delta*c.Distance*c.ZoomSensitivity, c.MinDistance, c.MaxDistance)
}

// FitToBounds centers the camera on b and backs off far enough for the
// whole box to fit in the field of view. The far plane is pushed out if
// the box would otherwise be clipped.
func (c *OrbitCamera) FitToBounds(b math.AABB3) {
	if b.IsEmpty() {
		return
	}
	c.Center = b.Center()

	radius := b.Size().Length() / 2
	halfFov := float64(mgl32.DegToRad(c.FovDegrees)) / 2
	c.Distance = clamp(radius/float32(gomath.Sin(halfFov)), c.MinDistance, c.MaxDistance)

	if need := c.Distance + radius; need > c.Far {
		c.Far = need * 1.1
	}
}

func clamp(x, lo, hi float32) float32 {
	return min(max(x, lo), hi)
}
