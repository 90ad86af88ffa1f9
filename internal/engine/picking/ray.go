// Package picking provides ray casting and model part picking.
package picking

import (
	"fmt"
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/meshkit/internal/engine/model"
	"github.com/Faultbox/meshkit/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // Normalized direction
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// ScreenToRay converts screen coordinates to a world-space ray.
// screenX, screenY are pixel coordinates with the origin at the top left.
func ScreenToRay(screenX, screenY float32, viewportW, viewportH int, view, proj mgl32.Mat4) (Ray, error) {
	// Window coordinates put the origin at the bottom left
	winY := float32(viewportH) - screenY

	near, err := mgl32.UnProject(mgl32.Vec3{screenX, winY, 0}, view, proj, 0, 0, viewportW, viewportH)
	if err != nil {
		return Ray{}, fmt.Errorf("unproject near point: %w", err)
	}
	far, err := mgl32.UnProject(mgl32.Vec3{screenX, winY, 1}, view, proj, 0, 0, viewportW, viewportH)
	if err != nil {
		return Ray{}, fmt.Errorf("unproject far point: %w", err)
	}

	origin := math.Vec3FromMgl(near)
	dir := math.Vec3FromMgl(far).Sub(origin).Normalize()
	return Ray{Origin: origin, Direction: dir}, nil
}

// IntersectPlaneY intersects a ray with a horizontal plane at the given Y level.
// Returns the intersection point (X, Z) and whether the intersection is valid.
func (r Ray) IntersectPlaneY(planeY float32) (x, z float32, ok bool) {
	if gomath.Abs(float64(r.Direction.Y)) < 0.001 {
		return 0, 0, false // Ray parallel to plane
	}

	t := (planeY - r.Origin.Y) / r.Direction.Y
	if t < 0 {
		return 0, 0, false // Intersection behind ray origin
	}

	p := r.At(t)
	return p.X, p.Z, true
}

// IntersectAABB tests the first maxDist units of the ray against box.
// It returns the distance to the entry point and the surface normal there.
// A ray starting inside the box hits at distance 0.
func (r Ray) IntersectAABB(box math.AABB3, maxDist float32) (dist float32, normal math.Vec3, hit bool) {
	t, n := box.RayIntersect(r.Origin, r.Direction.Scale(maxDist))
	if t == math.NoIntersection {
		return 0, math.Vec3{}, false
	}
	return t * maxDist, n, true
}

// Hit describes the part a ray struck.
type Hit struct {
	Part     int
	Distance float32
	Point    math.Vec3
	Normal   math.Vec3
}

// PickPart returns the model part whose bounds the ray enters first within
// maxDist. Ties go to the lower part index.
func PickPart(m *model.Model, r Ray, maxDist float32) (Hit, bool) {
	return PickPartTransformed(m, math.Mat4x3Identity(), r, maxDist)
}

// PickPartTransformed is PickPart for a model placed in the world by
// modelToWorld. Part bounds are transformed before testing.
func PickPartTransformed(m *model.Model, modelToWorld math.Mat4x3, r Ray, maxDist float32) (Hit, bool) {
	best := Hit{Part: -1}
	found := false

	for i, p := range m.Parts {
		box := p.Mesh.Bounds.TransformedBox(modelToWorld)
		dist, n, ok := r.IntersectAABB(box, maxDist)
		if !ok {
			continue
		}
		if !found || dist < best.Distance {
			best = Hit{Part: i, Distance: dist, Point: r.At(dist), Normal: n}
			found = true
		}
	}

	return best, found
}
