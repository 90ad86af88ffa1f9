package math

import "math"

// NoIntersection is returned by the parametric intersection tests when
// there is no hit. It is larger than any valid parameter in [0, 1].
const NoIntersection = float32(math.MaxFloat32)

// AABB3 is an axis-aligned bounding box. A box with Min greater than Max
// on any axis is empty.
type AABB3 struct {
	Min, Max Vec3
}

// EmptyAABB3 returns an empty box ready for AddPoint.
func EmptyAABB3() AABB3 {
	var b AABB3
	b.Empty()
	return b
}

// NewAABB3 returns the box spanning lo..hi.
func NewAABB3(lo, hi Vec3) AABB3 {
	return AABB3{Min: lo, Max: hi}
}

// Empty resets the box so that any added point becomes its only content.
func (b *AABB3) Empty() {
	const big = math.MaxFloat32
	b.Min = Vec3{big, big, big}
	b.Max = Vec3{-big, -big, -big}
}

// IsEmpty reports whether Min exceeds Max on any axis.
func (b AABB3) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Size returns the extent on each axis.
func (b AABB3) Size() Vec3 { return b.Max.Sub(b.Min) }

// XSize returns the extent on X.
func (b AABB3) XSize() float32 { return b.Max.X - b.Min.X }

// YSize returns the extent on Y.
func (b AABB3) YSize() float32 { return b.Max.Y - b.Min.Y }

// ZSize returns the extent on Z.
func (b AABB3) ZSize() float32 { return b.Max.Z - b.Min.Z }

// Center returns the midpoint of the box.
func (b AABB3) Center() Vec3 { return b.Min.Add(b.Max).Scale(0.5) }

// Corner returns one of the eight corners. Bit 0 selects X, bit 1 Y and
// bit 2 Z; a set bit picks Max.
//
//	    6-------7
//	   /|      /|
//	  / |     / |
//	 4-------5  |
//	 |  2----|--3
//	 | /     | /
//	 |/      |/
//	 0-------1
func (b AABB3) Corner(i int) Vec3 {
	if i < 0 || i > 7 {
		panic("math: AABB3 corner index out of range")
	}
	c := b.Min
	if i&1 != 0 {
		c.X = b.Max.X
	}
	if i&2 != 0 {
		c.Y = b.Max.Y
	}
	if i&4 != 0 {
		c.Z = b.Max.Z
	}
	return c
}

// AddPoint expands the box to contain p.
func (b *AABB3) AddPoint(p Vec3) {
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
	if p.Z < b.Min.Z {
		b.Min.Z = p.Z
	}
	if p.Z > b.Max.Z {
		b.Max.Z = p.Z
	}
}

// AddAABB expands the box to contain other. Adding an empty box does
// nothing.
func (b *AABB3) AddAABB(other AABB3) {
	if other.IsEmpty() {
		return
	}
	b.AddPoint(other.Min)
	b.AddPoint(other.Max)
}

// SetToTransformedBox sets b to the box enclosing box after it has been
// transformed by m. The result may be larger than the tightest fit.
func (b *AABB3) SetToTransformedBox(box AABB3, m Mat4x3) {
	if box.IsEmpty() {
		b.Empty()
		return
	}

	t := m.GetTranslation()
	b.Min, b.Max = t, t

	rows := [3]Vec3{
		{m.M11, m.M12, m.M13},
		{m.M21, m.M22, m.M23},
		{m.M31, m.M32, m.M33},
	}
	lo := box.Min.Array()
	hi := box.Max.Array()
	bmin := b.Min.Array()
	bmax := b.Max.Array()

	// Each matrix element contributes its smallest product to min and its
	// largest to max.
	for row := 0; row < 3; row++ {
		r := rows[row].Array()
		for col := 0; col < 3; col++ {
			if r[col] > 0 {
				bmin[col] += r[col] * lo[row]
				bmax[col] += r[col] * hi[row]
			} else {
				bmin[col] += r[col] * hi[row]
				bmax[col] += r[col] * lo[row]
			}
		}
	}

	b.Min = Vec3FromArray(bmin)
	b.Max = Vec3FromArray(bmax)
}

// TransformedBox returns the box enclosing b transformed by m.
func (b AABB3) TransformedBox(m Mat4x3) AABB3 {
	var r AABB3
	r.SetToTransformedBox(b, m)
	return r
}

// Contains reports whether p lies inside or on the box.
func (b AABB3) Contains(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// ClosestPointTo returns the point of the box nearest to p.
func (b AABB3) ClosestPointTo(p Vec3) Vec3 {
	return Vec3{
		X: clampf(p.X, b.Min.X, b.Max.X),
		Y: clampf(p.Y, b.Min.Y, b.Max.Y),
		Z: clampf(p.Z, b.Min.Z, b.Max.Z),
	}
}

// IntersectsSphere reports whether the sphere touches the box. A sphere
// tangent to a face counts as intersecting.
func (b AABB3) IntersectsSphere(center Vec3, radius float32) bool {
	closest := b.ClosestPointTo(center)
	return center.DistanceSquared(closest) <= radius*radius
}

// RayIntersect intersects the parametric ray org + t*delta, t in [0, 1],
// with the box. It returns the entry parameter and the surface normal at
// the hit, or NoIntersection. A ray starting inside returns 0 and the
// normal opposing delta.
func (b AABB3) RayIntersect(org, delta Vec3) (float32, Vec3) {
	inside := true
	var t, n [3]float32

	o := org.Array()
	d := delta.Array()
	lo := b.Min.Array()
	hi := b.Max.Array()

	// For each axis find the candidate plane and the parameter to reach it
	for axis := 0; axis < 3; axis++ {
		switch {
		case o[axis] < lo[axis]:
			dist := lo[axis] - o[axis]
			if dist > d[axis] {
				return NoIntersection, Vec3{}
			}
			t[axis] = dist / d[axis]
			n[axis] = -1
			inside = false
		case o[axis] > hi[axis]:
			dist := hi[axis] - o[axis]
			if dist < d[axis] {
				return NoIntersection, Vec3{}
			}
			t[axis] = dist / d[axis]
			n[axis] = 1
			inside = false
		default:
			t[axis] = -1
		}
	}

	if inside {
		return 0, delta.Neg().Normalize()
	}

	// The farthest plane is the one actually entered
	which := 0
	if t[1] > t[which] {
		which = 1
	}
	if t[2] > t[which] {
		which = 2
	}
	hit := t[which]

	for axis := 0; axis < 3; axis++ {
		if axis == which {
			continue
		}
		c := o[axis] + d[axis]*hit
		if c < lo[axis] || c > hi[axis] {
			return NoIntersection, Vec3{}
		}
	}

	var normal [3]float32
	normal[which] = n[which]
	return hit, Vec3FromArray(normal)
}

// planeExtents returns the smallest and largest dot(n, p) over the box.
func (b AABB3) planeExtents(n Vec3) (minD, maxD float32) {
	nn := n.Array()
	lo := b.Min.Array()
	hi := b.Max.Array()
	for axis := 0; axis < 3; axis++ {
		if nn[axis] > 0 {
			minD += nn[axis] * lo[axis]
			maxD += nn[axis] * hi[axis]
		} else {
			minD += nn[axis] * hi[axis]
			maxD += nn[axis] * lo[axis]
		}
	}
	return minD, maxD
}

// ClassifyPlane reports which side of the plane dot(n, p) = d the box is
// on: +1 entirely in front, -1 entirely behind, 0 straddling.
func (b AABB3) ClassifyPlane(n Vec3, d float32) int {
	minD, maxD := b.planeExtents(n)
	if minD >= d {
		return 1
	}
	if maxD <= d {
		return -1
	}
	return 0
}

// IntersectPlane sweeps the box along dir and returns the parametric
// distance at which it first touches the front side of the plane
// dot(n, p) = planeD. Only front-side hits are detected. n and dir must be
// unit vectors. A box already penetrating the plane returns 0.
func (b AABB3) IntersectPlane(n Vec3, planeD float32, dir Vec3) float32 {
	if !isUnit(n) || !isUnit(dir) {
		panic("math: IntersectPlane requires unit vectors")
	}

	dot := n.Dot(dir)
	if dot >= 0 {
		return NoIntersection
	}

	minD, maxD := b.planeExtents(n)
	if maxD <= planeD {
		return NoIntersection
	}

	t := (planeD - minD) / dot
	if t < 0 {
		return 0
	}
	return t
}

// IntersectAABBs reports whether a and b overlap and returns the overlap
// box when they do.
func IntersectAABBs(a, b AABB3) (AABB3, bool) {
	if a.Min.X > b.Max.X || a.Max.X < b.Min.X {
		return AABB3{}, false
	}
	if a.Min.Y > b.Max.Y || a.Max.Y < b.Min.Y {
		return AABB3{}, false
	}
	if a.Min.Z > b.Max.Z || a.Max.Z < b.Min.Z {
		return AABB3{}, false
	}

	return AABB3{
		Min: Vec3{max(a.Min.X, b.Min.X), max(a.Min.Y, b.Min.Y), max(a.Min.Z, b.Min.Z)},
		Max: Vec3{min(a.Max.X, b.Max.X), min(a.Max.Y, b.Max.Y), min(a.Max.Z, b.Max.Z)},
	}, true
}

// IntersectMovingAABB returns the parametric time in [0, 1] at which
// moving, displaced by d over the interval, first touches stationary, or
// NoIntersection.
func IntersectMovingAABB(stationary, moving AABB3, d Vec3) float32 {
	tEnter := float32(0)
	tLeave := float32(1)

	sLo, sHi := stationary.Min.Array(), stationary.Max.Array()
	mLo, mHi := moving.Min.Array(), moving.Max.Array()
	dd := d.Array()

	for axis := 0; axis < 3; axis++ {
		if dd[axis] == 0 {
			// No motion on this axis, so the boxes must already overlap
			if sLo[axis] >= mHi[axis] || sHi[axis] <= mLo[axis] {
				return NoIntersection
			}
			continue
		}

		inv := 1 / dd[axis]
		enter := (sLo[axis] - mHi[axis]) * inv
		leave := (sHi[axis] - mLo[axis]) * inv
		if enter > leave {
			enter, leave = leave, enter
		}

		if enter > tEnter {
			tEnter = enter
		}
		if leave < tLeave {
			tLeave = leave
		}
		if tEnter > tLeave {
			return NoIntersection
		}
	}

	return tEnter
}

func clampf(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
