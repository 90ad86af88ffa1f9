package mesh

import (
	gomath "math"

	"github.com/Faultbox/meshkit/pkg/math"
)

type weldCell [3]int64

// WeldVertices merges vertices that lie within CoincidentVertexTolerance
// of an earlier vertex, unless any pair of faces around the two vertices
// meets at an angle sharper than the edge angle tolerance. UVs are
// ignored; the face-level UVs stay authoritative. Triangles that collapse
// are deleted and unused vertices are dropped. It returns the number of
// vertices merged away.
func (m *EditTriMesh) WeldVertices(opt OptimizationParams) int {
	welded, _ := m.weld(opt)
	return welded
}

func (m *EditTriMesh) weld(opt OptimizationParams) (welded, degenerate int) {
	tol := opt.CoincidentVertexTolerance
	if tol <= 0 || len(m.Vertices) < 2 {
		return 0, 0
	}
	tolSq := tol * tol

	m.ComputeTriNormals()

	faces := make([][]TriIndex, len(m.Vertices))
	for i := range m.Tris {
		for _, c := range m.Tris[i].V {
			faces[c.Index] = append(faces[c.Index], TriIndex(i))
		}
	}

	// Bucket representatives by quantized position for O(n) lookup
	grid := make(map[weldCell][]VertexIndex)
	remap := make([]VertexIndex, len(m.Vertices))

	for i := range m.Vertices {
		self := VertexIndex(i)
		remap[i] = self
		p := m.Vertices[i].P
		home := cellOf(p, tol)

	search:
		for dx := int64(-1); dx <= 1; dx++ {
			for dy := int64(-1); dy <= 1; dy++ {
				for dz := int64(-1); dz <= 1; dz++ {
					key := weldCell{home[0] + dx, home[1] + dy, home[2] + dz}
					for _, rep := range grid[key] {
						if p.DistanceSquared(m.Vertices[rep].P) > tolSq {
							continue
						}
						if !m.facesCompatible(faces[i], faces[rep], opt.CosOfEdgeAngleTolerance) {
							continue
						}
						remap[i] = rep
						faces[rep] = append(faces[rep], faces[i]...)
						welded++
						break search
					}
				}
			}
		}

		if remap[i] == self {
			grid[home] = append(grid[home], self)
		}
	}

	if welded == 0 {
		return 0, 0
	}

	for i := range m.Tris {
		t := &m.Tris[i]
		for j := range t.V {
			t.V[j].Index = remap[t.V[j].Index]
		}
	}

	degenerate = m.DeleteDegenerateTris()
	m.OptimizeVertexOrder(true)
	return welded, degenerate
}

// facesCompatible reports whether every face in a meets every face in b
// at an angle within tolerance. Faces with no usable normal are ignored.
func (m *EditTriMesh) facesCompatible(a, b []TriIndex, cosTol float32) bool {
	for _, fa := range a {
		na := m.Tris[fa].Normal
		if na.IsZero() {
			continue
		}
		for _, fb := range b {
			nb := m.Tris[fb].Normal
			if nb.IsZero() {
				continue
			}
			if na.Dot(nb) < cosTol {
				return false
			}
		}
	}
	return true
}

func cellOf(p math.Vec3, size float32) weldCell {
	return weldCell{
		int64(gomath.Floor(float64(p.X / size))),
		int64(gomath.Floor(float64(p.Y / size))),
		int64(gomath.Floor(float64(p.Z / size))),
	}
}
