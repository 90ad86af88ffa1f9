package mesh

import (
	"cmp"
	"slices"
)

// OptimizeStats summarizes what OptimizeForRendering changed.
type OptimizeStats struct {
	Welded         int
	DegenerateTris int
	UVSplits       int
	UnusedVertices int
}

// OptimizeVertexOrder reorders vertices into the order in which triangles
// first reference them, scanning triangles in list order, and remaps the
// triangles to match. Vertices no triangle uses keep their relative order
// after all used ones, or are dropped if removeUnused is set. It returns
// the number of unused vertices found.
func (m *EditTriMesh) OptimizeVertexOrder(removeUnused bool) int {
	unusedRank := len(m.Vertices)
	m.MarkAllVertices(unusedRank)

	used := 0
	for i := range m.Tris {
		t := &m.Tris[i]
		for j := range t.V {
			v := &m.Vertices[t.V[j].Index]
			if v.Mark == unusedRank {
				v.Mark = used
				used++
			}
			t.V[j].Index = VertexIndex(v.Mark)
		}
	}

	slices.SortStableFunc(m.Vertices, func(a, b Vertex) int {
		return cmp.Compare(a.Mark, b.Mark)
	})

	unused := len(m.Vertices) - used
	if removeUnused {
		m.Vertices = m.Vertices[:used]
	}
	return unused
}

// SortTrisByMaterial orders triangles by material index. Triangles with
// the same material keep their original relative order.
func (m *EditTriMesh) SortTrisByMaterial() {
	for i := range m.Tris {
		m.Tris[i].Mark = i
	}
	slices.SortFunc(m.Tris, func(a, b Tri) int {
		if c := cmp.Compare(a.Material, b.Material); c != 0 {
			return c
		}
		return cmp.Compare(a.Mark, b.Mark)
	})
}

// CopyUvsIntoVertices copies the face-level UVs into the vertices so the
// mesh can be drawn with per-vertex UVs. The first triangle to reach a
// vertex claims it. A later corner with different UVs is moved to another
// vertex with the same position and normal that is unclaimed or already
// carries its UVs; failing that, the vertex is duplicated. It returns the
// number of vertices added.
func (m *EditTriMesh) CopyUvsIntoVertices() int {
	const (
		unclaimed = 0
		claimed   = 1
	)

	m.MarkAllVertices(unclaimed)
	added := 0

	for ti := range m.Tris {
		t := &m.Tris[ti]
		for c := range t.V {
			corner := &t.V[c]
			v := &m.Vertices[corner.Index]

			if v.Mark == unclaimed {
				v.U, v.V = corner.U, corner.V
				v.Mark = claimed
				continue
			}
			if v.U == corner.U && v.V == corner.V {
				continue
			}

			// Claimed with different UVs. Look for a geometric twin.
			found := false
			for k := range m.Vertices {
				other := &m.Vertices[k]
				if other.P != v.P || other.Normal != v.Normal {
					continue
				}
				if other.Mark == unclaimed {
					other.U, other.V = corner.U, corner.V
					other.Mark = claimed
					corner.Index = VertexIndex(k)
					found = true
					break
				}
				if other.U == corner.U && other.V == corner.V {
					corner.Index = VertexIndex(k)
					found = true
					break
				}
			}
			if found {
				continue
			}

			dup := *v
			dup.U, dup.V = corner.U, corner.V
			dup.Mark = claimed
			corner.Index = m.AddVertex(dup)
			added++
		}
	}

	return added
}

// OptimizeForRendering prepares the mesh for drawing: it welds coincident
// vertices, computes vertex normals, copies UVs into vertices, reorders
// vertices by first use (dropping unused ones) and sorts triangles by
// material. A non-positive CoincidentVertexTolerance skips welding.
func (m *EditTriMesh) OptimizeForRendering(opt OptimizationParams) OptimizeStats {
	var stats OptimizeStats

	stats.Welded, stats.DegenerateTris = m.weld(opt)
	m.ComputeVertexNormals()
	stats.UVSplits = m.CopyUvsIntoVertices()
	stats.UnusedVertices = m.OptimizeVertexOrder(true)
	m.SortTrisByMaterial()

	return stats
}
