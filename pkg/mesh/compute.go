package mesh

import "github.com/Faultbox/meshkit/pkg/math"

// ComputeOneTriNormal recomputes the surface normal of one triangle from
// its clockwise edge vectors. Degenerate triangles get a zero normal.
func (m *EditTriMesh) ComputeOneTriNormal(idx TriIndex) {
	m.computeTriNormal(m.Tri(idx))
}

func (m *EditTriMesh) computeTriNormal(t *Tri) {
	v1 := m.Vertices[t.V[0].Index].P
	v2 := m.Vertices[t.V[1].Index].P
	v3 := m.Vertices[t.V[2].Index].P

	e1 := v3.Sub(v2)
	e2 := v1.Sub(v3)
	t.Normal = e1.Cross(e2).Normalize()
}

// ComputeTriNormals recomputes every triangle normal.
func (m *EditTriMesh) ComputeTriNormals() {
	for i := range m.Tris {
		m.computeTriNormal(&m.Tris[i])
	}
}

// ComputeVertexNormals recomputes triangle normals, then sets each vertex
// normal to the normalized sum of the normals of the triangles using it.
// Unused vertices end up with a zero normal.
func (m *EditTriMesh) ComputeVertexNormals() {
	m.ComputeTriNormals()

	for i := range m.Vertices {
		m.Vertices[i].Normal = math.Zero3()
	}

	for i := range m.Tris {
		t := &m.Tris[i]
		for j := range t.V {
			v := &m.Vertices[t.V[j].Index]
			v.Normal = v.Normal.Add(t.Normal)
		}
	}

	for i := range m.Vertices {
		m.Vertices[i].Normal = m.Vertices[i].Normal.Normalize()
	}
}

// ComputeBounds returns the box around every vertex, used or not. An
// empty mesh yields an empty box.
func (m *EditTriMesh) ComputeBounds() math.AABB3 {
	box := math.EmptyAABB3()
	for i := range m.Vertices {
		box.AddPoint(m.Vertices[i].P)
	}
	return box
}

// TransformVertices transforms every vertex position by mat. Normals are
// left alone; recompute them if needed.
func (m *EditTriMesh) TransformVertices(mat math.Mat4x3) {
	for i := range m.Vertices {
		m.Vertices[i].P = mat.TransformPoint(m.Vertices[i].P)
	}
}
