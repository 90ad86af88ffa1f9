package mesh

import "fmt"

// EditTriMesh is an indexed triangle mesh that is easy to edit but not
// tuned for rendering. It owns four ordered lists; triangles reference
// vertices, materials and parts by index.
type EditTriMesh struct {
	Vertices  []Vertex
	Tris      []Tri
	Materials []Material
	Parts     []Part
}

// New returns an empty mesh.
func New() *EditTriMesh {
	return &EditTriMesh{}
}

// VertexCount returns the number of vertices.
func (m *EditTriMesh) VertexCount() int { return len(m.Vertices) }

// TriCount returns the number of triangles.
func (m *EditTriMesh) TriCount() int { return len(m.Tris) }

// MaterialCount returns the number of materials.
func (m *EditTriMesh) MaterialCount() int { return len(m.Materials) }

// PartCount returns the number of parts.
func (m *EditTriMesh) PartCount() int { return len(m.Parts) }

// Vertex returns the vertex at i. It panics if i is out of range.
func (m *EditTriMesh) Vertex(i VertexIndex) *Vertex {
	if i < 0 || int(i) >= len(m.Vertices) {
		panic(fmt.Sprintf("mesh: vertex index %d out of range [0,%d)", i, len(m.Vertices)))
	}
	return &m.Vertices[i]
}

// Tri returns the triangle at i. It panics if i is out of range.
func (m *EditTriMesh) Tri(i TriIndex) *Tri {
	if i < 0 || int(i) >= len(m.Tris) {
		panic(fmt.Sprintf("mesh: tri index %d out of range [0,%d)", i, len(m.Tris)))
	}
	return &m.Tris[i]
}

// Material returns the material at i. It panics if i is out of range.
func (m *EditTriMesh) Material(i MaterialIndex) *Material {
	if i < 0 || int(i) >= len(m.Materials) {
		panic(fmt.Sprintf("mesh: material index %d out of range [0,%d)", i, len(m.Materials)))
	}
	return &m.Materials[i]
}

// Part returns the part at i. It panics if i is out of range.
func (m *EditTriMesh) Part(i PartIndex) *Part {
	if i < 0 || int(i) >= len(m.Parts) {
		panic(fmt.Sprintf("mesh: part index %d out of range [0,%d)", i, len(m.Parts)))
	}
	return &m.Parts[i]
}

// Clone returns a deep copy of the mesh.
func (m *EditTriMesh) Clone() *EditTriMesh {
	return &EditTriMesh{
		Vertices:  append([]Vertex(nil), m.Vertices...),
		Tris:      append([]Tri(nil), m.Tris...),
		Materials: append([]Material(nil), m.Materials...),
		Parts:     append([]Part(nil), m.Parts...),
	}
}

// Reset empties all four lists.
func (m *EditTriMesh) Reset() {
	m.Vertices = m.Vertices[:0]
	m.Tris = m.Tris[:0]
	m.Materials = m.Materials[:0]
	m.Parts = m.Parts[:0]
}

// AddVertex appends v and returns its index.
func (m *EditTriMesh) AddVertex(v Vertex) VertexIndex {
	m.Vertices = append(m.Vertices, v)
	return VertexIndex(len(m.Vertices) - 1)
}

// AddDefaultVertex appends a zero vertex and returns its index.
func (m *EditTriMesh) AddDefaultVertex() VertexIndex {
	return m.AddVertex(Vertex{})
}

// DupVertex appends a copy of the vertex at src and returns its index.
func (m *EditTriMesh) DupVertex(src VertexIndex) VertexIndex {
	return m.AddVertex(*m.Vertex(src))
}

// AddTri appends t and returns its index.
func (m *EditTriMesh) AddTri(t Tri) TriIndex {
	m.Tris = append(m.Tris, t)
	return TriIndex(len(m.Tris) - 1)
}

// AddDefaultTri appends a zero triangle and returns its index.
func (m *EditTriMesh) AddDefaultTri() TriIndex {
	return m.AddTri(Tri{})
}

// AddMaterial appends mat and returns its index.
func (m *EditTriMesh) AddMaterial(mat Material) MaterialIndex {
	m.Materials = append(m.Materials, mat)
	return MaterialIndex(len(m.Materials) - 1)
}

// AddPart appends p and returns its index.
func (m *EditTriMesh) AddPart(p Part) PartIndex {
	m.Parts = append(m.Parts, p)
	return PartIndex(len(m.Parts) - 1)
}

// MarkAllVertices sets the mark of every vertex.
func (m *EditTriMesh) MarkAllVertices(mark int) {
	for i := range m.Vertices {
		m.Vertices[i].Mark = mark
	}
}

// MarkAllTris sets the mark of every triangle.
func (m *EditTriMesh) MarkAllTris(mark int) {
	for i := range m.Tris {
		m.Tris[i].Mark = mark
	}
}

// MarkAllMaterials sets the mark of every material.
func (m *EditTriMesh) MarkAllMaterials(mark int) {
	for i := range m.Materials {
		m.Materials[i].Mark = mark
	}
}

// MarkAllParts sets the mark of every part.
func (m *EditTriMesh) MarkAllParts(mark int) {
	for i := range m.Parts {
		m.Parts[i].Mark = mark
	}
}

// SetVertexCount grows the vertex list with zero vertices or shrinks it.
// Shrinking deletes every triangle that referenced a removed vertex.
func (m *EditTriMesh) SetVertexCount(n int) {
	if n < 0 {
		panic("mesh: negative vertex count")
	}
	if n >= len(m.Vertices) {
		for len(m.Vertices) < n {
			m.AddDefaultVertex()
		}
		return
	}

	for i := range m.Tris {
		t := &m.Tris[i]
		t.Mark = 0
		for j := range t.V {
			if int(t.V[j].Index) >= n {
				t.Mark = 1
				break
			}
		}
	}
	m.DeleteMarkedTris(1)
	m.Vertices = m.Vertices[:n]
}

// SetTriCount grows the triangle list with zero triangles or truncates it.
func (m *EditTriMesh) SetTriCount(n int) {
	if n < 0 {
		panic("mesh: negative tri count")
	}
	if n >= len(m.Tris) {
		for len(m.Tris) < n {
			m.AddDefaultTri()
		}
		return
	}
	m.Tris = m.Tris[:n]
}

// SetMaterialCount grows the material list with empty materials or shrinks
// it. Shrinking deletes every triangle that used a removed material.
func (m *EditTriMesh) SetMaterialCount(n int) {
	if n < 0 {
		panic("mesh: negative material count")
	}
	if n >= len(m.Materials) {
		for len(m.Materials) < n {
			m.AddMaterial(Material{})
		}
		return
	}

	for i := range m.Tris {
		t := &m.Tris[i]
		t.Mark = 0
		if int(t.Material) >= n {
			t.Mark = 1
		}
	}
	m.DeleteMarkedTris(1)
	m.Materials = m.Materials[:n]
}

// SetPartCount grows the part list with unnamed parts or shrinks it.
// Shrinking deletes every triangle that belonged to a removed part.
func (m *EditTriMesh) SetPartCount(n int) {
	if n < 0 {
		panic("mesh: negative part count")
	}
	if n >= len(m.Parts) {
		for len(m.Parts) < n {
			m.AddPart(Part{})
		}
		return
	}

	for i := range m.Tris {
		t := &m.Tris[i]
		t.Mark = 0
		if int(t.Part) >= n {
			t.Mark = 1
		}
	}
	m.DeleteMarkedTris(1)
	m.Parts = m.Parts[:n]
}

// ResolveUnsetMaterials assigns every triangle whose material is negative
// to a fallback material named FallbackMaterialName. The fallback is
// appended on first use only. It returns the fallback index, or NoMaterial
// if no triangle needed it.
func (m *EditTriMesh) ResolveUnsetMaterials() MaterialIndex {
	fallback := NoMaterial
	for i := range m.Tris {
		t := &m.Tris[i]
		if t.Material >= 0 {
			continue
		}
		if fallback < 0 {
			fallback = m.AddMaterial(Material{DiffuseTextureName: FallbackMaterialName})
		}
		t.Material = fallback
	}
	return fallback
}
