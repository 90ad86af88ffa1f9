package mesh

import "fmt"

// notCopied marks a source entity that has no counterpart in the
// destination mesh yet.
const notCopied = -1

// ExtractParts splits the mesh into one mesh per part. Each result holds a
// single part with only the vertices and materials its triangles use, in
// first-use order. Marks on the source are overwritten; nothing else in
// the source changes.
func (m *EditTriMesh) ExtractParts() []*EditTriMesh {
	meshes := make([]*EditTriMesh, len(m.Parts))

	// This is O(parts * tris); sorting triangles by part first would help
	// only for meshes with many parts.
	for partIdx := range m.Parts {
		m.MarkAllVertices(notCopied)
		m.MarkAllMaterials(notCopied)

		dst := New()
		dst.AddPart(m.Parts[partIdx])

		for i := range m.Tris {
			if m.Tris[i].Part != PartIndex(partIdx) {
				continue
			}
			t := m.Tris[i]

			if t.Material >= 0 {
				mat := &m.Materials[t.Material]
				if mat.Mark == notCopied {
					mat.Mark = int(dst.AddMaterial(*mat))
				}
				t.Material = MaterialIndex(mat.Mark)
			}

			m.copyCorners(dst, &t)
			t.Part = 0
			dst.AddTri(t)
		}

		meshes[partIdx] = dst
	}

	return meshes
}

// ExtractOnePartOneMaterial returns a mesh holding only the triangles of
// the given part that use the given material, with exactly one part and
// one material. Marks on the source vertices are overwritten.
func (m *EditTriMesh) ExtractOnePartOneMaterial(part PartIndex, material MaterialIndex) (*EditTriMesh, error) {
	if part < 0 || int(part) >= len(m.Parts) {
		return nil, fmt.Errorf("extract part %d: %w", part, ErrIndexOutOfRange)
	}
	if material < 0 || int(material) >= len(m.Materials) {
		return nil, fmt.Errorf("extract material %d: %w", material, ErrIndexOutOfRange)
	}

	m.MarkAllVertices(notCopied)

	dst := New()
	dst.AddPart(m.Parts[part])
	dst.AddMaterial(m.Materials[material])

	for i := range m.Tris {
		if m.Tris[i].Part != part || m.Tris[i].Material != material {
			continue
		}
		t := m.Tris[i]
		m.copyCorners(dst, &t)
		t.Part = 0
		t.Material = 0
		dst.AddTri(t)
	}

	return dst, nil
}

// copyCorners remaps the corners of t to vertices in dst, copying each
// source vertex on first reference.
func (m *EditTriMesh) copyCorners(dst *EditTriMesh, t *Tri) {
	for j := range t.V {
		v := &m.Vertices[t.V[j].Index]
		if v.Mark == notCopied {
			v.Mark = int(dst.AddVertex(*v))
		}
		t.V[j].Index = VertexIndex(v.Mark)
	}
}
