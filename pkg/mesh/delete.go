package mesh

import (
	"fmt"
	"slices"
)

// removed marks an entity for compaction in the bulk cleanup passes.
const removed = -1

// DeleteVertex removes one vertex. Triangles that used it are deleted and
// higher vertex indices in the remaining triangles are shifted down.
func (m *EditTriMesh) DeleteVertex(idx VertexIndex) error {
	if idx < 0 || int(idx) >= len(m.Vertices) {
		return fmt.Errorf("delete vertex %d: %w", idx, ErrIndexOutOfRange)
	}

	for i := range m.Tris {
		t := &m.Tris[i]
		t.Mark = 0
		for j := range t.V {
			switch {
			case t.V[j].Index == idx:
				t.Mark = 1
			case t.V[j].Index > idx:
				t.V[j].Index--
			}
		}
	}

	m.Vertices = slices.Delete(m.Vertices, int(idx), int(idx)+1)
	m.DeleteMarkedTris(1)
	return nil
}

// DeleteTri removes one triangle.
func (m *EditTriMesh) DeleteTri(idx TriIndex) error {
	if idx < 0 || int(idx) >= len(m.Tris) {
		return fmt.Errorf("delete tri %d: %w", idx, ErrIndexOutOfRange)
	}
	m.Tris = slices.Delete(m.Tris, int(idx), int(idx)+1)
	return nil
}

// DeleteMaterial removes one material. Triangles that used it are deleted
// and higher material indices are shifted down.
func (m *EditTriMesh) DeleteMaterial(idx MaterialIndex) error {
	if idx < 0 || int(idx) >= len(m.Materials) {
		return fmt.Errorf("delete material %d: %w", idx, ErrIndexOutOfRange)
	}

	for i := range m.Tris {
		t := &m.Tris[i]
		t.Mark = 0
		switch {
		case t.Material == idx:
			t.Mark = 1
		case t.Material > idx:
			t.Material--
		}
	}

	m.Materials = slices.Delete(m.Materials, int(idx), int(idx)+1)
	m.DeleteMarkedTris(1)
	return nil
}

// DeletePart removes one part. Triangles in it are deleted and higher part
// indices are shifted down.
func (m *EditTriMesh) DeletePart(idx PartIndex) error {
	if idx < 0 || int(idx) >= len(m.Parts) {
		return fmt.Errorf("delete part %d: %w", idx, ErrIndexOutOfRange)
	}

	for i := range m.Tris {
		t := &m.Tris[i]
		t.Mark = 0
		switch {
		case t.Part == idx:
			t.Mark = 1
		case t.Part > idx:
			t.Part--
		}
	}

	m.Parts = slices.Delete(m.Parts, int(idx), int(idx)+1)
	m.DeleteMarkedTris(1)
	return nil
}

// DeleteUnusedMaterials removes every material no triangle references and
// returns how many were removed. It runs in time linear in the number of
// triangles and materials.
func (m *EditTriMesh) DeleteUnusedMaterials() int {
	m.MarkAllMaterials(0)
	for i := range m.Tris {
		if mat := m.Tris[i].Material; mat >= 0 {
			m.Materials[mat].Mark = 1
		}
	}

	// Assign compacted indices to the survivors
	initial := len(m.Materials)
	kept := 0
	for i := range m.Materials {
		mat := &m.Materials[i]
		if mat.Mark == 0 {
			mat.Mark = removed
			continue
		}
		mat.Mark = kept
		kept++
	}
	if kept == initial {
		return 0
	}

	for i := range m.Tris {
		t := &m.Tris[i]
		if t.Material >= 0 {
			t.Material = MaterialIndex(m.Materials[t.Material].Mark)
		}
	}

	m.Materials = slices.DeleteFunc(m.Materials, func(mat Material) bool {
		return mat.Mark == removed
	})
	if len(m.Materials) != kept {
		panic(fmt.Sprintf("mesh: material compaction left %d of %d, want %d", len(m.Materials), initial, kept))
	}
	return initial - kept
}

// DeleteEmptyParts removes every part that contains no triangles and
// returns how many were removed. It runs in time linear in the number of
// triangles and parts.
func (m *EditTriMesh) DeleteEmptyParts() int {
	m.MarkAllParts(0)
	for i := range m.Tris {
		m.Parts[m.Tris[i].Part].Mark = 1
	}

	initial := len(m.Parts)
	kept := 0
	for i := range m.Parts {
		p := &m.Parts[i]
		if p.Mark == 0 {
			p.Mark = removed
			continue
		}
		p.Mark = kept
		kept++
	}
	if kept == initial {
		return 0
	}

	for i := range m.Tris {
		t := &m.Tris[i]
		t.Part = PartIndex(m.Parts[t.Part].Mark)
	}

	m.Parts = slices.DeleteFunc(m.Parts, func(p Part) bool {
		return p.Mark == removed
	})
	if len(m.Parts) != kept {
		panic(fmt.Sprintf("mesh: part compaction left %d of %d, want %d", len(m.Parts), initial, kept))
	}
	return initial - kept
}

// DeleteMarkedTris removes every triangle whose mark equals mark, keeping
// the relative order of the rest. It returns the number removed.
func (m *EditTriMesh) DeleteMarkedTris(mark int) int {
	before := len(m.Tris)
	m.Tris = slices.DeleteFunc(m.Tris, func(t Tri) bool {
		return t.Mark == mark
	})
	return before - len(m.Tris)
}

// DeleteDegenerateTris removes every triangle that uses the same vertex
// twice. It returns the number removed.
func (m *EditTriMesh) DeleteDegenerateTris() int {
	before := len(m.Tris)
	m.Tris = slices.DeleteFunc(m.Tris, func(t Tri) bool {
		return t.IsDegenerate()
	})
	return before - len(m.Tris)
}

// DetachAllFaces gives every triangle corner its own vertex. The new
// vertex list has exactly three entries per triangle, in triangle order;
// vertices no triangle used are dropped.
func (m *EditTriMesh) DetachAllFaces() {
	detached := make([]Vertex, 0, len(m.Tris)*3)
	for i := range m.Tris {
		t := &m.Tris[i]
		for j := range t.V {
			src := m.Vertices[t.V[j].Index]
			detached = append(detached, Vertex{
				P:      src.P,
				U:      src.U,
				V:      src.V,
				Normal: src.Normal,
			})
			t.V[j].Index = VertexIndex(len(detached) - 1)
		}
	}
	m.Vertices = detached
}
