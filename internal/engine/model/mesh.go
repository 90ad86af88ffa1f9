package model

import (
	"fmt"

	"github.com/Faultbox/meshkit/pkg/math"
	"github.com/Faultbox/meshkit/pkg/mesh"
)

// TriMeshFromEditMesh converts a single-part, single-material mesh into a
// flat render mesh. Work happens on a copy: UVs are copied into vertices
// and unused vertices dropped, both of which leave an already optimized
// mesh unchanged. Normals and UVs are taken from the vertices as they are.
func TriMeshFromEditMesh(src *mesh.EditTriMesh) (*TriMesh, error) {
	work := src.Clone()
	work.CopyUvsIntoVertices()
	work.OptimizeVertexOrder(true)

	if n := work.VertexCount(); n > MaxVertices {
		return nil, fmt.Errorf("convert mesh with %d vertices: %w", n, ErrTooManyVertices)
	}

	tm := &TriMesh{
		Vertices: make([]RenderVertex, len(work.Vertices)),
		Tris:     make([]RenderTri, len(work.Tris)),
	}

	for i, v := range work.Vertices {
		tm.Vertices[i] = RenderVertex{P: v.P, N: v.Normal, U: v.U, V: v.V}
	}
	for i, t := range work.Tris {
		tm.Tris[i] = RenderTri{Index: [3]uint16{
			uint16(t.V[0].Index),
			uint16(t.V[1].Index),
			uint16(t.V[2].Index),
		}}
	}

	tm.ComputeBounds()
	return tm, nil
}

// ComputeBounds recomputes the cached bounding box from the vertices.
func (tm *TriMesh) ComputeBounds() {
	tm.Bounds = math.EmptyAABB3()
	for i := range tm.Vertices {
		tm.Bounds.AddPoint(tm.Vertices[i].P)
	}
}

// ModelFromEditMesh splits src by part and then by material, converting
// each piece into its own TriMesh. A part contributes one entry per
// material its triangles use. Only vertex and material marks on src are
// changed.
func ModelFromEditMesh(src *mesh.EditTriMesh) (*Model, error) {
	m := &Model{}

	for partIdx, part := range src.ExtractParts() {
		for matIdx := range part.Materials {
			piece, err := part.ExtractOnePartOneMaterial(0, mesh.MaterialIndex(matIdx))
			if err != nil {
				return nil, fmt.Errorf("part %d material %d: %w", partIdx, matIdx, err)
			}
			if piece.TriCount() == 0 {
				continue
			}

			tm, err := TriMeshFromEditMesh(piece)
			if err != nil {
				return nil, fmt.Errorf("part %d material %d: %w", partIdx, matIdx, err)
			}

			m.Parts = append(m.Parts, ModelPart{
				Name: part.Parts[0].Name,
				Mesh: tm,
				Texture: TextureReference{
					Name:   part.Materials[matIdx].DiffuseTextureName,
					Handle: -1,
				},
			})
		}
	}

	return m, nil
}

// PartCount returns the number of render meshes in the model.
func (m *Model) PartCount() int {
	return len(m.Parts)
}

// Bounds returns the box around every part.
func (m *Model) Bounds() math.AABB3 {
	box := math.EmptyAABB3()
	for _, p := range m.Parts {
		box.AddAABB(p.Mesh.Bounds)
	}
	return box
}

// Counts returns the total vertex and triangle counts across all parts.
func (m *Model) Counts() (vertices, tris int) {
	for _, p := range m.Parts {
		vertices += len(p.Mesh.Vertices)
		tris += len(p.Mesh.Tris)
	}
	return vertices, tris
}
