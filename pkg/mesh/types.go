// Package mesh provides EditTriMesh, an editable indexed triangle mesh with
// the deletion, partitioning and optimization passes needed to turn
// imported geometry into renderer-friendly data.
//
// Entities reference each other by index into the owning mesh's lists.
// Every structural edit keeps those references valid; the Mark field on
// each entity is scratch space that any operation may overwrite.
package mesh

import (
	gomath "math"

	"github.com/Faultbox/meshkit/pkg/math"
)

// VertexIndex indexes EditTriMesh.Vertices.
type VertexIndex int

// TriIndex indexes EditTriMesh.Tris.
type TriIndex int

// MaterialIndex indexes EditTriMesh.Materials.
type MaterialIndex int

// PartIndex indexes EditTriMesh.Parts.
type PartIndex int

// NoMaterial marks a triangle whose material has not been assigned yet.
// ResolveUnsetMaterials replaces it with a fallback material.
const NoMaterial MaterialIndex = -1

// FallbackMaterialName is the texture name given to the material that
// ResolveUnsetMaterials appends.
const FallbackMaterialName = "White"

// Vertex is a point in the master vertex list.
//
// U, V and Normal are only valid after CopyUvsIntoVertices and
// ComputeVertexNormals respectively; the face-level UVs in Vert are
// authoritative.
type Vertex struct {
	P      math.Vec3
	U, V   float32
	Normal math.Vec3
	Mark   int
}

// Vert is one corner of a triangle.
type Vert struct {
	Index VertexIndex
	U, V  float32
}

// Tri is a triangle face.
type Tri struct {
	V        [3]Vert
	Normal   math.Vec3
	Part     PartIndex
	Material MaterialIndex
	Mark     int
}

// IsDegenerate reports whether any two corners share a vertex index.
func (t *Tri) IsDegenerate() bool {
	return t.V[0].Index == t.V[1].Index ||
		t.V[1].Index == t.V[2].Index ||
		t.V[0].Index == t.V[2].Index
}

// FindVertex returns the first corner (0..2) that references idx, or -1.
func (t *Tri) FindVertex(idx VertexIndex) int {
	for i := range t.V {
		if t.V[i].Index == idx {
			return i
		}
	}
	return -1
}

// Material describes a surface. Only the diffuse texture is tracked.
type Material struct {
	DiffuseTextureName string
	Mark               int
}

// Part is a named group of triangles.
type Part struct {
	Name string
	Mark int
}

// OptimizationParams controls vertex welding.
type OptimizationParams struct {
	// CoincidentVertexTolerance is the distance within which two vertices
	// are considered the same point.
	CoincidentVertexTolerance float32

	// CosOfEdgeAngleTolerance is the cosine of the largest angle between
	// adjacent face normals across which vertices may still be welded.
	// Use SetEdgeAngleToleranceDegrees to set it.
	CosOfEdgeAngleTolerance float32
}

// DefaultOptimizationParams welds vertices within 1/8 inch (1 unit = 1 ft)
// and keeps edges sharper than 80 degrees detached.
func DefaultOptimizationParams() OptimizationParams {
	p := OptimizationParams{
		CoincidentVertexTolerance: 1.0 / 12.0 / 8.0,
	}
	p.SetEdgeAngleToleranceDegrees(80)
	return p
}

// SetEdgeAngleToleranceDegrees sets the edge angle tolerance. Angles of
// 180 degrees or more weld regardless of the angle.
func (p *OptimizationParams) SetEdgeAngleToleranceDegrees(degrees float32) {
	if degrees >= 180 {
		p.CosOfEdgeAngleTolerance = -999
		return
	}
	p.CosOfEdgeAngleTolerance = float32(gomath.Cos(float64(math.DegToRad(degrees))))
}
