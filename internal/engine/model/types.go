// Package model converts edited meshes into render-ready triangle meshes,
// one per part and material, and hands them to a renderer.
package model

import (
	"errors"

	"github.com/Faultbox/meshkit/pkg/math"
	"github.com/Faultbox/meshkit/pkg/mesh"
)

// MaxVertices is the largest vertex count a TriMesh can address with
// 16-bit indices.
const MaxVertices = 1 << 16

// ErrTooManyVertices is returned when a mesh needs more vertices than
// RenderTri indices can address.
var ErrTooManyVertices = errors.New("too many vertices for 16-bit indices")

// RenderVertex is a fully resolved vertex ready for upload.
type RenderVertex struct {
	P    math.Vec3
	N    math.Vec3
	U, V float32
}

// RenderTri holds three indices into a TriMesh vertex buffer.
type RenderTri struct {
	Index [3]uint16
}

// TriMesh is a flat vertex and index buffer with a cached bounding box.
type TriMesh struct {
	Vertices []RenderVertex
	Tris     []RenderTri
	Bounds   math.AABB3
}

// TextureReference names a texture and the handle the renderer gave it
// when cached. Handle is -1 until Model.Cache runs.
type TextureReference struct {
	Name   string
	Handle int
}

// ModelPart is one (part, material) slice of a model.
type ModelPart struct {
	Name    string
	Mesh    *TriMesh
	Texture TextureReference
}

// Model is an ordered list of render meshes, grouped by source part and
// then by material.
type Model struct {
	Parts []ModelPart
}

// BuildOptions controls Build.
type BuildOptions struct {
	// Optimize runs OptimizeForRendering on the mesh before conversion.
	Optimize bool
	// Params are passed to OptimizeForRendering.
	Params mesh.OptimizationParams
	// ResolveMaterials assigns the fallback material to triangles that
	// have none instead of failing validation.
	ResolveMaterials bool
}

// DefaultBuildOptions optimizes with default parameters and resolves
// unset materials.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{
		Optimize:         true,
		Params:           mesh.DefaultOptimizationParams(),
		ResolveMaterials: true,
	}
}
