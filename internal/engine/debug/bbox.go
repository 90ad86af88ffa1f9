// Package debug provides debug visualization utilities.
package debug

import "github.com/Faultbox/meshkit/pkg/math"

// BBoxWireframeVertexCount is the number of vertices for a bbox wireframe (12 edges × 2).
const BBoxWireframeVertexCount = 24

// DefaultBBoxPadding is the default padding for selection boxes.
const DefaultBBoxPadding = 0.05

// bboxEdges pairs corner indices, in math.AABB3.Corner numbering, that
// differ along exactly one axis.
var bboxEdges = func() [12][2]int {
	var edges [12][2]int
	n := 0
	for i := 0; i < 8; i++ {
		for _, bit := range []int{1, 2, 4} {
			if i&bit == 0 {
				edges[n] = [2]int{i, i | bit}
				n++
			}
		}
	}
	return edges
}()

// BBoxWireframeLines returns the 12 edges of b as 24 line endpoints.
func BBoxWireframeLines(b math.AABB3) []math.Vec3 {
	lines := make([]math.Vec3, 0, BBoxWireframeVertexCount)
	for _, e := range bboxEdges {
		lines = append(lines, b.Corner(e[0]), b.Corner(e[1]))
	}
	return lines
}

// GenerateBBoxWireframeVertices flattens the wireframe of b into
// [x, y, z] triples ready for a line-list vertex buffer.
func GenerateBBoxWireframeVertices(b math.AABB3) []float32 {
	out := make([]float32, 0, BBoxWireframeVertexCount*3)
	for _, p := range BBoxWireframeLines(b) {
		out = append(out, p.X, p.Y, p.Z)
	}
	return out
}

// GenerateBBoxWireframeFromAABB creates wireframe vertices for a local box
// placed in the world by modelToWorld, expanded by padding on all sides.
// An empty box yields no vertices.
func GenerateBBoxWireframeFromAABB(local math.AABB3, modelToWorld math.Mat4x3, padding float32) []float32 {
	if local.IsEmpty() {
		return nil
	}
	world := local.TransformedBox(modelToWorld)

	pad := math.Vec3{X: padding, Y: padding, Z: padding}
	world.Min = world.Min.Sub(pad)
	world.Max = world.Max.Add(pad)

	return GenerateBBoxWireframeVertices(world)
}
