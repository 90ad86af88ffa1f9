package mesh

import "github.com/Faultbox/meshkit/pkg/math"

// boxFaces lists the four corners of each box face in math.AABB3.Corner
// numbering, wound so that computed normals point outward.
var boxFaces = [6]struct {
	corners [4]int
	cap     bool
}{
	{[4]int{0, 4, 6, 2}, false}, // -X
	{[4]int{1, 3, 7, 5}, false}, // +X
	{[4]int{0, 1, 5, 4}, true},  // -Y
	{[4]int{2, 6, 7, 3}, true},  // +Y
	{[4]int{0, 2, 3, 1}, false}, // -Z
	{[4]int{4, 5, 7, 6}, false}, // +Z
}

var boxUVs = [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// NewBox builds a box mesh with one part named "box". Each face has its own
// four vertices and two triangles with outward normals. The four sides use
// a material textured with sideTexture; the top and bottom use capTexture.
func NewBox(b math.AABB3, sideTexture, capTexture string) *EditTriMesh {
	m := New()
	part := m.AddPart(Part{Name: "box"})
	side := m.AddMaterial(Material{DiffuseTextureName: sideTexture})
	capMat := m.AddMaterial(Material{DiffuseTextureName: capTexture})

	for _, face := range boxFaces {
		var idx [4]VertexIndex
		for k, c := range face.corners {
			idx[k] = m.AddVertex(Vertex{P: b.Corner(c)})
		}

		mat := side
		if face.cap {
			mat = capMat
		}

		for _, tri := range [2][3]int{{0, 1, 2}, {0, 2, 3}} {
			t := Tri{Part: part, Material: mat}
			for j, k := range tri {
				t.V[j] = Vert{Index: idx[k], U: boxUVs[k][0], V: boxUVs[k][1]}
			}
			m.AddTri(t)
		}
	}

	m.ComputeTriNormals()
	return m
}
