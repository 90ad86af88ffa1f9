package model

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Faultbox/meshkit/pkg/math"
	"github.com/Faultbox/meshkit/pkg/mesh"
)

func corner(idx mesh.VertexIndex, u, v float32) mesh.Vert {
	return mesh.Vert{Index: idx, U: u, V: v}
}

// texturedQuad is a unit square facing +Z with consistent UVs.
func texturedQuad() *mesh.EditTriMesh {
	m := mesh.New()
	m.AddPart(mesh.Part{Name: "quad"})
	m.AddMaterial(mesh.Material{DiffuseTextureName: "quad.tga"})
	for _, p := range []math.Vec3{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}} {
		m.AddVertex(mesh.Vertex{P: p, Normal: math.Vec3{Z: 1}})
	}
	m.AddTri(mesh.Tri{V: [3]mesh.Vert{corner(0, 0, 0), corner(1, 1, 0), corner(2, 1, 1)}})
	m.AddTri(mesh.Tri{V: [3]mesh.Vert{corner(0, 0, 0), corner(2, 1, 1), corner(3, 0, 1)}})
	return m
}

// threeParts builds a strip whose triangles use materials 1 and 3 in part
// 0 and material 4 in part 1, out of five materials.
func threeParts() *mesh.EditTriMesh {
	m := mesh.New()
	m.AddPart(mesh.Part{Name: "body"})
	m.AddPart(mesh.Part{Name: "head"})
	for _, name := range []string{"m0", "m1", "m2", "m3", "m4"} {
		m.AddMaterial(mesh.Material{DiffuseTextureName: name})
	}
	for i := 0; i < 5; i++ {
		m.AddVertex(mesh.Vertex{P: math.Vec3{X: float32(i), Y: float32(i % 2)}})
	}
	add := func(a, b, c mesh.VertexIndex, part mesh.PartIndex, mat mesh.MaterialIndex) {
		m.AddTri(mesh.Tri{
			V:        [3]mesh.Vert{{Index: a}, {Index: b}, {Index: c}},
			Part:     part,
			Material: mat,
		})
	}
	add(0, 1, 2, 0, 1)
	add(2, 3, 4, 0, 3)
	add(1, 3, 4, 1, 4)
	return m
}

func TestTriMeshFromEditMesh(t *testing.T) {
	src := texturedQuad()
	tm, err := TriMeshFromEditMesh(src)
	if err != nil {
		t.Fatalf("TriMeshFromEditMesh() error = %v", err)
	}

	if len(tm.Vertices) != 4 || len(tm.Tris) != 2 {
		t.Fatalf("got %d vertices %d tris, want 4/2", len(tm.Vertices), len(tm.Tris))
	}
	if tm.Tris[1].Index != [3]uint16{0, 2, 3} {
		t.Errorf("tri 1 = %v, want [0 2 3]", tm.Tris[1].Index)
	}

	v := tm.Vertices[2]
	if v.P != (math.Vec3{X: 1, Y: 1}) || v.N != (math.Vec3{Z: 1}) || v.U != 1 || v.V != 1 {
		t.Errorf("vertex 2 = %+v", v)
	}

	want := math.NewAABB3(math.Vec3{}, math.Vec3{X: 1, Y: 1})
	if tm.Bounds != want {
		t.Errorf("Bounds = %v, want %v", tm.Bounds, want)
	}

	if src.Vertices[2].U != 0 {
		t.Error("TriMeshFromEditMesh() modified the source vertices")
	}
}

func TestTriMeshComputeBounds(t *testing.T) {
	tm := &TriMesh{Vertices: []RenderVertex{{P: math.Vec3{X: -2}}, {P: math.Vec3{Y: 3, Z: 1}}}}
	tm.ComputeBounds()

	want := math.NewAABB3(math.Vec3{X: -2}, math.Vec3{Y: 3, Z: 1})
	if tm.Bounds != want {
		t.Errorf("Bounds = %v, want %v", tm.Bounds, want)
	}

	tm.Vertices = nil
	tm.ComputeBounds()
	if !tm.Bounds.IsEmpty() {
		t.Error("Bounds of no vertices should be empty")
	}
}

func TestTriMeshTooManyVertices(t *testing.T) {
	m := mesh.New()
	m.AddPart(mesh.Part{})
	m.AddMaterial(mesh.Material{})
	n := MaxVertices + 1
	for i := 0; i < n; i++ {
		m.AddVertex(mesh.Vertex{P: math.Vec3{X: float32(i)}})
	}
	for i := 0; i+2 < n; i += 2 {
		m.AddTri(mesh.Tri{V: [3]mesh.Vert{
			{Index: mesh.VertexIndex(i)},
			{Index: mesh.VertexIndex(i + 1)},
			{Index: mesh.VertexIndex(i + 2)},
		}})
	}

	if _, err := TriMeshFromEditMesh(m); !errors.Is(err, ErrTooManyVertices) {
		t.Errorf("TriMeshFromEditMesh() error = %v, want ErrTooManyVertices", err)
	}
}

func TestModelFromEditMesh(t *testing.T) {
	src := threeParts()
	m, err := ModelFromEditMesh(src)
	if err != nil {
		t.Fatalf("ModelFromEditMesh() error = %v", err)
	}

	want := []struct {
		part    string
		texture string
	}{
		{"body", "m1"},
		{"body", "m3"},
		{"head", "m4"},
	}
	if m.PartCount() != len(want) {
		t.Fatalf("PartCount() = %d, want %d", m.PartCount(), len(want))
	}
	for i, w := range want {
		p := m.Parts[i]
		if p.Name != w.part || p.Texture.Name != w.texture {
			t.Errorf("part %d = %q/%q, want %q/%q", i, p.Name, p.Texture.Name, w.part, w.texture)
		}
		if p.Texture.Handle != -1 {
			t.Errorf("part %d handle = %d, want -1 before caching", i, p.Texture.Handle)
		}
		if len(p.Mesh.Vertices) != 3 || len(p.Mesh.Tris) != 1 {
			t.Errorf("part %d: %d vertices %d tris, want 3/1", i, len(p.Mesh.Vertices), len(p.Mesh.Tris))
		}
		if p.Mesh.Tris[0].Index != [3]uint16{0, 1, 2} {
			t.Errorf("part %d tri = %v", i, p.Mesh.Tris[0].Index)
		}
	}

	if src.TriCount() != 3 || src.MaterialCount() != 5 || src.PartCount() != 2 {
		t.Error("ModelFromEditMesh() changed the source mesh")
	}

	vertices, tris := m.Counts()
	if vertices != 9 || tris != 3 {
		t.Errorf("Counts() = %d, %d, want 9, 3", vertices, tris)
	}

	wantBounds := math.NewAABB3(math.Vec3{}, math.Vec3{X: 4, Y: 1})
	if got := m.Bounds(); got != wantBounds {
		t.Errorf("Bounds() = %v, want %v", got, wantBounds)
	}
}

type call struct {
	op     string
	handle int
	tris   int
}

type fakeRenderer struct {
	next    int
	fail    string
	cached  []string
	calls   []call
	current int
}

func (r *fakeRenderer) CacheTexture(name string) (int, error) {
	if name == r.fail {
		return 0, errors.New("not found")
	}
	r.cached = append(r.cached, name)
	r.next++
	return r.next, nil
}

func (r *fakeRenderer) SelectTexture(handle int) {
	r.current = handle
	r.calls = append(r.calls, call{op: "select", handle: handle})
}

func (r *fakeRenderer) RenderTriMesh(vertices []RenderVertex, tris []RenderTri) {
	r.calls = append(r.calls, call{op: "draw", handle: r.current, tris: len(tris)})
}

func TestModelCacheAndRender(t *testing.T) {
	m, err := ModelFromEditMesh(threeParts())
	if err != nil {
		t.Fatalf("ModelFromEditMesh() error = %v", err)
	}

	r := &fakeRenderer{}
	if err := m.Cache(r); err != nil {
		t.Fatalf("Cache() error = %v", err)
	}
	if err := m.Cache(r); err != nil {
		t.Fatalf("second Cache() error = %v", err)
	}
	if len(r.cached) != 3 {
		t.Errorf("cached %v, want each texture once", r.cached)
	}

	m.Render(r)
	if len(r.calls) != 6 {
		t.Fatalf("Render() made %d calls, want 6", len(r.calls))
	}
	for i := 0; i < 3; i++ {
		draw := r.calls[2*i+1]
		if draw.op != "draw" || draw.handle != i+1 || draw.tris != 1 {
			t.Errorf("draw %d = %+v", i, draw)
		}
	}

	r.calls = nil
	if err := m.RenderPart(r, 2); err != nil {
		t.Fatalf("RenderPart(2) error = %v", err)
	}
	if len(r.calls) != 2 || r.calls[1].handle != 3 {
		t.Errorf("RenderPart(2) calls = %+v", r.calls)
	}
	if err := m.RenderPart(r, 3); !errors.Is(err, mesh.ErrIndexOutOfRange) {
		t.Errorf("RenderPart(3) error = %v, want ErrIndexOutOfRange", err)
	}
}

func TestModelCacheError(t *testing.T) {
	m, err := ModelFromEditMesh(threeParts())
	if err != nil {
		t.Fatalf("ModelFromEditMesh() error = %v", err)
	}

	r := &fakeRenderer{fail: "m3"}
	if err := m.Cache(r); err == nil {
		t.Fatal("Cache() error = nil, want failure for m3")
	}
	if m.Parts[0].Texture.Handle != 1 || m.Parts[1].Texture.Handle != -1 {
		t.Errorf("handles = %d, %d", m.Parts[0].Texture.Handle, m.Parts[1].Texture.Handle)
	}
}

func TestBuild(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(core)

	box := mesh.NewBox(math.NewAABB3(math.Vec3{X: -1, Y: -1, Z: -1}, math.Vec3{X: 1, Y: 1, Z: 1}), "side", "cap")
	m, err := Build(box, DefaultBuildOptions(), log)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if m.PartCount() != 2 {
		t.Fatalf("PartCount() = %d, want 2", m.PartCount())
	}
	if m.Parts[0].Texture.Name != "side" || len(m.Parts[0].Mesh.Tris) != 8 || len(m.Parts[0].Mesh.Vertices) != 16 {
		t.Errorf("side part: %q with %d tris %d vertices",
			m.Parts[0].Texture.Name, len(m.Parts[0].Mesh.Tris), len(m.Parts[0].Mesh.Vertices))
	}
	if m.Parts[1].Texture.Name != "cap" || len(m.Parts[1].Mesh.Tris) != 4 {
		t.Errorf("cap part: %q with %d tris", m.Parts[1].Texture.Name, len(m.Parts[1].Mesh.Tris))
	}

	built := logs.FilterMessage("model built").All()
	if len(built) != 1 {
		t.Fatalf("got %d 'model built' entries, want 1", len(built))
	}
	if got := built[0].ContextMap()["parts"]; got != int64(2) {
		t.Errorf("logged parts = %v, want 2", got)
	}
	if logs.FilterMessage("mesh optimized").Len() != 1 {
		t.Error("missing 'mesh optimized' entry")
	}
	if logs.FilterMessage("model part").Len() != 2 {
		t.Error("want one 'model part' entry per part")
	}
}

func TestBuildErrors(t *testing.T) {
	if _, err := Build(mesh.New(), DefaultBuildOptions(), nil); !errors.Is(err, mesh.ErrEmptyMesh) {
		t.Errorf("Build(empty) error = %v, want ErrEmptyMesh", err)
	}

	src := texturedQuad()
	src.Tris[1].Material = mesh.NoMaterial
	opts := DefaultBuildOptions()
	opts.ResolveMaterials = false
	if _, err := Build(src, opts, nil); !errors.Is(err, mesh.ErrInvalidMesh) {
		t.Errorf("Build(unset material) error = %v, want ErrInvalidMesh", err)
	}
}

func TestBuildResolvesMaterials(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)

	src := texturedQuad()
	src.Tris[1].Material = mesh.NoMaterial
	opts := DefaultBuildOptions()
	opts.Optimize = false

	m, err := Build(src, opts, zap.New(core))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if m.PartCount() != 2 || m.Parts[1].Texture.Name != mesh.FallbackMaterialName {
		t.Errorf("parts = %+v", m.Parts)
	}
	if logs.Len() != 1 {
		t.Errorf("got %d warnings, want 1", logs.Len())
	}
}
