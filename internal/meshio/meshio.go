// Package meshio reads and writes a YAML document form of an editable
// mesh. It is meant for fixtures and debugging, not as an asset format.
package meshio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/meshkit/pkg/math"
	"github.com/Faultbox/meshkit/pkg/mesh"
)

// ErrEmptyDocument is returned when the input holds no YAML document.
var ErrEmptyDocument = errors.New("empty mesh document")

// Document is the serialized form of an EditTriMesh.
type Document struct {
	Parts     []string      `yaml:"parts"`
	Materials []string      `yaml:"materials"`
	Vertices  []VertexEntry `yaml:"vertices"`
	Tris      []TriEntry    `yaml:"tris"`
}

// VertexEntry is one vertex. Normal and UV are omitted when zero.
type VertexEntry struct {
	P      [3]float32  `yaml:"p,flow"`
	Normal *[3]float32 `yaml:"n,flow,omitempty"`
	UV     *[2]float32 `yaml:"uv,flow,omitempty"`
}

// TriEntry is one triangle. A missing material means none was assigned.
type TriEntry struct {
	V        [3]int         `yaml:"v,flow"`
	UV       *[3][2]float32 `yaml:"uv,flow,omitempty"`
	Part     int            `yaml:"part"`
	Material *int           `yaml:"material,omitempty"`
}

// FromMesh builds the document for m.
func FromMesh(m *mesh.EditTriMesh) *Document {
	doc := &Document{
		Parts:     make([]string, len(m.Parts)),
		Materials: make([]string, len(m.Materials)),
		Vertices:  make([]VertexEntry, len(m.Vertices)),
		Tris:      make([]TriEntry, len(m.Tris)),
	}

	for i, p := range m.Parts {
		doc.Parts[i] = p.Name
	}
	for i, mat := range m.Materials {
		doc.Materials[i] = mat.DiffuseTextureName
	}

	for i, v := range m.Vertices {
		e := VertexEntry{P: v.P.Array()}
		if !v.Normal.IsZero() {
			n := v.Normal.Array()
			e.Normal = &n
		}
		if v.U != 0 || v.V != 0 {
			e.UV = &[2]float32{v.U, v.V}
		}
		doc.Vertices[i] = e
	}

	for i, t := range m.Tris {
		e := TriEntry{Part: int(t.Part)}
		var uv [3][2]float32
		hasUV := false
		for j, c := range t.V {
			e.V[j] = int(c.Index)
			uv[j] = [2]float32{c.U, c.V}
			hasUV = hasUV || c.U != 0 || c.V != 0
		}
		if hasUV {
			e.UV = &uv
		}
		if t.Material != mesh.NoMaterial {
			mat := int(t.Material)
			e.Material = &mat
		}
		doc.Tris[i] = e
	}

	return doc
}

// Mesh builds an EditTriMesh from the document. Every vertex and part
// reference must be in range; a material may be missing but not out of
// range. Triangle normals are computed.
func (d *Document) Mesh() (*mesh.EditTriMesh, error) {
	if err := d.check(); err != nil {
		return nil, err
	}

	m := mesh.New()
	for _, name := range d.Parts {
		m.AddPart(mesh.Part{Name: name})
	}
	for _, name := range d.Materials {
		m.AddMaterial(mesh.Material{DiffuseTextureName: name})
	}

	for _, e := range d.Vertices {
		v := mesh.Vertex{P: math.Vec3FromArray(e.P)}
		if e.Normal != nil {
			v.Normal = math.Vec3FromArray(*e.Normal)
		}
		if e.UV != nil {
			v.U, v.V = e.UV[0], e.UV[1]
		}
		m.AddVertex(v)
	}

	for _, e := range d.Tris {
		t := mesh.Tri{Part: mesh.PartIndex(e.Part), Material: mesh.NoMaterial}
		if e.Material != nil {
			t.Material = mesh.MaterialIndex(*e.Material)
		}
		for j := range t.V {
			t.V[j].Index = mesh.VertexIndex(e.V[j])
			if e.UV != nil {
				t.V[j].U, t.V[j].V = e.UV[j][0], e.UV[j][1]
			}
		}
		m.AddTri(t)
	}

	m.ComputeTriNormals()
	return m, nil
}

func (d *Document) check() error {
	var err error
	for i, t := range d.Tris {
		for j, idx := range t.V {
			if idx < 0 || idx >= len(d.Vertices) {
				err = multierr.Append(err, fmt.Errorf("%w: tri %d corner %d: vertex %d of %d",
					mesh.ErrInvalidMesh, i, j, idx, len(d.Vertices)))
			}
		}
		if t.Part < 0 || t.Part >= len(d.Parts) {
			err = multierr.Append(err, fmt.Errorf("%w: tri %d: part %d of %d",
				mesh.ErrInvalidMesh, i, t.Part, len(d.Parts)))
		}
		if t.Material != nil && (*t.Material < 0 || *t.Material >= len(d.Materials)) {
			err = multierr.Append(err, fmt.Errorf("%w: tri %d: material %d of %d",
				mesh.ErrInvalidMesh, i, *t.Material, len(d.Materials)))
		}
	}
	return err
}

// Encode writes m as YAML.
func Encode(w io.Writer, m *mesh.EditTriMesh) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(FromMesh(m)); err != nil {
		return fmt.Errorf("encode mesh: %w", err)
	}
	return enc.Close()
}

// Decode reads a YAML mesh document. Unknown keys are rejected.
func Decode(r io.Reader) (*mesh.EditTriMesh, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("decode mesh: %w", err)
	}
	return doc.Mesh()
}

// ReadFile decodes the mesh document at path.
func ReadFile(path string) (*mesh.EditTriMesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// WriteFile encodes m to path, creating parent directories as needed.
func WriteFile(path string, m *mesh.EditTriMesh) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := Encode(&buf, m); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
