package mesh

import (
	"fmt"

	"go.uber.org/multierr"
)

// Validate checks that every triangle references an existing vertex,
// material and part. All problems are reported together; each one wraps
// ErrInvalidMesh. Use multierr.Errors to list them.
func (m *EditTriMesh) Validate() error {
	var err error

	for i := range m.Tris {
		t := &m.Tris[i]
		for j, c := range t.V {
			if c.Index < 0 || int(c.Index) >= len(m.Vertices) {
				err = multierr.Append(err, fmt.Errorf("%w: tri %d corner %d: vertex %d of %d",
					ErrInvalidMesh, i, j, c.Index, len(m.Vertices)))
			}
		}
		if t.Material == NoMaterial {
			err = multierr.Append(err, fmt.Errorf("%w: tri %d: material not set", ErrInvalidMesh, i))
		} else if t.Material < 0 || int(t.Material) >= len(m.Materials) {
			err = multierr.Append(err, fmt.Errorf("%w: tri %d: material %d of %d",
				ErrInvalidMesh, i, t.Material, len(m.Materials)))
		}
		if t.Part < 0 || int(t.Part) >= len(m.Parts) {
			err = multierr.Append(err, fmt.Errorf("%w: tri %d: part %d of %d",
				ErrInvalidMesh, i, t.Part, len(m.Parts)))
		}
	}

	return err
}
