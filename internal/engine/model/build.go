package model

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/meshkit/pkg/mesh"
)

// Build runs the render pipeline on m and converts the result into a
// Model. When opts.Optimize is set the mesh is optimized in place. A nil
// log discards output.
func Build(m *mesh.EditTriMesh, opts BuildOptions, log *zap.Logger) (*Model, error) {
	if log == nil {
		log = zap.NewNop()
	}

	if m.TriCount() == 0 {
		return nil, fmt.Errorf("build model: %w", mesh.ErrEmptyMesh)
	}

	if opts.ResolveMaterials {
		if idx := m.ResolveUnsetMaterials(); idx != mesh.NoMaterial {
			log.Warn("triangles without material use fallback",
				zap.String("material", mesh.FallbackMaterialName),
				zap.Int("index", int(idx)))
		}
	}

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("build model: %w", err)
	}

	if opts.Optimize {
		before := m.VertexCount()
		stats := m.OptimizeForRendering(opts.Params)
		log.Info("mesh optimized",
			zap.Int("verticesBefore", before),
			zap.Int("verticesAfter", m.VertexCount()),
			zap.Int("welded", stats.Welded),
			zap.Int("degenerateTris", stats.DegenerateTris),
			zap.Int("uvSplits", stats.UVSplits),
			zap.Int("unusedVertices", stats.UnusedVertices))
	}

	model, err := ModelFromEditMesh(m)
	if err != nil {
		return nil, fmt.Errorf("build model: %w", err)
	}

	for i, p := range model.Parts {
		log.Debug("model part",
			zap.Int("index", i),
			zap.String("part", p.Name),
			zap.String("texture", p.Texture.Name),
			zap.Int("vertices", len(p.Mesh.Vertices)),
			zap.Int("tris", len(p.Mesh.Tris)))
	}

	vertices, tris := model.Counts()
	log.Info("model built",
		zap.Int("parts", model.PartCount()),
		zap.Int("vertices", vertices),
		zap.Int("tris", tris))

	return model, nil
}
