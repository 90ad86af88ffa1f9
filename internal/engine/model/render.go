package model

import (
	"fmt"

	"github.com/Faultbox/meshkit/pkg/mesh"
)

// Renderer is the drawing backend a Model is handed to.
type Renderer interface {
	// CacheTexture loads the named texture and returns a handle for it.
	CacheTexture(name string) (int, error)
	SelectTexture(handle int)
	RenderTriMesh(vertices []RenderVertex, tris []RenderTri)
}

// Cache asks the renderer for a handle for every part's texture. Textures
// already cached by an earlier call are skipped.
func (m *Model) Cache(r Renderer) error {
	for i := range m.Parts {
		tex := &m.Parts[i].Texture
		if tex.Handle >= 0 {
			continue
		}
		h, err := r.CacheTexture(tex.Name)
		if err != nil {
			return fmt.Errorf("cache texture %q for part %d: %w", tex.Name, i, err)
		}
		tex.Handle = h
	}
	return nil
}

// Render draws every part in order.
func (m *Model) Render(r Renderer) {
	for i := range m.Parts {
		m.renderPart(r, &m.Parts[i])
	}
}

// RenderPart draws a single part.
func (m *Model) RenderPart(r Renderer, i int) error {
	if i < 0 || i >= len(m.Parts) {
		return fmt.Errorf("render part %d of %d: %w", i, len(m.Parts), mesh.ErrIndexOutOfRange)
	}
	m.renderPart(r, &m.Parts[i])
	return nil
}

func (m *Model) renderPart(r Renderer, p *ModelPart) {
	r.SelectTexture(p.Texture.Handle)
	r.RenderTriMesh(p.Mesh.Vertices, p.Mesh.Tris)
}
