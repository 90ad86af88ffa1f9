package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"go.uber.org/multierr"

	"github.com/Faultbox/meshkit/internal/config"
	"github.com/Faultbox/meshkit/internal/engine/camera"
	"github.com/Faultbox/meshkit/internal/engine/debug"
	"github.com/Faultbox/meshkit/internal/engine/model"
	"github.com/Faultbox/meshkit/internal/engine/picking"
	"github.com/Faultbox/meshkit/internal/logger"
	"github.com/Faultbox/meshkit/internal/meshio"
	"github.com/Faultbox/meshkit/pkg/math"
	"github.com/Faultbox/meshkit/pkg/mesh"
)

var errUsage = errors.New("invalid usage")

func newFlagSet(name string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	return fs
}

func cmdInfo(args []string, out io.Writer) error {
	if len(args) < 1 {
		fmt.Fprintln(out, "Usage: meshtool info <mesh.yaml>")
		return errUsage
	}

	m, err := meshio.ReadFile(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Mesh:      %s\n", args[0])
	fmt.Fprintf(out, "Vertices:  %d\n", m.VertexCount())
	fmt.Fprintf(out, "Tris:      %d\n", m.TriCount())
	fmt.Fprintf(out, "Materials: %d\n", m.MaterialCount())
	fmt.Fprintf(out, "Parts:     %d\n", m.PartCount())
	printBounds(out, m.ComputeBounds())

	// Triangles per part, skipping out-of-range parts reported below
	perPart := make([]int, m.PartCount())
	degenerate := 0
	for i := range m.Tris {
		t := &m.Tris[i]
		if t.Part >= 0 && int(t.Part) < len(perPart) {
			perPart[t.Part]++
		}
		if t.IsDegenerate() {
			degenerate++
		}
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Parts:")
	for i, p := range m.Parts {
		fmt.Fprintf(out, "  %-3d %-20s %d tris\n", i, p.Name, perPart[i])
	}
	if degenerate > 0 {
		fmt.Fprintf(out, "\nDegenerate tris: %d\n", degenerate)
	}

	problems := multierr.Errors(m.Validate())
	if len(problems) == 0 {
		fmt.Fprintln(out, "\nValid")
		return nil
	}
	fmt.Fprintf(out, "\nProblems (%d):\n", len(problems))
	for _, p := range problems {
		fmt.Fprintf(out, "  %v\n", p)
	}
	return nil
}

func cmdOptimize(args []string, cfg *config.Config, out io.Writer) error {
	if len(args) < 1 {
		fmt.Fprintln(out, "Usage: meshtool optimize <mesh.yaml> [out.yaml]")
		return errUsage
	}

	m, err := meshio.ReadFile(args[0])
	if err != nil {
		return err
	}

	mdl, err := buildModel(m, cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Optimized: %d vertices, %d tris\n", m.VertexCount(), m.TriCount())
	printModel(out, mdl)

	if len(args) > 1 {
		if err := meshio.WriteFile(args[1], m); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nWrote %s\n", args[1])
	}
	return nil
}

func cmdBox(args []string, out io.Writer) error {
	fs := newFlagSet("box", out)
	size := fs.Float64("size", 1, "Edge length")
	side := fs.String("side", "side.bmp", "Side texture")
	capTex := fs.String("cap", "cap.bmp", "Top and bottom texture")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if *size <= 0 {
		return fmt.Errorf("box size %v must be positive", *size)
	}

	h := float32(*size / 2)
	b := math.NewAABB3(math.Vec3{X: -h, Y: -h, Z: -h}, math.Vec3{X: h, Y: h, Z: h})
	m := mesh.NewBox(b, *side, *capTex)

	if fs.NArg() < 1 {
		return meshio.Encode(out, m)
	}
	if err := meshio.WriteFile(fs.Arg(0), m); err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote %s (%d vertices, %d tris)\n", fs.Arg(0), m.VertexCount(), m.TriCount())
	return nil
}

func cmdPick(args []string, cfg *config.Config, out io.Writer) error {
	cam := camera.NewOrbitCamera()
	cam.FovDegrees = cfg.Picking.FovDegrees
	cam.Near = cfg.Picking.Near
	cam.Far = cfg.Picking.Far

	fs := newFlagSet("pick", out)
	yaw := fs.Float64("yaw", float64(cam.Yaw), "Camera yaw around the model, radians")
	pitch := fs.Float64("pitch", float64(cam.Pitch), "Camera pitch above the model, radians")
	wire := fs.Bool("wire", false, "Print the wireframe of the picked part's bounds")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() < 3 {
		fmt.Fprintln(out, "Usage: meshtool pick [options] <mesh.yaml> <x> <y>")
		return errUsage
	}

	x, err := strconv.ParseFloat(fs.Arg(1), 32)
	if err != nil {
		return fmt.Errorf("screen x: %w", err)
	}
	y, err := strconv.ParseFloat(fs.Arg(2), 32)
	if err != nil {
		return fmt.Errorf("screen y: %w", err)
	}

	m, err := meshio.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}
	mdl, err := buildModel(m, cfg)
	if err != nil {
		return err
	}

	cam.Yaw = float32(*yaw)
	cam.Pitch = float32(*pitch)
	cam.FitToBounds(mdl.Bounds())

	w, h := cfg.Picking.ViewportWidth, cfg.Picking.ViewportHeight
	proj := cam.ProjectionMatrix(float32(w) / float32(h))
	ray, err := picking.ScreenToRay(float32(x), float32(y), w, h, cam.ViewMatrix(), proj)
	if err != nil {
		return err
	}

	hit, ok := picking.PickPart(mdl, ray, cam.Far)
	if !ok {
		fmt.Fprintln(out, "No part hit")
		return nil
	}

	p := mdl.Parts[hit.Part]
	fmt.Fprintf(out, "Hit part %d (%s, %s) at distance %.3f\n", hit.Part, p.Name, p.Texture.Name, hit.Distance)
	fmt.Fprintf(out, "Point:  %s\n", formatVec(hit.Point))
	fmt.Fprintf(out, "Normal: %s\n", formatVec(hit.Normal))

	if *wire {
		verts := debug.GenerateBBoxWireframeFromAABB(p.Mesh.Bounds, math.Mat4x3Identity(), debug.DefaultBBoxPadding)
		for i := 0; i+5 < len(verts); i += 6 {
			fmt.Fprintf(out, "  %.3f %.3f %.3f -> %.3f %.3f %.3f\n",
				verts[i], verts[i+1], verts[i+2], verts[i+3], verts[i+4], verts[i+5])
		}
	}
	return nil
}

func buildModel(m *mesh.EditTriMesh, cfg *config.Config) (*model.Model, error) {
	opts := model.BuildOptions{
		Optimize:         true,
		Params:           cfg.Optimize.OptimizationParams(),
		ResolveMaterials: cfg.Optimize.ResolveMaterials,
	}
	return model.Build(m, opts, logger.Named("model"))
}

func printModel(out io.Writer, mdl *model.Model) {
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-3s %-16s %-20s %8s %8s\n", "#", "PART", "TEXTURE", "VERTS", "TRIS")
	for i, p := range mdl.Parts {
		fmt.Fprintf(out, "  %-3d %-16s %-20s %8d %8d\n", i, p.Name, p.Texture.Name, len(p.Mesh.Vertices), len(p.Mesh.Tris))
	}
	vertices, tris := mdl.Counts()
	fmt.Fprintf(out, "  %-3s %-16s %-20s %8d %8d\n", "", "total", "", vertices, tris)
	printBounds(out, mdl.Bounds())
}

func printBounds(out io.Writer, b math.AABB3) {
	if b.IsEmpty() {
		fmt.Fprintln(out, "Bounds:    empty")
		return
	}
	fmt.Fprintf(out, "Bounds:    %s .. %s (size %s)\n", formatVec(b.Min), formatVec(b.Max), formatVec(b.Size()))
}

func formatVec(v math.Vec3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}
