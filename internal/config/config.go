// Package config handles meshtool configuration loading and management.
package config

import "github.com/Faultbox/meshkit/pkg/mesh"

// Config holds all meshtool settings.
type Config struct {
	Optimize OptimizeConfig `yaml:"optimize"`
	Picking  PickingConfig  `yaml:"picking"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// OptimizeConfig holds mesh optimization settings.
type OptimizeConfig struct {
	VertexTolerance  float32 `yaml:"vertex_tolerance"`   // Weld distance, world units
	EdgeAngleDegrees float32 `yaml:"edge_angle_degrees"` // 180 or more welds across any crease
	Weld             bool    `yaml:"weld"`
	ResolveMaterials bool    `yaml:"resolve_materials"` // Give unassigned triangles the fallback material
}

// PickingConfig holds the camera used for screen picking.
type PickingConfig struct {
	FovDegrees     float32 `yaml:"fov_degrees"`
	Near           float32 `yaml:"near"`
	Far            float32 `yaml:"far"`
	ViewportWidth  int     `yaml:"viewport_width"`
	ViewportHeight int     `yaml:"viewport_height"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Optimize: OptimizeConfig{
			VertexTolerance:  1.0 / 12.0 / 8.0,
			EdgeAngleDegrees: 80,
			Weld:             true,
			ResolveMaterials: true,
		},
		Picking: PickingConfig{
			FovDegrees:     60,
			Near:           0.1,
			Far:            1000,
			ViewportWidth:  1280,
			ViewportHeight: 720,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// OptimizationParams converts the optimize section for the mesh package.
// Disabling weld sets a zero tolerance.
func (c OptimizeConfig) OptimizationParams() mesh.OptimizationParams {
	p := mesh.DefaultOptimizationParams()
	p.CoincidentVertexTolerance = c.VertexTolerance
	if !c.Weld {
		p.CoincidentVertexTolerance = 0
	}
	p.SetEdgeAngleToleranceDegrees(c.EdgeAngleDegrees)
	return p
}
