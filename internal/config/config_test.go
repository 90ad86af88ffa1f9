package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/multierr"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test optimize defaults
	if cfg.Optimize.EdgeAngleDegrees != 80 {
		t.Errorf("expected edge angle 80, got %f", cfg.Optimize.EdgeAngleDegrees)
	}
	if cfg.Optimize.VertexTolerance != 1.0/96.0 {
		t.Errorf("expected tolerance 1/96, got %f", cfg.Optimize.VertexTolerance)
	}
	if !cfg.Optimize.Weld || !cfg.Optimize.ResolveMaterials {
		t.Error("expected weld and material resolution enabled by default")
	}

	// Test picking defaults
	if cfg.Picking.FovDegrees != 60 {
		t.Errorf("expected fov 60, got %f", cfg.Picking.FovDegrees)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestOptimizationParams(t *testing.T) {
	cfg := Default()
	p := cfg.Optimize.OptimizationParams()
	if p.CoincidentVertexTolerance != cfg.Optimize.VertexTolerance {
		t.Errorf("expected tolerance %f, got %f", cfg.Optimize.VertexTolerance, p.CoincidentVertexTolerance)
	}

	cfg.Optimize.Weld = false
	cfg.Optimize.EdgeAngleDegrees = 180
	p = cfg.Optimize.OptimizationParams()
	if p.CoincidentVertexTolerance != 0 {
		t.Errorf("expected zero tolerance with weld disabled, got %f", p.CoincidentVertexTolerance)
	}
	if p.CosOfEdgeAngleTolerance != -999 {
		t.Errorf("expected -999 cos tolerance at 180 degrees, got %f", p.CosOfEdgeAngleTolerance)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
optimize:
  vertex_tolerance: 0.5
  edge_angle_degrees: 45
  weld: false

picking:
  fov_degrees: 90
  far: 50

logging:
  level: "debug"
  log_file: "meshtool.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Optimize.VertexTolerance != 0.5 {
		t.Errorf("expected tolerance 0.5, got %f", cfg.Optimize.VertexTolerance)
	}
	if cfg.Optimize.EdgeAngleDegrees != 45 {
		t.Errorf("expected edge angle 45, got %f", cfg.Optimize.EdgeAngleDegrees)
	}
	if cfg.Optimize.Weld {
		t.Error("expected weld to be false")
	}
	if !cfg.Optimize.ResolveMaterials {
		t.Error("expected resolve_materials to keep its default")
	}
	if cfg.Picking.FovDegrees != 90 || cfg.Picking.Far != 50 {
		t.Errorf("expected fov 90 far 50, got %f %f", cfg.Picking.FovDegrees, cfg.Picking.Far)
	}
	if cfg.Picking.Near != 0.1 {
		t.Errorf("expected near to keep default 0.1, got %f", cfg.Picking.Near)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "meshtool.log" {
		t.Errorf("unexpected logging config %+v", cfg.Logging)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad syntax", "optimize:\n  weld: [not a bool\n"},
		{"wrong type", "optimize:\n  vertex_tolerance: not a number\n"},
		{"unknown key", "optimize:\n  weld_distance: 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "invalid.yaml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to write test config: %v", err)
			}

			cfg := Default()
			if err := loadFromFile(cfg, configPath); err == nil {
				t.Error("expected error loading invalid YAML, got nil")
			}
		})
	}
}

func TestLoadFromFileEmpty(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(configPath, []byte("\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Errorf("expected empty file to load, got %v", err)
	}
	if *cfg != *Default() {
		t.Error("empty file changed the defaults")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Optimize.VertexTolerance = -1
	cfg.Picking.FovDegrees = 200
	cfg.Picking.Far = cfg.Picking.Near

	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	if n := len(multierr.Errors(err)); n != 3 {
		t.Errorf("expected 3 problems, got %d: %v", n, err)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Actual path depends on OS
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	t.Setenv("HOME", tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "meshtool.yaml")
	if err := os.WriteFile(configPath, []byte("optimize:\n  weld: false\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find meshtool.yaml in current directory")
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Optimize.EdgeAngleDegrees = 30
	cfg.Logging.Level = "warn"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("reloaded config %+v, want %+v", loaded, cfg)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name: "debug flag",
			setup: func() {
				*flagDebug = true
			},
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() {
				*flagDebug = false
			},
		},
		{
			name: "edge angle flag",
			setup: func() {
				*flagEdgeAngle = 30
			},
			verify: func(cfg *Config) {
				if cfg.Optimize.EdgeAngleDegrees != 30 {
					t.Errorf("expected edge angle 30, got %f", cfg.Optimize.EdgeAngleDegrees)
				}
			},
			teardown: func() {
				*flagEdgeAngle = 0
			},
		},
		{
			name: "tolerance flag",
			setup: func() {
				*flagTolerance = 0.25
			},
			verify: func(cfg *Config) {
				if cfg.Optimize.VertexTolerance != 0.25 {
					t.Errorf("expected tolerance 0.25, got %f", cfg.Optimize.VertexTolerance)
				}
			},
			teardown: func() {
				*flagTolerance = 0
			},
		},
		{
			name: "no-weld flag",
			setup: func() {
				*flagNoWeld = true
			},
			verify: func(cfg *Config) {
				if cfg.Optimize.Weld {
					t.Error("expected weld to be disabled")
				}
			},
			teardown: func() {
				*flagNoWeld = false
			},
		},
		{
			name: "log file flag",
			setup: func() {
				*flagLogFile = "out.log"
			},
			verify: func(cfg *Config) {
				if cfg.Logging.LogFile != "out.log" {
					t.Errorf("expected log file out.log, got %s", cfg.Logging.LogFile)
				}
			},
			teardown: func() {
				*flagLogFile = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
optimize:
  edge_angle_degrees: 45
  vertex_tolerance: 0.5
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set flag to override config file
	*flagConfig = configPath
	*flagEdgeAngle = 60
	defer func() {
		*flagConfig = ""
		*flagEdgeAngle = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Edge angle should be from flag (60), not file (45)
	if cfg.Optimize.EdgeAngleDegrees != 60 {
		t.Errorf("expected edge angle 60 from flag, got %f", cfg.Optimize.EdgeAngleDegrees)
	}

	// Tolerance should be from file since no flag override
	if cfg.Optimize.VertexTolerance != 0.5 {
		t.Errorf("expected tolerance 0.5 from file, got %f", cfg.Optimize.VertexTolerance)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("picking:\n  near: 0\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}
