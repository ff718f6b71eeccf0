package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Stage.Width != 16 || cfg.Stage.Depth != 16 {
		t.Errorf("expected 16x16 stage, got %dx%d", cfg.Stage.Width, cfg.Stage.Depth)
	}
	if cfg.Stage.ChunksX != 1 || cfg.Stage.ChunksZ != 1 {
		t.Errorf("expected a single chunk, got %dx%d", cfg.Stage.ChunksX, cfg.Stage.ChunksZ)
	}
	if cfg.Stage.Scale != [3]float32{0.05, 0.5, 16} {
		t.Errorf("expected scale (0.05, 0.5, 16), got %v", cfg.Stage.Scale)
	}
	if cfg.Stage.PlaceObjects {
		t.Error("expected object placement to be off by default")
	}

	if cfg.Noise.Octaves != 4 {
		t.Errorf("expected 4 octaves, got %d", cfg.Noise.Octaves)
	}
	if cfg.Noise.Alpha != 2 || cfg.Noise.Beta != 2 {
		t.Errorf("expected alpha=2 beta=2, got alpha=%v beta=%v", cfg.Noise.Alpha, cfg.Noise.Beta)
	}

	if cfg.Output.Dir != "" {
		t.Errorf("expected export disabled, got dir %s", cfg.Output.Dir)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, fileName)

	yamlContent := `
stage:
  width: 32
  depth: 24
  chunks_x: 3
  chunks_z: 2
  scale: [0.1, 0.25, 8]
  place_objects: true
  object_bands:
    - {min: 10, max: 16, prototype: 4}

noise:
  seed: 1234
  octaves: 6

output:
  dir: "out"
  with_bounds: true

logging:
  level: "debug"
  log_file: "stagegen.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Stage.Width != 32 || cfg.Stage.Depth != 24 {
		t.Errorf("expected 32x24, got %dx%d", cfg.Stage.Width, cfg.Stage.Depth)
	}
	if cfg.Stage.ChunksX != 3 || cfg.Stage.ChunksZ != 2 {
		t.Errorf("expected 3x2 chunks, got %dx%d", cfg.Stage.ChunksX, cfg.Stage.ChunksZ)
	}
	if cfg.Stage.Scale != [3]float32{0.1, 0.25, 8} {
		t.Errorf("expected scale (0.1, 0.25, 8), got %v", cfg.Stage.Scale)
	}
	if !cfg.Stage.PlaceObjects {
		t.Error("expected place_objects to be true")
	}
	if len(cfg.Stage.ObjectBands) != 1 || cfg.Stage.ObjectBands[0] != (ObjectBand{Min: 10, Max: 16, Prototype: 4}) {
		t.Errorf("expected object bands replaced by the file, got %+v", cfg.Stage.ObjectBands)
	}
	if cfg.Noise.Seed != 1234 {
		t.Errorf("expected seed 1234, got %d", cfg.Noise.Seed)
	}
	if cfg.Noise.Octaves != 6 {
		t.Errorf("expected 6 octaves, got %d", cfg.Noise.Octaves)
	}
	// Unset keys keep their defaults.
	if cfg.Noise.Alpha != 2 {
		t.Errorf("expected default alpha 2, got %v", cfg.Noise.Alpha)
	}
	if cfg.Output.Dir != "out" || !cfg.Output.WithBounds {
		t.Errorf("expected output dir 'out' with bounds, got %+v", cfg.Output)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "stagegen.log" {
		t.Errorf("expected debug logging to stagegen.log, got %+v", cfg.Logging)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), fileName)
	if err := os.WriteFile(configPath, []byte("stage: [not, a, map"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/stagegen.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"zero width", func(c *Config) { c.Stage.Width = 0 }, "stage.width"},
		{"negative depth", func(c *Config) { c.Stage.Depth = -2 }, "stage.depth"},
		{"no chunks", func(c *Config) { c.Stage.ChunksZ = 0 }, "chunks"},
		{"no octaves", func(c *Config) { c.Noise.Octaves = 0 }, "octaves"},
		{"inverted band", func(c *Config) { c.Stage.ObjectBands = []ObjectBand{{Min: 9, Max: 2}} }, "object_bands[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error mentioning %q, got %v", tt.wantErr, err)
			}
		})
	}

	cfg := Default()
	cfg.Stage.Width = 0
	cfg.Stage.Depth = 0
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "stage.width") || !strings.Contains(err.Error(), "stage.depth") {
		t.Errorf("expected both size errors reported, got %v", err)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", fileName)

	cfg := Default()
	cfg.Stage.Width = 48
	cfg.Noise.Seed = 77
	cfg.Output.Dir = "meshes"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if loaded.Stage.Width != 48 || loaded.Noise.Seed != 77 || loaded.Output.Dir != "meshes" {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("expected non-empty config dir")
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, fileName), []byte("stage:\n  width: 8\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Errorf("expected to find %s in current directory", fileName)
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
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "seed flag",
			setup: func() { *flagSeed = 99 },
			verify: func(cfg *Config) {
				if cfg.Noise.Seed != 99 {
					t.Errorf("expected seed 99, got %d", cfg.Noise.Seed)
				}
			},
			teardown: func() { *flagSeed = 0 },
		},
		{
			name: "size flags",
			setup: func() {
				*flagWidth = 64
				*flagDepth = 32
			},
			verify: func(cfg *Config) {
				if cfg.Stage.Width != 64 || cfg.Stage.Depth != 32 {
					t.Errorf("expected 64x32, got %dx%d", cfg.Stage.Width, cfg.Stage.Depth)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagDepth = 0
			},
		},
		{
			name: "chunk flags",
			setup: func() {
				*flagChunksX = 4
				*flagChunksZ = 5
			},
			verify: func(cfg *Config) {
				if cfg.Stage.ChunksX != 4 || cfg.Stage.ChunksZ != 5 {
					t.Errorf("expected 4x5 chunks, got %dx%d", cfg.Stage.ChunksX, cfg.Stage.ChunksZ)
				}
			},
			teardown: func() {
				*flagChunksX = 0
				*flagChunksZ = 0
			},
		},
		{
			name: "output and objects flags",
			setup: func() {
				*flagOut = "/tmp/meshes"
				*flagObjects = true
			},
			verify: func(cfg *Config) {
				if cfg.Output.Dir != "/tmp/meshes" {
					t.Errorf("expected output dir /tmp/meshes, got %s", cfg.Output.Dir)
				}
				if !cfg.Stage.PlaceObjects {
					t.Error("expected object placement enabled")
				}
			},
			teardown: func() {
				*flagOut = ""
				*flagObjects = false
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
	configPath := filepath.Join(tmpDir, "custom.yaml")

	yamlContent := "stage:\n  width: 40\n  depth: 20\n"
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 12
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Stage.Width != 12 {
		t.Errorf("expected width 12 from flag, got %d", cfg.Stage.Width)
	}
	if cfg.Stage.Depth != 20 {
		t.Errorf("expected depth 20 from file, got %d", cfg.Stage.Depth)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(configPath, []byte("stage:\n  width: -4\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected Load to reject a negative width")
	}
}
