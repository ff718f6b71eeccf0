// Package main is the stage generator CLI.
package main

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/blueocean-stage/internal/config"
	"github.com/Faultbox/blueocean-stage/internal/export"
	"github.com/Faultbox/blueocean-stage/internal/game/world"
	"github.com/Faultbox/blueocean-stage/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== BlueOcean stage generator ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("generation failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	start := time.Now()

	if cfg.Stage.PlaceObjects && len(cfg.Stage.ObjectBands) == 0 {
		logger.Warn("object placement requested but no object bands configured")
	}

	m := world.NewManager(cfg, nil)
	if err := m.Generate(); err != nil {
		return err
	}

	var vertices, triangles, objects int
	for _, c := range m.Chunks() {
		s, _ := m.Stage(c)
		mesh := s.Mesh()
		vertices += len(mesh.Vertices)
		triangles += len(mesh.Indices) / 3
		objects += len(s.Objects())

		if cfg.Output.Dir == "" {
			continue
		}
		paths, err := export.SaveStage(cfg.Output.Dir, c.X, c.Z, mesh, s.Bounds(), cfg.Output.WithBounds)
		if err != nil {
			return err
		}
		for _, p := range paths {
			logger.Debug("wrote", zap.String("path", p))
		}
	}

	logger.Info("generation complete",
		zap.Int("chunks", len(m.Chunks())),
		zap.Int("vertices", vertices),
		zap.Int("triangles", triangles),
		zap.Int("objects", objects),
		zap.Int64("seed", cfg.Noise.Seed),
		zap.Duration("elapsed", time.Since(start)))

	if cfg.Output.Dir != "" {
		logger.Info("geometry exported", zap.String("dir", cfg.Output.Dir))
	}
	return nil
}
