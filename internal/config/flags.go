package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagSeed    = flag.Int64("seed", 0, "Noise seed (0 keeps the configured seed)")
	flagWidth   = flag.Int("width", 0, "Stage width in columns")
	flagDepth   = flag.Int("depth", 0, "Stage depth in columns")
	flagChunksX = flag.Int("chunks-x", 0, "Number of chunks along X")
	flagChunksZ = flag.Int("chunks-z", 0, "Number of chunks along Z")
	flagOut     = flag.String("out", "", "Directory for OBJ export")
	flagObjects = flag.Bool("objects", false, "Run the decoration placement pass")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagSeed != 0 {
		cfg.Noise.Seed = *flagSeed
	}
	if *flagWidth > 0 {
		cfg.Stage.Width = *flagWidth
	}
	if *flagDepth > 0 {
		cfg.Stage.Depth = *flagDepth
	}
	if *flagChunksX > 0 {
		cfg.Stage.ChunksX = *flagChunksX
	}
	if *flagChunksZ > 0 {
		cfg.Stage.ChunksZ = *flagChunksZ
	}
	if *flagOut != "" {
		cfg.Output.Dir = *flagOut
	}
	if *flagObjects {
		cfg.Stage.PlaceObjects = true
	}
}
