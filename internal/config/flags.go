package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagEdgeAngle = flag.Float64("edge-angle", 0, "Edge angle tolerance in degrees for welding")
	flagTolerance = flag.Float64("tolerance", 0, "Coincident vertex tolerance for welding")
	flagNoWeld    = flag.Bool("no-weld", false, "Skip vertex welding")
	flagLogFile   = flag.String("log-file", "", "Write logs to this file")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag arguments.
func Args() []string {
	return flag.Args()
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
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagEdgeAngle > 0 {
		cfg.Optimize.EdgeAngleDegrees = float32(*flagEdgeAngle)
	}
	if *flagTolerance > 0 {
		cfg.Optimize.VertexTolerance = float32(*flagTolerance)
	}
	if *flagNoWeld {
		cfg.Optimize.Weld = false
	}
}
