package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagSegments  = flag.Int("segments", 0, "Points per full circle")
	flagPointSize = flag.Float64("point-size", 0, "Span of point markers")
	flagColor     = flag.String("color", "", "Default line color")
	flagFormat    = flag.String("format", "", "Output format (text, yaml)")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the arguments left after flag parsing.
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
	if *flagSegments > 0 {
		cfg.Draw.Segments = *flagSegments
	}
	if *flagPointSize > 0 {
		cfg.Draw.PointSize = float32(*flagPointSize)
	}
	if *flagColor != "" {
		cfg.Draw.Color = *flagColor
	}
	if *flagFormat != "" {
		cfg.Output.Format = *flagFormat
	}
}
