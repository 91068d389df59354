package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file (.yaml, .yml or .toml)")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagPreset     = flag.String("preset", "", "Named parameter preset")
	flagSegments   = flag.Int("segments", 0, "Vertices per ring")
	flagIterations = flag.Int("iterations", -1, "Recursion depth")
	flagOut        = flag.String("out", "", "Output OBJ path")
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
func applyFlags(cfg *Config) error {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagPreset != "" {
		if err := cfg.ApplyPreset(*flagPreset); err != nil {
			return err
		}
	}
	if *flagSegments > 0 {
		cfg.Tree.Params.RadialSegments = *flagSegments
	}
	if *flagIterations >= 0 {
		cfg.Tree.Params.MaxIterations = *flagIterations
	}
	if *flagOut != "" {
		cfg.Output.Path = *flagOut
	}
	return nil
}
