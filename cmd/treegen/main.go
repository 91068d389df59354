// treegen generates procedural tree meshes and exports them as Wavefront OBJ.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/arbor/internal/config"
	"github.com/Faultbox/arbor/internal/logger"
)

func main() {
	config.ParseFlags()

	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	command := args[0]
	if command == "help" {
		printUsage()
		return
	}
	if command == "presets" {
		cmdPresets()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("config: %+v", cfg)

	switch command {
	case "init":
		err = cmdInit(cfg)
	case "build":
		err = cmdBuild(cfg)
	case "stats":
		err = cmdStats(cfg)
	case "watch":
		err = cmdWatch(cfg)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logger.Error(command+" failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`treegen - procedural tree mesh generator

Usage:
  treegen [flags] <command>

Commands:
  presets    List the built-in parameter presets
  init       Write the current settings to the user config file
  build      Generate a tree and write it as OBJ
  stats      Generate a tree and print mesh statistics
  watch      Rebuild the OBJ whenever the config file changes

Flags:
  -config <file>      Config file (.yaml, .yml or .toml)
  -preset <name>      Parameter preset (see 'presets')
  -segments <n>       Vertices per ring (>= 3)
  -iterations <n>     Recursion depth
  -out <file.obj>     Output path
  -debug              Enable debug logging

Examples:
  treegen -preset abop-b -out birch.obj build
  treegen -preset abop-d init
  treegen -iterations 3 -segments 8 stats
  treegen -config arbor.yaml watch`)
}
