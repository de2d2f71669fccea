// Package main is an interactive terminal harness for the Rapid
// gesture engine: a synthetic map whose features can be selected,
// multi-selected, and edited with the same gestures the editor uses.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/nyampire/Rapid/internal/config"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  string
		scriptPath  string
		showVersion bool
	)
	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.StringVar(&configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&scriptPath, "script", "", "Lua gesture-hook script to load")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "rapid-gestures - gesture engine demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: rapid-gestures [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("rapid-gestures %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		return 0
	}

	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	app, err := NewApp(cfg, scriptPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
