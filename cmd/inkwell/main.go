// Package main is the entry point for the inkwell editor.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dshills/inkwell/internal/app"
	"github.com/dshills/inkwell/internal/config"
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
	configPath, logLevel, filename := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	log, err := app.NewLogger(cfg.LogFile, app.ParseLogLevel(logLevel))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer log.Close()

	editor, err := app.New(app.Options{
		Config:   cfg,
		Filename: filename,
		Logger:   log,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	if err := editor.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() (configPath, logLevel, filename string) {
	var showVersion bool
	var showHelp bool

	flag.StringVar(&configPath, "config", "", "Path to settings file")
	flag.StringVar(&configPath, "c", "", "Path to settings file (shorthand)")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Inkwell - terminal text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: inkwell [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  inkwell                 Open with an empty buffer\n")
		fmt.Fprintf(os.Stderr, "  inkwell notes.txt       Open a file\n")
		fmt.Fprintf(os.Stderr, "  inkwell -c ink.toml     Use an explicit settings file\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}
	if showVersion {
		fmt.Printf("Inkwell %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		os.Exit(0)
	}

	if flag.NArg() > 1 {
		fmt.Fprintf(os.Stderr, "Error: at most one file argument\n")
		flag.Usage()
		os.Exit(1)
	}
	if flag.NArg() == 1 {
		filename = flag.Arg(0)
	}
	return configPath, logLevel, filename
}
