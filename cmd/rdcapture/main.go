// Package main provides rdcapture, a command-line front end to the
// RenderDoc in-application API.
//
// rdcapture loads RenderDoc into its own process, applies a capture
// profile and path template, triggers captures and reports the result.
// It is mostly useful for checking that a RenderDoc installation can be
// found and negotiated with, and for producing profile files from the
// current option values.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/opd-ai/renderdoc"
	"github.com/sirupsen/logrus"
)

// CLIConfig holds parsed command-line flags.
type CLIConfig struct {
	libraryPath string
	profilePath string
	capturePath string
	title       string
	triggers    uint
	frames      uint
	dump        bool
	logLevel    string
	help        bool
}

// parseCLIFlags parses command-line flags and returns the configuration.
func parseCLIFlags(args []string) (*CLIConfig, error) {
	config := &CLIConfig{}
	fs := flag.NewFlagSet("rdcapture", flag.ContinueOnError)

	// Library configuration
	fs.StringVar(&config.libraryPath, "library", "", "RenderDoc library path (default: $"+renderdoc.LibraryPathEnv+" or platform name)")

	// Capture configuration
	fs.StringVar(&config.profilePath, "profile", "", "YAML capture profile to apply")
	fs.StringVar(&config.capturePath, "capture-path", "", "Capture file path template")
	fs.StringVar(&config.title, "title", "", "Capture title")
	fs.UintVar(&config.triggers, "triggers", 0, "Number of single-frame captures to trigger")
	fs.UintVar(&config.frames, "frames", 0, "Trigger one multi-frame capture of this many frames")

	// Output configuration
	fs.BoolVar(&config.dump, "dump", false, "Print the current settings as a YAML profile")
	fs.StringVar(&config.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	fs.BoolVar(&config.help, "help", false, "Show help message")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return config, nil
}

// printUsage prints the usage information.
func printUsage() {
	fmt.Println("rdcapture - RenderDoc in-application API tool")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s [options]\n", os.Args[0])
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Printf("  # Check that RenderDoc can be loaded and print its settings\n")
	fmt.Printf("  %s -dump\n", os.Args[0])
	fmt.Println()
	fmt.Printf("  # Apply a profile and trigger a capture\n")
	fmt.Printf("  %s -profile validation.yaml -capture-path /tmp/rd/frame -triggers 1\n", os.Args[0])
}

// validateCLIConfig validates the CLI configuration.
func validateCLIConfig(config *CLIConfig) error {
	if _, err := logrus.ParseLevel(config.logLevel); err != nil {
		return fmt.Errorf("invalid log level %q", config.logLevel)
	}
	if config.frames > 0 && config.triggers > 0 {
		return fmt.Errorf("-frames and -triggers are mutually exclusive")
	}
	if uint64(config.frames) > uint64(^uint32(0)) {
		return fmt.Errorf("-frames out of range")
	}
	return nil
}

// createOptions converts CLI configuration to renderdoc options.
func createOptions(config *CLIConfig) *renderdoc.Options {
	opts := renderdoc.OptionsFromEnv()
	if config.libraryPath != "" {
		opts.LibraryPath = config.libraryPath
	}
	logger := logrus.New()
	level, _ := logrus.ParseLevel(config.logLevel)
	logger.SetLevel(level)
	opts.Logger = logger
	return opts
}

// main is the entry point for rdcapture.
func main() {
	config, err := parseCLIFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	if config.help {
		printUsage()
		os.Exit(0)
	}

	if err := validateCLIConfig(config); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Use -help for usage information.\n")
		os.Exit(1)
	}

	rd, err := renderdoc.OpenWithOptions(createOptions(config))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open RenderDoc: %v\n", err)
		os.Exit(1)
	}

	exitCode := 0
	if err := run(rd, config, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		exitCode = 1
	}
	if err := rd.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		exitCode = 1
	}
	os.Exit(exitCode)
}
