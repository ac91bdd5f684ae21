package main

import "github.com/urfave/cli"

// Global flags
var (
	// ConfigFlag points at a TOML configuration file
	ConfigFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	// LogFlag overrides the configured log level
	LogFlag = cli.StringFlag{
		Name:  "log-level",
		Usage: "Log level. Supports levels crit (silent), eror, warn, info, dbug and trce (trace)",
	}
	// LogColourFlag colours the level names of log lines
	LogColourFlag = cli.BoolFlag{
		Name:  "log-colour",
		Usage: "Colour log levels with ANSI escapes, even when not writing to a terminal",
	}
	// MetricsFlag prints the gathered metrics once the run completes
	MetricsFlag = cli.BoolFlag{
		Name:  "metrics",
		Usage: "Print gathered metrics in the Prometheus text format after the run",
	}
)

// Replay flags
var (
	// FramesFlag overrides the configured number of frames
	FramesFlag = cli.IntFlag{
		Name:  "frames",
		Usage: "Number of frames tracked by the replacer",
	}
	// KFlag overrides the configured history depth
	KFlag = cli.IntFlag{
		Name:  "k",
		Usage: "History depth of the LRU-K replacer",
	}
)

var globalFlags = []cli.Flag{
	ConfigFlag,
	LogFlag,
	LogColourFlag,
	MetricsFlag,
}
