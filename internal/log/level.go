package log

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Level is the level of the logger.
type Level uint8

// Levels in increasing severity.
const (
	Trace Level = iota
	Debug
	Info
	Warn
	Error
	Critical
)

var levelNames = [...]string{
	Trace:    "TRCE",
	Debug:    "DBUG",
	Info:     "INFO",
	Warn:     "WARN",
	Error:    "EROR",
	Critical: "CRIT",
}

var levelColours = [...]color.Attribute{
	Trace:    color.FgHiCyan,
	Debug:    color.FgHiBlue,
	Info:     color.FgCyan,
	Warn:     color.FgYellow,
	Error:    color.FgHiRed,
	Critical: color.FgRed,
}

// long names accepted by ParseLevel next to the four letter ones
var levelAliases = map[string]Level{
	"TRACE":    Trace,
	"DEBUG":    Debug,
	"WARNING":  Warn,
	"ERROR":    Error,
	"CRITICAL": Critical,
}

func (level Level) String() string {
	if int(level) < len(levelNames) {
		return levelNames[level]
	}
	return "???"
}

// ColouredString wraps the level name in its ANSI colour, whether or not the
// output is a terminal.
func (level Level) ColouredString() string {
	if int(level) >= len(levelColours) {
		return level.String()
	}

	c := color.New(levelColours[level])
	c.EnableColor()

	return c.Sprint(level.String())
}

// ErrLevelNotRecognised is returned by ParseLevel for an unknown level string.
var ErrLevelNotRecognised = errors.New("level is not recognised")

// ParseLevel parses a level name such as "debug" or "DBUG", ignoring case.
func ParseLevel(s string) (Level, error) {
	upper := strings.ToUpper(s)

	for level, name := range levelNames {
		if name == upper {
			return Level(level), nil
		}
	}

	if level, ok := levelAliases[upper]; ok {
		return level, nil
	}

	return 0, fmt.Errorf("%w: %s", ErrLevelNotRecognised, s)
}
