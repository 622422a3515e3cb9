package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mhelling/podfit/schema"
)

// Pod fill label constants.
const (
	FullValue  = "Full"  // pod seats four or more players
	ShortValue = "Short" // pod runs at the three-player floor
	BenchValue = "Bench" // unassigned players
)

// Color variables for console output.
var (
	FullColor  = color.New(color.FgGreen)           // a full table, nothing to do
	ShortColor = color.New(color.FgYellow)          // playable but could absorb a bench player
	BenchColor = color.New(color.FgRed, color.Bold) // players left without a pod
	AnchorTint = color.New(color.FgCyan)            // anchor power accents in headers
)

// GetPlainFillLabel returns a plain text label for a pod's seat count.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainFillLabel(seats int) string {
	if seats >= 4 {
		return FullValue
	}
	return ShortValue
}

// GetColorFillLabel returns a colored fill label for console tables.
func GetColorFillLabel(seats int, useColors bool) string {
	text := GetPlainFillLabel(seats)
	if !useColors {
		return text
	}
	if text == FullValue {
		return FullColor.Sprint(text)
	}
	return ShortColor.Sprint(text)
}

// TruncateName shortens a display name to maxLen, keeping the tail visible
// the way long paths are usually elided.
func TruncateName(name string, maxLen int) string {
	if maxLen <= 0 || len(name) <= maxLen {
		return name
	}
	if maxLen <= 3 {
		return name[:maxLen]
	}
	return "..." + name[len(name)-(maxLen-3):]
}

// FormatPowers renders a power list as a compact display string.
func FormatPowers(powers []schema.PowerValue) string {
	parts := make([]string, len(powers))
	for i, p := range powers {
		parts[i] = p.String()
	}
	return strings.Join(parts, "/")
}

// SelectOutputFile returns the appropriate file handle for output based on
// the provided path, defaulting to stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}
