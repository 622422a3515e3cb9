// Package outwriter has output and writer logic.
package outwriter

import (
	"os"
	"time"

	"github.com/mhelling/podfit/internal/contract"
	"github.com/mhelling/podfit/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the
// commands.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteAssignment prints a generation result using the configured output format.
func (ow *OutWriter) WriteAssignment(res *schema.AssignmentResult, cfg *contract.Config, duration time.Duration) error {
	return WriteAssignmentResult(res, cfg, duration)
}

// WritePlan prints the target pod-size plan for a head count.
func (ow *OutWriter) WritePlan(total int, sizes []int, cfg *contract.Config) error {
	return WritePlanResult(total, sizes, cfg)
}

// getMaxTableNameWidth calculates the maximum width for unit names in table
// output based on terminal width and the configured columns.
func getMaxTableNameWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Conservative default for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the fixed columns with borders and padding.
	baseWidth := 30 // Pod + Anchor + Seats + Fill + Kind
	if cfg.Detail {
		baseWidth += 30 // Powers + Common columns
	}
	baseWidth += 12 // borders, separators, padding

	available := termWidth - baseWidth
	if available < 12 {
		return 12
	}
	if available > 40 {
		return 40
	}
	return available
}
