// Package controller provides output adapters for displaying scan results.
package controller

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	m "github.com/lintgate/fnlen/internal/model"
)

// UI defines the interface for presenting scan results. Implementations can
// use different output methods (plain text for CI pipes, interactive TUI).
type UI interface {
	// DisplayReport prints the check report in the CI gate format.
	DisplayReport(report m.RunReport) error
	// DisplayFunctions shows every measured function across the scanned files.
	DisplayFunctions(scans []m.FileScan, maxLines int) error
	// DisplaySavedReport renders a previously persisted report.
	DisplaySavedReport(report m.RunReport) error
}

// NewUI creates a UI based on whether TTY mode is enabled. When useTTY is
// true it returns the Bubble Tea TUI, otherwise the plain SimpleUI.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY checks if the given writer is an interactive terminal. Returns false
// when output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// writeReport renders the check report in the fixed format automation
// pipelines parse. Both UI implementations use it so the contract lives in
// one place.
func writeReport(w io.Writer, report m.RunReport) error {
	if _, err := fmt.Fprintf(w, "Checking for functions exceeding %d lines...\n\n", report.MaxLines); err != nil {
		return err
	}

	for _, v := range report.Violations {
		_, err := fmt.Fprintf(w, "❌ ERROR: %s:%d - Function '%s' has %d lines (exceeds limit of %d)\n",
			v.File, v.Line, v.Name, v.Span, report.MaxLines)
		if err != nil {
			return err
		}
	}

	if report.Compliant() {
		_, err := fmt.Fprintf(w, "✅ All functions are within the %d line limit\n", report.MaxLines)
		return err
	}

	_, err := fmt.Fprintf(w, "\nPlease refactor functions that exceed %d lines into smaller functions.\n", report.MaxLines)

	return err
}
