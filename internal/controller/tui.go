package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	m "github.com/lintgate/fnlen/internal/model"
)

// plainThreshold is the row count below which the TUI skips the interactive
// browser and prints plain text instead.
const plainThreshold = 15

// TUI implements UI using Bubble Tea for interactive terminals.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI writing to output.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayReport prints the check report. The report format is a contract
// with automation pipelines, so it stays plain even on a TTY.
func (t *TUI) DisplayReport(report m.RunReport) error {
	return writeReport(t.output, report)
}

// DisplayFunctions shows measured functions in a scrollable browser, falling
// back to plain text for short lists.
func (t *TUI) DisplayFunctions(scans []m.FileScan, maxLines int) error {
	items := make([]list.Item, 0)

	for _, scan := range scans {
		for _, fn := range scan.Functions {
			items = append(items, rowItem{
				path: string(scan.File),
				line: fn.Line,
				name: fn.Name,
				span: fn.Span,
				over: fn.Span > maxLines,
			})
		}
	}

	if len(items) == 0 {
		_, err := fmt.Fprintln(t.output, "No functions found")
		return err
	}

	if len(items) <= plainThreshold {
		return NewSimpleUIWriter(t.output).DisplayFunctions(scans, maxLines)
	}

	return t.runBrowser("Measured functions", items)
}

// DisplaySavedReport renders a persisted report, browsing violations
// interactively when there are many.
func (t *TUI) DisplaySavedReport(report m.RunReport) error {
	if len(report.Violations) <= plainThreshold {
		_, _ = fmt.Fprintf(t.output, "Report generated at %s\n\n", report.GeneratedAt.Format("2006-01-02 15:04:05"))

		return writeReport(t.output, report)
	}

	items := make([]list.Item, 0, len(report.Violations))
	for _, v := range report.Violations {
		items = append(items, rowItem{
			path: string(v.File),
			line: v.Line,
			name: v.Name,
			span: v.Span,
			over: true,
		})
	}

	title := fmt.Sprintf("%d functions exceed the %d line limit", len(report.Violations), report.MaxLines)

	return t.runBrowser(title, items)
}

func (t *TUI) runBrowser(title string, items []list.Item) error {
	model := newBrowserModel(title, items)

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}
