package controller

import (
	"bytes"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/lintgate/fnlen/internal/model"
)

// SimpleUI implements UI using plain text through the cobra command's output.
// It is the implementation used in CI pipes and redirected output.
type SimpleUI struct {
	cmd *cobra.Command
	out io.Writer
}

// NewSimpleUI creates a new SimpleUI bound to a cobra command's output.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// NewSimpleUIWriter creates a SimpleUI writing directly to w.
func NewSimpleUIWriter(w io.Writer) *SimpleUI {
	return &SimpleUI{out: w}
}

func (s *SimpleUI) writer() io.Writer {
	if s.out != nil {
		return s.out
	}

	return s.cmd.OutOrStdout()
}

// DisplayReport prints the check report in the CI gate format.
func (s *SimpleUI) DisplayReport(report m.RunReport) error {
	return writeReport(s.writer(), report)
}

// DisplayFunctions prints a table of every measured function, flagging the
// ones over the limit.
func (s *SimpleUI) DisplayFunctions(scans []m.FileScan, maxLines int) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"File", "Line", "Function", "Lines", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_CENTER,
	})

	fileCount := 0
	functionCount := 0

	for _, scan := range scans {
		if len(scan.Functions) == 0 {
			continue
		}

		fileCount++

		for _, fn := range scan.Functions {
			status := "ok"
			if fn.Span > maxLines {
				status = "over"
			}

			table.Append([]string{
				string(scan.File),
				fmt.Sprintf("%d", fn.Line),
				fn.Name,
				fmt.Sprintf("%d", fn.Span),
				status,
			})

			functionCount++
		}
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", fileCount),
		"",
		fmt.Sprintf("Functions %d", functionCount),
		"",
		"",
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplaySavedReport prints a persisted report with its generation time.
func (s *SimpleUI) DisplaySavedReport(report m.RunReport) error {
	s.printf("Report generated at %s\n\n", report.GeneratedAt.Format("2006-01-02 15:04:05"))

	return writeReport(s.writer(), report)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.writer(), format, args...)
}
