// Package domain implements the function-length scanning workflow.
package domain

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gobwas/glob"
	"golang.org/x/sync/errgroup"

	"github.com/lintgate/fnlen/internal/adapter"
	"github.com/lintgate/fnlen/internal/controller"
	m "github.com/lintgate/fnlen/internal/model"
)

// ErrViolations reports that the scan completed cleanly but found functions
// over the limit. Callers translate it into a non-zero exit status without
// printing an operational error.
var ErrViolations = errors.New("functions exceeding the line limit found")

// CheckArgs configures a check run.
type CheckArgs struct {
	Paths     []m.Path
	MaxLines  int
	Extension string
	Exclude   []string
	Threads   int
	Reports   m.Path // empty disables report persistence
}

// ListArgs configures a list run.
type ListArgs struct {
	Paths     []m.Path
	MaxLines  int
	Extension string
	Exclude   []string
	Threads   int
}

// ViewArgs configures a view run.
type ViewArgs struct {
	Reports m.Path
}

// Workflow defines the interface for scan operations.
type Workflow interface {
	Check(args CheckArgs) error
	List(args ListArgs) error
	View(args ViewArgs) error
}

type workflow struct {
	fs      adapter.SourceFSAdapter
	store   adapter.ReportStore
	ui      controller.UI
	scanner Scanner
}

// NewWorkflow creates a Workflow instance with the provided adapters.
func NewWorkflow(fs adapter.SourceFSAdapter, store adapter.ReportStore, ui controller.UI) Workflow {
	return &workflow{
		fs:      fs,
		store:   store,
		ui:      ui,
		scanner: NewScanner(),
	}
}

// Check scans the configured roots, prints the CI report, optionally
// persists it, and returns ErrViolations when the gate fails.
func (w *workflow) Check(args CheckArgs) error {
	files, err := w.collectFiles(args.Paths, args.Extension, args.Exclude)
	if err != nil {
		return err
	}

	scans, err := w.scanAll(files, args.MaxLines, args.Threads)
	if err != nil {
		return err
	}

	report := m.RunReport{
		Roots:       args.Paths,
		MaxLines:    args.MaxLines,
		Extension:   args.Extension,
		FileCount:   len(files),
		Violations:  collectViolations(scans),
		GeneratedAt: time.Now(),
	}

	if err := w.ui.DisplayReport(report); err != nil {
		return err
	}

	if args.Reports != "" {
		if err := w.store.Save(args.Reports, report); err != nil {
			return err
		}
	}

	if !report.Compliant() {
		return ErrViolations
	}

	return nil
}

// List scans the configured roots and displays every measured function.
func (w *workflow) List(args ListArgs) error {
	files, err := w.collectFiles(args.Paths, args.Extension, args.Exclude)
	if err != nil {
		return err
	}

	scans, err := w.scanAll(files, args.MaxLines, args.Threads)
	if err != nil {
		return err
	}

	return w.ui.DisplayFunctions(scans, args.MaxLines)
}

// View renders the last persisted check report.
func (w *workflow) View(args ViewArgs) error {
	report, err := w.store.Load(args.Reports)
	if err != nil {
		return err
	}

	return w.ui.DisplaySavedReport(report)
}

// collectFiles enumerates matching source files under the roots in a
// deterministic order. A missing root fails fast before any file is scanned.
func (w *workflow) collectFiles(roots []m.Path, extension string, exclude []string) ([]m.Path, error) {
	excludeGlobs, err := compileExcludes(exclude)
	if err != nil {
		return nil, err
	}

	seen := make(map[m.Path]struct{})

	var files []m.Path

	for _, root := range roots {
		info, err := w.fs.FileInfo(root)
		if err != nil {
			return nil, fmt.Errorf("source directory %s not found", root)
		}

		if !info.IsDir() {
			w.appendFile(&files, seen, string(root), extension, excludeGlobs)
			continue
		}

		err = w.fs.Walk(root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() {
				return nil
			}

			w.appendFile(&files, seen, path, extension, excludeGlobs)

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}

	sort.Slice(files, func(i, j int) bool { return files[i] < files[j] })

	return files, nil
}

func (w *workflow) appendFile(files *[]m.Path, seen map[m.Path]struct{}, path, extension string, excludeGlobs []glob.Glob) {
	if !strings.HasSuffix(path, extension) {
		return
	}

	slashed := filepath.ToSlash(path)
	for _, g := range excludeGlobs {
		if g.Match(slashed) {
			return
		}
	}

	key := m.Path(path)
	if abs, err := w.fs.AbsPath(key); err == nil {
		key = abs
	}

	if _, exists := seen[key]; exists {
		return
	}

	seen[key] = struct{}{}

	*files = append(*files, m.Path(path))
}

// scanAll reads and scans every file, optionally in parallel. Results are
// indexed by file position so the chosen concurrency never changes output
// order.
func (w *workflow) scanAll(files []m.Path, maxLines, threads int) ([]m.FileScan, error) {
	if threads <= 0 {
		threads = 1
	}

	scans := make([]m.FileScan, len(files))

	var g errgroup.Group

	g.SetLimit(threads)

	for i, path := range files {
		g.Go(func() error {
			content, err := w.fs.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}

			scans[i] = w.scanner.ScanFile(path, content, maxLines)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return scans, nil
}

// collectViolations flattens per-file violations preserving file order.
func collectViolations(scans []m.FileScan) []m.Violation {
	var violations []m.Violation

	for _, scan := range scans {
		violations = append(violations, scan.Violations...)
	}

	return violations
}

func compileExcludes(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))

	for _, p := range patterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", p, err)
		}

		globs = append(globs, g)
	}

	return globs, nil
}
