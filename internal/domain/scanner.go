package domain

import (
	"strings"

	m "github.com/lintgate/fnlen/internal/model"
)

// Scanner applies the detection heuristics and brace-balance measurement to
// individual source files. It never touches the filesystem; callers hand it
// full file contents.
type Scanner interface {
	// FindCandidates returns every suspected function-start line in ascending
	// line order, one candidate per matching line.
	FindCandidates(content string) []m.Candidate

	// MeasureSpan counts the lines a function occupies starting at the
	// 1-indexed startLine, using brace-balance tracking. A span is always at
	// least 1; a startLine outside the file reports 0.
	MeasureSpan(content string, startLine int) int

	// ScanFile runs detection and measurement over one file and flags
	// functions spanning more than maxLines.
	ScanFile(path m.Path, content []byte, maxLines int) m.FileScan
}

type scanner struct{}

// NewScanner constructs the heuristic Scanner implementation.
func NewScanner() Scanner {
	return &scanner{}
}

// FindCandidates tests each line against the ordered detection patterns.
// Duplicate names at different lines are allowed.
func (s *scanner) FindCandidates(content string) []m.Candidate {
	lines := strings.Split(content, "\n")

	var candidates []m.Candidate

	for i, line := range lines {
		name, ok := matchFunctionStart(line)
		if !ok {
			continue
		}

		candidates = append(candidates, m.Candidate{Line: i + 1, Name: name})
	}

	return candidates
}

// MeasureSpan scans forward from startLine keeping a running balance of
// opening minus closing braces. The span ends at the first line where the
// balance drops to zero or below and the line contains a closing brace. The
// start line itself never terminates the scan through the balance alone: a
// declaration with no braces keeps the scan open until a closing brace shows
// up. Braces inside strings or comments are counted as structural; that is
// the accepted limitation of the heuristic.
//
// A startLine outside the file has nothing to measure and reports 0. Every
// in-range start yields a span of at least 1.
func (s *scanner) MeasureSpan(content string, startLine int) int {
	lines := strings.Split(content, "\n")

	start := startLine - 1
	if start < 0 || start >= len(lines) {
		return 0
	}

	balance := 0

	for i := start; i < len(lines); i++ {
		line := lines[i]
		balance += strings.Count(line, "{") - strings.Count(line, "}")

		if balance <= 0 && strings.Contains(line, "}") {
			return i - start + 1
		}
	}

	// Unterminated function: attribute everything to end of file.
	return len(lines) - start
}

// ScanFile measures every candidate in the file and records violations for
// spans exceeding maxLines.
func (s *scanner) ScanFile(path m.Path, content []byte, maxLines int) m.FileScan {
	text := string(content)
	scan := m.FileScan{File: path}

	for _, candidate := range s.FindCandidates(text) {
		fn := m.Function{
			Candidate: candidate,
			Span:      s.MeasureSpan(text, candidate.Line),
		}
		scan.Functions = append(scan.Functions, fn)

		if fn.Span > maxLines {
			scan.Violations = append(scan.Violations, m.Violation{
				File: path,
				Line: fn.Line,
				Name: fn.Name,
				Span: fn.Span,
			})
		}
	}

	return scan
}
