package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/lintgate/fnlen/internal/model"
)

func TestScanner_MeasureSpan(t *testing.T) {
	s := NewScanner()

	tests := []struct {
		name      string
		content   string
		startLine int
		want      int
	}{
		{
			name:      "single line function",
			content:   "function f() { return 1; }",
			startLine: 1,
			want:      1,
		},
		{
			name: "brace pair across lines",
			content: strings.Join([]string{
				"function f() {",
				"  work();",
				"}",
			}, "\n"),
			startLine: 1,
			want:      3,
		},
		{
			name: "nested braces stay inside",
			content: strings.Join([]string{
				"function f() {",
				"  if (x) {",
				"    y();",
				"  }",
				"  z();",
				"}",
				"after();",
			}, "\n"),
			startLine: 1,
			want:      6,
		},
		{
			name: "declaration line without braces does not terminate",
			content: strings.Join([]string{
				"function f(a,",
				"           b)",
				"{",
				"  work();",
				"}",
			}, "\n"),
			startLine: 1,
			want:      5,
		},
		{
			name: "spurious closing brace terminates early",
			content: strings.Join([]string{
				"function f() {",
				"  s = \"}\";",
				"  work();",
				"}",
			}, "\n"),
			startLine: 1,
			want:      2,
		},
		{
			name: "unterminated function runs to end of file",
			content: strings.Join([]string{
				"function f() {",
				"  work();",
				"  more();",
			}, "\n"),
			startLine: 1,
			want:      3,
		},
		{
			name: "start line in the middle of a file",
			content: strings.Join([]string{
				"const a = 1;",
				"function f() {",
				"  work();",
				"}",
				"const b = 2;",
			}, "\n"),
			startLine: 2,
			want:      3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.MeasureSpan(tt.content, tt.startLine)

			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 1)
		})
	}
}

func TestScanner_MeasureSpan_OutOfRangeStart(t *testing.T) {
	s := NewScanner()

	content := "function f() {\n}"

	assert.Equal(t, 0, s.MeasureSpan(content, 0))
	assert.Equal(t, 0, s.MeasureSpan(content, -1))
	assert.Equal(t, 0, s.MeasureSpan(content, 3))
}

func TestScanner_FindCandidates(t *testing.T) {
	s := NewScanner()

	t.Run("returns candidates in ascending line order", func(t *testing.T) {
		content := strings.Join([]string{
			"import x from 'y';",
			"function first() {",
			"}",
			"",
			"function second() {",
			"}",
		}, "\n")

		candidates := s.FindCandidates(content)

		require.Len(t, candidates, 2)
		assert.Equal(t, m.Candidate{Line: 2, Name: "first"}, candidates[0])
		assert.Equal(t, m.Candidate{Line: 5, Name: "second"}, candidates[1])
	})

	t.Run("one candidate per line even when several patterns match", func(t *testing.T) {
		candidates := s.FindCandidates("export async function load() {")

		require.Len(t, candidates, 1)
		assert.Equal(t, "load", candidates[0].Name)
	})

	t.Run("duplicate names at different lines are kept", func(t *testing.T) {
		content := strings.Join([]string{
			"function setup() {",
			"}",
			"function setup() {",
			"}",
		}, "\n")

		candidates := s.FindCandidates(content)

		require.Len(t, candidates, 2)
		assert.Equal(t, candidates[0].Name, candidates[1].Name)
		assert.Less(t, candidates[0].Line, candidates[1].Line)
	})

	t.Run("file without function-like lines yields none", func(t *testing.T) {
		content := strings.Join([]string{
			"import x from 'y';",
			"const a = 1;",
			"export default a;",
		}, "\n")

		assert.Empty(t, s.FindCandidates(content))
	})
}

func TestScanner_ScanFile(t *testing.T) {
	s := NewScanner()

	// f spans lines 1-4, g spans lines 5-7.
	content := []byte(strings.Join([]string{
		"function f() {",
		"  a();",
		"  b();",
		"}",
		"function g() {",
		"  c();",
		"}",
	}, "\n"))

	t.Run("span equal to the limit passes", func(t *testing.T) {
		scan := s.ScanFile("src/app.ts", content, 4)

		require.Len(t, scan.Functions, 2)
		assert.Empty(t, scan.Violations)
	})

	t.Run("span one over the limit produces exactly one violation", func(t *testing.T) {
		scan := s.ScanFile("src/app.ts", content, 3)

		require.Len(t, scan.Violations, 1)
		assert.Equal(t, m.Violation{File: "src/app.ts", Line: 1, Name: "f", Span: 4}, scan.Violations[0])
	})

	t.Run("violations keep candidate order", func(t *testing.T) {
		scan := s.ScanFile("src/app.ts", content, 2)

		require.Len(t, scan.Violations, 2)
		assert.Equal(t, 1, scan.Violations[0].Line)
		assert.Equal(t, 5, scan.Violations[1].Line)
	})

	t.Run("empty file yields nothing", func(t *testing.T) {
		scan := s.ScanFile("src/empty.ts", nil, 120)

		assert.Empty(t, scan.Functions)
		assert.Empty(t, scan.Violations)
	})
}
