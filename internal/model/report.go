package model

import "time"

// Violation records a measured function whose span exceeds the configured
// maximum line count.
type Violation struct {
	File Path   `json:"file"`
	Line int    `json:"line"`
	Name string `json:"name"`
	Span int    `json:"span"`
}

// FileScan holds the scan results for a single source file. Functions and
// Violations are ordered by ascending line number.
type FileScan struct {
	File       Path        `json:"file"`
	Functions  []Function  `json:"-"`
	Violations []Violation `json:"violations,omitempty"`
}

// RunReport aggregates the results of one scan over a set of roots.
type RunReport struct {
	Roots       []Path      `json:"roots"`
	MaxLines    int         `json:"max_lines"`
	Extension   string      `json:"extension"`
	FileCount   int         `json:"file_count"`
	Violations  []Violation `json:"violations"`
	GeneratedAt time.Time   `json:"generated_at"`
}

// Compliant reports whether the run found no violations.
func (r RunReport) Compliant() bool {
	return len(r.Violations) == 0
}
