// Package model defines the data structures for function-length scanning.
package model

// Path represents a file system path.
type Path string

// Candidate marks a line suspected to begin a function definition. It is
// produced by the detection heuristics before any measurement happens.
type Candidate struct {
	Line int    // 1-indexed line number within the file
	Name string // extracted function name, or "anonymous"
}

// Function is a candidate augmented with its measured line span.
type Function struct {
	Candidate
	Span int // inclusive line count, always >= 1
}
