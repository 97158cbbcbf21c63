package engine

import "fmt"

// Span is a line range within the analyzed file. A zero Span (line 0) stands
// in for missing source-location metadata.
type Span struct {
	StartLine int `json:"startLine" yaml:"startLine"`
	EndLine   int `json:"endLine" yaml:"endLine"`
}

// Point renders a single-point declaration target: "<fileKey>:<line>".
func (s Span) Point(fileKey string) string {
	return fmt.Sprintf("%s:%d", fileKey, s.StartLine)
}

// Range renders an expression-derived target: "<fileKey>:<start>-<end>".
func (s Span) Range(fileKey string) string {
	return fmt.Sprintf("%s:%d-%d", fileKey, s.StartLine, s.EndLine)
}
