// Package repository locates the frontend project that owns an inspected
// file and derives the stable file keys used in emitted traces.
package repository

// Project describes the detected project root for an inspected file.
type Project struct {
	// Name is taken from package.json when present, otherwise the root
	// directory name.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	// Type is "javascript", "typescript" or "git"; "unknown" when no marker
	// was found.
	Type string `json:"type" yaml:"type"`
	// RootPath is the absolute path of the project root.
	RootPath string `json:"rootPath" yaml:"rootPath"`
	// RelativePath is the slash-separated path of the inspected file within
	// the root.
	RelativePath string `json:"relativePath,omitempty" yaml:"relativePath,omitempty"`
}
