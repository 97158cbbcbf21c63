package engine

// ImportRow records one named, default, or namespace import binding.
type ImportRow struct {
	Local    string `json:"local" yaml:"local"`
	Imported string `json:"imported" yaml:"imported"`
	Source   string `json:"source" yaml:"source"`
	Span     Span   `json:"span" yaml:"span"`
}

// ExportRow records a named or default export declared in this module.
type ExportRow struct {
	Exported string `json:"exported" yaml:"exported"`
	Local    string `json:"local,omitempty" yaml:"local,omitempty"`
	Span     Span   `json:"span" yaml:"span"`
}

// ReExportRow records an export forwarded from another module.
type ReExportRow struct {
	Exported string `json:"exported" yaml:"exported"`
	Local    string `json:"local,omitempty" yaml:"local,omitempty"`
	Source   string `json:"source" yaml:"source"`
	Span     Span   `json:"span" yaml:"span"`
}

// DefRow records a top-level variable, function, or class definition.
type DefRow struct {
	Local string   `json:"local" yaml:"local"`
	Kind  DeclKind `json:"kind" yaml:"kind"`
	Span  Span     `json:"span" yaml:"span"`
}

// MutationRow records an assignment or update expression whose target's root
// identifier resolves to a known binding.
type MutationRow struct {
	Root     string `json:"root" yaml:"root"`
	Operator string `json:"operator" yaml:"operator"`
	Span     Span   `json:"span" yaml:"span"`
}

// LiteralIndexRow records a string or number literal reachable from an
// exported initializer.
type LiteralIndexRow struct {
	Text string `json:"text" yaml:"text"`
	Span Span   `json:"span" yaml:"span"`
}

// ModuleGraph aggregates the per-module rows for one file. Rows are appended
// in source order during a single traversal and the graph is read-only
// afterwards; no list is ever re-sorted.
type ModuleGraph struct {
	Imports      []ImportRow       `json:"imports" yaml:"imports"`
	Exports      []ExportRow       `json:"exports" yaml:"exports"`
	ReExports    []ReExportRow     `json:"reExports" yaml:"reExports"`
	Defs         []DefRow          `json:"defs" yaml:"defs"`
	Mutations    []MutationRow     `json:"mutations" yaml:"mutations"`
	LiteralIndex []LiteralIndexRow `json:"literalIndex" yaml:"literalIndex"`
}

// NewModuleGraph returns a graph with empty, non-nil row lists so the output
// serializes as empty arrays rather than nulls.
func NewModuleGraph() *ModuleGraph {
	return &ModuleGraph{
		Imports:      []ImportRow{},
		Exports:      []ExportRow{},
		ReExports:    []ReExportRow{},
		Defs:         []DefRow{},
		Mutations:    []MutationRow{},
		LiteralIndex: []LiteralIndexRow{},
	}
}
