package engine

// DefaultMaxDepth bounds provenance recursion. Real chains stay far below it;
// the cap only guards against self-referential initializers.
const DefaultMaxDepth = 64

// Analysis carries all state for one file's analysis: the binding table, the
// module graph, and the trace depth bound. It is created fresh per file and
// holds no cross-file or cross-invocation state, so files can be analyzed
// concurrently with one Analysis each.
type Analysis struct {
	FileKey  string
	Bindings *BindingTable
	Graph    *ModuleGraph
	MaxDepth int
}

// NewAnalysis returns an empty analysis for the given file key.
func NewAnalysis(fileKey string) *Analysis {
	return &Analysis{
		FileKey:  fileKey,
		Bindings: NewBindingTable(),
		Graph:    NewModuleGraph(),
		MaxDepth: DefaultMaxDepth,
	}
}

// AddImport appends an import row.
func (a *Analysis) AddImport(row ImportRow) {
	a.Graph.Imports = append(a.Graph.Imports, row)
}

// AddExport appends an export row.
func (a *Analysis) AddExport(row ExportRow) {
	a.Graph.Exports = append(a.Graph.Exports, row)
}

// AddReExport appends a re-export row.
func (a *Analysis) AddReExport(row ReExportRow) {
	a.Graph.ReExports = append(a.Graph.ReExports, row)
}

// AddDef appends a top-level definition row.
func (a *Analysis) AddDef(row DefRow) {
	a.Graph.Defs = append(a.Graph.Defs, row)
}

// AddExportLiteral appends a literal-index row for a literal reachable from
// an exported initializer.
func (a *Analysis) AddExportLiteral(text string, span Span) {
	a.Graph.LiteralIndex = append(a.Graph.LiteralIndex, LiteralIndexRow{Text: text, Span: span})
}

// AddMutation appends a mutation row when root resolves to a known binding in
// scopeID's chain. An unresolvable root is silently dropped; the return value
// reports whether the row was kept.
func (a *Analysis) AddMutation(scopeID int, root, operator string, span Span) bool {
	if a.Bindings.Lookup(scopeID, root) == nil {
		return false
	}
	a.Graph.Mutations = append(a.Graph.Mutations, MutationRow{Root: root, Operator: operator, Span: span})
	return true
}

// Element is one JSX element handed over by the host: its own span, the scope
// it appears in, and its attribute and child expressions in source order.
type Element struct {
	Span     Span
	Scope    int
	Attrs    []*Expr
	Children []*Expr
}

// ElementTrace is the per-element output: ranked edit candidates, the set of
// source kinds on the provenance chain, and every symbol referenced by the
// traced expressions.
type ElementTrace struct {
	Candidates []Candidate `json:"candidates" yaml:"candidates"`
	Kinds      []string    `json:"kinds" yaml:"kinds"`
	SymbolRefs []SymbolRef `json:"symbolRefs" yaml:"symbolRefs"`
}

// AnalyzeElement traces every attribute and child expression in source order,
// ranks the resulting chain, and appends the element's own callsite candidate
// so every element yields at least one edit target.
func (a *Analysis) AnalyzeElement(el Element) ElementTrace {
	nodes := []ProvenanceNode{}
	for _, expr := range el.Attrs {
		a.Trace(expr, el.Scope, &nodes)
	}
	for _, expr := range el.Children {
		a.Trace(expr, el.Scope, &nodes)
	}

	candidates := Rank(nodes)
	candidates = AppendCallsite(candidates, el.Span.Range(a.FileKey))

	refs := []SymbolRef{}
	for _, expr := range el.Attrs {
		CollectSymbolRefs(expr, &refs)
	}
	for _, expr := range el.Children {
		CollectSymbolRefs(expr, &refs)
	}

	return ElementTrace{
		Candidates: candidates,
		Kinds:      AggregateKinds(nodes),
		SymbolRefs: refs,
	}
}
