package engine

// AggregateKinds returns the set of distinct node kinds present in the chain,
// ordered by first appearance. The UI uses it as a coarse source filter.
func AggregateKinds(nodes []ProvenanceNode) []string {
	kinds := []string{}
	seen := map[NodeKind]bool{}
	for _, node := range nodes {
		if seen[node.Kind] {
			continue
		}
		seen[node.Kind] = true
		kinds = append(kinds, string(node.Kind))
	}
	return kinds
}

// SymbolRef is a flattened reference to a named symbol used inside a traced
// expression.
type SymbolRef struct {
	Name string `json:"name" yaml:"name"`
	Span Span   `json:"span" yaml:"span"`
}

// CollectSymbolRefs records every bare identifier referenced anywhere in
// expr, independent of the provenance path, for "where else is this name
// used" lookups. Member properties and env variable names are not bare
// identifiers and are skipped.
func CollectSymbolRefs(expr *Expr, acc *[]SymbolRef) {
	if expr == nil {
		return
	}
	switch expr.Kind {
	case ExprIdent:
		*acc = append(*acc, SymbolRef{Name: expr.Name, Span: expr.Span})
	case ExprMember:
		CollectSymbolRefs(expr.Base, acc)
	case ExprCall:
		CollectSymbolRefs(expr.Callee, acc)
		for _, arg := range expr.Args {
			CollectSymbolRefs(arg, acc)
		}
	case ExprSpread:
		CollectSymbolRefs(expr.Inner, acc)
	}
}
