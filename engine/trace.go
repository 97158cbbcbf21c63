package engine

// NodeKind tags one hop of a provenance chain.
type NodeKind string

const (
	KindLiteral NodeKind = "literal"
	KindIdent   NodeKind = "ident"
	KindInit    NodeKind = "init"
	KindImport  NodeKind = "import"
	KindCall    NodeKind = "call"
	KindMember  NodeKind = "member"
	KindEnv     NodeKind = "env"
	KindUnknown NodeKind = "unknown"

	// KindCallsite appears only as a Candidate reason: the synthesized entry
	// pointing at the JSX element itself.
	KindCallsite NodeKind = "callsite"
)

// ProvenanceNode is one hop in a trace. Target formats follow the span rules:
// declaration-point hops (ident, import) use "<fileKey>:<line>", expression
// hops use "<fileKey>:<start>-<end>".
type ProvenanceNode struct {
	Kind   NodeKind `json:"kind" yaml:"kind"`
	Target string   `json:"target" yaml:"target"`
	Detail string   `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// Trace appends the provenance nodes for expr to acc, depth-first, in the
// order defined by the expression's own structure. Resolution failures
// degrade to unknown nodes; nothing is ever reported as an error.
func (a *Analysis) Trace(expr *Expr, scopeID int, acc *[]ProvenanceNode) {
	a.trace(expr, scopeID, acc, 0)
}

func (a *Analysis) trace(expr *Expr, scopeID int, acc *[]ProvenanceNode, depth int) {
	if expr == nil || depth > a.maxDepth() {
		return
	}
	switch expr.Kind {
	case ExprLiteral:
		*acc = append(*acc, ProvenanceNode{Kind: KindLiteral, Target: expr.Span.Range(a.FileKey), Detail: expr.Text})

	case ExprIdent:
		binding := a.Bindings.Lookup(scopeID, expr.Name)
		switch {
		case binding == nil:
			*acc = append(*acc, ProvenanceNode{Kind: KindUnknown, Target: expr.Span.Range(a.FileKey), Detail: expr.Name})
		case binding.Kind == DeclImport:
			*acc = append(*acc, ProvenanceNode{Kind: KindImport, Target: binding.Span.Point(a.FileKey), Detail: expr.Name})
		case binding.Init != nil:
			*acc = append(*acc, ProvenanceNode{Kind: KindIdent, Target: binding.Span.Point(a.FileKey), Detail: expr.Name})
			*acc = append(*acc, ProvenanceNode{Kind: KindInit, Target: binding.Init.Span.Range(a.FileKey)})
			a.trace(binding.Init, binding.Scope, acc, depth+1)
		default:
			// declaration without a traceable initializer (param, func, class)
			*acc = append(*acc, ProvenanceNode{Kind: KindIdent, Target: binding.Span.Point(a.FileKey), Detail: expr.Name})
		}

	case ExprEnv:
		*acc = append(*acc, ProvenanceNode{Kind: KindEnv, Target: expr.Span.Range(a.FileKey), Detail: expr.Name})

	case ExprMember:
		*acc = append(*acc, ProvenanceNode{Kind: KindMember, Target: expr.Span.Range(a.FileKey), Detail: expr.Name})
		a.trace(expr.Base, scopeID, acc, depth+1)

	case ExprCall:
		*acc = append(*acc, ProvenanceNode{Kind: KindCall, Target: expr.Span.Range(a.FileKey)})
		a.trace(expr.Callee, scopeID, acc, depth+1)
		// surface wrapped literals such as t('key')
		if len(expr.Args) > 0 {
			a.trace(expr.Args[0], scopeID, acc, depth+1)
		}

	case ExprSpread:
		a.trace(expr.Inner, scopeID, acc, depth+1)

	default:
		*acc = append(*acc, ProvenanceNode{Kind: KindUnknown, Target: expr.Span.Range(a.FileKey)})
	}
}

func (a *Analysis) maxDepth() int {
	if a.MaxDepth > 0 {
		return a.MaxDepth
	}
	return DefaultMaxDepth
}
