package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateKinds_FirstAppearanceOrder(t *testing.T) {
	nodes := []ProvenanceNode{
		{Kind: KindIdent, Target: "f:1"},
		{Kind: KindInit, Target: "f:1-1"},
		{Kind: KindLiteral, Target: "f:1-1"},
		{Kind: KindIdent, Target: "f:2"},
		{Kind: KindLiteral, Target: "f:2-2"},
	}
	assert.Equal(t, []string{"ident", "init", "literal"}, AggregateKinds(nodes))
}

func TestAggregateKinds_Empty(t *testing.T) {
	got := AggregateKinds(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCollectSymbolRefs(t *testing.T) {
	// cx(styles.button, onClick) with styles.button as member access
	expr := &Expr{
		Kind:   ExprCall,
		Span:   span(4, 4),
		Callee: &Expr{Kind: ExprIdent, Name: "cx", Span: span(4, 4)},
		Args: []*Expr{
			{
				Kind: ExprMember, Name: "button", Span: span(4, 4),
				Base: &Expr{Kind: ExprIdent, Name: "styles", Span: span(4, 4)},
			},
			{Kind: ExprIdent, Name: "onClick", Span: span(4, 4)},
		},
	}

	var refs []SymbolRef
	CollectSymbolRefs(expr, &refs)

	names := make([]string, 0, len(refs))
	for _, r := range refs {
		names = append(names, r.Name)
	}
	// member property names are not bare identifiers
	assert.Equal(t, []string{"cx", "styles", "onClick"}, names)
}

func TestCollectSymbolRefs_SkipsNonIdentLeaves(t *testing.T) {
	var refs []SymbolRef
	CollectSymbolRefs(&Expr{Kind: ExprLiteral, Text: "x"}, &refs)
	CollectSymbolRefs(&Expr{Kind: ExprEnv, Name: "API_KEY"}, &refs)
	CollectSymbolRefs(nil, &refs)
	assert.Empty(t, refs)
}
