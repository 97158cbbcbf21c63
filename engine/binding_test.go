package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBindingTable_Lookup(t *testing.T) {
	table := NewBindingTable()
	table.Define(ModuleScope, &Binding{Name: "title", Kind: DeclConst, Span: Span{StartLine: 1, EndLine: 1}})

	fnScope := table.Push(ModuleScope)
	table.Define(fnScope, &Binding{Name: "props", Kind: DeclParam, Span: Span{StartLine: 3, EndLine: 3}})

	blockScope := table.Push(fnScope)
	table.Define(blockScope, &Binding{Name: "title", Kind: DeclLet, Span: Span{StartLine: 5, EndLine: 5}})

	tests := []struct {
		description string
		scope       int
		name        string
		wantKind    DeclKind
		wantLine    int
		wantNil     bool
	}{
		{description: "module scope resolves own binding", scope: ModuleScope, name: "title", wantKind: DeclConst, wantLine: 1},
		{description: "inner scope shadows outer", scope: blockScope, name: "title", wantKind: DeclLet, wantLine: 5},
		{description: "function scope sees module scope", scope: fnScope, name: "title", wantKind: DeclConst, wantLine: 1},
		{description: "param visible in nested block", scope: blockScope, name: "props", wantKind: DeclParam, wantLine: 3},
		{description: "param not visible at module scope", scope: ModuleScope, name: "props", wantNil: true},
		{description: "unbound name", scope: blockScope, name: "missing", wantNil: true},
	}

	for _, tc := range tests {
		got := table.Lookup(tc.scope, tc.name)
		if tc.wantNil {
			assert.Nil(t, got, tc.description)
			continue
		}
		if !assert.NotNil(t, got, tc.description) {
			continue
		}
		assert.Equal(t, tc.wantKind, got.Kind, tc.description)
		assert.Equal(t, tc.wantLine, got.Span.StartLine, tc.description)
	}
}

func TestBindingTable_LastDefinitionWins(t *testing.T) {
	table := NewBindingTable()
	table.Define(ModuleScope, &Binding{Name: "v", Kind: DeclVar, Span: Span{StartLine: 1, EndLine: 1}})
	table.Define(ModuleScope, &Binding{Name: "v", Kind: DeclVar, Span: Span{StartLine: 9, EndLine: 9}})

	got := table.Lookup(ModuleScope, "v")
	assert.NotNil(t, got)
	assert.Equal(t, 9, got.Span.StartLine)
}

func TestBindingTable_DefineRecordsScope(t *testing.T) {
	table := NewBindingTable()
	child := table.Push(ModuleScope)
	b := &Binding{Name: "x", Kind: DeclLet}
	table.Define(child, b)
	assert.Equal(t, child, b.Scope)
}
