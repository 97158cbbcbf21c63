package inspector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jsxtrace/engine"
	"jsxtrace/inspector"
)

func inspectSource(t *testing.T, source string) *inspector.FileAnalysis {
	t.Helper()
	analysis, err := inspector.NewInspector(nil).InspectSource([]byte(source), "app.jsx")
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	return analysis
}

func elementByTag(t *testing.T, analysis *inspector.FileAnalysis, tag string) inspector.ElementAnalysis {
	t.Helper()
	for _, el := range analysis.Elements {
		if el.Tag == tag {
			return el
		}
	}
	t.Fatalf("no element with tag %q (have %d elements)", tag, len(analysis.Elements))
	return inspector.ElementAnalysis{}
}

func TestInspectSource_KindCoverage(t *testing.T) {
	tests := []struct {
		name      string
		source    string
		wantKinds []string
	}{
		{
			name: "literal child",
			source: `function App() {
  return <div>{"Hello"}</div>;
}`,
			wantKinds: []string{"literal"},
		},
		{
			name: "module const traces through ident and init",
			source: `const m = "Hello";
function App() {
  return <div>{m}</div>;
}`,
			wantKinds: []string{"ident", "init", "literal"},
		},
		{
			name: "imported value",
			source: `import { v } from './c';
function App() {
  return <div>{v}</div>;
}`,
			wantKinds: []string{"import"},
		},
		{
			name: "process env access",
			source: `function App() {
  return <div>{process.env.API_KEY}</div>;
}`,
			wantKinds: []string{"env"},
		},
		{
			name: "import meta env access",
			source: `function App() {
  return <div>{import.meta.env.MODE}</div>;
}`,
			wantKinds: []string{"env"},
		},
		{
			name: "member access recurses into base",
			source: `import theme from './theme';
function App() {
  return <div>{theme.colors.primary}</div>;
}`,
			wantKinds: []string{"member", "import"},
		},
		{
			name: "call surfaces wrapped literal",
			source: `import { t } from './i18n';
function App() {
  return <div>{t('greeting.title')}</div>;
}`,
			wantKinds: []string{"call", "import", "literal"},
		},
		{
			name: "unresolved identifier degrades to unknown",
			source: `function App() {
  return <div>{ghost}</div>;
}`,
			wantKinds: []string{"unknown"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			analysis := inspectSource(t, tc.source)
			el := elementByTag(t, analysis, "div")
			assert.Subset(t, el.Kinds, tc.wantKinds)
		})
	}
}

func TestInspectSource_CallsiteGuarantee(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{name: "element with no traceable props", source: `function App() { return <hr />; }`},
		{name: "element with traced child", source: `function App() { return <div>{"x"}</div>; }`},
		{
			name: "element with spread attribute",
			source: `function App(props) {
  return <div {...props} />;
}`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			analysis := inspectSource(t, tc.source)
			for _, el := range analysis.Elements {
				assert.NotEmpty(t, el.Candidates)
				callsites := 0
				for _, c := range el.Candidates {
					if c.Reason == engine.KindCallsite {
						callsites++
					}
				}
				assert.Equal(t, 1, callsites, "exactly one callsite per element")
			}
		})
	}
}

func TestInspectSource_AttributeTracing(t *testing.T) {
	source := `const title = "Dashboard";
function App() {
  return <h1 title={title} id="main">{title}</h1>;
}`
	analysis := inspectSource(t, source)
	el := elementByTag(t, analysis, "h1")

	assert.Subset(t, el.Kinds, []string{"ident", "init", "literal"})
	// title referenced in both an attribute and a child
	names := []string{}
	for _, ref := range el.SymbolRefs {
		names = append(names, ref.Name)
	}
	assert.Equal(t, []string{"title", "title"}, names)
}

func TestInspectSource_Imports(t *testing.T) {
	source := `import React, { useState, useMemo as memo } from 'react';
import * as utils from './utils';
import './styles.css';`
	analysis := inspectSource(t, source)

	assert.Equal(t, []engine.ImportRow{
		{Local: "React", Imported: "default", Source: "react", Span: engine.Span{StartLine: 1, EndLine: 1}},
		{Local: "useState", Imported: "useState", Source: "react", Span: engine.Span{StartLine: 1, EndLine: 1}},
		{Local: "memo", Imported: "useMemo", Source: "react", Span: engine.Span{StartLine: 1, EndLine: 1}},
		{Local: "utils", Imported: "*", Source: "./utils", Span: engine.Span{StartLine: 2, EndLine: 2}},
	}, analysis.Graph.Imports)
}

func TestInspectSource_ExportsAndReExports(t *testing.T) {
	source := `export const COLORS = { primary: "blue" };
export default function App() { return null; }
export { helper as assist } from './helpers';
export * from './widgets';
const internal = 1;
export { internal };`
	analysis := inspectSource(t, source)

	exported := []string{}
	for _, row := range analysis.Graph.Exports {
		exported = append(exported, row.Exported)
	}
	assert.Equal(t, []string{"COLORS", "default", "internal"}, exported)

	assert.Equal(t, []engine.ReExportRow{
		{Exported: "assist", Local: "helper", Source: "./helpers", Span: engine.Span{StartLine: 3, EndLine: 3}},
		{Exported: "*", Source: "./widgets", Span: engine.Span{StartLine: 4, EndLine: 4}},
	}, analysis.Graph.ReExports)
}

func TestInspectSource_Defs(t *testing.T) {
	source := `const a = 1;
let b;
var c = "x";
function render() {}
class Widget {}
const { d, e } = require('./pair');`
	analysis := inspectSource(t, source)

	locals := []string{}
	kinds := []engine.DeclKind{}
	for _, row := range analysis.Graph.Defs {
		locals = append(locals, row.Local)
		kinds = append(kinds, row.Kind)
	}
	assert.Equal(t, []string{"a", "b", "c", "render", "Widget", "d", "e"}, locals)
	assert.Equal(t, []engine.DeclKind{
		engine.DeclConst, engine.DeclLet, engine.DeclVar,
		engine.DeclFunc, engine.DeclClass,
		engine.DeclConst, engine.DeclConst,
	}, kinds)
}

func TestInspectSource_MutationRootExtraction(t *testing.T) {
	source := `let count = 0;
function f() {
  count++;
  count += 2;
  foo.count++;
}`
	analysis := inspectSource(t, source)

	roots := []string{}
	operators := []string{}
	for _, row := range analysis.Graph.Mutations {
		roots = append(roots, row.Root)
		operators = append(operators, row.Operator)
	}
	// foo is unbound, so foo.count++ produces no row
	assert.Equal(t, []string{"count", "count"}, roots)
	assert.Equal(t, []string{"++", "+="}, operators)
}

func TestInspectSource_MutationOnBoundMemberRoot(t *testing.T) {
	source := `const state = { count: 0 };
function f() {
  state.count = 5;
}`
	analysis := inspectSource(t, source)

	assert.Len(t, analysis.Graph.Mutations, 1)
	assert.Equal(t, "state", analysis.Graph.Mutations[0].Root)
	assert.Equal(t, "=", analysis.Graph.Mutations[0].Operator)
}

func TestInspectSource_LiteralIndexScoping(t *testing.T) {
	exported := `export const COLORS = { primary: "blue" };`
	analysis := inspectSource(t, exported)
	if assert.Len(t, analysis.Graph.LiteralIndex, 1) {
		assert.Equal(t, "blue", analysis.Graph.LiteralIndex[0].Text)
	}

	// the same shape without export contributes nothing
	local := `const COLORS = { primary: "blue" };`
	analysis = inspectSource(t, local)
	assert.Empty(t, analysis.Graph.LiteralIndex)
}

func TestInspectSource_Deterministic(t *testing.T) {
	source := `import { v } from './c';
export const COLORS = { primary: "blue", weight: 600 };
let count = 0;
function App() {
  count++;
  return <div title={v}>{COLORS.primary}</div>;
}`
	emitter := &inspector.YAMLEmitter{}

	first, err := emitter.Emit(inspectSource(t, source))
	assert.NoError(t, err)
	second, err := emitter.Emit(inspectSource(t, source))
	assert.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestInspectSource_NestedElementsAreSeparateSites(t *testing.T) {
	source := `function App() {
  return (
    <section>
      <button>{"Click"}</button>
    </section>
  );
}`
	analysis := inspectSource(t, source)

	tags := []string{}
	for _, el := range analysis.Elements {
		tags = append(tags, el.Tag)
	}
	// outer element first (source order), nested element its own site
	assert.Equal(t, []string{"section", "button"}, tags)

	button := elementByTag(t, analysis, "button")
	assert.Subset(t, button.Kinds, []string{"literal"})
}

func TestInspectSource_ShadowingInsideComponent(t *testing.T) {
	source := `const label = "outer";
function App() {
  const label = "inner";
  return <span>{label}</span>;
}`
	analysis := inspectSource(t, source)
	el := elementByTag(t, analysis, "span")

	// the ident hop must point at the inner declaration on line 3
	found := false
	for _, c := range el.Candidates {
		if c.Reason == engine.KindIdent {
			assert.Equal(t, "app.jsx:3", c.Target)
			found = true
		}
	}
	assert.True(t, found, "expected an ident candidate")
}

func TestInspectSource_EmptyAndMalformedInput(t *testing.T) {
	for _, source := range []string{"", "const = ;;; <<>", "export"} {
		analysis, err := inspector.NewInspector(nil).InspectSource([]byte(source), "broken.jsx")
		assert.NoError(t, err)
		assert.NotNil(t, analysis.Graph)
	}
}
