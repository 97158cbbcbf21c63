package inspector

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"jsxtrace/engine"
)

// elementSite is one JSX element discovered during collection, kept until the
// binding table is complete so forward references resolve.
type elementSite struct {
	tag      string
	span     engine.Span
	scope    int
	attrs    []*engine.Expr
	children []*engine.Expr
}

// collector performs the single source-order traversal that seeds the binding
// table, appends module-graph rows, and gathers JSX element sites.
type collector struct {
	src      []byte
	analysis *engine.Analysis
	elements []elementSite
}

func newCollector(src []byte, fileKey string) *collector {
	return &collector{src: src, analysis: engine.NewAnalysis(fileKey)}
}

func (c *collector) collect(root *sitter.Node) {
	c.walkChildren(root, engine.ModuleScope)
}

func (c *collector) walkChildren(n *sitter.Node, scope int) {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c.walk(n.NamedChild(i), scope)
	}
}

func (c *collector) walk(n *sitter.Node, scope int) {
	if n == nil {
		return
	}
	switch n.Type() {
	case "import_statement":
		c.handleImport(n)

	case "export_statement":
		c.handleExport(n, scope)

	case "lexical_declaration", "variable_declaration":
		c.handleVariableDeclaration(n, scope, false)

	case "function_declaration", "generator_function_declaration":
		c.handleFunctionDeclaration(n, scope)

	case "class_declaration":
		c.handleClassDeclaration(n, scope)

	case "arrow_function", "function", "function_expression", "method_definition":
		c.handleFunctionBody(n, scope)

	case "statement_block":
		c.walkChildren(n, c.analysis.Bindings.Push(scope))

	case "catch_clause":
		c.handleCatch(n, scope)

	case "assignment_expression", "augmented_assignment_expression", "update_expression":
		c.handleMutation(n, scope)

	case "jsx_element", "jsx_self_closing_element", "jsx_fragment":
		c.handleJSX(n, scope)

	default:
		c.walkChildren(n, scope)
	}
}

// ---------------------------------------------------------------------------
// Imports and exports
// ---------------------------------------------------------------------------

func (c *collector) handleImport(n *sitter.Node) {
	span := spanOf(n)
	source := ""
	var clause *sitter.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		switch child.Type() {
		case "string":
			source = stripQuotes(child.Content(c.src))
		case "import_clause":
			clause = child
		}
	}
	if clause == nil {
		// side-effect import, no bindings
		return
	}
	for i := 0; i < int(clause.NamedChildCount()); i++ {
		child := clause.NamedChild(i)
		switch child.Type() {
		case "identifier":
			c.addImport(child.Content(c.src), "default", source, span)
		case "namespace_import":
			for j := 0; j < int(child.NamedChildCount()); j++ {
				if ident := child.NamedChild(j); ident.Type() == "identifier" {
					c.addImport(ident.Content(c.src), "*", source, span)
				}
			}
		case "named_imports":
			for j := 0; j < int(child.NamedChildCount()); j++ {
				spec := child.NamedChild(j)
				if spec.Type() != "import_specifier" {
					continue
				}
				nameNode := spec.ChildByFieldName("name")
				if nameNode == nil {
					continue
				}
				imported := nameNode.Content(c.src)
				local := imported
				if alias := spec.ChildByFieldName("alias"); alias != nil {
					local = alias.Content(c.src)
				}
				c.addImport(local, imported, source, span)
			}
		}
	}
}

func (c *collector) addImport(local, imported, source string, span engine.Span) {
	c.analysis.AddImport(engine.ImportRow{Local: local, Imported: imported, Source: source, Span: span})
	c.analysis.Bindings.Define(engine.ModuleScope, &engine.Binding{Name: local, Kind: engine.DeclImport, Span: span})
}

func (c *collector) handleExport(n *sitter.Node, scope int) {
	span := spanOf(n)
	source := ""
	hasDefault := false
	star := false
	var clause *sitter.Node
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		switch child.Type() {
		case "export_clause":
			clause = child
		case "string":
			source = stripQuotes(child.Content(c.src))
		case "default":
			hasDefault = true
		case "*":
			star = true
		}
	}

	if star && source != "" {
		c.analysis.AddReExport(engine.ReExportRow{Exported: "*", Source: source, Span: span})
		return
	}

	if clause != nil {
		for i := 0; i < int(clause.NamedChildCount()); i++ {
			spec := clause.NamedChild(i)
			if spec.Type() != "export_specifier" {
				continue
			}
			nameNode := spec.ChildByFieldName("name")
			if nameNode == nil {
				continue
			}
			local := nameNode.Content(c.src)
			exported := local
			if alias := spec.ChildByFieldName("alias"); alias != nil {
				exported = alias.Content(c.src)
			}
			if source != "" {
				c.analysis.AddReExport(engine.ReExportRow{Exported: exported, Local: local, Source: source, Span: span})
			} else {
				c.analysis.AddExport(engine.ExportRow{Exported: exported, Local: local, Span: span})
			}
		}
		return
	}

	if decl := n.ChildByFieldName("declaration"); decl != nil {
		switch decl.Type() {
		case "lexical_declaration", "variable_declaration":
			c.handleVariableDeclaration(decl, scope, true)
		case "function_declaration", "generator_function_declaration", "class_declaration":
			local := ""
			if nameNode := decl.ChildByFieldName("name"); nameNode != nil {
				local = nameNode.Content(c.src)
			}
			exported := local
			if hasDefault {
				exported = "default"
			}
			c.analysis.AddExport(engine.ExportRow{Exported: exported, Local: local, Span: spanOf(decl)})
			c.walk(decl, scope)
		default:
			c.walk(decl, scope)
		}
		return
	}

	if hasDefault {
		// export default <expression>
		for i := 0; i < int(n.NamedChildCount()); i++ {
			expr := n.NamedChild(i)
			if expr.Type() == "comment" {
				continue
			}
			local := ""
			if expr.Type() == "identifier" {
				local = expr.Content(c.src)
			}
			c.analysis.AddExport(engine.ExportRow{Exported: "default", Local: local, Span: span})
			c.collectLiterals(expr)
			c.walk(expr, scope)
			return
		}
	}
}

// collectLiterals indexes string/number literals reachable from an exported
// initializer. Function bodies inside the initializer are not part of the
// value shape and are skipped.
func (c *collector) collectLiterals(n *sitter.Node) {
	if n == nil || n.Type() == "statement_block" || n.Type() == "class_body" {
		return
	}
	switch n.Type() {
	case "string":
		c.analysis.AddExportLiteral(stripQuotes(n.Content(c.src)), spanOf(n))
		return
	case "number":
		c.analysis.AddExportLiteral(n.Content(c.src), spanOf(n))
		return
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c.collectLiterals(n.NamedChild(i))
	}
}

// ---------------------------------------------------------------------------
// Declarations and scopes
// ---------------------------------------------------------------------------

func (c *collector) handleVariableDeclaration(n *sitter.Node, scope int, exported bool) {
	kind := engine.DeclVar
	if first := n.Child(0); first != nil {
		switch first.Content(c.src) {
		case "const":
			kind = engine.DeclConst
		case "let":
			kind = engine.DeclLet
		}
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		decl := n.NamedChild(i)
		if decl.Type() != "variable_declarator" {
			continue
		}
		nameNode := decl.ChildByFieldName("name")
		valueNode := decl.ChildByFieldName("value")
		span := spanOf(decl)

		if nameNode != nil && nameNode.Type() == "identifier" {
			c.declare(nameNode.Content(c.src), kind, span, exprFromNode(valueNode, c.src), scope, exported)
		} else if nameNode != nil {
			// destructuring: one row per bound name, no traceable initializer
			for _, name := range c.patternNames(nameNode) {
				c.declare(name, kind, span, nil, scope, exported)
			}
		}
		if valueNode != nil {
			if exported {
				c.collectLiterals(valueNode)
			}
			c.walk(valueNode, scope)
		}
	}
}

func (c *collector) declare(name string, kind engine.DeclKind, span engine.Span, init *engine.Expr, scope int, exported bool) {
	c.analysis.Bindings.Define(scope, &engine.Binding{Name: name, Kind: kind, Span: span, Init: init})
	if scope == engine.ModuleScope {
		c.analysis.AddDef(engine.DefRow{Local: name, Kind: kind, Span: span})
	}
	if exported {
		c.analysis.AddExport(engine.ExportRow{Exported: name, Local: name, Span: span})
	}
}

func (c *collector) handleFunctionDeclaration(n *sitter.Node, scope int) {
	if nameNode := n.ChildByFieldName("name"); nameNode != nil {
		name := nameNode.Content(c.src)
		c.analysis.Bindings.Define(scope, &engine.Binding{Name: name, Kind: engine.DeclFunc, Span: spanOf(n)})
		if scope == engine.ModuleScope {
			c.analysis.AddDef(engine.DefRow{Local: name, Kind: engine.DeclFunc, Span: spanOf(n)})
		}
	}
	c.handleFunctionBody(n, scope)
}

func (c *collector) handleClassDeclaration(n *sitter.Node, scope int) {
	if nameNode := n.ChildByFieldName("name"); nameNode != nil {
		name := nameNode.Content(c.src)
		c.analysis.Bindings.Define(scope, &engine.Binding{Name: name, Kind: engine.DeclClass, Span: spanOf(n)})
		if scope == engine.ModuleScope {
			c.analysis.AddDef(engine.DefRow{Local: name, Kind: engine.DeclClass, Span: spanOf(n)})
		}
	}
	if body := n.ChildByFieldName("body"); body != nil {
		c.walkChildren(body, scope)
	}
}

func (c *collector) handleFunctionBody(n *sitter.Node, scope int) {
	fnScope := c.analysis.Bindings.Push(scope)
	if params := n.ChildByFieldName("parameters"); params != nil {
		c.bindParams(params, fnScope)
	}
	// arrow functions with a single bare parameter carry it in "parameter"
	if param := n.ChildByFieldName("parameter"); param != nil && param.Type() == "identifier" {
		c.analysis.Bindings.Define(fnScope, &engine.Binding{Name: param.Content(c.src), Kind: engine.DeclParam, Span: spanOf(param)})
	}
	if body := n.ChildByFieldName("body"); body != nil {
		if body.Type() == "statement_block" {
			c.walkChildren(body, fnScope)
		} else {
			c.walk(body, fnScope)
		}
	}
}

func (c *collector) bindParams(params *sitter.Node, scope int) {
	for i := 0; i < int(params.NamedChildCount()); i++ {
		param := params.NamedChild(i)
		target := param
		if param.Type() == "assignment_pattern" {
			target = param.ChildByFieldName("left")
		}
		for _, name := range c.patternNames(target) {
			c.analysis.Bindings.Define(scope, &engine.Binding{Name: name, Kind: engine.DeclParam, Span: spanOf(param)})
		}
	}
}

func (c *collector) handleCatch(n *sitter.Node, scope int) {
	catchScope := c.analysis.Bindings.Push(scope)
	if param := n.ChildByFieldName("parameter"); param != nil {
		for _, name := range c.patternNames(param) {
			c.analysis.Bindings.Define(catchScope, &engine.Binding{Name: name, Kind: engine.DeclParam, Span: spanOf(param)})
		}
	}
	if body := n.ChildByFieldName("body"); body != nil {
		c.walkChildren(body, catchScope)
	}
}

// patternNames flattens a binding pattern into the names it introduces.
func (c *collector) patternNames(n *sitter.Node) []string {
	if n == nil {
		return nil
	}
	switch n.Type() {
	case "identifier", "shorthand_property_identifier_pattern", "shorthand_property_identifier":
		return []string{n.Content(c.src)}
	case "pair_pattern":
		return c.patternNames(n.ChildByFieldName("value"))
	case "assignment_pattern", "object_assignment_pattern":
		return c.patternNames(n.ChildByFieldName("left"))
	case "rest_pattern":
		return c.patternNames(firstNamedChild(n))
	case "object_pattern", "array_pattern":
		var names []string
		for i := 0; i < int(n.NamedChildCount()); i++ {
			names = append(names, c.patternNames(n.NamedChild(i))...)
		}
		return names
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mutations
// ---------------------------------------------------------------------------

func (c *collector) handleMutation(n *sitter.Node, scope int) {
	var target, value *sitter.Node
	operator := "="
	switch n.Type() {
	case "assignment_expression":
		target = n.ChildByFieldName("left")
		value = n.ChildByFieldName("right")
	case "augmented_assignment_expression":
		target = n.ChildByFieldName("left")
		value = n.ChildByFieldName("right")
		if target != nil && value != nil {
			operator = strings.TrimSpace(string(c.src[target.EndByte():value.StartByte()]))
		}
	case "update_expression":
		target = n.ChildByFieldName("argument")
		if target != nil {
			if target.StartByte() > n.StartByte() {
				operator = strings.TrimSpace(string(c.src[n.StartByte():target.StartByte()]))
			} else {
				operator = strings.TrimSpace(string(c.src[target.EndByte():n.EndByte()]))
			}
		}
	}

	if root := c.rootIdentifier(target); root != "" {
		c.analysis.AddMutation(scope, root, operator, spanOf(n))
	}
	if value != nil {
		c.walk(value, scope)
	}
}

// rootIdentifier descends a member/subscript chain to its base identifier.
// Returns "" when the target has no identifier root.
func (c *collector) rootIdentifier(n *sitter.Node) string {
	for n != nil {
		switch n.Type() {
		case "identifier":
			return n.Content(c.src)
		case "member_expression", "subscript_expression":
			n = n.ChildByFieldName("object")
		case "parenthesized_expression", "non_null_expression":
			n = firstNamedChild(n)
		default:
			return ""
		}
	}
	return ""
}

// ---------------------------------------------------------------------------
// JSX elements
// ---------------------------------------------------------------------------

func (c *collector) handleJSX(n *sitter.Node, scope int) {
	site := elementSite{span: spanOf(n), scope: scope}

	var opening *sitter.Node
	switch n.Type() {
	case "jsx_self_closing_element":
		opening = n
	case "jsx_element":
		for i := 0; i < int(n.NamedChildCount()); i++ {
			if child := n.NamedChild(i); child.Type() == "jsx_opening_element" {
				opening = child
				break
			}
		}
	}

	if opening != nil {
		if nameNode := opening.ChildByFieldName("name"); nameNode != nil {
			site.tag = nameNode.Content(c.src)
		}
		for i := 0; i < int(opening.NamedChildCount()); i++ {
			child := opening.NamedChild(i)
			switch child.Type() {
			case "jsx_attribute":
				if value := c.attributeValue(child); value != nil {
					if expr := exprFromNode(value, c.src); expr != nil {
						site.attrs = append(site.attrs, expr)
					}
				}
			case "jsx_expression":
				// spread attribute {...props}
				if expr := exprFromNode(child, c.src); expr != nil {
					site.attrs = append(site.attrs, expr)
				}
			}
		}
	}

	if n.Type() == "jsx_element" || n.Type() == "jsx_fragment" {
		for i := 0; i < int(n.NamedChildCount()); i++ {
			child := n.NamedChild(i)
			if child.Type() != "jsx_expression" {
				continue
			}
			if expr := exprFromNode(child, c.src); expr != nil {
				site.children = append(site.children, expr)
			}
		}
	}

	c.elements = append(c.elements, site)

	// keep collecting inside attribute expressions and element children;
	// nested elements become their own sites
	c.walkChildren(n, scope)
}

// attributeValue returns the value node of a jsx_attribute, or nil for a
// bare boolean attribute.
func (c *collector) attributeValue(attr *sitter.Node) *sitter.Node {
	for i := 0; i < int(attr.NamedChildCount()); i++ {
		child := attr.NamedChild(i)
		switch child.Type() {
		case "property_identifier", "jsx_namespace_name":
			continue
		}
		return child
	}
	return nil
}
