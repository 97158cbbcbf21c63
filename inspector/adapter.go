package inspector

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"jsxtrace/engine"
)

// spanOf converts a tree-sitter node position to a 1-based line span. A nil
// node yields the zero span (line 0) rather than failing.
func spanOf(n *sitter.Node) engine.Span {
	if n == nil {
		return engine.Span{}
	}
	return engine.Span{
		StartLine: int(n.StartPoint().Row) + 1,
		EndLine:   int(n.EndPoint().Row) + 1,
	}
}

// envBases are the member-access prefixes treated as environment reads.
var envBases = map[string]bool{
	"process.env":     true,
	"import.meta.env": true,
}

// exprFromNode maps a concrete tree-sitter expression node into the engine's
// tagged union. Unrecognized node types map to ExprOther so tracing degrades
// to an unknown hop instead of erroring.
func exprFromNode(n *sitter.Node, src []byte) *engine.Expr {
	if n == nil {
		return nil
	}
	switch n.Type() {
	case "parenthesized_expression", "jsx_expression":
		return exprFromNode(firstNamedChild(n), src)

	case "string":
		return &engine.Expr{Kind: engine.ExprLiteral, Span: spanOf(n), Text: stripQuotes(n.Content(src))}

	case "number":
		return &engine.Expr{Kind: engine.ExprLiteral, Span: spanOf(n), Text: n.Content(src)}

	case "true", "false", "null", "undefined":
		return &engine.Expr{Kind: engine.ExprLiteral, Span: spanOf(n), Text: n.Type()}

	case "template_string":
		if hasNamedChildOfType(n, "template_substitution") {
			return &engine.Expr{Kind: engine.ExprOther, Span: spanOf(n)}
		}
		return &engine.Expr{Kind: engine.ExprLiteral, Span: spanOf(n), Text: strings.Trim(n.Content(src), "`")}

	case "identifier":
		return &engine.Expr{Kind: engine.ExprIdent, Span: spanOf(n), Name: n.Content(src)}

	case "member_expression":
		object := n.ChildByFieldName("object")
		property := n.ChildByFieldName("property")
		name := ""
		if property != nil {
			name = property.Content(src)
		}
		if object != nil && envBases[object.Content(src)] {
			return &engine.Expr{Kind: engine.ExprEnv, Span: spanOf(n), Name: name}
		}
		return &engine.Expr{Kind: engine.ExprMember, Span: spanOf(n), Name: name, Base: exprFromNode(object, src)}

	case "subscript_expression":
		object := n.ChildByFieldName("object")
		index := n.ChildByFieldName("index")
		name := ""
		if index != nil {
			name = stripQuotes(index.Content(src))
		}
		return &engine.Expr{Kind: engine.ExprMember, Span: spanOf(n), Name: name, Base: exprFromNode(object, src)}

	case "call_expression":
		expr := &engine.Expr{
			Kind:   engine.ExprCall,
			Span:   spanOf(n),
			Callee: exprFromNode(n.ChildByFieldName("function"), src),
		}
		if args := n.ChildByFieldName("arguments"); args != nil {
			for i := 0; i < int(args.NamedChildCount()); i++ {
				expr.Args = append(expr.Args, exprFromNode(args.NamedChild(i), src))
			}
		}
		return expr

	case "spread_element":
		return &engine.Expr{Kind: engine.ExprSpread, Span: spanOf(n), Inner: exprFromNode(firstNamedChild(n), src)}
	}
	return &engine.Expr{Kind: engine.ExprOther, Span: spanOf(n)}
}

func firstNamedChild(n *sitter.Node) *sitter.Node {
	if n == nil || n.NamedChildCount() == 0 {
		return nil
	}
	return n.NamedChild(0)
}

func hasNamedChildOfType(n *sitter.Node, nodeType string) bool {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if n.NamedChild(i).Type() == nodeType {
			return true
		}
	}
	return false
}

func stripQuotes(s string) string {
	return strings.Trim(s, "'\"")
}
