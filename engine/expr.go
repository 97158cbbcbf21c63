package engine

// ExprKind enumerates the parser-agnostic expression surface. Host adapters
// map their concrete AST node types into this union before handing
// expressions to the engine; anything without a dedicated variant becomes
// ExprOther and traces to an unknown node.
type ExprKind int

const (
	ExprOther ExprKind = iota
	ExprLiteral
	ExprIdent
	ExprMember
	ExprCall
	ExprSpread
	ExprEnv
)

// Expr is one node of the adapted expression tree. Only the fields relevant
// to its Kind are populated.
type Expr struct {
	Kind   ExprKind
	Span   Span
	Name   string  // identifier name, member property, or env variable name
	Text   string  // literal text
	Base   *Expr   // member base object
	Callee *Expr   // call target
	Args   []*Expr // call arguments, in source order
	Inner  *Expr   // spread argument
}
