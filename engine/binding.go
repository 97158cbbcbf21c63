package engine

// DeclKind classifies the declaration behind a binding.
type DeclKind string

const (
	DeclConst  DeclKind = "const"
	DeclLet    DeclKind = "let"
	DeclVar    DeclKind = "var"
	DeclFunc   DeclKind = "func"
	DeclClass  DeclKind = "class"
	DeclImport DeclKind = "import"
	DeclParam  DeclKind = "param"
)

// Binding is a resolvable name within one scope.
type Binding struct {
	Name  string
	Kind  DeclKind
	Span  Span
	Scope int   // scope the binding was declared in
	Init  *Expr // declaration initializer, nil when none is traceable
}

// ModuleScope is the index of the outermost scope of every BindingTable.
const ModuleScope = 0

type scope struct {
	parent   int
	bindings map[string]*Binding
}

// BindingTable resolves identifiers to their declarations across lexically
// nested scopes. Scopes live in an arena indexed by integer so the table
// carries no parent pointers or reference cycles.
type BindingTable struct {
	scopes []scope
}

// NewBindingTable returns a table seeded with the module scope.
func NewBindingTable() *BindingTable {
	return &BindingTable{scopes: []scope{{parent: -1, bindings: map[string]*Binding{}}}}
}

// Push creates a child scope of parent and returns its index.
func (t *BindingTable) Push(parent int) int {
	t.scopes = append(t.scopes, scope{parent: parent, bindings: map[string]*Binding{}})
	return len(t.scopes) - 1
}

// Define registers a binding in the given scope. Within one scope the last
// definition of a name wins; forward references resolve to the eventual
// declaration (TDZ ordering is not enforced).
func (t *BindingTable) Define(scopeID int, b *Binding) {
	if scopeID < 0 || scopeID >= len(t.scopes) || b == nil || b.Name == "" {
		return
	}
	b.Scope = scopeID
	t.scopes[scopeID].bindings[b.Name] = b
}

// Lookup resolves name starting at scopeID and walking outward. Inner scopes
// shadow outer ones. Returns nil when the name is unbound.
func (t *BindingTable) Lookup(scopeID int, name string) *Binding {
	for scopeID >= 0 && scopeID < len(t.scopes) {
		if b, ok := t.scopes[scopeID].bindings[name]; ok {
			return b
		}
		scopeID = t.scopes[scopeID].parent
	}
	return nil
}
