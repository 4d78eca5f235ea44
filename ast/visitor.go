package ast

//go:generate sh -c "cd ../tool && go run . ../ast/nodes.def ../ast/visitor_gen.go ast"

// Visitor is the fallback every visitor must provide. To handle a kind
// specially, a visitor also implements that kind's XVisitor interface
// (see visitor_gen.go); every kind it does not handle reaches Default.
type Visitor interface {
	Default(n Node) Result
}
