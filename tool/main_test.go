package main

import (
	"strings"
	"testing"

	"github.com/alecthomas/participle"
)

func parse(t *testing.T, src string) *NodeDefs {
	parser := participle.MustBuild(&NodeDefs{})
	defs := &NodeDefs{}
	if err := parser.ParseString(src, defs); err != nil {
		t.Fatal(err)
	}
	return defs
}

func TestGenerateVisitors(t *testing.T) {
	defs := parse(t, "// kinds\nnode IntConstant;\nnode Stmts;\n")
	if len(defs.Nodes) != 2 || defs.Nodes[1].Name != "Stmts" {
		t.Fatalf("unexpected parse %#v", defs.Nodes)
	}
	out := GenerateVisitors("ast", defs)
	for _, want := range []string{
		"package ast",
		"type StmtsVisitor interface",
		"VisitIntConstant(n *IntConstant) Result",
		"func (n *Stmts) Accept(v Visitor) Result",
		"return v.Default(n)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestDuplicateNode(t *testing.T) {
	defs := parse(t, "node A;\nnode A;\n")
	if defs.Check() == nil {
		t.Fatal("expected a duplicate error")
	}
}
