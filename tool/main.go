package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/alecthomas/participle"

	. "github.com/dave/jennifer/jen"
)

type NodeDefs struct {
	Nodes []*NodeDef `@@*`
}

type NodeDef struct {
	Name string `"node" @Ident ";"`
}

func (d *NodeDefs) Check() error {
	seen := make(map[string]bool)
	for _, node := range d.Nodes {
		if seen[node.Name] {
			return fmt.Errorf("node %s declared twice", node.Name)
		}
		seen[node.Name] = true
	}
	return nil
}

func GenerateVisitors(pkgname string, d *NodeDefs) string {
	f := NewFile(pkgname)
	f.HeaderComment("Code generated by toucan/tool from nodes.def. DO NOT EDIT.")

	for _, node := range d.Nodes {
		name := node.Name
		visitor := name + "Visitor"
		visit := "Visit" + name

		f.Commentf("%s is implemented by visitors that handle *%s.", visitor, name)
		f.Type().Id(visitor).Interface(
			Id(visit).Params(Id("n").Op("*").Id(name)).Id("Result"),
		)

		f.Commentf("Accept dispatches to v.%s, or to v.Default if v does not handle *%s.", visit, name)
		f.Func().Params(Id("n").Op("*").Id(name)).Id("Accept").Params(Id("v").Id("Visitor")).Id("Result").Block(
			If(List(Id("x"), Id("ok")).Op(":=").Id("v").Assert(Id(visitor)), Id("ok")).Block(
				Return(Id("x").Dot(visit).Call(Id("n"))),
			),
			Return(Id("v").Dot("Default").Call(Id("n"))),
		)
	}

	return fmt.Sprintf("%#v", f)
}

func main() {
	parser := participle.MustBuild(&NodeDefs{})

	in := os.Args[1]
	out := os.Args[2]
	pkgname := os.Args[3]

	inData, err := ioutil.ReadFile(in)
	if err != nil {
		panic(err)
	}

	defs := NodeDefs{}
	err = parser.ParseBytes(inData, &defs)
	if err != nil {
		panic(err)
	}
	if err = defs.Check(); err != nil {
		panic(err)
	}

	err = ioutil.WriteFile(out, []byte(GenerateVisitors(pkgname, &defs)), 0644)
	if err != nil {
		panic(err)
	}
}
