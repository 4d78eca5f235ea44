package ast

import (
	"fmt"
	"io"
	"strings"
)

// Printer writes a tree one node per line, children indented under their
// parent.
type Printer struct {
	Out    io.Writer
	indent int
}

// PrintAST writes the tree rooted at n to w.
func PrintAST(w io.Writer, n Node) {
	p := &Printer{Out: w}
	p.Resolve(n)
}

func (p *Printer) Resolve(n Node) {
	if n == nil {
		return
	}
	n.Accept(p)
}

func (p *Printer) output(format string, args ...interface{}) {
	fmt.Fprintf(p.Out, "%s%s\n", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

func (p *Printer) Default(n Node) Result {
	label, ok := describe(n)
	if !ok {
		p.output("*** unknown node ***")
		return Result{}
	}
	p.output("%s", label)
	p.indent++
	for _, child := range Children(n) {
		p.Resolve(child)
	}
	p.indent--
	return Result{}
}

func typeName(t Type) string {
	if t == nil {
		return "<unresolved>"
	}
	return t.String()
}

func describe(n Node) (string, bool) {
	switch n := n.(type) {
	case *Data:
		return fmt.Sprintf("Data %s (%d bytes)", typeName(n.Typ), len(n.Bytes)), true
	case *IntConstant:
		return fmt.Sprintf("IntConstant %d (%d bit)", n.Value, n.Bits), true
	case *UIntConstant:
		return fmt.Sprintf("UIntConstant %d (%d bit)", n.Value, n.Bits), true
	case *FloatConstant:
		return fmt.Sprintf("FloatConstant %g", n.Value), true
	case *DoubleConstant:
		return fmt.Sprintf("DoubleConstant %g", n.Value), true
	case *BoolConstant:
		return fmt.Sprintf("BoolConstant %t", n.Value), true
	case *EnumConstant:
		return fmt.Sprintf("EnumConstant %s.%s (%d)", typeName(n.Value.Type), n.Value.ID, n.Value.Value), true
	case *NullConstant:
		return "NullConstant", true
	case *CastExpr:
		return "CastExpr " + typeName(n.Typ), true
	case *Arg:
		return "Arg " + n.ID, true
	case *ArgList:
		return "ArgList", true
	case *ExprList:
		return "ExprList", true
	case *BinOpExpr:
		return "BinOpExpr " + n.Op.String(), true
	case *UnaryOpExpr:
		if n.Op == OpNegate {
			return "UnaryOpExpr NEGATE", true
		}
		return "UnaryOpExpr MINUS", true
	case *Initializer:
		return "Initializer " + typeName(n.Typ), true
	case *ArrayAccess:
		return "ArrayAccess", true
	case *FieldAccess:
		return "FieldAccess " + n.Field.Name, true
	case *MethodCall:
		return "MethodCall " + n.Method.String(), true
	case *LoadExpr:
		return "LoadExpr", true
	case *VarExpr:
		return fmt.Sprintf("VarExpr %s : %s", n.Var.Name, typeName(n.Var.Type)), true
	case *TempVarExpr:
		return fmt.Sprintf("TempVarExpr (%s)", typeName(n.Typ)), true
	case *SmartToRawPtr:
		return "SmartToRawPtr", true
	case *RawToWeakPtr:
		return "RawToWeakPtr", true
	case *ExtractElementExpr:
		return fmt.Sprintf("ExtractElementExpr %d", n.Index), true
	case *InsertElementExpr:
		return fmt.Sprintf("InsertElementExpr %d", n.Index), true
	case *LengthExpr:
		return "LengthExpr", true
	case *IncDecExpr:
		op := "INC"
		if n.Op == OpDec {
			op = "DEC"
		}
		return "IncDecExpr " + op, true
	case *NewArrayExpr:
		return "NewArrayExpr " + typeName(n.ElementType), true
	case *NewExpr:
		return "NewExpr " + typeName(n.Typ), true
	case *ExprWithStmt:
		return "ExprWithStmt", true
	case *UnresolvedListExpr:
		return "UnresolvedListExpr", true
	case *Stmts:
		return "Stmts", true
	case *ExprStmt:
		return "ExprStmt", true
	case *StoreStmt:
		return "StoreStmt", true
	case *DestroyStmt:
		return "DestroyStmt", true
	case *ZeroInitStmt:
		return "ZeroInitStmt", true
	case *VarDeclaration:
		return fmt.Sprintf("VarDeclaration %s %s", typeName(n.Typ), n.ID), true
	case *IfStmt:
		return "IfStmt", true
	case *WhileStmt:
		return "WhileStmt", true
	case *DoStmt:
		return "DoStmt", true
	case *ForStmt:
		return "ForStmt", true
	case *ReturnStmt:
		return "ReturnStmt", true
	}
	return "", false
}
