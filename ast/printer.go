package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Print renders an expression as a fully-parenthesized Lisp-like form that
// preserves operator precedence and associativity, so printing a parsed
// expression round-trips its structure.
func Print(e Expr) string {
	switch n := e.(type) {
	case *Assign:
		return parenthesize("= "+n.Name, n.Value)
	case *Logical:
		op := "or"
		if n.Op == And {
			op = "and"
		}
		return parenthesize(op, n.Left, n.Right)
	case *Binary:
		return parenthesize(n.Op.String(), n.Left, n.Right)
	case *Unary:
		return parenthesize(n.Op.String(), n.Operand)
	case *Call:
		args := make([]Expr, 0, len(n.Args)+1)
		args = append(args, n.Callee)
		args = append(args, n.Args...)
		return parenthesize("call", args...)
	case *StringLit:
		return strconv.Quote(n.Value)
	case *NumberLit:
		return strconv.FormatFloat(n.Value, 'g', -1, 64)
	case *FalseLit:
		return "false"
	case *TrueLit:
		return "true"
	case *NilLit:
		return "nil"
	case *Variable:
		return n.Name
	default:
		return fmt.Sprintf("<unknown expr %T>", e)
	}
}

func parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		b.WriteString(Print(e))
	}
	b.WriteByte(')')
	return b.String()
}
