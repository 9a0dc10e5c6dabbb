/*
File    : golox/function/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package function represents a user-defined function value. A Function
carries no captured environment: identifier resolution inside its body
is name-based through the environment at call time, per this language's
no-closures design.
*/
package function

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/value"
)

// Function is an immutable, first-class function value.
type Function struct {
	Name   string
	Params []string
	Body   *ast.BlockStmt
}

// New constructs a Function handle. Arity is derived from len(Params).
func New(name string, params []string, body *ast.BlockStmt) *Function {
	return &Function{Name: name, Params: params, Body: body}
}

func (f *Function) Kind() value.Kind     { return value.KindCallable }
func (f *Function) Arity() int           { return len(f.Params) }
func (f *Function) CallableName() string { return f.Name }

func (f *Function) String() string {
	return fmt.Sprintf("<func %s(%s)>", f.Name, strings.Join(f.Params, ", "))
}
