/*
File    : golox/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package eval implements the tree-walking evaluator: Writer-injected
output and a panic-free (Value, error) convention throughout, covering
truthiness, the binary operator table, call-frame push/bind/pop, and
assignment-requires-existing-binding.
*/
package eval

import (
	"fmt"
	"io"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/environment"
	"github.com/akashmaji946/golox/function"
	"github.com/akashmaji946/golox/resolver"
	"github.com/akashmaji946/golox/value"
)

// EvalError reports an undefined variable, a type mismatch in an
// operator, an arity mismatch on call, division by zero, or a call of a
// non-callable value.
type EvalError struct {
	Message string
}

func (e *EvalError) Error() string { return "EvalError: " + e.Message }

func evalErrorf(format string, args ...any) error {
	return &EvalError{Message: fmt.Sprintf(format, args...)}
}

// Evaluator walks an AST against an Environment, emitting printed values
// to an injected Writer. It owns no state beyond its Environment and the
// resolver's distance map: no global mutable state.
type Evaluator struct {
	env       *environment.Environment
	distances resolver.Distances
	writer    io.Writer
}

// New creates an Evaluator over a fresh global Environment. SetWriter and
// SetDistances should be called before Run, as the CLI/REPL wiring in
// package interp does.
func New() *Evaluator {
	return &Evaluator{env: environment.New(), writer: io.Discard}
}

// SetWriter directs Print statement output. Defaults to io.Discard.
func (e *Evaluator) SetWriter(w io.Writer) { e.writer = w }

// SetDistances installs the resolver's output so Identifier/Assign nodes
// resolve in O(1) via GetAt/AssignAt instead of falling back to a full
// Get/Assign chain walk.
func (e *Evaluator) SetDistances(d resolver.Distances) { e.distances = d }

// Env exposes the underlying environment, used by tests asserting the
// value-cell aliasing and scope-balance properties directly.
func (e *Evaluator) Env() *environment.Environment { return e.env }

// Run evaluates a full statement list, returning the last statement's
// value (Nil if the program is empty), or the first error encountered.
func (e *Evaluator) Run(stmts []ast.Stmt) (value.Value, error) {
	var last value.Value = value.Nil{}
	for _, s := range stmts {
		v, err := e.execStmt(s)
		if err != nil {
			return nil, err
		}
		last = v
	}
	return last, nil
}

func (e *Evaluator) execStmt(s ast.Stmt) (value.Value, error) {
	switch n := s.(type) {
	case *ast.PrintStmt:
		v, err := e.evalExpr(n.Expr)
		if err != nil {
			return nil, err
		}
		fmt.Fprintln(e.writer, display(v))
		return value.Nil{}, nil

	case *ast.ExprStmt:
		return e.evalExpr(n.Expr)

	case *ast.VarStmt:
		var v value.Value = value.Nil{}
		if n.Initializer != nil {
			var err error
			v, err = e.evalExpr(n.Initializer)
			if err != nil {
				return nil, err
			}
		}
		e.env.Define(n.Name, v)
		return value.Nil{}, nil

	case *ast.BlockStmt:
		e.env.Push()
		defer e.env.Pop()
		_, err := e.Run(n.Stmts)
		if err != nil {
			return nil, err
		}
		return value.Nil{}, nil

	case *ast.IfStmt:
		cond, err := e.evalExpr(n.Cond)
		if err != nil {
			return nil, err
		}
		if value.Truthy(cond) {
			return e.execStmt(n.Then)
		}
		if n.Else != nil {
			return e.execStmt(n.Else)
		}
		return value.Nil{}, nil

	case *ast.WhileStmt:
		var result value.Value = value.Nil{}
		for {
			cond, err := e.evalExpr(n.Cond)
			if err != nil {
				return nil, err
			}
			if !value.Truthy(cond) {
				break
			}
			result, err = e.execStmt(n.Body)
			if err != nil {
				return nil, err
			}
		}
		return result, nil

	case *ast.FunctionStmt:
		fn := function.New(n.Name, n.Params, n.Body)
		e.env.Define(n.Name, fn)
		return value.Nil{}, nil

	default:
		return nil, evalErrorf("unknown statement type %T", s)
	}
}

func (e *Evaluator) evalExpr(expr ast.Expr) (value.Value, error) {
	switch n := expr.(type) {
	case *ast.Assign:
		v, err := e.evalExpr(n.Value)
		if err != nil {
			return nil, err
		}
		if dist, ok := e.distances[n.ID]; ok {
			if e.env.AssignAt(n.Name, dist, v) {
				return v, nil
			}
		} else if e.env.Assign(n.Name, v) {
			return v, nil
		}
		return nil, evalErrorf("undefined variable %q", n.Name)

	case *ast.Logical:
		left, err := e.evalExpr(n.Left)
		if err != nil {
			return nil, err
		}
		if n.Op == ast.Or {
			if value.Truthy(left) {
				return left, nil
			}
			return e.evalExpr(n.Right)
		}
		// And
		if !value.Truthy(left) {
			return left, nil
		}
		return e.evalExpr(n.Right)

	case *ast.Binary:
		return e.evalBinary(n)

	case *ast.Unary:
		operand, err := e.evalExpr(n.Operand)
		if err != nil {
			return nil, err
		}
		switch n.Op {
		case ast.Minus:
			num, ok := operand.(value.Number)
			if !ok {
				return nil, evalErrorf("unary '-' requires a number, got %s", operand.Kind())
			}
			return value.Number(-num), nil
		case ast.Bang:
			b, ok := operand.(value.Bool)
			if !ok {
				return nil, evalErrorf("unary '!' requires a boolean, got %s", operand.Kind())
			}
			return value.Bool(!bool(b)), nil
		}
		return nil, evalErrorf("unknown unary operator")

	case *ast.Call:
		return e.evalCall(n)

	case *ast.StringLit:
		return value.Str(n.Value), nil
	case *ast.NumberLit:
		return value.Number(n.Value), nil
	case *ast.FalseLit:
		return value.Bool(false), nil
	case *ast.TrueLit:
		return value.Bool(true), nil
	case *ast.NilLit:
		return value.Nil{}, nil

	case *ast.Variable:
		if dist, ok := e.distances[n.ID]; ok {
			if c, ok := e.env.GetAt(n.Name, dist); ok {
				return c.Value, nil
			}
		} else if c, ok := e.env.Get(n.Name); ok {
			return c.Value, nil
		}
		return nil, evalErrorf("undefined variable %q", n.Name)

	default:
		return nil, evalErrorf("unknown expression type %T", expr)
	}
}

func (e *Evaluator) evalBinary(n *ast.Binary) (value.Value, error) {
	left, err := e.evalExpr(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.evalExpr(n.Right)
	if err != nil {
		return nil, err
	}

	switch n.Op {
	case ast.Equal:
		return value.Bool(value.Equal(left, right)), nil
	case ast.NotEqual:
		return value.Bool(!value.Equal(left, right)), nil
	}

	if ln, lok := left.(value.Number); lok {
		if rn, rok := right.(value.Number); rok {
			switch n.Op {
			case ast.Less:
				return value.Bool(ln < rn), nil
			case ast.LessEqual:
				return value.Bool(ln <= rn), nil
			case ast.Greater:
				return value.Bool(ln > rn), nil
			case ast.GreaterEqual:
				return value.Bool(ln >= rn), nil
			case ast.Add:
				return ln + rn, nil
			case ast.Sub:
				return ln - rn, nil
			case ast.Mul:
				return ln * rn, nil
			case ast.Div:
				if rn == 0 {
					return nil, evalErrorf("division by zero")
				}
				return ln / rn, nil
			}
		}
	}

	if ls, lok := left.(value.Str); lok {
		if rs, rok := right.(value.Str); rok {
			switch n.Op {
			case ast.Less:
				return value.Bool(ls < rs), nil
			case ast.LessEqual:
				return value.Bool(ls <= rs), nil
			case ast.Greater:
				return value.Bool(ls > rs), nil
			case ast.GreaterEqual:
				return value.Bool(ls >= rs), nil
			case ast.Add:
				return value.Str(string(ls) + string(rs)), nil
			}
		}
	}

	// String+number addition concatenates, stringifying the other side,
	// rather than erroring on a mixed-type '+'.
	if n.Op == ast.Add {
		_, lIsStr := left.(value.Str)
		_, rIsStr := right.(value.Str)
		if lIsStr || rIsStr {
			return value.Str(display(left) + display(right)), nil
		}
	}

	return nil, evalErrorf("type error: %s %s %s not supported", left.Kind(), n.Op, right.Kind())
}

func (e *Evaluator) evalCall(n *ast.Call) (value.Value, error) {
	calleeV, err := e.evalExpr(n.Callee)
	if err != nil {
		return nil, err
	}
	fn, ok := calleeV.(*function.Function)
	if !ok {
		return nil, evalErrorf("attempt to call a non-callable value of type %s", calleeV.Kind())
	}
	if len(n.Args) != fn.Arity() {
		return nil, evalErrorf("function %q expects %d argument(s), got %d", fn.Name, fn.Arity(), len(n.Args))
	}
	args := make([]value.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := e.evalExpr(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	e.env.Push()
	defer e.env.Pop()
	for i, p := range fn.Params {
		e.env.Define(p, args[i])
	}
	result, err := e.Run(fn.Body.Stmts)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// display renders a Value the way Print and string-concatenation coercion
// both need: each Value already implements String() to the same effect.
func display(v value.Value) string { return v.String() }
