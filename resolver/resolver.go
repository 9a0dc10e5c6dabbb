/*
File    : golox/resolver/resolver.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package resolver pre-computes, for every identifier reference and
assignment node, the scope-hop distance to its binding frame: a stack of
per-scope name->defined? maps, with declare/define as two phases around
an initializer. resolveLocal breaks as soon as it finds the innermost
matching scope, so a name shadowed in an outer scope can never overwrite
the correct (smaller) distance of an inner one.
*/
package resolver

import (
	"fmt"

	"github.com/akashmaji946/golox/ast"
)

// ResolverError reports a read of a locally-declared-but-undefined name
// within its own initializer (e.g. `var a = a;`).
type ResolverError struct {
	Name    string
	Message string
}

func (e *ResolverError) Error() string {
	return fmt.Sprintf("ResolverError: %s", e.Message)
}

// Distances maps a parse-tree id (ast.Variable.ID or ast.Assign.ID) to its
// resolved scope-hop distance. Entries absent from the map are globals,
// resolved dynamically at evaluation time.
type Distances map[int]int

// Resolver walks an already-parsed statement list, producing a Distances
// map. It never mutates the AST and never fails on a name it cannot find
// locally — unresolved names are simply left out of the map and treated
// as globals by the evaluator.
type Resolver struct {
	scopes    []map[string]bool
	distances Distances
}

// New creates a Resolver with no scopes pushed (top-level/global).
func New() *Resolver {
	return &Resolver{distances: make(Distances)}
}

// Resolve runs the resolver over a full program and returns its distance
// map, or the first ResolverError encountered.
func Resolve(stmts []ast.Stmt) (Distances, error) {
	r := New()
	if err := r.ResolveStmts(stmts); err != nil {
		return nil, err
	}
	return r.distances, nil
}

func (r *Resolver) beginScope() { r.scopes = append(r.scopes, make(map[string]bool)) }
func (r *Resolver) endScope()   { r.scopes = r.scopes[:len(r.scopes)-1] }

func (r *Resolver) declare(name string) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name] = false
}

func (r *Resolver) define(name string) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name] = true
}

// resolveLocal walks scopes from innermost outward and records the
// distance to the first (innermost) frame containing name, then stops.
func (r *Resolver) resolveLocal(id int, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.distances[id] = len(r.scopes) - 1 - i
			return
		}
	}
	// not found locally: leave unresolved, treated as a global at runtime.
}

// ResolveStmts resolves a statement list in the current scope.
func (r *Resolver) ResolveStmts(stmts []ast.Stmt) error {
	for _, s := range stmts {
		if err := r.resolveStmt(s); err != nil {
			return err
		}
	}
	return nil
}

func (r *Resolver) resolveStmt(s ast.Stmt) error {
	switch n := s.(type) {
	case *ast.PrintStmt:
		return r.resolveExpr(n.Expr)
	case *ast.ExprStmt:
		return r.resolveExpr(n.Expr)
	case *ast.VarStmt:
		r.declare(n.Name)
		if n.Initializer != nil {
			if err := r.resolveExpr(n.Initializer); err != nil {
				return err
			}
		}
		r.define(n.Name)
		return nil
	case *ast.BlockStmt:
		r.beginScope()
		err := r.ResolveStmts(n.Stmts)
		r.endScope()
		return err
	case *ast.IfStmt:
		if err := r.resolveExpr(n.Cond); err != nil {
			return err
		}
		if err := r.resolveStmt(n.Then); err != nil {
			return err
		}
		if n.Else != nil {
			return r.resolveStmt(n.Else)
		}
		return nil
	case *ast.WhileStmt:
		if err := r.resolveExpr(n.Cond); err != nil {
			return err
		}
		return r.resolveStmt(n.Body)
	case *ast.FunctionStmt:
		r.declare(n.Name)
		r.define(n.Name)
		r.beginScope()
		for _, p := range n.Params {
			r.declare(p)
			r.define(p)
		}
		err := r.ResolveStmts(n.Body.Stmts)
		r.endScope()
		return err
	default:
		return fmt.Errorf("resolver: unknown statement type %T", s)
	}
}

func (r *Resolver) resolveExpr(e ast.Expr) error {
	switch n := e.(type) {
	case *ast.Variable:
		// Own-initializer check: only the innermost scope is inspected —
		// an outer `false` entry would otherwise spuriously reject a
		// legal shadowing read.
		if len(r.scopes) > 0 {
			if defined, ok := r.scopes[len(r.scopes)-1][n.Name]; ok && !defined {
				return &ResolverError{Name: n.Name, Message: fmt.Sprintf("cannot read local variable %q in its own initializer", n.Name)}
			}
		}
		r.resolveLocal(n.ID, n.Name)
		return nil
	case *ast.Assign:
		if err := r.resolveExpr(n.Value); err != nil {
			return err
		}
		r.resolveLocal(n.ID, n.Name)
		return nil
	case *ast.Logical:
		if err := r.resolveExpr(n.Left); err != nil {
			return err
		}
		return r.resolveExpr(n.Right)
	case *ast.Binary:
		if err := r.resolveExpr(n.Left); err != nil {
			return err
		}
		return r.resolveExpr(n.Right)
	case *ast.Unary:
		return r.resolveExpr(n.Operand)
	case *ast.Call:
		if err := r.resolveExpr(n.Callee); err != nil {
			return err
		}
		for _, a := range n.Args {
			if err := r.resolveExpr(a); err != nil {
				return err
			}
		}
		return nil
	case *ast.StringLit, *ast.NumberLit, *ast.FalseLit, *ast.TrueLit, *ast.NilLit:
		return nil
	default:
		return fmt.Errorf("resolver: unknown expression type %T", e)
	}
}
