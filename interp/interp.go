/*
File    : golox/interp/interp.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package interp drives scan -> parse -> resolve -> evaluate over one source
string: parse, check for parser errors, resolve, link the resolver's
output into the evaluator, evaluate. This is a thin driver, not one of
the core pipeline components itself.
*/
package interp

import (
	"io"

	"github.com/akashmaji946/golox/eval"
	"github.com/akashmaji946/golox/parser"
	"github.com/akashmaji946/golox/resolver"
	"github.com/akashmaji946/golox/scanner"
	"github.com/akashmaji946/golox/value"
)

// Interpreter bundles an Evaluator so repeated calls to Run share global
// state across statements (used by the REPL, where each line is a
// separate call into the same session).
type Interpreter struct {
	ev *eval.Evaluator
}

// New creates an Interpreter with output directed to w.
func New(w io.Writer) *Interpreter {
	ev := eval.New()
	ev.SetWriter(w)
	return &Interpreter{ev: ev}
}

// Run scans, parses, resolves, and evaluates src against this
// Interpreter's persistent Evaluator, returning the last statement's
// value.
func (in *Interpreter) Run(src string) (value.Value, error) {
	tokens, err := scanner.Scan(src)
	if err != nil {
		return nil, err
	}
	stmts, err := parser.Parse(tokens)
	if err != nil {
		return nil, err
	}
	distances, err := resolver.Resolve(stmts)
	if err != nil {
		return nil, err
	}
	in.ev.SetDistances(distances)
	return in.ev.Run(stmts)
}

// Interpret is the one-shot programmatic entry point: interpret(source)
// -> Result<Unit, Error>, wiring scanner -> parser -> resolver ->
// evaluator over a fresh Interpreter instance. Printed values go to out.
func Interpret(src string, out io.Writer) error {
	_, err := New(out).Run(src)
	return err
}
