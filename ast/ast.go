/*
File    : golox/ast/ast.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package ast defines the expression and statement node types produced by the
parser. Dispatch over node variants is done with Go type switches: new
operations over the AST are added as new functions, not new methods on
every node type.
*/
package ast

import "github.com/akashmaji946/golox/token"

// Expr is any expression node.
type Expr interface{ exprNode() }

// Stmt is any statement node.
type Stmt interface{ stmtNode() }

// Assign is `name = value`. ID is the stable parse-tree id the resolver
// keys its distance map on.
type Assign struct {
	ID    int
	Name  string
	Value Expr
}

// LogicalOp discriminates Or/And within one node: one struct per operator
// family.
type LogicalOp int

const (
	Or LogicalOp = iota
	And
)

// Logical is a short-circuiting `A or B` / `A and B`.
type Logical struct {
	Op    LogicalOp
	Left  Expr
	Right Expr
}

// BinaryOp enumerates the binary arithmetic/relational/equality operators.
type BinaryOp int

const (
	Equal BinaryOp = iota
	NotEqual
	Less
	LessEqual
	Greater
	GreaterEqual
	Add
	Sub
	Mul
	Div
)

func (op BinaryOp) String() string {
	switch op {
	case Equal:
		return "=="
	case NotEqual:
		return "!="
	case Less:
		return "<"
	case LessEqual:
		return "<="
	case Greater:
		return ">"
	case GreaterEqual:
		return ">="
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	}
	return "?"
}

// Binary is `left OP right`.
type Binary struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
}

// UnaryOp enumerates the unary operators.
type UnaryOp int

const (
	Bang UnaryOp = iota
	Minus
)

func (op UnaryOp) String() string {
	if op == Bang {
		return "!"
	}
	return "-"
}

// Unary is `OP operand`.
type Unary struct {
	Op      UnaryOp
	Operand Expr
}

// Call is `callee(args...)`.
type Call struct {
	Callee Expr
	Args   []Expr
}

// StringLit is a string literal.
type StringLit struct{ Value string }

// NumberLit is a number literal.
type NumberLit struct{ Value float64 }

// FalseLit, TrueLit, NilLit are the boolean/nil literals.
type FalseLit struct{}
type TrueLit struct{}
type NilLit struct{}

// Variable is an identifier reference. ID is the stable parse-tree id.
type Variable struct {
	ID   int
	Name string
}

func (*Assign) exprNode()    {}
func (*Logical) exprNode()   {}
func (*Binary) exprNode()    {}
func (*Unary) exprNode()     {}
func (*Call) exprNode()      {}
func (*StringLit) exprNode() {}
func (*NumberLit) exprNode() {}
func (*FalseLit) exprNode()  {}
func (*TrueLit) exprNode()   {}
func (*NilLit) exprNode()    {}
func (*Variable) exprNode()  {}

// PrintStmt is `print expr;`.
type PrintStmt struct{ Expr Expr }

// ExprStmt is an expression used as a statement.
type ExprStmt struct{ Expr Expr }

// VarStmt is `var name [= initializer];`. Initializer is nil when absent.
type VarStmt struct {
	Name        string
	Initializer Expr
}

// BlockStmt is `{ stmts... }`.
type BlockStmt struct{ Stmts []Stmt }

// IfStmt is `if (cond) then [else else]`. Else is nil when absent.
type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt
}

// WhileStmt is `while (cond) body`.
type WhileStmt struct {
	Cond Expr
	Body Stmt
}

// FunctionStmt is `fun name(params...) body`. Body is always a *BlockStmt,
// wrapped by the parser to guarantee a dedicated scope frame on call.
type FunctionStmt struct {
	Name   string
	Params []string
	Body   *BlockStmt
}

func (*PrintStmt) stmtNode()    {}
func (*ExprStmt) stmtNode()     {}
func (*VarStmt) stmtNode()      {}
func (*BlockStmt) stmtNode()    {}
func (*IfStmt) stmtNode()       {}
func (*WhileStmt) stmtNode()    {}
func (*FunctionStmt) stmtNode() {}

// TokenBinaryOp maps an equality/comparison/term/factor operator token to
// its BinaryOp, used by the parser's precedence-climbing loops.
func TokenBinaryOp(k token.Kind) (BinaryOp, bool) {
	switch k {
	case token.EqualEqual:
		return Equal, true
	case token.BangEqual:
		return NotEqual, true
	case token.Less:
		return Less, true
	case token.LessEqual:
		return LessEqual, true
	case token.Greater:
		return Greater, true
	case token.GreaterEqual:
		return GreaterEqual, true
	case token.Plus:
		return Add, true
	case token.Minus:
		return Sub, true
	case token.Star:
		return Mul, true
	case token.Slash:
		return Div, true
	}
	return 0, false
}
