package ast

import (
	"github.com/krait-lang/krait/frontend/common"
)

type Stmt interface {
	isStmt()
	Span() common.Span
}

/* Block */

type Block struct {
	Stmts []Stmt
	span  common.Span
}

func NewBlock(stmts []Stmt, span common.Span) Block {
	return Block{Stmts: stmts, span: span}
}

func (b *Block) Span() common.Span {
	return b.span
}

// HasReturn reports whether a return appears directly in the block. Nested
// blocks are not searched.
func (b *Block) HasReturn() bool {
	for _, stmt := range b.Stmts {
		if _, ok := stmt.(*StmtReturn); ok {
			return true
		}
	}
	return false
}

/* VarDecl */

type StmtVarDecl struct {
	Name   Ident
	Type   DataType
	Value  Expr // nil when there is no initializer
	Public bool
	span   common.Span
}

func NewVarDecl(name Ident, ty DataType, value Expr, span common.Span) *StmtVarDecl {
	return &StmtVarDecl{Name: name, Type: ty, Value: value, span: span}
}

func (d *StmtVarDecl) isStmt() {}

func (d *StmtVarDecl) Span() common.Span {
	return d.span
}

/* Assignment */

type StmtAssign struct {
	Name  Ident
	Value Expr
	span  common.Span
}

func NewAssign(name Ident, value Expr, span common.Span) *StmtAssign {
	return &StmtAssign{Name: name, Value: value, span: span}
}

func (a *StmtAssign) isStmt() {}

func (a *StmtAssign) Span() common.Span {
	return a.span
}

/* Return */

type StmtReturn struct {
	Value Expr // nil for a bare return
	span  common.Span
}

func NewReturnStmt(value Expr, span common.Span) *StmtReturn {
	return &StmtReturn{Value: value, span: span}
}

func (r *StmtReturn) isStmt() {}

func (r *StmtReturn) Span() common.Span {
	return r.span
}

/* If */

type StmtIf struct {
	Cond Expr
	Then Block
	Else *Block
	span common.Span
}

func NewIfStmt(cond Expr, then Block, els *Block, span common.Span) *StmtIf {
	return &StmtIf{Cond: cond, Then: then, Else: els, span: span}
}

func (i *StmtIf) isStmt() {}

func (i *StmtIf) Span() common.Span {
	return i.span
}

/* While */

type StmtWhile struct {
	Cond Expr
	Body Block
	span common.Span
}

func NewWhileStmt(cond Expr, body Block, span common.Span) *StmtWhile {
	return &StmtWhile{Cond: cond, Body: body, span: span}
}

func (w *StmtWhile) isStmt() {}

func (w *StmtWhile) Span() common.Span {
	return w.span
}

/* For */

// StmtFor iterates Var over the half-open range [Start, End).
type StmtFor struct {
	Var   Ident
	Start Expr
	End   Expr
	Body  Block
	span  common.Span
}

func NewForStmt(v Ident, start, end Expr, body Block, span common.Span) *StmtFor {
	return &StmtFor{Var: v, Start: start, End: end, Body: body, span: span}
}

func (f *StmtFor) isStmt() {}

func (f *StmtFor) Span() common.Span {
	return f.span
}

/* ExprStatement */

type StmtExpr struct {
	Expr Expr
	span common.Span
}

func NewStmtExpr(expr Expr, span common.Span) *StmtExpr {
	return &StmtExpr{Expr: expr, span: span}
}

func (es *StmtExpr) isStmt() {}

func (es *StmtExpr) Span() common.Span {
	return es.span
}

/* Try */

type StmtTry struct {
	Body  Block
	Catch Block
	span  common.Span
}

func NewTryStmt(body, catch Block, span common.Span) *StmtTry {
	return &StmtTry{Body: body, Catch: catch, span: span}
}

func (t *StmtTry) isStmt() {}

func (t *StmtTry) Span() common.Span {
	return t.span
}

/* Raise */

type StmtRaise struct {
	Value Expr
	span  common.Span
}

func NewRaiseStmt(value Expr, span common.Span) *StmtRaise {
	return &StmtRaise{Value: value, span: span}
}

func (r *StmtRaise) isStmt() {}

func (r *StmtRaise) Span() common.Span {
	return r.span
}
