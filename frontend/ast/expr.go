package ast

import (
	"github.com/krait-lang/krait/frontend/common"
)

type ExprKind uint8

const (
	_ ExprKind = iota
	ExprKindNumber
	ExprKindString
	ExprKindIdent
	ExprKindBinary
	ExprKindUnary
	ExprKindCall
)

func (k ExprKind) String() string {
	switch k {
	case ExprKindNumber:
		return "number"
	case ExprKindString:
		return "string"
	case ExprKindIdent:
		return "identifier"
	case ExprKindBinary:
		return "binary"
	case ExprKindUnary:
		return "unary"
	case ExprKindCall:
		return "call"
	default:
		panic("unreachable")
	}
}

type Expr interface {
	isExpr()
	Kind() ExprKind
	Span() common.Span
}

/* Number */

// ExprNumber keeps the literal text exactly as scanned.
type ExprNumber struct {
	Raw  string
	span common.Span
}

func NewNumberExpr(raw string, span common.Span) *ExprNumber {
	return &ExprNumber{Raw: raw, span: span}
}

func (e *ExprNumber) isExpr()           {}
func (e *ExprNumber) Kind() ExprKind    { return ExprKindNumber }
func (e *ExprNumber) Span() common.Span { return e.span }

/* String */

// ExprString holds unquoted, unescaped content.
type ExprString struct {
	Value string
	span  common.Span
}

func NewStringExpr(value string, span common.Span) *ExprString {
	return &ExprString{Value: value, span: span}
}

func (e *ExprString) isExpr()           {}
func (e *ExprString) Kind() ExprKind    { return ExprKindString }
func (e *ExprString) Span() common.Span { return e.span }

/* Identifier */

type ExprIdent struct {
	Name string
	span common.Span
}

func NewIdentExpr(name string, span common.Span) *ExprIdent {
	return &ExprIdent{Name: name, span: span}
}

func (e *ExprIdent) isExpr()           {}
func (e *ExprIdent) Kind() ExprKind    { return ExprKindIdent }
func (e *ExprIdent) Span() common.Span { return e.span }

/* Binary */

type ExprBinary struct {
	Left  Expr
	Op    BinaryOp
	Right Expr
	span  common.Span
}

func NewBinaryExpr(left Expr, op BinaryOp, right Expr, span common.Span) *ExprBinary {
	return &ExprBinary{Left: left, Op: op, Right: right, span: span}
}

func (e *ExprBinary) isExpr()           {}
func (e *ExprBinary) Kind() ExprKind    { return ExprKindBinary }
func (e *ExprBinary) Span() common.Span { return e.span }

/* Unary */

type ExprUnary struct {
	Op      UnaryOp
	Operand Expr
	span    common.Span
}

func NewUnaryExpr(op UnaryOp, operand Expr, span common.Span) *ExprUnary {
	return &ExprUnary{Op: op, Operand: operand, span: span}
}

func (e *ExprUnary) isExpr()           {}
func (e *ExprUnary) Kind() ExprKind    { return ExprKindUnary }
func (e *ExprUnary) Span() common.Span { return e.span }

/* Call */

// ExprCall is a call of a named function; callees are never expressions.
type ExprCall struct {
	Name Ident
	Args []Expr
	span common.Span
}

func NewCallExpr(name Ident, args []Expr, span common.Span) *ExprCall {
	return &ExprCall{Name: name, Args: args, span: span}
}

func (e *ExprCall) isExpr()           {}
func (e *ExprCall) Kind() ExprKind    { return ExprKindCall }
func (e *ExprCall) Span() common.Span { return e.span }
