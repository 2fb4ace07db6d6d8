package codegen

import (
	"strings"

	"github.com/krait-lang/krait/frontend/ast"
)

// Rust binding strengths for the operators Krait can produce. Unary binds
// tighter than any binary operator; `..` looser than all of them.
const (
	rangePrec = 0
	unaryPrec = 100
)

var rustBinaryOps = map[ast.BinaryOp]string{
	ast.BinaryOpLogicalOr:  "||",
	ast.BinaryOpLogicalAnd: "&&",
}

var rustUnaryOps = map[ast.UnaryOp]string{
	ast.UnaryOpNot: "!",
	ast.UnaryOpNeg: "-",
}

func binaryOpString(op ast.BinaryOp) string {
	if s, ok := rustBinaryOps[op]; ok {
		return s
	}
	return op.String()
}

func (cg *Codegen) genExpr(e ast.Expr) string {
	return cg.genExprPrec(e, rangePrec)
}

// genExprPrec renders e for a context that binds at minPrec. The result is
// parenthesised only when Rust would otherwise regroup it.
func (cg *Codegen) genExprPrec(e ast.Expr, minPrec int) string {
	switch e := e.(type) {
	case *ast.ExprNumber:
		return e.Raw
	case *ast.ExprString:
		return rustString(e.Value) + ".to_string()"
	case *ast.ExprIdent:
		return e.Name
	case *ast.ExprCall:
		return cg.genCall(e)
	case *ast.ExprUnary:
		operand := cg.genExprPrec(e.Operand, unaryPrec)
		return rustUnaryOps[e.Op] + operand
	case *ast.ExprBinary:
		return cg.genBinary(e, minPrec)
	}
	panic("codegen: unknown expression")
}

func (cg *Codegen) genBinary(e *ast.ExprBinary, minPrec int) string {
	prec := e.Op.Precedence()

	// Rust rejects chained comparisons, so a comparison operand of a
	// comparison is always wrapped.
	rightMin := prec + 1
	leftMin := prec
	if e.Op.IsComparison() {
		leftMin = prec + 1
	}

	left := cg.genExprPrec(e.Left, leftMin)
	right := cg.genExprPrec(e.Right, rightMin)
	s := left + " " + binaryOpString(e.Op) + " " + right
	if prec < minPrec {
		return "(" + s + ")"
	}
	return s
}

func (cg *Codegen) genCall(c *ast.ExprCall) string {
	args := make([]string, len(c.Args))
	for i, arg := range c.Args {
		args[i] = cg.genExpr(arg)
	}

	if c.Name.Raw == "print" {
		if len(args) == 0 {
			return "println!()"
		}
		placeholders := strings.TrimSuffix(strings.Repeat("{} ", len(args)), " ")
		return "println!(\"" + placeholders + "\", " + strings.Join(args, ", ") + ")"
	}

	return c.Name.Raw + "(" + strings.Join(args, ", ") + ")"
}

// rustString quotes s as a Rust string literal.
func rustString(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case 0:
			sb.WriteString(`\0`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
