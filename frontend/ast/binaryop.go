package ast

type BinaryOp int

const (
	BinaryOpInvalid BinaryOp = iota
	// BinaryOpLogicalOr is `or`
	BinaryOpLogicalOr
	// BinaryOpLogicalAnd is `and`
	BinaryOpLogicalAnd

	// BinaryOpEqual is `==`
	BinaryOpEqual
	// BinaryOpNotEqual is `!=`
	BinaryOpNotEqual
	// BinaryOpLess is `<`
	BinaryOpLess
	// BinaryOpGreater is `>`
	BinaryOpGreater
	// BinaryOpLessEqual is `<=`
	BinaryOpLessEqual
	// BinaryOpGreaterEqual is `>=`
	BinaryOpGreaterEqual

	// BinaryOpAdd is `+`
	BinaryOpAdd
	// BinaryOpSub is `-`
	BinaryOpSub
	// BinaryOpMul is `*`
	BinaryOpMul
	// BinaryOpDiv is `/`
	BinaryOpDiv
	// BinaryOpMod is `%`
	BinaryOpMod
)

var binaryOpNames = [...]string{
	BinaryOpInvalid:      "<invalid>",
	BinaryOpLogicalOr:    "or",
	BinaryOpLogicalAnd:   "and",
	BinaryOpEqual:        "==",
	BinaryOpNotEqual:     "!=",
	BinaryOpLess:         "<",
	BinaryOpGreater:      ">",
	BinaryOpLessEqual:    "<=",
	BinaryOpGreaterEqual: ">=",
	BinaryOpAdd:          "+",
	BinaryOpSub:          "-",
	BinaryOpMul:          "*",
	BinaryOpDiv:          "/",
	BinaryOpMod:          "%",
}

// String returns the operator as written in source.
func (op BinaryOp) String() string {
	return binaryOpNames[op]
}

// Precedence is the binding strength; higher binds tighter. Every level is
// left-associative.
func (op BinaryOp) Precedence() int {
	switch op {
	case BinaryOpLogicalOr:
		return 1
	case BinaryOpLogicalAnd:
		return 2
	case BinaryOpEqual, BinaryOpNotEqual, BinaryOpLess, BinaryOpGreater, BinaryOpLessEqual, BinaryOpGreaterEqual:
		return 3
	case BinaryOpAdd, BinaryOpSub:
		return 4
	case BinaryOpMul, BinaryOpDiv, BinaryOpMod:
		return 5
	}
	return 0
}

func (op BinaryOp) IsComparison() bool {
	return op.Precedence() == 3
}

type UnaryOp int

const (
	UnaryOpInvalid UnaryOp = iota
	// UnaryOpNot is `not` or `!`
	UnaryOpNot
	// UnaryOpNeg is `-`
	UnaryOpNeg
)

func (op UnaryOp) String() string {
	switch op {
	case UnaryOpNot:
		return "not"
	case UnaryOpNeg:
		return "-"
	}
	return "<invalid>"
}
