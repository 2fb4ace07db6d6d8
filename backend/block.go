package codegen

import "github.com/krait-lang/krait/frontend/ast"

// genBlock writes the statements of b one level deeper than the current
// indentation. Braces are the caller's.
func (cg *Codegen) genBlock(b *ast.Block) {
	cg.pushIndent()
	for _, stmt := range b.Stmts {
		cg.genStmt(stmt)
	}
	cg.popIndent()
}
