package codegen

import (
	"github.com/krait-lang/krait/frontend/ast"
)

func (cg *Codegen) genStmt(stmt ast.Stmt) {
	switch stmt := stmt.(type) {
	case *ast.StmtVarDecl:
		cg.genVarDecl(stmt)
	case *ast.StmtAssign:
		cg.ln("%s = %s;", stmt.Name.Raw, cg.genExpr(stmt.Value))
	case *ast.StmtReturn:
		cg.genStmtReturn(stmt)
	case *ast.StmtIf:
		cg.genStmtIf(stmt)
	case *ast.StmtWhile:
		cg.ln("while %s {", cg.genExpr(stmt.Cond))
		cg.genBlock(&stmt.Body)
		cg.ln("}")
	case *ast.StmtFor:
		// end exclusive, same as Rust's `..`
		cg.ln("for %s in %s..%s {", stmt.Var.Raw, cg.genExprPrec(stmt.Start, rangePrec), cg.genExprPrec(stmt.End, rangePrec))
		cg.genBlock(&stmt.Body)
		cg.ln("}")
	case *ast.StmtTry:
		cg.genStmtTry(stmt)
	case *ast.StmtRaise:
		cg.genStmtRaise(stmt)
	case *ast.StmtExpr:
		cg.ln("%s;", cg.genExpr(stmt.Expr))
	}
}

func (cg *Codegen) genVarDecl(d *ast.StmtVarDecl) {
	switch {
	case d.Value == nil:
		cg.ln("let mut %s: %s;", d.Name.Raw, d.Type.Rust())
	case d.Type.IsAuto():
		cg.ln("let mut %s = %s;", d.Name.Raw, cg.genExpr(d.Value))
	default:
		cg.ln("let mut %s: %s = %s;", d.Name.Raw, d.Type.Rust(), cg.genExpr(d.Value))
	}
}

func (cg *Codegen) genStmtReturn(r *ast.StmtReturn) {
	var value string
	switch {
	case cg.inRoute:
		value = cg.routeResponse(r.Value)
	case r.Value != nil:
		value = cg.genExpr(r.Value)
	}

	switch {
	case cg.tryDepth > 0 && value == "":
		cg.ln("return Ok(Some(()));")
	case cg.tryDepth > 0:
		cg.ln("return Ok(Some(%s));", value)
	case value == "":
		cg.ln("return;")
	default:
		cg.ln("return %s;", value)
	}
}

func (cg *Codegen) genStmtIf(s *ast.StmtIf) {
	cg.ln("if %s {", cg.genExpr(s.Cond))
	cg.genBlock(&s.Then)
	if s.Else != nil {
		cg.ln("} else {")
		cg.genBlock(s.Else)
	}
	cg.ln("}")
}

func (cg *Codegen) genStmtTry(s *ast.StmtTry) {
	cg.ln(TRY_OPEN, cg.retType)
	cg.tryDepth++
	cg.genBlock(&s.Body)
	cg.tryDepth--
	cg.pushIndent()
	cg.ln("Ok(None)")
	cg.popIndent()
	cg.ln(TRY_CLOSE)

	cg.pushIndent()
	if cg.tryDepth > 0 {
		cg.ln("Ok(Some(ret)) => return Ok(Some(ret)),")
	} else {
		cg.ln("Ok(Some(ret)) => return ret,")
	}
	cg.ln("Ok(None) => {}")
	cg.ln("Err(_) => {")
	cg.genBlock(&s.Catch)
	cg.ln("}")
	cg.popIndent()
	cg.ln("}")
}

func (cg *Codegen) genStmtRaise(s *ast.StmtRaise) {
	if cg.tryDepth > 0 {
		cg.ln("return Err(Box::from(%s));", cg.genExpr(s.Value))
		return
	}
	cg.ln("panic!(\"{}\", %s);", cg.genExpr(s.Value))
}
