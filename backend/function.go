package codegen

import (
	"strings"

	"github.com/krait-lang/krait/frontend/ast"
)

func (cg *Codegen) genFunctionParams(f *ast.Function) []string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.Name.Raw + ": " + p.Type.Rust()
	}
	return params
}

func (cg *Codegen) genFunction(f *ast.Function) {
	var sb strings.Builder
	if f.Public {
		sb.WriteString("pub ")
	}
	sb.WriteString("fn ")
	sb.WriteString(f.Name.Raw)
	sb.WriteByte('(')
	sb.WriteString(strings.Join(cg.genFunctionParams(f), ", "))
	sb.WriteByte(')')
	// auto leaves the return type out so `fn main()` stays valid
	if !f.ReturnType.IsAuto() {
		sb.WriteString(" -> ")
		sb.WriteString(f.ReturnType.Rust())
	}
	sb.WriteString(" {")

	cg.retType = UNIT_TYPE
	if !f.ReturnType.IsAuto() {
		cg.retType = f.ReturnType.Rust()
	}

	cg.ln("%s", sb.String())
	cg.genBlock(&f.Body)
	cg.ln("}")
}
