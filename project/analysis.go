package project

import (
	"fmt"

	protocol "github.com/gluax-lang/lsp"

	"github.com/krait-lang/krait/api"
	"github.com/krait-lang/krait/frontend/ast"
	"github.com/krait-lang/krait/frontend/common"
	"github.com/krait-lang/krait/frontend/lexer"
	"github.com/krait-lang/krait/frontend/parser"
)

// File is one analysed source. Ast is nil when the file failed to parse.
type File struct {
	Path  string
	Code  string
	Ast   *ast.Ast
	Diags []protocol.Diagnostic
}

func (f *File) HasErrors() bool {
	for _, d := range f.Diags {
		if d.Severity != nil && *d.Severity == protocol.DiagnosticSeverityError {
			return true
		}
	}
	return false
}

// Err returns the first error diagnostic as a *common.DiagError.
func (f *File) Err() error {
	for i, d := range f.Diags {
		if d.Severity != nil && *d.Severity == protocol.DiagnosticSeverityError {
			return common.NewDiagError(f.Path, &f.Diags[i])
		}
	}
	return nil
}

// AnalyzeFile parses code and checks its routes.
func AnalyzeFile(path, code string) *File {
	f := &File{Path: path, Code: code}

	tree, diag := parser.Parse(lexer.Lex(path, code))
	if diag != nil {
		f.Diags = append(f.Diags, *diag)
		return f
	}
	tree.Code = code
	f.Ast = tree

	routes := tree.Routes()
	for _, d := range api.Validate(routes) {
		f.Diags = append(f.Diags, *d)
	}
	if main := tree.Function("main"); main != nil && len(routes) > 0 {
		f.Diags = append(f.Diags, *common.WarningDiag(
			"`main` is ignored: routes generate their own server entry point", main.Name.Span()))
	}
	return f
}

// Analyze parses every source of the project.
func (p *Project) Analyze() ([]*File, error) {
	paths, err := p.Sources()
	if err != nil {
		return nil, err
	}
	files := make([]*File, 0, len(paths))
	for _, path := range paths {
		code, err := p.loadFileContent(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load file: %w", err)
		}
		files = append(files, AnalyzeFile(path, code))
	}
	return files, nil
}
