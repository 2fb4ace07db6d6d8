// Package compile runs the whole pipeline: scan, parse, generate.
package compile

import (
	"fmt"
	"os"
	"path/filepath"

	codegen "github.com/krait-lang/krait/backend"
	"github.com/krait-lang/krait/frontend/ast"
	"github.com/krait-lang/krait/frontend/common"
	"github.com/krait-lang/krait/frontend/lexer"
	"github.com/krait-lang/krait/frontend/parser"
)

// Options is shared with the generator.
type Options = codegen.Options

// Parse scans and parses code. A syntax error comes back as a
// *common.DiagError.
func Parse(src, code string) (*ast.Ast, error) {
	tokens := lexer.Lex(src, code)
	tree, diag := parser.Parse(tokens)
	if diag != nil {
		return nil, common.NewDiagError(src, diag)
	}
	tree.Code = code
	return tree, nil
}

// Translate turns Krait source into Rust source. On error no output is
// produced. Each call is independent, so concurrent calls are safe.
func Translate(src, code string, opts Options) (string, error) {
	tree, err := Parse(src, code)
	if err != nil {
		return "", err
	}
	if opts.Source == "" {
		opts.Source = filepath.Base(src)
	}
	return codegen.Generate(tree, opts), nil
}

// TranslateFile reads in, translates it and writes the result to out,
// creating out's directory as needed.
func TranslateFile(in, out string, opts Options) error {
	data, err := os.ReadFile(in)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", in, err)
	}
	rust, err := Translate(in, string(data), opts)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(out, []byte(rust), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	return nil
}
