package lsp

import (
	"fmt"

	protocol "github.com/gluax-lang/lsp"

	codegen "github.com/krait-lang/krait/backend"
	"github.com/krait-lang/krait/frontend/ast"
	"github.com/krait-lang/krait/frontend/common"
	"github.com/krait-lang/krait/frontend/lexer"
)

type symbol struct {
	Name   string
	Decl   common.Span
	Detail string
	// nil for file-wide symbols (functions, top-level declarations)
	Scope *common.Span
	Kind  protocol.CompletionItemKind
}

type symbolIndex struct {
	symbols []*symbol
	// route path span -> hover text
	routes map[common.Span]string
	tokens []lexer.Token
}

func buildIndex(f *fileView) *symbolIndex {
	idx := &symbolIndex{
		routes: make(map[common.Span]string),
		tokens: lexer.Lex(f.path, f.code),
	}
	if f.tree == nil {
		return idx
	}

	handlers := codegen.Handlers(f.tree)
	routeN := 0
	for _, item := range f.tree.Items {
		switch it := item.(type) {
		case *ast.Function:
			idx.add(it.Name.Raw, it.Name.Span(), it.Signature(), nil, protocol.CompletionItemKindFunction)
			scope := it.Span()
			for _, param := range it.Params {
				idx.add(param.Name.Raw, param.Name.Span(), param.String(), &scope, protocol.CompletionItemKindVariable)
			}
			idx.addBlock(&it.Body, &scope)
		case *ast.Route:
			scope := it.Span()
			idx.routes[scope] = fmt.Sprintf("%s\n// handled by %s()", it.Key(), handlers[routeN])
			routeN++
			idx.addBlock(&it.Body, &scope)
		case *ast.TopStmt:
			idx.addStmt(it.Stmt, nil)
		}
	}
	return idx
}

func (idx *symbolIndex) add(name string, decl common.Span, detail string, scope *common.Span, kind protocol.CompletionItemKind) {
	idx.symbols = append(idx.symbols, &symbol{Name: name, Decl: decl, Detail: detail, Scope: scope, Kind: kind})
}

func (idx *symbolIndex) addBlock(b *ast.Block, scope *common.Span) {
	for _, stmt := range b.Stmts {
		idx.addStmt(stmt, scope)
	}
}

func (idx *symbolIndex) addStmt(stmt ast.Stmt, scope *common.Span) {
	switch s := stmt.(type) {
	case *ast.StmtVarDecl:
		idx.add(s.Name.Raw, s.Name.Span(), fmt.Sprintf("%s %s", s.Type, s.Name.Raw), scope, protocol.CompletionItemKindVariable)
	case *ast.StmtIf:
		idx.addBlock(&s.Then, scope)
		if s.Else != nil {
			idx.addBlock(s.Else, scope)
		}
	case *ast.StmtWhile:
		idx.addBlock(&s.Body, scope)
	case *ast.StmtFor:
		idx.add(s.Var.Raw, s.Var.Span(), fmt.Sprintf("%s: int (loop variable)", s.Var.Raw), scope, protocol.CompletionItemKindVariable)
		idx.addBlock(&s.Body, scope)
	case *ast.StmtTry:
		idx.addBlock(&s.Body, scope)
		idx.addBlock(&s.Catch, scope)
	}
}

// visible reports whether sym can be referenced from line:col.
func (sym *symbol) visible(line, col uint32) bool {
	if sym.Scope == nil {
		return true
	}
	if !sym.Scope.Contains(line, col) {
		return false
	}
	return line > sym.Decl.LineStart || (line == sym.Decl.LineStart && col >= sym.Decl.ColumnStart)
}

// resolve finds what name at line:col refers to: the latest visible local
// declaration, else a file-wide one.
func (idx *symbolIndex) resolve(name string, line, col uint32) *symbol {
	var local, global *symbol
	for _, sym := range idx.symbols {
		if sym.Name != name || !sym.visible(line, col) {
			continue
		}
		if sym.Scope == nil {
			if global == nil {
				global = sym
			}
			continue
		}
		local = sym
	}
	if local != nil {
		return local
	}
	return global
}

// tokenAt returns the token under an LSP position, also accepting the
// position just past the token's last character.
func (idx *symbolIndex) tokenAt(pos protocol.Position) lexer.Token {
	line, col := pos.Line+1, pos.Character+1
	for _, c := range []uint32{col, col - 1} {
		for _, tok := range idx.tokens {
			if lexer.IsEOF(tok) {
				continue
			}
			if tok.Span().Contains(line, c) {
				return tok
			}
		}
	}
	return nil
}

func (idx *symbolIndex) symbolAt(pos protocol.Position) *symbol {
	tok, ok := idx.tokenAt(pos).(lexer.TokIdent)
	if !ok {
		return nil
	}
	span := tok.Span()
	return idx.resolve(tok.Raw, span.LineStart, span.ColumnStart)
}

// references lists every identifier that resolves to sym.
func (idx *symbolIndex) references(sym *symbol) []common.Span {
	var out []common.Span
	for _, tok := range idx.tokens {
		if !lexer.IsIdentStr(tok, sym.Name) {
			continue
		}
		span := tok.Span()
		if idx.resolve(sym.Name, span.LineStart, span.ColumnStart) == sym {
			out = append(out, span)
		}
	}
	return out
}

type fileView struct {
	path string
	code string
	tree *ast.Ast
}
