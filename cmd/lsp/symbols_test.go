package lsp

import (
	"strings"
	"testing"

	protocol "github.com/gluax-lang/lsp"

	"github.com/krait-lang/krait/project"
)

const indexSrc = `func add(a: int, b: int) -> int
    int total = a + b
    return total
end

func twice(a: int) -> int
    return add(a, a)
end

route "/sum" get
    auto x = add(1, 2)
    for i = 0, x
        print(i)
    end
    return x
end
`

func newIndex(t *testing.T, src string) *symbolIndex {
	t.Helper()
	f := project.AnalyzeFile("index.kr", src)
	if f.Ast == nil {
		t.Fatalf("parse failed: %v", f.Diags)
	}
	return buildIndex(&fileView{path: f.Path, code: f.Code, tree: f.Ast})
}

// pos converts a 1-based line/column into an LSP position.
func pos(line, col uint32) protocol.Position {
	return protocol.Position{Line: line - 1, Character: col - 1}
}

func TestSymbolAt(t *testing.T) {
	idx := newIndex(t, indexSrc)

	tests := []struct {
		name       string
		line, col  uint32
		wantDetail string
		wantLine   uint32
	}{
		{"param use", 2, 17, "a: int", 1},
		{"local decl use", 3, 12, "int total", 2},
		{"function call", 7, 12, "func add(a: int, b: int) -> int", 1},
		{"same param name in another function", 7, 16, "a: int", 6},
		{"route local", 12, 19, "auto x", 11},
		{"loop variable", 13, 15, "i: int (loop variable)", 12},
		{"end of identifier", 3, 17, "int total", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sym := idx.symbolAt(pos(tt.line, tt.col))
			if sym == nil {
				t.Fatalf("no symbol at %d:%d", tt.line, tt.col)
			}
			if sym.Detail != tt.wantDetail {
				t.Errorf("detail %q, want %q", sym.Detail, tt.wantDetail)
			}
			if sym.Decl.LineStart != tt.wantLine {
				t.Errorf("declared on line %d, want %d", sym.Decl.LineStart, tt.wantLine)
			}
		})
	}
}

func TestSymbolAtNothing(t *testing.T) {
	idx := newIndex(t, indexSrc)
	for _, p := range []protocol.Position{pos(1, 1), pos(10, 12), pos(40, 1)} {
		if sym := idx.symbolAt(p); sym != nil {
			t.Errorf("%v: unexpected symbol %q", p, sym.Name)
		}
	}
}

func TestLocalsDoNotLeak(t *testing.T) {
	src := "func f()\n    int hidden = 1\nend\n\nfunc g()\n    print(hidden)\nend\n"
	idx := newIndex(t, src)
	if sym := idx.symbolAt(pos(6, 12)); sym != nil {
		t.Fatalf("hidden resolved across functions to line %d", sym.Decl.LineStart)
	}
}

func TestShadowingPicksLatest(t *testing.T) {
	src := "func f()\n    int x = 1\n    print(x)\n    txt x = \"a\"\n    print(x)\nend\n"
	idx := newIndex(t, src)
	if sym := idx.symbolAt(pos(3, 11)); sym == nil || sym.Decl.LineStart != 2 {
		t.Errorf("first use should resolve to line 2, got %+v", sym)
	}
	if sym := idx.symbolAt(pos(5, 11)); sym == nil || sym.Decl.LineStart != 4 {
		t.Errorf("second use should resolve to line 4, got %+v", sym)
	}
}

func TestReferences(t *testing.T) {
	idx := newIndex(t, indexSrc)
	sym := idx.symbolAt(pos(1, 6))
	if sym == nil || sym.Name != "add" {
		t.Fatalf("add not found: %+v", sym)
	}
	refs := idx.references(sym)
	var lines []uint32
	for _, r := range refs {
		lines = append(lines, r.LineStart)
	}
	if len(lines) != 3 || lines[0] != 1 || lines[1] != 7 || lines[2] != 11 {
		t.Fatalf("references on lines %v, want [1 7 11]", lines)
	}

	// the `a` of twice is a different symbol from the `a` of add
	param := idx.symbolAt(pos(6, 12))
	if got := len(idx.references(param)); got != 3 {
		t.Fatalf("twice.a has %d references, want 3", got)
	}
}

func TestRouteHover(t *testing.T) {
	idx := newIndex(t, indexSrc)
	var texts []string
	for _, text := range idx.routes {
		texts = append(texts, text)
	}
	if len(texts) != 1 {
		t.Fatalf("got %d routes, want 1", len(texts))
	}
	if !strings.Contains(texts[0], "GET /sum") || !strings.Contains(texts[0], "get_sum()") {
		t.Fatalf("route hover %q", texts[0])
	}
}

func TestCompletions(t *testing.T) {
	idx := newIndex(t, indexSrc)
	items := idx.completions(pos(3, 5))

	labels := make(map[string]protocol.CompletionItem)
	for _, item := range items {
		if _, dup := labels[item.Label]; dup {
			t.Errorf("duplicate completion %q", item.Label)
		}
		labels[item.Label] = item
	}
	for _, want := range []string{"add", "twice", "a", "b", "total", "return", "while"} {
		if _, ok := labels[want]; !ok {
			t.Errorf("missing completion %q", want)
		}
	}
	for _, hidden := range []string{"x", "i"} {
		if _, ok := labels[hidden]; ok {
			t.Errorf("%q should not be visible inside add", hidden)
		}
	}
	if labels["add"].Kind != protocol.CompletionItemKindFunction {
		t.Errorf("add kind %v", labels["add"].Kind)
	}
}
