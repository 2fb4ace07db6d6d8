package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/krait-lang/krait/frontend/ast"
	"github.com/krait-lang/krait/frontend/lexer"
)

func parse(t *testing.T, code string) *ast.Ast {
	t.Helper()
	tree, diag := Parse(lexer.Lex("test.kr", code))
	if diag != nil {
		t.Fatalf("unexpected parse error: %s", diag.Message)
	}
	return tree
}

func parseErr(t *testing.T, code string) string {
	t.Helper()
	tree, diag := Parse(lexer.Lex("test.kr", code))
	if diag == nil {
		t.Fatalf("expected a parse error for %q", code)
	}
	if tree != nil {
		t.Fatalf("got a partial tree alongside the error")
	}
	return diag.Message
}

// render prints an expression fully parenthesised.
func render(e ast.Expr) string {
	switch e := e.(type) {
	case *ast.ExprNumber:
		return e.Raw
	case *ast.ExprString:
		return `"` + e.Value + `"`
	case *ast.ExprIdent:
		return e.Name
	case *ast.ExprUnary:
		return "(" + e.Op.String() + " " + render(e.Operand) + ")"
	case *ast.ExprBinary:
		return "(" + render(e.Left) + " " + e.Op.String() + " " + render(e.Right) + ")"
	case *ast.ExprCall:
		args := make([]string, len(e.Args))
		for i, a := range e.Args {
			args[i] = render(a)
		}
		return e.Name.Raw + "(" + strings.Join(args, ", ") + ")"
	}
	return "?"
}

func onlyStmt(t *testing.T, tree *ast.Ast) ast.Stmt {
	t.Helper()
	if len(tree.Items) != 1 {
		t.Fatalf("got %d items, want 1", len(tree.Items))
	}
	top, ok := tree.Items[0].(*ast.TopStmt)
	if !ok {
		t.Fatalf("item is %T, want *ast.TopStmt", tree.Items[0])
	}
	return top.Stmt
}

func TestParseExprPrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"1 * 2 + 3", "((1 * 2) + 3)"},
		{"a - b - c", "((a - b) - c)"},
		{"a / b % c", "((a / b) % c)"},
		{"(1 + 2) * 3", "((1 + 2) * 3)"},
		{"a or b and c", "(a or (b and c))"},
		{"a and b or c", "((a and b) or c)"},
		{"a == b and c != d", "((a == b) and (c != d))"},
		{"a < b + 1", "(a < (b + 1))"},
		{"x >= 1 or y <= 2", "((x >= 1) or (y <= 2))"},
		{"-a * b", "((- a) * b)"},
		{"not a and b", "((not a) and b)"},
		{"!done", "(not done)"},
		{"- - 1", "(- (- 1))"},
		{`f(1, "s", g(x))`, `f(1, "s", g(x))`},
		{"f()", "f()"},
		{"f(a,)", "f(a)"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			stmt := onlyStmt(t, parse(t, tt.input))
			es, ok := stmt.(*ast.StmtExpr)
			if !ok {
				t.Fatalf("stmt is %T, want *ast.StmtExpr", stmt)
			}
			if got := render(es.Expr); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParseFunction(t *testing.T) {
	tree := parse(t, `public func add(a: int, b: int) -> int
    return a + b
end`)

	fns := tree.Functions()
	if len(fns) != 1 {
		t.Fatalf("got %d functions", len(fns))
	}
	fn := fns[0]
	if fn.Name.Raw != "add" || !fn.Public {
		t.Errorf("got name %q public %v", fn.Name.Raw, fn.Public)
	}
	if len(fn.Params) != 2 || fn.Params[1].Name.Raw != "b" || fn.Params[1].Type != ast.TypeInt {
		t.Errorf("unexpected params %v", fn.Params)
	}
	if fn.ReturnType != ast.TypeInt {
		t.Errorf("return type %s", fn.ReturnType)
	}
	if !fn.Body.HasReturn() {
		t.Error("body should have a return")
	}
	ret := fn.Body.Stmts[0].(*ast.StmtReturn)
	if render(ret.Value) != "(a + b)" {
		t.Errorf("return value %s", render(ret.Value))
	}
}

func TestParseFunctionDefaults(t *testing.T) {
	tree := parse(t, "func main()\n    print(\"hi\")\nend")
	fn := tree.Functions()[0]
	if fn.Public {
		t.Error("bare func must be private")
	}
	if fn.ReturnType != ast.TypeAuto {
		t.Errorf("return type %s, want auto", fn.ReturnType)
	}
	if !fn.IsMain() {
		t.Error("IsMain false")
	}
}

func TestParseRoute(t *testing.T) {
	tree := parse(t, `route "/ping" get
    return "pong"
end`)
	routes := tree.Routes()
	if len(routes) != 1 {
		t.Fatalf("got %d routes", len(routes))
	}
	r := routes[0]
	if r.Path != "/ping" || r.Method != ast.MethodGet {
		t.Errorf("got %s", r.Key())
	}
	if len(r.Body.Stmts) != 1 {
		t.Errorf("body has %d stmts", len(r.Body.Stmts))
	}
}

func TestParseImports(t *testing.T) {
	tree := parse(t, "import web from rest\nimport json from json")
	imports := tree.Imports()
	if len(imports) != 2 {
		t.Fatalf("got %d imports", len(imports))
	}
	if imports[0].Module.Raw != "web" || imports[0].From.Raw != "rest" {
		t.Errorf("first import %s from %s", imports[0].Module.Raw, imports[0].From.Raw)
	}
	if imports[1].From.Raw != "json" {
		t.Errorf("keyword capability lost: %q", imports[1].From.Raw)
	}
}

func TestParseStatements(t *testing.T) {
	tree := parse(t, `func f(n: int)
    auto total = 0
    int limit = 10
    total = total + n
    while total < limit
        total = total + 1
    end
    for i = 0, n
        print(i)
    end
    if total > 5
        return total
    else
        return
    end
    try
        raise "boom"
    catch
        print("caught")
    end
end`)

	stmts := tree.Functions()[0].Body.Stmts
	kinds := make([]string, len(stmts))
	for i, s := range stmts {
		kinds[i] = strings.TrimPrefix(fmt.Sprintf("%T", s), "*ast.Stmt")
	}
	want := []string{"VarDecl", "VarDecl", "Assign", "While", "For", "If", "Try"}
	if strings.Join(kinds, ",") != strings.Join(want, ",") {
		t.Fatalf("got %v, want %v", kinds, want)
	}

	decl := stmts[0].(*ast.StmtVarDecl)
	if decl.Type != ast.TypeAuto || decl.Name.Raw != "total" || render(decl.Value) != "0" {
		t.Errorf("auto decl: %s %s = %s", decl.Type, decl.Name.Raw, render(decl.Value))
	}
	if stmts[1].(*ast.StmtVarDecl).Type != ast.TypeInt {
		t.Error("typed decl lost its type")
	}

	loop := stmts[4].(*ast.StmtFor)
	if loop.Var.Raw != "i" || render(loop.Start) != "0" || render(loop.End) != "n" {
		t.Errorf("for header: %s = %s, %s", loop.Var.Raw, render(loop.Start), render(loop.End))
	}

	ifStmt := stmts[5].(*ast.StmtIf)
	if ifStmt.Else == nil {
		t.Fatal("missing else")
	}
	if ret := ifStmt.Else.Stmts[0].(*ast.StmtReturn); ret.Value != nil {
		t.Error("bare return should have no value")
	}

	try := stmts[6].(*ast.StmtTry)
	if _, ok := try.Body.Stmts[0].(*ast.StmtRaise); !ok {
		t.Errorf("try body holds %T", try.Body.Stmts[0])
	}
	if len(try.Catch.Stmts) != 1 {
		t.Errorf("catch has %d stmts", len(try.Catch.Stmts))
	}
}

func TestParseElseForms(t *testing.T) {
	inputs := []string{
		"if a\n x()\nelse\n y()\nend",
		"if a\n x()\nend else\n y()\nend",
	}
	for _, in := range inputs {
		stmt := onlyStmt(t, parse(t, in)).(*ast.StmtIf)
		if stmt.Else == nil || len(stmt.Then.Stmts) != 1 || len(stmt.Else.Stmts) != 1 {
			t.Errorf("%q: malformed if/else", in)
		}
	}

	stmt := onlyStmt(t, parse(t, "if a\n x()\nend")).(*ast.StmtIf)
	if stmt.Else != nil {
		t.Error("else without else keyword")
	}
}

func TestParseTryForms(t *testing.T) {
	inputs := []string{
		"try\n x()\ncatch\n y()\nend",
		"try\n x()\nend catch\n y()\nend",
	}
	for _, in := range inputs {
		stmt := onlyStmt(t, parse(t, in)).(*ast.StmtTry)
		if len(stmt.Body.Stmts) != 1 || len(stmt.Catch.Stmts) != 1 {
			t.Errorf("%q: malformed try/catch", in)
		}
	}
}

func TestParseMissingEndAtEOF(t *testing.T) {
	tree := parse(t, "func f()\n    return 1")
	if len(tree.Functions()[0].Body.Stmts) != 1 {
		t.Error("body lost at end of input")
	}
}

func TestParseVisibilityOnDeclarations(t *testing.T) {
	stmt := onlyStmt(t, parse(t, "public int x = 1"))
	decl, ok := stmt.(*ast.StmtVarDecl)
	if !ok || !decl.Public {
		t.Fatalf("got %T public=%v", stmt, ok && decl.Public)
	}
}

// Two bare identifiers in a row read as `Type name`, so this fails even
// though each line alone is a valid expression statement.
func TestParseAdjacentIdentifiersAreADeclaration(t *testing.T) {
	msg := parseErr(t, "x\ny")
	if !strings.Contains(msg, "unknown type") || !strings.Contains(msg, "x") {
		t.Errorf("got %q", msg)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"missing parameter type", "func f(a) end", "expected `:`"},
		{"unknown parameter type", "func f(a: string) end", "unknown type `string`"},
		{"route without method", `route "/x" end`, "expected HTTP method"},
		{"route without path", "route get end", "expected route path"},
		{"empty route path", `route "" get end`, "route path cannot be empty"},
		{"missing function name", "func (a: int) end", "expected function name"},
		{"dangling operator", "x = 1 +", "expected expression"},
		{"unclosed paren", "f(1, 2", "expected `)`"},
		{"stray end", "end", "expected expression"},
		{"for without comma", "for i = 0 10 end", "expected `,`"},
		{"try without catch", "try\n x()\n", "expected `catch`"},
		{"import without from", "import a b", "expected `from`"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if msg := parseErr(t, tt.input); !strings.Contains(msg, tt.want) {
				t.Errorf("got %q, want it to contain %q", msg, tt.want)
			}
		})
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, diag := Parse(lexer.Lex("pos.kr", "func f(a: int)\n    return a +\nend"))
	if diag == nil {
		t.Fatal("expected error")
	}
	// Range is 0-based: the offending `end` is on line 3.
	if diag.Range.Start.Line != 2 {
		t.Errorf("error on line %d, want 2 (0-based)", diag.Range.Start.Line)
	}
}

func TestParseEmpty(t *testing.T) {
	tree := parse(t, "  // nothing here\n")
	if len(tree.Items) != 0 {
		t.Errorf("got %d items", len(tree.Items))
	}
	if tree, diag := Parse(nil); diag != nil || len(tree.Items) != 0 {
		t.Error("nil token stream should parse to an empty tree")
	}
}
