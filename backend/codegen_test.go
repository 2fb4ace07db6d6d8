package codegen

import (
	"strings"
	"testing"

	"github.com/krait-lang/krait/frontend/lexer"
	"github.com/krait-lang/krait/frontend/parser"
	"github.com/krait-lang/krait/std"
)

func gen(t *testing.T, code string, opts Options) string {
	t.Helper()
	tree, diag := parser.Parse(lexer.Lex("test.kr", code))
	if diag != nil {
		t.Fatalf("parse error: %s", diag.Message)
	}
	return Generate(tree, opts)
}

func mustContain(t *testing.T, out string, wants ...string) {
	t.Helper()
	for _, w := range wants {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q\n--- output ---\n%s", w, out)
		}
	}
}

func mustNotContain(t *testing.T, out string, bads ...string) {
	t.Helper()
	for _, b := range bads {
		if strings.Contains(out, b) {
			t.Errorf("output unexpectedly contains %q\n--- output ---\n%s", b, out)
		}
	}
}

func TestGenerateFunctionWithDefaultMain(t *testing.T) {
	out := gen(t, "func add(a: int, b: int) -> int return a + b end", Options{})
	want := `// Code generated by krait. DO NOT EDIT.

fn add(a: i32, b: i32) -> i32 {
    return a + b;
}

fn main() {
    println!("Hello from Krait!");
}
`
	if out != want {
		t.Errorf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestGenerateRouteServer(t *testing.T) {
	out := gen(t, `route "/ping" get return "pong" end`, Options{})
	want := `// Code generated by krait. DO NOT EDIT.

use actix_web::{get, post, put, delete, App, HttpServer, HttpResponse, web};

#[get("/ping")]
async fn get_ping() -> HttpResponse {
    return HttpResponse::Ok().body("pong".to_string());
}

#[actix_web::main]
async fn main() -> std::io::Result<()> {
    println!("Starting API server on http://127.0.0.1:8080");

    HttpServer::new(|| {
        App::new()
            .service(get_ping)
    })
    .bind(("127.0.0.1", 8080))?
    .run()
    .await
}
`
	if out != want {
		t.Errorf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestGenerateForIsHalfOpen(t *testing.T) {
	out := gen(t, "func main()\n    for i = 0, 5\n        print(i)\n    end\nend", Options{})
	mustContain(t, out, "for i in 0..5 {", `println!("{}", i);`)
}

func TestEntryPointExclusivity(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{"synthesized", "func helper() return 1 end", `println!("Hello from Krait!");`},
		{"declared", "func main()\n    print(\"mine\")\nend", `println!("{}", "mine".to_string());`},
		{"server wins over declared", "func main()\n    print(\"mine\")\nend\nroute \"/\" get end", "#[actix_web::main]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := gen(t, tt.code, Options{})
			if n := strings.Count(out, "fn main("); n != 1 {
				t.Errorf("got %d entry points\n%s", n, out)
			}
			mustContain(t, out, tt.want)
		})
	}

	out := gen(t, "func main()\n    print(\"mine\")\nend\nroute \"/\" get end", Options{})
	mustNotContain(t, out, "mine", "Hello from Krait!")
}

func TestRouteImpliesRestCapability(t *testing.T) {
	actix := "use actix_web::"

	out := gen(t, `route "/a" post end`, Options{})
	if strings.Count(out, actix) != 1 {
		t.Errorf("route without import should pull in actix once\n%s", out)
	}

	out = gen(t, "import web from rest\nroute \"/a\" post end\nroute \"/b\" put end", Options{})
	if strings.Count(out, actix) != 1 {
		t.Errorf("explicit import plus routes should still yield one line\n%s", out)
	}

	out = gen(t, "func f() end", Options{})
	mustNotContain(t, out, actix)
}

func TestImportsAreIdempotent(t *testing.T) {
	out := gen(t, "import a from json\nimport b from json\nimport c from log\nimport d from nowhere", Options{})
	if strings.Count(out, "use serde_json::{json, Value};") != 1 {
		t.Errorf("json imported more than once\n%s", out)
	}
	jsonAt := strings.Index(out, "use serde_json")
	logAt := strings.Index(out, "use log")
	if jsonAt < 0 || logAt < 0 || jsonAt > logAt {
		t.Errorf("imports out of source order\n%s", out)
	}
	mustNotContain(t, out, "nowhere")
}

func TestCapabilities(t *testing.T) {
	tree, diag := parser.Parse(lexer.Lex("", "import x from log\nroute \"/\" get end\nimport y from json\nimport z from log"))
	if diag != nil {
		t.Fatal(diag.Message)
	}
	got := strings.Join(Capabilities(tree), ",")
	if got != "log,rest,json" {
		t.Errorf("got %s", got)
	}
}

func TestGenerateExprPrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1 + 2 * 3", "1 + 2 * 3"},
		{"(1 + 2) * 3", "(1 + 2) * 3"},
		{"a - (b - c)", "a - (b - c)"},
		{"(a - b) - c", "a - b - c"},
		{"a / (b * c)", "a / (b * c)"},
		{"a and b or c", "a && b || c"},
		{"a and (b or c)", "a && (b || c)"},
		{"not (a and b)", "!(a && b)"},
		{"not a", "!a"},
		{"-(a + b)", "-(a + b)"},
		{"-a * b", "-a * b"},
		{"(a == b) == c", "(a == b) == c"},
		{"a < b + 1", "a < b + 1"},
		{"(a < b) and c", "a < b && c"},
		{"a % 2 == 0", "a % 2 == 0"},
		{"f(a + 1, g(b))", "f(a + 1, g(b))"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			out := gen(t, "func f()\n    x = "+tt.input+"\nend", Options{})
			mustContain(t, out, "    x = "+tt.want+";\n")
		})
	}
}

func TestGenerateStrings(t *testing.T) {
	out := gen(t, `func f()
    a = "say \"hi\""
    b = 'back\\slash'
    c = "line\nbreak"
end`, Options{})
	mustContain(t, out,
		`a = "say \"hi\"".to_string();`,
		`b = "back\\slash".to_string();`,
		`c = "line\nbreak".to_string();`,
	)
}

func TestGenerateDeclarations(t *testing.T) {
	out := gen(t, `func f()
    int x
    auto y = 1
    txt s = "a"
    double d = 2.5
    bool ok = x > 0 or y > 0
end`, Options{})
	mustContain(t, out,
		"let mut x: i32;",
		"let mut y = 1;",
		`let mut s: String = "a".to_string();`,
		"let mut d: f64 = 2.5;",
		"let mut ok: bool = x > 0 || y > 0;",
	)
}

func TestGenerateFunctionSignatures(t *testing.T) {
	out := gen(t, `public func area(w: float, h: float) -> float
    return w * h
end
func greet(name: txt)
    print("hi", name)
end`, Options{})
	mustContain(t, out,
		"pub fn area(w: f32, h: f32) -> f32 {",
		"fn greet(name: String) {",
		`println!("{} {}", "hi".to_string(), name);`,
	)
}

func TestGenerateControlFlow(t *testing.T) {
	out := gen(t, `func f(n: int) -> int
    while n > 0
        n = n - 1
    end
    if n == 0
        return 1
    else
        return
    end
end`, Options{})
	mustContain(t, out,
		"    while n > 0 {\n        n = n - 1;\n    }\n",
		"    if n == 0 {\n        return 1;\n    } else {\n        return;\n    }\n",
	)
}

func TestGenerateTryRaise(t *testing.T) {
	out := gen(t, `func f()
    try
        raise "boom"
    catch
        print("caught")
    end
    raise "fatal"
end`, Options{})
	mustContain(t, out,
		"    match (|| -> Result<Option<()>, Box<dyn std::error::Error>> {\n",
		"        return Err(Box::from(\"boom\".to_string()));\n",
		"        Ok(None)\n",
		"    "+TRY_CLOSE+"\n",
		"        Ok(Some(ret)) => return ret,\n",
		"        Ok(None) => {}\n",
		"        Err(_) => {\n",
		`println!("{}", "caught".to_string());`,
		`panic!("{}", "fatal".to_string());`,
	)
}

func TestRouteHandlers(t *testing.T) {
	out := gen(t, `route "/" get end
route "/users/:id" get
    return id
end
route "/a" delete end
route "/a" delete end
route "/a" put
    if x
        return
    end
end`, Options{})
	mustContain(t, out,
		"async fn get_root() -> HttpResponse {",
		"async fn get_users_id() -> HttpResponse {",
		`return HttpResponse::Ok().body(format!("{}", id));`,
		"async fn delete_a() -> HttpResponse {",
		"async fn delete_a_2() -> HttpResponse {",
		"async fn put_a() -> HttpResponse {",
		"        return HttpResponse::Ok().finish();\n",
		".service(get_root)",
		".service(delete_a_2)",
		`#[delete("/a")]`,
	)
	// routes without a top-level return get an explicit 200
	if n := strings.Count(out, "    HttpResponse::Ok().finish()\n"); n != 4 {
		t.Errorf("got %d implicit responses, want 4\n%s", n, out)
	}
}

func TestGenerateOptions(t *testing.T) {
	reg := std.Default().With(std.Library{
		Key:        "rest",
		Name:       "custom",
		Crate:      "actix-web",
		Dependency: `actix-web = "4"`,
		Imports:    []string{"use actix_web::*;"},
	})
	out := gen(t, `route "/x" get end`, Options{Registry: reg, Host: "0.0.0.0", Port: 3000, Source: "api.kr"})
	mustContain(t, out,
		"// source: api.kr\n",
		"use actix_web::*;\n",
		`.bind(("0.0.0.0", 3000))?`,
		"http://0.0.0.0:3000",
	)
}

func TestTopLevelStatementsAreDropped(t *testing.T) {
	out := gen(t, "int counter = 5\nprint(counter)\nfunc f() end", Options{})
	mustNotContain(t, out, "counter")
	mustContain(t, out, "fn f() {")
}

func TestHandlers(t *testing.T) {
	tree, diag := parser.Parse(lexer.Lex("", "route \"/a\" get end\nfunc f() end\nroute \"/a\" get end\nroute \"/\" post end"))
	if diag != nil {
		t.Fatal(diag.Message)
	}
	if got := strings.Join(Handlers(tree), ","); got != "get_a,get_a_2,post_root" {
		t.Errorf("got %s", got)
	}
}

func TestGenerateReturnInsideTry(t *testing.T) {
	tests := []struct {
		name  string
		input string
		wants []string
	}{
		{
			name: "typed function",
			input: `func f(n: int) -> int
    try
        return n * 2
    catch
        return 0
    end
end`,
			wants: []string{
				"    match (|| -> Result<Option<i32>, Box<dyn std::error::Error>> {\n",
				"        return Ok(Some(n * 2));\n",
				"        Ok(Some(ret)) => return ret,\n",
				"            return 0;\n",
			},
		},
		{
			name: "bare return in untyped function",
			input: `func f()
    try
        return
    catch
    end
end`,
			wants: []string{
				"Result<Option<()>, Box<dyn std::error::Error>>",
				"        return Ok(Some(()));\n",
			},
		},
		{
			name: "route",
			input: `route "/r" get
    try
        return "ok"
    catch
        return "failed"
    end
end`,
			wants: []string{
				"Result<Option<HttpResponse>, Box<dyn std::error::Error>>",
				"        return Ok(Some(HttpResponse::Ok().body(\"ok\".to_string())));\n",
				"            return HttpResponse::Ok().body(\"failed\".to_string());\n",
			},
		},
		{
			name: "nested try forwards to the outer closure",
			input: `func f() -> int
    try
        try
            return 1
        catch
            raise "inner"
        end
    catch
    end
    return 2
end`,
			wants: []string{
				"            return Ok(Some(1));\n",
				"            Ok(Some(ret)) => return Ok(Some(ret)),\n",
				"                return Err(Box::from(\"inner\".to_string()));\n",
				"        Ok(Some(ret)) => return ret,\n",
				"    return 2;\n",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := gen(t, tt.input, Options{})
			mustContain(t, out, tt.wants...)
			mustNotContain(t, out, "Ok(())")
		})
	}
}

func TestHandlerNamesAvoidFunctions(t *testing.T) {
	out := gen(t, `route "/ping" get return "pong" end
route "/ping" post end
func get_ping() -> int return 1 end
func get_ping_2() -> int return 2 end`, Options{})

	for _, name := range []string{"fn get_ping(", "fn get_ping_2(", "fn get_ping_3(", "fn post_ping("} {
		if n := strings.Count(out, name); n != 1 {
			t.Errorf("%s emitted %d times\n%s", name, n, out)
		}
	}
	mustContain(t, out, ".service(get_ping_3)", ".service(post_ping)")
	mustNotContain(t, out, ".service(get_ping)\n")
}

func TestHandlerNamesAvoidMain(t *testing.T) {
	tree, diag := parser.Parse(lexer.Lex("", "func main() end\nroute \"/x\" get end"))
	if diag != nil {
		t.Fatal(diag.Message)
	}
	if got := strings.Join(Handlers(tree), ","); got != "get_x" {
		t.Errorf("got %s", got)
	}
}
