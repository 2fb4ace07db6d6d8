// Package codegen lowers a Krait syntax tree to Rust source targeting actix-web.
package codegen

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/krait-lang/krait/frontend/ast"
	"github.com/krait-lang/krait/std"
)

// Options controls generation. Zero values fall back to the default
// registry and 127.0.0.1:8080.
type Options struct {
	Registry *std.Registry
	Host     string
	Port     int
	Source   string // shown in the header when set
}

func (o Options) withDefaults() Options {
	if o.Registry == nil {
		o.Registry = std.Default()
	}
	if o.Host == "" {
		o.Host = DEFAULT_HOST
	}
	if o.Port == 0 {
		o.Port = DEFAULT_PORT
	}
	return o
}

type bufCtx struct {
	buf strings.Builder
}

type Codegen struct {
	Ast  *ast.Ast
	opts Options

	indent int

	bufCtx bufCtx

	// >0 while lowering the body of a try
	tryDepth int
	// set while lowering a route handler body
	inRoute bool
	// Rust return type of the function or handler being lowered
	retType string

	capabilities []string
	functions    []*ast.Function
	routes       []*ast.Route
	handlers     []string
	main         *ast.Function
}

var redundantNewlinesRegex = regexp.MustCompile(`(\r?\n){3,}`)

func removeRedundantBlankLines(s string) string {
	return redundantNewlinesRegex.ReplaceAllString(s, "$1$1")
}

// Generate renders a as a single Rust source file. It never fails: every
// tree the parser accepts has a rendering.
func Generate(a *ast.Ast, opts Options) string {
	cg := Codegen{
		Ast:  a,
		opts: opts.withDefaults(),
	}
	cg.bufCtx.buf.Grow(1024 * 2)
	cg.partition()
	cg.generate()
	return removeRedundantBlankLines(cg.bufCtx.buf.String())
}

// Capabilities returns the capability names a uses, in the order the
// generator resolves them.
func Capabilities(a *ast.Ast) []string {
	cg := Codegen{Ast: a}
	cg.partition()
	return cg.capabilities
}

// Handlers returns the Rust handler name of each route in a, in source
// order.
func Handlers(a *ast.Ast) []string {
	cg := Codegen{Ast: a}
	cg.partition()
	return cg.handlers
}

func (cg *Codegen) buf() *strings.Builder {
	return &cg.bufCtx.buf
}

func (cg *Codegen) writeIndent() {
	for range cg.indent {
		cg.writeString(INDENT)
	}
}

func (cg *Codegen) pushIndent() { cg.indent++ }
func (cg *Codegen) popIndent() {
	if cg.indent == 0 {
		panic("codegen: popIndent underflow")
	}
	cg.indent--
}

func (cg *Codegen) writef(format string, args ...any) {
	cg.buf().WriteString(fmt.Sprintf(format, args...))
}

func (cg *Codegen) writeByte(b byte) {
	cg.buf().WriteByte(b)
}

func (cg *Codegen) writeString(s string) {
	cg.buf().WriteString(s)
}

func (cg *Codegen) ln(format string, args ...any) {
	if format == "" && len(args) == 0 {
		cg.writeByte('\n')
		return
	}
	cg.writeIndent()
	cg.writef(format, args...)
	cg.writeByte('\n')
}

// partition sorts the top-level items; bare statements are dropped.
func (cg *Codegen) partition() {
	seen := make(map[string]struct{})
	addCapability := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		cg.capabilities = append(cg.capabilities, name)
	}

	names := make(map[string]struct{})
	for _, fn := range cg.Ast.Functions() {
		names[fn.Name.Raw] = struct{}{}
	}
	for _, item := range cg.Ast.Items {
		switch it := item.(type) {
		case *ast.Import:
			addCapability(it.From.Raw)
		case *ast.Function:
			if it.IsMain() {
				if cg.main == nil {
					cg.main = it
				}
				continue
			}
			cg.functions = append(cg.functions, it)
		case *ast.Route:
			addCapability(REST_LIB)
			cg.routes = append(cg.routes, it)
			cg.handlers = append(cg.handlers, handlerName(it, names))
		case *ast.TopStmt:
		}
	}
}

func (cg *Codegen) generate() {
	headers(cg)
	cg.ln("")

	for _, fn := range cg.functions {
		cg.genFunction(fn)
		cg.ln("")
	}

	for i, route := range cg.routes {
		cg.genRoute(route, cg.handlers[i])
		cg.ln("")
	}

	switch {
	case len(cg.routes) > 0:
		cg.genServerMain()
	case cg.main != nil:
		cg.genFunction(cg.main)
	default:
		cg.genDefaultMain()
	}
}
