package ast

import (
	"strings"

	"github.com/krait-lang/krait/frontend/common"
)

type Item interface {
	isItem()
	Span() common.Span
}

/* Import */

// Import names a capability: `import <Module> from <From>`.
type Import struct {
	Module Ident
	From   Ident
	span   common.Span
}

func NewImport(module, from Ident, span common.Span) *Import {
	return &Import{Module: module, From: from, span: span}
}

func (i *Import) isItem() {}

func (i *Import) Span() common.Span {
	return i.span
}

/* Function */

type FunctionParam struct {
	Name Ident
	Type DataType
}

func (p FunctionParam) String() string {
	return p.Name.Raw + ": " + p.Type.String()
}

type Function struct {
	Name       Ident
	Params     []FunctionParam
	ReturnType DataType
	Body       Block
	Public     bool
	span       common.Span
}

func NewFunction(name Ident, params []FunctionParam, ret DataType, body Block, public bool, span common.Span) *Function {
	return &Function{
		Name:       name,
		Params:     params,
		ReturnType: ret,
		Body:       body,
		Public:     public,
		span:       span,
	}
}

func (f *Function) isItem() {}

func (f *Function) Span() common.Span {
	return f.span
}

func (f *Function) IsMain() bool {
	return f.Name.Raw == "main"
}

// Signature renders the function header in source syntax.
func (f *Function) Signature() string {
	var sb strings.Builder
	if f.Public {
		sb.WriteString("public ")
	}
	sb.WriteString("func ")
	sb.WriteString(f.Name.Raw)
	sb.WriteByte('(')
	for i, p := range f.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteByte(')')
	if !f.ReturnType.IsAuto() {
		sb.WriteString(" -> ")
		sb.WriteString(f.ReturnType.String())
	}
	return sb.String()
}

/* Route */

type HTTPMethod int

const (
	MethodGet HTTPMethod = iota
	MethodPost
	MethodPut
	MethodDelete
)

var httpMethodNames = [...]string{
	MethodGet:    "GET",
	MethodPost:   "POST",
	MethodPut:    "PUT",
	MethodDelete: "DELETE",
}

// LookupMethod maps a method keyword (any case) to its HTTPMethod.
func LookupMethod(name string) (HTTPMethod, bool) {
	upper := strings.ToUpper(name)
	for m, n := range httpMethodNames {
		if n == upper {
			return HTTPMethod(m), true
		}
	}
	return MethodGet, false
}

func (m HTTPMethod) String() string {
	return httpMethodNames[m]
}

type Route struct {
	Path   string
	Method HTTPMethod
	Body   Block
	span   common.Span
}

func NewRoute(path string, method HTTPMethod, body Block, span common.Span) *Route {
	return &Route{Path: path, Method: method, Body: body, span: span}
}

func (r *Route) isItem() {}

func (r *Route) Span() common.Span {
	return r.span
}

// Key identifies a route by method and path, e.g. "GET /ping".
func (r *Route) Key() string {
	return r.Method.String() + " " + r.Path
}

/* Top-level statement */

type TopStmt struct {
	Stmt Stmt
}

func NewTopStmt(stmt Stmt) *TopStmt {
	return &TopStmt{Stmt: stmt}
}

func (t *TopStmt) isItem() {}

func (t *TopStmt) Span() common.Span {
	return t.Stmt.Span()
}
