package codegen

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/krait-lang/krait/frontend/ast"
)

// handlerName derives `<method>_<path>` from a route, e.g. `get_users_id`
// for GET /users/:id. taken holds every name already in use, declared
// functions included; a clash gets the first free numeric suffix.
func handlerName(r *ast.Route, taken map[string]struct{}) string {
	var sb strings.Builder
	lastUnderscore := true
	for _, c := range strings.ToLower(r.Path) {
		if c <= unicode.MaxASCII && (unicode.IsLetter(c) || unicode.IsDigit(c)) {
			sb.WriteRune(c)
			lastUnderscore = false
		} else if !lastUnderscore {
			sb.WriteByte('_')
			lastUnderscore = true
		}
	}
	slug := strings.TrimSuffix(sb.String(), "_")
	if slug == "" {
		slug = "root"
	}

	base := strings.ToLower(r.Method.String()) + "_" + slug
	name := base
	for n := 2; ; n++ {
		if _, ok := taken[name]; !ok {
			break
		}
		name = fmt.Sprintf("%s_%d", base, n)
	}
	taken[name] = struct{}{}
	return name
}

func (cg *Codegen) genRoute(r *ast.Route, handler string) {
	cg.ln("#[%s(%s)]", strings.ToLower(r.Method.String()), rustString(r.Path))
	cg.ln("async fn %s() -> HttpResponse {", handler)

	cg.inRoute = true
	cg.retType = ROUTE_RETURN_TYPE
	cg.genBlock(&r.Body)
	if !r.Body.HasReturn() {
		cg.pushIndent()
		cg.ln("HttpResponse::Ok().finish()")
		cg.popIndent()
	}
	cg.inRoute = false

	cg.ln("}")
}

// routeResponse lowers the value of a `return` inside a handler to an
// HTTP 200 response.
func (cg *Codegen) routeResponse(value ast.Expr) string {
	if value == nil {
		return "HttpResponse::Ok().finish()"
	}
	if _, ok := value.(*ast.ExprString); ok {
		return fmt.Sprintf("HttpResponse::Ok().body(%s)", cg.genExpr(value))
	}
	return fmt.Sprintf("HttpResponse::Ok().body(format!(\"{}\", %s))", cg.genExpr(value))
}
